package request

// ListRequest carries common pagination and search query parameters.
type ListRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Search  string `form:"search"`
}

// ProductFilterRequest represents product listing query parameters.
type ProductFilterRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Search    string `form:"search"`
	Category  string `form:"category"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

// BillFilterRequest represents bill listing query parameters. Dates are
// RFC 3339 timestamps.
type BillFilterRequest struct {
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	CustomerID string `form:"customer_id"`
	Status     string `form:"status" binding:"omitempty,oneof=paid partial credit"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}

// MovementFilterRequest represents stock movement listing query parameters.
type MovementFilterRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	ProductID string `form:"product_id"`
	Direction string `form:"direction" binding:"omitempty,oneof=in out"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// LedgerFilterRequest represents ledger transaction listing query parameters.
type LedgerFilterRequest struct {
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	CustomerID string `form:"customer_id"`
	SupplierID string `form:"supplier_id"`
	Direction  string `form:"direction" binding:"omitempty,oneof=in out"`
	Category   string `form:"category"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}
