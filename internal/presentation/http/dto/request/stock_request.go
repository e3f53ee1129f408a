package request

// StockInRequest increases a product's stock.
type StockInRequest struct {
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	Reason     string  `json:"reason" binding:"required"`
	SupplierID *string `json:"supplier_id,omitempty"`
	BatchNo    *string `json:"batch_no,omitempty"`
}

// StockOutRequest decreases a product's stock.
type StockOutRequest struct {
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Reason   string `json:"reason" binding:"required"`
}

// ReserveRequest checks availability without mutating stock.
type ReserveRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
