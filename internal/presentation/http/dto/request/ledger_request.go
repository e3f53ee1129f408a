package request

// CreatePostingRequest appends a manual khata entry. Exactly one of
// customer_id and supplier_id must be set.
type CreatePostingRequest struct {
	CustomerID         *string `json:"customer_id,omitempty"`
	SupplierID         *string `json:"supplier_id,omitempty"`
	Direction          string  `json:"direction" binding:"required,oneof=in out"`
	Amount             int64   `json:"amount" binding:"required,min=1"`
	Category           string  `json:"category,omitempty"`
	PaymentMethod      string  `json:"payment_method,omitempty"`
	ExcludeFromBalance bool    `json:"exclude_from_balance,omitempty"`
	Note               *string `json:"note,omitempty"`
}
