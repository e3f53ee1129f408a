package request

// CreateProductRequest creates a catalog product. Stock starts at zero and
// arrives through stock-in.
type CreateProductRequest struct {
	Name      string  `json:"name" binding:"required,min=2,max=255"`
	Code      string  `json:"code,omitempty"`
	Category  string  `json:"category,omitempty"`
	Unit      string  `json:"unit,omitempty"`
	UnitPrice int64   `json:"unit_price" binding:"min=0"`
	Notes     *string `json:"notes,omitempty"`
}

// UpdateProductRequest updates catalog fields; quantity is not accepted here.
type UpdateProductRequest struct {
	Name      *string `json:"name,omitempty"`
	Category  *string `json:"category,omitempty"`
	Unit      *string `json:"unit,omitempty"`
	UnitPrice *int64  `json:"unit_price,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// CustomerRequest creates or updates a customer.
type CustomerRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// SupplierRequest creates or updates a supplier.
type SupplierRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	ShopName *string `json:"shopname,omitempty"`
	Type     string  `json:"type,omitempty" binding:"omitempty,oneof=distributor wholesaler producer"`
}

// CreateCouponRequest issues a coupon for the vendor.
type CreateCouponRequest struct {
	Code          string  `json:"code" binding:"required,min=2,max=100"`
	DiscountType  string  `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue int64   `json:"discount_value" binding:"required,min=1"`
	MinSubtotal   int64   `json:"min_subtotal" binding:"min=0"`
	ValidFrom     *string `json:"valid_from,omitempty"`
	ValidUntil    *string `json:"valid_until,omitempty"`
	UsageLimit    int     `json:"usage_limit" binding:"min=0"`
}
