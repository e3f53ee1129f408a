package request

// CartLineRequest is one line of a cart to price or commit. Amounts are
// integer minor currency units.
type CartLineRequest struct {
	Kind      string  `json:"kind" binding:"required,oneof=product service"`
	ProductID *string `json:"product_id,omitempty"`
	Name      string  `json:"name" binding:"required"`
	UnitPrice int64   `json:"unit_price" binding:"min=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

// ChargeRequest is an ad hoc additional charge with its own tax rate in
// basis points.
type ChargeRequest struct {
	Label     string `json:"label" binding:"required"`
	Base      int64  `json:"base" binding:"min=0"`
	TaxRateBp int64  `json:"tax_rate_bp" binding:"min=0"`
}

// DiscountRequest is a manual discount, mutually exclusive with a coupon.
type DiscountRequest struct {
	Type  string `json:"type" binding:"required,oneof=percentage fixed"`
	Value int64  `json:"value" binding:"min=0"`
}

// PriceCartRequest asks for a pricing preview without committing anything.
type PriceCartRequest struct {
	Lines      []CartLineRequest `json:"lines" binding:"required,min=1,dive"`
	CouponCode string            `json:"coupon_code,omitempty"`
	Discount   *DiscountRequest  `json:"discount,omitempty"`
	Charges    []ChargeRequest   `json:"charges,omitempty" binding:"dive"`
}

// ValidateCouponRequest checks a coupon code against the current subtotal.
type ValidateCouponRequest struct {
	Code     string `json:"code" binding:"required"`
	Subtotal int64  `json:"subtotal" binding:"min=0"`
}

// CheckoutRequest commits a cart into a bill.
type CheckoutRequest struct {
	Lines         []CartLineRequest `json:"lines" binding:"required,min=1,dive"`
	CustomerID    *string           `json:"customer_id,omitempty"`
	CouponCode    string            `json:"coupon_code,omitempty"`
	Discount      *DiscountRequest  `json:"discount,omitempty"`
	Charges       []ChargeRequest   `json:"charges,omitempty" binding:"dive"`
	PaymentType   string            `json:"payment_type" binding:"required,oneof=full partial credit"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	PaidAmount    int64             `json:"paid_amount" binding:"min=0"`
	Notes         *string           `json:"notes,omitempty"`
}

// PayDueRequest records a later collection against a bill's due.
type PayDueRequest struct {
	Amount        int64  `json:"amount" binding:"required,min=1"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}
