package entity

// Receipt is the in-memory print model for a committed bill. It is never
// persisted; it exists only long enough to be formatted into ESC/POS bytes.
// All amounts are integer minor currency units, same as the bill they mirror.
type Receipt struct {
	Header       ReceiptHeader `json:"header"`
	BillNo       string        `json:"bill_no"`
	Date         string        `json:"date"`
	Cashier      string        `json:"cashier,omitempty"`
	Customer     string        `json:"customer,omitempty"`
	PaymentType  string        `json:"payment_type,omitempty"`
	Items        []ReceiptItem `json:"items"`
	Subtotal     int64         `json:"subtotal"`
	Discount     int64         `json:"discount"`
	Tax          int64         `json:"tax"`
	ChargesTotal int64         `json:"charges_total"`
	Total        int64         `json:"total"`
	Paid         int64         `json:"paid"`
	Due          int64         `json:"due"`
}

// ReceiptHeader holds the vendor identity printed at the top.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptItem is one printed line.
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
}
