package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Bill represents a committed point-of-sale checkout. All monetary fields are
// integer minor currency units. Two invariants hold at all times:
//
//	Paid + Due == GrandTotal
//	GrandTotal == Subtotal - Discount + Tax + ChargesTotal
//
// A bill is created once by the checkout commit; only Paid/Due/PaymentStatus
// change afterwards, when a later due collection is recorded.
type Bill struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	VendorID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"vendor_id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID    *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	BillNo        string             `gorm:"size:100;unique;not null" json:"bill_no"`
	Subtotal      int64              `gorm:"not null" json:"subtotal"`
	Discount      int64              `gorm:"default:0" json:"discount"`
	Tax           int64              `gorm:"default:0" json:"tax"`
	ChargesTotal  int64              `gorm:"default:0" json:"charges_total"`
	GrandTotal    int64              `gorm:"not null" json:"grand_total"`
	Paid          int64              `gorm:"default:0" json:"paid"`
	Due           int64              `gorm:"default:0" json:"due"`
	PaymentStatus enum.PaymentStatus `gorm:"size:20;not null" json:"payment_status"`
	PaymentMethod string             `gorm:"size:50" json:"payment_method"`
	CouponID      *uuid.UUID         `gorm:"type:uuid;index" json:"coupon_id,omitempty"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Vendor   Vendor       `gorm:"foreignKey:VendorID" json:"-"`
	Customer *Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []BillItem   `gorm:"foreignKey:BillID" json:"items,omitempty"`
	Charges  []BillCharge `gorm:"foreignKey:BillID" json:"charges,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one line of a bill. Product lines snapshot the unit price at
// add-time and reference the product; service lines carry only a name and
// price and never touch stock.
type BillItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"bill_id"`
	Kind      enum.ItemType  `gorm:"size:20;not null" json:"kind"`
	ProductID *uuid.UUID     `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	UnitPrice int64          `gorm:"not null" json:"unit_price"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Total     int64          `gorm:"not null" json:"total"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Bill    Bill     `gorm:"foreignKey:BillID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (bi *BillItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}

// BillCharge is an ad hoc additional charge attached to a bill at checkout:
// Total == Base + Tax, with Tax derived from the charge's own rate.
type BillCharge struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID    uuid.UUID `gorm:"type:uuid;not null;index" json:"bill_id"`
	Label     string    `gorm:"size:255;not null" json:"label"`
	Base      int64     `gorm:"not null" json:"base"`
	TaxRateBp int64     `gorm:"default:0" json:"tax_rate_bp"` // basis points
	Tax       int64     `gorm:"default:0" json:"tax"`
	Total     int64     `gorm:"not null" json:"total"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Bill Bill `gorm:"foreignKey:BillID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill charge
func (bc *BillCharge) BeforeCreate(tx *gorm.DB) error {
	if bc.ID == uuid.Nil {
		bc.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillCharge model
func (BillCharge) TableName() string {
	return "bill_charges"
}
