package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"gorm.io/gorm"
)

// LedgerTransaction is one immutable khata posting. Exactly one of CustomerID
// and SupplierID is set. Corrections are made by posting an offsetting entry,
// never by editing an existing row.
//
// ExcludeFromBalance marks postings whose value is already counted elsewhere
// (e.g. POS cash received that nets against a separate due note). Whether such
// postings still contribute to the displayed balance is vendor policy.
type LedgerTransaction struct {
	ID                 uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	VendorID           uuid.UUID            `gorm:"type:uuid;not null;index" json:"vendor_id"`
	CustomerID         *uuid.UUID           `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	SupplierID         *uuid.UUID           `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Direction          enum.LedgerDirection `gorm:"size:10;not null" json:"direction"`
	Amount             int64                `gorm:"not null" json:"amount"` // minor units, always positive
	Category           string               `gorm:"size:100" json:"category"`
	PaymentMethod      string               `gorm:"size:50" json:"payment_method"`
	BillID             *uuid.UUID           `gorm:"type:uuid;index" json:"bill_id,omitempty"`
	OrderID            *uuid.UUID           `gorm:"type:uuid;index" json:"order_id,omitempty"`
	ExcludeFromBalance bool                 `gorm:"default:false" json:"exclude_from_balance"`
	Note               *string              `gorm:"type:text" json:"note,omitempty"`
	CreatedAt          time.Time            `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Bill     *Bill     `gorm:"foreignKey:BillID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new ledger transaction
func (t *LedgerTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LedgerTransaction model
func (LedgerTransaction) TableName() string {
	return "ledger_transactions"
}

// PartyType reports which side of the khata the posting belongs to.
func (t *LedgerTransaction) PartyType() enum.PartyType {
	if t.SupplierID != nil {
		return enum.PartyTypeSupplier
	}
	return enum.PartyTypeCustomer
}

// PartyID returns the customer or supplier the posting is against.
func (t *LedgerTransaction) PartyID() uuid.UUID {
	if t.SupplierID != nil {
		return *t.SupplierID
	}
	if t.CustomerID != nil {
		return *t.CustomerID
	}
	return uuid.Nil
}
