package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"gorm.io/gorm"
)

// StockMovement is one append-only audit row for a stock mutation.
// PreviousQuantity and NewQuantity are captured at the moment of mutation,
// in the same transaction that updates the product, so the log can never
// disagree with the live quantity. Movements are never edited or deleted.
type StockMovement struct {
	ID               uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	VendorID         uuid.UUID           `gorm:"type:uuid;not null;index" json:"vendor_id"`
	ProductID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"product_id"`
	Direction        enum.StockDirection `gorm:"size:10;not null" json:"direction"`
	Quantity         int                 `gorm:"not null" json:"quantity"` // always positive
	PreviousQuantity int                 `gorm:"not null" json:"previous_quantity"`
	NewQuantity      int                 `gorm:"not null" json:"new_quantity"`
	Reason           string              `gorm:"size:255" json:"reason"`
	SupplierID       *uuid.UUID          `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	BatchNo          *string             `gorm:"size:100" json:"batch_no,omitempty"`
	BillID           *uuid.UUID          `gorm:"type:uuid;index" json:"bill_id,omitempty"`
	CreatedAt        time.Time           `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Product  Product   `gorm:"foreignKey:ProductID" json:"-"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// BeforeCreate generates a UUID before appending a new movement
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SignedQuantity returns the movement's contribution to the running stock:
// positive for stock-in, negative for stock-out.
func (m *StockMovement) SignedQuantity() int {
	return m.Direction.Sign() * m.Quantity
}

// TableName returns the table name for the StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}
