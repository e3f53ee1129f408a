package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor represents a shop/business account. All catalog, stock, bill and
// ledger rows are scoped to exactly one vendor.
type Vendor struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Settings  VendorSettings `gorm:"type:jsonb;serializer:json" json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vendor
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vendor model
func (Vendor) TableName() string {
	return "vendors"
}

// VendorSettings holds per-vendor configuration. CountExcludedPostings
// controls whether ledger postings flagged exclude_from_balance still
// contribute to party balances; the flag's semantics are vendor policy,
// not a fixed rule.
type VendorSettings struct {
	Currency              string `json:"currency,omitempty"`
	Timezone              string `json:"timezone,omitempty"`
	TaxLabel              string `json:"tax_label,omitempty"`
	BillPrefix            string `json:"bill_prefix,omitempty"`
	CountExcludedPostings bool   `json:"count_excluded_postings,omitempty"`
}

// Scan implements the sql.Scanner interface for VendorSettings
func (vs *VendorSettings) Scan(value interface{}) error {
	if value == nil {
		*vs = VendorSettings{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan VendorSettings: unsupported type")
	}

	return json.Unmarshal(bytes, vs)
}

// Value implements the driver.Valuer interface for VendorSettings
func (vs VendorSettings) Value() (driver.Value, error) {
	return json.Marshal(vs)
}

// DefaultVendorSettings returns settings applied to newly onboarded vendors.
func DefaultVendorSettings() VendorSettings {
	return VendorSettings{
		Currency:   "INR",
		Timezone:   "Asia/Kolkata",
		TaxLabel:   "GST",
		BillPrefix: "BILL-",
	}
}
