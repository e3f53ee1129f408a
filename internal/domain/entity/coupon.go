package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Coupon represents a discount code issued by a vendor. A coupon is immutable
// once issued; its "used" state lives in coupon_usages rows, never on the
// coupon itself.
type Coupon struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	VendorID      uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_coupon_vendor_code" json:"vendor_id"`
	Code          string            `gorm:"size:100;not null;uniqueIndex:idx_coupon_vendor_code" json:"code"`
	DiscountType  enum.DiscountType `gorm:"size:20;not null" json:"discount_type"`
	DiscountValue int64             `gorm:"not null" json:"discount_value"` // whole percent or minor units
	MinSubtotal   int64             `gorm:"default:0" json:"min_subtotal"`  // minor currency units
	ValidFrom     *time.Time        `json:"valid_from,omitempty"`
	ValidUntil    *time.Time        `json:"valid_until,omitempty"`
	UsageLimit    int               `gorm:"default:0" json:"usage_limit"` // 0 = unlimited
	CreatedAt     time.Time         `json:"created_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Vendor Vendor `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new coupon
func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Coupon model
func (Coupon) TableName() string {
	return "coupons"
}

// CouponUsage records one redemption of a coupon by a committed checkout.
// The validator counts these rows against the coupon's usage limit.
type CouponUsage struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CouponID uuid.UUID `gorm:"type:uuid;not null;index" json:"coupon_id"`
	VendorID uuid.UUID `gorm:"type:uuid;not null;index" json:"vendor_id"`
	BillID   uuid.UUID `gorm:"type:uuid;not null;index" json:"bill_id"`
	UsedAt   time.Time `gorm:"autoCreateTime" json:"used_at"`

	// Relationships
	Coupon Coupon `gorm:"foreignKey:CouponID" json:"-"`
	Bill   Bill   `gorm:"foreignKey:BillID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new coupon usage
func (u *CouponUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CouponUsage model
func (CouponUsage) TableName() string {
	return "coupon_usages"
}
