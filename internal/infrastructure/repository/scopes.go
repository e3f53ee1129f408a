package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// VendorIDKey is the context key for vendor ID
	VendorIDKey ctxKey = "vendor_id"
	// txKey is the context key for an ambient database transaction
	txKey ctxKey = "db_tx"
)

// VendorScope returns a GORM scope that filters by vendor.
// This should be applied to all queries for vendor-scoped entities.
func VendorScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		vendorID, ok := ctx.Value(VendorIDKey).(uuid.UUID)
		if !ok {
			// Fail-safe: return no results if vendor context missing
			// This prevents accidental cross-vendor data access
			return db.Where("1 = 0")
		}
		return db.Where("vendor_id = ?", vendorID)
	}
}

// WithVendor adds vendor ID to context
func WithVendor(ctx context.Context, vendorID uuid.UUID) context.Context {
	return context.WithValue(ctx, VendorIDKey, vendorID)
}

// GetVendorID extracts vendor ID from context
func GetVendorID(ctx context.Context) (uuid.UUID, bool) {
	vendorID, ok := ctx.Value(VendorIDKey).(uuid.UUID)
	return vendorID, ok
}
