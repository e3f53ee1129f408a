package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
)

// CouponRepository defines the interface for coupon data operations.
// Coupons are immutable once issued; only usage rows are ever added.
type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)
	// GetByCode looks a coupon up within one vendor's scope.
	GetByCode(ctx context.Context, vendorID uuid.UUID, code string) (*entity.Coupon, error)
	// CountUsages returns how many committed checkouts redeemed the coupon.
	CountUsages(ctx context.Context, couponID uuid.UUID) (int64, error)
	// CreateUsage records one redemption; called only by the checkout commit.
	CreateUsage(ctx context.Context, usage *entity.CouponUsage) error
}
