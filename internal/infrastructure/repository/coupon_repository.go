package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	domainRepo "github.com/Vyora-Platform/vendor-api/internal/domain/repository"
	"gorm.io/gorm"
)

type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *gorm.DB) domainRepo.CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(coupon).Error
}

func (r *couponRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Scopes(VendorScope(ctx)).
		First(&coupon, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &coupon, err
}

func (r *couponRepository) GetByCode(ctx context.Context, vendorID uuid.UUID, code string) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&coupon, "vendor_id = ? AND code = ?", vendorID, code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &coupon, err
}

func (r *couponRepository) CountUsages(ctx context.Context, couponID uuid.UUID) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&entity.CouponUsage{}).
		Where("coupon_id = ?", couponID).
		Count(&count).Error
	return count, err
}

func (r *couponRepository) CreateUsage(ctx context.Context, usage *entity.CouponUsage) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(usage).Error
}
