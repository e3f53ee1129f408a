package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/pkg/apperror"
)

func TestValidateCouponNotFound(t *testing.T) {
	repo := newMockCouponRepo()
	svc := NewCouponService(repo)

	_, err := svc.ValidateCoupon(context.Background(), uuid.New(), "NOPE", 10000)
	assert.ErrorIs(t, err, apperror.ErrCouponNotFound)
}

func TestValidateCouponScopedToVendor(t *testing.T) {
	repo := newMockCouponRepo()
	svc := NewCouponService(repo)

	owner := uuid.New()
	repo.add(&entity.Coupon{
		VendorID:      owner,
		Code:          "SAVE10",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
	})

	// Another vendor sees not-found, not someone else's coupon.
	_, err := svc.ValidateCoupon(context.Background(), uuid.New(), "SAVE10", 10000)
	assert.ErrorIs(t, err, apperror.ErrCouponNotFound)

	result, err := svc.ValidateCoupon(context.Background(), owner, "SAVE10", 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), result.Discount)
}

func TestValidateCouponWindow(t *testing.T) {
	repo := newMockCouponRepo()
	svc := NewCouponService(repo)
	vendorID := uuid.New()

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	repo.add(&entity.Coupon{
		VendorID:      vendorID,
		Code:          "NOTYET",
		DiscountType:  enum.DiscountTypeFixed,
		DiscountValue: 500,
		ValidFrom:     &future,
	})
	repo.add(&entity.Coupon{
		VendorID:      vendorID,
		Code:          "GONE",
		DiscountType:  enum.DiscountTypeFixed,
		DiscountValue: 500,
		ValidUntil:    &past,
	})

	_, err := svc.ValidateCoupon(context.Background(), vendorID, "NOTYET", 10000)
	assert.ErrorIs(t, err, apperror.ErrCouponExpired)

	_, err = svc.ValidateCoupon(context.Background(), vendorID, "GONE", 10000)
	assert.ErrorIs(t, err, apperror.ErrCouponExpired)
}

func TestValidateCouponExhausted(t *testing.T) {
	repo := newMockCouponRepo()
	svc := NewCouponService(repo)
	vendorID := uuid.New()

	coupon := repo.add(&entity.Coupon{
		VendorID:      vendorID,
		Code:          "LIMIT2",
		DiscountType:  enum.DiscountTypeFixed,
		DiscountValue: 500,
		UsageLimit:    2,
	})

	repo.usages = append(repo.usages,
		entity.CouponUsage{CouponID: coupon.ID, VendorID: vendorID, BillID: uuid.New()},
		entity.CouponUsage{CouponID: coupon.ID, VendorID: vendorID, BillID: uuid.New()},
	)

	_, err := svc.ValidateCoupon(context.Background(), vendorID, "LIMIT2", 10000)
	assert.ErrorIs(t, err, apperror.ErrCouponExhausted)
}

func TestValidateCouponUnlimitedUsage(t *testing.T) {
	repo := newMockCouponRepo()
	svc := NewCouponService(repo)
	vendorID := uuid.New()

	coupon := repo.add(&entity.Coupon{
		VendorID:      vendorID,
		Code:          "FOREVER",
		DiscountType:  enum.DiscountTypeFixed,
		DiscountValue: 500,
		UsageLimit:    0,
	})
	for i := 0; i < 100; i++ {
		repo.usages = append(repo.usages, entity.CouponUsage{CouponID: coupon.ID, VendorID: vendorID, BillID: uuid.New()})
	}

	_, err := svc.ValidateCoupon(context.Background(), vendorID, "FOREVER", 10000)
	assert.NoError(t, err)
}

func TestValidateCouponMinimumNotMet(t *testing.T) {
	repo := newMockCouponRepo()
	svc := NewCouponService(repo)
	vendorID := uuid.New()

	repo.add(&entity.Coupon{
		VendorID:      vendorID,
		Code:          "MIN150",
		DiscountType:  enum.DiscountTypeFixed,
		DiscountValue: 500,
		MinSubtotal:   15000,
	})

	_, err := svc.ValidateCoupon(context.Background(), vendorID, "MIN150", 14999)
	assert.ErrorIs(t, err, apperror.ErrCouponMinimumNotMet)

	_, err = svc.ValidateCoupon(context.Background(), vendorID, "MIN150", 15000)
	assert.NoError(t, err)
}

func TestValidateCouponCheckOrder(t *testing.T) {
	repo := newMockCouponRepo()
	svc := NewCouponService(repo)
	vendorID := uuid.New()

	// Expired AND below minimum: the window check runs first, so the window
	// reason wins.
	past := time.Now().Add(-time.Hour)
	repo.add(&entity.Coupon{
		VendorID:      vendorID,
		Code:          "BOTH",
		DiscountType:  enum.DiscountTypeFixed,
		DiscountValue: 500,
		MinSubtotal:   50000,
		ValidUntil:    &past,
	})

	_, err := svc.ValidateCoupon(context.Background(), vendorID, "BOTH", 100)
	assert.ErrorIs(t, err, apperror.ErrCouponExpired)
}

func TestValidateCouponHasNoSideEffects(t *testing.T) {
	repo := newMockCouponRepo()
	svc := NewCouponService(repo)
	vendorID := uuid.New()

	repo.add(&entity.Coupon{
		VendorID:      vendorID,
		Code:          "SAVE10",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
		UsageLimit:    1,
	})

	// Validating repeatedly never consumes the coupon; only a committed
	// checkout records usage.
	for i := 0; i < 5; i++ {
		_, err := svc.ValidateCoupon(context.Background(), vendorID, "SAVE10", 10000)
		require.NoError(t, err)
	}
	assert.Empty(t, repo.usages)
}

func TestCreateCouponValidation(t *testing.T) {
	repo := newMockCouponRepo()
	svc := NewCouponService(repo)
	vendorID := uuid.New()

	_, err := svc.CreateCoupon(context.Background(), vendorID, &CreateCouponInput{
		Code:          "TOOMUCH",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 150,
	})
	assert.Error(t, err)

	_, err = svc.CreateCoupon(context.Background(), vendorID, &CreateCouponInput{
		Code:          "SAVE20",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 20,
	})
	require.NoError(t, err)

	// Duplicate code within the vendor is rejected.
	_, err = svc.CreateCoupon(context.Background(), vendorID, &CreateCouponInput{
		Code:          "SAVE20",
		DiscountType:  enum.DiscountTypeFixed,
		DiscountValue: 100,
	})
	assert.Error(t, err)
}
