package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/internal/domain/repository"
	"github.com/Vyora-Platform/vendor-api/pkg/apperror"
)

// CouponService validates and issues coupons. Validation is side-effect free:
// usage is recorded only when a checkout commits, so re-validating an applied
// but not yet committed coupon keeps returning the same answer.
type CouponService struct {
	couponRepo repository.CouponRepository
}

// NewCouponService creates a new coupon service
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// CouponResult is a successfully validated coupon with its raw discount
// contribution. The contribution is not clamped against the subtotal; the
// pricing calculator clamps when it builds the final breakdown.
type CouponResult struct {
	Coupon   *entity.Coupon `json:"coupon"`
	Discount int64          `json:"discount"`
}

// ValidateCoupon runs the rejection checks in a fixed order and short-circuits
// on the first failure: existence within the vendor's scope, validity window,
// usage limit, minimum subtotal.
func (s *CouponService) ValidateCoupon(ctx context.Context, vendorID uuid.UUID, code string, subtotal int64) (*CouponResult, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, vendorID, strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperror.ErrCouponNotFound
	}

	now := time.Now()
	if coupon.ValidFrom != nil && now.Before(*coupon.ValidFrom) {
		return nil, apperror.ErrCouponExpired
	}
	if coupon.ValidUntil != nil && now.After(*coupon.ValidUntil) {
		return nil, apperror.ErrCouponExpired
	}

	if coupon.UsageLimit > 0 {
		used, err := s.couponRepo.CountUsages(ctx, coupon.ID)
		if err != nil {
			return nil, err
		}
		if used >= int64(coupon.UsageLimit) {
			return nil, apperror.ErrCouponExhausted
		}
	}

	if subtotal < coupon.MinSubtotal {
		return nil, apperror.ErrCouponMinimumNotMet
	}

	return &CouponResult{
		Coupon:   coupon,
		Discount: couponDiscount(coupon, subtotal),
	}, nil
}

// CreateCouponInput represents the create coupon input
type CreateCouponInput struct {
	Code          string
	DiscountType  enum.DiscountType
	DiscountValue int64
	MinSubtotal   int64
	ValidFrom     *time.Time
	ValidUntil    *time.Time
	UsageLimit    int
}

// CreateCoupon issues a new coupon for the vendor in context.
func (s *CouponService) CreateCoupon(ctx context.Context, vendorID uuid.UUID, input *CreateCouponInput) (*entity.Coupon, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, apperror.NewBadRequestError("Coupon code is required")
	}
	if !input.DiscountType.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown discount type")
	}
	if input.DiscountValue <= 0 {
		return nil, apperror.NewBadRequestError("Discount value must be positive")
	}
	if input.DiscountType == enum.DiscountTypePercentage && input.DiscountValue > 100 {
		return nil, apperror.NewBadRequestError("Percentage discount cannot exceed 100")
	}
	if input.ValidFrom != nil && input.ValidUntil != nil && input.ValidUntil.Before(*input.ValidFrom) {
		return nil, apperror.NewBadRequestError("Validity window ends before it starts")
	}

	existing, err := s.couponRepo.GetByCode(ctx, vendorID, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Coupon code already exists")
	}

	coupon := &entity.Coupon{
		VendorID:      vendorID,
		Code:          code,
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		MinSubtotal:   input.MinSubtotal,
		ValidFrom:     input.ValidFrom,
		ValidUntil:    input.ValidUntil,
		UsageLimit:    input.UsageLimit,
	}
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}
