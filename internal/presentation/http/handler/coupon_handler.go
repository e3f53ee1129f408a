package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vyora-Platform/vendor-api/internal/application/service"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/internal/presentation/http/dto/request"
	"github.com/Vyora-Platform/vendor-api/internal/presentation/http/dto/response"
	"github.com/Vyora-Platform/vendor-api/internal/presentation/http/middleware"
)

// CouponHandler handles coupon HTTP requests
type CouponHandler struct {
	couponService *service.CouponService
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(couponService *service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// Create issues a new coupon for the vendor
func (h *CouponHandler) Create(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)

	var req request.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateCouponInput{
		Code:          req.Code,
		DiscountType:  enum.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		MinSubtotal:   req.MinSubtotal,
		UsageLimit:    req.UsageLimit,
	}

	if req.ValidFrom != nil && *req.ValidFrom != "" {
		t, err := time.Parse(time.RFC3339, *req.ValidFrom)
		if err != nil {
			response.BadRequest(c, "Invalid valid_from date")
			return
		}
		input.ValidFrom = &t
	}
	if req.ValidUntil != nil && *req.ValidUntil != "" {
		t, err := time.Parse(time.RFC3339, *req.ValidUntil)
		if err != nil {
			response.BadRequest(c, "Invalid valid_until date")
			return
		}
		input.ValidUntil = &t
	}

	coupon, err := h.couponService.CreateCoupon(c.Request.Context(), vendorID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Coupon created successfully", coupon)
}

// Validate checks a coupon code against a subtotal without recording usage
func (h *CouponHandler) Validate(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)

	var req request.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.couponService.ValidateCoupon(c.Request.Context(), vendorID, req.Code, req.Subtotal)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Coupon is valid", gin.H{
		"coupon":   result.Coupon,
		"discount": result.Discount,
	})
}
