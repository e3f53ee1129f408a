package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Vyora-Platform/vendor-api/internal/application/service"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/internal/domain/repository"
	"github.com/Vyora-Platform/vendor-api/internal/presentation/http/dto/request"
	"github.com/Vyora-Platform/vendor-api/internal/presentation/http/dto/response"
	"github.com/Vyora-Platform/vendor-api/pkg/pagination"
)

// CheckoutHandler handles pricing previews, checkout commits and bills
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// toCartLines converts request lines into service cart lines.
func toCartLines(reqLines []request.CartLineRequest) ([]service.CartLine, error) {
	lines := make([]service.CartLine, 0, len(reqLines))
	for _, l := range reqLines {
		line := service.CartLine{
			Kind:      enum.ItemType(l.Kind),
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
		if l.ProductID != nil && *l.ProductID != "" {
			id, err := uuid.Parse(*l.ProductID)
			if err != nil {
				return nil, err
			}
			line.ProductID = &id
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func toCharges(reqCharges []request.ChargeRequest) []service.ChargeInput {
	if len(reqCharges) == 0 {
		return nil
	}
	charges := make([]service.ChargeInput, 0, len(reqCharges))
	for _, ch := range reqCharges {
		charges = append(charges, service.ChargeInput{
			Label:     ch.Label,
			Base:      ch.Base,
			TaxRateBp: ch.TaxRateBp,
		})
	}
	return charges
}

func toDiscount(req *request.DiscountRequest) *service.DiscountRule {
	if req == nil {
		return nil
	}
	return &service.DiscountRule{
		Type:  enum.DiscountType(req.Type),
		Value: req.Value,
	}
}

// PreviewPricing prices a cart without committing anything
func (h *CheckoutHandler) PreviewPricing(c *gin.Context) {
	var req request.PriceCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines, err := toCartLines(req.Lines)
	if err != nil {
		response.BadRequest(c, "Invalid product ID in cart")
		return
	}

	result, err := h.checkoutService.PreviewPricing(c.Request.Context(), lines, req.CouponCode, toDiscount(req.Discount), toCharges(req.Charges))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart priced successfully", result)
}

// Checkout commits a cart into a bill
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines, err := toCartLines(req.Lines)
	if err != nil {
		response.BadRequest(c, "Invalid product ID in cart")
		return
	}

	customerID, err := parseOptionalUUID(stringOrEmpty(req.CustomerID))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	bill, err := h.checkoutService.CommitCheckout(c.Request.Context(), &service.CheckoutInput{
		UserID:        *userID,
		CustomerID:    customerID,
		Lines:         lines,
		CouponCode:    req.CouponCode,
		Manual:        toDiscount(req.Discount),
		Charges:       toCharges(req.Charges),
		PaymentType:   enum.PaymentType(req.PaymentType),
		PaymentMethod: req.PaymentMethod,
		PaidAmount:    req.PaidAmount,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checkout completed successfully", bill)
}

// GetBill returns a bill with its items and charges
func (h *CheckoutHandler) GetBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.checkoutService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// ListBills lists bills with optional filters
func (h *CheckoutHandler) ListBills(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.BillFilterParams{
		Pagination: pageParams(filter.Page, filter.PerPage),
	}

	customerID, err := parseOptionalUUID(filter.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}
	params.CustomerID = customerID

	if filter.Status != "" {
		status := enum.PaymentStatus(filter.Status)
		params.Status = &status
	}

	if params.StartDate, err = parseOptionalDate(filter.StartDate); err != nil {
		response.BadRequest(c, "Invalid start date")
		return
	}
	if params.EndDate, err = parseOptionalDate(filter.EndDate); err != nil {
		response.BadRequest(c, "Invalid end date")
		return
	}

	bills, total, err := h.checkoutService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(bills, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// PayDue records a collection against a bill's outstanding due
func (h *CheckoutHandler) PayDue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	var req request.PayDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.checkoutService.PayDue(c.Request.Context(), id, req.Amount, req.PaymentMethod)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", bill)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
