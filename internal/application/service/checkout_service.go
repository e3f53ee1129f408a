package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/internal/domain/repository"
	"github.com/Vyora-Platform/vendor-api/pkg/apperror"
	"github.com/Vyora-Platform/vendor-api/pkg/utils"
)

// CheckoutService turns a priced cart into a committed bill. The commit runs
// as one database transaction: bill, line items, stock movements, optional
// order, ledger postings and coupon usage all become visible together or not
// at all. A failure names the stage that broke via CommitError and leaves the
// cart untouched so the client can retry.
type CheckoutService struct {
	billRepo     repository.BillRepository
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	couponRepo   repository.CouponRepository
	ledgerRepo   repository.LedgerRepository
	vendorRepo   repository.VendorRepository
	pricing      *PricingService
	coupons      *CouponService
	stock        *StockService
	txManager    repository.TxManager
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	billRepo repository.BillRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	couponRepo repository.CouponRepository,
	ledgerRepo repository.LedgerRepository,
	vendorRepo repository.VendorRepository,
	pricing *PricingService,
	coupons *CouponService,
	stock *StockService,
	txManager repository.TxManager,
) *CheckoutService {
	return &CheckoutService{
		billRepo:     billRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		couponRepo:   couponRepo,
		ledgerRepo:   ledgerRepo,
		vendorRepo:   vendorRepo,
		pricing:      pricing,
		coupons:      coupons,
		stock:        stock,
		txManager:    txManager,
	}
}

// CheckoutInput represents one checkout commit request. A nil CustomerID is a
// walk-in sale; walk-ins must pay in full because dues need a party to owe
// them.
type CheckoutInput struct {
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	Lines         []CartLine
	CouponCode    string
	Manual        *DiscountRule
	Charges       []ChargeInput
	PaymentType   enum.PaymentType
	PaymentMethod string
	PaidAmount    int64 // consulted only for partial payments
	Notes         *string
}

// PreviewPricing prices a cart without committing anything. A coupon code is
// validated against the cart's subtotal exactly as a commit would, but no
// usage is recorded.
func (s *CheckoutService) PreviewPricing(ctx context.Context, lines []CartLine, couponCode string, manual *DiscountRule, charges []ChargeInput) (*PricingResult, error) {
	vendorID, err := vendorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	base, err := s.pricing.PriceCart(lines, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	var coupon *entity.Coupon
	if couponCode != "" {
		result, err := s.coupons.ValidateCoupon(ctx, vendorID, couponCode, base.Subtotal)
		if err != nil {
			return nil, err
		}
		coupon = result.Coupon
	}

	return s.pricing.PriceCart(lines, coupon, manual, charges)
}

// CommitCheckout validates, prices and commits a checkout.
func (s *CheckoutService) CommitCheckout(ctx context.Context, input *CheckoutInput) (*entity.Bill, error) {
	vendorID, err := vendorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}
	if !input.PaymentType.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown payment type")
	}

	// Price once without a discount to learn the subtotal the coupon is
	// validated against, then once more with the discount applied. Pricing
	// is pure, so the second pass sees identical line totals.
	base, err := s.pricing.PriceCart(input.Lines, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	var coupon *entity.Coupon
	if input.CouponCode != "" {
		result, err := s.coupons.ValidateCoupon(ctx, vendorID, input.CouponCode, base.Subtotal)
		if err != nil {
			return nil, err
		}
		coupon = result.Coupon
	}

	priced, err := s.pricing.PriceCart(input.Lines, coupon, input.Manual, input.Charges)
	if err != nil {
		return nil, err
	}

	var customer *entity.Customer
	if input.CustomerID != nil {
		customer, err = s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	paid := paidAmountFor(input.PaymentType, input.PaidAmount, priced.GrandTotal)
	due := priced.GrandTotal - paid
	if due > 0 && customer == nil {
		return nil, apperror.NewBadRequestError("Partial and credit sales require a named customer")
	}

	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	bill := s.buildBill(vendorID, input, priced, coupon, paid, due, vendor.Settings.BillPrefix)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.billRepo.Create(ctx, bill); err != nil {
			return apperror.NewCommitError("bill", err)
		}

		for _, line := range input.Lines {
			if line.Kind != enum.ItemTypeProduct {
				continue
			}
			if _, err := s.stock.StockOut(ctx, *line.ProductID, line.Quantity, "sale", &bill.ID); err != nil {
				return apperror.NewCommitError("stock", err)
			}
		}

		var order *entity.Order
		if customer != nil {
			order = s.buildOrder(vendorID, bill, customer.ID, input.Lines)
			if err := s.orderRepo.Create(ctx, order); err != nil {
				return apperror.NewCommitError("order", err)
			}
		}

		if customer != nil && paid > 0 {
			posting := &entity.LedgerTransaction{
				VendorID:      vendorID,
				CustomerID:    &customer.ID,
				Direction:     enum.LedgerDirectionIn,
				Amount:        paid,
				Category:      "pos_sale",
				PaymentMethod: input.PaymentMethod,
				BillID:        &bill.ID,
				// Cash taken over the counter is already netted against the
				// sale; only the due note below affects the khata balance.
				ExcludeFromBalance: true,
			}
			if order != nil {
				posting.OrderID = &order.ID
			}
			if err := s.ledgerRepo.Create(ctx, posting); err != nil {
				return apperror.NewCommitError("ledger_in", err)
			}
		}

		if customer != nil && due > 0 {
			posting := &entity.LedgerTransaction{
				VendorID:      vendorID,
				CustomerID:    &customer.ID,
				Direction:     enum.LedgerDirectionOut,
				Amount:        due,
				Category:      "credit_extended",
				PaymentMethod: input.PaymentMethod,
				BillID:        &bill.ID,
			}
			if order != nil {
				posting.OrderID = &order.ID
			}
			if err := s.ledgerRepo.Create(ctx, posting); err != nil {
				return apperror.NewCommitError("ledger_out", err)
			}
		}

		if coupon != nil {
			usage := &entity.CouponUsage{
				CouponID: coupon.ID,
				VendorID: vendorID,
				BillID:   bill.ID,
			}
			if err := s.couponRepo.CreateUsage(ctx, usage); err != nil {
				return apperror.NewCommitError("coupon", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return bill, nil
}

// paidAmountFor maps the payment type onto the collected amount. Partial
// amounts outside [0, grandTotal] are clamped, matching the silent clamp on
// discounts.
func paidAmountFor(paymentType enum.PaymentType, requested, grandTotal int64) int64 {
	switch paymentType {
	case enum.PaymentTypeFull:
		return grandTotal
	case enum.PaymentTypeCredit:
		return 0
	default:
		if requested < 0 {
			return 0
		}
		if requested > grandTotal {
			return grandTotal
		}
		return requested
	}
}

func (s *CheckoutService) buildBill(vendorID uuid.UUID, input *CheckoutInput, priced *PricingResult, coupon *entity.Coupon, paid, due int64, billPrefix string) *entity.Bill {
	bill := &entity.Bill{
		VendorID:      vendorID,
		UserID:        input.UserID,
		CustomerID:    input.CustomerID,
		BillNo:        utils.GenerateBillNo(billPrefix),
		Subtotal:      priced.Subtotal,
		Discount:      priced.Discount,
		Tax:           priced.Tax,
		ChargesTotal:  priced.ChargesTotal,
		GrandTotal:    priced.GrandTotal,
		Paid:          paid,
		Due:           due,
		PaymentStatus: enum.DerivePaymentStatus(paid, priced.GrandTotal),
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}
	if coupon != nil {
		bill.CouponID = &coupon.ID
	}

	for _, line := range input.Lines {
		bill.Items = append(bill.Items, entity.BillItem{
			Kind:      line.Kind,
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Total:     line.UnitPrice * int64(line.Quantity),
		})
	}
	for _, charge := range priced.Charges {
		bill.Charges = append(bill.Charges, entity.BillCharge{
			Label:     charge.Label,
			Base:      charge.Base,
			TaxRateBp: charge.TaxRateBp,
			Tax:       charge.Tax,
			Total:     charge.Total,
		})
	}
	return bill
}

func (s *CheckoutService) buildOrder(vendorID uuid.UUID, bill *entity.Bill, customerID uuid.UUID, lines []CartLine) *entity.Order {
	order := &entity.Order{
		VendorID:   vendorID,
		BillID:     bill.ID,
		CustomerID: customerID,
		Status:     enum.OrderStatusPending,
		Subtotal:   bill.Subtotal,
		GrandTotal: bill.GrandTotal,
	}
	for _, line := range lines {
		if line.Kind != enum.ItemTypeProduct {
			continue
		}
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: *line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Total:     line.UnitPrice * int64(line.Quantity),
		})
	}
	return order
}

// PayDue records a later collection against a bill's outstanding due. Unlike
// the commit path, an out-of-range amount here is rejected, not clamped.
func (s *CheckoutService) PayDue(ctx context.Context, billID uuid.UUID, amount int64, method string) (*entity.Bill, error) {
	vendorID, err := vendorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	if bill.Due == 0 {
		return nil, apperror.NewConflictError("Bill is already settled")
	}
	if amount <= 0 || amount > bill.Due {
		return nil, apperror.NewInvalidPaymentAmountError(1, bill.Due)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		bill.Paid += amount
		bill.Due -= amount
		bill.PaymentStatus = enum.DerivePaymentStatus(bill.Paid, bill.GrandTotal)
		if err := s.billRepo.UpdatePayment(ctx, bill); err != nil {
			return apperror.NewCommitError("bill", err)
		}

		if bill.CustomerID != nil {
			posting := &entity.LedgerTransaction{
				VendorID:      vendorID,
				CustomerID:    bill.CustomerID,
				Direction:     enum.LedgerDirectionIn,
				Amount:        amount,
				Category:      "due_collection",
				PaymentMethod: method,
				BillID:        &bill.ID,
			}
			if err := s.ledgerRepo.Create(ctx, posting); err != nil {
				return apperror.NewCommitError("ledger_in", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// GetBill returns a bill with its items, charges and customer.
func (s *CheckoutService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills returns the vendor's bills, filtered and paginated.
func (s *CheckoutService) ListBills(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	return s.billRepo.List(ctx, params)
}
