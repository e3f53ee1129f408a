package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	infraRepo "github.com/Vyora-Platform/vendor-api/internal/infrastructure/repository"
	"github.com/Vyora-Platform/vendor-api/pkg/apperror"
)

type checkoutFixture struct {
	svc          *CheckoutService
	billRepo     *mockBillRepo
	orderRepo    *mockOrderRepo
	customerRepo *mockCustomerRepo
	couponRepo   *mockCouponRepo
	ledgerRepo   *mockLedgerRepo
	productRepo  *mockProductRepo
	movementRepo *mockMovementRepo
	txManager    *fakeTxManager
	vendor       *entity.Vendor
	ctx          context.Context
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		billRepo:     newMockBillRepo(),
		orderRepo:    &mockOrderRepo{},
		customerRepo: newMockCustomerRepo(),
		couponRepo:   newMockCouponRepo(),
		ledgerRepo:   &mockLedgerRepo{},
		productRepo:  newMockProductRepo(),
		movementRepo: &mockMovementRepo{},
		txManager:    &fakeTxManager{},
	}

	vendorRepo := newMockVendorRepo()
	f.vendor = vendorRepo.add(&entity.Vendor{
		Name:     "Sharma General Store",
		Slug:     "sharma-general-store",
		Settings: entity.VendorSettings{BillPrefix: "SGS-"},
	})
	f.ctx = infraRepo.WithVendor(context.Background(), f.vendor.ID)

	pricing := NewPricingService(1800)
	coupons := NewCouponService(f.couponRepo)
	stock := NewStockService(f.productRepo, f.movementRepo, f.txManager, 10, 100)

	f.svc = NewCheckoutService(
		f.billRepo,
		f.orderRepo,
		f.customerRepo,
		f.couponRepo,
		f.ledgerRepo,
		vendorRepo,
		pricing,
		coupons,
		stock,
		f.txManager,
	)
	return f
}

func (f *checkoutFixture) stockedProduct(quantity int) *entity.Product {
	return f.productRepo.add(&entity.Product{
		VendorID:  f.vendor.ID,
		Name:      "Rice 1kg",
		UnitPrice: 20000,
		Quantity:  quantity,
	})
}

func (f *checkoutFixture) customer() *entity.Customer {
	return f.customerRepo.add(&entity.Customer{VendorID: f.vendor.ID, Name: "Ravi"})
}

func cartFor(product *entity.Product, qty int) []CartLine {
	return []CartLine{{
		Kind:      enum.ItemTypeProduct,
		ProductID: &product.ID,
		Name:      product.Name,
		UnitPrice: product.UnitPrice,
		Quantity:  qty,
	}}
}

func TestCommitCheckoutPartialPayment(t *testing.T) {
	f := newCheckoutFixture()
	product := f.stockedProduct(10)
	customer := f.customer()

	bill, err := f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID:        uuid.New(),
		CustomerID:    &customer.ID,
		Lines:         cartFor(product, 1), // 200.00
		PaymentType:   enum.PaymentTypePartial,
		PaymentMethod: "cash",
		PaidAmount:    10000,
	})
	require.NoError(t, err)

	// 200.00 + 18% tax = 236.00; 100.00 collected, 136.00 due.
	assert.Equal(t, int64(23600), bill.GrandTotal)
	assert.Equal(t, int64(10000), bill.Paid)
	assert.Equal(t, int64(13600), bill.Due)
	assert.Equal(t, enum.PaymentStatusPartial, bill.PaymentStatus)
	assert.True(t, strings.HasPrefix(bill.BillNo, "SGS-"))

	// Stock left the shelf.
	updated, _ := f.productRepo.GetByID(f.ctx, product.ID)
	assert.Equal(t, 9, updated.Quantity)

	// Two postings: the collected cash (excluded) and the due note.
	postings, err := f.ledgerRepo.ListByParty(f.ctx, enum.PartyTypeCustomer, customer.ID)
	require.NoError(t, err)
	require.Len(t, postings, 2)

	inPosting, outPosting := postings[0], postings[1]
	if inPosting.Direction != enum.LedgerDirectionIn {
		inPosting, outPosting = outPosting, inPosting
	}
	assert.Equal(t, int64(10000), inPosting.Amount)
	assert.True(t, inPosting.ExcludeFromBalance)
	assert.Equal(t, int64(13600), outPosting.Amount)
	assert.False(t, outPosting.ExcludeFromBalance)

	// The khata shows exactly the due, not the whole grand total.
	assert.Equal(t, int64(13600), FoldPartyBalance(enum.PartyTypeCustomer, postings, BalancePolicy{}))

	// An order shadows the bill for the named customer.
	require.Len(t, f.orderRepo.orders, 1)
	assert.Equal(t, bill.ID, f.orderRepo.orders[0].BillID)
}

func TestCommitCheckoutFullPaymentWalkIn(t *testing.T) {
	f := newCheckoutFixture()
	product := f.stockedProduct(10)

	bill, err := f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID:        uuid.New(),
		Lines:         cartFor(product, 2),
		PaymentType:   enum.PaymentTypeFull,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusPaid, bill.PaymentStatus)
	assert.Equal(t, int64(0), bill.Due)

	// Walk-ins have no khata party and no order.
	assert.Empty(t, f.ledgerRepo.postings)
	assert.Empty(t, f.orderRepo.orders)
}

func TestCommitCheckoutWalkInCreditRejected(t *testing.T) {
	f := newCheckoutFixture()
	product := f.stockedProduct(10)

	_, err := f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID:        uuid.New(),
		Lines:         cartFor(product, 1),
		PaymentType:   enum.PaymentTypeCredit,
		PaymentMethod: "cash",
	})
	require.Error(t, err)

	// Nothing was committed.
	assert.Empty(t, f.billRepo.bills)
	updated, _ := f.productRepo.GetByID(f.ctx, product.ID)
	assert.Equal(t, 10, updated.Quantity)
}

func TestCommitCheckoutPartialClampsPaidAmount(t *testing.T) {
	f := newCheckoutFixture()
	product := f.stockedProduct(10)
	customer := f.customer()

	bill, err := f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID:        uuid.New(),
		CustomerID:    &customer.ID,
		Lines:         cartFor(product, 1),
		PaymentType:   enum.PaymentTypePartial,
		PaymentMethod: "cash",
		PaidAmount:    99999999,
	})
	require.NoError(t, err)

	assert.Equal(t, bill.GrandTotal, bill.Paid)
	assert.Equal(t, int64(0), bill.Due)
	assert.Equal(t, enum.PaymentStatusPaid, bill.PaymentStatus)
}

func TestCommitCheckoutCreditDerivesStatus(t *testing.T) {
	f := newCheckoutFixture()
	product := f.stockedProduct(10)
	customer := f.customer()

	bill, err := f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID:        uuid.New(),
		CustomerID:    &customer.ID,
		Lines:         cartFor(product, 1),
		PaymentType:   enum.PaymentTypeCredit,
		PaymentMethod: "khata",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusCredit, bill.PaymentStatus)
	assert.Equal(t, int64(0), bill.Paid)
	assert.Equal(t, bill.GrandTotal, bill.Due)

	// Credit sales write only the due posting.
	postings, _ := f.ledgerRepo.ListByParty(f.ctx, enum.PartyTypeCustomer, customer.ID)
	require.Len(t, postings, 1)
	assert.Equal(t, enum.LedgerDirectionOut, postings[0].Direction)
}

func TestCommitCheckoutInsufficientStock(t *testing.T) {
	f := newCheckoutFixture()
	product := f.stockedProduct(1)

	_, err := f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID:        uuid.New(),
		Lines:         cartFor(product, 3),
		PaymentType:   enum.PaymentTypeFull,
		PaymentMethod: "cash",
	})
	require.Error(t, err)

	var commitErr *apperror.CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.Equal(t, "stock", commitErr.Stage)
	assert.True(t, f.txManager.rolledBack)
}

func TestCommitCheckoutBillStageFailure(t *testing.T) {
	f := newCheckoutFixture()
	product := f.stockedProduct(10)
	f.billRepo.createErr = errors.New("unique violation")

	_, err := f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID:        uuid.New(),
		Lines:         cartFor(product, 1),
		PaymentType:   enum.PaymentTypeFull,
		PaymentMethod: "cash",
	})
	require.Error(t, err)

	var commitErr *apperror.CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.Equal(t, "bill", commitErr.Stage)
	assert.True(t, f.txManager.rolledBack)
}

func TestCommitCheckoutLedgerStageFailure(t *testing.T) {
	f := newCheckoutFixture()
	product := f.stockedProduct(10)
	customer := f.customer()
	f.ledgerRepo.createErr = errors.New("connection reset")

	_, err := f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID:        uuid.New(),
		CustomerID:    &customer.ID,
		Lines:         cartFor(product, 1),
		PaymentType:   enum.PaymentTypeCredit,
		PaymentMethod: "khata",
	})
	require.Error(t, err)

	var commitErr *apperror.CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.Equal(t, "ledger_out", commitErr.Stage)
	assert.True(t, f.txManager.rolledBack)
}

func TestCommitCheckoutRecordsCouponUsage(t *testing.T) {
	f := newCheckoutFixture()
	product := f.stockedProduct(10)
	f.couponRepo.add(&entity.Coupon{
		VendorID:      f.vendor.ID,
		Code:          "SAVE10",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
		UsageLimit:    1,
	})

	bill, err := f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID:        uuid.New(),
		Lines:         cartFor(product, 1),
		CouponCode:    "SAVE10",
		PaymentType:   enum.PaymentTypeFull,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2000), bill.Discount)
	require.Len(t, f.couponRepo.usages, 1)
	assert.Equal(t, bill.ID, f.couponRepo.usages[0].BillID)

	// The limit is now exhausted for the next checkout.
	_, err = f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID:        uuid.New(),
		Lines:         cartFor(product, 1),
		CouponCode:    "SAVE10",
		PaymentType:   enum.PaymentTypeFull,
		PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, apperror.ErrCouponExhausted)
}

func TestCommitCheckoutServiceLinesSkipStock(t *testing.T) {
	f := newCheckoutFixture()

	bill, err := f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID: uuid.New(),
		Lines: []CartLine{{
			Kind:      enum.ItemTypeService,
			Name:      "Mobile recharge",
			UnitPrice: 19900,
			Quantity:  1,
		}},
		PaymentType:   enum.PaymentTypeFull,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(19900), bill.Subtotal)
	assert.Empty(t, f.movementRepo.movements)
}

func TestPayDue(t *testing.T) {
	f := newCheckoutFixture()
	product := f.stockedProduct(10)
	customer := f.customer()

	bill, err := f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID:        uuid.New(),
		CustomerID:    &customer.ID,
		Lines:         cartFor(product, 1),
		PaymentType:   enum.PaymentTypePartial,
		PaymentMethod: "cash",
		PaidAmount:    10000,
	})
	require.NoError(t, err)

	// Rejected: zero, negative and above-due amounts.
	for _, amount := range []int64{0, -50, bill.Due + 1} {
		_, err := f.svc.PayDue(f.ctx, bill.ID, amount, "cash")
		require.Error(t, err, "amount %d", amount)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	}

	// A valid collection settles the bill and the khata together.
	updated, err := f.svc.PayDue(f.ctx, bill.ID, 13600, "upi")
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Due)
	assert.Equal(t, enum.PaymentStatusPaid, updated.PaymentStatus)

	postings, _ := f.ledgerRepo.ListByParty(f.ctx, enum.PartyTypeCustomer, customer.ID)
	assert.Equal(t, int64(0), FoldPartyBalance(enum.PartyTypeCustomer, postings, BalancePolicy{}))

	// A settled bill takes no further payments.
	_, err = f.svc.PayDue(f.ctx, bill.ID, 100, "cash")
	assert.Error(t, err)
}

func TestCommitCheckoutRoundTripTotals(t *testing.T) {
	f := newCheckoutFixture()
	product := f.stockedProduct(50)
	customer := f.customer()

	bill, err := f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID:        uuid.New(),
		CustomerID:    &customer.ID,
		Lines:         cartFor(product, 3),
		Charges:       []ChargeInput{{Label: "Delivery", Base: 3000, TaxRateBp: 500}},
		Manual:        &DiscountRule{Type: enum.DiscountTypePercentage, Value: 5},
		PaymentType:   enum.PaymentTypeFull,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	var itemsTotal int64
	for _, item := range bill.Items {
		itemsTotal += item.Total
	}
	assert.Equal(t, bill.Subtotal, itemsTotal)

	var chargesTotal int64
	for _, charge := range bill.Charges {
		chargesTotal += charge.Total
	}
	assert.Equal(t, bill.ChargesTotal, chargesTotal)

	assert.Equal(t, bill.Subtotal-bill.Discount+bill.Tax+bill.ChargesTotal, bill.GrandTotal)
}

func TestCommitCheckoutEmptyCart(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.svc.CommitCheckout(f.ctx, &CheckoutInput{
		UserID:        uuid.New(),
		PaymentType:   enum.PaymentTypeFull,
		PaymentMethod: "cash",
	})
	assert.Error(t, err)
}
