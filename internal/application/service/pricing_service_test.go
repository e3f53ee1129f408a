package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/pkg/apperror"
)

func productLine(price int64, qty int) CartLine {
	id := uuid.New()
	return CartLine{
		Kind:      enum.ItemTypeProduct,
		ProductID: &id,
		Name:      "Rice 1kg",
		UnitPrice: price,
		Quantity:  qty,
	}
}

func serviceLine(price int64, qty int) CartLine {
	return CartLine{
		Kind:      enum.ItemTypeService,
		Name:      "Home delivery",
		UnitPrice: price,
		Quantity:  qty,
	}
}

func TestPriceCartNoDiscount(t *testing.T) {
	svc := NewPricingService(1800)

	result, err := svc.PriceCart([]CartLine{
		productLine(5000, 2), // 100.00
		serviceLine(10000, 1),
	}, nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(20000), result.Subtotal)
	assert.Equal(t, int64(0), result.Discount)
	assert.Equal(t, int64(3600), result.Tax)
	assert.Equal(t, int64(23600), result.GrandTotal)
}

func TestPriceCartManualFixedDiscount(t *testing.T) {
	svc := NewPricingService(1800)

	result, err := svc.PriceCart(
		[]CartLine{productLine(20000, 1)},
		nil,
		&DiscountRule{Type: enum.DiscountTypeFixed, Value: 4000},
		nil,
	)
	require.NoError(t, err)

	// Tax applies to the subtotal after discount, not before.
	assert.Equal(t, int64(4000), result.Discount)
	assert.Equal(t, int64(2880), result.Tax)
	assert.Equal(t, int64(18880), result.GrandTotal)
}

func TestPriceCartPercentageCoupon(t *testing.T) {
	svc := NewPricingService(1800)
	coupon := &entity.Coupon{
		Code:          "SAVE10",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
	}

	result, err := svc.PriceCart([]CartLine{productLine(15000, 1)}, coupon, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1500), result.Discount)
	assert.Equal(t, int64(2430), result.Tax) // 13500 * 18%
	assert.Equal(t, int64(15930), result.GrandTotal)
}

func TestPriceCartTaxRoundsHalfUp(t *testing.T) {
	svc := NewPricingService(1800)

	// 125 * 18% = 22.5, which rounds up to 23.
	result, err := svc.PriceCart([]CartLine{productLine(125, 1)}, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(23), result.Tax)

	// 155 * 18% = 27.9, which rounds up to 28.
	result, err = svc.PriceCart([]CartLine{productLine(155, 1)}, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(28), result.Tax)

	// 130 * 18% = 23.4, which rounds down to 23.
	result, err = svc.PriceCart([]CartLine{productLine(130, 1)}, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(23), result.Tax)
}

func TestPriceCartDiscountClampedToSubtotal(t *testing.T) {
	svc := NewPricingService(1800)
	coupon := &entity.Coupon{
		Code:          "BIGFLAT",
		DiscountType:  enum.DiscountTypeFixed,
		DiscountValue: 50000,
	}

	result, err := svc.PriceCart([]CartLine{productLine(20000, 1)}, coupon, nil, nil)
	require.NoError(t, err)

	// Oversized discounts clamp silently; the total never goes negative.
	assert.Equal(t, int64(20000), result.Discount)
	assert.Equal(t, int64(0), result.Tax)
	assert.Equal(t, int64(0), result.GrandTotal)
}

func TestPriceCartNegativeDiscountClampsToZero(t *testing.T) {
	svc := NewPricingService(1800)

	result, err := svc.PriceCart(
		[]CartLine{productLine(10000, 1)},
		nil,
		&DiscountRule{Type: enum.DiscountTypeFixed, Value: -500},
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Discount)
}

func TestPriceCartCouponAndManualRejected(t *testing.T) {
	svc := NewPricingService(1800)
	coupon := &entity.Coupon{Code: "SAVE10", DiscountType: enum.DiscountTypePercentage, DiscountValue: 10}

	_, err := svc.PriceCart(
		[]CartLine{productLine(10000, 1)},
		coupon,
		&DiscountRule{Type: enum.DiscountTypeFixed, Value: 100},
		nil,
	)
	require.Error(t, err)
}

func TestPriceCartCharges(t *testing.T) {
	svc := NewPricingService(1800)

	result, err := svc.PriceCart(
		[]CartLine{productLine(10000, 1)},
		nil,
		nil,
		[]ChargeInput{
			{Label: "Delivery", Base: 5000, TaxRateBp: 500},
			{Label: "Packing", Base: 1000, TaxRateBp: 0},
		},
	)
	require.NoError(t, err)

	require.Len(t, result.Charges, 2)
	assert.Equal(t, int64(250), result.Charges[0].Tax)
	assert.Equal(t, int64(5250), result.Charges[0].Total)
	assert.Equal(t, int64(0), result.Charges[1].Tax)
	assert.Equal(t, int64(6250), result.ChargesTotal)

	// GrandTotal == Subtotal - Discount + Tax + ChargesTotal
	assert.Equal(t, result.Subtotal-result.Discount+result.Tax+result.ChargesTotal, result.GrandTotal)
}

func TestPriceCartDeterministic(t *testing.T) {
	svc := NewPricingService(1800)
	lines := []CartLine{productLine(3333, 3), serviceLine(777, 2)}
	charges := []ChargeInput{{Label: "Delivery", Base: 999, TaxRateBp: 1800}}

	first, err := svc.PriceCart(lines, nil, nil, charges)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := svc.PriceCart(lines, nil, nil, charges)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPriceCartInvalidLines(t *testing.T) {
	svc := NewPricingService(1800)

	tests := []struct {
		name string
		line CartLine
	}{
		{"zero quantity", CartLine{Kind: enum.ItemTypeService, Name: "x", UnitPrice: 100, Quantity: 0}},
		{"negative quantity", CartLine{Kind: enum.ItemTypeService, Name: "x", UnitPrice: 100, Quantity: -2}},
		{"negative price", CartLine{Kind: enum.ItemTypeService, Name: "x", UnitPrice: -1, Quantity: 1}},
		{"missing name", CartLine{Kind: enum.ItemTypeService, UnitPrice: 100, Quantity: 1}},
		{"product without reference", CartLine{Kind: enum.ItemTypeProduct, Name: "x", UnitPrice: 100, Quantity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PriceCart([]CartLine{tt.line}, nil, nil, nil)
			require.Error(t, err)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.Code)
		})
	}
}

func TestPriceCartEmptyCartIsZero(t *testing.T) {
	svc := NewPricingService(1800)

	result, err := svc.PriceCart(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Subtotal)
	assert.Equal(t, int64(0), result.GrandTotal)
}
