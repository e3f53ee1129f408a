package service

import (
	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/pkg/apperror"
)

// CartLine is one line of an in-memory cart. Product lines carry the product
// reference and a unit price snapshot taken at add-time; service lines carry
// only a name and price and never touch stock.
type CartLine struct {
	Kind      enum.ItemType
	ProductID *uuid.UUID
	Name      string
	UnitPrice int64 // minor currency units
	Quantity  int
}

// DiscountRule is a manual discount entered at checkout. It is mutually
// exclusive with a coupon.
type DiscountRule struct {
	Type  enum.DiscountType
	Value int64 // whole percent or minor units
}

// ChargeInput is an ad hoc additional charge with its own tax rate.
type ChargeInput struct {
	Label     string
	Base      int64 // minor currency units
	TaxRateBp int64 // basis points
}

// PricedCharge is a charge with its tax and total derived.
type PricedCharge struct {
	Label     string `json:"label"`
	Base      int64  `json:"base"`
	TaxRateBp int64  `json:"tax_rate_bp"`
	Tax       int64  `json:"tax"`
	Total     int64  `json:"total"`
}

// PricingResult is the full breakdown of a priced cart. All amounts are
// integer minor currency units and satisfy
// GrandTotal == Subtotal - Discount + Tax + ChargesTotal.
type PricingResult struct {
	Subtotal     int64          `json:"subtotal"`
	Discount     int64          `json:"discount"`
	Tax          int64          `json:"tax"`
	ChargesTotal int64          `json:"charges_total"`
	GrandTotal   int64          `json:"grand_total"`
	Charges      []PricedCharge `json:"charges"`
}

// PricingService computes cart totals. It is pure: the same inputs always
// produce the same result, so the client can re-price on every keystroke and
// the commit path can price once more and get the identical breakdown.
type PricingService struct {
	taxRateBp int64
}

// NewPricingService creates a pricing service with the deployment's tax rate
// in basis points (1800 = 18%).
func NewPricingService(taxRateBp int64) *PricingService {
	return &PricingService{taxRateBp: taxRateBp}
}

// roundHalfUpBp multiplies amount by a basis-point rate and rounds half up to
// the nearest minor unit. This is the single rounding rule used everywhere:
// 160.00 at 1800bp gives 28.80 which rounds to 29.
func roundHalfUpBp(amount, rateBp int64) int64 {
	return (amount*rateBp + 5000) / 10000
}

// roundHalfUpPercent applies a whole-percent rate with the same rule.
func roundHalfUpPercent(amount, percent int64) int64 {
	return (amount*percent + 50) / 100
}

// couponDiscount computes a coupon's raw discount contribution against a
// subtotal, without clamping. Clamping is PriceCart's job.
func couponDiscount(coupon *entity.Coupon, subtotal int64) int64 {
	if coupon.DiscountType == enum.DiscountTypePercentage {
		return roundHalfUpPercent(subtotal, coupon.DiscountValue)
	}
	return coupon.DiscountValue
}

func manualDiscount(rule *DiscountRule, subtotal int64) int64 {
	if rule.Type == enum.DiscountTypePercentage {
		return roundHalfUpPercent(subtotal, rule.Value)
	}
	return rule.Value
}

// PriceCart computes the full pricing breakdown for a cart. At most one of
// coupon and manual may be set. A discount that would exceed the subtotal is
// clamped, never an error; a negative discount value clamps to zero.
func (s *PricingService) PriceCart(lines []CartLine, coupon *entity.Coupon, manual *DiscountRule, charges []ChargeInput) (*PricingResult, error) {
	if coupon != nil && manual != nil {
		return nil, apperror.NewBadRequestError("Coupon and manual discount cannot be combined")
	}

	var subtotal int64
	for _, line := range lines {
		if err := validateCartLine(line); err != nil {
			return nil, err
		}
		subtotal += line.UnitPrice * int64(line.Quantity)
	}

	var discount int64
	switch {
	case coupon != nil:
		discount = couponDiscount(coupon, subtotal)
	case manual != nil:
		discount = manualDiscount(manual, subtotal)
	}
	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}

	taxableBase := subtotal - discount
	tax := roundHalfUpBp(taxableBase, s.taxRateBp)

	priced := make([]PricedCharge, 0, len(charges))
	var chargesTotal int64
	for _, charge := range charges {
		if charge.Base < 0 {
			return nil, apperror.NewBadRequestError("Charge base amount cannot be negative")
		}
		chargeTax := roundHalfUpBp(charge.Base, charge.TaxRateBp)
		total := charge.Base + chargeTax
		priced = append(priced, PricedCharge{
			Label:     charge.Label,
			Base:      charge.Base,
			TaxRateBp: charge.TaxRateBp,
			Tax:       chargeTax,
			Total:     total,
		})
		chargesTotal += total
	}

	return &PricingResult{
		Subtotal:     subtotal,
		Discount:     discount,
		Tax:          tax,
		ChargesTotal: chargesTotal,
		GrandTotal:   taxableBase + tax + chargesTotal,
		Charges:      priced,
	}, nil
}

func validateCartLine(line CartLine) error {
	if line.Quantity < 1 {
		return apperror.NewInvalidCartLineError("quantity must be at least 1")
	}
	if line.UnitPrice < 0 {
		return apperror.NewInvalidCartLineError("unit price cannot be negative")
	}
	if line.Name == "" {
		return apperror.NewInvalidCartLineError("line name is required")
	}
	switch line.Kind {
	case enum.ItemTypeProduct:
		if line.ProductID == nil {
			return apperror.NewInvalidCartLineError("product line missing product reference")
		}
	case enum.ItemTypeService:
		// No product reference expected.
	default:
		return apperror.NewInvalidCartLineError("unknown line kind")
	}
	return nil
}
