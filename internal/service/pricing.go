package service

import (
	"github.com/shopspring/decimal"

	"github.com/studentshop/cart-service/internal/domain/model"
)

// Default pricing parameters.
var (
	// DefaultFreeShippingThreshold is the subtotal above which shipping is free.
	// The boundary is exclusive: a subtotal of exactly this value still ships
	// at the flat rate.
	DefaultFreeShippingThreshold = decimal.NewFromInt(100)

	// DefaultFlatShippingCost is the flat shipping charge below the threshold.
	DefaultFlatShippingCost = decimal.NewFromInt(10)

	// DefaultTaxRate is applied to the subtotal only, never to shipping.
	DefaultTaxRate = decimal.NewFromFloat(0.125)
)

// PricingCalculator computes the order total breakdown for a cart snapshot.
type PricingCalculator interface {
	// Totals computes shipping, tax, and grand total for the given subtotal.
	// hasPhysicalItems controls whether shipping applies at all; digital-only
	// carts never pay shipping regardless of subtotal.
	Totals(subtotal decimal.Decimal, hasPhysicalItems bool) model.OrderTotal

	// TotalsForCart computes the breakdown from a full cart snapshot.
	TotalsForCart(cart model.Cart) model.OrderTotal
}

// PricingOption configures a PricingService.
type PricingOption func(*PricingService)

// PricingService implements PricingCalculator. It is pure and stateless: the
// same subtotal and physical flag always produce the same breakdown.
type PricingService struct {
	freeShippingThreshold decimal.Decimal
	flatShippingCost      decimal.Decimal
	taxRate               decimal.Decimal
}

// NewPricingService creates a new PricingService with the given options.
func NewPricingService(opts ...PricingOption) *PricingService {
	s := &PricingService{
		freeShippingThreshold: DefaultFreeShippingThreshold,
		flatShippingCost:      DefaultFlatShippingCost,
		taxRate:               DefaultTaxRate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithFreeShippingThreshold sets the subtotal above which shipping is free.
func WithFreeShippingThreshold(threshold decimal.Decimal) PricingOption {
	return func(s *PricingService) {
		s.freeShippingThreshold = threshold
	}
}

// WithFlatShippingCost sets the flat shipping charge.
func WithFlatShippingCost(cost decimal.Decimal) PricingOption {
	return func(s *PricingService) {
		s.flatShippingCost = cost
	}
}

// WithTaxRate sets the tax rate applied to the subtotal.
func WithTaxRate(rate decimal.Decimal) PricingOption {
	return func(s *PricingService) {
		s.taxRate = rate
	}
}

// Totals computes the order total breakdown for the given subtotal.
func (s *PricingService) Totals(subtotal decimal.Decimal, hasPhysicalItems bool) model.OrderTotal {
	shipping := decimal.Zero
	if hasPhysicalItems && !subtotal.GreaterThan(s.freeShippingThreshold) {
		shipping = s.flatShippingCost
	}

	// Tax applies to the subtotal only, never to shipping.
	tax := subtotal.Mul(s.taxRate)

	return model.OrderTotal{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		GrandTotal:   subtotal.Add(shipping).Add(tax),
	}
}

// TotalsForCart computes the breakdown from a full cart snapshot.
func (s *PricingService) TotalsForCart(cart model.Cart) model.OrderTotal {
	return s.Totals(cart.Subtotal, cart.HasPhysicalItems())
}
