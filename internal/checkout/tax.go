package checkout

import "github.com/treysweeney3/hunt-kitchen-sub000/internal/types"

// TaxCalculator computes sales tax in cents.
type TaxCalculator interface {
	Tax(subtotalCents, shippingCents int64, shipTo types.Address) int64
}

// FlatRateTax applies a single rate, in basis points, to the merchandise subtotal.
type FlatRateTax struct {
	BasisPoints     int64
	IncludeShipping bool
}

func (f FlatRateTax) Tax(subtotalCents, shippingCents int64, _ types.Address) int64 {
	base := subtotalCents
	if f.IncludeShipping {
		base += shippingCents
	}
	if base <= 0 || f.BasisPoints <= 0 {
		return 0
	}
	// round half up
	return (base*f.BasisPoints + 5000) / 10000
}
