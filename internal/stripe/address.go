package stripe

import (
	"github.com/stripe/stripe-go/v80"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/types"
)

// Addresses travel in session metadata as <prefix>_<field> keys.
func encodeAddress(prefix string, a types.Address) map[string]string {
	if a.IsZero() {
		return nil
	}
	return map[string]string{
		prefix + "_name":        a.Name,
		prefix + "_line1":       a.Line1,
		prefix + "_line2":       a.Line2,
		prefix + "_city":        a.City,
		prefix + "_state":       a.State,
		prefix + "_postal_code": a.PostalCode,
		prefix + "_country":     a.Country,
	}
}

func decodeAddress(prefix string, md map[string]string) (types.Address, bool) {
	a := types.Address{
		Name:       md[prefix+"_name"],
		Line1:      md[prefix+"_line1"],
		Line2:      md[prefix+"_line2"],
		City:       md[prefix+"_city"],
		State:      md[prefix+"_state"],
		PostalCode: md[prefix+"_postal_code"],
		Country:    md[prefix+"_country"],
	}
	if a.Line1 == "" {
		return types.Address{}, false
	}
	return a, true
}

func fromStripeAddress(name string, a *stripe.Address) types.Address {
	return types.Address{
		Name:       name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}.Normalize()
}
