package orders

import (
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/types"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

func ShippingAddress(o *db.Order) types.Address {
	return types.Address{
		Name:       o.ShippingName,
		Line1:      o.ShippingLine1,
		Line2:      o.ShippingLine2.String,
		City:       o.ShippingCity,
		State:      o.ShippingState,
		PostalCode: o.ShippingPostalCode,
		Country:    o.ShippingCountry,
	}
}

func BillingAddress(o *db.Order) types.Address {
	return types.Address{
		Name:       o.BillingName,
		Line1:      o.BillingLine1,
		Line2:      o.BillingLine2.String,
		City:       o.BillingCity,
		State:      o.BillingState,
		PostalCode: o.BillingPostalCode,
		Country:    o.BillingCountry,
	}
}
