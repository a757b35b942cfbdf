package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/catalog"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/payments"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/types"
)

type memorySource struct {
	products map[string]catalog.Product
}

func (m *memorySource) Name() string { return "memory" }

func (m *memorySource) ListProducts(context.Context, catalog.ListParams) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memorySource) ProductByHandle(_ context.Context, handle string) (*catalog.Product, error) {
	for _, p := range m.products {
		if p.Handle == handle {
			return &p, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (m *memorySource) LookupVariant(_ context.Context, id string) (*catalog.Product, *catalog.Variant, error) {
	for _, p := range m.products {
		if v, ok := p.Variant(id); ok {
			pc := p
			vc := *v
			return &pc, &vc, nil
		}
	}
	return nil, nil, catalog.ErrNotFound
}

func newSource() *memorySource {
	return &memorySource{products: map[string]catalog.Product{
		"p1": {
			ID: "p1", Handle: "elk-jerky-kit", Title: "Elk Jerky Kit", Active: true,
			Variants: []catalog.Variant{
				{ID: "v1", ProductID: "p1", Title: "Default", SKU: "EJK", PriceCents: 2499, TrackInventory: true, InventoryQuantity: 5, Active: true},
				{ID: "v2", ProductID: "p1", Title: "Retired", SKU: "EJK-R", PriceCents: 1999, Active: false},
			},
		},
		"p2": {
			ID: "p2", Handle: "game-shears", Title: "Game Shears", Active: true,
			Variants: []catalog.Variant{
				{ID: "v3", ProductID: "p2", Title: "Default", SKU: "GS", PriceCents: 3500, Active: true},
			},
		},
	}}
}

var montana = types.Address{
	Name:       "Jane Hunter",
	Line1:      "1 Elk Ridge Rd",
	City:       "Bozeman",
	State:      "mt",
	PostalCode: "59715",
}

func validRequest() Request {
	return Request{
		Email:           "jane@example.com",
		ShippingAddress: montana,
		SameAsShipping:  true,
		ShippingRateID:  "standard",
		Items:           []LineRequest{{VariantID: "v1", Quantity: 2}},
	}
}

func newBuilder(provider payments.Provider) *Builder {
	return NewBuilder(newSource(), DefaultRateTable(), FlatRateTax{BasisPoints: 400}, provider, "https://huntkitchen.test/")
}

func TestCreateSession_PricesFromCatalog(t *testing.T) {
	provider := payments.NewFakeProvider()
	b := newBuilder(provider)

	result, err := b.CreateSession(context.Background(), validRequest())
	require.NoError(t, err)

	q := result.Quote
	assert.Equal(t, int64(4998), q.SubtotalCents)
	assert.Equal(t, int64(599), q.ShippingCents)
	assert.Equal(t, int64(200), q.TaxCents)
	assert.Equal(t, int64(5797), q.TotalCents)
	assert.Equal(t, q.SubtotalCents+q.ShippingCents+q.TaxCents-q.DiscountCents, q.TotalCents)
	assert.Equal(t, "MT", q.BillingAddress.State, "billing copied from normalized shipping")
	assert.Equal(t, "US", q.ShippingAddress.Country)

	assert.NotEmpty(t, result.RedirectURL)
	require.Len(t, provider.Requests, 1)
	sent := provider.Requests[0]
	require.Len(t, sent.Lines, 2)
	assert.Equal(t, int64(2499), sent.Lines[0].UnitAmountCents)
	assert.Equal(t, payments.LineKindTax, sent.Lines[1].Kind)
	assert.Equal(t, int64(599), sent.Shipping.AmountCents)
	assert.Equal(t, "https://huntkitchen.test/checkout/success?session_id={CHECKOUT_SESSION_ID}", sent.SuccessURL)
	assert.Equal(t, "5797", sent.Metadata["total_cents"])
}

func TestCreateSession_MergesDuplicateLines(t *testing.T) {
	provider := payments.NewFakeProvider()
	req := validRequest()
	req.Items = []LineRequest{{VariantID: "v3", Quantity: 1}, {VariantID: "v3", Quantity: 2}}

	result, err := newBuilder(provider).CreateSession(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Quote.Lines, 1)
	assert.Equal(t, int64(3), result.Quote.Lines[0].Quantity)
}

func TestCreateSession_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
		fields  []string
	}{
		{name: "empty cart", mutate: func(r *Request) { r.Items = nil }, wantErr: ErrEmptyCart},
		{name: "unavailable variant", mutate: func(r *Request) { r.Items = []LineRequest{{VariantID: "v2", Quantity: 1}} }, wantErr: ErrItemUnavailable},
		{name: "unknown variant", mutate: func(r *Request) { r.Items = []LineRequest{{VariantID: "nope", Quantity: 1}} }, wantErr: ErrItemUnavailable},
		{name: "over stock", mutate: func(r *Request) { r.Items = []LineRequest{{VariantID: "v1", Quantity: 6}} }, wantErr: ErrInsufficientStock},
		{
			name:   "bad zip and state",
			mutate: func(r *Request) { r.ShippingAddress.PostalCode = "5971"; r.ShippingAddress.State = "Montana" },
			fields: []string{"shipping_address.postal_code", "shipping_address.state"},
		},
		{
			name:   "billing validated when not same as shipping",
			mutate: func(r *Request) { r.SameAsShipping = false },
			fields: []string{"billing_address.name", "billing_address.line1", "billing_address.city"},
		},
		{name: "bad email", mutate: func(r *Request) { r.Email = "not-an-email" }, fields: []string{"email"}},
		{name: "unknown rate", mutate: func(r *Request) { r.ShippingRateID = "teleport" }, fields: []string{"shipping_rate_id"}},
		{name: "zero quantity", mutate: func(r *Request) { r.Items[0].Quantity = 0 }, fields: []string{"items[0].quantity"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := payments.NewFakeProvider()
			req := validRequest()
			tt.mutate(&req)

			_, err := newBuilder(provider).CreateSession(context.Background(), req)
			require.Error(t, err)
			assert.Empty(t, provider.Requests, "provider must not be called")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			for _, f := range tt.fields {
				assert.Contains(t, verr.Fields, f)
			}
		})
	}
}

func TestCreateSession_ItemErrorNamesVariant(t *testing.T) {
	req := validRequest()
	req.Items = []LineRequest{{VariantID: "v1", Quantity: 99}}

	_, err := newBuilder(payments.NewFakeProvider()).CreateSession(context.Background(), req)
	var itemErr *ItemError
	require.True(t, errors.As(err, &itemErr))
	assert.Equal(t, "v1", itemErr.VariantID)
}

func TestCreateSession_ProviderFailure(t *testing.T) {
	provider := payments.NewFakeProvider()
	provider.CreateErr = errors.New("stripe unavailable")

	_, err := newBuilder(provider).CreateSession(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProviderFailed)
	assert.Contains(t, err.Error(), "failed to create checkout session")
}

func TestQuote_DoesNotCallProvider(t *testing.T) {
	provider := payments.NewFakeProvider()
	q, err := newBuilder(provider).Quote(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(5797), q.TotalCents)
	assert.Empty(t, provider.Requests)
}
