package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/cart"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/catalog"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/checkout"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/events"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/orders"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/payments"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/recipes"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/types"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

// memoryCarts is a cart.Store holding a single shopper's cart
type memoryCarts struct {
	cart    *cart.Cart
	cleared int
}

func (m *memoryCarts) Load(echo.Context) (*cart.Cart, error) {
	if m.cart == nil {
		return cart.New(), nil
	}
	cp := *m.cart
	cp.Items = append([]cart.Item(nil), m.cart.Items...)
	return &cp, nil
}

func (m *memoryCarts) Save(_ echo.Context, c *cart.Cart) error {
	m.cart = c
	return nil
}

func (m *memoryCarts) Clear(echo.Context) error {
	m.cart = nil
	m.cleared++
	return nil
}

type env struct {
	store        *storage.Storage
	provider     *payments.FakeProvider
	events       *events.Recorder
	carts        *memoryCarts
	source       *catalog.LocalSource
	builder      *checkout.Builder
	materializer *orders.Materializer
	workflow     *orders.Workflow
	aggregator   *recipes.Aggregator
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store, cleanup, err := storage.NewTestStorage()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	e := &env{
		store:    store,
		provider: payments.NewFakeProvider(),
		events:   &events.Recorder{},
		carts:    &memoryCarts{},
		source:   catalog.NewLocalSource(store.Queries),
	}
	e.builder = checkout.NewBuilder(e.source, nil, checkout.FlatRateTax{BasisPoints: 800}, e.provider, "https://huntkitchen.test")
	e.materializer = orders.NewMaterializer(store, e.provider, nil, e.events)
	e.workflow = orders.NewWorkflow(store.Queries, nil, e.events)
	e.aggregator = recipes.NewAggregator(store, nil, e.events)
	return e
}

func (e *env) seedVariant(t *testing.T, inventory int64) (db.Product, db.ProductVariant) {
	t.Helper()
	ctx := context.Background()
	id := ulid.Make().String()
	product, err := e.store.Queries.CreateProduct(ctx, db.CreateProductParams{
		ID:             id,
		Name:           "Venison Backstrap Rub",
		Slug:           "venison-rub-" + strings.ToLower(id),
		BasePriceCents: 1299,
		TrackInventory: true,
		IsActive:       true,
		Tags:           "rubs,venison",
	})
	require.NoError(t, err)

	variant, err := e.store.Queries.CreateProductVariant(ctx, db.CreateProductVariantParams{
		ID:                ulid.Make().String(),
		ProductID:         product.ID,
		Title:             "8 oz",
		Sku:               "VBR-8OZ-" + id[16:],
		InventoryQuantity: inventory,
		IsActive:          true,
	})
	require.NoError(t, err)
	return product, variant
}

func (e *env) seedRecipe(t *testing.T, slug string, published bool) db.Recipe {
	t.Helper()
	recipe, err := e.store.Queries.CreateRecipe(context.Background(), db.CreateRecipeParams{
		ID:           ulid.Make().String(),
		Title:        "Smoked Duck Breast",
		Slug:         slug,
		PrepMinutes:  20,
		CookMinutes:  90,
		Servings:     4,
		Ingredients:  "2 duck breasts\nkosher salt",
		Instructions: "Score the skin.\nSmoke at 225F.",
		IsPublished:  published,
	})
	require.NoError(t, err)
	return recipe
}

// paidOrder runs a session through the fake provider and materializes it
func (e *env) paidOrder(t *testing.T, variant db.ProductVariant, qty int64) *orders.MaterializeResult {
	t.Helper()
	res, err := e.builder.CreateSession(context.Background(), validCheckoutRequest(variant.ID, qty))
	require.NoError(t, err)
	e.provider.Complete(res.SessionID)

	out, err := e.materializer.Materialize(context.Background(), res.SessionID)
	require.NoError(t, err)
	return out
}

func validAddress() types.Address {
	return types.Address{
		Name:       "Jane Hunter",
		Line1:      "1 Elk Ridge Rd",
		City:       "Bozeman",
		State:      "MT",
		PostalCode: "59715",
		Country:    "US",
	}
}

func validCheckoutRequest(variantID string, qty int64) checkout.Request {
	return checkout.Request{
		Email:           "jane@example.com",
		ShippingAddress: validAddress(),
		SameAsShipping:  true,
		ShippingRateID:  "standard",
		Items:           []checkout.LineRequest{{VariantID: variantID, Quantity: qty}},
	}
}
