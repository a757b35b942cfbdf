package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

func seedVariant(t *testing.T, q *db.Queries, track bool, qty int64) db.ProductVariant {
	t.Helper()
	ctx := context.Background()

	product, err := q.CreateProduct(ctx, db.CreateProductParams{
		ID:             ulid.Make().String(),
		Name:           "Venison Rub",
		Slug:           "venison-rub-" + ulid.Make().String(),
		BasePriceCents: 1299,
		TrackInventory: track,
		IsActive:       true,
	})
	require.NoError(t, err)

	variant, err := q.CreateProductVariant(ctx, db.CreateProductVariantParams{
		ID:                ulid.Make().String(),
		ProductID:         product.ID,
		Title:             "8 oz",
		Sku:               "RUB-" + ulid.Make().String(),
		InventoryQuantity: qty,
		IsActive:          true,
	})
	require.NoError(t, err)
	return variant
}

func TestNewTestDB_MigrationsApplied(t *testing.T) {
	_, queries, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	types, err := queries.ListGameTypes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestDecrementVariantInventory(t *testing.T) {
	_, queries, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()
	ctx := context.Background()

	t.Run("clamps at zero", func(t *testing.T) {
		v := seedVariant(t, queries, true, 3)
		rows, err := queries.DecrementVariantInventory(ctx, db.DecrementVariantInventoryParams{Quantity: 5, ID: v.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		got, err := queries.GetProductVariant(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.InventoryQuantity)
	})

	t.Run("untracked products are left alone", func(t *testing.T) {
		v := seedVariant(t, queries, false, 3)
		rows, err := queries.DecrementVariantInventory(ctx, db.DecrementVariantInventoryParams{Quantity: 2, ID: v.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)

		got, err := queries.GetProductVariant(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.InventoryQuantity)
	})
}

func TestInTx_RollsBackOnError(t *testing.T) {
	store, cleanup, err := NewTestStorage()
	require.NoError(t, err)
	defer cleanup()
	ctx := context.Background()

	boom := errors.New("boom")
	err = store.InTx(ctx, func(q *db.Queries) error {
		if _, err := q.CreateGameType(ctx, db.CreateGameTypeParams{ID: ulid.Make().String(), Name: "Elk", Slug: "elk"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	types, err := store.Queries.ListGameTypes(ctx)
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestUpdateOrderFields_VersionGuard(t *testing.T) {
	_, queries, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()
	ctx := context.Background()

	order, err := queries.CreateOrder(ctx, db.CreateOrderParams{
		ID:                ulid.Make().String(),
		OrderNumber:       "HK-260101-ABCDEF",
		Email:             "hunter@example.com",
		Status:            "confirmed",
		PaymentStatus:     "paid",
		FulfillmentStatus: "unfulfilled",
		SubtotalCents:     1000,
		TotalCents:        1000,
		ShippingCountry:   "US",
		BillingCountry:    "US",
		CheckoutSessionID: "cs_test_version",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.Version)

	updated, err := queries.UpdateOrderFields(ctx, db.UpdateOrderFieldsParams{
		Status:          sql.NullString{String: "processing", Valid: true},
		ID:              order.ID,
		ExpectedVersion: sql.NullInt64{Int64: 1, Valid: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "processing", updated.Status)
	assert.Equal(t, int64(2), updated.Version)
	assert.Equal(t, "paid", updated.PaymentStatus)

	_, err = queries.UpdateOrderFields(ctx, db.UpdateOrderFieldsParams{
		Status:          sql.NullString{String: "shipped", Valid: true},
		ID:              order.ID,
		ExpectedVersion: sql.NullInt64{Int64: 1, Valid: true},
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = queries.CreateOrder(ctx, db.CreateOrderParams{
		ID:                ulid.Make().String(),
		OrderNumber:       "HK-260101-ZZZZZZ",
		Email:             "hunter@example.com",
		Status:            "confirmed",
		PaymentStatus:     "paid",
		FulfillmentStatus: "unfulfilled",
		CheckoutSessionID: "cs_test_version",
	})
	assert.Error(t, err, "checkout_session_id must be unique")
}
