package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

var jerky = Product{ID: "prod_jerky", Name: "Elk Jerky Kit", Slug: "elk-jerky-kit"}

func variant(id string, price int64, available *int64) Variant {
	return Variant{ID: id, Title: "Default", SKU: "SKU-" + id, PriceCents: price, Available: available}
}

func TestAddItem(t *testing.T) {
	tests := []struct {
		name      string
		adds      []int64
		available *int64
		wantQty   int64
		wantErr   error
	}{
		{name: "single add", adds: []int64{2}, wantQty: 2},
		{name: "merges same variant", adds: []int64{1, 3}, wantQty: 4},
		{name: "clamps to availability", adds: []int64{5}, available: ptr(3), wantQty: 3},
		{name: "clamps merged quantity", adds: []int64{2, 2}, available: ptr(3), wantQty: 3},
		{name: "zero rejected", adds: []int64{0}, wantErr: ErrInvalidQuantity},
		{name: "negative rejected", adds: []int64{-1}, wantErr: ErrInvalidQuantity},
		{name: "out of stock", adds: []int64{1}, available: ptr(0), wantErr: ErrOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			var err error
			for _, qty := range tt.adds {
				err = c.AddItem(jerky, variant("v1", 2499, tt.available), qty)
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, c.IsEmpty())
				return
			}
			require.NoError(t, err)
			require.Len(t, c.Items, 1)
			assert.Equal(t, tt.wantQty, c.Items[0].Quantity)
		})
	}
}

func TestAddItem_RefreshesSnapshot(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(jerky, variant("v1", 2499, nil), 1))
	require.NoError(t, c.AddItem(jerky, variant("v1", 2299, nil), 1))

	require.Len(t, c.Items, 1)
	assert.Equal(t, int64(2299), c.Items[0].UnitPriceCents)
	assert.Equal(t, int64(4598), c.Subtotal())
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(jerky, variant("v1", 1000, ptr(5)), 2))

	assert.False(t, c.UpdateQuantity("v1", 0), "quantities below 1 are ignored")
	assert.Equal(t, int64(2), c.Items[0].Quantity)
	assert.False(t, c.UpdateQuantity("v1", -1))
	assert.Equal(t, int64(2), c.Items[0].Quantity)
	assert.Len(t, c.Items, 1)

	assert.False(t, c.UpdateQuantity("missing", 3))

	assert.True(t, c.UpdateQuantity("v1", 4))
	assert.Equal(t, int64(4), c.Items[0].Quantity)

	assert.True(t, c.UpdateQuantity("v1", 9))
	assert.Equal(t, int64(5), c.Items[0].Quantity, "clamped to availability")
}

func TestRemoveItemAndTotals(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(jerky, variant("v1", 2499, nil), 2))
	require.NoError(t, c.AddItem(jerky, variant("v2", 599, nil), 1))

	assert.Equal(t, int64(2*2499+599), c.Subtotal())
	assert.Equal(t, c.Subtotal(), c.Total())
	assert.Equal(t, int64(3), c.ItemCount())

	assert.True(t, c.RemoveItem("v1"))
	assert.False(t, c.RemoveItem("v1"))
	assert.Equal(t, int64(599), c.Subtotal())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Total())
}
