package orders

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

func TestConfirmation(t *testing.T) {
	order := &db.Order{
		ID:                 "o1",
		OrderNumber:        "HK-261016-ABC123",
		Email:              "jo@example.com",
		Status:             "confirmed",
		SubtotalCents:      4998,
		ShippingCents:      599,
		TaxCents:           200,
		TotalCents:         5797,
		ShippingName:       "Jo <Hunter>",
		ShippingLine1:      "12 Elk Ridge Rd",
		ShippingCity:       "Bozeman",
		ShippingState:      "MT",
		ShippingPostalCode: "59715",
		ShippingCountry:    "US",
		CreatedAt:          time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
	}
	items := []db.OrderItem{{
		ProductName:     "Venison Jerky Seasoning",
		VariantTitle:    sql.NullString{String: "8 oz", Valid: true},
		Quantity:        2,
		UnitPriceCents:  2499,
		TotalPriceCents: 4998,
	}}

	var buf bytes.Buffer
	require.NoError(t, Confirmation(order, items).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, "HK-261016-ABC123")
	assert.Contains(t, html, "Venison Jerky Seasoning")
	assert.Contains(t, html, "$57.97")
	assert.Contains(t, html, "Jo &lt;Hunter&gt;", "address is escaped")
	assert.NotContains(t, html, "Discount")
	assert.Contains(t, html, "bg-sky-100")
}

func TestPending(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Pending().Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "Payment received")
}
