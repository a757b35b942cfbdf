package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/cart"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/checkout"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/types"
)

func TestCheckoutHandler_CreateSession(t *testing.T) {
	e := newEnv(t)
	_, variant := e.seedVariant(t, 5)
	h := NewCheckoutHandler(e.builder, e.materializer, e.carts, "https://huntkitchen.test")

	c, rec := NewTestContext(http.MethodPost, "/checkout/create-session", validCheckoutRequest(variant.ID, 2))
	require.NoError(t, h.HandleCreateSession(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var res checkout.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.SessionID)
	assert.Contains(t, res.RedirectURL, res.SessionID)
	require.NotNil(t, res.Quote)
	assert.Equal(t, int64(2598), res.Quote.SubtotalCents)
	assert.Equal(t, int64(599), res.Quote.ShippingCents)
	assert.Equal(t, res.Quote.SubtotalCents+res.Quote.ShippingCents+res.Quote.TaxCents-res.Quote.DiscountCents, res.Quote.TotalCents)
	require.Len(t, e.provider.Requests, 1)
}

func TestCheckoutHandler_CreateSessionUsesCartWhenNoItemsSent(t *testing.T) {
	e := newEnv(t)
	product, variant := e.seedVariant(t, 5)
	h := NewCheckoutHandler(e.builder, e.materializer, e.carts, "")

	current := cart.New()
	require.NoError(t, current.AddItem(cart.Product{ID: product.ID, Name: product.Name}, cart.Variant{ID: variant.ID, PriceCents: 1}, 3))
	e.carts.cart = current

	req := validCheckoutRequest(variant.ID, 1)
	req.Items = nil
	c, rec := NewTestContext(http.MethodPost, "/checkout/create-session", req)
	require.NoError(t, h.HandleCreateSession(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var res checkout.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Quote.Lines, 1)
	assert.Equal(t, int64(3), res.Quote.Lines[0].Quantity)
	// the cart's snapshot price is ignored in favour of the catalog
	assert.Equal(t, int64(1299), res.Quote.Lines[0].UnitPriceCents)
}

func TestCheckoutHandler_Errors(t *testing.T) {
	e := newEnv(t)
	_, variant := e.seedVariant(t, 1)
	h := NewCheckoutHandler(e.builder, e.materializer, e.carts, "")

	badAddress := validCheckoutRequest(variant.ID, 1)
	badAddress.ShippingAddress = types.Address{Name: "Jane", Line1: "1 Elk Ridge Rd", City: "Bozeman", State: "Montana", PostalCode: "5971"}

	empty := validCheckoutRequest(variant.ID, 1)
	empty.Items = nil

	tests := []struct {
		name     string
		req      checkout.Request
		wantCode int
		wantKey  string
	}{
		{"empty cart", empty, http.StatusBadRequest, "error"},
		{"invalid address", badAddress, http.StatusBadRequest, "fields"},
		{"not enough stock", validCheckoutRequest(variant.ID, 4), http.StatusConflict, "variant_id"},
		{"unknown variant", validCheckoutRequest("missing", 1), http.StatusConflict, "variant_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := NewTestContext(http.MethodPost, "/checkout/create-session", tt.req)
			require.NoError(t, h.HandleCreateSession(c))
			assert.Equal(t, tt.wantCode, rec.Code)

			body, err := AssertJSONResponse(rec)
			require.NoError(t, err)
			assert.Contains(t, body, tt.wantKey)
		})
	}
	assert.Empty(t, e.provider.Requests, "no session is requested for rejected checkouts")
}

func TestCheckoutHandler_ProviderFailure(t *testing.T) {
	e := newEnv(t)
	_, variant := e.seedVariant(t, 5)
	e.provider.CreateErr = errors.New("stripe is down")
	h := NewCheckoutHandler(e.builder, e.materializer, e.carts, "")

	c, rec := NewTestContext(http.MethodPost, "/checkout/create-session", validCheckoutRequest(variant.ID, 1))
	require.NoError(t, h.HandleCreateSession(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to create checkout session")
}

func TestCheckoutHandler_Quote(t *testing.T) {
	e := newEnv(t)
	_, variant := e.seedVariant(t, 5)
	h := NewCheckoutHandler(e.builder, e.materializer, e.carts, "")

	req := validCheckoutRequest(variant.ID, 1)
	req.ShippingRateID = "overnight"
	c, rec := NewTestContext(http.MethodPost, "/checkout/quote", req)
	require.NoError(t, h.HandleQuote(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var q checkout.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, int64(2499), q.ShippingCents)
	assert.Empty(t, e.provider.Requests)
}

func TestCheckoutHandler_Success(t *testing.T) {
	e := newEnv(t)
	_, variant := e.seedVariant(t, 5)
	h := NewCheckoutHandler(e.builder, e.materializer, e.carts, "https://huntkitchen.test")
	e.carts.cart = cart.New()

	res, err := e.builder.CreateSession(t.Context(), validCheckoutRequest(variant.ID, 2))
	require.NoError(t, err)
	e.provider.Complete(res.SessionID)

	c, rec := NewTestContext(http.MethodGet, "/checkout/success?session_id="+res.SessionID, nil)
	require.NoError(t, h.HandleSuccess(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thank you for your order")
	assert.Contains(t, rec.Body.String(), "data-order-number=\"HK-")
	assert.Equal(t, 1, e.carts.cleared)

	// reloading the page shows the same order
	c, rec = NewTestContext(http.MethodGet, "/checkout/success?format=json&session_id="+res.SessionID, nil)
	require.NoError(t, h.HandleSuccess(c))
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := e.workflow.List(t.Context(), "", 10, 0)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCheckoutHandler_SuccessRedirects(t *testing.T) {
	e := newEnv(t)
	_, variant := e.seedVariant(t, 5)
	h := NewCheckoutHandler(e.builder, e.materializer, e.carts, "")

	c, rec := NewTestContext(http.MethodGet, "/checkout/success", nil)
	require.NoError(t, h.HandleSuccess(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/shop", rec.Header().Get("Location"))

	unpaid, err := e.builder.CreateSession(t.Context(), validCheckoutRequest(variant.ID, 1))
	require.NoError(t, err)
	c, rec = NewTestContext(http.MethodGet, "/checkout/success?session_id="+unpaid.SessionID, nil)
	require.NoError(t, h.HandleSuccess(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/checkout/cancel", rec.Header().Get("Location"))

	c, _ = NewTestContext(http.MethodGet, "/checkout/success?session_id=cs_unknown", nil)
	err = h.HandleSuccess(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestCheckoutHandler_Cancel(t *testing.T) {
	e := newEnv(t)
	h := NewCheckoutHandler(e.builder, e.materializer, e.carts, "")
	e.carts.cart = cart.New()

	c, rec := NewTestContext(http.MethodGet, "/checkout/cancel", nil)
	require.NoError(t, h.HandleCancel(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Zero(t, e.carts.cleared)
}
