package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/payments"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

// TestTier1_CriticalPublicRoutes tests that critical public routes exist and are accessible
func TestTier1_CriticalPublicRoutes(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"Home redirects to shop", "GET", "/", http.StatusFound},
		{"Health check", "GET", "/health", http.StatusOK},
		{"Shop listing", "GET", "/shop", http.StatusOK},
		{"Recipes listing", "GET", "/recipes", http.StatusOK},
		{"Cart", "GET", "/api/cart", http.StatusOK},
		{"Shipping rates", "GET", "/checkout/rates", http.StatusOK},
		{"Checkout cancel", "GET", "/checkout/cancel", http.StatusSeeOther},
		{"Checkout success without session", "GET", "/checkout/success", http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code,
				"Route %s %s should return %d, got %d",
				tt.method, tt.path, tt.wantStatus, rec.Code)
		})
	}
}

// TestTier2_AuthProtectedRoutes tests that auth-protected routes reject anonymous requests
func TestTier2_AuthProtectedRoutes(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		name       string
		method     string
		path       string
		apiKey     string
		wantStatus int
	}{
		{"Rate recipe", "POST", "/recipes/smoked-duck/rate", "", http.StatusUnauthorized},
		{"Admin orders", "GET", "/admin/orders", "", http.StatusUnauthorized},
		{"Admin ratings", "GET", "/admin/ratings", "", http.StatusUnauthorized},
		{"Admin products", "POST", "/admin/products", "", http.StatusUnauthorized},
		{"Admin api keys", "POST", "/admin/api-keys", "", http.StatusUnauthorized},
		{"Malformed api key", "GET", "/admin/orders", "not-a-key", http.StatusUnauthorized},
		{"Unknown api key", "GET", "/admin/orders", "hk_0000000000000000", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code,
				"Protected route %s %s should return %d, got %d",
				tt.method, tt.path, tt.wantStatus, rec.Code)
		})
	}
}

func TestAdminRoutes_WithAPIKey(t *testing.T) {
	e, svc := setupTestEcho(t)
	c := newClient(t, e)
	c.headers["X-API-Key"] = createTestAPIKey(t, svc.storage.Queries)

	rec := c.do(http.MethodGet, "/admin/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"orders":[],"limit":50,"offset":0}`, rec.Body.String())

	rec = c.do(http.MethodGet, "/admin/orders?status=lost", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodGet, "/admin/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodGet, "/admin/ratings?status=pending", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	e, _ := setupTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "disabled", body["cache"])
	assert.Equal(t, "local", body["catalog"])
}

// TestCheckoutFlow drives a shopper from cart to a paid order through the router
func TestCheckoutFlow(t *testing.T) {
	e, svc := setupTestEcho(t)
	_, variant := seedProduct(t, svc.storage.Queries, 5)
	shopper := newClient(t, e)

	rec := shopper.do(http.MethodPost, "/api/cart/items", map[string]any{"variant_id": variant.ID, "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = shopper.do(http.MethodPost, "/checkout/create-session", map[string]any{
		"email": "hunter@example.com",
		"shipping_address": map[string]string{
			"name": "Jane Hunter", "line1": "1 Elk Ridge Rd", "city": "Bozeman",
			"state": "MT", "postal_code": "59715", "country": "US",
		},
		"same_as_shipping": true,
		"shipping_rate_id": "standard",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var session struct {
		SessionID string `json:"session_id"`
		URL       string `json:"url"`
		Quote     struct {
			SubtotalCents int64 `json:"subtotal_cents"`
			TotalCents    int64 `json:"total_cents"`
		} `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	require.NotEmpty(t, session.SessionID)
	assert.NotEmpty(t, session.URL)
	assert.Equal(t, int64(4998), session.Quote.SubtotalCents)
	// 4998 + 599 shipping + 200 tax at 400 bps
	assert.Equal(t, int64(5797), session.Quote.TotalCents)

	svc.fakeProvider(t).Complete(session.SessionID)

	webhook := newClient(t, e)
	webhook.headers["Stripe-Signature"] = "valid"
	payload := map[string]string{"id": "evt_1", "type": payments.EventCheckoutCompleted, "session_id": session.SessionID}
	for range 2 {
		rec = webhook.do(http.MethodPost, "/api/stripe/webhook", payload)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = shopper.do(http.MethodGet, fmt.Sprintf("/checkout/success?session_id=%s&format=json", session.SessionID), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var confirmed struct {
		Order db.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &confirmed))
	assert.Equal(t, "confirmed", confirmed.Order.Status)

	rec = shopper.do(http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"item_count":0`)

	admin := newClient(t, e)
	admin.headers["X-API-Key"] = createTestAPIKey(t, svc.storage.Queries)
	rec = admin.do(http.MethodGet, "/admin/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Orders []db.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Orders, 1)
	assert.Equal(t, confirmed.Order.ID, list.Orders[0].ID)

	left, err := svc.storage.Queries.GetProductVariant(t.Context(), variant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), left.InventoryQuantity)

	rec = admin.do(http.MethodPatch, "/admin/orders/"+confirmed.Order.ID, map[string]any{"status": "delivered", "version": confirmed.Order.Version})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = admin.do(http.MethodPatch, "/admin/orders/"+confirmed.Order.ID, map[string]any{"status": "processing"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// TestNonExistentRoute verifies that truly non-existent routes return 404
func TestNonExistentRoute(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"Random path", "GET", "/this-route-does-not-exist"},
		{"Random API path", "GET", "/api/nonexistent"},
		{"Unknown product", "GET", "/shop/products/no-such-thing"},
		{"Unknown recipe", "GET", "/recipes/no-such-thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code,
				"Non-existent route %s %s should return %d",
				tt.method, tt.path, http.StatusNotFound)
		})
	}
}
