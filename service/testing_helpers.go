package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/auth"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/payments"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

// setupTestService creates a service instance with an in-memory database and no external backends
func setupTestService(t *testing.T) *Service {
	t.Helper()

	store, cleanup, err := storage.NewTestStorage()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(cleanup)

	config := &Config{
		Environment: "test",
		Port:        "8080",
		BaseURL:     "http://localhost:8080",
	}
	config.Cart.CookieSecret = "test-cart-secret"
	config.Checkout.TaxRateBPS = 400

	svc, err := New(store, config)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	t.Cleanup(func() { svc.Close() })

	return svc
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	svc := setupTestService(t)
	svc.RegisterRoutes(e)

	return e, svc
}

// fakeProvider returns the in-memory payment provider used when Stripe is not configured
func (s *Service) fakeProvider(t *testing.T) *payments.FakeProvider {
	t.Helper()
	fake, ok := s.provider.(*payments.FakeProvider)
	if !ok {
		t.Fatalf("expected fake payment provider, got %T", s.provider)
	}
	return fake
}

// createTestAPIKey issues an admin API key and returns its plaintext
func createTestAPIKey(t *testing.T, queries *db.Queries) string {
	t.Helper()

	_, plaintext, err := auth.CreateAPIKey(context.Background(), queries, "test", "*")
	if err != nil {
		t.Fatalf("failed to create api key: %v", err)
	}
	return plaintext
}

// seedProduct creates an active product with one tracked variant
func seedProduct(t *testing.T, queries *db.Queries, inventory int64) (db.Product, db.ProductVariant) {
	t.Helper()
	ctx := context.Background()

	id := ulid.Make().String()
	product, err := queries.CreateProduct(ctx, db.CreateProductParams{
		ID:             id,
		Name:           "Pheasant Brine Kit",
		Slug:           "pheasant-brine-" + strings.ToLower(id),
		BasePriceCents: 2499,
		TrackInventory: true,
		IsActive:       true,
		Tags:           "brines,upland",
	})
	if err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	variant, err := queries.CreateProductVariant(ctx, db.CreateProductVariantParams{
		ID:                ulid.Make().String(),
		ProductID:         product.ID,
		Title:             "Default",
		Sku:               "PBK-" + id[16:],
		InventoryQuantity: inventory,
		IsActive:          true,
	})
	if err != nil {
		t.Fatalf("failed to create variant: %v", err)
	}
	return product, variant
}

// client replays cookies between requests like a browser would
type client struct {
	t       *testing.T
	e       *echo.Echo
	cookies map[string]*http.Cookie
	headers map[string]string
}

func newClient(t *testing.T, e *echo.Echo) *client {
	return &client{t: t, e: e, cookies: map[string]*http.Cookie{}, headers: map[string]string{}}
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(c.cookies, cookie.Name)
			continue
		}
		c.cookies[cookie.Name] = cookie
	}
	return rec
}
