package auth

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	if req == nil {
		req = httptest.NewRequest(http.MethodGet, "/", nil)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func newStore(t *testing.T) *storage.Storage {
	t.Helper()
	store, cleanup, err := storage.NewTestStorage()
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return store
}

func strPtr(s string) *string { return &s }

func TestGetDBUser(t *testing.T) {
	c, _ := newContext(nil)
	user, ok := GetDBUser(c)
	assert.False(t, ok)
	assert.Nil(t, user)

	c.Set(DBUserKey, "not a user")
	_, ok = GetDBUser(c)
	assert.False(t, ok, "Should not cast wrong type")

	testUser := &db.User{ID: ulid.Make().String(), Email: "test@example.com"}
	c.Set(DBUserKey, testUser)
	user, ok = GetDBUser(c)
	require.True(t, ok)
	assert.Equal(t, testUser.ID, user.ID)

	id, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, testUser.ID, id)
}

func TestIsAuthenticated(t *testing.T) {
	c, _ := newContext(nil)
	assert.False(t, IsAuthenticated(c))

	c.Set(IsAuthenticatedKey, true)
	assert.True(t, IsAuthenticated(c))
}

func TestIsAdmin(t *testing.T) {
	c, _ := newContext(nil)
	assert.False(t, IsAdmin(c))

	c.Set(DBUserKey, &db.User{ID: "u1", IsAdmin: false})
	assert.False(t, IsAdmin(c))

	c.Set(DBUserKey, &db.User{ID: "u1", IsAdmin: true})
	assert.True(t, IsAdmin(c))
}

func TestBuildFullName(t *testing.T) {
	tests := []struct {
		first, last, username, email string
		want                         string
	}{
		{"Jo", "Hunter", "", "", "Jo Hunter"},
		{"Jo", "", "", "", "Jo"},
		{"", "Hunter", "", "", "Hunter"},
		{"", "", "jhunter", "", "jhunter"},
		{"", "", "", "jo@example.com", "jo@example.com"},
		{"", "", "", "", "User"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, buildFullName(tt.first, tt.last, tt.username, tt.email))
	}
}

func TestGetFirstEmail_PrefersPrimary(t *testing.T) {
	u := &clerk.User{
		PrimaryEmailAddressID: strPtr("e2"),
		EmailAddresses: []*clerk.EmailAddress{
			{ID: "e1", EmailAddress: "old@example.com"},
			{ID: "e2", EmailAddress: "primary@example.com"},
		},
	}
	assert.Equal(t, "primary@example.com", getFirstEmail(u))

	u.PrimaryEmailAddressID = nil
	assert.Equal(t, "old@example.com", getFirstEmail(u))
	assert.Equal(t, "", getFirstEmail(&clerk.User{}))
}

func TestGetOrCreateUser(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	calls := 0
	fetch := func(_ context.Context, clerkID string) (*clerk.User, error) {
		calls++
		u := &clerk.User{
			FirstName:      strPtr("Jo"),
			LastName:       strPtr("Hunter"),
			EmailAddresses: []*clerk.EmailAddress{{ID: "e1", EmailAddress: "jo@example.com"}},
		}
		u.ID = clerkID
		return u, nil
	}

	first, err := getOrCreateUser(ctx, store, fetch, "user_clerk_1")
	require.NoError(t, err)
	assert.Equal(t, "Jo Hunter", first.FullName)
	assert.Equal(t, "jo@example.com", first.Email)
	assert.False(t, first.IsAdmin)

	second, err := getOrCreateUser(ctx, store, fetch, "user_clerk_1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, calls, "known users are served from the database")

	_, err = getOrCreateUser(ctx, store, func(context.Context, string) (*clerk.User, error) {
		return nil, errors.New("clerk down")
	}, "user_clerk_2")
	assert.Error(t, err)
}

func TestRequireAdmin(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, plaintext, err := CreateAPIKey(ctx, store.Queries, "ci", "")
	require.NoError(t, err)

	inactive, inactivePlain, err := CreateAPIKey(ctx, store.Queries, "old", "")
	require.NoError(t, err)
	require.NoError(t, store.Queries.DeactivateAPIKey(ctx, inactive.ID))

	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	mw := RequireAdmin(store)(ok)

	tests := []struct {
		name   string
		setup  func(r *http.Request, c echo.Context)
		status int
	}{
		{"anonymous", func(*http.Request, echo.Context) {}, http.StatusUnauthorized},
		{"shopper", func(_ *http.Request, c echo.Context) { c.Set(DBUserKey, &db.User{ID: "u1"}) }, http.StatusForbidden},
		{"admin", func(_ *http.Request, c echo.Context) { c.Set(DBUserKey, &db.User{ID: "u1", IsAdmin: true}) }, http.StatusNoContent},
		{"api key header", func(r *http.Request, _ echo.Context) { r.Header.Set("X-API-Key", plaintext) }, http.StatusNoContent},
		{"api key bearer", func(r *http.Request, _ echo.Context) { r.Header.Set("Authorization", "Bearer "+plaintext) }, http.StatusNoContent},
		{"bad prefix", func(r *http.Request, _ echo.Context) { r.Header.Set("X-API-Key", "sk_nope") }, http.StatusUnauthorized},
		{"unknown key", func(r *http.Request, _ echo.Context) { r.Header.Set("X-API-Key", "hk_nope") }, http.StatusUnauthorized},
		{"inactive key", func(r *http.Request, _ echo.Context) { r.Header.Set("X-API-Key", inactivePlain) }, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
			c, rec := newContext(req)
			tt.setup(req, c)

			err := mw(c)
			if tt.status == http.StatusNoContent {
				require.NoError(t, err)
				assert.Equal(t, http.StatusNoContent, rec.Code)
				return
			}
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.status, he.Code)
		})
	}
}

func TestGenerateAPIKey(t *testing.T) {
	plaintext, hash, prefix, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(plaintext, "hk_"))
	assert.Len(t, plaintext, 3+64)
	assert.Equal(t, HashAPIKey(plaintext), hash)
	assert.True(t, strings.HasPrefix(plaintext, strings.TrimSuffix(prefix, "...")))
}

func TestAPIKeyInfo_HasPermission(t *testing.T) {
	var none *APIKeyInfo
	assert.False(t, none.HasPermission("orders"))
	assert.True(t, (&APIKeyInfo{Permissions: "orders, ratings"}).HasPermission("ratings"))
	assert.True(t, (&APIKeyInfo{Permissions: "*"}).HasPermission("orders"))
	assert.False(t, (&APIKeyInfo{Permissions: "ratings"}).HasPermission("orders"))
}

func TestExtractSessionToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", extractSessionToken(req))

	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", extractSessionToken(req))

	req.AddCookie(&http.Cookie{Name: "__session", Value: "cookie-token"})
	assert.Equal(t, "cookie-token", extractSessionToken(req))
}

func TestClerkAuth_SkipsAnonymousAndAPIKeys(t *testing.T) {
	store := newStore(t)
	called := false
	mw := clerkAuth(store, func(context.Context, string) (*clerk.User, error) {
		called = true
		return nil, sql.ErrNoRows
	})

	for _, header := range []string{"", "Bearer hk_123"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		c, _ := newContext(req)
		require.NoError(t, mw(func(c echo.Context) error { return nil })(c))
		assert.False(t, IsAuthenticated(c))
	}
	assert.False(t, called)
}
