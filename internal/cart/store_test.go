package cart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/session"
)

func newContext(e *echo.Echo, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	e := echo.New()

	c, rec := newContext(e, nil)
	empty, err := store.Load(c)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	cart := New()
	require.NoError(t, cart.AddItem(jerky, variant("v1", 2499, nil), 2))
	require.NoError(t, store.Save(c, cart))
	cookies := rec.Result().Cookies()

	c2, rec2 := newContext(e, cookies)
	loaded, err := store.Load(c2)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, int64(4998), loaded.Subtotal())

	require.NoError(t, store.Clear(c2))
	if fresh := rec2.Result().Cookies(); len(fresh) > 0 {
		cookies = fresh
	}

	c3, _ := newContext(e, cookies)
	cleared, err := store.Load(c3)
	require.NoError(t, err)
	assert.True(t, cleared.IsEmpty())
}

func TestSessionStore(t *testing.T) {
	exerciseStore(t, NewSessionStore(session.NewManager("cart-test-secret-cart-test-secre", false)))
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	store := NewRedisStore(client, session.NewManager("cart-test-secret-cart-test-secre", false), time.Minute)
	require.NoError(t, store.Ping(context.Background()))
	exerciseStore(t, store)
}
