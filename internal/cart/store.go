package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/session"
)

const (
	cartSessionKey = "cart"
	DefaultTTL     = 30 * 24 * time.Hour
)

// Store persists a cart for the shopper behind the current request
type Store interface {
	Load(c echo.Context) (*Cart, error)
	Save(c echo.Context, cart *Cart) error
	Clear(c echo.Context) error
}

// SessionStore keeps the cart inside the signed session cookie.
type SessionStore struct {
	sessions *session.Manager
}

func NewSessionStore(sessions *session.Manager) *SessionStore {
	return &SessionStore{sessions: sessions}
}

func (s *SessionStore) Load(c echo.Context) (*Cart, error) {
	raw, ok, err := s.sessions.Get(c, cartSessionKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return New(), nil
	}
	return decode([]byte(raw))
}

func (s *SessionStore) Save(c echo.Context, cart *Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	return s.sessions.Set(c, cartSessionKey, string(data))
}

func (s *SessionStore) Clear(c echo.Context) error {
	return s.sessions.Delete(c, cartSessionKey)
}

// RedisStore keeps the cart server side, keyed by the session id.
type RedisStore struct {
	client   *redis.Client
	sessions *session.Manager
	ttl      time.Duration
}

func NewRedisStore(client *redis.Client, sessions *session.Manager, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, sessions: sessions, ttl: ttl}
}

func (s *RedisStore) key(c echo.Context) (string, error) {
	id, err := s.sessions.ID(c)
	if err != nil {
		return "", err
	}
	return "cart:" + id, nil
}

func (s *RedisStore) Load(c echo.Context) (*Cart, error) {
	key, err := s.key(c)
	if err != nil {
		return nil, err
	}
	data, err := s.client.Get(c.Request().Context(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return decode(data)
}

func (s *RedisStore) Save(c echo.Context, cart *Cart) error {
	key, err := s.key(c)
	if err != nil {
		return err
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(c.Request().Context(), key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(c echo.Context) error {
	key, err := s.key(c)
	if err != nil {
		return err
	}
	return s.client.Del(c.Request().Context(), key).Err()
}

// Ping checks the redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func decode(data []byte) (*Cart, error) {
	cart := New()
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []Item{}
	}
	return cart, nil
}
