package session

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "hk_session"
	idKey       = "sid"
)

// Manager manages the shopper's browser session
type Manager struct {
	store sessions.Store
}

// NewManager creates a session manager backed by a signed cookie
func NewManager(secret string, secure bool) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store}
}

// ID returns the session id, creating and persisting one if the session is new
func (m *Manager) ID(c echo.Context) (string, error) {
	sess, err := m.get(c)
	if err != nil {
		return "", err
	}

	if id, ok := sess.Values[idKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.New().String()
	sess.Values[idKey] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return id, nil
}

// Get reads a string value from the session
func (m *Manager) Get(c echo.Context, key string) (string, bool, error) {
	sess, err := m.get(c)
	if err != nil {
		return "", false, err
	}
	v, ok := sess.Values[key].(string)
	return v, ok, nil
}

// Set stores a string value in the session
func (m *Manager) Set(c echo.Context, key, value string) error {
	sess, err := m.get(c)
	if err != nil {
		return err
	}
	sess.Values[key] = value
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a value from the session
func (m *Manager) Delete(c echo.Context, key string) error {
	sess, err := m.get(c)
	if err != nil {
		return err
	}
	delete(sess.Values, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// get tolerates cookies signed with a rotated secret by starting a fresh session.
func (m *Manager) get(c echo.Context) (*sessions.Session, error) {
	sess, err := m.store.Get(c.Request(), sessionName)
	if err != nil && sess == nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}
