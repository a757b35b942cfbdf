package auth

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/clerk/clerk-sdk-go/v2/user"
	"github.com/labstack/echo/v4"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

// Context keys for storing auth data
const (
	DBUserKey          = "db_user"
	IsAuthenticatedKey = "is_authenticated"
	APIKeyKey          = "api_key"
)

// ClerkUserFetcher loads the full Clerk user for a verified session subject.
type ClerkUserFetcher func(ctx context.Context, clerkID string) (*clerk.User, error)

// ClerkAuthMiddleware verifies Clerk session tokens and loads the user from the database,
// syncing it from the Clerk API on first sight. Unauthenticated requests pass through.
func ClerkAuthMiddleware(store *storage.Storage) echo.MiddlewareFunc {
	return clerkAuth(store, user.Get)
}

func clerkAuth(store *storage.Storage, fetch ClerkUserFetcher) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(IsAuthenticatedKey, false)

			token := extractSessionToken(c.Request())
			if token == "" || strings.HasPrefix(token, apiKeyPrefix) {
				return next(c)
			}

			claims, err := jwt.Verify(c.Request().Context(), &jwt.VerifyParams{Token: token})
			if err != nil {
				slog.Debug("clerk session verification failed", "error", err, "path", c.Request().URL.Path)
				clearAuthCookie(c)
				return next(c)
			}

			dbUser, err := getOrCreateUser(c.Request().Context(), store, fetch, claims.Subject)
			if err != nil {
				slog.Error("failed to load authenticated user", "error", err, "clerk_id", claims.Subject)
				return next(c)
			}

			c.Set(DBUserKey, dbUser)
			c.Set(IsAuthenticatedKey, true)
			return next(c)
		}
	}
}

// extractSessionToken gets the Clerk session token from the __session cookie or Authorization header
func extractSessionToken(r *http.Request) string {
	if cookie, err := r.Cookie("__session"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if auth := strings.TrimSpace(r.Header.Get("Authorization")); auth != "" {
		if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
			return strings.TrimSpace(auth[7:])
		}
		return auth
	}

	return ""
}

// getOrCreateUser finds the user by Clerk ID, falling back to a Clerk API fetch and sync
func getOrCreateUser(ctx context.Context, store *storage.Storage, fetch ClerkUserFetcher, clerkID string) (*db.User, error) {
	dbUser, err := store.Queries.GetUserByClerkID(ctx, toNullString(clerkID))
	if err == nil {
		return &dbUser, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	clerkUser, err := fetch(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	return syncUserToDatabase(ctx, store.Queries, clerkUser)
}

func clearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     "__session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireAuth returns 401 unless a Clerk session was verified for the request
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := GetDBUser(c); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			return next(c)
		}
	}
}

// RequireAdmin allows requests carrying an active API key or coming from an admin user
func RequireAdmin(store *storage.Storage) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key := extractAPIKey(c.Request()); key != "" {
				info, err := authenticateAPIKey(c.Request().Context(), store, key)
				if err != nil {
					return err
				}
				c.Set(APIKeyKey, info)
				return next(c)
			}

			dbUser, ok := GetDBUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			if !dbUser.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}
