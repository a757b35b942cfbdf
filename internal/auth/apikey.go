package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

const apiKeyPrefix = "hk_"

type APIKeyInfo struct {
	ID          string
	Name        string
	Permissions string
}

// extractAPIKey reads the X-API-Key header, or a Bearer token carrying an hk_ key.
func extractAPIKey(r *http.Request) string {
	if key := strings.TrimSpace(r.Header.Get("X-API-Key")); key != "" {
		return key
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer "+apiKeyPrefix) {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func authenticateAPIKey(ctx context.Context, store *storage.Storage, key string) (*APIKeyInfo, error) {
	if !strings.HasPrefix(key, apiKeyPrefix) {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid API key format")
	}

	apiKey, err := store.Queries.GetAPIKeyByHash(ctx, HashAPIKey(key))
	if err != nil {
		slog.Debug("API key lookup failed", "error", err)
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or inactive API key")
	}
	if !apiKey.IsActive {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "API key is inactive")
	}

	if err := store.Queries.UpdateAPIKeyLastUsed(ctx, apiKey.ID); err != nil {
		slog.Warn("failed to record API key use", "error", err, "api_key_id", apiKey.ID)
	}

	return &APIKeyInfo{
		ID:          apiKey.ID,
		Name:        apiKey.Name,
		Permissions: apiKey.Permissions,
	}, nil
}

// GetAPIKeyInfo returns the API key that authorized the request, if any.
func GetAPIKeyInfo(c echo.Context) *APIKeyInfo {
	info, _ := c.Get(APIKeyKey).(*APIKeyInfo)
	return info
}

// HasPermission checks if the API key has the specified permission.
func (a *APIKeyInfo) HasPermission(permission string) bool {
	if a == nil {
		return false
	}
	for _, p := range strings.Split(a.Permissions, ",") {
		p = strings.TrimSpace(p)
		if p == permission || p == "*" {
			return true
		}
	}
	return false
}

func HashAPIKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:])
}

// GenerateAPIKey creates a new API key.
// Returns the plaintext key (show once), hash (store), and prefix (display).
func GenerateAPIKey() (plaintext, hash, prefix string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", "", err
	}
	random := hex.EncodeToString(buf)
	plaintext = apiKeyPrefix + random
	prefix = apiKeyPrefix + random[:8] + "..."
	return plaintext, HashAPIKey(plaintext), prefix, nil
}

// CreateAPIKey generates and stores a key, returning the stored row and the plaintext.
func CreateAPIKey(ctx context.Context, queries *db.Queries, name, permissions string) (db.ApiKey, string, error) {
	plaintext, hash, prefix, err := GenerateAPIKey()
	if err != nil {
		return db.ApiKey{}, "", err
	}
	if permissions == "" {
		permissions = "*"
	}
	key, err := queries.CreateAPIKey(ctx, db.CreateAPIKeyParams{
		ID:          ulid.Make().String(),
		Name:        name,
		KeyHash:     hash,
		KeyPrefix:   prefix,
		Permissions: permissions,
	})
	if err != nil {
		return db.ApiKey{}, "", err
	}
	return key, plaintext, nil
}
