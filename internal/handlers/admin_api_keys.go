package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/auth"
)

type CreateAPIKeyRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type CreateAPIKeyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Prefix      string `json:"prefix"`
	Permissions string `json:"permissions"`
	Key         string `json:"key"`
}

// HandleAPIKeyCreate issues a key for integrations. The plaintext is only ever returned here.
func (h *AdminHandler) HandleAPIKeyCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateAPIKeyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required"})
	}

	key, plaintext, err := auth.CreateAPIKey(ctx, h.storage.Queries, req.Name, strings.Join(req.Permissions, ","))
	if err != nil {
		slog.Error("failed to create API key", "error", err, "name", req.Name)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create API key"})
	}

	slog.Info("API key created", "name", key.Name, "id", key.ID)

	return c.JSON(http.StatusCreated, CreateAPIKeyResponse{
		ID:          key.ID,
		Name:        key.Name,
		Prefix:      key.KeyPrefix,
		Permissions: key.Permissions,
		Key:         plaintext,
	})
}

// HandleAPIKeyRevoke deactivates a key; requests made with it are rejected from then on
func (h *AdminHandler) HandleAPIKeyRevoke(c echo.Context) error {
	id := c.Param("id")

	if err := h.storage.Queries.DeactivateAPIKey(c.Request().Context(), id); err != nil {
		slog.Error("failed to revoke API key", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to revoke API key")
	}

	slog.Info("API key revoked", "id", id)
	return c.NoContent(http.StatusNoContent)
}
