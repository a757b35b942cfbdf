package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/recipes"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/utils"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

// AdminHandler serves catalog, recipe and moderation endpoints behind RequireAdmin
type AdminHandler struct {
	storage    *storage.Storage
	aggregator *recipes.Aggregator
}

func NewAdminHandler(storage *storage.Storage, aggregator *recipes.Aggregator) *AdminHandler {
	return &AdminHandler{storage: storage, aggregator: aggregator}
}

// HandleRatingsList lists ratings awaiting moderation, or approved ones with ?status=approved
func (h *AdminHandler) HandleRatingsList(c echo.Context) error {
	approved := false
	switch c.QueryParam("status") {
	case "", "pending":
	case "approved":
		approved = true
	default:
		return errorJSON(c, http.StatusBadRequest, "status must be pending or approved")
	}

	rows, err := h.aggregator.ModerationQueue(c.Request().Context(), approved, queryInt(c, "limit", 100))
	if err != nil {
		slog.Error("failed to list ratings", "error", err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to load ratings")
	}
	if rows == nil {
		rows = []db.ListRatingsByApprovalRow{}
	}
	return c.JSON(http.StatusOK, map[string]any{"ratings": rows})
}

func (h *AdminHandler) HandleApproveRating(c echo.Context) error {
	return h.setApproval(c, true)
}

func (h *AdminHandler) HandleUnapproveRating(c echo.Context) error {
	return h.setApproval(c, false)
}

func (h *AdminHandler) setApproval(c echo.Context, approved bool) error {
	rating, err := h.aggregator.SetApproval(c.Request().Context(), c.Param("id"), approved)
	if errors.Is(err, recipes.ErrRatingNotFound) {
		return errorJSON(c, http.StatusNotFound, err.Error())
	}
	if err != nil {
		slog.Error("failed to moderate rating", "error", err, "rating_id", c.Param("id"))
		return errorJSON(c, http.StatusInternalServerError, "Failed to update rating")
	}
	return c.JSON(http.StatusOK, rating)
}

type CreateProductRequest struct {
	Name                string   `json:"name"`
	Slug                string   `json:"slug"`
	Description         string   `json:"description"`
	ImageURL            string   `json:"image_url"`
	CategoryID          string   `json:"category_id"`
	BasePriceCents      int64    `json:"base_price_cents"`
	CompareAtPriceCents int64    `json:"compare_at_price_cents"`
	TrackInventory      *bool    `json:"track_inventory"`
	Active              *bool    `json:"is_active"`
	Tags                []string `json:"tags"`
}

func (h *AdminHandler) HandleCreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return errorJSON(c, http.StatusBadRequest, "name is required")
	}
	if req.BasePriceCents < 0 || req.CompareAtPriceCents < 0 {
		return errorJSON(c, http.StatusBadRequest, "prices cannot be negative")
	}
	slug := utils.Slugify(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	product, err := h.storage.Queries.CreateProduct(c.Request().Context(), db.CreateProductParams{
		ID:                  ulid.Make().String(),
		CategoryID:          nullString(req.CategoryID),
		Name:                req.Name,
		Slug:                slug,
		Description:         nullString(req.Description),
		ImageUrl:            nullString(req.ImageURL),
		BasePriceCents:      req.BasePriceCents,
		CompareAtPriceCents: nullCents(req.CompareAtPriceCents),
		TrackInventory:      boolOr(req.TrackInventory, true),
		IsActive:            boolOr(req.Active, true),
		Tags:                strings.Join(req.Tags, ","),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return errorJSON(c, http.StatusConflict, "a product with that slug already exists")
		}
		if isForeignKeyViolation(err) {
			return errorJSON(c, http.StatusBadRequest, "unknown category")
		}
		slog.Error("failed to create product", "error", err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to create product")
	}

	slog.Info("product created", "product_id", product.ID, "slug", product.Slug)
	return c.JSON(http.StatusCreated, product)
}

type CreateRecipeRequest struct {
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	GameTypeID   string `json:"game_type_id"`
	CategoryID   string `json:"category_id"`
	PrepMinutes  int64  `json:"prep_minutes"`
	CookMinutes  int64  `json:"cook_minutes"`
	Servings     int64  `json:"servings"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	ImageURL     string `json:"image_url"`
	Published    bool   `json:"is_published"`
}

func (h *AdminHandler) HandleCreateRecipe(c echo.Context) error {
	var req CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	req.Title = strings.TrimSpace(req.Title)
	fields := map[string]string{}
	if req.Title == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(req.Ingredients) == "" {
		fields["ingredients"] = "ingredients are required"
	}
	if strings.TrimSpace(req.Instructions) == "" {
		fields["instructions"] = "instructions are required"
	}
	if req.PrepMinutes < 0 || req.CookMinutes < 0 || req.Servings < 0 {
		fields["times"] = "times and servings cannot be negative"
	}
	if len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid recipe", "fields": fields})
	}

	slug := utils.Slugify(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}

	recipe, err := h.storage.Queries.CreateRecipe(c.Request().Context(), db.CreateRecipeParams{
		ID:           ulid.Make().String(),
		Title:        req.Title,
		Slug:         slug,
		Description:  nullString(req.Description),
		GameTypeID:   nullString(req.GameTypeID),
		CategoryID:   nullString(req.CategoryID),
		PrepMinutes:  req.PrepMinutes,
		CookMinutes:  req.CookMinutes,
		Servings:     req.Servings,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageUrl:     nullString(req.ImageURL),
		IsPublished:  req.Published,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return errorJSON(c, http.StatusConflict, "a recipe with that slug already exists")
		}
		if isForeignKeyViolation(err) {
			return errorJSON(c, http.StatusBadRequest, "unknown game type or category")
		}
		slog.Error("failed to create recipe", "error", err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to create recipe")
	}

	slog.Info("recipe created", "recipe_id", recipe.ID, "slug", recipe.Slug)
	return c.JSON(http.StatusCreated, recipe)
}

func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

func nullCents(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v > 0}
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
