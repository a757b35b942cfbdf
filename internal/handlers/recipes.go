package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/auth"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/ogimage"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/recipes"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
	"github.com/treysweeney3/hunt-kitchen-sub000/views/layout"
	recipeviews "github.com/treysweeney3/hunt-kitchen-sub000/views/recipes"
)

type RecipesHandler struct {
	queries    *db.Queries
	aggregator *recipes.Aggregator
	siteURL    string
}

func NewRecipesHandler(queries *db.Queries, aggregator *recipes.Aggregator, siteURL string) *RecipesHandler {
	return &RecipesHandler{queries: queries, aggregator: aggregator, siteURL: siteURL}
}

func (h *RecipesHandler) HandleList(c echo.Context) error {
	list, err := h.queries.ListPublishedRecipes(c.Request().Context(), db.ListPublishedRecipesParams{
		Limit:  queryInt(c, "limit", 48),
		Offset: queryInt(c, "offset", 0),
	})
	if err != nil {
		slog.Error("failed to list recipes", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load recipes")
	}

	if wantsJSON(c) {
		if list == nil {
			list = []db.Recipe{}
		}
		return c.JSON(http.StatusOK, map[string]any{"recipes": list})
	}

	meta := layout.NewPageMeta(h.siteURL, "/recipes").WithTitle("Wild Game Recipes")
	return Render(c, layout.Base(meta, recipeviews.List(list)))
}

// publishedRecipe loads a recipe by slug, hiding drafts
func (h *RecipesHandler) publishedRecipe(ctx context.Context, slug string) (db.Recipe, error) {
	recipe, err := h.queries.GetRecipeBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !recipe.IsPublished) {
		return db.Recipe{}, recipes.ErrRecipeNotFound
	}
	return recipe, err
}

func (h *RecipesHandler) recipeOr404(c echo.Context) (db.Recipe, error) {
	recipe, err := h.publishedRecipe(c.Request().Context(), c.Param("slug"))
	if errors.Is(err, recipes.ErrRecipeNotFound) {
		return recipe, echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
	}
	if err != nil {
		slog.Error("failed to get recipe", "error", err, "slug", c.Param("slug"))
		return recipe, echo.NewHTTPError(http.StatusInternalServerError, "Failed to load recipe")
	}
	return recipe, nil
}

func (h *RecipesHandler) HandleDetail(c echo.Context) error {
	recipe, err := h.recipeOr404(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	summary, err := h.aggregator.Summary(ctx, recipe.ID)
	if err != nil {
		slog.Warn("failed to load rating summary", "error", err, "recipe_id", recipe.ID)
		summary = recipes.Summary{RecipeID: recipe.ID, AverageRating: recipe.AverageRating, RatingCount: recipe.RatingCount}
	}
	ratings, err := h.aggregator.ApprovedRatings(ctx, recipe.ID)
	if err != nil {
		slog.Warn("failed to load ratings", "error", err, "recipe_id", recipe.ID)
		ratings = []db.ListApprovedRatingsRow{}
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, map[string]any{
			"recipe":  recipe,
			"summary": summary,
			"ratings": ratings,
		})
	}

	recipe.AverageRating = summary.AverageRating
	recipe.RatingCount = summary.RatingCount
	meta := layout.NewPageMeta(h.siteURL, "/recipes/"+recipe.Slug).FromRecipe(recipe)
	return Render(c, layout.Base(meta, recipeviews.Detail(recipe, summary, ratings)))
}

type RateRecipeRequest struct {
	Rating     int    `json:"rating" form:"rating"`
	ReviewText string `json:"review_text" form:"review_text"`
}

// HandleRate records the signed-in user's rating. Rating again replaces the earlier one.
func (h *RecipesHandler) HandleRate(c echo.Context) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Sign in to rate recipes")
	}

	recipe, err := h.recipeOr404(c)
	if err != nil {
		return err
	}

	var req RateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	result, err := h.aggregator.SubmitRating(c.Request().Context(), recipes.SubmitParams{
		RecipeID:   recipe.ID,
		UserID:     userID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	switch {
	case errors.Is(err, recipes.ErrInvalidRating):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, recipes.ErrRecipeNotFound):
		return errorJSON(c, http.StatusNotFound, err.Error())
	case err != nil:
		slog.Error("failed to submit rating", "error", err, "recipe_id", recipe.ID, "user_id", userID)
		return errorJSON(c, http.StatusInternalServerError, "Failed to save rating")
	}

	if isFormPost(c) && !wantsJSON(c) {
		return c.Redirect(http.StatusSeeOther, "/recipes/"+recipe.Slug+"#ratings")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"rating":  result.Rating,
		"summary": result.Summary,
	})
}

func (h *RecipesHandler) HandleRatings(c echo.Context) error {
	recipe, err := h.recipeOr404(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	summary, err := h.aggregator.Summary(ctx, recipe.ID)
	if err != nil {
		slog.Error("failed to load rating summary", "error", err, "recipe_id", recipe.ID)
		return errorJSON(c, http.StatusInternalServerError, "Failed to load ratings")
	}
	ratings, err := h.aggregator.ApprovedRatings(ctx, recipe.ID)
	if err != nil {
		slog.Error("failed to load ratings", "error", err, "recipe_id", recipe.ID)
		return errorJSON(c, http.StatusInternalServerError, "Failed to load ratings")
	}

	return c.JSON(http.StatusOK, map[string]any{"summary": summary, "ratings": ratings})
}

// HandleSharePNG renders the social card for a recipe
func (h *RecipesHandler) HandleSharePNG(c echo.Context) error {
	recipe, err := h.recipeOr404(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	card := ogimage.RecipeCard{
		Title:         recipe.Title,
		AverageRating: recipe.AverageRating,
		RatingCount:   recipe.RatingCount,
		TotalMinutes:  recipe.PrepMinutes + recipe.CookMinutes,
		Servings:      recipe.Servings,
	}
	if summary, err := h.aggregator.Summary(ctx, recipe.ID); err == nil {
		card.AverageRating = summary.AverageRating
		card.RatingCount = summary.RatingCount
	}
	if recipe.GameTypeID.Valid {
		if gt, err := h.queries.GetGameType(ctx, recipe.GameTypeID.String); err == nil {
			card.GameType = gt.Name
		}
	}

	var buf bytes.Buffer
	if err := ogimage.RenderRecipeCard(card, &buf); err != nil {
		slog.Error("failed to render share image", "error", err, "recipe_id", recipe.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render image")
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func isFormPost(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ct, echo.MIMEApplicationForm) || strings.HasPrefix(ct, echo.MIMEMultipartForm)
}
