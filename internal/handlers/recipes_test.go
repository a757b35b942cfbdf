package handlers

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/recipes"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

func withSlug(c echo.Context, slug string) echo.Context {
	c.SetParamNames("slug")
	c.SetParamValues(slug)
	return c
}

func TestRecipes_ListAndDetail(t *testing.T) {
	e := newEnv(t)
	e.seedRecipe(t, "smoked-duck", true)
	e.seedRecipe(t, "draft-duck", false)
	h := NewRecipesHandler(e.store.Queries, e.aggregator, "https://huntkitchen.test")

	c, rec := NewTestContext(http.MethodGet, "/recipes", nil)
	require.NoError(t, h.HandleList(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/recipes/smoked-duck"`)
	assert.NotContains(t, rec.Body.String(), "draft-duck")

	c, rec = NewTestContext(http.MethodGet, "/recipes/smoked-duck", nil)
	require.NoError(t, h.HandleDetail(withSlug(c, "smoked-duck")))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Smoked Duck Breast")
	assert.Contains(t, body, `application/ld+json`)
	assert.Contains(t, body, "/recipes/smoked-duck/share.png")

	c, _ = NewTestContext(http.MethodGet, "/recipes/draft-duck", nil)
	err := h.HandleDetail(withSlug(c, "draft-duck"))
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestRecipes_RateAndRatings(t *testing.T) {
	e := newEnv(t)
	recipe := e.seedRecipe(t, "smoked-duck", true)
	h := NewRecipesHandler(e.store.Queries, e.aggregator, "")

	alice, err := CreateTestUserWithEmail(e.store.Queries, "alice@example.com")
	require.NoError(t, err)
	bob, err := CreateTestUserWithEmail(e.store.Queries, "bob@example.com")
	require.NoError(t, err)

	rate := func(user *db.User, body map[string]any) (int, recipes.Summary) {
		c, rec := NewTestContext(http.MethodPost, "/recipes/smoked-duck/rate", body)
		c.Request().Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
		if user != nil {
			SetTestUser(c, user)
		}
		err := h.HandleRate(withSlug(c, "smoked-duck"))
		if he, ok := err.(*echo.HTTPError); ok {
			return he.Code, recipes.Summary{}
		}
		require.NoError(t, err)
		var out struct {
			Summary recipes.Summary `json:"summary"`
		}
		_ = json.Unmarshal(rec.Body.Bytes(), &out)
		return rec.Code, out.Summary
	}

	code, _ := rate(nil, map[string]any{"rating": 5})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = rate(alice, map[string]any{"rating": 6})
	assert.Equal(t, http.StatusBadRequest, code)

	code, summary := rate(alice, map[string]any{"rating": 5, "review_text": "Perfect render"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 5.0, summary.AverageRating)

	code, summary = rate(bob, map[string]any{"rating": 2})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3.5, summary.AverageRating)
	assert.Equal(t, int64(2), summary.RatingCount)

	// rating again replaces the earlier rating
	code, summary = rate(bob, map[string]any{"rating": 4})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 4.5, summary.AverageRating)
	assert.Equal(t, int64(2), summary.RatingCount)

	// unapproved reviews are counted but not listed
	c, rec := NewTestContext(http.MethodGet, "/recipes/smoked-duck/ratings", nil)
	require.NoError(t, h.HandleRatings(withSlug(c, "smoked-duck")))
	require.Equal(t, http.StatusOK, rec.Code)
	var listed struct {
		Summary recipes.Summary  `json:"summary"`
		Ratings []map[string]any `json:"ratings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Equal(t, recipe.ID, listed.Summary.RecipeID)
	assert.Equal(t, int64(2), listed.Summary.RatingCount)
	assert.Empty(t, listed.Ratings)
}

func TestRecipes_RateFromForm(t *testing.T) {
	e := newEnv(t)
	e.seedRecipe(t, "smoked-duck", true)
	h := NewRecipesHandler(e.store.Queries, e.aggregator, "")
	user, err := CreateTestUser(e.store.Queries)
	require.NoError(t, err)

	c, rec := NewFormContext("/recipes/smoked-duck/rate", url.Values{"rating": {"4"}, "review_text": {"Great with cherries"}})
	SetTestUser(c, user)
	require.NoError(t, h.HandleRate(withSlug(c, "smoked-duck")))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/recipes/smoked-duck#ratings", rec.Header().Get("Location"))
}

func TestRecipes_SharePNG(t *testing.T) {
	e := newEnv(t)
	e.seedRecipe(t, "smoked-duck", true)
	h := NewRecipesHandler(e.store.Queries, e.aggregator, "")

	c, rec := NewTestContext(http.MethodGet, "/recipes/smoked-duck/share.png", nil)
	require.NoError(t, h.HandleSharePNG(withSlug(c, "smoked-duck")))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Bounds().Dx())
}
