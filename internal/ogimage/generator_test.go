package ogimage

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRecipeCard(t *testing.T) {
	var buf bytes.Buffer
	err := RenderRecipeCard(RecipeCard{
		Title:         "Smoked Venison Backstrap with Juniper Butter and a Very Long Title That Wraps",
		GameType:      "Whitetail Deer",
		AverageRating: 4.3,
		RatingCount:   12,
		TotalMinutes:  95,
		Servings:      4,
	}, &buf)
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())
}

func TestRatingLabel(t *testing.T) {
	assert.Equal(t, "No ratings yet", ratingLabel(RecipeCard{}))
	assert.Equal(t, "5.0 (1 rating)", ratingLabel(RecipeCard{AverageRating: 5, RatingCount: 1}))
	assert.Equal(t, "4.0 (2 ratings)", ratingLabel(RecipeCard{AverageRating: 4, RatingCount: 2}))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 10))
	assert.Equal(t, "abcdefg...", truncateText("abcdefghijklmnop", 10))
}
