package recipes

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/recipes"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

var backstrap = db.Recipe{
	ID:            "r1",
	Title:         "Smoked Backstrap",
	Slug:          "smoked-backstrap",
	PrepMinutes:   20,
	CookMinutes:   90,
	Servings:      4,
	Ingredients:   "1 venison backstrap\n\n2 tbsp juniper butter",
	Instructions:  "Smoke at 225F.\nRest 10 minutes.",
	AverageRating: 4.0,
	RatingCount:   2,
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List([]db.Recipe{backstrap}).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `href="/recipes/smoked-backstrap"`)
	assert.Contains(t, buf.String(), "1 hr 50 min")

	buf.Reset()
	require.NoError(t, List(nil).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "No recipes yet")
}

func TestDetail(t *testing.T) {
	ratings := []db.ListApprovedRatingsRow{{
		ID:           "rt1",
		Rating:       5,
		ReviewText:   sql.NullString{String: "<b>Great</b>", Valid: true},
		ReviewerName: "Jo",
		CreatedAt:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}}
	summary := recipes.Summary{RecipeID: "r1", AverageRating: 4.0, RatingCount: 2}

	var buf bytes.Buffer
	require.NoError(t, Detail(backstrap, summary, ratings).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `data-average="4.0"`)
	assert.Contains(t, html, `data-count="2"`)
	assert.Contains(t, html, `data-rating-id="rt1"`)
	assert.Contains(t, html, "&lt;b&gt;Great&lt;/b&gt;")
	assert.Contains(t, html, "<li>2 tbsp juniper butter</li>")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("data-rating-id")))
}
