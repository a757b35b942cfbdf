package layout

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

func TestBuildAbsoluteURL(t *testing.T) {
	assert.Equal(t, "https://hk.test/recipes", BuildAbsoluteURL("https://hk.test/", "recipes"))
	assert.Equal(t, "https://cdn.test/a.png", BuildAbsoluteURL("https://hk.test", "https://cdn.test/a.png"))
	assert.Equal(t, "https://hk.test", BuildAbsoluteURL("https://hk.test", ""))
}

func TestFromRecipe(t *testing.T) {
	recipe := db.Recipe{Title: "Duck Confit", Slug: "duck-confit", Servings: 2, RatingCount: 3, AverageRating: 4.3}
	meta := NewPageMeta("https://hk.test", "/recipes/duck-confit").FromRecipe(recipe)

	assert.Equal(t, "Duck Confit - Hunt Kitchen", meta.Title)
	assert.Equal(t, "https://hk.test/recipes/duck-confit/share.png", meta.OGImageURL)
	assert.Equal(t, "article", meta.OGType)
	require.Contains(t, meta.Schema, "aggregateRating")
	assert.Equal(t, "4.3", meta.Schema["aggregateRating"].(map[string]any)["ratingValue"])
}

func TestBase(t *testing.T) {
	meta := NewPageMeta("https://hk.test", "/").FromRecipe(db.Recipe{Title: "Elk Chili", Slug: "elk-chili"})
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>body</p>")
		return err
	})

	var buf bytes.Buffer
	require.NoError(t, Base(meta, body).Render(context.Background(), &buf))
	html := buf.String()
	assert.Contains(t, html, "<title>Elk Chili - Hunt Kitchen</title>")
	assert.Contains(t, html, "<p>body</p>")
	assert.Contains(t, html, `"@type":"Recipe"`)
}
