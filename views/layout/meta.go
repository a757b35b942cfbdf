package layout

import (
	"fmt"
	"strings"

	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

const SiteName = "Hunt Kitchen"

const defaultDescription = "Wild game recipes from the field to the table, and the gear to cook them."

// PageMeta contains the metadata for a page (SEO, Open Graph, Schema.org)
type PageMeta struct {
	Title        string
	Description  string
	CanonicalURL string

	// Open Graph
	OGType      string // "website" or "article"
	OGImageURL  string // MUST be absolute URL
	TwitterCard string

	SiteURL string

	// Schema.org JSON-LD, marshalled by html/template inside the ld+json script
	Schema map[string]any
}

// NewPageMeta creates a PageMeta with site-wide defaults for the given path
func NewPageMeta(siteURL, path string) PageMeta {
	canonical := BuildAbsoluteURL(siteURL, path)
	return PageMeta{
		Title:        SiteName,
		Description:  defaultDescription,
		CanonicalURL: canonical,
		OGType:       "website",
		OGImageURL:   BuildAbsoluteURL(siteURL, "/public/images/social/default-og.jpg"),
		TwitterCard:  "summary_large_image",
		SiteURL:      siteURL,
	}
}

// WithTitle prefixes the site name with a page title
func (pm PageMeta) WithTitle(title string) PageMeta {
	if title != "" {
		pm.Title = title + " - " + SiteName
	}
	return pm
}

// FromRecipe points the metadata at a recipe page, its share image and Recipe schema
func (pm PageMeta) FromRecipe(recipe db.Recipe) PageMeta {
	pm = pm.WithTitle(recipe.Title)
	if recipe.Description.Valid && recipe.Description.String != "" {
		pm.Description = recipe.Description.String
	}
	pm.CanonicalURL = fmt.Sprintf("%s/recipes/%s", strings.TrimRight(pm.SiteURL, "/"), recipe.Slug)
	pm.OGType = "article"
	pm.OGImageURL = pm.CanonicalURL + "/share.png"
	pm.Schema = RecipeSchemaData(recipe, pm.CanonicalURL, pm.OGImageURL)
	return pm
}

// RecipeSchemaData returns the schema.org Recipe for JSON-LD
func RecipeSchemaData(recipe db.Recipe, pageURL, imageURL string) map[string]any {
	schema := map[string]any{
		"@context":           "https://schema.org/",
		"@type":              "Recipe",
		"name":               recipe.Title,
		"url":                pageURL,
		"image":              imageURL,
		"recipeYield":        fmt.Sprintf("%d servings", recipe.Servings),
		"prepTime":           fmt.Sprintf("PT%dM", recipe.PrepMinutes),
		"cookTime":           fmt.Sprintf("PT%dM", recipe.CookMinutes),
		"recipeIngredient":   SplitLines(recipe.Ingredients),
		"recipeInstructions": SplitLines(recipe.Instructions),
		"author": map[string]any{
			"@type": "Organization",
			"name":  SiteName,
		},
	}
	if recipe.Description.Valid {
		schema["description"] = recipe.Description.String
	}
	if recipe.RatingCount > 0 {
		schema["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": fmt.Sprintf("%.1f", recipe.AverageRating),
			"ratingCount": recipe.RatingCount,
			"bestRating":  5,
			"worstRating": 1,
		}
	}
	return schema
}

// SplitLines splits a newline separated field, dropping blank lines
func SplitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// BuildAbsoluteURL constructs an absolute URL from a path
func BuildAbsoluteURL(siteURL, path string) string {
	if path == "" {
		return siteURL
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	siteURL = strings.TrimRight(siteURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return siteURL + path
}
