package recipes

import (
	"html/template"

	"github.com/a-h/templ"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/recipes"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
	"github.com/treysweeney3/hunt-kitchen-sub000/views/components"
	"github.com/treysweeney3/hunt-kitchen-sub000/views/helpers"
	"github.com/treysweeney3/hunt-kitchen-sub000/views/layout"
)

var funcs = template.FuncMap{
	"stars":   helpers.Stars,
	"rating":  helpers.FormatRating,
	"minutes": helpers.FormatMinutes,
	"date":    helpers.FormatDate,
	"lines":   layout.SplitLines,
	"total":   func(r db.Recipe) int64 { return r.PrepMinutes + r.CookMinutes },
	"starsOf": func(n int64) string { return helpers.Stars(float64(n)) },
}

var listTmpl = template.Must(template.New("list").Funcs(funcs).Parse(`
<h1 class="text-3xl font-bold">Recipes</h1>
{{- if not .}}
<p class="mt-6 text-stone-600">No recipes yet. Check back after opening day.</p>
{{- else}}
<ul class="mt-6 grid gap-4 sm:grid-cols-2">
{{- range .}}
  <li class="rounded-lg bg-white p-4 shadow-sm">
    <a class="text-lg font-semibold hover:underline" href="/recipes/{{.Slug}}">{{.Title}}</a>
    <p class="text-sm text-amber-700" title="{{rating .AverageRating}} out of 5">{{stars .AverageRating}} <span class="text-stone-500">({{.RatingCount}})</span></p>
    <p class="text-sm text-stone-500">{{minutes (total .)}}</p>
  </li>
{{- end}}
</ul>
{{- end}}
`))

// List renders the published recipe index
func List(items []db.Recipe) templ.Component {
	return templ.FromGoHTML(listTmpl, items)
}

type detailData struct {
	Recipe      db.Recipe
	Summary     recipes.Summary
	Ratings     []db.ListApprovedRatingsRow
	ButtonClass string
}

var detailTmpl = template.Must(template.New("detail").Funcs(funcs).Parse(`
<article class="rounded-lg bg-white p-6 shadow-sm">
  <h1 class="text-3xl font-bold">{{.Recipe.Title}}</h1>
  <p class="mt-1 text-amber-700" data-average="{{rating .Summary.AverageRating}}" data-count="{{.Summary.RatingCount}}">
    {{stars .Summary.AverageRating}}
    {{- if .Summary.RatingCount}} {{rating .Summary.AverageRating}} ({{.Summary.RatingCount}} ratings){{else}} No ratings yet{{end}}
  </p>
  {{- if .Recipe.Description.Valid}}
  <p class="mt-4 text-stone-700">{{.Recipe.Description.String}}</p>
  {{- end}}
  <p class="mt-2 text-sm text-stone-500">Prep {{minutes .Recipe.PrepMinutes}} · Cook {{minutes .Recipe.CookMinutes}} · Serves {{.Recipe.Servings}}</p>

  <h2 class="mt-6 text-xl font-semibold">Ingredients</h2>
  <ul class="mt-2 list-disc pl-6">{{range lines .Recipe.Ingredients}}<li>{{.}}</li>{{end}}</ul>

  <h2 class="mt-6 text-xl font-semibold">Instructions</h2>
  <ol class="mt-2 list-decimal space-y-2 pl-6">{{range lines .Recipe.Instructions}}<li>{{.}}</li>{{end}}</ol>
</article>

<section class="mt-8" id="ratings">
  <h2 class="text-xl font-semibold">Reviews</h2>
  {{- if not .Ratings}}
  <p class="mt-2 text-stone-600">Be the first to review this recipe.</p>
  {{- end}}
  <ul class="mt-4 space-y-4">
  {{- range .Ratings}}
    <li class="rounded-md bg-white p-4 shadow-sm" data-rating-id="{{.ID}}">
      <p class="text-amber-700">{{starsOf .Rating}} <span class="text-sm text-stone-500">{{.ReviewerName}} · {{date .CreatedAt}}</span></p>
      {{- if .ReviewText.Valid}}<p class="mt-1 text-stone-700">{{.ReviewText.String}}</p>{{end}}
    </li>
  {{- end}}
  </ul>

  <form class="mt-6 space-y-2" method="post" action="/recipes/{{.Recipe.Slug}}/rate">
    <label class="block text-sm font-medium" for="rating">Your rating</label>
    <select id="rating" name="rating" class="rounded-md border-stone-300">
      <option value="5">5 - Outstanding</option><option value="4">4</option><option value="3">3</option><option value="2">2</option><option value="1">1</option>
    </select>
    <textarea name="review_text" rows="3" maxlength="2000" class="block w-full rounded-md border-stone-300" placeholder="How did it turn out?"></textarea>
    <button type="submit" class="{{.ButtonClass}}">Submit review</button>
  </form>
</section>
`))

// Detail renders a recipe with its rating summary and approved reviews
func Detail(recipe db.Recipe, summary recipes.Summary, ratings []db.ListApprovedRatingsRow) templ.Component {
	return templ.FromGoHTML(detailTmpl, detailData{
		Recipe:      recipe,
		Summary:     summary,
		Ratings:     ratings,
		ButtonClass: components.ButtonClass("mt-2"),
	})
}
