package layout

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

var (
	head = template.Must(template.New("head").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
<link rel="canonical" href="{{.CanonicalURL}}">
<meta property="og:type" content="{{.OGType}}">
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
<meta property="og:url" content="{{.CanonicalURL}}">
<meta property="og:image" content="{{.OGImageURL}}">
<meta property="og:site_name" content="Hunt Kitchen">
<meta name="twitter:card" content="{{.TwitterCard}}">
<link rel="stylesheet" href="/public/css/styles.css">
{{- if .Schema}}
<script type="application/ld+json">{{.Schema}}</script>
{{- end}}
</head>
<body class="bg-stone-50 text-stone-900">
<header class="border-b border-stone-200 bg-emerald-950 text-amber-200">
<nav class="mx-auto flex max-w-5xl items-center justify-between px-4 py-3">
<a href="/" class="text-lg font-bold tracking-wide">HUNT KITCHEN</a>
<span class="space-x-4 text-sm"><a href="/recipes">Recipes</a><a href="/shop">Shop</a></span>
</nav>
</header>
<main class="mx-auto max-w-5xl px-4 py-8">
`))
	foot = `</main>
</body>
</html>
`
)

// Base wraps a page body in the site chrome
func Base(meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := head.Execute(w, meta); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, foot)
		return err
	})
}
