package shop

import (
	"html/template"

	"github.com/a-h/templ"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/catalog"
	"github.com/treysweeney3/hunt-kitchen-sub000/views/components"
	"github.com/treysweeney3/hunt-kitchen-sub000/views/helpers"
)

var funcs = template.FuncMap{
	"price": helpers.FormatPrice,
}

type listingData struct {
	Tag      string
	Products []catalog.Product
}

var listingTmpl = template.Must(template.New("listing").Funcs(funcs).Parse(`
<h1 class="text-3xl font-bold">Shop{{if .Tag}} <span class="text-stone-500">/ {{.Tag}}</span>{{end}}</h1>
{{- if not .Products}}
<p class="mt-6 text-stone-600">Nothing on the shelves right now.</p>
{{- else}}
<ul class="mt-6 grid gap-4 sm:grid-cols-3">
{{- range .Products}}
  <li class="rounded-lg bg-white p-4 shadow-sm" data-handle="{{.Handle}}">
    {{- if .ImageURL}}<img class="aspect-square w-full rounded object-cover" src="{{.ImageURL}}" alt="{{.Title}}">{{end}}
    <a class="mt-2 block font-semibold hover:underline" href="/shop/products/{{.Handle}}">{{.Title}}</a>
    <p class="text-sm">{{price .PriceCents}}{{if gt .CompareAtPriceCents .PriceCents}} <s class="text-stone-400">{{price .CompareAtPriceCents}}</s>{{end}}</p>
  </li>
{{- end}}
</ul>
{{- end}}
`))

// Listing renders a product grid, optionally for a single tag
func Listing(tag string, products []catalog.Product) templ.Component {
	return templ.FromGoHTML(listingTmpl, listingData{Tag: tag, Products: products})
}

type productData struct {
	Product     catalog.Product
	ButtonClass string
}

var productTmpl = template.Must(template.New("product").Funcs(funcs).Parse(`
<article class="grid gap-6 rounded-lg bg-white p-6 shadow-sm md:grid-cols-2" data-product-id="{{.Product.ID}}">
  {{- if .Product.ImageURL}}<img class="w-full rounded object-cover" src="{{.Product.ImageURL}}" alt="{{.Product.Title}}">{{end}}
  <div>
    <h1 class="text-3xl font-bold">{{.Product.Title}}</h1>
    {{- if .Product.Description}}<p class="mt-4 text-stone-700">{{.Product.Description}}</p>{{end}}
    <ul class="mt-6 space-y-2">
    {{- range .Product.Variants}}
      <li class="flex items-center justify-between rounded border p-3" data-variant-id="{{.ID}}">
        <span>{{.Title}} <span class="text-sm text-stone-500">{{price .PriceCents}}</span></span>
        {{- if .InStock 1}}
        <button type="button" class="{{$.ButtonClass}}" data-add-to-cart="{{.ID}}">Add to cart</button>
        {{- else}}
        <span class="text-sm text-stone-500">Sold out</span>
        {{- end}}
      </li>
    {{- end}}
    </ul>
  </div>
</article>
`))

// Product renders a product page with its variants
func Product(product catalog.Product) templ.Component {
	return templ.FromGoHTML(productTmpl, productData{Product: product, ButtonClass: components.ButtonClass()})
}
