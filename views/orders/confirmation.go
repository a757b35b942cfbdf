package orders

import (
	"html/template"

	"github.com/a-h/templ"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/orders"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
	"github.com/treysweeney3/hunt-kitchen-sub000/views/components"
	"github.com/treysweeney3/hunt-kitchen-sub000/views/helpers"
)

type confirmationData struct {
	Order         *db.Order
	Items         []db.OrderItem
	ShippingLines []string
	BadgeClass    string
}

var funcs = template.FuncMap{
	"price": helpers.FormatPrice,
	"date":  helpers.FormatDate,
}

var confirmationTmpl = template.Must(template.New("confirmation").Funcs(funcs).Parse(`
<section class="rounded-lg bg-white p-6 shadow-sm" data-order-number="{{.Order.OrderNumber}}">
  <h1 class="text-2xl font-bold">Thank you for your order!</h1>
  <p class="mt-2 text-stone-600">Order <strong>{{.Order.OrderNumber}}</strong> placed {{date .Order.CreatedAt}}.
    A confirmation was sent to {{.Order.Email}}.</p>
  <p class="mt-2"><span class="{{.BadgeClass}}">{{.Order.Status}}</span></p>

  <table class="mt-6 w-full text-sm">
    <thead><tr class="border-b text-left"><th class="py-2">Item</th><th class="py-2 text-center">Qty</th><th class="py-2 text-right">Price</th><th class="py-2 text-right">Total</th></tr></thead>
    <tbody>
    {{- range .Items}}
      <tr class="border-b">
        <td class="py-2">{{.ProductName}}{{if .VariantTitle.Valid}} <span class="text-stone-500">({{.VariantTitle.String}})</span>{{end}}</td>
        <td class="py-2 text-center">{{.Quantity}}</td>
        <td class="py-2 text-right">{{price .UnitPriceCents}}</td>
        <td class="py-2 text-right">{{price .TotalPriceCents}}</td>
      </tr>
    {{- end}}
    </tbody>
  </table>

  <dl class="mt-4 ml-auto w-64 space-y-1 text-sm">
    <div class="flex justify-between"><dt>Subtotal</dt><dd>{{price .Order.SubtotalCents}}</dd></div>
    {{- if gt .Order.DiscountCents 0}}
    <div class="flex justify-between text-emerald-700"><dt>Discount</dt><dd>-{{price .Order.DiscountCents}}</dd></div>
    {{- end}}
    <div class="flex justify-between"><dt>Shipping</dt><dd>{{price .Order.ShippingCents}}</dd></div>
    <div class="flex justify-between"><dt>Tax</dt><dd>{{price .Order.TaxCents}}</dd></div>
    <div class="flex justify-between border-t pt-1 font-semibold"><dt>Total</dt><dd>{{price .Order.TotalCents}}</dd></div>
  </dl>

  <h2 class="mt-6 font-semibold">Shipping to</h2>
  <address class="not-italic text-stone-700">{{range .ShippingLines}}{{.}}<br>{{end}}</address>
</section>
`))

// Confirmation renders the order summary shown after a successful checkout
func Confirmation(order *db.Order, items []db.OrderItem) templ.Component {
	return templ.FromGoHTML(confirmationTmpl, confirmationData{
		Order:         order,
		Items:         items,
		ShippingLines: orders.ShippingAddress(order).Lines(),
		BadgeClass:    components.StatusBadgeClass(order.Status),
	})
}

var pendingTmpl = template.Must(template.New("pending").Parse(`
<section class="rounded-lg bg-white p-6 shadow-sm">
  <h1 class="text-2xl font-bold">Payment received</h1>
  <p class="mt-2 text-stone-600">We're finishing up your order. You'll receive a confirmation email shortly.</p>
  <p class="mt-4"><a class="{{.}}" href="/recipes">Browse recipes</a></p>
</section>
`))

// Pending is shown when the payment is confirmed but the order could not be loaded yet
func Pending() templ.Component {
	return templ.FromGoHTML(pendingTmpl, components.ButtonClass())
}
