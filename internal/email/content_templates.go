package email

// customerOrderContentTemplate is the content section for customer order emails
const customerOrderContentTemplate = `
<div style="text-align: center; margin-bottom: 30px;">
    <h1 style="color: #3b4a2f; margin: 0; font-size: 26px;">Order Confirmed</h1>
    <p style="font-size: 17px; color: #666; margin: 10px 0;">Thanks for your order, {{.CustomerName}}.</p>
</div>

<div style="background-color: #f7f4ec; padding: 18px; border-left: 4px solid #3b4a2f; margin-bottom: 25px;">
    <p style="margin: 5px 0;"><strong>Order Number:</strong> {{.OrderNumber}}</p>
    <p style="margin: 5px 0;"><strong>Order Date:</strong> {{.OrderDate}}</p>
    {{if .ShippingMethod}}<p style="margin: 5px 0;"><strong>Shipping:</strong> {{.ShippingMethod}}</p>{{end}}
</div>

<table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
    <thead>
        <tr style="background-color: #3b4a2f;">
            <th style="color: #f3efe6; padding: 10px; text-align: left;">Item</th>
            <th style="color: #f3efe6; padding: 10px; text-align: center;">Qty</th>
            <th style="color: #f3efe6; padding: 10px; text-align: right;">Total</th>
        </tr>
    </thead>
    <tbody>
        {{range .Items}}
        <tr style="border-bottom: 1px solid #e4dfd3;">
            <td style="padding: 10px;">{{.ProductName}}{{if .VariantTitle}} <span style="color: #888;">({{.VariantTitle}})</span>{{end}}</td>
            <td style="padding: 10px; text-align: center;">{{.Quantity}}</td>
            <td style="padding: 10px; text-align: right;">{{FormatCents .TotalCents}}</td>
        </tr>
        {{end}}
    </tbody>
</table>

<table style="width: 100%; margin-top: 10px;">
    <tr><td>Subtotal</td><td style="text-align: right;">{{FormatCents .SubtotalCents}}</td></tr>
    {{if .DiscountCents}}<tr><td>Discount</td><td style="text-align: right;">-{{FormatCents .DiscountCents}}</td></tr>{{end}}
    <tr><td>Shipping</td><td style="text-align: right;">{{FormatCents .ShippingCents}}</td></tr>
    <tr><td>Tax</td><td style="text-align: right;">{{FormatCents .TaxCents}}</td></tr>
    <tr style="font-size: 18px; font-weight: bold; color: #3b4a2f;"><td>Total</td><td style="text-align: right;">{{FormatCents .TotalCents}}</td></tr>
</table>

<div style="background-color: #f7f4ec; padding: 18px; margin-top: 25px;">
    <h3 style="margin-top: 0; font-size: 16px;">Shipping To</h3>
    <p style="margin: 5px 0;">{{range .ShippingLines}}{{.}}<br>{{end}}</p>
</div>

<div style="text-align: center; margin-top: 30px; color: #777; font-size: 14px;">
    <p>We will email you tracking details as soon as your order ships.</p>
    <p>Questions? Reply to this email or write to {{.SupportEmail}}.</p>
</div>
`

// adminOrderContentTemplate is the content section for admin order notification emails
const adminOrderContentTemplate = `
<div style="margin-bottom: 20px;">
    <span style="display: inline-block; background-color: #a0522d; color: white; padding: 4px 12px; border-radius: 12px; font-size: 13px;">NEW ORDER</span>
    <h1 style="color: #a0522d; margin: 10px 0; font-size: 24px;">{{.OrderNumber}} - {{FormatCents .TotalCents}}</h1>
</div>

<p><strong>Customer:</strong> {{.CustomerName}} &lt;<a href="mailto:{{.CustomerEmail}}">{{.CustomerEmail}}</a>&gt;</p>
<p><strong>Payment:</strong> {{.PaymentIntentID}}</p>
{{if .CustomerNotes}}<p><strong>Customer notes:</strong> {{.CustomerNotes}}</p>{{end}}

<table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
    <thead>
        <tr style="background-color: #a0522d;">
            <th style="color: white; padding: 8px; text-align: left;">SKU</th>
            <th style="color: white; padding: 8px; text-align: left;">Item</th>
            <th style="color: white; padding: 8px; text-align: center;">Qty</th>
            <th style="color: white; padding: 8px; text-align: right;">Unit</th>
        </tr>
    </thead>
    <tbody>
        {{range .Items}}
        <tr style="border-bottom: 1px solid #ddd;">
            <td style="padding: 8px; font-family: monospace;">{{.SKU}}</td>
            <td style="padding: 8px;">{{.ProductName}}{{if .VariantTitle}} ({{.VariantTitle}}){{end}}</td>
            <td style="padding: 8px; text-align: center;">{{.Quantity}}</td>
            <td style="padding: 8px; text-align: right;">{{FormatCents .PriceCents}}</td>
        </tr>
        {{end}}
    </tbody>
</table>

<div style="display: grid; grid-template-columns: 1fr 1fr; gap: 20px;">
    <div>
        <h3 style="font-size: 15px;">Ship To{{if .ShippingMethod}} ({{.ShippingMethod}}){{end}}</h3>
        <p>{{range .ShippingLines}}{{.}}<br>{{end}}</p>
    </div>
    <div>
        <h3 style="font-size: 15px;">Bill To</h3>
        <p>{{range .BillingLines}}{{.}}<br>{{end}}</p>
    </div>
</div>

<p style="text-align: center; margin: 30px 0;">
    <a href="{{.AdminURL}}" style="display: inline-block; padding: 10px 26px; background-color: #a0522d; color: white; text-decoration: none; border-radius: 4px;">Open Order</a>
</p>
`
