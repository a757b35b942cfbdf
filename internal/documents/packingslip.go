package documents

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/orders"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
	"github.com/treysweeney3/hunt-kitchen-sub000/views/helpers"
)

const (
	// Letter size is 215.9mm x 279.4mm
	pageWidth = 215.9
	margin    = 15.0
	qrSizeMM  = 32.0
	qrPixels  = 256

	colQty   = 16.0
	colSKU   = 40.0
	colPrice = 28.0
	colTotal = 28.0
)

// PackingSlip renders a one-page Letter PDF for the order with a QR code
// linking back to the admin order page.
func PackingSlip(order *db.Order, items []db.OrderItem, adminURL string) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("packing slip: order is required")
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle("Packing Slip "+order.OrderNumber, true)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, "Hunt Kitchen", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Packing Slip", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "Order "+order.OrderNumber, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Placed "+order.CreatedAt.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	if order.ShippingMethod.Valid {
		pdf.CellFormat(0, 5, "Shipping: "+tr(order.ShippingMethod.String), "", 1, "L", false, 0, "")
	}

	if adminURL != "" {
		png, err := qrcode.Encode(adminURL, qrcode.Medium, qrPixels)
		if err != nil {
			return nil, fmt.Errorf("failed to generate QR code: %w", err)
		}
		name := "qr-" + order.ID
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
		pdf.ImageOptions(name, pageWidth-margin-qrSizeMM, margin, qrSizeMM, qrSizeMM, false, opts, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Ship To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range orders.ShippingAddress(order).Lines() {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	descWidth := pageWidth - 2*margin - colQty - colSKU - colPrice - colTotal
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 230)
	pdf.CellFormat(colQty, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(descWidth, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colSKU, 7, "SKU", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colPrice, 7, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range items {
		pdf.CellFormat(colQty, 7, fmt.Sprintf("%d", it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(descWidth, 7, tr(itemLabel(it)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colSKU, 7, tr(it.Sku.String), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colPrice, 7, helpers.FormatPrice(it.UnitPriceCents), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 7, helpers.FormatPrice(it.TotalPriceCents), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	labelWidth := pageWidth - 2*margin - colTotal
	totals := []struct {
		label string
		cents int64
	}{
		{"Subtotal", order.SubtotalCents},
		{"Discount", -order.DiscountCents},
		{"Shipping", order.ShippingCents},
		{"Tax", order.TaxCents},
		{"Total", order.TotalCents},
	}
	for _, row := range totals {
		if row.label == "Discount" && row.cents == 0 {
			continue
		}
		style := ""
		if row.label == "Total" {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(labelWidth, 6, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 6, helpers.FormatPrice(row.cents), "", 1, "R", false, 0, "")
	}

	if order.CustomerNotes.Valid && strings.TrimSpace(order.CustomerNotes.String) != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Customer Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(order.CustomerNotes.String), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func itemLabel(it db.OrderItem) string {
	if it.VariantTitle.Valid && it.VariantTitle.String != "" {
		return it.ProductName + " - " + it.VariantTitle.String
	}
	return it.ProductName
}
