// Package checkout turns a cart into a priced, validated hosted checkout session.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/treysweeney3/hunt-kitchen-sub000/internal/catalog"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/payments"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/types"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrItemUnavailable   = errors.New("item is no longer available")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrProviderFailed    = errors.New("failed to create checkout session")
)

const maxMetadataValue = 500

// ItemError identifies the cart line that failed revalidation.
type ItemError struct {
	VariantID string
	Err       error
}

func (e *ItemError) Error() string { return fmt.Sprintf("variant %s: %v", e.VariantID, e.Err) }
func (e *ItemError) Unwrap() error { return e.Err }

type LineRequest struct {
	VariantID string `json:"variant_id"`
	Quantity  int64  `json:"quantity"`
}

type Request struct {
	Email           string        `json:"email"`
	ShippingAddress types.Address `json:"shipping_address"`
	BillingAddress  types.Address `json:"billing_address"`
	SameAsShipping  bool          `json:"same_as_shipping"`
	ShippingRateID  string        `json:"shipping_rate_id"`
	Items           []LineRequest `json:"items"`
	CustomerNotes   string        `json:"customer_notes"`
	UserID          string        `json:"-"`
}

type QuoteLine struct {
	ProductID      string `json:"product_id"`
	VariantID      string `json:"variant_id"`
	ProductName    string `json:"product_name"`
	VariantTitle   string `json:"variant_title"`
	SKU            string `json:"sku"`
	ImageURL       string `json:"image_url,omitempty"`
	Quantity       int64  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	TotalCents     int64  `json:"total_cents"`
}

// Quote is the server-side price of a checkout request.
type Quote struct {
	Email           string        `json:"email"`
	Lines           []QuoteLine   `json:"lines"`
	ShippingRate    ShippingRate  `json:"shipping_rate"`
	ShippingAddress types.Address `json:"shipping_address"`
	BillingAddress  types.Address `json:"billing_address"`
	SubtotalCents   int64         `json:"subtotal_cents"`
	ShippingCents   int64         `json:"shipping_cents"`
	TaxCents        int64         `json:"tax_cents"`
	DiscountCents   int64         `json:"discount_cents"`
	TotalCents      int64         `json:"total_cents"`
}

type Result struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"url"`
	Quote       *Quote `json:"quote"`
}

type Builder struct {
	catalog  catalog.Source
	rates    *RateTable
	tax      TaxCalculator
	provider payments.Provider
	baseURL  string
}

func NewBuilder(source catalog.Source, rates *RateTable, tax TaxCalculator, provider payments.Provider, baseURL string) *Builder {
	if rates == nil {
		rates = DefaultRateTable()
	}
	return &Builder{
		catalog:  source,
		rates:    rates,
		tax:      tax,
		provider: provider,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}
}

func (b *Builder) Rates() *RateTable {
	return b.rates
}

// Quote validates the request and prices it against the catalog without contacting the provider.
func (b *Builder) Quote(ctx context.Context, req Request) (*Quote, error) {
	req, rate, err := b.validate(req)
	if err != nil {
		return nil, err
	}

	quote := &Quote{
		Email:           req.Email,
		ShippingRate:    rate,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Lines:           make([]QuoteLine, 0, len(req.Items)),
	}

	for _, item := range req.Items {
		product, variant, err := b.catalog.LookupVariant(ctx, item.VariantID)
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, &ItemError{VariantID: item.VariantID, Err: ErrItemUnavailable}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up variant %s: %w", item.VariantID, err)
		}
		if !variant.Active || !product.Active {
			return nil, &ItemError{VariantID: item.VariantID, Err: ErrItemUnavailable}
		}
		if !variant.InStock(item.Quantity) {
			return nil, &ItemError{VariantID: item.VariantID, Err: ErrInsufficientStock}
		}

		line := QuoteLine{
			ProductID:      product.ID,
			VariantID:      variant.ID,
			ProductName:    product.Title,
			VariantTitle:   variant.Title,
			SKU:            variant.SKU,
			ImageURL:       product.ImageURL,
			Quantity:       item.Quantity,
			UnitPriceCents: variant.PriceCents,
			TotalCents:     variant.PriceCents * item.Quantity,
		}
		quote.Lines = append(quote.Lines, line)
		quote.SubtotalCents += line.TotalCents
	}

	quote.ShippingCents = rate.AmountCents
	if b.tax != nil {
		quote.TaxCents = b.tax.Tax(quote.SubtotalCents, quote.ShippingCents, req.ShippingAddress)
	}
	quote.TotalCents = quote.SubtotalCents + quote.ShippingCents + quote.TaxCents - quote.DiscountCents
	return quote, nil
}

// CreateSession prices the request and opens a hosted checkout session for it.
func (b *Builder) CreateSession(ctx context.Context, req Request) (*Result, error) {
	quote, err := b.Quote(ctx, req)
	if err != nil {
		return nil, err
	}

	lines := make([]payments.LineItem, 0, len(quote.Lines)+1)
	for _, l := range quote.Lines {
		lines = append(lines, payments.LineItem{
			Kind:            payments.LineKindProduct,
			ProductID:       l.ProductID,
			VariantID:       l.VariantID,
			Name:            l.ProductName,
			VariantTitle:    l.VariantTitle,
			SKU:             l.SKU,
			ImageURL:        l.ImageURL,
			UnitAmountCents: l.UnitPriceCents,
			Quantity:        l.Quantity,
		})
	}
	if quote.TaxCents > 0 {
		lines = append(lines, payments.LineItem{
			Kind:            payments.LineKindTax,
			Name:            "Sales tax",
			UnitAmountCents: quote.TaxCents,
			Quantity:        1,
		})
	}

	metadata := map[string]string{
		"subtotal_cents": strconv.FormatInt(quote.SubtotalCents, 10),
		"shipping_cents": strconv.FormatInt(quote.ShippingCents, 10),
		"tax_cents":      strconv.FormatInt(quote.TaxCents, 10),
		"total_cents":    strconv.FormatInt(quote.TotalCents, 10),
	}
	if req.UserID != "" {
		metadata["user_id"] = req.UserID
	}
	if notes := strings.TrimSpace(req.CustomerNotes); notes != "" {
		metadata["customer_notes"] = truncate(notes, maxMetadataValue)
	}

	created, err := b.provider.CreateCheckoutSession(ctx, payments.SessionRequest{
		Email:           quote.Email,
		ShippingAddress: quote.ShippingAddress,
		BillingAddress:  quote.BillingAddress,
		Lines:           lines,
		Shipping: payments.ShippingOption{
			ID:          quote.ShippingRate.ID,
			Label:       quote.ShippingRate.Label,
			AmountCents: quote.ShippingRate.AmountCents,
		},
		SuccessURL: b.baseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  b.baseURL + "/checkout/cancel",
		Metadata:   metadata,
	})
	if err != nil {
		slog.Error("failed to create checkout session", "error", err, "email", quote.Email, "total_cents", quote.TotalCents)
		return nil, fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}

	slog.Info("checkout session created", "session_id", created.ID, "total_cents", quote.TotalCents, "lines", len(quote.Lines))
	return &Result{SessionID: created.ID, RedirectURL: created.URL, Quote: quote}, nil
}

// validate normalizes the request and reports every field problem at once.
func (b *Builder) validate(req Request) (Request, ShippingRate, error) {
	if len(req.Items) == 0 {
		return req, ShippingRate{}, ErrEmptyCart
	}

	verr := &ValidationError{}

	req.Email = strings.TrimSpace(req.Email)
	if !validEmail(req.Email) {
		verr.add("email", "a valid email address is required")
	}

	req.ShippingAddress = req.ShippingAddress.Normalize()
	for k, v := range ValidateAddress("shipping_address", req.ShippingAddress) {
		verr.add(k, v)
	}

	if req.SameAsShipping {
		req.BillingAddress = req.ShippingAddress
	} else {
		req.BillingAddress = req.BillingAddress.Normalize()
		for k, v := range ValidateAddress("billing_address", req.BillingAddress) {
			verr.add(k, v)
		}
	}

	rate, ok := b.rates.Lookup(req.ShippingRateID)
	if !ok {
		verr.add("shipping_rate_id", "unknown shipping option")
	}

	merged := make([]LineRequest, 0, len(req.Items))
	index := map[string]int{}
	for i, item := range req.Items {
		if item.VariantID == "" {
			verr.add(fmt.Sprintf("items[%d].variant_id", i), "variant is required")
			continue
		}
		if item.Quantity < 1 {
			verr.add(fmt.Sprintf("items[%d].quantity", i), "quantity must be at least 1")
			continue
		}
		if j, seen := index[item.VariantID]; seen {
			merged[j].Quantity += item.Quantity
			continue
		}
		index[item.VariantID] = len(merged)
		merged = append(merged, item)
	}
	req.Items = merged

	if err := verr.orNil(); err != nil {
		return req, ShippingRate{}, err
	}
	return req, rate, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
