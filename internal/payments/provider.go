// Package payments defines the contract between the store and a hosted
// checkout provider. The provider owns payment collection; the store only
// creates sessions and reads them back once they complete.
package payments

import (
	"context"
	"errors"

	"github.com/treysweeney3/hunt-kitchen-sub000/internal/types"
)

var (
	ErrSessionNotFound  = errors.New("checkout session not found")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

const (
	LineKindProduct = "product"
	LineKindTax     = "tax"

	EventCheckoutCompleted    = "checkout.session.completed"
	EventAsyncPaymentSucceeds = "checkout.session.async_payment_succeeded"

	PaymentStatusPaid              = "paid"
	PaymentStatusNoPaymentRequired = "no_payment_required"
)

// LineItem is a single line on a hosted checkout page.
type LineItem struct {
	Kind            string `json:"kind"`
	ProductID       string `json:"product_id,omitempty"`
	VariantID       string `json:"variant_id,omitempty"`
	Name            string `json:"name"`
	VariantTitle    string `json:"variant_title,omitempty"`
	SKU             string `json:"sku,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
	UnitAmountCents int64  `json:"unit_amount_cents"`
	Quantity        int64  `json:"quantity"`
}

type ShippingOption struct {
	ID          string
	Label       string
	AmountCents int64
}

// SessionRequest carries everything the provider needs to host a checkout.
type SessionRequest struct {
	Email           string
	ShippingAddress types.Address
	BillingAddress  types.Address
	Lines           []LineItem
	Shipping        ShippingOption
	SuccessURL      string
	CancelURL       string
	Metadata        map[string]string
}

type CreatedSession struct {
	ID  string
	URL string
}

// Session is a checkout session as reported by the provider.
type Session struct {
	ID                  string
	Status              string
	PaymentStatus       string
	CustomerEmail       string
	CustomerName        string
	ShippingAddress     *types.Address
	BillingAddress      *types.Address
	Lines               []LineItem
	ShippingRateID      string
	ShippingMethod      string
	AmountSubtotalCents int64
	AmountDiscountCents int64
	AmountShippingCents int64
	AmountTaxCents      int64
	AmountTotalCents    int64
	PaymentIntentID     string
	Metadata            map[string]string
}

// IsPaid reports whether the provider has collected payment for the session.
func (s *Session) IsPaid() bool {
	return s.PaymentStatus == PaymentStatusPaid || s.PaymentStatus == PaymentStatusNoPaymentRequired
}

// ProductLines returns the lines that represent purchased merchandise.
func (s *Session) ProductLines() []LineItem {
	var out []LineItem
	for _, l := range s.Lines {
		if l.Kind == LineKindProduct || l.Kind == "" {
			out = append(out, l)
		}
	}
	return out
}

// Event is a verified provider webhook notification.
type Event struct {
	ID        string
	Type      string
	SessionID string
}

type Provider interface {
	CreateCheckoutSession(ctx context.Context, req SessionRequest) (*CreatedSession, error)
	GetCheckoutSession(ctx context.Context, id string) (*Session, error)
	ParseWebhook(payload []byte, signature string) (*Event, error)
}
