package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// FakeProvider is an in-memory Provider for tests and local development.
type FakeProvider struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	Requests  []SessionRequest
	CreateErr error
	GetErr    error
	counter   int
}

func NewFakeProvider() *FakeProvider {
	return &FakeProvider{sessions: map[string]*Session{}}
}

func (f *FakeProvider) CreateCheckoutSession(_ context.Context, req SessionRequest) (*CreatedSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	f.counter++
	id := fmt.Sprintf("cs_fake_%d", f.counter)
	f.Requests = append(f.Requests, req)

	var subtotal, tax int64
	lines := make([]LineItem, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, l)
		switch l.Kind {
		case LineKindTax:
			tax += l.UnitAmountCents * l.Quantity
		default:
			subtotal += l.UnitAmountCents * l.Quantity
		}
	}

	shipping := req.ShippingAddress
	billing := req.BillingAddress
	f.sessions[id] = &Session{
		ID:                  id,
		Status:              "open",
		PaymentStatus:       "unpaid",
		CustomerEmail:       req.Email,
		CustomerName:        req.ShippingAddress.Name,
		ShippingAddress:     &shipping,
		BillingAddress:      &billing,
		Lines:               lines,
		ShippingRateID:      req.Shipping.ID,
		ShippingMethod:      req.Shipping.Label,
		AmountSubtotalCents: subtotal + tax,
		AmountShippingCents: req.Shipping.AmountCents,
		AmountTaxCents:      tax,
		AmountTotalCents:    subtotal + tax + req.Shipping.AmountCents,
		Metadata:            req.Metadata,
	}
	return &CreatedSession{ID: id, URL: "https://checkout.example.test/pay/" + id}, nil
}

// Complete marks a session as paid, as the hosted page would.
func (f *FakeProvider) Complete(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.sessions[id]; ok {
		s.Status = "complete"
		s.PaymentStatus = PaymentStatusPaid
		s.PaymentIntentID = "pi_" + id
	}
}

// Put stores a session verbatim.
func (f *FakeProvider) Put(s *Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[s.ID] = s
}

func (f *FakeProvider) GetCheckoutSession(_ context.Context, id string) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.GetErr != nil {
		return nil, f.GetErr
	}
	s, ok := f.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

// ParseWebhook accepts {"id","type","session_id"} payloads; the signature must be "valid".
func (f *FakeProvider) ParseWebhook(payload []byte, signature string) (*Event, error) {
	if signature != "valid" {
		return nil, ErrInvalidSignature
	}
	var raw struct {
		ID        string `json:"id"`
		Type      string `json:"type"`
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse event: %w", err)
	}
	return &Event{ID: raw.ID, Type: raw.Type, SessionID: raw.SessionID}, nil
}
