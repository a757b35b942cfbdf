// Package orders turns paid checkout sessions into stored orders and moves
// orders through their fulfilment lifecycle.
package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/events"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/payments"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/types"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownSession = errors.New("unknown checkout session")
	ErrNotPaid        = errors.New("checkout session is not paid")
	ErrNoLineItems    = errors.New("checkout session has no purchasable items")
)

const maxNumberAttempts = 3

// Notifier sends the emails that follow a new order.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, order *db.Order, items []db.OrderItem) error
	SendOrderNotificationToAdmin(ctx context.Context, order *db.Order, items []db.OrderItem) error
}

type MaterializeResult struct {
	Order   db.Order
	Items   []db.OrderItem
	Created bool
}

// Materializer creates exactly one order per paid checkout session.
type Materializer struct {
	store    *storage.Storage
	provider payments.Provider
	notifier Notifier
	events   events.Publisher
	now      func() time.Time
}

func NewMaterializer(store *storage.Storage, provider payments.Provider, notifier Notifier, publisher events.Publisher) *Materializer {
	if publisher == nil {
		publisher = events.LogPublisher{}
	}
	return &Materializer{
		store:    store,
		provider: provider,
		notifier: notifier,
		events:   publisher,
		now:      time.Now,
	}
}

// Materialize stores the order for a completed checkout session. Calling it again
// for the same session returns the stored order with Created set to false.
func (m *Materializer) Materialize(ctx context.Context, sessionID string) (*MaterializeResult, error) {
	if sessionID == "" {
		return nil, ErrUnknownSession
	}

	existing, err := m.lookup(ctx, m.store.Queries, sessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		slog.Debug("order already materialized", "session_id", sessionID, "order_id", existing.Order.ID)
		return existing, nil
	}

	sess, err := m.provider.GetCheckoutSession(ctx, sessionID)
	if errors.Is(err, payments.ErrSessionNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}
	if !sess.IsPaid() {
		return nil, fmt.Errorf("%w: %s (payment status %q)", ErrNotPaid, sessionID, sess.PaymentStatus)
	}
	lines := sess.ProductLines()
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoLineItems, sessionID)
	}

	var result *MaterializeResult
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		result, err = m.create(ctx, sess, lines)
		if err == nil {
			break
		}
		if isUniqueViolation(err, "orders.checkout_session_id") {
			slog.Info("concurrent materialization resolved to existing order", "session_id", sessionID)
			existing, lookupErr := m.lookup(ctx, m.store.Queries, sessionID)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if existing == nil {
				return nil, fmt.Errorf("order for session %s vanished after conflict: %w", sessionID, err)
			}
			return existing, nil
		}
		if isUniqueViolation(err, "orders.order_number") && attempt < maxNumberAttempts {
			slog.Warn("order number collision, retrying", "session_id", sessionID, "attempt", attempt)
			continue
		}
		return nil, err
	}

	if result.Created {
		m.afterCreate(ctx, result)
	}
	return result, nil
}

func (m *Materializer) lookup(ctx context.Context, q *db.Queries, sessionID string) (*MaterializeResult, error) {
	order, err := q.GetOrderByCheckoutSessionID(ctx, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up order for session: %w", err)
	}
	items, err := q.ListOrderItems(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	return &MaterializeResult{Order: order, Items: items}, nil
}

func (m *Materializer) create(ctx context.Context, sess *payments.Session, lines []payments.LineItem) (*MaterializeResult, error) {
	var result *MaterializeResult

	err := m.store.InTx(ctx, func(q *db.Queries) error {
		existing, err := m.lookup(ctx, q, sess.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			result = existing
			return nil
		}

		var subtotal int64
		for _, l := range lines {
			subtotal += l.UnitAmountCents * l.Quantity
		}
		total := subtotal - sess.AmountDiscountCents + sess.AmountShippingCents + sess.AmountTaxCents
		if sess.AmountTotalCents != 0 && total != sess.AmountTotalCents {
			slog.Warn("order total differs from provider total",
				"session_id", sess.ID,
				"computed_cents", total,
				"provider_cents", sess.AmountTotalCents)
		}

		shipping := addressOrZero(sess.ShippingAddress)
		billing := shipping
		if sess.BillingAddress != nil && !sess.BillingAddress.IsZero() {
			billing = *sess.BillingAddress
		}
		name := sess.CustomerName
		if name == "" {
			name = shipping.Name
		}

		userID := nullString(sess.Metadata["user_id"])
		if userID.Valid {
			if _, err := q.GetUser(ctx, userID.String); err != nil {
				slog.Warn("order user not found, storing as guest", "user_id", userID.String, "error", err)
				userID = sql.NullString{}
			}
		}

		order, err := q.CreateOrder(ctx, db.CreateOrderParams{
			ID:                 ulid.Make().String(),
			OrderNumber:        NewOrderNumber(m.now()),
			UserID:             userID,
			Email:              sess.CustomerEmail,
			CustomerName:       name,
			Status:             string(StatusConfirmed),
			PaymentStatus:      PaymentPaid,
			FulfillmentStatus:  FulfillmentUnfulfilled,
			SubtotalCents:      subtotal,
			DiscountCents:      sess.AmountDiscountCents,
			ShippingCents:      sess.AmountShippingCents,
			TaxCents:           sess.AmountTaxCents,
			TotalCents:         total,
			ShippingName:       shipping.Name,
			ShippingLine1:      shipping.Line1,
			ShippingLine2:      nullString(shipping.Line2),
			ShippingCity:       shipping.City,
			ShippingState:      shipping.State,
			ShippingPostalCode: shipping.PostalCode,
			ShippingCountry:    shipping.Country,
			BillingName:        billing.Name,
			BillingLine1:       billing.Line1,
			BillingLine2:       nullString(billing.Line2),
			BillingCity:        billing.City,
			BillingState:       billing.State,
			BillingPostalCode:  billing.PostalCode,
			BillingCountry:     billing.Country,
			ShippingMethod:     nullString(sess.ShippingMethod),
			CustomerNotes:      nullString(sess.Metadata["customer_notes"]),
			CheckoutSessionID:  sess.ID,
			PaymentIntentID:    nullString(sess.PaymentIntentID),
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		items := make([]db.OrderItem, 0, len(lines))
		for _, l := range lines {
			item, err := q.CreateOrderItem(ctx, db.CreateOrderItemParams{
				ID:              ulid.Make().String(),
				OrderID:         order.ID,
				ProductID:       nullString(l.ProductID),
				VariantID:       nullString(l.VariantID),
				ProductName:     l.Name,
				VariantTitle:    nullString(l.VariantTitle),
				Sku:             nullString(l.SKU),
				Quantity:        l.Quantity,
				UnitPriceCents:  l.UnitAmountCents,
				TotalPriceCents: l.UnitAmountCents * l.Quantity,
			})
			if err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
			items = append(items, item)

			if l.VariantID == "" {
				continue
			}
			if _, err := q.DecrementVariantInventory(ctx, db.DecrementVariantInventoryParams{
				Quantity: l.Quantity,
				ID:       l.VariantID,
			}); err != nil {
				return fmt.Errorf("failed to decrement inventory for variant %s: %w", l.VariantID, err)
			}
		}

		result = &MaterializeResult{Order: order, Items: items, Created: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// afterCreate publishes the order event and sends both emails concurrently.
// Failures are logged and never undo the order.
func (m *Materializer) afterCreate(ctx context.Context, result *MaterializeResult) {
	order := result.Order
	slog.Info("order materialized",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"session_id", order.CheckoutSessionID,
		"total_cents", order.TotalCents,
		"items", len(result.Items))

	var g errgroup.Group
	g.Go(func() error {
		e := events.New(events.OrderCreated, order.ID, map[string]any{
			"order_number": order.OrderNumber,
			"email":        order.Email,
			"total_cents":  order.TotalCents,
			"items":        len(result.Items),
		})
		if err := m.events.Publish(ctx, e); err != nil {
			slog.Error("failed to publish order event", "error", err, "order_id", order.ID)
		}
		return nil
	})
	if m.notifier != nil {
		g.Go(func() error {
			if err := m.notifier.SendOrderConfirmation(ctx, &order, result.Items); err != nil {
				slog.Error("failed to send order confirmation", "error", err, "order_id", order.ID, "email", order.Email)
			}
			return nil
		})
		g.Go(func() error {
			if err := m.notifier.SendOrderNotificationToAdmin(ctx, &order, result.Items); err != nil {
				slog.Error("failed to send admin order notification", "error", err, "order_id", order.ID)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func isUniqueViolation(err error, column string) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, column)
}

func addressOrZero(a *types.Address) types.Address {
	if a == nil {
		return types.Address{}
	}
	return *a
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
