package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/treysweeney3/hunt-kitchen-sub000/internal/events"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

const defaultListLimit = 50

// TrackingResolver builds a public tracking page URL for a shipment.
type TrackingResolver interface {
	TrackingURL(ctx context.Context, carrier, trackingNumber string) (string, error)
}

// Update is a partial order update. Nil fields are left unchanged.
type Update struct {
	Status          *Status
	TrackingNumber  *string
	TrackingURL     *string
	Carrier         *string
	Notes           *string
	ExpectedVersion *int64
}

func (u Update) IsEmpty() bool {
	return u.Status == nil && u.TrackingNumber == nil && u.TrackingURL == nil && u.Carrier == nil && u.Notes == nil
}

type Workflow struct {
	queries  *db.Queries
	tracking TrackingResolver
	events   events.Publisher
}

func NewWorkflow(queries *db.Queries, tracking TrackingResolver, publisher events.Publisher) *Workflow {
	if publisher == nil {
		publisher = events.LogPublisher{}
	}
	return &Workflow{queries: queries, tracking: tracking, events: publisher}
}

// Get returns an order and its items.
func (w *Workflow) Get(ctx context.Context, id string) (*db.Order, []db.OrderItem, error) {
	order, err := w.queries.GetOrder(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get order: %w", err)
	}
	items, err := w.queries.ListOrderItems(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list order items: %w", err)
	}
	return &order, items, nil
}

// List returns orders newest first, optionally filtered by status.
func (w *Workflow) List(ctx context.Context, status string, limit, offset int64) ([]db.Order, error) {
	params := db.ListOrdersParams{Limit: limit, Offset: offset}
	if params.Limit <= 0 {
		params.Limit = defaultListLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	if status != "" {
		st, err := ParseStatus(status)
		if err != nil {
			return nil, err
		}
		params.Status = sql.NullString{String: string(st), Valid: true}
	}
	orders, err := w.queries.ListOrders(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrder applies a partial update. Status changes must follow the transition
// table; a refund also marks the payment refunded. When ExpectedVersion is set the
// write only succeeds against that version of the order.
func (w *Workflow) UpdateOrder(ctx context.Context, id string, upd Update) (*db.Order, error) {
	current, err := w.queries.GetOrder(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if upd.ExpectedVersion != nil && *upd.ExpectedVersion != current.Version {
		return nil, ErrVersionConflict
	}

	params := db.UpdateOrderFieldsParams{ID: id}
	if upd.ExpectedVersion != nil {
		params.ExpectedVersion = sql.NullInt64{Int64: *upd.ExpectedVersion, Valid: true}
	}

	from := Status(current.Status)
	if upd.Status != nil {
		to := *upd.Status
		if _, err := ParseStatus(string(to)); err != nil {
			return nil, err
		}
		if !CanTransition(from, to) {
			return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
		}
		params.Status = sql.NullString{String: string(to), Valid: true}
		if to == StatusRefunded {
			params.PaymentStatus = sql.NullString{String: PaymentRefunded, Valid: true}
		}
	}

	params.TrackingNumber = optional(upd.TrackingNumber)
	params.Carrier = optional(upd.Carrier)
	params.Notes = optional(upd.Notes)
	params.TrackingUrl = optional(upd.TrackingURL)

	if upd.Carrier != nil && strings.TrimSpace(*upd.Carrier) != "" && upd.TrackingURL == nil {
		number := current.TrackingNumber.String
		if upd.TrackingNumber != nil {
			number = *upd.TrackingNumber
		}
		if url := w.resolveTracking(ctx, *upd.Carrier, number); url != "" {
			params.TrackingUrl = sql.NullString{String: url, Valid: true}
		}
	}

	updated, err := w.queries.UpdateOrderFields(ctx, params)
	if errors.Is(err, sql.ErrNoRows) {
		// Row exists, so the version guard rejected the write.
		return nil, ErrVersionConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	slog.Info("order updated",
		"order_id", updated.ID,
		"order_number", updated.OrderNumber,
		"status", updated.Status,
		"version", updated.Version)

	if updated.Status != current.Status {
		e := events.New(events.OrderStatusChanged, updated.ID, map[string]any{
			"order_number": updated.OrderNumber,
			"from":         current.Status,
			"to":           updated.Status,
		})
		if err := w.events.Publish(ctx, e); err != nil {
			slog.Error("failed to publish status change", "error", err, "order_id", updated.ID)
		}
	}

	return &updated, nil
}

func (w *Workflow) resolveTracking(ctx context.Context, carrier, number string) string {
	if w.tracking == nil || strings.TrimSpace(number) == "" {
		return ""
	}
	url, err := w.tracking.TrackingURL(ctx, carrier, number)
	if err != nil {
		slog.Warn("failed to resolve tracking url", "error", err, "carrier", carrier)
		return ""
	}
	return url
}

// optional maps a nil pointer to NULL so COALESCE keeps the stored value.
func optional(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.TrimSpace(*s), Valid: true}
}
