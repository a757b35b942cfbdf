// Package events publishes domain events (orders created, statuses changed,
// ratings submitted) to Kafka, or to the log when no broker is configured.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	OrderCreated       = "order.created"
	OrderStatusChanged = "order.status_changed"
	RatingSubmitted    = "rating.submitted"
)

// Event is a single domain event. Key partitions events for the same aggregate together.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// New stamps an event with an id and the current time.
func New(eventType, key string, data any) Event {
	return Event{
		ID:         ulid.Make().String(),
		Type:       eventType,
		Key:        key,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

func (e Event) encode() ([]byte, error) {
	return json.Marshal(e)
}

type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
	Close() error
}

// LogPublisher writes events to slog. Used when Kafka is not configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, events ...Event) error {
	for _, e := range events {
		slog.Info("domain event", "type", e.Type, "key", e.Key, "event_id", e.ID)
	}
	return nil
}

func (LogPublisher) Close() error { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, events ...Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, events...)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// OfType returns the recorded events with the given type.
func (r *Recorder) OfType(eventType string) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
