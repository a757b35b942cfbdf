package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/orders"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/payments"
)

const maxWebhookBody = 65536

type PaymentHandler struct {
	provider     payments.Provider
	materializer *orders.Materializer
}

func NewPaymentHandler(provider payments.Provider, materializer *orders.Materializer) *PaymentHandler {
	return &PaymentHandler{
		provider:     provider,
		materializer: materializer,
	}
}

// HandleWebhook verifies a provider notification and materializes the order it confirms.
// Unknown and unpaid sessions are acknowledged with a 200. Any other materialization
// failure answers 500 so the provider redelivers the event.
func (h *PaymentHandler) HandleWebhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Request body too large")
	}

	event, err := h.provider.ParseWebhook(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		slog.Error("webhook signature verification failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid signature")
	}

	switch event.Type {
	case payments.EventCheckoutCompleted, payments.EventAsyncPaymentSucceeds:
		if err := h.handleCheckoutCompleted(c, event); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process checkout")
		}
	default:
		slog.Debug("unhandled webhook event type", "type", event.Type, "event_id", event.ID)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PaymentHandler) handleCheckoutCompleted(c echo.Context, event *payments.Event) error {
	result, err := h.materializer.Materialize(c.Request().Context(), event.SessionID)
	switch {
	case errors.Is(err, orders.ErrUnknownSession):
		slog.Warn("webhook for unknown checkout session", "session_id", event.SessionID, "event_id", event.ID)
	case errors.Is(err, orders.ErrNotPaid):
		slog.Info("checkout completed without payment, waiting for async confirmation", "session_id", event.SessionID)
	case err != nil:
		slog.Error("error handling checkout completed", "error", err, "session_id", event.SessionID, "event_id", event.ID)
		return err
	case result.Created:
		slog.Info("order created from webhook", "order_number", result.Order.OrderNumber, "session_id", event.SessionID)
	default:
		slog.Info("duplicate webhook delivery ignored", "order_number", result.Order.OrderNumber, "session_id", event.SessionID)
	}
	return nil
}
