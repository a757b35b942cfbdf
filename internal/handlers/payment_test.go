package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/events"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/payments"
)

func webhookContext(payload, signature string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", bytes.NewBufferString(payload))
	req.Header.Set("Stripe-Signature", signature)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func completedEvent(id, sessionID string) string {
	return fmt.Sprintf(`{"id":%q,"type":%q,"session_id":%q}`, id, payments.EventCheckoutCompleted, sessionID)
}

func TestPaymentHandler_WebhookCreatesOrderOnce(t *testing.T) {
	e := newEnv(t)
	_, variant := e.seedVariant(t, 5)
	h := NewPaymentHandler(e.provider, e.materializer)

	res, err := e.builder.CreateSession(context.Background(), validCheckoutRequest(variant.ID, 2))
	require.NoError(t, err)
	e.provider.Complete(res.SessionID)

	for i := 0; i < 3; i++ {
		c, rec := webhookContext(completedEvent("evt_1", res.SessionID), "valid")
		require.NoError(t, h.HandleWebhook(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	stored, err := e.workflow.List(context.Background(), "", 10, 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, res.SessionID, stored[0].CheckoutSessionID)

	v, err := e.store.Queries.GetProductVariant(context.Background(), variant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.InventoryQuantity, "inventory is decremented exactly once")
	assert.Len(t, e.events.OfType(events.OrderCreated), 1)
}

func TestPaymentHandler_WebhookRejectsBadSignature(t *testing.T) {
	e := newEnv(t)
	h := NewPaymentHandler(e.provider, e.materializer)

	c, _ := webhookContext(completedEvent("evt_1", "cs_fake_1"), "forged")
	err := h.HandleWebhook(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestPaymentHandler_WebhookAbsorbsFailures(t *testing.T) {
	e := newEnv(t)
	_, variant := e.seedVariant(t, 5)
	h := NewPaymentHandler(e.provider, e.materializer)

	unpaid, err := e.builder.CreateSession(context.Background(), validCheckoutRequest(variant.ID, 1))
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
	}{
		{"unknown session", completedEvent("evt_2", "cs_missing")},
		{"unpaid session", completedEvent("evt_3", unpaid.SessionID)},
		{"other event", `{"id":"evt_4","type":"customer.created"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := webhookContext(tt.payload, "valid")
			require.NoError(t, h.HandleWebhook(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	stored, err := e.workflow.List(context.Background(), "", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestPaymentHandler_WebhookFailureIsRetryable(t *testing.T) {
	e := newEnv(t)
	_, variant := e.seedVariant(t, 5)
	h := NewPaymentHandler(e.provider, e.materializer)

	res, err := e.builder.CreateSession(context.Background(), validCheckoutRequest(variant.ID, 1))
	require.NoError(t, err)
	e.provider.Complete(res.SessionID)

	e.provider.GetErr = errors.New("stripe unavailable")
	c, _ := webhookContext(completedEvent("evt_5", res.SessionID), "valid")
	err = h.HandleWebhook(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusInternalServerError, he.Code)

	stored, err := e.workflow.List(context.Background(), "", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, stored)

	// redelivery after the outage
	e.provider.GetErr = nil
	c, rec := webhookContext(completedEvent("evt_5", res.SessionID), "valid")
	require.NoError(t, h.HandleWebhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	stored, err = e.workflow.List(context.Background(), "", 10, 0)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
