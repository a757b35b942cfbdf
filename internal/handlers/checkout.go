package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/auth"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/cart"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/checkout"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/orders"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/payments"
	"github.com/treysweeney3/hunt-kitchen-sub000/views/layout"
	orderviews "github.com/treysweeney3/hunt-kitchen-sub000/views/orders"
)

type CheckoutHandler struct {
	builder      *checkout.Builder
	materializer *orders.Materializer
	carts        cart.Store
	siteURL      string
}

func NewCheckoutHandler(builder *checkout.Builder, materializer *orders.Materializer, carts cart.Store, siteURL string) *CheckoutHandler {
	return &CheckoutHandler{
		builder:      builder,
		materializer: materializer,
		carts:        carts,
		siteURL:      siteURL,
	}
}

// bindRequest reads the checkout request, filling the lines from the shopper's cart when none are sent
func (h *CheckoutHandler) bindRequest(c echo.Context) (checkout.Request, error) {
	var req checkout.Request
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if len(req.Items) == 0 {
		current, err := h.carts.Load(c)
		if err != nil {
			slog.Warn("failed to load cart for checkout", "error", err)
		} else {
			for _, it := range current.Items {
				req.Items = append(req.Items, checkout.LineRequest{VariantID: it.VariantID, Quantity: it.Quantity})
			}
		}
	}

	if userID, ok := auth.GetUserID(c); ok {
		req.UserID = userID
	}
	return req, nil
}

// HandleCreateSession validates and prices the cart, then returns the hosted checkout URL
func (h *CheckoutHandler) HandleCreateSession(c echo.Context) error {
	req, err := h.bindRequest(c)
	if err != nil {
		return err
	}

	result, err := h.builder.CreateSession(c.Request().Context(), req)
	if err != nil {
		return checkoutError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// HandleQuote prices the request exactly like HandleCreateSession without opening a session
func (h *CheckoutHandler) HandleQuote(c echo.Context) error {
	req, err := h.bindRequest(c)
	if err != nil {
		return err
	}

	quote, err := h.builder.Quote(c.Request().Context(), req)
	if err != nil {
		return checkoutError(c, err)
	}

	return c.JSON(http.StatusOK, quote)
}

// HandleRates lists the shipping options
func (h *CheckoutHandler) HandleRates(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"rates": h.builder.Rates().Rates})
}

func checkoutError(c echo.Context, err error) error {
	var verr *checkout.ValidationError
	var itemErr *checkout.ItemError

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "Please correct the highlighted fields",
			"fields": verr.Fields,
		})
	case errors.As(err, &itemErr):
		return c.JSON(http.StatusConflict, map[string]any{
			"error":      itemErr.Err.Error(),
			"variant_id": itemErr.VariantID,
		})
	case errors.Is(err, checkout.ErrProviderFailed):
		return errorJSON(c, http.StatusInternalServerError, checkout.ErrProviderFailed.Error())
	default:
		slog.Error("checkout failed", "error", err)
		return errorJSON(c, http.StatusInternalServerError, "Checkout is temporarily unavailable")
	}
}

// HandleSuccess shows the order after the hosted page redirects back. The order is
// materialized here as well so the page works even when the webhook is late.
func (h *CheckoutHandler) HandleSuccess(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.Redirect(http.StatusSeeOther, "/shop")
	}

	meta := layout.NewPageMeta(h.siteURL, "/checkout/success").WithTitle("Order confirmed")

	result, err := h.materializer.Materialize(c.Request().Context(), sessionID)
	switch {
	case errors.Is(err, orders.ErrUnknownSession), errors.Is(err, payments.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Checkout session not found")
	case errors.Is(err, orders.ErrNotPaid):
		return c.Redirect(http.StatusSeeOther, "/checkout/cancel")
	case err != nil:
		slog.Error("failed to materialize order on success page", "error", err, "session_id", sessionID)
		return RenderStatus(c, http.StatusAccepted, layout.Base(meta, orderviews.Pending()))
	}

	if err := h.carts.Clear(c); err != nil {
		slog.Warn("failed to clear cart after checkout", "error", err, "order_number", result.Order.OrderNumber)
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, map[string]any{"order": result.Order, "items": result.Items})
	}
	return Render(c, layout.Base(meta, orderviews.Confirmation(&result.Order, result.Items)))
}

// HandleCancel is where the hosted page sends shoppers who back out. The cart is kept.
func (h *CheckoutHandler) HandleCancel(c echo.Context) error {
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, map[string]string{"status": "cancelled"})
	}
	return c.Redirect(http.StatusSeeOther, "/shop?checkout=cancelled")
}
