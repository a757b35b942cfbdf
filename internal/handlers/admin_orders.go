package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/documents"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/orders"
)

type AdminOrdersHandler struct {
	workflow *orders.Workflow
	siteURL  string
}

func NewAdminOrdersHandler(workflow *orders.Workflow, siteURL string) *AdminOrdersHandler {
	return &AdminOrdersHandler{workflow: workflow, siteURL: strings.TrimRight(siteURL, "/")}
}

// HandleList returns orders newest first. ?status= filters, ?limit= and ?offset= page.
func (h *AdminOrdersHandler) HandleList(c echo.Context) error {
	status := c.QueryParam("status")
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	list, err := h.workflow.List(c.Request().Context(), status, limit, offset)
	if errors.Is(err, orders.ErrInvalidStatus) {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	if err != nil {
		slog.Error("failed to list orders", "error", err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to load orders")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"orders": list,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *AdminOrdersHandler) HandleDetail(c echo.Context) error {
	order, items, err := h.workflow.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, orders.ErrOrderNotFound) {
		return errorJSON(c, http.StatusNotFound, err.Error())
	}
	if err != nil {
		slog.Error("failed to get order", "error", err, "order_id", c.Param("id"))
		return errorJSON(c, http.StatusInternalServerError, "Failed to load order")
	}

	return c.JSON(http.StatusOK, map[string]any{"order": order, "items": items})
}

type UpdateOrderRequest struct {
	Status         *string `json:"status" form:"status"`
	TrackingNumber *string `json:"tracking_number" form:"tracking_number"`
	TrackingURL    *string `json:"tracking_url" form:"tracking_url"`
	Carrier        *string `json:"carrier" form:"carrier"`
	Notes          *string `json:"notes" form:"notes"`
	Version        *int64  `json:"version" form:"version"`
}

// HandleUpdate applies a partial update from JSON or a form post. A version in the body
// or an If-Match header makes the write conditional; without one the last write wins.
func (h *AdminOrdersHandler) HandleUpdate(c echo.Context) error {
	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	upd := orders.Update{
		TrackingNumber:  req.TrackingNumber,
		TrackingURL:     req.TrackingURL,
		Carrier:         req.Carrier,
		Notes:           req.Notes,
		ExpectedVersion: req.Version,
	}
	if req.Status != nil {
		st, err := orders.ParseStatus(*req.Status)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, err.Error())
		}
		upd.Status = &st
	}
	if upd.ExpectedVersion == nil {
		if v, ok := ifMatchVersion(c); ok {
			upd.ExpectedVersion = &v
		}
	}
	if upd.IsEmpty() {
		return errorJSON(c, http.StatusBadRequest, "Nothing to update")
	}

	updated, err := h.workflow.UpdateOrder(c.Request().Context(), c.Param("id"), upd)
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		return errorJSON(c, http.StatusNotFound, err.Error())
	case errors.Is(err, orders.ErrInvalidStatus):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, orders.ErrInvalidTransition):
		return errorJSON(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, orders.ErrVersionConflict):
		return errorJSON(c, http.StatusConflict, err.Error())
	case err != nil:
		slog.Error("failed to update order", "error", err, "order_id", c.Param("id"))
		return errorJSON(c, http.StatusInternalServerError, "Failed to update order")
	}

	c.Response().Header().Set("ETag", strconv.Quote(strconv.FormatInt(updated.Version, 10)))
	return c.JSON(http.StatusOK, updated)
}

// ifMatchVersion reads an order version from an If-Match header such as "3" or W/"3"
func ifMatchVersion(c echo.Context) (int64, bool) {
	raw := strings.TrimSpace(c.Request().Header.Get("If-Match"))
	raw = strings.TrimPrefix(raw, "W/")
	raw = strings.Trim(raw, `"`)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// HandlePackingSlip renders a printable PDF for the order with a QR code back to its admin page
func (h *AdminOrdersHandler) HandlePackingSlip(c echo.Context) error {
	order, items, err := h.workflow.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, orders.ErrOrderNotFound) {
		return errorJSON(c, http.StatusNotFound, err.Error())
	}
	if err != nil {
		slog.Error("failed to get order for packing slip", "error", err, "order_id", c.Param("id"))
		return errorJSON(c, http.StatusInternalServerError, "Failed to load order")
	}

	adminURL := ""
	if h.siteURL != "" {
		adminURL = h.siteURL + "/admin/orders/" + order.ID
	}

	pdf, err := documents.PackingSlip(order, items, adminURL)
	if err != nil {
		slog.Error("failed to render packing slip", "error", err, "order_id", order.ID)
		return errorJSON(c, http.StatusInternalServerError, "Failed to render packing slip")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`inline; filename="packing-slip-%s.pdf"`, order.OrderNumber))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
