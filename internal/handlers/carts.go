package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/cart"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/catalog"
)

type CartHandler struct {
	carts   cart.Store
	catalog catalog.Source
}

func NewCartHandler(carts cart.Store, source catalog.Source) *CartHandler {
	return &CartHandler{carts: carts, catalog: source}
}

type cartResponse struct {
	Items         []cart.Item `json:"items"`
	ItemCount     int64       `json:"item_count"`
	SubtotalCents int64       `json:"subtotal_cents"`
	TotalCents    int64       `json:"total_cents"`
}

func newCartResponse(c *cart.Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []cart.Item{}
	}
	return cartResponse{
		Items:         items,
		ItemCount:     c.ItemCount(),
		SubtotalCents: c.Subtotal(),
		TotalCents:    c.Total(),
	}
}

func (h *CartHandler) load(c echo.Context) (*cart.Cart, error) {
	current, err := h.carts.Load(c)
	if err != nil {
		slog.Error("failed to load cart", "error", err)
		return nil, errorJSON(c, http.StatusInternalServerError, "Failed to load cart")
	}
	return current, nil
}

func (h *CartHandler) save(c echo.Context, current *cart.Cart) error {
	if err := h.carts.Save(c, current); err != nil {
		slog.Error("failed to save cart", "error", err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to save cart")
	}
	return c.JSON(http.StatusOK, newCartResponse(current))
}

func (h *CartHandler) HandleGet(c echo.Context) error {
	current, err := h.load(c)
	if current == nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(current))
}

type AddToCartRequest struct {
	VariantID string `json:"variant_id" form:"variant_id"`
	Quantity  int64  `json:"quantity" form:"quantity"`
}

// HandleAddItem snapshots the variant from the catalog and adds it to the cart
func (h *CartHandler) HandleAddItem(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.VariantID == "" {
		return errorJSON(c, http.StatusBadRequest, "variant_id is required")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, variant, err := h.catalog.LookupVariant(c.Request().Context(), req.VariantID)
	if errors.Is(err, catalog.ErrNotFound) {
		return errorJSON(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		slog.Error("failed to look up variant", "error", err, "variant_id", req.VariantID, "source", h.catalog.Name())
		return errorJSON(c, http.StatusBadGateway, "Catalog is temporarily unavailable")
	}
	if !product.Active || !variant.Active {
		return errorJSON(c, http.StatusConflict, "Product is no longer available")
	}

	current, err := h.load(c)
	if current == nil {
		return err
	}

	productSnap, variantSnap := cartSnapshot(product, variant)
	if err := current.AddItem(productSnap, variantSnap, req.Quantity); err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			return errorJSON(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, cart.ErrOutOfStock):
			return errorJSON(c, http.StatusConflict, err.Error())
		}
		return err
	}

	return h.save(c, current)
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity" form:"quantity"`
}

// HandleUpdateItem sets a line's quantity. Quantities below 1 leave the cart unchanged.
func (h *CartHandler) HandleUpdateItem(c echo.Context) error {
	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	current, err := h.load(c)
	if current == nil {
		return err
	}

	if !current.UpdateQuantity(c.Param("variantId"), req.Quantity) {
		return c.JSON(http.StatusOK, newCartResponse(current))
	}
	return h.save(c, current)
}

func (h *CartHandler) HandleRemoveItem(c echo.Context) error {
	current, err := h.load(c)
	if current == nil {
		return err
	}

	if !current.RemoveItem(c.Param("variantId")) {
		return errorJSON(c, http.StatusNotFound, "Item not in cart")
	}
	return h.save(c, current)
}

// cartSnapshot copies the display fields a cart line keeps from the catalog
func cartSnapshot(p *catalog.Product, v *catalog.Variant) (cart.Product, cart.Variant) {
	return cart.Product{
			ID:       p.ID,
			Name:     p.Title,
			Slug:     p.Handle,
			ImageURL: p.ImageURL,
		}, cart.Variant{
			ID:                  v.ID,
			Title:               v.Title,
			SKU:                 v.SKU,
			PriceCents:          v.PriceCents,
			CompareAtPriceCents: v.CompareAtPriceCents,
			Available:           v.Available(),
		}
}
