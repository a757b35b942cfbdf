package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/catalog"
	"github.com/treysweeney3/hunt-kitchen-sub000/views/layout"
	"github.com/treysweeney3/hunt-kitchen-sub000/views/shop"
)

type ShopHandler struct {
	storefront *catalog.Storefront
	siteURL    string
}

func NewShopHandler(storefront *catalog.Storefront, siteURL string) *ShopHandler {
	return &ShopHandler{storefront: storefront, siteURL: siteURL}
}

// HandleListing shows the storefront. A catalog outage renders an empty shelf, not an error.
func (h *ShopHandler) HandleListing(c echo.Context) error {
	tag := c.QueryParam("tag")
	products := h.storefront.Listing(c.Request().Context(), tag, int(queryInt(c, "limit", 48)))

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, map[string]any{"products": products})
	}

	meta := layout.NewPageMeta(h.siteURL, "/shop").WithTitle("Shop")
	return Render(c, layout.Base(meta, shop.Listing(tag, products)))
}

func (h *ShopHandler) HandleProduct(c echo.Context) error {
	handle := c.Param("handle")
	product, err := h.storefront.Source().ProductByHandle(c.Request().Context(), handle)
	if errors.Is(err, catalog.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		slog.Error("failed to load product", "error", err, "handle", handle)
		return echo.NewHTTPError(http.StatusBadGateway, "Catalog is temporarily unavailable")
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, product)
	}

	meta := layout.NewPageMeta(h.siteURL, "/shop/products/"+product.Handle).WithTitle(product.Title)
	meta.Description = product.Description
	meta.OGImageURL = product.ImageURL
	return Render(c, layout.Base(meta, shop.Product(*product)))
}
