package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/catalog"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/utils"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

const maxVariantOptions = 3

type CreateVariantRequest struct {
	Title               string           `json:"title"`
	SKU                 string           `json:"sku"`
	PriceCents          *int64           `json:"price_cents"`
	CompareAtPriceCents int64            `json:"compare_at_price_cents"`
	InventoryQuantity   int64            `json:"inventory_quantity"`
	Options             []catalog.Option `json:"options"`
	Active              *bool            `json:"is_active"`
}

// HandleCreateVariant adds a variant to a product. When no SKU is sent one is
// generated from the product slug and the option values.
func (h *AdminHandler) HandleCreateVariant(c echo.Context) error {
	ctx := c.Request().Context()
	productID := c.Param("id")

	product, err := h.storage.Queries.GetProduct(ctx, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return errorJSON(c, http.StatusNotFound, "product not found")
	}
	if err != nil {
		slog.Error("failed to get product", "error", err, "product_id", productID)
		return errorJSON(c, http.StatusInternalServerError, "Failed to load product")
	}

	var req CreateVariantRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if len(req.Options) > maxVariantOptions {
		return errorJSON(c, http.StatusBadRequest, "a variant has at most three options")
	}
	if req.InventoryQuantity < 0 {
		return errorJSON(c, http.StatusBadRequest, "inventory cannot be negative")
	}
	if req.PriceCents != nil && *req.PriceCents < 0 {
		return errorJSON(c, http.StatusBadRequest, "price cannot be negative")
	}

	values := make([]string, 0, len(req.Options))
	for _, o := range req.Options {
		values = append(values, o.Value)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = strings.Join(values, " / ")
	}
	if title == "" {
		title = "Default"
	}

	sku := utils.NormalizeSKU(req.SKU)
	if sku == "" {
		sku = utils.GenerateSKU(product.Slug, values...)
	}
	if err := utils.ValidateSKU(ctx, h.storage.Queries, sku); err != nil {
		switch {
		case errors.Is(err, utils.ErrSKUExists):
			return errorJSON(c, http.StatusConflict, err.Error())
		case errors.Is(err, utils.ErrSKURequired), errors.Is(err, utils.ErrSKUFormat):
			return errorJSON(c, http.StatusBadRequest, err.Error())
		}
		slog.Error("failed to validate sku", "error", err, "sku", sku)
		return errorJSON(c, http.StatusInternalServerError, "Failed to create variant")
	}

	params := db.CreateProductVariantParams{
		ID:                  ulid.Make().String(),
		ProductID:           product.ID,
		Title:               title,
		Sku:                 sku,
		CompareAtPriceCents: nullCents(req.CompareAtPriceCents),
		InventoryQuantity:   req.InventoryQuantity,
		IsActive:            boolOr(req.Active, true),
	}
	if req.PriceCents != nil {
		params.PriceCents = sql.NullInt64{Int64: *req.PriceCents, Valid: true}
	}
	setOptions(&params, req.Options)

	variant, err := h.storage.Queries.CreateProductVariant(ctx, params)
	if err != nil {
		if isUniqueViolation(err) {
			return errorJSON(c, http.StatusConflict, utils.ErrSKUExists.Error())
		}
		slog.Error("failed to create variant", "error", err, "product_id", product.ID)
		return errorJSON(c, http.StatusInternalServerError, "Failed to create variant")
	}

	slog.Info("variant created", "variant_id", variant.ID, "product_id", product.ID, "sku", variant.Sku)
	return c.JSON(http.StatusCreated, variant)
}

func setOptions(p *db.CreateProductVariantParams, opts []catalog.Option) {
	slots := []struct{ name, value *sql.NullString }{
		{&p.Option1Name, &p.Option1Value},
		{&p.Option2Name, &p.Option2Value},
		{&p.Option3Name, &p.Option3Value},
	}
	for i, o := range opts {
		if i >= len(slots) {
			break
		}
		*slots[i].name = nullString(o.Name)
		*slots[i].value = nullString(o.Value)
	}
}

type SetInventoryRequest struct {
	Quantity int64 `json:"inventory_quantity" form:"inventory_quantity"`
}

// HandleSetInventory overwrites a variant's stock count
func (h *AdminHandler) HandleSetInventory(c echo.Context) error {
	var req SetInventoryRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Quantity < 0 {
		return errorJSON(c, http.StatusBadRequest, "inventory cannot be negative")
	}

	variant, err := h.storage.Queries.SetVariantInventory(c.Request().Context(), db.SetVariantInventoryParams{
		InventoryQuantity: req.Quantity,
		ID:                c.Param("id"),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return errorJSON(c, http.StatusNotFound, "variant not found")
	}
	if err != nil {
		slog.Error("failed to set inventory", "error", err, "variant_id", c.Param("id"))
		return errorJSON(c, http.StatusInternalServerError, "Failed to update inventory")
	}

	slog.Info("inventory set", "variant_id", variant.ID, "sku", variant.Sku, "quantity", variant.InventoryQuantity)
	return c.JSON(http.StatusOK, variant)
}
