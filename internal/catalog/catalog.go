// Package catalog exposes the products and variants the store sells, either
// from the local database or from a Shopify storefront.
package catalog

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("catalog item not found")

type Option struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Variant struct {
	ID                  string   `json:"id"`
	ProductID           string   `json:"product_id"`
	Title               string   `json:"title"`
	SKU                 string   `json:"sku"`
	PriceCents          int64    `json:"price_cents"`
	CompareAtPriceCents int64    `json:"compare_at_price_cents,omitempty"`
	TrackInventory      bool     `json:"track_inventory"`
	InventoryQuantity   int64    `json:"inventory_quantity"`
	Active              bool     `json:"active"`
	Options             []Option `json:"options,omitempty"`
}

// Available returns the purchasable quantity, or nil when inventory is not tracked.
func (v Variant) Available() *int64 {
	if !v.TrackInventory {
		return nil
	}
	q := v.InventoryQuantity
	if q < 0 {
		q = 0
	}
	return &q
}

// InStock reports whether quantity units can be sold right now.
func (v Variant) InStock(quantity int64) bool {
	if !v.Active {
		return false
	}
	return !v.TrackInventory || v.InventoryQuantity >= quantity
}

type Product struct {
	ID                  string    `json:"id"`
	Handle              string    `json:"handle"`
	Title               string    `json:"title"`
	Description         string    `json:"description,omitempty"`
	ImageURL            string    `json:"image_url,omitempty"`
	PriceCents          int64     `json:"price_cents"`
	CompareAtPriceCents int64     `json:"compare_at_price_cents,omitempty"`
	Tags                []string  `json:"tags,omitempty"`
	Active              bool      `json:"active"`
	Variants            []Variant `json:"variants"`
	Source              string    `json:"source"`
}

// Variant returns the product's variant with the given id.
func (p *Product) Variant(id string) (*Variant, bool) {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i], true
		}
	}
	return nil, false
}

type ListParams struct {
	Tag   string
	Limit int
}

func (p ListParams) limit() int {
	if p.Limit <= 0 || p.Limit > 250 {
		return 50
	}
	return p.Limit
}

// Source is a catalog backend.
type Source interface {
	Name() string
	ListProducts(ctx context.Context, params ListParams) ([]Product, error)
	ProductByHandle(ctx context.Context, handle string) (*Product, error)
	// LookupVariant returns current pricing and stock for a single variant.
	LookupVariant(ctx context.Context, variantID string) (*Product, *Variant, error)
}

func splitTags(tags string) []string {
	var out []string
	for _, t := range strings.Split(tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
