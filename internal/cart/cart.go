// Package cart holds the shopper's in-progress selection of product variants.
//
// Prices on a cart are display snapshots taken when an item is added; checkout
// re-prices every line from the catalog before any money changes hands.
package cart

import "errors"

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrOutOfStock      = errors.New("variant is out of stock")
)

// Product is the product snapshot shown alongside a cart line
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"image_url,omitempty"`
}

// Variant is the purchasable unit snapshot. Available is nil when inventory is not tracked.
type Variant struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	SKU                 string `json:"sku"`
	PriceCents          int64  `json:"price_cents"`
	CompareAtPriceCents int64  `json:"compare_at_price_cents,omitempty"`
	Available           *int64 `json:"available,omitempty"`
}

type Item struct {
	ProductID           string  `json:"product_id"`
	VariantID           string  `json:"variant_id"`
	Quantity            int64   `json:"quantity"`
	UnitPriceCents      int64   `json:"unit_price_cents"`
	CompareAtPriceCents int64   `json:"compare_at_price_cents,omitempty"`
	Product             Product `json:"product"`
	Variant             Variant `json:"variant"`
}

// LineTotalCents is unit price times quantity.
func (i Item) LineTotalCents() int64 {
	return i.UnitPriceCents * i.Quantity
}

type Cart struct {
	Items []Item `json:"items"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Items: []Item{}}
}

// AddItem adds quantity of the variant, merging with an existing line for the same variant.
// The resulting quantity is clamped to the variant's known availability.
func (c *Cart) AddItem(product Product, variant Variant, quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if variant.Available != nil && *variant.Available <= 0 {
		return ErrOutOfStock
	}

	if idx := c.indexOf(variant.ID); idx >= 0 {
		item := &c.Items[idx]
		item.Product = product
		item.Variant = variant
		item.UnitPriceCents = variant.PriceCents
		item.CompareAtPriceCents = variant.CompareAtPriceCents
		item.Quantity = clamp(item.Quantity+quantity, variant.Available)
		return nil
	}

	c.Items = append(c.Items, Item{
		ProductID:           product.ID,
		VariantID:           variant.ID,
		Quantity:            clamp(quantity, variant.Available),
		UnitPriceCents:      variant.PriceCents,
		CompareAtPriceCents: variant.CompareAtPriceCents,
		Product:             product,
		Variant:             variant,
	})
	return nil
}

// UpdateQuantity sets the quantity of an existing line. Quantities below 1 and
// unknown variants are ignored; the return value reports whether the cart changed.
func (c *Cart) UpdateQuantity(variantID string, quantity int64) bool {
	if quantity < 1 {
		return false
	}
	idx := c.indexOf(variantID)
	if idx < 0 {
		return false
	}
	item := &c.Items[idx]
	next := clamp(quantity, item.Variant.Available)
	if next == item.Quantity {
		return false
	}
	item.Quantity = next
	return true
}

// RemoveItem drops the line for variantID and reports whether one existed.
func (c *Cart) RemoveItem(variantID string) bool {
	idx := c.indexOf(variantID)
	if idx < 0 {
		return false
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.Items = []Item{}
}

func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.LineTotalCents()
	}
	return total
}

// Total equals Subtotal; shipping and tax are only known at checkout.
func (c *Cart) Total() int64 {
	return c.Subtotal()
}

func (c *Cart) ItemCount() int64 {
	var n int64
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) indexOf(variantID string) int {
	for i, item := range c.Items {
		if item.VariantID == variantID {
			return i
		}
	}
	return -1
}

func clamp(quantity int64, available *int64) int64 {
	if available != nil && quantity > *available {
		return *available
	}
	return quantity
}
