package utils

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

var (
	ErrSKURequired = errors.New("sku is required")
	ErrSKUFormat   = errors.New("sku may only contain letters, numbers, and hyphens")
	ErrSKUExists   = errors.New("sku already exists")
)

var (
	skuPattern   = regexp.MustCompile(`^[A-Z0-9]+(-[A-Z0-9]+)*$`)
	skuSeparator = regexp.MustCompile(`[\s_/]+`)
	skuInvalid   = regexp.MustCompile(`[^A-Z0-9-]`)
	skuDashes    = regexp.MustCompile(`-{2,}`)
)

// GenerateSKU builds a catalog-wide SKU from a base code and option values.
// Example: base "venison-jerky", options "8 oz", "Hickory" -> "VENISON-JERKY-8-OZ-HICKORY".
func GenerateSKU(base string, options ...string) string {
	parts := make([]string, 0, len(options)+1)
	for _, v := range append([]string{base}, options...) {
		if seg := NormalizeSKU(v); seg != "" {
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, "-")
}

// NormalizeSKU upper-cases and hyphenates a SKU, dropping characters that are not allowed.
func NormalizeSKU(value string) string {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = skuSeparator.ReplaceAllString(normalized, "-")
	normalized = skuInvalid.ReplaceAllString(normalized, "")
	normalized = skuDashes.ReplaceAllString(normalized, "-")
	return strings.Trim(normalized, "-")
}

// ValidateSKU checks format and uniqueness at the database layer.
func ValidateSKU(ctx context.Context, queries *db.Queries, sku string) error {
	normalized := strings.ToUpper(strings.TrimSpace(sku))
	if normalized == "" {
		return ErrSKURequired
	}

	if !skuPattern.MatchString(normalized) {
		return ErrSKUFormat
	}

	exists, err := queries.CheckSkuExists(ctx, normalized)
	if err != nil {
		return fmt.Errorf("failed to validate sku: %w", err)
	}
	if exists > 0 {
		return fmt.Errorf("%w: %s", ErrSKUExists, normalized)
	}

	return nil
}
