package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

// LocalSource serves the catalog from the relational store.
type LocalSource struct {
	queries *db.Queries
}

func NewLocalSource(queries *db.Queries) *LocalSource {
	return &LocalSource{queries: queries}
}

func (s *LocalSource) Name() string { return "local" }

func (s *LocalSource) ListProducts(ctx context.Context, params ListParams) ([]Product, error) {
	var (
		rows []db.Product
		err  error
	)
	if params.Tag != "" {
		rows, err = s.queries.ListActiveProductsByTag(ctx, db.ListActiveProductsByTagParams{
			Tag:   params.Tag,
			Limit: int64(params.limit()),
		})
	} else {
		rows, err = s.queries.ListActiveProducts(ctx, int64(params.limit()))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		variants, err := s.queries.ListVariantsByProduct(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list variants for %s: %w", row.ID, err)
		}
		products = append(products, fromDB(row, variants))
	}
	return products, nil
}

func (s *LocalSource) ProductByHandle(ctx context.Context, handle string) (*Product, error) {
	row, err := s.queries.GetProductBySlug(ctx, handle)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	variants, err := s.queries.ListVariantsByProduct(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}
	p := fromDB(row, variants)
	return &p, nil
}

func (s *LocalSource) LookupVariant(ctx context.Context, variantID string) (*Product, *Variant, error) {
	row, err := s.queries.GetVariantWithProduct(ctx, variantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get variant: %w", err)
	}

	p := fromDB(row.Product, []db.ProductVariant{row.ProductVariant})
	return &p, &p.Variants[0], nil
}

func fromDB(p db.Product, variants []db.ProductVariant) Product {
	out := Product{
		ID:          p.ID,
		Handle:      p.Slug,
		Title:       p.Name,
		Description: p.Description.String,
		ImageURL:    p.ImageUrl.String,
		PriceCents:  p.BasePriceCents,
		Tags:        splitTags(p.Tags),
		Active:      p.IsActive,
		Variants:    make([]Variant, 0, len(variants)),
		Source:      "local",
	}
	if p.CompareAtPriceCents.Valid {
		out.CompareAtPriceCents = p.CompareAtPriceCents.Int64
	}

	for _, v := range variants {
		variant := Variant{
			ID:                v.ID,
			ProductID:         p.ID,
			Title:             v.Title,
			SKU:               v.Sku,
			PriceCents:        p.BasePriceCents,
			TrackInventory:    p.TrackInventory,
			InventoryQuantity: v.InventoryQuantity,
			Active:            v.IsActive && p.IsActive,
			Options:           options(v),
		}
		if v.PriceCents.Valid {
			variant.PriceCents = v.PriceCents.Int64
		}
		switch {
		case v.CompareAtPriceCents.Valid:
			variant.CompareAtPriceCents = v.CompareAtPriceCents.Int64
		case p.CompareAtPriceCents.Valid:
			variant.CompareAtPriceCents = p.CompareAtPriceCents.Int64
		}
		out.Variants = append(out.Variants, variant)
	}
	return out
}

func options(v db.ProductVariant) []Option {
	var out []Option
	pairs := [][2]sql.NullString{
		{v.Option1Name, v.Option1Value},
		{v.Option2Name, v.Option2Value},
		{v.Option3Name, v.Option3Value},
	}
	for _, pair := range pairs {
		if pair[0].Valid && pair[1].Valid {
			out = append(out, Option{Name: pair[0].String, Value: pair[1].String})
		}
	}
	return out
}
