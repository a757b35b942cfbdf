package catalog

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Storefront renders listings from a Source. Listing failures degrade to an
// empty result so a catalog outage never takes a page down.
type Storefront struct {
	source Source
}

func NewStorefront(source Source) *Storefront {
	return &Storefront{source: source}
}

func (s *Storefront) Source() Source {
	return s.source
}

// Listing returns up to limit products for a single tag (or all products when tag is empty).
func (s *Storefront) Listing(ctx context.Context, tag string, limit int) []Product {
	products, err := s.source.ListProducts(ctx, ListParams{Tag: tag, Limit: limit})
	if err != nil {
		slog.Error("catalog listing failed", "source", s.source.Name(), "tag", tag, "error", err)
		return []Product{}
	}
	return products
}

// Collections fetches several tagged listings concurrently, keyed by tag.
func (s *Storefront) Collections(ctx context.Context, tags []string, limit int) map[string][]Product {
	results := make([][]Product, len(tags))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, tag := range tags {
		g.Go(func() error {
			results[i] = s.Listing(gctx, tag, limit)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string][]Product, len(tags))
	for i, tag := range tags {
		out[tag] = results[i]
	}
	return out
}
