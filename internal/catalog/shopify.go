package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout           = 15 * time.Second
	DefaultShopifyAPIVersion = "2024-10"
)

// ShopifySource reads the catalog from the Shopify Storefront GraphQL API.
type ShopifySource struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

type ShopifyConfig struct {
	Domain     string
	Token      string
	APIVersion string
	// Endpoint overrides the URL derived from Domain and APIVersion.
	Endpoint string
}

func NewShopifySource(cfg ShopifyConfig) *ShopifySource {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		version := cfg.APIVersion
		if version == "" {
			version = DefaultShopifyAPIVersion
		}
		domain := strings.TrimSuffix(strings.TrimPrefix(cfg.Domain, "https://"), "/")
		endpoint = fmt.Sprintf("https://%s/api/%s/graphql.json", domain, version)
	}

	return &ShopifySource{
		endpoint: endpoint,
		token:    cfg.Token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (s *ShopifySource) Name() string { return "shopify" }

const productFields = `
fragment ProductFields on Product {
  id
  handle
  title
  description
  tags
  availableForSale
  featuredImage { url }
  priceRange { minVariantPrice { amount } }
  variants(first: 50) {
    edges { node { ...VariantFields } }
  }
}
fragment VariantFields on ProductVariant {
  id
  title
  sku
  availableForSale
  quantityAvailable
  price { amount }
  compareAtPrice { amount }
  selectedOptions { name value }
}`

const productsQuery = `query Products($first: Int!, $query: String) {
  products(first: $first, query: $query) {
    edges { node { ...ProductFields } }
  }
}` + productFields

const productByHandleQuery = `query ProductByHandle($handle: String!) {
  product(handle: $handle) { ...ProductFields }
}` + productFields

const variantQuery = `query Variant($id: ID!) {
  node(id: $id) {
    ... on ProductVariant {
      ...VariantFields
      product { ...ProductFields }
    }
  }
}` + productFields

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type money struct {
	Amount string `json:"amount"`
}

type shopifyVariant struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	SKU               string   `json:"sku"`
	AvailableForSale  bool     `json:"availableForSale"`
	QuantityAvailable *int64   `json:"quantityAvailable"`
	Price             money    `json:"price"`
	CompareAtPrice    *money   `json:"compareAtPrice"`
	SelectedOptions   []Option `json:"selectedOptions"`
}

type shopifyProduct struct {
	ID               string   `json:"id"`
	Handle           string   `json:"handle"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Tags             []string `json:"tags"`
	AvailableForSale bool     `json:"availableForSale"`
	FeaturedImage    *struct {
		URL string `json:"url"`
	} `json:"featuredImage"`
	PriceRange struct {
		MinVariantPrice money `json:"minVariantPrice"`
	} `json:"priceRange"`
	Variants struct {
		Edges []struct {
			Node shopifyVariant `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

func (s *ShopifySource) do(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("shopify API error %d: %s", resp.StatusCode, string(b))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("shopify graphql error: %s", envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func (s *ShopifySource) ListProducts(ctx context.Context, params ListParams) ([]Product, error) {
	vars := map[string]any{"first": params.limit()}
	if params.Tag != "" {
		vars["query"] = fmt.Sprintf("tag:%q", params.Tag)
	}

	var data struct {
		Products struct {
			Edges []struct {
				Node shopifyProduct `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}
	if err := s.do(ctx, productsQuery, vars, &data); err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(data.Products.Edges))
	for _, edge := range data.Products.Edges {
		p, err := edge.Node.toProduct()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *ShopifySource) ProductByHandle(ctx context.Context, handle string) (*Product, error) {
	var data struct {
		Product *shopifyProduct `json:"product"`
	}
	if err := s.do(ctx, productByHandleQuery, map[string]any{"handle": handle}, &data); err != nil {
		return nil, err
	}
	if data.Product == nil {
		return nil, ErrNotFound
	}
	p, err := data.Product.toProduct()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ShopifySource) LookupVariant(ctx context.Context, variantID string) (*Product, *Variant, error) {
	var data struct {
		Node *struct {
			shopifyVariant
			Product *shopifyProduct `json:"product"`
		} `json:"node"`
	}
	if err := s.do(ctx, variantQuery, map[string]any{"id": variantID}, &data); err != nil {
		return nil, nil, err
	}
	if data.Node == nil || data.Node.Product == nil {
		return nil, nil, ErrNotFound
	}

	p, err := data.Node.Product.toProduct()
	if err != nil {
		return nil, nil, err
	}
	v, ok := p.Variant(data.Node.ID)
	if !ok {
		// Products with more variants than the first page still resolve the requested one.
		nv, err := data.Node.shopifyVariant.toVariant(p.ID)
		if err != nil {
			return nil, nil, err
		}
		p.Variants = append(p.Variants, nv)
		v = &p.Variants[len(p.Variants)-1]
	}
	return &p, v, nil
}

func (sp shopifyProduct) toProduct() (Product, error) {
	price, err := parseMoney(sp.PriceRange.MinVariantPrice.Amount)
	if err != nil {
		return Product{}, err
	}

	p := Product{
		ID:          sp.ID,
		Handle:      sp.Handle,
		Title:       sp.Title,
		Description: sp.Description,
		PriceCents:  price,
		Tags:        sp.Tags,
		Active:      sp.AvailableForSale,
		Variants:    make([]Variant, 0, len(sp.Variants.Edges)),
		Source:      "shopify",
	}
	if sp.FeaturedImage != nil {
		p.ImageURL = sp.FeaturedImage.URL
	}

	for _, edge := range sp.Variants.Edges {
		v, err := edge.Node.toVariant(sp.ID)
		if err != nil {
			return Product{}, err
		}
		p.Variants = append(p.Variants, v)
	}
	return p, nil
}

func (sv shopifyVariant) toVariant(productID string) (Variant, error) {
	price, err := parseMoney(sv.Price.Amount)
	if err != nil {
		return Variant{}, err
	}

	v := Variant{
		ID:         sv.ID,
		ProductID:  productID,
		Title:      sv.Title,
		SKU:        sv.SKU,
		PriceCents: price,
		Active:     sv.AvailableForSale,
		Options:    sv.SelectedOptions,
	}
	if sv.CompareAtPrice != nil {
		if v.CompareAtPriceCents, err = parseMoney(sv.CompareAtPrice.Amount); err != nil {
			return Variant{}, err
		}
	}
	if sv.QuantityAvailable != nil {
		v.TrackInventory = true
		v.InventoryQuantity = *sv.QuantityAvailable
	}
	return v, nil
}

// parseMoney converts a decimal amount string such as "24.99" to cents.
func parseMoney(amount string) (int64, error) {
	if amount == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid money amount %q: %w", amount, err)
	}
	return int64(math.Round(f * 100)), nil
}
