package simapi

import (
	"context"
	"sort"
	"strings"

	"techstore-service/internal/domain"
)

// ListProducts returns a copy of the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := c.begin(ctx, "ListProducts"); err != nil {
		return nil, err
	}
	return c.catalog.Products(), nil
}

// ListProductsByCategory filters on the category field, case-insensitively.
func (c *Client) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if err := c.begin(ctx, "ListProductsByCategory"); err != nil {
		return nil, err
	}
	want := strings.ToLower(category)
	out := []domain.Product{}
	for _, p := range c.catalog.Products() {
		if strings.ToLower(p.Category) == want {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListProductsByCategories keeps products whose stored category value is a
// member of the given set. Unlike the single-category filter this match is
// case-sensitive.
func (c *Client) ListProductsByCategories(ctx context.Context, categories []string) ([]domain.Product, error) {
	if err := c.begin(ctx, "ListProductsByCategories"); err != nil {
		return nil, err
	}
	want := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		want[cat] = struct{}{}
	}
	out := []domain.Product{}
	for _, p := range c.catalog.Products() {
		if _, ok := want[p.Category]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// SearchProducts matches the query case-insensitively as a substring of
// name, description, category, or any feature string. An empty or
// whitespace-only query returns an empty result without consulting the
// catalog — there are no match-everything semantics.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	if err := c.begin(ctx, "SearchProducts"); err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.Product{}, nil
	}
	out := []domain.Product{}
	for _, p := range c.catalog.Products() {
		if productMatches(&p, q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func productMatches(p *domain.Product, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(p.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Description), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Category), lowerQuery) {
		return true
	}
	for _, f := range p.Features {
		if strings.Contains(strings.ToLower(f), lowerQuery) {
			return true
		}
	}
	return false
}

// GetProductByID returns the product with the given id, or
// ErrProductNotFound when the id is unknown.
func (c *Client) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if err := c.begin(ctx, "GetProductByID"); err != nil {
		return nil, err
	}
	p := c.catalog.ProductByID(id)
	if p == nil {
		return nil, ErrProductNotFound
	}
	snapshot := *p
	return &snapshot, nil
}

// GetFeaturedProducts returns products rated 4.5 or higher, best rated
// first, capped at 6. Ties keep catalog order (stable sort).
func (c *Client) GetFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	if err := c.begin(ctx, "GetFeaturedProducts"); err != nil {
		return nil, err
	}
	out := []domain.Product{}
	for _, p := range c.catalog.Products() {
		if p.Rating >= 4.5 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > 6 {
		out = out[:6]
	}
	return out, nil
}

// GetPopularProducts approximates popularity from rating and price:
// anything rated 4.0+ or priced above 500, best rated first, capped at 8.
func (c *Client) GetPopularProducts(ctx context.Context) ([]domain.Product, error) {
	if err := c.begin(ctx, "GetPopularProducts"); err != nil {
		return nil, err
	}
	out := []domain.Product{}
	for _, p := range c.catalog.Products() {
		if p.Rating >= 4.0 || p.Price > 500 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > 8 {
		out = out[:8]
	}
	return out, nil
}

// GetRelatedProducts returns up to limit products sharing the target's
// category or at least one feature string, excluding the target itself.
// An unknown target yields an empty list, not an error. A limit of 0 or
// below falls back to the default of 4.
func (c *Client) GetRelatedProducts(ctx context.Context, productID string, limit int) ([]domain.Product, error) {
	if err := c.begin(ctx, "GetRelatedProducts"); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 4
	}
	target := c.catalog.ProductByID(productID)
	if target == nil {
		return []domain.Product{}, nil
	}
	out := []domain.Product{}
	for _, p := range c.catalog.Products() {
		if p.ID == productID {
			continue
		}
		if p.Category == target.Category || sharesFeature(&p, target) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func sharesFeature(a, b *domain.Product) bool {
	for _, f := range a.Features {
		if b.HasFeature(f) {
			return true
		}
	}
	return false
}

// ListCategories returns the distinct category values present in the
// catalog, in first-appearance order.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	if err := c.begin(ctx, "ListCategories"); err != nil {
		return nil, err
	}
	return c.catalog.CategoryValues(), nil
}

// ListCategoryCounts returns each category value with its product count and
// a lowercase slug, in first-appearance order.
func (c *Client) ListCategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	if err := c.begin(ctx, "ListCategoryCounts"); err != nil {
		return nil, err
	}
	return c.catalog.CategoryCounts(), nil
}
