package catalog

import (
	"strings"

	"techstore-service/internal/domain"
)

// Catalog is the read-only product/category dataset every query runs
// against. It is built once at startup and never mutated afterwards, so it
// needs no synchronization.
type Catalog struct {
	products   []domain.Product
	categories []domain.Category
	byID       map[string]*domain.Product
}

// New builds a Catalog over the default seed data.
func New() *Catalog {
	return NewWith(seedProducts(), seedCategories())
}

// NewWith builds a Catalog over an explicit dataset. Tests use this to pin
// down filter and ranking behavior on small fixtures.
func NewWith(products []domain.Product, categories []domain.Category) *Catalog {
	c := &Catalog{
		products:   products,
		categories: categories,
		byID:       make(map[string]*domain.Product, len(products)),
	}
	for i := range c.products {
		c.byID[c.products[i].ID] = &c.products[i]
	}
	return c
}

// Products returns a copy of the full product list in catalog order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns a copy of the declared category list.
func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// ProductByID returns the product with the given id, or nil when unknown.
func (c *Catalog) ProductByID(id string) *domain.Product {
	return c.byID[id]
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// CategoryValues returns the distinct Product.Category values in
// first-appearance order. Note these are the stored values, which may or may
// not line up with a declared Category.Slug.
func (c *Catalog) CategoryValues() []string {
	seen := make(map[string]struct{}, len(c.categories))
	var out []string
	for i := range c.products {
		cat := c.products[i].Category
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out
}

// CategoryCounts returns per-category product counts in first-appearance
// order, with the slug derived by lowercasing the stored value.
func (c *Catalog) CategoryCounts() []domain.CategoryCount {
	counts := make(map[string]int, len(c.categories))
	var order []string
	for i := range c.products {
		cat := c.products[i].Category
		if counts[cat] == 0 {
			order = append(order, cat)
		}
		counts[cat]++
	}
	out := make([]domain.CategoryCount, 0, len(order))
	for _, name := range order {
		out = append(out, domain.CategoryCount{
			Name:  name,
			Count: counts[name],
			Slug:  strings.ToLower(name),
		})
	}
	return out
}
