package simapi

import (
	"context"

	"techstore-service/internal/domain"
)

// loadWishlist reads the persisted product-id list, treating absent or
// corrupt data as empty.
func (c *Client) loadWishlist(ctx context.Context) []string {
	ids := []string{}
	c.loadDoc(ctx, KeyWishlist, &ids)
	return ids
}

// GetWishlist dereferences the persisted product ids against the live
// catalog, preserving catalog order. An id that no longer resolves simply
// disappears from the result — the wishlist stores no snapshots.
func (c *Client) GetWishlist(ctx context.Context) ([]domain.Product, error) {
	if err := c.begin(ctx, "GetWishlist"); err != nil {
		return nil, err
	}
	ids := c.loadWishlist(ctx)
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := []domain.Product{}
	for _, p := range c.catalog.Products() {
		if _, ok := want[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// AddToWishlist inserts the product id if not already present. The id is
// not checked against the catalog; an unknown id is stored and silently
// dropped on read.
func (c *Client) AddToWishlist(ctx context.Context, productID string) (bool, error) {
	if err := c.begin(ctx, "AddToWishlist"); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	ids := c.loadWishlist(ctx)
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	ids = append(ids, productID)
	if err := c.saveDoc(ctx, KeyWishlist, ids); err != nil {
		c.logf("WARN: simapi: persisting wishlist: %v", err)
		return false, nil
	}
	return true, nil
}

// RemoveFromWishlist filters the id out; an absent id is a no-op success.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID string) (bool, error) {
	if err := c.begin(ctx, "RemoveFromWishlist"); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	ids := c.loadWishlist(ctx)
	updated := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != productID {
			updated = append(updated, id)
		}
	}
	if err := c.saveDoc(ctx, KeyWishlist, updated); err != nil {
		c.logf("WARN: simapi: persisting wishlist: %v", err)
		return false, nil
	}
	return true, nil
}
