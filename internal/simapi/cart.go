package simapi

import (
	"context"

	"techstore-service/internal/domain"
)

// loadCart reads the persisted cart, treating an absent or corrupt
// document as empty. Callers that mutate must hold c.mu across the whole
// read-modify-write sequence.
func (c *Client) loadCart(ctx context.Context) []domain.CartItem {
	items := []domain.CartItem{}
	c.loadDoc(ctx, KeyCart, &items)
	return items
}

// GetCart returns the persisted cart. Missing or corrupt data reads as an
// empty cart, never as an error; only the injected transient fault
// propagates.
func (c *Client) GetCart(ctx context.Context) ([]domain.CartItem, error) {
	if err := c.begin(ctx, "GetCart"); err != nil {
		return nil, err
	}
	return c.loadCart(ctx), nil
}

// AddToCart merges quantity onto an existing line for the product, or
// appends a new line embedding a full product snapshot. A quantity below 1
// is coerced to 1. The returned bool is false when the product id is
// unknown or the write failed; an injected transient fault is returned as
// the error instead.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) (bool, error) {
	if err := c.begin(ctx, "AddToCart"); err != nil {
		return false, err
	}
	if quantity < 1 {
		quantity = 1
	}
	product := c.catalog.ProductByID(productID)
	if product == nil {
		return false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	cart := c.loadCart(ctx)
	merged := false
	for i := range cart {
		if cart[i].Product.ID == productID {
			cart[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart = append(cart, domain.CartItem{Product: *product, Quantity: quantity})
	}
	if err := c.saveDoc(ctx, KeyCart, cart); err != nil {
		c.logf("WARN: simapi: persisting cart: %v", err)
		return false, nil
	}
	return true, nil
}

// UpdateCartItem overwrites the quantity of an existing line; a quantity of
// zero or below removes the line. An unknown product id is a no-op that
// still reports success — unlike AddToCart, this operation never creates a
// line.
func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) (bool, error) {
	if err := c.begin(ctx, "UpdateCartItem"); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	cart := c.loadCart(ctx)
	updated := make([]domain.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.Product.ID == productID {
			if quantity <= 0 {
				continue // drop the line
			}
			item.Quantity = quantity
		}
		updated = append(updated, item)
	}
	if err := c.saveDoc(ctx, KeyCart, updated); err != nil {
		c.logf("WARN: simapi: persisting cart: %v", err)
		return false, nil
	}
	return true, nil
}

// RemoveFromCart filters the product's line out of the cart. An absent id
// is a no-op success.
func (c *Client) RemoveFromCart(ctx context.Context, productID string) (bool, error) {
	if err := c.begin(ctx, "RemoveFromCart"); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	cart := c.loadCart(ctx)
	updated := make([]domain.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.Product.ID != productID {
			updated = append(updated, item)
		}
	}
	if err := c.saveDoc(ctx, KeyCart, updated); err != nil {
		c.logf("WARN: simapi: persisting cart: %v", err)
		return false, nil
	}
	return true, nil
}

// ClearCart deletes the persisted cart document entirely.
func (c *Client) ClearCart(ctx context.Context) (bool, error) {
	if err := c.begin(ctx, "ClearCart"); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Delete(ctx, KeyCart); err != nil {
		c.logf("WARN: simapi: clearing cart: %v", err)
		return false, nil
	}
	return true, nil
}
