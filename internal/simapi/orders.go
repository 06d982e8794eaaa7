package simapi

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"techstore-service/internal/domain"
)

// CreateOrder runs the simulated checkout. Its nominal delay (1500ms)
// models payment processing, and its failure path is a typed result rather
// than a propagated fault: a declined payment is a business outcome the
// caller must branch on. On success the order is appended to the persisted
// history and the cart is cleared as a side effect; the two writes are
// independent and non-atomic (a crash between them can leave one applied
// without the other — a documented limitation of this demo). On failure the
// cart is left untouched and nothing is appended.
func (c *Client) CreateOrder(ctx context.Context, items []domain.CartItem, customerInfo json.RawMessage) (*domain.OrderResult, error) {
	spec := ops["CreateOrder"]
	if err := c.sleep(ctx, spec.delay); err != nil {
		return nil, err
	}
	if c.shouldFail(spec.errRate) {
		return &domain.OrderResult{Success: false, Error: spec.message}, nil
	}

	now := c.now()
	order := domain.Order{
		ID:           "ORD-" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)),
		Items:        items,
		CustomerInfo: customerInfo,
		Total:        domain.OrderTotal(items),
		Status:       domain.OrderStatusProcessing,
		CreatedAt:    now.UTC(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	orders := []domain.Order{}
	c.loadDoc(ctx, KeyOrders, &orders)
	orders = append(orders, order)
	if err := c.saveDoc(ctx, KeyOrders, orders); err != nil {
		c.logf("WARN: simapi: persisting order history: %v", err)
		return &domain.OrderResult{Success: false, Error: "Failed to create order"}, nil
	}
	if err := c.store.Delete(ctx, KeyCart); err != nil {
		// The order is already recorded; losing the cart clear only leaves
		// stale lines behind, which the user can clear themselves.
		c.logf("WARN: simapi: clearing cart after order %s: %v", order.ID, err)
	}
	return &domain.OrderResult{Success: true, OrderID: order.ID}, nil
}

// GetOrderHistory returns the persisted append-only order list. Missing or
// corrupt data reads as empty.
func (c *Client) GetOrderHistory(ctx context.Context) ([]domain.Order, error) {
	if err := c.begin(ctx, "GetOrderHistory"); err != nil {
		return nil, err
	}
	orders := []domain.Order{}
	c.loadDoc(ctx, KeyOrders, &orders)
	return orders, nil
}
