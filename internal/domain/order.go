package domain

import (
	"encoding/json"
	"time"
)

// OrderStatusProcessing is the only status this demo ever assigns.
// No further lifecycle transition is modeled.
const OrderStatusProcessing = "processing"

// Order is an immutable record of a completed checkout. Items is a snapshot
// of the cart at creation time and Total is computed once from it, never
// recomputed later. Orders accumulate append-only in the order history.
type Order struct {
	ID           string          `json:"id"` // ORD-<base36 ms timestamp, uppercase>
	Items        []CartItem      `json:"items"`
	CustomerInfo json.RawMessage `json:"customerInfo,omitempty"` // opaque passthrough, not validated
	Total        float64         `json:"total"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// OrderTotal sums price*quantity over the given lines.
func OrderTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// OrderResult is the typed outcome of CreateOrder. Order failure is a
// business outcome (payment declined), not a transient fault, so callers
// branch on Success instead of an error value.
type OrderResult struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId,omitempty"`
	Error   string `json:"error,omitempty"`
}
