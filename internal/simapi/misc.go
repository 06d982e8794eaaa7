package simapi

import (
	"context"

	"techstore-service/internal/domain"
)

// CheckAvailability synthesizes a stock check: a fresh random stock count
// between 1 and 50 on every call, with available = stock >= quantity. The
// result is neither cached nor idempotent, and the operation never fails.
func (c *Client) CheckAvailability(ctx context.Context, productID string, quantity int) (*domain.Availability, error) {
	if err := c.begin(ctx, "CheckAvailability"); err != nil {
		return nil, err
	}
	_ = productID // stock is synthetic; the id does not influence it
	if quantity < 1 {
		quantity = 1
	}
	stock := c.stock()
	return &domain.Availability{Stock: stock, Available: stock >= quantity}, nil
}

// GetProductReviews returns a fixed two-entry review list regardless of the
// product id. Reviews are a stub, not a real feature.
func (c *Client) GetProductReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	if err := c.begin(ctx, "GetProductReviews"); err != nil {
		return nil, err
	}
	_ = productID
	return []domain.Review{
		{
			ID:      1,
			User:    "Alex Johnson",
			Rating:  5,
			Comment: "Excellent product! Fast delivery and great quality.",
			Date:    "2024-01-15",
		},
		{
			ID:      2,
			User:    "Sarah Miller",
			Rating:  4,
			Comment: "Good value for money. Would recommend!",
			Date:    "2024-01-10",
		},
	}, nil
}
