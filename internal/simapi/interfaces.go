package simapi

import (
	"context"
	"encoding/json"

	"techstore-service/internal/domain"
)

// The facade's call surface, split by concern so HTTP handlers (and their
// tests) can depend on exactly the slice they use.

// ProductAPI covers the catalog-read operations.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	ListProductsByCategories(ctx context.Context, categories []string) ([]domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]domain.Product, error)
	GetPopularProducts(ctx context.Context) ([]domain.Product, error)
	GetRelatedProducts(ctx context.Context, productID string, limit int) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListCategoryCounts(ctx context.Context) ([]domain.CategoryCount, error)
	CheckAvailability(ctx context.Context, productID string, quantity int) (*domain.Availability, error)
	GetProductReviews(ctx context.Context, productID string) ([]domain.Review, error)
}

// CartAPI covers the cart read/modify operations.
type CartAPI interface {
	GetCart(ctx context.Context) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, productID string, quantity int) (bool, error)
	UpdateCartItem(ctx context.Context, productID string, quantity int) (bool, error)
	RemoveFromCart(ctx context.Context, productID string) (bool, error)
	ClearCart(ctx context.Context) (bool, error)
}

// OrderAPI covers checkout and order history.
type OrderAPI interface {
	CreateOrder(ctx context.Context, items []domain.CartItem, customerInfo json.RawMessage) (*domain.OrderResult, error)
	GetOrderHistory(ctx context.Context) ([]domain.Order, error)
}

// WishlistAPI covers the wishlist operations.
type WishlistAPI interface {
	GetWishlist(ctx context.Context) ([]domain.Product, error)
	AddToWishlist(ctx context.Context, productID string) (bool, error)
	RemoveFromWishlist(ctx context.Context, productID string) (bool, error)
}

// SearchHistoryAPI covers the persisted recent-search list.
type SearchHistoryAPI interface {
	RecentSearches(ctx context.Context) []string
	SaveRecentSearch(ctx context.Context, query string) []string
	ClearRecentSearches(ctx context.Context)
}

// Compile-time checks that Client satisfies the full surface.
var (
	_ ProductAPI       = (*Client)(nil)
	_ CartAPI          = (*Client)(nil)
	_ OrderAPI         = (*Client)(nil)
	_ WishlistAPI      = (*Client)(nil)
	_ SearchHistoryAPI = (*Client)(nil)
)
