package api

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"techstore-service/internal/domain"
)

// Mock implementations of the simapi interfaces, one per facade concern.

type MockProductAPI struct {
	mock.Mock
}

func (m *MockProductAPI) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	var products []domain.Product
	if arg0 := args.Get(0); arg0 != nil {
		products = arg0.([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductAPI) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	var products []domain.Product
	if arg0 := args.Get(0); arg0 != nil {
		products = arg0.([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductAPI) ListProductsByCategories(ctx context.Context, categories []string) ([]domain.Product, error) {
	args := m.Called(ctx, categories)
	var products []domain.Product
	if arg0 := args.Get(0); arg0 != nil {
		products = arg0.([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductAPI) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	args := m.Called(ctx, query)
	var products []domain.Product
	if arg0 := args.Get(0); arg0 != nil {
		products = arg0.([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductAPI) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductAPI) GetFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	var products []domain.Product
	if arg0 := args.Get(0); arg0 != nil {
		products = arg0.([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductAPI) GetPopularProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	var products []domain.Product
	if arg0 := args.Get(0); arg0 != nil {
		products = arg0.([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductAPI) GetRelatedProducts(ctx context.Context, productID string, limit int) ([]domain.Product, error) {
	args := m.Called(ctx, productID, limit)
	var products []domain.Product
	if arg0 := args.Get(0); arg0 != nil {
		products = arg0.([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductAPI) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	var categories []string
	if arg0 := args.Get(0); arg0 != nil {
		categories = arg0.([]string)
	}
	return categories, args.Error(1)
}

func (m *MockProductAPI) ListCategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	args := m.Called(ctx)
	var counts []domain.CategoryCount
	if arg0 := args.Get(0); arg0 != nil {
		counts = arg0.([]domain.CategoryCount)
	}
	return counts, args.Error(1)
}

func (m *MockProductAPI) CheckAvailability(ctx context.Context, productID string, quantity int) (*domain.Availability, error) {
	args := m.Called(ctx, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Availability), args.Error(1)
}

func (m *MockProductAPI) GetProductReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	args := m.Called(ctx, productID)
	var reviews []domain.Review
	if arg0 := args.Get(0); arg0 != nil {
		reviews = arg0.([]domain.Review)
	}
	return reviews, args.Error(1)
}

type MockCartAPI struct {
	mock.Mock
}

func (m *MockCartAPI) GetCart(ctx context.Context) ([]domain.CartItem, error) {
	args := m.Called(ctx)
	var items []domain.CartItem
	if arg0 := args.Get(0); arg0 != nil {
		items = arg0.([]domain.CartItem)
	}
	return items, args.Error(1)
}

func (m *MockCartAPI) AddToCart(ctx context.Context, productID string, quantity int) (bool, error) {
	args := m.Called(ctx, productID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartAPI) UpdateCartItem(ctx context.Context, productID string, quantity int) (bool, error) {
	args := m.Called(ctx, productID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartAPI) RemoveFromCart(ctx context.Context, productID string) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartAPI) ClearCart(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

type MockOrderAPI struct {
	mock.Mock
}

func (m *MockOrderAPI) CreateOrder(ctx context.Context, items []domain.CartItem, customerInfo json.RawMessage) (*domain.OrderResult, error) {
	args := m.Called(ctx, items, customerInfo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderResult), args.Error(1)
}

func (m *MockOrderAPI) GetOrderHistory(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	var orders []domain.Order
	if arg0 := args.Get(0); arg0 != nil {
		orders = arg0.([]domain.Order)
	}
	return orders, args.Error(1)
}

type MockWishlistAPI struct {
	mock.Mock
}

func (m *MockWishlistAPI) GetWishlist(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	var products []domain.Product
	if arg0 := args.Get(0); arg0 != nil {
		products = arg0.([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockWishlistAPI) AddToWishlist(ctx context.Context, productID string) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistAPI) RemoveFromWishlist(ctx context.Context, productID string) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

type MockSearchHistoryAPI struct {
	mock.Mock
}

func (m *MockSearchHistoryAPI) RecentSearches(ctx context.Context) []string {
	args := m.Called(ctx)
	var searches []string
	if arg0 := args.Get(0); arg0 != nil {
		searches = arg0.([]string)
	}
	return searches
}

func (m *MockSearchHistoryAPI) SaveRecentSearch(ctx context.Context, query string) []string {
	args := m.Called(ctx, query)
	var searches []string
	if arg0 := args.Get(0); arg0 != nil {
		searches = arg0.([]string)
	}
	return searches
}

func (m *MockSearchHistoryAPI) ClearRecentSearches(ctx context.Context) {
	m.Called(ctx)
}
