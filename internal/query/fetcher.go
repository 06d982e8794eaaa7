// Package query holds the stateful wrappers the view layer drives: each
// one calls the simulated backend, tracks data/loading/error state, and
// keeps the last successful result visible through a failed refetch.
//
// Overlapping calls on one wrapper are fenced with a request generation:
// when a second request starts before the first resolves, the first's
// response is discarded instead of racing for the displayed result.
package query

import (
	"context"
	"sync"

	"techstore-service/internal/domain"
	"techstore-service/internal/simapi"
)

// ProductsFetcher loads the full product list and caches it alongside
// loading/error state. Safe for concurrent use.
type ProductsFetcher struct {
	api simapi.ProductAPI

	mu       sync.Mutex
	gen      uint64
	products []domain.Product
	loading  bool
	errMsg   string
}

// NewProductsFetcher creates a fetcher over the given facade slice.
func NewProductsFetcher(api simapi.ProductAPI) *ProductsFetcher {
	return &ProductsFetcher{api: api}
}

// Fetch loads the product list, blocking until the call resolves. Error
// state is cleared at the start of each attempt; on failure the previous
// data stays visible and only the error message changes. A fetch that was
// superseded by a newer one leaves all state to the newer request.
func (f *ProductsFetcher) Fetch(ctx context.Context) {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.loading = true
	f.errMsg = ""
	f.mu.Unlock()

	products, err := f.api.ListProducts(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		return // superseded; a newer request owns the state now
	}
	f.loading = false
	if err != nil {
		f.errMsg = err.Error()
		return
	}
	f.products = products
}

// Products returns the last successfully loaded list.
func (f *ProductsFetcher) Products() []domain.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Product, len(f.products))
	copy(out, f.products)
	return out
}

// Loading reports whether a request is outstanding.
func (f *ProductsFetcher) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Err returns the last failure message, or "" after a successful attempt.
func (f *ProductsFetcher) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}
