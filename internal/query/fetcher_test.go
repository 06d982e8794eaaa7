package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techstore-service/internal/catalog"
	"techstore-service/internal/simapi"
	"techstore-service/internal/storage"
)

// switchableFailure lets a test flip the facade between always-succeed
// and always-fail between calls.
type switchableFailure struct {
	fail bool
}

func (s *switchableFailure) draw() float64 {
	if s.fail {
		return 0
	}
	return 1
}

func newTestFacade(t *testing.T) (*simapi.Client, *switchableFailure) {
	t.Helper()
	failure := &switchableFailure{}
	client := simapi.New(catalog.New(), storage.NewMemoryStore(), simapi.Options{
		FailureSource: failure.draw,
	})
	return client, failure
}

func TestProductsFetcher_LoadsData(t *testing.T) {
	client, _ := newTestFacade(t)
	fetcher := NewProductsFetcher(client)

	assert.Empty(t, fetcher.Products())
	assert.False(t, fetcher.Loading())

	fetcher.Fetch(context.Background())

	assert.Len(t, fetcher.Products(), 20)
	assert.False(t, fetcher.Loading())
	assert.Empty(t, fetcher.Err())
}

func TestProductsFetcher_KeepsStaleDataThroughFailedRefetch(t *testing.T) {
	client, failure := newTestFacade(t)
	fetcher := NewProductsFetcher(client)
	ctx := context.Background()

	fetcher.Fetch(ctx)
	require.Len(t, fetcher.Products(), 20)

	failure.fail = true
	fetcher.Fetch(ctx)

	assert.Equal(t, "Failed to fetch products", fetcher.Err())
	assert.Len(t, fetcher.Products(), 20, "previous data stays visible during a failed refetch")

	// A later successful refetch clears the error again.
	failure.fail = false
	fetcher.Fetch(ctx)
	assert.Empty(t, fetcher.Err())
}

func TestProductsFetcher_ErrorClearedAtStartOfAttempt(t *testing.T) {
	client, failure := newTestFacade(t)
	fetcher := NewProductsFetcher(client)
	ctx := context.Background()

	failure.fail = true
	fetcher.Fetch(ctx)
	require.NotEmpty(t, fetcher.Err())

	failure.fail = false
	fetcher.Fetch(ctx)
	assert.Empty(t, fetcher.Err())
	assert.Len(t, fetcher.Products(), 20)
}
