package simapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentSearches_CapAndOrder(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	for _, q := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		client.SaveRecentSearch(ctx, q)
	}

	searches := client.RecentSearches(ctx)
	assert.Equal(t, []string{"g", "f", "e", "d", "c"}, searches, "most recent first, capped at 5")
}

func TestRecentSearches_DuplicateMovesToFront(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	client.SaveRecentSearch(ctx, "laptop")
	client.SaveRecentSearch(ctx, "phone")
	client.SaveRecentSearch(ctx, "laptop")

	searches := client.RecentSearches(ctx)
	assert.Equal(t, []string{"laptop", "phone"}, searches, "re-searching moves the entry, never duplicates it")
}

func TestRecentSearches_BlankQueriesIgnored(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	client.SaveRecentSearch(ctx, "real")
	client.SaveRecentSearch(ctx, "")
	client.SaveRecentSearch(ctx, "   ")

	assert.Equal(t, []string{"real"}, client.RecentSearches(ctx))
}

func TestRecentSearches_PersistRoundTrip(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	client.SaveRecentSearch(ctx, "headphones")
	client.SaveRecentSearch(ctx, "tablet")

	// A second facade over the same store sees the same history.
	other := New(client.Catalog(), store, Options{DisableFailures: true})
	assert.Equal(t, []string{"tablet", "headphones"}, other.RecentSearches(ctx))
}

func TestClearRecentSearches(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	client.SaveRecentSearch(ctx, "x")
	client.ClearRecentSearches(ctx)

	assert.Empty(t, client.RecentSearches(ctx))
	assert.Equal(t, 0, store.Len(), "the key is deleted, not emptied")
}

func TestRecentSearches_CorruptDataReadsAsEmpty(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyRecentSearches, []byte("oops")))
	assert.Empty(t, client.RecentSearches(ctx))
}
