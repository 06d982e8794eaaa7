package simapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlist_AddAndRead(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	for _, id := range []string{"7", "2", "15"} {
		ok, err := client.AddToWishlist(ctx, id)
		require.NoError(t, err)
		require.True(t, ok)
	}

	products, err := client.GetWishlist(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	// Reads dereference against the catalog in catalog order, not
	// insertion order.
	assert.Equal(t, "2", products[0].ID)
	assert.Equal(t, "7", products[1].ID)
	assert.Equal(t, "15", products[2].ID)
}

func TestWishlist_AddIsIdempotent(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := client.AddToWishlist(ctx, "4")
		require.NoError(t, err)
		require.True(t, ok)
	}

	products, err := client.GetWishlist(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestWishlist_UnknownIDSilentlyDisappearsOnRead(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	// An id with no catalog entry is stored but never surfaces.
	require.NoError(t, store.Set(ctx, KeyWishlist, []byte(`["1","ghost-id"]`)))

	products, err := client.GetWishlist(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)
}

func TestWishlist_Remove(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, err := client.AddToWishlist(ctx, "1")
	require.NoError(t, err)
	_, err = client.AddToWishlist(ctx, "2")
	require.NoError(t, err)

	ok, err := client.RemoveFromWishlist(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)

	// Absent id is a no-op success.
	ok, err = client.RemoveFromWishlist(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)

	products, err := client.GetWishlist(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "2", products[0].ID)
}

func TestWishlist_FailureInjectionAppliesLikeCart(t *testing.T) {
	// Wishlist operations carry the same rates as cart operations, so the
	// always-fail source must trip these too.
	client := newFailingClient(t)
	ctx := context.Background()

	_, err := client.GetWishlist(ctx)
	assert.EqualError(t, err, "Failed to load wishlist")

	_, err = client.AddToWishlist(ctx, "1")
	assert.EqualError(t, err, "Failed to add item to wishlist")

	_, err = client.RemoveFromWishlist(ctx, "1")
	assert.EqualError(t, err, "Failed to remove item from wishlist")
}
