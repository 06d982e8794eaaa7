package simapi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techstore-service/internal/domain"
)

func TestAddToCart_ThenGetCart(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	ok, err := client.AddToCart(ctx, "1", 3)
	require.NoError(t, err)
	require.True(t, ok)

	cart, err := client.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "1", cart[0].Product.ID)
	assert.Equal(t, 3, cart[0].Quantity)
	// The line embeds a full product snapshot, not just the id.
	assert.Equal(t, "iPhone 15 Pro", cart[0].Product.Name)
	assert.Equal(t, 999.0, cart[0].Product.Price)
}

func TestAddToCart_MergesQuantityIntoSingleLine(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	ok, err := client.AddToCart(ctx, "1", 2)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = client.AddToCart(ctx, "1", 5)
	require.NoError(t, err)
	require.True(t, ok)

	cart, err := client.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1, "merge must never produce two lines for one product")
	assert.Equal(t, 7, cart[0].Quantity)
}

func TestAddToCart_UnknownProductFailsWithoutError(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	ok, err := client.AddToCart(ctx, "no-such-id", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	cart, err := client.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestUpdateCartItem_ZeroRemovesIdempotently(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, err := client.AddToCart(ctx, "1", 2)
	require.NoError(t, err)
	_, err = client.AddToCart(ctx, "2", 1)
	require.NoError(t, err)

	ok, err := client.UpdateCartItem(ctx, "1", 0)
	require.NoError(t, err)
	require.True(t, ok)

	cart, err := client.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "2", cart[0].Product.ID)

	// Removing again is a no-op success.
	ok, err = client.UpdateCartItem(ctx, "1", 0)
	require.NoError(t, err)
	require.True(t, ok)
	cart, err = client.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestUpdateCartItem_OverwritesQuantity(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, err := client.AddToCart(ctx, "1", 2)
	require.NoError(t, err)

	ok, err := client.UpdateCartItem(ctx, "1", 9)
	require.NoError(t, err)
	require.True(t, ok)

	cart, err := client.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 9, cart[0].Quantity, "update overwrites, it does not merge")
}

func TestUpdateCartItem_UnknownIDNeverCreates(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	ok, err := client.UpdateCartItem(ctx, "nonexistent", 5)
	require.NoError(t, err)
	assert.True(t, ok, "unknown id is a no-op that still reports success")

	cart, err := client.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestRemoveFromCart(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, err := client.AddToCart(ctx, "1", 1)
	require.NoError(t, err)

	ok, err := client.RemoveFromCart(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)

	// Absent id is a no-op success.
	ok, err = client.RemoveFromCart(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)

	cart, err := client.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestClearCart_AlwaysLeavesEmptyCart(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	_, err := client.AddToCart(ctx, "1", 2)
	require.NoError(t, err)
	_, err = client.AddToCart(ctx, "3", 1)
	require.NoError(t, err)

	ok, err := client.ClearCart(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	cart, err := client.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)

	// The key is deleted outright, not overwritten with [].
	assert.Equal(t, 0, store.Len())

	// Clearing an already empty cart is still a success.
	ok, err = client.ClearCart(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCart_SnapshotSurvivesPersistenceRoundTrip(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	_, err := client.AddToCart(ctx, "2", 4)
	require.NoError(t, err)

	// Decode the persisted document directly and compare it deep-equal to
	// what the facade reports.
	raw, err := store.Get(ctx, KeyCart)
	require.NoError(t, err)
	var persisted []domain.CartItem
	require.NoError(t, json.Unmarshal(raw, &persisted))

	cart, err := client.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, cart, persisted)
	assert.Equal(t, client.Catalog().ProductByID("2").Features, persisted[0].Product.Features)
}
