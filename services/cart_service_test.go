package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-store/models"
	"school-store/repositories"
)

func newCartService() *CartService {
	return NewCartService(repositories.NewMemoryCartStore(), checkoutCatalog())
}

func TestCartAddMergesSameLine(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	cart, err := svc.Add(ctx, 7, 1, "")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Qty)

	cart, err = svc.Add(ctx, 7, 1, "")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Qty)
}

func TestCartAddDistinctSizesStaySeparate(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, 2, "S (1-3)")
	require.NoError(t, err)
	cart, err := svc.Add(ctx, 7, 2, "L (7-10)")
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.InDelta(t, 80.00, cart.Items[0].Price, 0.001)
	assert.InDelta(t, 90.00, cart.Items[1].Price, 0.001)
}

func TestCartAddPricesFromCatalog(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	// 2x base-priced chiki plus one L socks: 9+9+90.
	_, err := svc.Add(ctx, 7, 1, "")
	require.NoError(t, err)
	_, err = svc.Add(ctx, 7, 1, "")
	require.NoError(t, err)
	cart, err := svc.Add(ctx, 7, 2, "L (7-10)")
	require.NoError(t, err)

	assert.InDelta(t, 108.00, cart.Subtotal, 0.001)
	assert.Equal(t, 3, cart.Count)
}

func TestCartAddUnknownProductOrVariant(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, 99, "")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.Add(ctx, 7, 2, "XXL")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	// A sized product cannot enter the cart without a size.
	_, err = svc.Add(ctx, 7, 2, "")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestCartSetQuantity(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, 1, "")
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, 7, 1, "", 5)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Qty)
	assert.InDelta(t, 45.00, cart.Subtotal, 0.001)

	// Anything below one removes the line.
	cart, err = svc.SetQuantity(ctx, 7, 1, "", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Count)
}

func TestCartSetQuantityMissingLineIsNoop(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, 1, "")
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, 7, 2, "S (1-3)", 4)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Qty)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, 1, "")
	require.NoError(t, err)

	other, err := svc.Get(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestCartClear(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, 1, "")
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, 7))

	cart, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, models.Cart{Items: []models.CartLine{}}, cart)
}
