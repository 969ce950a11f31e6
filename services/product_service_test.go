package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-store/models"
)

func TestProductCreateDefaultsCollections(t *testing.T) {
	svc := NewProductService(newFakeProductStore())

	product, err := svc.Create(context.Background(), models.CreateProductRequest{
		Name:        "School Bag",
		BasePrice:   599.00,
		Category:    "Dress",
		Description: "Durable School Bag with multiple compartments.",
	})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.NotNil(t, product.Nutrition)
	assert.NotNil(t, product.Variants)
}

func TestProductGetNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductStore())

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductUpdatePartial(t *testing.T) {
	store := checkoutCatalog()
	svc := NewProductService(store)

	updated, err := svc.Update(context.Background(), 1, models.UpdateProductRequest{
		BasePrice: 10.00,
	})
	require.NoError(t, err)
	assert.InDelta(t, 10.00, updated.BasePrice, 0.001)
	// Untouched fields survive.
	assert.Equal(t, "Peanut Chiki", updated.Name)
	assert.Equal(t, "chiki", updated.Category)
}

func TestProductDelete(t *testing.T) {
	store := checkoutCatalog()
	svc := NewProductService(store)

	require.NoError(t, svc.Delete(context.Background(), 1))
	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
