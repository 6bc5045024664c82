package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/shop-checkout/internal/core/domain"
)

func TestMemoryAdapter_Products(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryAdapter()

	cheese := &domain.Product{ID: "cheese", Name: "Cheese", Quantity: 5}
	tv := &domain.Product{ID: "tv", Name: "TV", Quantity: 2}

	require.NoError(t, store.AddProduct(ctx, cheese))
	require.NoError(t, store.AddProduct(ctx, tv))

	// Duplicate registration is rejected.
	err := store.AddProduct(ctx, &domain.Product{ID: "cheese"})
	assert.ErrorIs(t, err, ErrProductExists)

	got, err := store.GetProduct(ctx, "cheese")
	require.NoError(t, err)
	// The store hands out the shared instance, not a copy.
	assert.Same(t, cheese, got)

	_, err = store.GetProduct(ctx, "bread")
	assert.ErrorIs(t, err, ErrProductNotFound)

	products, err := store.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "cheese", products[0].ID)
	assert.Equal(t, "tv", products[1].ID)
}

func TestMemoryAdapter_SharedMutation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryAdapter()

	require.NoError(t, store.AddProduct(ctx, &domain.Product{ID: "cheese", Name: "Cheese", Quantity: 5}))

	first, err := store.GetProduct(ctx, "cheese")
	require.NoError(t, err)
	first.DecrementQuantity(3)

	second, err := store.GetProduct(ctx, "cheese")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Quantity)
}

func TestMemoryAdapter_Orders(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryAdapter()

	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	first := domain.Order{
		ID:        "order-1",
		Total:     decimal.NewFromInt(210),
		Status:    domain.OrderStatusConfirmed,
		CreatedAt: time.Now(),
	}
	second := domain.Order{ID: "order-2", Status: domain.OrderStatusConfirmed}

	require.NoError(t, store.CreateOrder(ctx, first))
	require.NoError(t, store.CreateOrder(ctx, second))

	orders, err = store.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "order-1", orders[0].ID)
	assert.Equal(t, "order-2", orders[1].ID)
}
