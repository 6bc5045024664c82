package port

import (
	"context"

	"github.com/rl1809/shop-checkout/internal/core/domain"
)

type InventoryRepository interface {
	// AddProduct registers a product in the shared catalog
	AddProduct(ctx context.Context, product *domain.Product) error

	// GetProduct returns the shared product instance by ID; carts mutate it
	// directly, single sequential actor assumed
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// ListProducts returns all products in registration order
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}
