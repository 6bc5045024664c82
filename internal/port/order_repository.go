package port

import (
	"context"

	"github.com/rl1809/shop-checkout/internal/core/domain"
)

type OrderRepository interface {
	// CreateOrder stores the record of a completed checkout
	CreateOrder(ctx context.Context, order domain.Order) error

	// ListOrders returns stored orders in creation order
	ListOrders(ctx context.Context) ([]domain.Order, error)
}
