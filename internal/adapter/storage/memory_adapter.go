package storage

import (
	"context"
	"sync"

	"github.com/go-faster/errors"

	"github.com/rl1809/shop-checkout/internal/core/domain"
)

var (
	ErrProductExists   = errors.New("product already registered")
	ErrProductNotFound = errors.New("product not found")
)

// MemoryAdapter keeps the catalog and the order log in process memory. It
// hands out shared *domain.Product instances, so quantity changes made by a
// cart are visible to every other holder of the same product.
type MemoryAdapter struct {
	mu       sync.Mutex
	products map[string]*domain.Product
	ids      []string
	orders   []domain.Order
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		products: make(map[string]*domain.Product),
	}
}

func (m *MemoryAdapter) AddProduct(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[product.ID]; ok {
		return errors.Wrap(ErrProductExists, product.ID)
	}
	m.products[product.ID] = product
	m.ids = append(m.ids, product.ID)
	return nil
}

func (m *MemoryAdapter) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[id]
	if !ok {
		return nil, errors.Wrap(ErrProductNotFound, id)
	}
	return product, nil
}

func (m *MemoryAdapter) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	products := make([]*domain.Product, 0, len(m.ids))
	for _, id := range m.ids {
		products = append(products, m.products[id])
	}
	return products, nil
}

func (m *MemoryAdapter) CreateOrder(ctx context.Context, order domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders = append(m.orders, order)
	return nil
}

func (m *MemoryAdapter) ListOrders(ctx context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orders := make([]domain.Order, len(m.orders))
	copy(orders, m.orders)
	return orders, nil
}
