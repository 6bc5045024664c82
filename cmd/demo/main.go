package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rl1809/shop-checkout/internal/adapter/storage"
	"github.com/rl1809/shop-checkout/internal/core/domain"
	"github.com/rl1809/shop-checkout/internal/core/service"
)

const (
	customerName    = "John Doe"
	customerBalance = 1000
)

// main runs a fixed sequence of checkout scenarios against an in-memory
// catalog. Business output is plain text on stdout; failures are reported on
// stderr and never make the process exit non-zero.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		return
	}
	defer logger.Sync()

	ctx := context.Background()

	store := storage.NewMemoryAdapter()
	if err := seedCatalog(ctx, store); err != nil {
		logger.Error("failed to seed catalog", zap.Error(err))
		return
	}

	shipping := service.NewShippingService(service.DefaultShippingRatePerKg)
	checkout := service.NewCheckoutService(shipping, store, os.Stdout)

	customer := &domain.Customer{
		Name:    customerName,
		Balance: decimal.NewFromInt(customerBalance),
	}

	cheese, _ := store.GetProduct(ctx, "cheese")
	biscuits, _ := store.GetProduct(ctx, "biscuits")
	tv, _ := store.GetProduct(ctx, "tv")
	scratchCard, _ := store.GetProduct(ctx, "scratch-card")

	// Scenario 1: a full cart that goes through.
	fmt.Println("=== SUCCESSFUL CHECKOUT EXAMPLE ===")
	cart := domain.NewCart()
	mustAdd(logger, cart, cheese, 2)
	mustAdd(logger, cart, biscuits, 1)
	mustAdd(logger, cart, scratchCard, 1)
	if _, err := checkout.Checkout(ctx, customer, cart); err != nil {
		logger.Error("checkout failed", zap.Error(err))
	}

	fmt.Println("\n=== TESTING ERROR CASES ===")

	// Scenario 2: checking out an empty cart.
	if _, err := checkout.Checkout(ctx, customer, domain.NewCart()); err != nil {
		fmt.Println("Error:", err)
	}

	// Scenario 3: two TVs plus shipping exceed the remaining balance.
	expensiveCart := domain.NewCart()
	if err := expensiveCart.Add(tv, 2); err != nil {
		fmt.Println("Error:", err)
	} else if _, err := checkout.Checkout(ctx, customer, expensiveCart); err != nil {
		fmt.Println("Error:", err)
	}

	// Scenario 4: only 3 cheese remain after scenario 1.
	if err := domain.NewCart().Add(cheese, 10); err != nil {
		fmt.Println("Error:", err)
	}

	// Scenario 5: a product past its expiration date.
	yesterday := time.Now().AddDate(0, 0, -1)
	expiredCheese := &domain.Product{
		ID:        "expired-cheese",
		Name:      "Expired Cheese",
		UnitPrice: decimal.NewFromInt(100),
		Quantity:  5,
		ExpiresAt: &yesterday,
		Weight:    decimal.NewFromFloat(0.2),
	}
	if err := domain.NewCart().Add(expiredCheese, 1); err != nil {
		fmt.Println("Error:", err)
	}

	// Scenario 6: digital goods only, so no shipment notice and no fee.
	fmt.Println("\n=== NON-SHIPPABLE ITEMS ONLY ===")
	digitalCart := domain.NewCart()
	mustAdd(logger, digitalCart, scratchCard, 2)
	if _, err := checkout.Checkout(ctx, customer, digitalCart); err != nil {
		logger.Error("checkout failed", zap.Error(err))
	}

	orders, _ := store.ListOrders(ctx)
	logger.Info("scenario run complete", zap.Int("orders_recorded", len(orders)))
}

func seedCatalog(ctx context.Context, store *storage.MemoryAdapter) error {
	in7Days := time.Now().AddDate(0, 0, 7)
	in30Days := time.Now().AddDate(0, 0, 30)

	products := []*domain.Product{
		{
			ID:        "cheese",
			Name:      "Cheese",
			UnitPrice: decimal.NewFromInt(100),
			Quantity:  5,
			ExpiresAt: &in7Days,
			Weight:    decimal.NewFromFloat(0.2),
		},
		{
			ID:        "biscuits",
			Name:      "Biscuits",
			UnitPrice: decimal.NewFromInt(150),
			Quantity:  3,
			ExpiresAt: &in30Days,
			Weight:    decimal.NewFromFloat(0.7),
		},
		{
			ID:        "tv",
			Name:      "TV",
			UnitPrice: decimal.NewFromInt(500),
			Quantity:  2,
			Weight:    decimal.NewFromInt(15),
		},
		{
			ID:        "scratch-card",
			Name:      "Mobile Scratch Card",
			UnitPrice: decimal.NewFromInt(50),
			Quantity:  10,
		},
	}

	for _, p := range products {
		if err := store.AddProduct(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// mustAdd reports an unexpected add failure in a scenario that should not
// fail, then keeps going so the remaining scenarios still run.
func mustAdd(logger *zap.Logger, cart *domain.Cart, product *domain.Product, quantity int) {
	if err := cart.Add(product, quantity); err != nil {
		logger.Error("cart add failed",
			zap.String("product", product.Name),
			zap.Int("quantity", quantity),
			zap.Error(err),
		)
	}
}
