package domain

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyCart is returned when checkout is attempted on a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidQuantity is returned when a cart add requests a non-positive quantity.
	ErrInvalidQuantity = errors.New("requested quantity must be positive")
)

// ExpiredProductError rejects a cart add for a product past its expiration date.
type ExpiredProductError struct {
	ProductName string
}

func (e *ExpiredProductError) Error() string {
	return fmt.Sprintf("Product %s has expired", e.ProductName)
}

// OutOfStockError rejects a cart add that exceeds the on-hand quantity. It
// carries the quantity still available so callers can report it.
type OutOfStockError struct {
	ProductName string
	Available   int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("Product %s is out of stock. Available: %d", e.ProductName, e.Available)
}

// InsufficientBalanceError rejects a checkout the customer cannot pay for.
type InsufficientBalanceError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("Insufficient balance. Required: %s, Available: %s", e.Required, e.Available)
}
