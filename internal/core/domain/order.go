package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderLine is a priced snapshot of one cart line at checkout time.
type OrderLine struct {
	ProductID string
	Name      string
	Quantity  int
	LineTotal decimal.Decimal
}

// Order records a completed checkout: the priced lines, the fee breakdown
// and the amount the customer actually paid.
type Order struct {
	ID           string
	CustomerName string
	Lines        []OrderLine
	Subtotal     decimal.Decimal
	ShippingFee  decimal.Decimal
	Total        decimal.Decimal
	Status       OrderStatus
	CreatedAt    time.Time
}
