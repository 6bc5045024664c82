package domain

import "github.com/shopspring/decimal"

// Customer holds a prepaid balance that checkout draws from.
type Customer struct {
	Name    string
	Balance decimal.Decimal
}

// CanAfford reports whether the balance covers the amount.
func (c *Customer) CanAfford(amount decimal.Decimal) bool {
	return c.Balance.GreaterThanOrEqual(amount)
}

// DeductBalance subtracts the amount if the customer can afford it. The
// balance never goes negative; an unaffordable deduction is a no-op.
func (c *Customer) DeductBalance(amount decimal.Decimal) {
	if c.CanAfford(amount) {
		c.Balance = c.Balance.Sub(amount)
	}
}
