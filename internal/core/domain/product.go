package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item with stock on hand. Expiry and shipping weight
// are optional: a nil ExpiresAt means the product never expires, a zero
// Weight means the product needs no physical shipment.
//
// Product instances are shared between the inventory store and any cart that
// references them; a single sequential actor is assumed.
type Product struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	ExpiresAt *time.Time
	Weight    decimal.Decimal
}

// IsExpired reports whether today is strictly after the expiration date.
// Comparison is at date granularity, so a product expiring today is still
// sellable.
func (p *Product) IsExpired() bool {
	if p.ExpiresAt == nil {
		return false
	}
	return startOfDay(time.Now()).After(startOfDay(*p.ExpiresAt))
}

// IsAvailable reports whether the requested quantity can be reserved now.
func (p *Product) IsAvailable(quantity int) bool {
	return !p.IsExpired() && p.Quantity >= quantity
}

// DecrementQuantity reduces the on-hand count. The caller must have checked
// availability first; there is no guard against going negative.
func (p *Product) DecrementQuantity(n int) {
	p.Quantity -= n
}

// Shippable reports whether the product contributes weight to a shipment.
func (p *Product) Shippable() bool {
	return p.Weight.IsPositive()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
