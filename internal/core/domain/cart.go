package domain

import "github.com/shopspring/decimal"

// CartItem pairs a product with the quantity reserved for it.
type CartItem struct {
	Product  *Product
	Quantity int
}

// LineTotal is the unit price multiplied by the reserved quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShippableUnit is one physical item contributing weight to a shipment,
// derived per quantity from a cart line. It is recomputed on demand and
// never stored.
type ShippableUnit struct {
	Name   string
	Weight decimal.Decimal
}

// Cart is an ordered collection of cart items. Adding an item reserves
// stock immediately, so a failed checkout leaves the reservation in place.
// Carts share Product instances with the inventory store and assume a single
// sequential actor; they are not safe for concurrent use.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add reserves quantity units of the product and appends a cart line.
// It fails with ErrInvalidQuantity for a non-positive quantity, with
// *ExpiredProductError for an expired product and with *OutOfStockError when
// the request exceeds the on-hand quantity. On success the product's on-hand
// quantity is decremented right away.
func (c *Cart) Add(product *Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !product.IsAvailable(quantity) {
		if product.IsExpired() {
			return &ExpiredProductError{ProductName: product.Name}
		}
		return &OutOfStockError{ProductName: product.Name, Available: product.Quantity}
	}

	c.items = append(c.items, CartItem{Product: product, Quantity: quantity})
	product.DecrementQuantity(quantity)
	return nil
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	return c.items
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal sums all line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

// ShippableUnits expands every shippable cart line into one entry per
// physical unit, following cart insertion order.
func (c *Cart) ShippableUnits() []ShippableUnit {
	var units []ShippableUnit
	for _, item := range c.items {
		if !item.Product.Shippable() {
			continue
		}
		for i := 0; i < item.Quantity; i++ {
			units = append(units, ShippableUnit{
				Name:   item.Product.Name,
				Weight: item.Product.Weight,
			})
		}
	}
	return units
}
