package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rl1809/shop-checkout/internal/core/domain"
	"github.com/rl1809/shop-checkout/internal/port"
)

// CheckoutService runs the single-pass checkout pipeline: validate the cart,
// price it, check affordability, print the shipment notice and receipt, take
// payment and record the order. A failing gate returns the error with no
// balance change and no receipt; stock already reserved by the cart stays
// reserved.
type CheckoutService struct {
	shipping *ShippingService
	orders   port.OrderRepository
	out      io.Writer
}

func NewCheckoutService(shipping *ShippingService, orders port.OrderRepository, out io.Writer) *CheckoutService {
	return &CheckoutService{
		shipping: shipping,
		orders:   orders,
		out:      out,
	}
}

// Checkout settles the cart against the customer's balance and returns the
// recorded order. It fails with domain.ErrEmptyCart for an empty cart and
// with *domain.InsufficientBalanceError when subtotal plus shipping exceeds
// the balance.
func (s *CheckoutService) Checkout(ctx context.Context, customer *domain.Customer, cart *domain.Cart) (*domain.Order, error) {
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	subtotal := cart.Subtotal()
	units := cart.ShippableUnits()
	shippingFee := s.shipping.CalculateFee(units)
	total := subtotal.Add(shippingFee)

	if !customer.CanAfford(total) {
		return nil, &domain.InsufficientBalanceError{
			Required:  total,
			Available: customer.Balance,
		}
	}

	s.shipping.WritePackingNotice(s.out, units)
	s.writeReceipt(cart, subtotal, shippingFee, total)

	customer.DeductBalance(total)
	fmt.Fprintf(s.out, "Customer balance after payment: %s\n", customer.Balance)

	order := buildOrder(customer, cart, subtotal, shippingFee, total)
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "record order")
	}

	return &order, nil
}

func (s *CheckoutService) writeReceipt(cart *domain.Cart, subtotal, shippingFee, total decimal.Decimal) {
	fmt.Fprintln(s.out, "** Checkout receipt **")
	for _, item := range cart.Items() {
		fmt.Fprintf(s.out, "%dx %s %d\n", item.Quantity, item.Product.Name, item.LineTotal().IntPart())
	}
	fmt.Fprintln(s.out, "----------------------")
	fmt.Fprintf(s.out, "Subtotal %d\n", subtotal.IntPart())
	fmt.Fprintf(s.out, "Shipping %d\n", shippingFee.IntPart())
	fmt.Fprintf(s.out, "Amount %d\n", total.IntPart())
}

func buildOrder(customer *domain.Customer, cart *domain.Cart, subtotal, shippingFee, total decimal.Decimal) domain.Order {
	items := cart.Items()
	lines := make([]domain.OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.OrderLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}

	return domain.Order{
		ID:           uuid.New().String(),
		CustomerName: customer.Name,
		Lines:        lines,
		Subtotal:     subtotal,
		ShippingFee:  shippingFee,
		Total:        total,
		Status:       domain.OrderStatusConfirmed,
		CreatedAt:    time.Now(),
	}
}
