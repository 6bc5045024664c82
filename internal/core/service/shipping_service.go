package service

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/rl1809/shop-checkout/internal/core/domain"
)

// DefaultShippingRatePerKg is the flat rate charged per started kilogram.
var DefaultShippingRatePerKg = decimal.NewFromInt(10)

// ShippingService prices shipments and renders packing notices. It is
// stateless apart from the configured rate.
type ShippingService struct {
	ratePerKg decimal.Decimal
}

func NewShippingService(ratePerKg decimal.Decimal) *ShippingService {
	return &ShippingService{ratePerKg: ratePerKg}
}

// CalculateFee returns 0 for an empty shipment. Otherwise the total weight is
// rounded up to the next whole kilogram and multiplied by the per-kg rate, so
// even a 0.1 kg package pays for a full kilogram.
func (s *ShippingService) CalculateFee(units []domain.ShippableUnit) decimal.Decimal {
	if len(units) == 0 {
		return decimal.Zero
	}

	totalWeight := decimal.Zero
	for _, unit := range units {
		totalWeight = totalWeight.Add(unit.Weight)
	}
	return totalWeight.Ceil().Mul(s.ratePerKg)
}

// WritePackingNotice prints the shipment notice for the given units, grouped
// by product name in first-seen order so the output is deterministic. Nothing
// is written for an empty shipment.
func (s *ShippingService) WritePackingNotice(w io.Writer, units []domain.ShippableUnit) {
	if len(units) == 0 {
		return
	}

	fmt.Fprintln(w, "** Shipment notice **")

	counts := make(map[string]int)
	weights := make(map[string]decimal.Decimal)
	var names []string
	for _, unit := range units {
		if _, seen := counts[unit.Name]; !seen {
			names = append(names, unit.Name)
			weights[unit.Name] = unit.Weight
		}
		counts[unit.Name]++
	}

	totalWeight := decimal.Zero
	for _, name := range names {
		count := counts[name]
		groupWeight := weights[name].Mul(decimal.NewFromInt(int64(count)))
		totalWeight = totalWeight.Add(groupWeight)

		grams := groupWeight.Mul(decimal.NewFromInt(1000))
		fmt.Fprintf(w, "%dx %s %dg\n", count, name, grams.IntPart())
	}

	fmt.Fprintf(w, "Total package weight %skg\n", totalWeight.StringFixed(1))
}
