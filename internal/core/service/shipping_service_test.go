package service

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rl1809/shop-checkout/internal/core/domain"
)

func units(weights ...float64) []domain.ShippableUnit {
	var out []domain.ShippableUnit
	for _, w := range weights {
		out = append(out, domain.ShippableUnit{Name: "Cheese", Weight: decimal.NewFromFloat(w)})
	}
	return out
}

func TestCalculateFee(t *testing.T) {
	svc := NewShippingService(DefaultShippingRatePerKg)

	tests := []struct {
		name  string
		units []domain.ShippableUnit
		want  int64
	}{
		{"no units", nil, 0},
		{"fraction rounds up to a full kg", units(0.2, 0.2), 10},
		{"exactly one kg", units(0.5, 0.5), 10},
		{"just over one kg", units(1.01), 20},
		{"heavy package", units(15, 15), 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := svc.CalculateFee(tt.units)
			assert.True(t, fee.Equal(decimal.NewFromInt(tt.want)),
				"fee = %s, want %d", fee, tt.want)
		})
	}
}

func TestWritePackingNotice(t *testing.T) {
	svc := NewShippingService(DefaultShippingRatePerKg)

	shipment := []domain.ShippableUnit{
		{Name: "Cheese", Weight: decimal.NewFromFloat(0.2)},
		{Name: "Cheese", Weight: decimal.NewFromFloat(0.2)},
		{Name: "Biscuits", Weight: decimal.NewFromFloat(0.7)},
	}

	var buf bytes.Buffer
	svc.WritePackingNotice(&buf, shipment)

	want := "** Shipment notice **\n" +
		"2x Cheese 400g\n" +
		"1x Biscuits 700g\n" +
		"Total package weight 1.1kg\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePackingNotice_Empty(t *testing.T) {
	svc := NewShippingService(DefaultShippingRatePerKg)

	var buf bytes.Buffer
	svc.WritePackingNotice(&buf, nil)

	assert.Zero(t, buf.Len())
}
