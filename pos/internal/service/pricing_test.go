package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name           string
		lines          []CartLine
		wantedSubtotal string
		wantedTax      string
		wantedTotal    string
	}{
		{
			name: "two units of one product",
			lines: []CartLine{
				{ProductId: 1, UnitPrice: decimal.RequireFromString("5.99"), Quantity: 2},
			},
			wantedSubtotal: "11.98",
			wantedTax:      "2.1564",
			wantedTotal:    "14.1364",
		},
		{
			name: "multiple lines",
			lines: []CartLine{
				{ProductId: 1, UnitPrice: decimal.RequireFromString("5.99"), Quantity: 2},
				{ProductId: 2, UnitPrice: decimal.RequireFromString("8.50"), Quantity: 1},
			},
			wantedSubtotal: "20.48",
			wantedTax:      "3.6864",
			wantedTotal:    "24.1664",
		},
		{
			name: "free item contributes nothing",
			lines: []CartLine{
				{ProductId: 1, UnitPrice: decimal.Zero, Quantity: 3},
			},
			wantedSubtotal: "0",
			wantedTax:      "0",
			wantedTotal:    "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(tt.lines)

			assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString(tt.wantedSubtotal)),
				"subtotal=%s", totals.Subtotal)
			assert.True(t, totals.Tax.Equal(decimal.RequireFromString(tt.wantedTax)),
				"tax=%s", totals.Tax)
			assert.True(t, totals.Total.Equal(decimal.RequireFromString(tt.wantedTotal)),
				"total=%s", totals.Total)
		})
	}
}

func TestComputeTotalsIsPure(t *testing.T) {
	lines := []CartLine{
		{ProductId: 1, UnitPrice: decimal.RequireFromString("5.99"), Quantity: 2},
	}

	first := ComputeTotals(lines)
	second := ComputeTotals(lines)

	assert.True(t, first.Total.Equal(second.Total))

	lines[0].Quantity = 3
	third := ComputeTotals(lines)
	assert.True(t, third.Subtotal.Equal(decimal.RequireFromString("17.97")))
}
