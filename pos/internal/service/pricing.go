package service

import (
	"github.com/shopspring/decimal"
)

// TaxRate is the IGV applied on the subtotal. The total shown by the
// terminal is informational; the backend recomputes authoritative pricing
// from raw quantities on submission.
var TaxRate = decimal.New(18, -2)

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives subtotal, tax and total from the given lines. It is
// recomputed fresh on every call; nothing is cached, so displayed totals can
// never drift from cart state.
func ComputeTotals(lines []CartLine) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt32(line.Quantity)))
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
