package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmasystem/pos/pos/pkg/response"
)

// displayPlaces is the rounding applied to money for display only; the
// underlying cart math stays exact.
const displayPlaces = 2

func toCartResponse(sessionId uuid.UUID, lines []CartLine) response.Cart {
	totals := ComputeTotals(lines)
	respLines := make([]response.CartLine, len(lines))
	for i, line := range lines {
		respLines[i] = response.CartLine{
			ProductId:      line.ProductId,
			Name:           line.Name,
			UnitPrice:      line.UnitPrice,
			Quantity:       line.Quantity,
			AvailableStock: line.AvailableStock,
			LineTotal:      line.UnitPrice.Mul(decimal.NewFromInt32(line.Quantity)).Round(displayPlaces),
		}
	}
	return response.Cart{
		SessionId: sessionId,
		Lines:     respLines,
		Totals: response.Totals{
			Subtotal: totals.Subtotal.Round(displayPlaces),
			Tax:      totals.Tax.Round(displayPlaces),
			Total:    totals.Total.Round(displayPlaces),
		},
	}
}

func toCheckoutResponse(sessionId uuid.UUID, checkout *Checkout) response.Checkout {
	return response.Checkout{
		SessionId: sessionId,
		State:     string(checkout.State()),
		SaleId:    checkout.SaleId(),
		Message:   checkout.Failure(),
	}
}
