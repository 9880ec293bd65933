package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Session struct {
	ID uuid.UUID `json:"id"`
}

type CartLine struct {
	ProductId      int64           `json:"productId"`
	Name           string          `json:"name"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Quantity       int32           `json:"quantity"`
	AvailableStock int32           `json:"availableStock"`
	LineTotal      decimal.Decimal `json:"lineTotal"`
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type Cart struct {
	SessionId uuid.UUID  `json:"sessionId"`
	Lines     []CartLine `json:"lines"`
	Totals    Totals     `json:"totals"`
}

type Buyer struct {
	DocumentId string `json:"documentId"`
	Name       string `json:"name"`
}

type Checkout struct {
	SessionId uuid.UUID `json:"sessionId"`
	State     string    `json:"state"`
	SaleId    int64     `json:"saleId,omitempty"`
	Message   string    `json:"message,omitempty"`
}
