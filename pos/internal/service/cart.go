package service

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	inErrors "github.com/farmasystem/pos/internal/errors"
)

// Product is the snapshot the cart keeps of a catalog product at the time
// it is added. AvailableStock is a client-side bound only; it may be stale
// relative to concurrent sales on other terminals and is never re-checked
// against the backend before submission.
type Product struct {
	ID             int64
	Name           string
	UnitPrice      decimal.Decimal
	AvailableStock int32
}

type CartLine struct {
	ProductId      int64
	Name           string
	UnitPrice      decimal.Decimal
	Quantity       int32
	AvailableStock int32
}

// Cart holds the line items of the active sale, one line per product,
// in insertion order. All mutations keep 1 <= Quantity <= AvailableStock.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (cart *Cart) indexOf(productId int64) int {
	for i, line := range cart.lines {
		if line.ProductId == productId {
			return i
		}
	}
	return -1
}

// AddItem merges into an existing line for the same product or appends a
// new one. The whole operation is rejected, without mutation, when the
// merged quantity would exceed the stock snapshot.
func (cart *Cart) AddItem(product Product, requestedQty int32) error {
	if product.ID <= 0 || product.UnitPrice.IsNegative() {
		return fmt.Errorf("productId=%d price=%s: %w",
			product.ID, product.UnitPrice.String(), inErrors.ErrInvalidProduct)
	}
	if requestedQty < 1 {
		return fmt.Errorf("requestedQty=%d: %w", requestedQty, inErrors.ErrInvalidProduct)
	}

	cart.mu.Lock()
	defer cart.mu.Unlock()

	i := cart.indexOf(product.ID)
	if i < 0 {
		if requestedQty > product.AvailableStock {
			return fmt.Errorf("productId=%d requested=%d available=%d: %w",
				product.ID, requestedQty, product.AvailableStock, inErrors.ErrStockExceeded)
		}
		cart.lines = append(cart.lines, CartLine{
			ProductId:      product.ID,
			Name:           product.Name,
			UnitPrice:      product.UnitPrice,
			Quantity:       requestedQty,
			AvailableStock: product.AvailableStock,
		})
		return nil
	}

	merged := cart.lines[i].Quantity + requestedQty
	if merged > cart.lines[i].AvailableStock {
		return fmt.Errorf("productId=%d requested=%d available=%d: %w",
			product.ID, merged, cart.lines[i].AvailableStock, inErrors.ErrStockExceeded)
	}
	cart.lines[i].Quantity = merged
	return nil
}

func (cart *Cart) RemoveItem(productId int64) {
	cart.mu.Lock()
	defer cart.mu.Unlock()

	i := cart.indexOf(productId)
	if i < 0 {
		return
	}
	cart.lines = append(cart.lines[:i], cart.lines[i+1:]...)
}

// UpdateQuantity sets the quantity of an existing line. A non-positive
// quantity removes the line; a quantity above the stock snapshot is
// rejected and leaves the line unchanged.
func (cart *Cart) UpdateQuantity(productId int64, newQty int32) error {
	if newQty <= 0 {
		cart.RemoveItem(productId)
		return nil
	}

	cart.mu.Lock()
	defer cart.mu.Unlock()

	i := cart.indexOf(productId)
	if i < 0 {
		return nil
	}
	if newQty > cart.lines[i].AvailableStock {
		return fmt.Errorf("productId=%d requested=%d available=%d: %w",
			productId, newQty, cart.lines[i].AvailableStock, inErrors.ErrStockExceeded)
	}
	cart.lines[i].Quantity = newQty
	return nil
}

func (cart *Cart) Clear() {
	cart.mu.Lock()
	defer cart.mu.Unlock()
	cart.lines = nil
}

// Items returns a copy of the lines in insertion order.
func (cart *Cart) Items() []CartLine {
	cart.mu.Lock()
	defer cart.mu.Unlock()

	items := make([]CartLine, len(cart.lines))
	copy(items, cart.lines)
	return items
}

func (cart *Cart) IsEmpty() bool {
	cart.mu.Lock()
	defer cart.mu.Unlock()
	return len(cart.lines) == 0
}
