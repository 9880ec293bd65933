package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	inErrors "github.com/farmasystem/pos/internal/errors"
)

func paracetamol() Product {
	return Product{
		ID:             1,
		Name:           "Paracetamol 500mg",
		UnitPrice:      decimal.RequireFromString("5.99"),
		AvailableStock: 10,
	}
}

func ibuprofen() Product {
	return Product{
		ID:             2,
		Name:           "Ibuprofeno 400mg",
		UnitPrice:      decimal.RequireFromString("8.50"),
		AvailableStock: 3,
	}
}

func TestAddItemMergesSameProduct(t *testing.T) {
	cart := NewCart()

	assert.NoError(t, cart.AddItem(paracetamol(), 2))
	assert.NoError(t, cart.AddItem(paracetamol(), 3))

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.EqualValues(t, 5, items[0].Quantity)
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	cart := NewCart()

	assert.NoError(t, cart.AddItem(paracetamol(), 1))
	assert.NoError(t, cart.AddItem(ibuprofen(), 1))
	assert.NoError(t, cart.AddItem(paracetamol(), 1))

	items := cart.Items()
	assert.Len(t, items, 2)
	assert.EqualValues(t, 1, items[0].ProductId)
	assert.EqualValues(t, 2, items[1].ProductId)
}

func TestAddItemRejectsBeyondStock(t *testing.T) {
	tests := []struct {
		name       string
		firstQty   int32
		secondQty  int32
		wantErr    bool
		wantedQty  int32
		wantedLens int
	}{
		{
			name:       "single add beyond stock is rejected without a line",
			firstQty:   11,
			wantErr:    true,
			wantedLens: 0,
		},
		{
			name:       "merge beyond stock keeps the existing quantity",
			firstQty:   8,
			secondQty:  3,
			wantErr:    true,
			wantedQty:  8,
			wantedLens: 1,
		},
		{
			name:       "merge exactly at stock is allowed",
			firstQty:   8,
			secondQty:  2,
			wantedQty:  10,
			wantedLens: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()

			err := cart.AddItem(paracetamol(), tt.firstQty)
			if tt.secondQty > 0 {
				assert.NoError(t, err)
				err = cart.AddItem(paracetamol(), tt.secondQty)
			}

			if tt.wantErr {
				assert.ErrorIs(t, err, inErrors.ErrStockExceeded)
			} else {
				assert.NoError(t, err)
			}
			items := cart.Items()
			assert.Len(t, items, tt.wantedLens)
			if tt.wantedLens > 0 {
				assert.EqualValues(t, tt.wantedQty, items[0].Quantity)
			}
		})
	}
}

func TestAddItemRejectsInvalidProduct(t *testing.T) {
	cart := NewCart()

	err := cart.AddItem(Product{ID: 0, UnitPrice: decimal.Zero, AvailableStock: 1}, 1)
	assert.ErrorIs(t, err, inErrors.ErrInvalidProduct)

	err = cart.AddItem(Product{
		ID:             3,
		UnitPrice:      decimal.RequireFromString("-1"),
		AvailableStock: 1,
	}, 1)
	assert.ErrorIs(t, err, inErrors.ErrInvalidProduct)

	err = cart.AddItem(paracetamol(), 0)
	assert.ErrorIs(t, err, inErrors.ErrInvalidProduct)

	assert.True(t, cart.IsEmpty())
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		newQty    int32
		wantErr   error
		wantedQty int32
		removed   bool
	}{
		{name: "update within stock", newQty: 7, wantedQty: 7},
		{name: "update to zero removes the line", newQty: 0, removed: true},
		{name: "update to negative removes the line", newQty: -1, removed: true},
		{
			name:      "update beyond stock leaves the line unchanged",
			newQty:    11,
			wantErr:   inErrors.ErrStockExceeded,
			wantedQty: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			assert.NoError(t, cart.AddItem(paracetamol(), 2))

			err := cart.UpdateQuantity(1, tt.newQty)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if tt.removed {
				assert.True(t, cart.IsEmpty())
				return
			}
			items := cart.Items()
			assert.Len(t, items, 1)
			assert.EqualValues(t, tt.wantedQty, items[0].Quantity)
		})
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	cart := NewCart()
	assert.NoError(t, cart.AddItem(paracetamol(), 2))

	assert.NoError(t, cart.UpdateQuantity(99, 5))

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.EqualValues(t, 2, items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	cart := NewCart()
	assert.NoError(t, cart.AddItem(paracetamol(), 1))
	assert.NoError(t, cart.AddItem(ibuprofen(), 1))

	cart.RemoveItem(1)

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.EqualValues(t, 2, items[0].ProductId)

	cart.RemoveItem(99)
	assert.Len(t, cart.Items(), 1)
}

func TestClear(t *testing.T) {
	cart := NewCart()
	assert.NoError(t, cart.AddItem(paracetamol(), 2))
	assert.NoError(t, cart.AddItem(ibuprofen(), 1))

	cart.Clear()
	assert.True(t, cart.IsEmpty())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Items())
}

func TestItemsReturnsCopy(t *testing.T) {
	cart := NewCart()
	assert.NoError(t, cart.AddItem(paracetamol(), 2))

	items := cart.Items()
	items[0].Quantity = 99

	assert.EqualValues(t, 2, cart.Items()[0].Quantity)
}
