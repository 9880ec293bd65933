package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	inErrors "github.com/farmasystem/pos/internal/errors"
)

func TestCheckoutHappyPath(t *testing.T) {
	checkout := NewCheckout()
	assert.Equal(t, StateIdle, checkout.State())

	assert.NoError(t, checkout.Open())
	assert.Equal(t, StateAwaitingBuyerInfo, checkout.State())

	assert.NoError(t, checkout.BeginSubmit())
	assert.Equal(t, StateSubmitting, checkout.State())
	assert.True(t, checkout.Submitting())

	checkout.CompleteSubmit(42)
	assert.Equal(t, StateSuccess, checkout.State())
	assert.EqualValues(t, 42, checkout.SaleId())
	assert.Empty(t, checkout.Failure())

	assert.NoError(t, checkout.Cancel())
	assert.Equal(t, StateIdle, checkout.State())
}

func TestCheckoutFailureAndRetry(t *testing.T) {
	checkout := NewCheckout()
	assert.NoError(t, checkout.Open())
	assert.NoError(t, checkout.BeginSubmit())

	checkout.FailSubmit("insufficient stock")
	assert.Equal(t, StateFailed, checkout.State())
	assert.Equal(t, "insufficient stock", checkout.Failure())

	// retry is an explicit re-submission from Failed
	assert.NoError(t, checkout.BeginSubmit())
	assert.Equal(t, StateSubmitting, checkout.State())
	assert.Empty(t, checkout.Failure())

	checkout.CompleteSubmit(7)
	assert.Equal(t, StateSuccess, checkout.State())
}

func TestCheckoutInvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(co *Checkout)
		op      func(co *Checkout) error
		wantErr error
	}{
		{
			name:    "open while submitting",
			prepare: func(co *Checkout) { _ = co.Open(); _ = co.BeginSubmit() },
			op:      func(co *Checkout) error { return co.Open() },
			wantErr: inErrors.ErrCheckoutInProgress,
		},
		{
			name:    "open while already awaiting",
			prepare: func(co *Checkout) { _ = co.Open() },
			op:      func(co *Checkout) error { return co.Open() },
			wantErr: inErrors.ErrInvalidState,
		},
		{
			name:    "submit from idle",
			prepare: func(co *Checkout) {},
			op:      func(co *Checkout) error { return co.BeginSubmit() },
			wantErr: inErrors.ErrInvalidState,
		},
		{
			name:    "submit while submitting",
			prepare: func(co *Checkout) { _ = co.Open(); _ = co.BeginSubmit() },
			op:      func(co *Checkout) error { return co.BeginSubmit() },
			wantErr: inErrors.ErrCheckoutInProgress,
		},
		{
			name:    "cancel while submitting",
			prepare: func(co *Checkout) { _ = co.Open(); _ = co.BeginSubmit() },
			op:      func(co *Checkout) error { return co.Cancel() },
			wantErr: inErrors.ErrCheckoutInProgress,
		},
		{
			name: "submit from success",
			prepare: func(co *Checkout) {
				_ = co.Open()
				_ = co.BeginSubmit()
				co.CompleteSubmit(1)
			},
			op:      func(co *Checkout) error { return co.BeginSubmit() },
			wantErr: inErrors.ErrInvalidState,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkout := NewCheckout()
			tt.prepare(checkout)

			err := tt.op(checkout)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckoutCancelKeepsSaleId(t *testing.T) {
	checkout := NewCheckout()
	assert.NoError(t, checkout.Open())
	assert.NoError(t, checkout.BeginSubmit())
	checkout.CompleteSubmit(42)

	assert.NoError(t, checkout.Cancel())

	assert.Equal(t, StateIdle, checkout.State())
	assert.EqualValues(t, 42, checkout.SaleId())
}
