package service

import (
	"fmt"
	"sync"

	inErrors "github.com/farmasystem/pos/internal/errors"
)

type CheckoutState string

const (
	StateIdle              CheckoutState = "IDLE"
	StateAwaitingBuyerInfo CheckoutState = "AWAITING_BUYER_INFO"
	StateSubmitting        CheckoutState = "SUBMITTING"
	StateSuccess           CheckoutState = "SUCCESS"
	StateFailed            CheckoutState = "FAILED"
)

// Checkout tracks the submit-sale workflow of one terminal session.
// Transitions: Idle -> AwaitingBuyerInfo -> Submitting -> Success|Failed,
// back to Idle once a terminal state is acknowledged (cancel) or, from
// Failed, back to Submitting on an explicit re-confirmation. There is no
// automatic retry.
type Checkout struct {
	mu      sync.Mutex
	state   CheckoutState
	saleId  int64
	failure string
}

func NewCheckout() *Checkout {
	return &Checkout{state: StateIdle}
}

func (co *Checkout) State() CheckoutState {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.state
}

// SaleId returns the identifier of the last successful submission, zero
// when none happened yet.
func (co *Checkout) SaleId() int64 {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.saleId
}

// Failure returns the user-facing message of the last failed submission.
func (co *Checkout) Failure() string {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.failure
}

func (co *Checkout) Open() error {
	co.mu.Lock()
	defer co.mu.Unlock()
	if co.state == StateSubmitting {
		return inErrors.ErrCheckoutInProgress
	}
	if co.state != StateIdle {
		return fmt.Errorf("state=%s: %w", co.state, inErrors.ErrInvalidState)
	}
	co.state = StateAwaitingBuyerInfo
	return nil
}

// BeginSubmit moves to Submitting. Allowed from AwaitingBuyerInfo and,
// for a seller-initiated retry, from Failed.
func (co *Checkout) BeginSubmit() error {
	co.mu.Lock()
	defer co.mu.Unlock()
	if co.state == StateSubmitting {
		return inErrors.ErrCheckoutInProgress
	}
	if co.state != StateAwaitingBuyerInfo && co.state != StateFailed {
		return fmt.Errorf("state=%s: %w", co.state, inErrors.ErrInvalidState)
	}
	co.state = StateSubmitting
	co.failure = ""
	return nil
}

func (co *Checkout) CompleteSubmit(saleId int64) {
	co.mu.Lock()
	defer co.mu.Unlock()
	co.state = StateSuccess
	co.saleId = saleId
	co.failure = ""
}

func (co *Checkout) FailSubmit(message string) {
	co.mu.Lock()
	defer co.mu.Unlock()
	co.state = StateFailed
	co.failure = message
}

// Cancel acknowledges a terminal state or abandons an open checkout,
// returning to Idle. The cart is never touched. An in-flight submission
// cannot be cancelled.
func (co *Checkout) Cancel() error {
	co.mu.Lock()
	defer co.mu.Unlock()
	if co.state == StateSubmitting {
		return inErrors.ErrCheckoutInProgress
	}
	co.state = StateIdle
	return nil
}

func (co *Checkout) Submitting() bool {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.state == StateSubmitting
}
