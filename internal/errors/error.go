package errors

import (
	"errors"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrEmptyAuth          = errors.New("missing authorization")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrMissingSession     = errors.New("no active session, re-authentication required")
	ErrStockExceeded      = errors.New("requested quantity exceeds available stock")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidProduct     = errors.New("invalid product")
	ErrInvalidDocument    = errors.New("document must be 8 (DNI) or 11 (RUC) digits")
	ErrBuyerNameRequired  = errors.New("buyer name is required unless anonymous sale is accepted")
	ErrLookupMiss         = errors.New("customer not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrSubmissionRejected = errors.New("sale submission rejected by backend")
	ErrCheckoutInProgress = errors.New("checkout submission already in progress")
	ErrInvalidState       = errors.New("operation not allowed in current checkout state")
	ErrSessionNotFound    = errors.New("terminal session not found")
)

func HandleError(err error, span trace.Span) {
	if err == nil {
		return
	}
	span.AddEvent(err.Error())
	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
}
