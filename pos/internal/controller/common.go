package controller

import (
	"errors"
	"net/http"

	inErrors "github.com/farmasystem/pos/internal/errors"
)

func errorStatusCode(err error) int {
	switch {
	case errors.Is(err, inErrors.ErrSessionNotFound),
		errors.Is(err, inErrors.ErrProductNotFound),
		errors.Is(err, inErrors.ErrLookupMiss):
		return http.StatusNotFound
	case errors.Is(err, inErrors.ErrCheckoutInProgress):
		return http.StatusConflict
	case errors.Is(err, inErrors.ErrMissingSession),
		errors.Is(err, inErrors.ErrTokenInvalid),
		errors.Is(err, inErrors.ErrEmptyAuth):
		return http.StatusUnauthorized
	case errors.Is(err, inErrors.ErrStockExceeded),
		errors.Is(err, inErrors.ErrEmptyCart),
		errors.Is(err, inErrors.ErrInvalidProduct),
		errors.Is(err, inErrors.ErrInvalidDocument),
		errors.Is(err, inErrors.ErrBuyerNameRequired),
		errors.Is(err, inErrors.ErrInvalidState):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
