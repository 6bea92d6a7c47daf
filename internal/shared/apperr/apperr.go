// Package apperr holds the error kinds shared by every storefront module.
// Modules wrap these sentinels with context, e.g.
//
//	fmt.Errorf("%w: quantity must be positive", apperr.ErrInvalidInput)
//
// and controllers translate them into HTTP status codes with HTTPStatus.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidInput marks a caller mistake: bad price, quantity, fee rate or form data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a lookup of an event, section, session or ticket that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUpstream marks a failure of an external collaborator such as the order broker.
	ErrUpstream = errors.New("upstream failure")
)

// HTTPStatus maps an error to the status code a controller should answer with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
