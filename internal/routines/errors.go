package routines

import (
	"errors"
	"net/http"
)

// Domain errors for routine operations.
var (
	ErrNotFound     = errors.New("routine not found")
	ErrDuplicate    = errors.New("routine already exists")
	ErrInvalidTitle = errors.New("routine title is required")
	ErrInvalidTime  = errors.New("routine time must be HH:mm")
)

// MapHTTPStatus maps routine domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidTitle) || errors.Is(err, ErrInvalidTime) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
