package verifications

import (
	"errors"
	"net/http"
)

// Domain errors for verification operations.
var (
	ErrNotFound  = errors.New("verification not found")
	ErrDuplicate = errors.New("verification already exists")

	// ErrStorageUnavailable indicates a capture sink or record store
	// collaborator failed. Scoring never fails on its own input.
	ErrStorageUnavailable = errors.New("verification storage unavailable")
)

// MapHTTPStatus maps verification domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrStorageUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
