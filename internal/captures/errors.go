package captures

import (
	"errors"
	"net/http"
)

// Domain errors for capture operations.
var (
	ErrNotFound  = errors.New("capture not found")
	ErrDuplicate = errors.New("capture already exists")
)

// MapHTTPStatus maps capture domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
