package middleware

import "net/http"

// BodyLimit caps request body size using http.MaxBytesReader. Reads past
// the limit fail with a *http.MaxBytesError, which handlers surface as a
// decode error.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
