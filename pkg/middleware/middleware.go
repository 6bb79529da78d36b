// Package middleware provides HTTP middleware composition plus the CORS,
// request logging, and body limit implementations used by the API module.
package middleware

import "net/http"

// System is an ordered middleware stack.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	wraps []func(http.Handler) http.Handler
}

// New creates an empty middleware stack.
func New() System {
	return &stack{}
}

func (s *stack) Use(fn func(http.Handler) http.Handler) {
	s.wraps = append(s.wraps, fn)
}

// Apply wraps the handler so the first Use'd middleware runs outermost.
func (s *stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.wraps) - 1; i >= 0; i-- {
		handler = s.wraps[i](handler)
	}
	return handler
}
