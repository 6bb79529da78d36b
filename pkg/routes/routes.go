// Package routes declares HTTP endpoints as data so handlers can expose
// their surface without touching a mux directly.
package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group collects the routes sharing a path prefix. Children nest under
// the parent's prefix.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register mounts every route in the given groups onto the mux using
// Go 1.22 method-qualified patterns.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		mount(mux, "", group)
	}
}

func mount(mux *http.ServeMux, parent string, group Group) {
	prefix := parent + group.Prefix

	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}

	for _, child := range group.Children {
		mount(mux, prefix, child)
	}
}
