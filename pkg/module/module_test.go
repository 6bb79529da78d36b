package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/attest-io/attest/pkg/module"
)

func echoMux(body string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /widgets", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
	return mux
}

func TestNewValidatesPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"empty prefix", ""},
		{"missing leading slash", "api"},
		{"multi-level prefix", "/api/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%q) did not panic", tt.prefix)
				}
			}()
			module.New(tt.prefix, http.NewServeMux())
		})
	}
}

func TestPrefix(t *testing.T) {
	m := module.New("/api", http.NewServeMux())
	if m.Prefix() != "/api" {
		t.Errorf("Prefix = %q, want /api", m.Prefix())
	}
}

func TestRouterDispatch(t *testing.T) {
	m := module.New("/api", echoMux("widgets"))

	router := module.NewRouter()
	router.Mount(m)
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	t.Run("module path strips prefix", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/widgets", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if rec.Body.String() != "widgets" {
			t.Errorf("body = %q, want widgets", rec.Body.String())
		}
	})

	t.Run("unmatched prefix falls back to native mux", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/healthz", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Body.String() != "ok" {
			t.Errorf("body = %q, want ok", rec.Body.String())
		}
	})

	t.Run("trailing slash normalized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/widgets/", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})
}

func TestModuleMiddlewareOrder(t *testing.T) {
	var order []string

	m := module.New("/api", echoMux("widgets"))
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "first")
			next.ServeHTTP(w, r)
		})
	})
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "second")
			next.ServeHTTP(w, r)
		})
	})

	req := httptest.NewRequest("GET", "/api/widgets", nil)
	rec := httptest.NewRecorder()

	m.Serve(rec, req)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("middleware order = %v, want [first second]", order)
	}
	if rec.Body.String() != "widgets" {
		t.Errorf("body = %q, want widgets", rec.Body.String())
	}
}
