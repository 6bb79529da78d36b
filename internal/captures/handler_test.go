package captures_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/attest-io/attest/internal/captures"
	"github.com/attest-io/attest/pkg/routes"
)

type mockSystem struct {
	storeFn    func(ctx context.Context, cmd captures.StoreCommand) (*captures.Capture, error)
	findFn     func(ctx context.Context, id uuid.UUID) (*captures.Capture, error)
	downloadFn func(ctx context.Context, id uuid.UUID) (io.ReadCloser, error)
}

func (m *mockSystem) Handler() *captures.Handler {
	return captures.NewHandler(m, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (m *mockSystem) Store(ctx context.Context, cmd captures.StoreCommand) (*captures.Capture, error) {
	return m.storeFn(ctx, cmd)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*captures.Capture, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Download(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	return m.downloadFn(ctx, id)
}

func setupMux(sys *mockSystem) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())
	return mux
}

func TestFindHandler(t *testing.T) {
	id := uuid.New()

	t.Run("existing capture returns 200", func(t *testing.T) {
		sys := &mockSystem{
			findFn: func(ctx context.Context, got uuid.UUID) (*captures.Capture, error) {
				if got != id {
					t.Errorf("id = %s, want %s", got, id)
				}
				return &captures.Capture{ID: id, Preview: "data:", SizeBytes: 5}, nil
			},
		}

		req := httptest.NewRequest("GET", "/captures/"+id.String(), nil)
		rec := httptest.NewRecorder()

		setupMux(sys).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var c captures.Capture
		if err := json.NewDecoder(rec.Body).Decode(&c); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if c.ID != id {
			t.Errorf("id = %s, want %s", c.ID, id)
		}
	})

	t.Run("missing capture returns 404", func(t *testing.T) {
		sys := &mockSystem{
			findFn: func(ctx context.Context, got uuid.UUID) (*captures.Capture, error) {
				return nil, captures.ErrNotFound
			},
		}

		req := httptest.NewRequest("GET", "/captures/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()

		setupMux(sys).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}

func TestDownloadHandler(t *testing.T) {
	sys := &mockSystem{
		downloadFn: func(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("full payload bytes")), nil
		},
	}

	req := httptest.NewRequest("GET", "/captures/"+uuid.NewString()+"/download", nil)
	rec := httptest.NewRecorder()

	setupMux(sys).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "full payload bytes" {
		t.Errorf("body = %q, want full payload", got)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment") {
		t.Errorf("Content-Disposition = %q, want attachment", cd)
	}
}
