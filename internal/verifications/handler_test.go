package verifications_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/attest-io/attest/internal/verifications"
	"github.com/attest-io/attest/pkg/pagination"
	"github.com/attest-io/attest/pkg/routes"
)

type mockSystem struct {
	submitFn func(ctx context.Context, cmd verifications.SubmitCommand) (*verifications.Result, error)
	listFn   func(ctx context.Context, page pagination.PageRequest, filters verifications.Filters) (*pagination.PageResult[verifications.Verification], error)
	findFn   func(ctx context.Context, id uuid.UUID) (*verifications.Verification, error)
	sinceFn  func(ctx context.Context, since time.Time) ([]verifications.Verification, error)
}

func (m *mockSystem) Handler() *verifications.Handler {
	return newTestHandler(m)
}

func (m *mockSystem) Submit(ctx context.Context, cmd verifications.SubmitCommand) (*verifications.Result, error) {
	return m.submitFn(ctx, cmd)
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters verifications.Filters) (*pagination.PageResult[verifications.Verification], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*verifications.Verification, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Since(ctx context.Context, since time.Time) ([]verifications.Verification, error) {
	return m.sinceFn(ctx, since)
}

func newTestHandler(sys verifications.System) *verifications.Handler {
	return verifications.NewHandler(
		sys,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
	)
}

func setupMux(h *verifications.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, h.Routes(), h.VerifyRoutes())
	return mux
}

func TestSubmitHandler(t *testing.T) {
	created := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	t.Run("valid submission returns 201", func(t *testing.T) {
		sys := &mockSystem{
			submitFn: func(ctx context.Context, cmd verifications.SubmitCommand) (*verifications.Result, error) {
				if cmd.ImageData != "payload" {
					t.Errorf("ImageData = %q, want payload", cmd.ImageData)
				}
				return &verifications.Result{
					Verdict:    verifications.VerdictVerified,
					Confidence: 0.81,
					CreatedAt:  created,
				}, nil
			},
		}

		body, _ := json.Marshal(map[string]string{"image_data": "payload"})
		req := httptest.NewRequest("POST", "/verify", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		setupMux(newTestHandler(sys)).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}

		var result verifications.Result
		if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if result.Verdict != verifications.VerdictVerified {
			t.Errorf("verdict = %s, want Verified", result.Verdict)
		}
		if result.Confidence != 0.81 {
			t.Errorf("confidence = %v, want 0.81", result.Confidence)
		}
		if !result.CreatedAt.Equal(created) {
			t.Errorf("created_at = %v, want %v", result.CreatedAt, created)
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		sys := &mockSystem{}

		req := httptest.NewRequest("POST", "/verify", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()

		setupMux(newTestHandler(sys)).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("storage failure returns 503", func(t *testing.T) {
		sys := &mockSystem{
			submitFn: func(ctx context.Context, cmd verifications.SubmitCommand) (*verifications.Result, error) {
				return nil, verifications.ErrStorageUnavailable
			},
		}

		body, _ := json.Marshal(map[string]string{"image_data": ""})
		req := httptest.NewRequest("POST", "/verify", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		setupMux(newTestHandler(sys)).ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rec.Code)
		}
	})
}

func TestListHandler(t *testing.T) {
	sys := &mockSystem{
		listFn: func(ctx context.Context, page pagination.PageRequest, filters verifications.Filters) (*pagination.PageResult[verifications.Verification], error) {
			if filters.Verdict == nil || *filters.Verdict != "Verified" {
				t.Errorf("Verdict filter = %v, want Verified", filters.Verdict)
			}
			result := pagination.NewPageResult([]verifications.Verification{
				{ID: uuid.New(), Verdict: verifications.VerdictVerified, Confidence: 0.88},
			}, 1, page.Page, page.PageSize)
			return &result, nil
		},
	}

	req := httptest.NewRequest("GET", "/verifications?verdict=Verified", nil)
	rec := httptest.NewRecorder()

	setupMux(newTestHandler(sys)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result pagination.PageResult[verifications.Verification]
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("total = %d, want 1", result.Total)
	}
}

func TestFindHandler(t *testing.T) {
	id := uuid.New()

	t.Run("existing record returns 200", func(t *testing.T) {
		sys := &mockSystem{
			findFn: func(ctx context.Context, got uuid.UUID) (*verifications.Verification, error) {
				if got != id {
					t.Errorf("id = %s, want %s", got, id)
				}
				return &verifications.Verification{ID: id, Verdict: verifications.VerdictUnclear}, nil
			},
		}

		req := httptest.NewRequest("GET", "/verifications/"+id.String(), nil)
		rec := httptest.NewRecorder()

		setupMux(newTestHandler(sys)).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("missing record returns 404", func(t *testing.T) {
		sys := &mockSystem{
			findFn: func(ctx context.Context, got uuid.UUID) (*verifications.Verification, error) {
				return nil, verifications.ErrNotFound
			},
		}

		req := httptest.NewRequest("GET", "/verifications/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()

		setupMux(newTestHandler(sys)).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("invalid uuid returns 400", func(t *testing.T) {
		sys := &mockSystem{}

		req := httptest.NewRequest("GET", "/verifications/not-a-uuid", nil)
		rec := httptest.NewRecorder()

		setupMux(newTestHandler(sys)).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}
