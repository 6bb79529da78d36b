package captures_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/attest-io/attest/internal/captures"
)

func TestPreviewOf(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantLen int
	}{
		{"empty payload", "", 0},
		{"short payload kept whole", "data:image/png;base64,abc", 25},
		{"exactly at limit", strings.Repeat("x", 1000), 1000},
		{"over limit truncated", strings.Repeat("x", 1001), 1000},
		{"far over limit truncated", strings.Repeat("x", 500000), 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := captures.PreviewOf(tt.payload)
			if len(got) != tt.wantLen {
				t.Errorf("len(PreviewOf) = %d, want %d", len(got), tt.wantLen)
			}
			if !strings.HasPrefix(tt.payload, got) {
				t.Error("preview is not a prefix of the payload")
			}
		})
	}
}

func TestPreviewOfTruncatesMidRune(t *testing.T) {
	// truncation is byte-based regardless of encoding boundaries
	payload := strings.Repeat("x", 999) + "é"
	got := captures.PreviewOf(payload)
	if len(got) != 1000 {
		t.Errorf("len(PreviewOf) = %d, want 1000", len(got))
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", captures.ErrNotFound, http.StatusNotFound},
		{"duplicate", captures.ErrDuplicate, http.StatusConflict},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find failed: %w", captures.ErrNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := captures.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
