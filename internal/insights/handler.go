package insights

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/attest-io/attest/internal/verifications"
	"github.com/attest-io/attest/pkg/handlers"
	"github.com/attest-io/attest/pkg/routes"
)

// Handler provides the HTTP endpoint for insight aggregation.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "insights"),
	}
}

// Routes returns the route group definition for the insights endpoint.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/insights",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Summarize},
		},
	}
}

// Summarize aggregates the trailing window ending now. The window size
// comes from the window_days query parameter, defaulting to 7 and
// clamped to [1, 90]; non-numeric values fall back to the default.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	windowDays := WindowDaysFromQuery(r.URL.Query().Get("window_days"))

	result, err := h.sys.Summarize(r.Context(), time.Now().UTC(), windowDays)
	if err != nil {
		handlers.RespondError(w, h.logger, verifications.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// WindowDaysFromQuery parses a window_days parameter value, applying the
// default for absent or non-numeric input and clamping to the valid range.
func WindowDaysFromQuery(value string) int {
	if value == "" {
		return DefaultWindowDays
	}

	days, err := strconv.Atoi(value)
	if err != nil {
		return DefaultWindowDays
	}

	if days < MinWindowDays {
		return MinWindowDays
	}
	if days > MaxWindowDays {
		return MaxWindowDays
	}
	return days
}
