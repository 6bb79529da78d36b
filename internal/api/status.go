package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/attest-io/attest/pkg/database"
	"github.com/attest-io/attest/pkg/handlers"
	"github.com/attest-io/attest/pkg/routes"
	"github.com/attest-io/attest/pkg/storage"
)

const (
	statusOK          = "ok"
	statusProbeKey    = "captures/.probe"
	statusProbeBudget = 5 * time.Second
)

// StatusReport describes the reachability of the service's collaborators.
type StatusReport struct {
	Backend  string `json:"backend"`
	Database string `json:"database"`
	Storage  string `json:"storage"`
	Version  string `json:"version"`
}

type statusHandler struct {
	db      database.System
	store   storage.System
	logger  *slog.Logger
	version string
}

func newStatusHandler(runtime *Runtime, version string) *statusHandler {
	return &statusHandler{
		db:      runtime.Database,
		store:   runtime.Storage,
		logger:  runtime.Logger.With("handler", "status"),
		version: version,
	}
}

func (h *statusHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/status",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.status},
		},
	}
}

// status probes the database and blob storage concurrently and reports
// per-collaborator reachability. The endpoint itself always returns 200;
// failures show up in the report fields.
func (h *statusHandler) status(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), statusProbeBudget)
	defer cancel()

	report := StatusReport{
		Backend:  statusOK,
		Database: statusOK,
		Storage:  statusOK,
		Version:  h.version,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := h.db.Ping(ctx); err != nil {
			h.logger.Warn("database probe failed", "error", err)
			report.Database = err.Error()
		}
		return nil
	})

	g.Go(func() error {
		if _, err := h.store.Exists(ctx, statusProbeKey); err != nil {
			h.logger.Warn("storage probe failed", "error", err)
			report.Storage = err.Error()
		}
		return nil
	})

	g.Wait()

	handlers.RespondJSON(w, http.StatusOK, report)
}
