// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/attest-io/attest/internal/config"
	"github.com/attest-io/attest/internal/infrastructure"
	"github.com/attest-io/attest/pkg/middleware"
	"github.com/attest-io/attest/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// It also registers a startup hook that seeds the sample routines when the
// routines table is empty.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.BodyLimit(cfg.API.MaxCaptureSizeBytes()))

	lc := runtime.Lifecycle
	lc.OnStartup(func() {
		if err := domain.Routines.Seed(lc.Context()); err != nil {
			runtime.Logger.Error("routine seeding failed", "error", err)
		}
	})

	return m, nil
}
