package api

import (
	"net/http"

	"github.com/attest-io/attest/internal/config"
	"github.com/attest-io/attest/pkg/openapi"
	"github.com/attest-io/attest/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	verificationsHandler := domain.Verifications.Handler()

	routes.Register(
		mux,
		domain.Routines.Handler().Routes(),
		domain.Captures.Handler().Routes(),
		verificationsHandler.Routes(),
		verificationsHandler.VerifyRoutes(),
		domain.Insights.Handler().Routes(),
		newStatusHandler(runtime, cfg.Version).routes(),
	)

	spec, err := buildSpec(cfg)
	if err != nil {
		runtime.Logger.Error("openapi spec serialization failed", "error", err)
		return
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(spec))
}
