package api

import (
	"github.com/attest-io/attest/internal/captures"
	"github.com/attest-io/attest/internal/insights"
	"github.com/attest-io/attest/internal/routines"
	"github.com/attest-io/attest/internal/verifications"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Routines      routines.System
	Captures      captures.System
	Verifications verifications.System
	Insights      insights.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	routinesSystem := routines.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	capturesSystem := captures.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
	)

	verificationsSystem := verifications.New(
		runtime.Database.Connection(),
		capturesSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	insightsSystem := insights.New(
		verificationsSystem,
		runtime.Logger,
	)

	return &Domain{
		Routines:      routinesSystem,
		Captures:      capturesSystem,
		Verifications: verificationsSystem,
		Insights:      insightsSystem,
	}
}
