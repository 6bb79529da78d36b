package verifications

import (
	"net/url"

	"github.com/attest-io/attest/pkg/query"
	"github.com/attest-io/attest/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "verifications", "v").
	Project("id", "ID").
	Project("routine_id", "RoutineID").
	Project("capture_id", "CaptureID").
	Project("verdict", "Verdict").
	Project("confidence", "Confidence").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for verification queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Verdict   *string `json:"verdict,omitempty"`
	RoutineID *string `json:"routine_id,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Verdict", f.Verdict).
		WhereEquals("RoutineID", f.RoutineID)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("verdict"); v != "" {
		f.Verdict = &v
	}

	if r := values.Get("routine_id"); r != "" {
		f.RoutineID = &r
	}

	return f
}

func scanVerification(s repository.Scanner) (Verification, error) {
	var v Verification

	err := s.Scan(
		&v.ID,
		&v.RoutineID,
		&v.CaptureID,
		&v.Verdict,
		&v.Confidence,
		&v.CreatedAt,
	)

	return v, err
}
