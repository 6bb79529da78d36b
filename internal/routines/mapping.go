package routines

import (
	"net/url"

	"github.com/attest-io/attest/pkg/query"
	"github.com/attest-io/attest/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "routines", "r").
	Project("id", "ID").
	Project("title", "Title").
	Project("note", "Note").
	Project("time", "Time").
	Project("status", "Status").
	Project("color", "Color").
	Project("icon", "Icon").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field: "Time",
}

// Filters contains optional filtering criteria for routine queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Status *string `json:"status,omitempty"`
	Color  *string `json:"color,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereEquals("Color", f.Color)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if c := values.Get("color"); c != "" {
		f.Color = &c
	}

	return f
}

func scanRoutine(s repository.Scanner) (Routine, error) {
	var r Routine

	err := s.Scan(
		&r.ID,
		&r.Title,
		&r.Note,
		&r.Time,
		&r.Status,
		&r.Color,
		&r.Icon,
		&r.CreatedAt,
		&r.UpdatedAt,
	)

	return r, err
}
