package captures

import (
	"github.com/attest-io/attest/pkg/query"
	"github.com/attest-io/attest/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "captures", "c").
	Project("id", "ID").
	Project("routine_id", "RoutineID").
	Project("preview", "Preview").
	Project("storage_key", "StorageKey").
	Project("size_bytes", "SizeBytes").
	Project("created_at", "CreatedAt")

func scanCapture(s repository.Scanner) (Capture, error) {
	var c Capture

	err := s.Scan(
		&c.ID,
		&c.RoutineID,
		&c.Preview,
		&c.StorageKey,
		&c.SizeBytes,
		&c.CreatedAt,
	)

	return c, err
}
