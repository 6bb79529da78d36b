// Package verifications implements the capture verification domain for attest.
// It scores submitted captures with a placeholder size-based heuristic,
// persists immutable verification records, and exposes the timestamp-range
// query that insight aggregation reads from.
package verifications

import (
	"time"

	"github.com/google/uuid"
)

// Verdict values assigned by the scorer.
const (
	VerdictVerified    = "Verified"
	VerdictUnclear     = "Unclear"
	VerdictNotVerified = "Not Verified"
)

// Verification represents an immutable verification record for one capture.
// CreatedAt is the sole ordering and grouping key for aggregation; records
// may be inserted out of timestamp order by concurrent submissions.
type Verification struct {
	ID         uuid.UUID `json:"id"`
	RoutineID  *string   `json:"routine_id"`
	CaptureID  uuid.UUID `json:"capture_id"`
	Verdict    string    `json:"verdict"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

// SubmitCommand carries a capture submission for scoring.
// ImageData is the opaque encoded payload and may be empty. RoutineID is
// a weak reference to a routine; it is copied through unvalidated.
type SubmitCommand struct {
	ImageData string  `json:"image_data"`
	RoutineID *string `json:"routine_id,omitempty"`
}

// Result is the scoring outcome returned to the submitter.
type Result struct {
	Verdict    string    `json:"verdict"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}
