// Package captures implements the capture domain for attest.
// A capture is one submitted proof payload: the full encoded payload is
// written to blob storage while only a bounded-length preview is kept in
// the database row, capping storage cost per submission.
package captures

import (
	"time"

	"github.com/google/uuid"
)

// PreviewLimit is the maximum number of bytes of the encoded payload
// retained in the capture row. The full payload lives in blob storage.
const PreviewLimit = 1000

// Capture represents a stored capture preview with its blob storage reference.
type Capture struct {
	ID         uuid.UUID `json:"id"`
	RoutineID  *string   `json:"routine_id"`
	Preview    string    `json:"preview"`
	StorageKey string    `json:"storage_key"`
	SizeBytes  int64     `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}

// StoreCommand carries the data needed to persist a capture.
// RoutineID is a weak reference copied from the submission; it is never
// validated and may dangle. CreatedAt is supplied by the caller so the
// capture row and its verification record share one timestamp exactly.
type StoreCommand struct {
	RoutineID *string
	Payload   string
	CreatedAt time.Time
}

// PreviewOf returns the bounded-length preview stored for a payload:
// the first PreviewLimit bytes, regardless of encoding boundaries.
func PreviewOf(payload string) string {
	if len(payload) <= PreviewLimit {
		return payload
	}
	return payload[:PreviewLimit]
}
