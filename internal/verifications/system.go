package verifications

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/attest-io/attest/pkg/pagination"
)

// System defines the public contract for verification domain operations.
type System interface {
	Handler() *Handler

	// Submit scores a capture submission, persists the capture preview and
	// the verification record sharing one timestamp, and returns the verdict.
	Submit(ctx context.Context, cmd SubmitCommand) (*Result, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Verification], error)

	Find(ctx context.Context, id uuid.UUID) (*Verification, error)

	// Since returns all verification records with created_at >= since,
	// in no particular order. This is the read surface insight
	// aggregation is built on.
	Since(ctx context.Context, since time.Time) ([]Verification, error)
}
