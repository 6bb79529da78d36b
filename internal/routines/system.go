package routines

import (
	"context"

	"github.com/google/uuid"

	"github.com/attest-io/attest/pkg/pagination"
)

// System defines the public contract for routine domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Routine], error)

	Find(ctx context.Context, id uuid.UUID) (*Routine, error)
	Create(ctx context.Context, cmd CreateCommand) (*Routine, error)
	Complete(ctx context.Context, id uuid.UUID) (*Routine, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Seed inserts the sample routine set when the table is empty.
	// Called once at startup; a no-op when routines already exist.
	Seed(ctx context.Context) error
}
