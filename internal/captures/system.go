package captures

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// System defines the public contract for capture domain operations.
// Store is the capture sink consumed by the verification scorer.
type System interface {
	Handler() *Handler

	// Store uploads the full payload to blob storage and persists the
	// bounded preview row, returning the created capture.
	Store(ctx context.Context, cmd StoreCommand) (*Capture, error)

	Find(ctx context.Context, id uuid.UUID) (*Capture, error)

	// Download streams the full payload from blob storage.
	// The caller must close the reader.
	Download(ctx context.Context, id uuid.UUID) (io.ReadCloser, error)
}
