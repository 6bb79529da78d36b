package captures

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/attest-io/attest/pkg/query"
	"github.com/attest-io/attest/pkg/repository"
	"github.com/attest-io/attest/pkg/storage"
)

const payloadContentType = "text/plain; charset=utf-8"

type repo struct {
	db      *sql.DB
	storage storage.System
	logger  *slog.Logger
}

// New creates a capture repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
) System {
	return &repo{
		db:      db,
		storage: store,
		logger:  logger.With("system", "captures"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Store(ctx context.Context, cmd StoreCommand) (*Capture, error) {
	id := uuid.New()
	key := buildStorageKey(id)

	if err := r.storage.Upload(ctx, key, strings.NewReader(cmd.Payload), payloadContentType); err != nil {
		return nil, fmt.Errorf("upload capture blob: %w", err)
	}

	q := `
		INSERT INTO captures(id, routine_id, preview, storage_key, size_bytes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, routine_id, preview, storage_key, size_bytes, created_at`

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Capture, error) {
		return repository.QueryOne(
			ctx, tx, q, scanCapture,
			id, cmd.RoutineID, PreviewOf(cmd.Payload), key, int64(len(cmd.Payload)), cmd.CreatedAt,
		)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("capture stored", "id", c.ID, "size_bytes", c.SizeBytes)
	return &c, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Capture, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, scanCapture, args...)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Download(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	c, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	body, err := r.storage.Download(ctx, c.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("download capture blob: %w", err)
	}

	return body, nil
}

func buildStorageKey(id uuid.UUID) string {
	return fmt.Sprintf("captures/%s", id)
}
