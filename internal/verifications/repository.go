package verifications

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/attest-io/attest/internal/captures"
	"github.com/attest-io/attest/pkg/pagination"
	"github.com/attest-io/attest/pkg/query"
	"github.com/attest-io/attest/pkg/repository"
)

type repo struct {
	db         *sql.DB
	captures   captures.System
	logger     *slog.Logger
	pagination pagination.Config
	clock      Clock
	jitter     Jitter
}

// New creates a verification repository implementing the System interface,
// using the wall clock and a uniform random jitter source.
func New(
	db *sql.DB,
	caps captures.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return NewWith(db, caps, logger, pagination, time.Now, defaultJitter)
}

// NewWith creates a verification repository with explicit clock and jitter
// sources, letting tests pin both sources of non-determinism.
func NewWith(
	db *sql.DB,
	caps captures.System,
	logger *slog.Logger,
	pagination pagination.Config,
	clock Clock,
	jitter Jitter,
) System {
	return &repo{
		db:         db,
		captures:   caps,
		logger:     logger.With("system", "verifications"),
		pagination: pagination,
		clock:      clock,
		jitter:     jitter,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) Submit(ctx context.Context, cmd SubmitCommand) (*Result, error) {
	createdAt := r.clock().UTC()
	verdict, confidence := Score(len(cmd.ImageData), r.jitter())

	capture, err := r.captures.Store(ctx, captures.StoreCommand{
		RoutineID: cmd.RoutineID,
		Payload:   cmd.ImageData,
		CreatedAt: createdAt,
	})
	if err != nil {
		return nil, storageUnavailable("store capture", err)
	}

	q := `
		INSERT INTO verifications(routine_id, capture_id, verdict, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, routine_id, capture_id, verdict, confidence, created_at`

	v, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Verification, error) {
		return repository.QueryOne(
			ctx, tx, q, scanVerification,
			cmd.RoutineID, capture.ID, verdict, confidence, createdAt,
		)
	})

	if err != nil {
		return nil, storageUnavailable("append verification record", err)
	}

	r.logger.Info("capture verified",
		"id", v.ID,
		"capture_id", v.CaptureID,
		"verdict", v.Verdict,
		"confidence", v.Confidence,
	)

	return &Result{
		Verdict:    v.Verdict,
		Confidence: v.Confidence,
		CreatedAt:  v.CreatedAt,
	}, nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Verification], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Verdict")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count verifications: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, scanVerification, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("query verifications: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Verification, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	v, err := repository.QueryOne(ctx, r.db, q, scanVerification, args...)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &v, nil
}

func (r *repo) Since(ctx context.Context, since time.Time) ([]Verification, error) {
	q, args := query.
		NewBuilder(projection).
		WhereGreaterOrEqual("CreatedAt", since).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, scanVerification, args...)
	if err != nil {
		return nil, storageUnavailable("query verification window", err)
	}
	return items, nil
}

// storageUnavailable wraps a collaborator failure so callers can match
// ErrStorageUnavailable while the cause stays in the message.
func storageUnavailable(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrStorageUnavailable)
}
