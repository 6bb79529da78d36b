package routines

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/attest-io/attest/pkg/pagination"
	"github.com/attest-io/attest/pkg/query"
	"github.com/attest-io/attest/pkg/repository"
)

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a routine repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "routines"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Routine], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Note")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count routines: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, scanRoutine, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("query routines: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Routine, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	routine, err := repository.QueryOne(ctx, r.db, q, scanRoutine, args...)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &routine, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Routine, error) {
	if err := validateCreate(&cmd); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO routines(title, note, time, status, color, icon)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, note, time, status, color, icon, created_at, updated_at`

	routine, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Routine, error) {
		return repository.QueryOne(
			ctx, tx, q, scanRoutine,
			cmd.Title, cmd.Note, cmd.Time, StatusPending, cmd.Color, cmd.Icon,
		)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("routine created", "id", routine.ID, "title", routine.Title)
	return &routine, nil
}

func (r *repo) Complete(ctx context.Context, id uuid.UUID) (*Routine, error) {
	q := `
		UPDATE routines
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, title, note, time, status, color, icon, created_at, updated_at`

	routine, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Routine, error) {
		return repository.QueryOne(ctx, tx, q, scanRoutine, StatusCompleted, id)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("routine completed", "id", routine.ID)
	return &routine, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM routines WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("routine deleted", "id", id)
	return nil
}

func (r *repo) Seed(ctx context.Context) error {
	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM routines").Scan(&total); err != nil {
		return fmt.Errorf("count routines: %w", err)
	}
	if total > 0 {
		return nil
	}

	q := `
		INSERT INTO routines(title, note, time, status, color, icon)
		VALUES
			('Wake Up', 'Drink water', '06:30', $1, 'teal', 'AlarmClock'),
			('Gym', 'Leg day', '07:15', $2, 'amber', 'BellRing'),
			('Work', 'Deep focus', '09:00', $3, 'lime', 'Clock')`

	if _, err := r.db.ExecContext(ctx, q, StatusOnTime, StatusPending, StatusCompleted); err != nil {
		return fmt.Errorf("seed routines: %w", err)
	}

	r.logger.Info("sample routines seeded")
	return nil
}

func validateCreate(cmd *CreateCommand) error {
	if strings.TrimSpace(cmd.Title) == "" {
		return ErrInvalidTitle
	}
	if !timePattern.MatchString(cmd.Time) {
		return ErrInvalidTime
	}
	if cmd.Color == "" {
		cmd.Color = DefaultColor
	}
	if cmd.Icon == "" {
		cmd.Icon = DefaultIcon
	}
	return nil
}
