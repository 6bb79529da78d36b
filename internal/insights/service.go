package insights

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attest-io/attest/internal/verifications"
)

type service struct {
	records verifications.System
	logger  *slog.Logger
}

// New creates an insight service implementing the System interface.
// It reads records through the verification system's time-range query
// and never writes.
func New(records verifications.System, logger *slog.Logger) System {
	return &service{
		records: records,
		logger:  logger.With("system", "insights"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) Summarize(ctx context.Context, now time.Time, windowDays int) (*Insights, error) {
	now = now.UTC()
	since := now.AddDate(0, 0, -(windowDays - 1))

	records, err := s.records.Since(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("read verification window: %w", err)
	}

	result := Summarize(now, windowDays, records)
	return &result, nil
}
