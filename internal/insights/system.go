package insights

import (
	"context"
	"time"
)

// System defines the public contract for insight aggregation.
type System interface {
	Handler() *Handler

	// Summarize reads the verification records in the trailing window
	// ending at now and aggregates them. The caller supplies now and the
	// window size; aggregation itself is deterministic.
	Summarize(ctx context.Context, now time.Time, windowDays int) (*Insights, error)
}
