// Package routines implements the routine domain for attest.
// It provides types, data access, and business logic for creating,
// listing, completing, and deleting the periodic routines that
// capture verifications attach to.
package routines

import (
	"time"

	"github.com/google/uuid"
)

// Routine statuses. New routines always start as Pending; Complete
// transitions them to Completed. OnTime is reserved for routines
// completed before their scheduled time.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusOnTime    = "On-Time"
)

// Defaults applied when a create request omits presentation fields.
const (
	DefaultColor = "teal"
	DefaultIcon  = "AlarmClock"
)

// Routine represents a periodic routine a user tracks and proves with captures.
type Routine struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Note      *string   `json:"note"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to register a new routine.
// Time is a display schedule in "HH:mm" form. Status is not accepted
// from the client; new routines are always created Pending.
type CreateCommand struct {
	Title string  `json:"title"`
	Note  *string `json:"note,omitempty"`
	Time  string  `json:"time"`
	Color string  `json:"color,omitempty"`
	Icon  string  `json:"icon,omitempty"`
}
