// Package insights implements trailing-window aggregation over verification
// records: completion rate, consecutive-day streak, and per-day counts.
// Summarize is a pure function of a fixed "now" and a record set, so the
// temporal logic is deterministic and directly testable.
package insights

import (
	"math"
	"time"

	"github.com/attest-io/attest/internal/verifications"
)

// Window bounds for the window_days query parameter.
const (
	DefaultWindowDays = 7
	MinWindowDays     = 1
	MaxWindowDays     = 90
)

// DailyBucket pairs a UTC calendar day with its verification count.
// Day is a short day-of-month display token, not a computation key.
type DailyBucket struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// Summary holds the aggregate statistics for the window.
type Summary struct {
	CompletionRate float64 `json:"completionRate"`
	Streak         int     `json:"streak"`
	TotalChecks    int     `json:"totalChecks"`
}

// Insights is the full aggregation response: summary statistics plus
// per-day buckets for the window, oldest first.
type Insights struct {
	Summary Summary       `json:"summary"`
	Weekly  []DailyBucket `json:"weekly"`
}

// Summarize aggregates the records whose created_at falls within the
// trailing window of windowDays UTC calendar days ending at now. Records
// outside the window are ignored, so callers may pass a superset. Order
// of the input is irrelevant; only timestamp values matter.
func Summarize(now time.Time, windowDays int, records []verifications.Verification) Insights {
	now = now.UTC()
	since := now.AddDate(0, 0, -(windowDays - 1))

	window := make([]verifications.Verification, 0, len(records))
	for _, v := range records {
		if !v.CreatedAt.Before(since) {
			window = append(window, v)
		}
	}

	total := len(window)
	verified := 0
	for _, v := range window {
		if v.Verdict == verifications.VerdictVerified {
			verified++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = round1(float64(verified) / float64(total) * 100)
	}

	buckets := make([]DailyBucket, 0, windowDays)
	for i := range windowDays {
		day := now.AddDate(0, 0, -(windowDays - 1 - i))
		count := 0
		for _, v := range window {
			if sameUTCDate(v.CreatedAt, day) {
				count++
			}
		}
		buckets = append(buckets, DailyBucket{
			Day:   day.Format("02"),
			Count: count,
		})
	}

	streak := 0
	for i := range windowDays {
		day := now.AddDate(0, 0, -i)
		if !verifiedOn(window, day) {
			break
		}
		streak++
	}

	return Insights{
		Summary: Summary{
			CompletionRate: rate,
			Streak:         streak,
			TotalChecks:    total,
		},
		Weekly: buckets,
	}
}

func verifiedOn(records []verifications.Verification, day time.Time) bool {
	for _, v := range records {
		if v.Verdict == verifications.VerdictVerified && sameUTCDate(v.CreatedAt, day) {
			return true
		}
	}
	return false
}

func sameUTCDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
