package insights_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/attest-io/attest/internal/insights"
	"github.com/attest-io/attest/internal/verifications"
)

var now = time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC)

func record(verdict string, createdAt time.Time) verifications.Verification {
	return verifications.Verification{
		ID:         uuid.New(),
		CaptureID:  uuid.New(),
		Verdict:    verdict,
		Confidence: 0.80,
		CreatedAt:  createdAt,
	}
}

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func TestSummarizeEmpty(t *testing.T) {
	result := insights.Summarize(now, 7, nil)

	if result.Summary.TotalChecks != 0 {
		t.Errorf("totalChecks = %d, want 0", result.Summary.TotalChecks)
	}
	if result.Summary.CompletionRate != 0.0 {
		t.Errorf("completionRate = %v, want 0.0", result.Summary.CompletionRate)
	}
	if result.Summary.Streak != 0 {
		t.Errorf("streak = %d, want 0", result.Summary.Streak)
	}
	if len(result.Weekly) != 7 {
		t.Fatalf("weekly buckets = %d, want 7", len(result.Weekly))
	}
	for i, bucket := range result.Weekly {
		if bucket.Count != 0 {
			t.Errorf("bucket %d count = %d, want 0", i, bucket.Count)
		}
	}
}

func TestSummarizeAllVerifiedToday(t *testing.T) {
	records := []verifications.Verification{
		record(verifications.VerdictVerified, now.Add(-1*time.Hour)),
		record(verifications.VerdictVerified, now.Add(-2*time.Hour)),
		record(verifications.VerdictVerified, now.Add(-3*time.Hour)),
	}

	result := insights.Summarize(now, 7, records)

	if result.Summary.TotalChecks != 3 {
		t.Errorf("totalChecks = %d, want 3", result.Summary.TotalChecks)
	}
	if result.Summary.CompletionRate != 100.0 {
		t.Errorf("completionRate = %v, want 100.0", result.Summary.CompletionRate)
	}
	if result.Summary.Streak != 1 {
		t.Errorf("streak = %d, want 1", result.Summary.Streak)
	}

	today := result.Weekly[len(result.Weekly)-1]
	if today.Count != 3 {
		t.Errorf("today's bucket count = %d, want 3", today.Count)
	}
}

func TestSummarizeStreakStopsAtFirstMiss(t *testing.T) {
	// Verified on today, today-1, today-2; today-3 has only a failed check.
	records := []verifications.Verification{
		record(verifications.VerdictVerified, daysAgo(0)),
		record(verifications.VerdictVerified, daysAgo(1)),
		record(verifications.VerdictVerified, daysAgo(2)),
		record(verifications.VerdictNotVerified, daysAgo(3)),
		record(verifications.VerdictVerified, daysAgo(5)),
	}

	result := insights.Summarize(now, 7, records)

	if result.Summary.Streak != 3 {
		t.Errorf("streak = %d, want 3", result.Summary.Streak)
	}
}

func TestSummarizeStreakZeroWithoutTodayVerified(t *testing.T) {
	records := []verifications.Verification{
		record(verifications.VerdictUnclear, daysAgo(0)),
		record(verifications.VerdictVerified, daysAgo(1)),
		record(verifications.VerdictVerified, daysAgo(2)),
	}

	result := insights.Summarize(now, 7, records)

	if result.Summary.Streak != 0 {
		t.Errorf("streak = %d, want 0", result.Summary.Streak)
	}
}

func TestSummarizeCompletionRate(t *testing.T) {
	records := []verifications.Verification{
		record(verifications.VerdictVerified, daysAgo(0)),
		record(verifications.VerdictUnclear, daysAgo(1)),
		record(verifications.VerdictNotVerified, daysAgo(2)),
	}

	result := insights.Summarize(now, 7, records)

	// 1 of 3 verified = 33.3 after rounding to one decimal place
	if result.Summary.CompletionRate != 33.3 {
		t.Errorf("completionRate = %v, want 33.3", result.Summary.CompletionRate)
	}
}

func TestSummarizeWindowFiltering(t *testing.T) {
	records := []verifications.Verification{
		record(verifications.VerdictVerified, daysAgo(0)),
		record(verifications.VerdictVerified, daysAgo(6)),
		record(verifications.VerdictVerified, daysAgo(7)),
		record(verifications.VerdictVerified, daysAgo(30)),
	}

	result := insights.Summarize(now, 7, records)

	// exactly now-6d is included (inclusive lower bound); older records are not
	if result.Summary.TotalChecks != 2 {
		t.Errorf("totalChecks = %d, want 2", result.Summary.TotalChecks)
	}
}

func TestSummarizeBucketsOldestFirst(t *testing.T) {
	records := []verifications.Verification{
		record(verifications.VerdictVerified, daysAgo(6)),
		record(verifications.VerdictUnclear, daysAgo(6)),
		record(verifications.VerdictVerified, daysAgo(0)),
	}

	result := insights.Summarize(now, 7, records)

	if len(result.Weekly) != 7 {
		t.Fatalf("weekly buckets = %d, want 7", len(result.Weekly))
	}

	if result.Weekly[0].Count != 2 {
		t.Errorf("oldest bucket count = %d, want 2", result.Weekly[0].Count)
	}
	if result.Weekly[6].Count != 1 {
		t.Errorf("newest bucket count = %d, want 1", result.Weekly[6].Count)
	}

	for i, bucket := range result.Weekly {
		want := daysAgo(6 - i).Format("02")
		if bucket.Day != want {
			t.Errorf("bucket %d day = %s, want %s", i, bucket.Day, want)
		}
	}
}

func TestSummarizeIgnoresInsertionOrder(t *testing.T) {
	ordered := []verifications.Verification{
		record(verifications.VerdictVerified, daysAgo(0)),
		record(verifications.VerdictVerified, daysAgo(1)),
		record(verifications.VerdictUnclear, daysAgo(2)),
	}
	shuffled := []verifications.Verification{ordered[2], ordered[0], ordered[1]}

	a := insights.Summarize(now, 7, ordered)
	b := insights.Summarize(now, 7, shuffled)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("summaries differ by insertion order: %+v vs %+v", a, b)
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	records := []verifications.Verification{
		record(verifications.VerdictVerified, daysAgo(0)),
		record(verifications.VerdictNotVerified, daysAgo(3)),
	}

	a := insights.Summarize(now, 7, records)
	b := insights.Summarize(now, 7, records)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated summarize differs: %+v vs %+v", a, b)
	}
}

func TestSummarizeCustomWindow(t *testing.T) {
	records := []verifications.Verification{
		record(verifications.VerdictVerified, daysAgo(0)),
		record(verifications.VerdictVerified, daysAgo(10)),
	}

	result := insights.Summarize(now, 14, records)

	if len(result.Weekly) != 14 {
		t.Fatalf("buckets = %d, want 14", len(result.Weekly))
	}
	if result.Summary.TotalChecks != 2 {
		t.Errorf("totalChecks = %d, want 2", result.Summary.TotalChecks)
	}
}

func TestSummarizeUTCBucketing(t *testing.T) {
	// a record stored with a non-UTC zone buckets by its UTC date
	est := time.FixedZone("EST", -5*3600)
	records := []verifications.Verification{
		// 23:00 EST yesterday is 04:00 UTC today
		record(verifications.VerdictVerified, time.Date(2026, 8, 23, 23, 0, 0, 0, est)),
	}

	result := insights.Summarize(now, 7, records)

	if result.Weekly[6].Count != 1 {
		t.Errorf("today's bucket count = %d, want 1", result.Weekly[6].Count)
	}
	if result.Summary.Streak != 1 {
		t.Errorf("streak = %d, want 1", result.Summary.Streak)
	}
}
