package verifications_test

import (
	"math"
	"testing"

	"github.com/attest-io/attest/internal/verifications"
)

func TestScoreBaseConfidence(t *testing.T) {
	tests := []struct {
		name     string
		sizeHint int
		want     float64
	}{
		{"empty payload floors at 0.45", 0, 0.45},
		{"small payload", 5000, 0.46},
		{"mid payload", 100000, 0.65},
		{"boundary payload lands on 0.75", 150000, 0.75},
		{"large payload", 250000, 0.95},
		{"oversized payload ceils at 0.98", 500000, 0.98},
		{"huge payload still ceils at 0.98", 5000000, 0.98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := verifications.Score(tt.sizeHint, 0)
			if got != tt.want {
				t.Errorf("Score(%d, 0) confidence = %v, want %v", tt.sizeHint, got, tt.want)
			}
		})
	}
}

func TestScoreVerdicts(t *testing.T) {
	tests := []struct {
		name     string
		sizeHint int
		jitter   float64
		want     string
	}{
		{"empty payload zero jitter", 0, 0, verifications.VerdictNotVerified},
		{"confidence exactly 0.55 falls low", 50000, 0, verifications.VerdictNotVerified},
		{"just above 0.55 is unclear", 55000, 0, verifications.VerdictUnclear},
		{"confidence exactly 0.75 is unclear", 150000, 0, verifications.VerdictUnclear},
		{"just above 0.75 is verified", 155000, 0, verifications.VerdictVerified},
		{"jitter pushes over threshold", 150000, 0.01, verifications.VerdictVerified},
		{"jitter pulls under threshold", 150000, -0.25, verifications.VerdictNotVerified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, _ := verifications.Score(tt.sizeHint, tt.jitter)
			if verdict != tt.want {
				t.Errorf("Score(%d, %v) verdict = %s, want %s", tt.sizeHint, tt.jitter, verdict, tt.want)
			}
		})
	}
}

func TestScoreConfidenceBounds(t *testing.T) {
	jitters := []float64{-0.3, -0.07, -0.033, 0, 0.033, 0.07, 0.3}
	sizes := []int{0, 1, 999, 150000, 500000, 10000000}

	for _, size := range sizes {
		for _, jitter := range jitters {
			_, conf := verifications.Score(size, jitter)

			if conf < 0.30 || conf > 0.99 {
				t.Errorf("Score(%d, %v) confidence = %v, outside [0.30, 0.99]", size, jitter, conf)
			}

			if rounded := math.Round(conf*100) / 100; rounded != conf {
				t.Errorf("Score(%d, %v) confidence = %v, not rounded to 2 decimal places", size, jitter, conf)
			}
		}
	}
}

func TestScoreRounding(t *testing.T) {
	// base 0.45 + 0.033 = 0.483, rounds to 0.48
	_, conf := verifications.Score(0, 0.033)
	if conf != 0.48 {
		t.Errorf("confidence = %v, want 0.48", conf)
	}

	// base 0.45 + 0.065 = 0.515, rounds to 0.52
	_, conf = verifications.Score(0, 0.065)
	if conf != 0.52 {
		t.Errorf("confidence = %v, want 0.52", conf)
	}
}

func TestScoreFloorClamp(t *testing.T) {
	// out-of-range jitter exercises the lower clamp
	_, conf := verifications.Score(0, -0.2)
	if conf != 0.30 {
		t.Errorf("confidence = %v, want 0.30", conf)
	}
}

func TestEmptyPayloadNeverVerified(t *testing.T) {
	// max confidence for an empty payload is 0.45 + 0.07 = 0.52 < 0.55
	for jitter := -0.07; jitter <= 0.07; jitter += 0.001 {
		verdict, conf := verifications.Score(0, jitter)
		if verdict == verifications.VerdictVerified {
			t.Fatalf("empty payload scored Verified at jitter %v (confidence %v)", jitter, conf)
		}
		if verdict == verifications.VerdictUnclear {
			t.Fatalf("empty payload scored Unclear at jitter %v (confidence %v)", jitter, conf)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	rank := map[string]int{
		verifications.VerdictNotVerified: 0,
		verifications.VerdictUnclear:     1,
		verifications.VerdictVerified:    2,
	}

	prev := -1
	for c := 0.30; c <= 0.99; c += 0.01 {
		conf := math.Round(c*100) / 100
		got := rank[verifications.Classify(conf)]
		if got < prev {
			t.Fatalf("classification rank decreased at confidence %v", conf)
		}
		prev = got
	}
}
