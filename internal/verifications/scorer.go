package verifications

import (
	"math"
	"math/rand/v2"
	"time"
)

// Scoring heuristic constants. These are placeholder values carried over
// for wire compatibility; larger payloads score higher, jitter keeps
// repeated submissions from producing identical confidences.
const (
	baseFloor   = 0.45
	baseCeil    = 0.98
	sizeDivisor = 500000.0

	jitterBound = 0.07

	confidenceFloor = 0.30
	confidenceCeil  = 0.99

	verifiedThreshold = 0.75
	unclearThreshold  = 0.55
)

// Clock supplies the current time. Injected so scoring tests can pin
// the submission timestamp.
type Clock func() time.Time

// Jitter supplies one random sample in [-0.07, 0.07]. Injected so
// scoring tests can assert exact confidences.
type Jitter func() float64

func defaultJitter() float64 {
	return -jitterBound + rand.Float64()*2*jitterBound
}

// Score converts a payload size hint and one jitter sample into a verdict
// and confidence. The confidence is rounded to 2 decimal places and always
// lies in [0.30, 0.99]; the verdict is a pure function of the confidence.
func Score(sizeHint int, jitter float64) (string, float64) {
	base := clamp(baseFloor+float64(sizeHint)/sizeDivisor, baseFloor, baseCeil)
	confidence := clamp(round2(base+jitter), confidenceFloor, confidenceCeil)
	return Classify(confidence), confidence
}

// Classify maps a confidence value to its verdict.
func Classify(confidence float64) string {
	switch {
	case confidence > verifiedThreshold:
		return VerdictVerified
	case confidence > unclearThreshold:
		return VerdictUnclear
	default:
		return VerdictNotVerified
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
