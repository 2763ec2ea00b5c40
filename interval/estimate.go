package interval

import (
	"math"

	"github.com/katalvlaran/confint/summary"
)

// New builds the interval point ± multiplier·stdErr from already-computed
// summary statistics. This is the path for textbook exercises that hand you
// x̄, SE and a critical value without the raw observations.
//
// point must be finite, stdErr ≥ 0 and finite, multiplier > 0 and finite.
// A zero stdErr yields a point interval, reported via Interval.IsPoint.
func New(point, stdErr, multiplier float64) (Interval, error) {
	if math.IsNaN(point) || math.IsInf(point, 0) {
		return Interval{}, ErrNonFinite
	}
	if math.IsNaN(stdErr) || math.IsInf(stdErr, 0) || stdErr < 0 {
		return Interval{}, ErrBadStdErr
	}
	if err := checkMultiplier(multiplier); err != nil {
		return Interval{}, err
	}

	margin := multiplier * stdErr
	return Interval{Lower: point - margin, Upper: point + margin}, nil
}

// FromSummary builds the mean interval x̄ ± multiplier·SE from a Summary,
// typically one produced by summary.Summarize. The Summary must describe at
// least two observations.
func FromSummary(s summary.Summary, multiplier float64) (Interval, error) {
	if s.N < 2 {
		return Interval{}, ErrTooFewObservations
	}
	return New(s.Mean, s.StdErr, multiplier)
}

// checkMultiplier rejects multipliers that cannot scale a standard error
// into a meaningful margin.
func checkMultiplier(m float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return ErrBadMultiplier
	}
	return nil
}
