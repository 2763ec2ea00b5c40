package interval

import (
	"errors"

	"github.com/katalvlaran/confint/summary"
)

// Mean returns the confidence interval x̄ ± multiplier·s/√n for a population
// mean, from the raw observations and a confidence multiplier (z* or t*,
// usually from Multiplier).
//
// The sample needs at least two finite observations so the unbiased sample
// SD exists; validation failures surface as ErrInvalidArgument members. A
// sample with no spread yields a point interval, see Interval.IsPoint.
func Mean(xs []float64, multiplier float64) (Interval, error) {
	if err := checkMultiplier(multiplier); err != nil {
		return Interval{}, err
	}

	s, err := summary.Summarize(xs)
	if err != nil {
		return Interval{}, mapSummaryErr(err)
	}
	return New(s.Mean, s.StdErr, multiplier)
}

// mapSummaryErr rebinds summary's validation sentinels to this package's
// ErrInvalidArgument family, so callers match one error surface regardless
// of which layer rejected the input.
func mapSummaryErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, summary.ErrNonFinite):
		return ErrNonFinite
	default:
		// ErrEmptySample and ErrTooFewObservations both mean the sample is
		// too small for an interval.
		return ErrTooFewObservations
	}
}
