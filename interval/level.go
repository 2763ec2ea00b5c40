package interval

import (
	"fmt"

	"github.com/katalvlaran/confint/quantile"
)

// Multiplier returns the two-sided critical value for a sample of size n at
// the given confidence level: the standard normal quantile for n > 30,
// Student's t with n−1 degrees of freedom otherwise. It delegates to
// quantile.Multiplier so interval callers need only one import.
func Multiplier(n int, level float64) (float64, error) {
	return quantile.Multiplier(n, level)
}

// MeanAtLevel composes Multiplier and Mean: the confidence interval for a
// population mean at the given level, with the z-versus-t decision made
// from len(xs). This is the one-call form of the usual worked example.
//
// A bad level or sample size surfaces as ErrInvalidArgument wrapping the
// quantile sentinel that named it, so both errors.Is checks hold.
func MeanAtLevel(xs []float64, level float64) (Interval, error) {
	m, err := Multiplier(len(xs), level)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return Mean(xs, m)
}

// ProportionAtLevel composes Multiplier and Proportion, choosing the
// critical value from the number of trials. Surveys large enough for the
// Wald approximation land on the z branch; tiny ones get t, matching the
// same n > 30 rule the mean path uses.
func ProportionAtLevel(successes, trials int, level float64) (Interval, error) {
	m, err := Multiplier(trials, level)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return Proportion(successes, trials, m)
}
