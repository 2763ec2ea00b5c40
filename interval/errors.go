package interval

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella for every argument-validation failure
// in this package. Each specific sentinel below wraps it, so callers who do
// not care about the exact cause can match just the umbrella:
//
//	if errors.Is(err, interval.ErrInvalidArgument) { ... }
//
// Degenerate but valid inputs (zero standard error) are NOT errors; see
// Interval.IsPoint.
var ErrInvalidArgument = errors.New("interval: invalid argument")

var (
	// ErrNoTrials - a proportion needs at least one trial.
	ErrNoTrials = fmt.Errorf("%w: trials must be positive", ErrInvalidArgument)

	// ErrSuccessRange - successes must lie in [0, trials].
	ErrSuccessRange = fmt.Errorf("%w: successes must lie in [0, trials]", ErrInvalidArgument)

	// ErrTooFewObservations - a mean interval needs n ≥ 2 to estimate spread.
	ErrTooFewObservations = fmt.Errorf("%w: at least two observations required", ErrInvalidArgument)

	// ErrBadMultiplier - the confidence multiplier must be > 0 and finite.
	ErrBadMultiplier = fmt.Errorf("%w: multiplier must be positive and finite", ErrInvalidArgument)

	// ErrBadStdErr - a supplied standard error must be ≥ 0 and finite.
	ErrBadStdErr = fmt.Errorf("%w: standard error must be non-negative and finite", ErrInvalidArgument)

	// ErrNonFinite - NaN or ±Inf has no place in a sample.
	ErrNonFinite = fmt.Errorf("%w: observations must be finite", ErrInvalidArgument)
)
