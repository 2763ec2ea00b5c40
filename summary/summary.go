// SPDX-License-Identifier: MIT
// Package summary: sample reductions for interval estimation.
//
// Purpose:
//   - Turn a raw []float64 sample into the scalar summary statistics used by
//     confidence-interval construction (point estimate, spread, standard error).
//   - Centralize the numeric policy: Kahan-compensated mean, corrected
//     two-pass sample variance (Bessel, n−1), strict finiteness checks.
//
// Exposed API:
//   - Mean(xs)      -> (float64, error)   // n ≥ 1
//   - Variance(xs)  -> (float64, error)   // n ≥ 2, unbiased
//   - StdDev(xs)    -> (float64, error)   // sqrt(Variance)
//   - Summarize(xs) -> (Summary, error)   // n ≥ 2, full bundle
//
// Determinism & Performance:
//   - Fixed left-to-right traversal for all accumulations.
//   - No allocations beyond the returned value; inputs never mutated.

package summary

import (
	"errors"
	"math"
)

// Sentinel errors for summary reductions.
var (
	// ErrEmptySample indicates a reduction that needs at least one observation.
	ErrEmptySample = errors.New("summary: sample must contain at least one observation")

	// ErrTooFewObservations indicates a variance-based reduction on n < 2
	// (the unbiased sample standard deviation is undefined there).
	ErrTooFewObservations = errors.New("summary: sample must contain at least two observations")

	// ErrNonFinite indicates a NaN or ±Inf observation in the input.
	ErrNonFinite = errors.New("summary: NaN or Inf observation encountered")
)

// Summary bundles the derived scalar statistics of one sample.
// It is the Go binding of the classic "point estimate + spread" pair:
// Mean is the point estimate, StdErr its estimated sampling deviation,
// DF the degrees of freedom used by Student-t multipliers.
type Summary struct {
	// N is the number of observations.
	N int
	// DF is N−1, the degrees of freedom of the unbiased variance.
	DF int
	// Mean is the arithmetic mean (compensated summation).
	Mean float64
	// Variance is the unbiased sample variance (n−1 divisor).
	Variance float64
	// StdDev is sqrt(Variance).
	StdDev float64
	// StdErr is StdDev / sqrt(N), the standard error of the mean.
	StdErr float64
	// Min and Max are the sample extremes.
	Min float64
	Max float64
}

// Mean returns the arithmetic mean of xs using Kahan-compensated summation.
//
// Errors:
//   - ErrEmptySample when len(xs) == 0.
//   - ErrNonFinite when any observation is NaN or ±Inf.
//
// Complexity: O(n) time, O(1) space.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	if err := checkFinite(xs); err != nil {
		return 0, err
	}

	return kahanMean(xs), nil
}

// Variance returns the unbiased sample variance of xs (n−1 divisor),
// computed with the corrected two-pass algorithm: the residual-sum term
// cancels the rounding error accumulated while centering.
//
// A zero result is valid: it means every observation equals the mean
// (a degenerate but legitimate sample).
//
// Errors:
//   - ErrTooFewObservations when len(xs) < 2.
//   - ErrNonFinite when any observation is NaN or ±Inf.
//
// Complexity: O(n) time, O(1) space.
func Variance(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, ErrTooFewObservations
	}
	if err := checkFinite(xs); err != nil {
		return 0, err
	}

	return centeredVariance(xs, kahanMean(xs)), nil
}

// StdDev returns the unbiased sample standard deviation, sqrt(Variance).
//
// Errors: same as Variance.
//
// Complexity: O(n) time, O(1) space.
func StdDev(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// Summarize reduces xs to a full Summary in two deterministic passes.
//
// Stage 1 validates finiteness and collects Min/Max while accumulating the
// compensated sum; Stage 2 centers on the mean for the variance.
// Summarize requires n ≥ 2 because its purpose is inference: without an
// unbiased spread there is no standard error to report.
//
// Errors:
//   - ErrTooFewObservations when len(xs) < 2.
//   - ErrNonFinite when any observation is NaN or ±Inf.
//
// Complexity: O(n) time, O(1) space.
func Summarize(xs []float64) (Summary, error) {
	n := len(xs)
	if n < 2 {
		return Summary{}, ErrTooFewObservations
	}

	// Stage 1: validate + extremes + compensated sum in one pass.
	var (
		sum, comp float64 // Kahan running sum and compensation
		lo        = xs[0]
		hi        = xs[0]
	)
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Summary{}, ErrNonFinite
		}
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
		y := x - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
	}
	mean := sum / float64(n)

	// Stage 2: corrected two-pass variance around the mean.
	variance := centeredVariance(xs, mean)
	sd := math.Sqrt(variance)

	return Summary{
		N:        n,
		DF:       n - 1,
		Mean:     mean,
		Variance: variance,
		StdDev:   sd,
		StdErr:   sd / math.Sqrt(float64(n)),
		Min:      lo,
		Max:      hi,
	}, nil
}

// kahanMean computes the compensated arithmetic mean of a non-empty,
// finite-checked slice. Callers validate; this helper does not.
func kahanMean(xs []float64) float64 {
	var sum, comp float64
	for _, x := range xs {
		y := x - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
	}

	return sum / float64(len(xs))
}

// centeredVariance computes the unbiased sample variance around mean using
// the corrected two-pass formula (sumSq − residual²/n) / (n−1). The residual
// term is ~0 in exact arithmetic and cancels centering round-off in floats.
// Callers guarantee len(xs) ≥ 2 and finite inputs.
func centeredVariance(xs []float64, mean float64) float64 {
	var sumSq, residual float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
		residual += d
	}
	n := float64(len(xs))

	v := (sumSq - residual*residual/n) / (n - 1)
	if v < 0 {
		// Round-off can push an exactly-zero variance a hair negative.
		v = 0
	}

	return v
}

// checkFinite rejects NaN/±Inf observations.
func checkFinite(xs []float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrNonFinite
		}
	}

	return nil
}
