// SPDX-License-Identifier: MIT

// Package quantile: shared types, sentinel errors and argument guards.
//
// This file defines the Provider contract implemented by Analytic, Table and
// MoreMath, the classroom z constants, and the validation helpers every
// provider runs before touching numerics.

package quantile

import (
	"errors"
	"math"
)

// Provider yields quantiles of the two reference distributions interval
// construction relies on. Implementations must be stateless value types,
// safe for concurrent use.
type Provider interface {
	// Normal returns the quantile of order p of the standard normal
	// distribution, i.e. the x with Φ(x) = p. p must lie in (0, 1).
	Normal(p float64) (float64, error)

	// StudentT returns the quantile of order p of Student's t distribution
	// with df degrees of freedom. p must lie in (0, 1); df must be a finite
	// value > 0. Non-integer df is legal.
	StudentT(p float64, df float64) (float64, error)
}

// Rounded classroom constants for the most common two-sided confidence
// levels. Use a Provider for full-precision values.
const (
	Z90 = 1.645 // 90% two-sided
	Z95 = 1.960 // 95% two-sided
	Z99 = 2.576 // 99% two-sided
)

// smallSampleMax is the largest sample size still treated as "small":
// Multiplier uses Student's t up to and including this n, and the standard
// normal above it. Matches the n > 30 rule printed in introductory texts.
const smallSampleMax = 30

// Sentinel errors returned by the providers and by Multiplier. Compare with
// errors.Is; messages carry the package prefix for log readability.
var (
	// ErrBadProbability - quantile order outside the open interval (0, 1).
	ErrBadProbability = errors.New("quantile: probability must lie strictly between 0 and 1")

	// ErrBadLevel - confidence level outside the open interval (0, 1).
	ErrBadLevel = errors.New("quantile: confidence level must lie strictly between 0 and 1")

	// ErrBadDegreesOfFreedom - degrees of freedom NaN, infinite, or ≤ 0.
	ErrBadDegreesOfFreedom = errors.New("quantile: degrees of freedom must be a finite value > 0")

	// ErrBadSampleSize - Multiplier needs at least two observations.
	ErrBadSampleSize = errors.New("quantile: sample size must be at least 2")

	// ErrOutsideTable - Table has no printed row or column for the request.
	ErrOutsideTable = errors.New("quantile: value not covered by the printed table")

	// ErrNoConverge - numeric inversion failed to bracket or settle.
	ErrNoConverge = errors.New("quantile: quantile inversion did not converge")

	// ErrNilProvider - MultiplierWith requires a non-nil Provider.
	ErrNilProvider = errors.New("quantile: provider must not be nil")
)

// checkProbability guards a quantile order. NaN fails both comparisons'
// complements, so it is rejected here too.
func checkProbability(p float64) error {
	if !(p > 0 && p < 1) {
		return ErrBadProbability
	}
	return nil
}

// checkDF guards a degrees-of-freedom argument.
func checkDF(df float64) error {
	if math.IsNaN(df) || math.IsInf(df, 0) || df <= 0 {
		return ErrBadDegreesOfFreedom
	}
	return nil
}
