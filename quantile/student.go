// SPDX-License-Identifier: MIT

// Package quantile: Student's t quantiles by CDF inversion.
//
// Purpose:
//   - Evaluate the t CDF through the regularized incomplete beta function
//     I_x(df/2, 1/2) with x = df/(df+t²), then invert it numerically:
//     bracket the quantile by doubling, close in by bisection.
//
// Contracts:
//   - 0 < p < 1 and df finite, df > 0; fractional df is accepted.
//   - Results are antisymmetric around p = 0.5 by explicit reduction, so
//     StudentT(1-p, df) == -StudentT(p, df) exactly.
//
// Complexity:
//   - One CDF evaluation is O(betacf iterations); huge df needs the most,
//     on the order of √df. The inversion runs at most ~1100 bracketing
//     doublings plus 200 bisection steps.

package quantile

import "math"

// Numeric guards for the Lentz continued fraction and the inversion loop.
const (
	betaEps      = 1e-14
	betaFPMin    = 1e-300
	betaMaxIter  = 2000
	bisectEps    = 1e-13
	bisectSteps  = 200
	bracketSteps = 1100
)

// StudentT returns the quantile of order p of Student's t distribution with
// df degrees of freedom.
func (Analytic) StudentT(p float64, df float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	if err := checkDF(df); err != nil {
		return 0, err
	}

	// Stage 1: symmetry reduction. The distribution is symmetric around
	// zero, so only upper-half orders need the numeric inversion.
	switch {
	case p == 0.5:
		return 0, nil
	case p < 0.5:
		x, err := invertCDF(func(t float64) float64 { return tCDF(t, df) }, 1-p)
		return -x, err
	default:
		return invertCDF(func(t float64) float64 { return tCDF(t, df) }, p)
	}
}

// tCDF is P(T ≤ t) for Student's t with df degrees of freedom, via the
// regularized incomplete beta function.
func tCDF(t, df float64) float64 {
	if t == 0 {
		return 0.5
	}
	x := df / (df + t*t)
	ib := regIncBeta(df/2, 0.5, x)
	if t > 0 {
		return 1 - 0.5*ib
	}
	return 0.5 * ib
}

// invertCDF solves cdf(x) = p for a continuous, strictly increasing cdf.
// Shared by the Analytic and MoreMath t implementations.
func invertCDF(cdf func(float64) float64, p float64) (float64, error) {
	// Stage 1: bracket the root by doubling outward from [-1, 1].
	lo, hi := -1.0, 1.0
	for i := 0; cdf(hi) < p; i++ {
		if i == bracketSteps {
			return 0, ErrNoConverge
		}
		lo = hi
		hi *= 2
	}
	for i := 0; cdf(lo) > p; i++ {
		if i == bracketSteps {
			return 0, ErrNoConverge
		}
		hi = lo
		lo *= 2
	}

	// Stage 2: bisect until the bracket collapses.
	for i := 0; i < bisectSteps; i++ {
		mid := 0.5 * (lo + hi)
		c := cdf(mid)
		if math.IsNaN(c) {
			return 0, ErrNoConverge
		}
		if c < p {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= bisectEps*(1+math.Abs(lo)+math.Abs(hi)) {
			break
		}
	}
	return 0.5 * (lo + hi), nil
}

// regIncBeta is the regularized incomplete beta function I_x(a, b),
// evaluated through the continued fraction that converges fastest for the
// given x (Lentz's method on one side or the other of the split point).
func regIncBeta(a, b, x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	// ln of the prefactor x^a (1-x)^b / B(a, b).
	lbeta := lgamma(a+b) - lgamma(a) - lgamma(b)
	front := math.Exp(lbeta + a*math.Log(x) + b*math.Log1p(-x))
	if x < (a+1)/(a+b+2) {
		return front * betacf(a, b, x) / a
	}
	return 1 - front*betacf(b, a, 1-x)/b
}

// betacf evaluates the continued fraction for the incomplete beta function
// by the modified Lentz algorithm.
func betacf(a, b, x float64) float64 {
	qab := a + b
	qap := a + 1
	qam := a - 1

	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < betaFPMin {
		d = betaFPMin
	}
	d = 1 / d
	h := d

	for m := 1; m <= betaMaxIter; m++ {
		fm := float64(m)
		m2 := 2 * fm

		// Even step.
		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < betaFPMin {
			d = betaFPMin
		}
		c = 1 + aa/c
		if math.Abs(c) < betaFPMin {
			c = betaFPMin
		}
		d = 1 / d
		h *= d * c

		// Odd step.
		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < betaFPMin {
			d = betaFPMin
		}
		c = 1 + aa/c
		if math.Abs(c) < betaFPMin {
			c = betaFPMin
		}
		d = 1 / d
		del := d * c
		h *= del

		if math.Abs(del-1) < betaEps {
			break
		}
	}
	return h
}

// lgamma drops the sign math.Lgamma reports; all arguments here are > 0.
func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
