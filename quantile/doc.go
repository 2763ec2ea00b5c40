// Package quantile provides the critical values that turn a standard error
// into a confidence interval: quantiles of the standard normal distribution
// and of Student's t distribution, plus the sample-size policy that decides
// which of the two applies.
//
// Overview:
//
//   - A two-sided interval at confidence level C needs the quantile of order
//     p = (1+C)/2 of a reference distribution: z* for large samples, t* with
//     n-1 degrees of freedom for small ones.
//   - Multiplier implements that policy in one call: it validates the level,
//     inspects the sample size, and returns the matching critical value.
//   - Three Provider implementations cover the usual trade-offs: a closed-form
//     Analytic provider (default), a classroom Table provider restricted to
//     the printed t-table grid, and a MoreMath provider backed by the
//     independent github.com/aclements/go-moremath implementation.
//
// When to use:
//
//   - Call Multiplier(n, level) whenever you need the critical value for a
//     mean interval and want the textbook z-versus-t decision made for you.
//   - Call Analytic.Normal or Analytic.StudentT directly when you already
//     know which distribution applies.
//   - Use Table when results must match a printed t-table digit for digit,
//     and MoreMath when you want a second, independently derived opinion.
//
// Key features:
//
//   - Normal quantiles via the Acklam rational approximation refined by two
//     Halley steps against math.Erfc, accurate to full float64 precision.
//   - Student-t quantiles by numeric inversion of the regularized incomplete
//     beta CDF, bracketed and bisected to ~1e-12.
//   - Fractional degrees of freedom are accepted (Welch-style corrections
//     produce them); the Table provider alone insists on the integer grid.
//   - Z90, Z95 and Z99 expose the three rounded classroom constants.
//
// Error handling (sentinel errors):
//
//   - ErrBadProbability: quantile order outside the open interval (0, 1).
//   - ErrBadLevel:       confidence level outside the open interval (0, 1).
//   - ErrBadDegreesOfFreedom: df is NaN, infinite, or not strictly positive.
//   - ErrBadSampleSize:  Multiplier called with n < 2.
//   - ErrOutsideTable:   Table asked for a df or level it does not print.
//   - ErrNoConverge:     the numeric inversion failed to bracket or settle.
//   - ErrNilProvider:    MultiplierWith called with a nil Provider.
//
// API reference:
//
//	func Multiplier(n int, level float64) (float64, error)
//	func MultiplierWith(prov Provider, n int, level float64) (float64, error)
//
//	type Provider interface {
//	    Normal(p float64) (float64, error)
//	    StudentT(p float64, df float64) (float64, error)
//	}
//
//	Analytic{}  - closed-form quantiles, the package default.
//	Table{}     - printed two-sided t-table (df 1..30, levels 0.90/0.95/0.99).
//	MoreMath{}  - go-moremath distributions, used for cross-verification.
//
// Accuracy:
//
//   - Normal: |Δ| < 1e-13 across p ∈ [1e-12, 1-1e-12] after refinement.
//   - StudentT: |Δ| < 1e-9 for df ≥ 1 at the probabilities intervals use.
//   - Table: exact by construction, three decimals, matching printed tables.
//
// Thread safety:
//
//   - All providers are stateless value types; they are safe for concurrent
//     use from multiple goroutines.
//
// See also:
//
//   - interval: consumes these critical values to build confidence intervals.
//   - summary: produces the standard errors the multipliers scale.
package quantile
