// Package summary reduces a finite numeric sample to the scalar statistics
// that interval estimation consumes: count, mean, unbiased standard
// deviation, and the standard error of the mean.
//
// 🚀 What is summary?
//
//	The "dataframe column reduction" step of a classic confidence-interval
//	workflow, as a set of small pure functions:
//	  • Mean        - compensated (Kahan) arithmetic mean
//	  • Variance    - unbiased sample variance (n−1 divisor)
//	  • StdDev      - square root of Variance
//	  • Summarize   - one bundle: N, DF, Mean, Variance, StdDev, StdErr, Min, Max
//
// ✨ Key guarantees:
//   - Deterministic: fixed left-to-right accumulation, no randomness
//   - Stable: compensated summation plus the corrected two-pass variance
//   - Strict: NaN/±Inf observations are rejected, never propagated
//   - Non-mutating: input slices are read, never reordered or resized
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/confint/summary"
//
//	s, err := summary.Summarize(observations)
//	if err != nil {
//	  // handle ErrTooFewObservations or ErrNonFinite
//	}
//	fmt.Println("mean:", s.Mean, "SE:", s.StdErr)
//
// Degenerate samples (all observations identical) are valid: Variance and
// StdErr come out zero and the downstream interval collapses to a point.
// That is reported by the interval package, not treated as an error here.
//
// Performance:
//
//   - Time:   O(n) per reduction (Summarize makes two passes)
//   - Memory: O(1) beyond the input
//
// See example_test.go for runnable examples.
package summary
