// Package interval builds confidence intervals for population proportions
// and population means from sample data or pre-computed summary statistics.
//
// 📐 What does it compute?
//
//   - Proportion: the normal-approximation (Wald) interval p̂ ± m·SE with
//     SE = √(p̂(1−p̂)/n) for a (successes, trials) pair.
//   - Mean: x̄ ± m·SE with SE = s/√n, s the unbiased sample SD.
//   - New / FromSummary: point ± m·SE straight from summary statistics,
//     when the raw observations are long gone.
//   - ProportionWilson: the Wilson score interval, the usual alternative
//     when p̂ sits near 0 or 1.
//   - Multiplier: the n > 30 rule that picks z or Student-t for you, and
//     the AtLevel variants that apply it in one call.
//
// ✨ Why this package?
//
//   - Faithful to the textbook: exact division for p̂, no hidden rounding,
//     and no clamping of Wald bounds that spill past [0, 1]. What the
//     formula says is what you get.
//   - Honest about degeneracy: p̂ ∈ {0, 1} or an all-identical sample
//     collapses the interval to a point. That is a property of the data,
//     not a failure, so it is reported by Interval.IsPoint, not an error.
//   - Every invalid input is a sentinel error under ErrInvalidArgument,
//     matched with errors.Is. No panics, no NaN bounds.
//
// ⚙️ Typical usage:
//
//	distances := []float64{79, 70, 85 /* ... */}
//	ci, err := interval.MeanAtLevel(distances, 0.95)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ci) // e.g. [76.2641, 88.6959]
//
// Or with an explicit multiplier, the way a worked example quotes it:
//
//	m, _ := interval.Multiplier(len(distances), 0.95) // t*, df = n-1
//	ci, _ = interval.Mean(distances, m)
//
// 🔬 Numeric contract:
//
//   - Lower ≤ Upper always; both bounds finite for valid input.
//   - Bounds are symmetric around the point estimate: Center() returns it,
//     Margin() the half-width m·SE.
//   - Multipliers come from the quantile package (closed-form by default,
//     printed-table and go-moremath providers available).
//
// See summary for the sample reductions, quantile for the critical values,
// and dataset for getting columns out of CSV files.
package interval
