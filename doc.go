// Package confint is a small, exact toolbox for interval estimation:
// confidence intervals for population proportions and population means,
// computed the way statistics courses teach them and verified against an
// independent implementation.
//
// 🚀 What is confint?
//
// Four sibling packages, each with one job:
//
//	summary/  - sample reductions: N, mean, SD, variance, SE, df, min, max
//	quantile/ - confidence multipliers: Analytic, Table and MoreMath providers
//	interval/ - the estimators: Proportion (Wald and Wilson), Mean, and the
//	            summary-statistics path New/FromSummary
//	dataset/  - CSV column extraction feeding []float64 into the core
//
// A confidence interval is always the same picture:
//
//	            margin = multiplier · SE
//	          ┌───────────┴───────────┐
//	  ────────●───────────────────────●────────
//	        Lower        p̂, x̄       Upper
//
// ✨ Why choose confint?
//
//   - Textbook-faithful: exact division for p̂, unbiased (n−1) spread, the
//     n > 30 z-versus-t rule, and no silent clamping of Wald bounds.
//   - Error-honest: every invalid input is a sentinel error matched with
//     errors.Is; degenerate (zero-SE) results are valid point intervals
//     reported by Interval.IsPoint.
//   - Verifiable: three quantile providers (closed form, printed table,
//     go-moremath) that the test suite plays against each other.
//   - Pure and concurrent-safe: no shared state anywhere, so calls from
//     multiple goroutines need no locking.
//
// Start with interval.MeanAtLevel or interval.ProportionAtLevel; drop down
// to the explicit-multiplier forms when reproducing a worked example. The
// examples/ directory walks complete scenarios with real data.
package confint
