package interval

import "fmt"

// Interval is a closed confidence interval [Lower, Upper] around a point
// estimate. For every constructor in this package the bounds are symmetric:
// Lower = estimate − margin and Upper = estimate + margin, so Center
// recovers the estimate and Margin the half-width.
//
// The zero value is the degenerate interval [0, 0].
type Interval struct {
	Lower float64
	Upper float64
}

// Center returns the midpoint of the interval, which for symmetric
// constructions is the original point estimate.
func (iv Interval) Center() float64 {
	return (iv.Lower + iv.Upper) / 2
}

// Width returns Upper − Lower.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// Margin returns the half-width, i.e. multiplier·SE for the constructors
// in this package.
func (iv Interval) Margin() float64 {
	return iv.Width() / 2
}

// Contains reports whether x lies inside the closed interval.
func (iv Interval) Contains(x float64) bool {
	return x >= iv.Lower && x <= iv.Upper
}

// IsPoint reports whether the interval has collapsed to a single value.
// That happens when the standard error is exactly zero: a sample proportion
// of 0 or 1, or a sample with no spread. The estimate is valid but carries
// no uncertainty information, so inspect this flag before interpreting
// coverage.
func (iv Interval) IsPoint() bool {
	return iv.Lower == iv.Upper
}

// String renders the interval as "[lower, upper]" with six significant
// digits, enough to echo any textbook figure.
func (iv Interval) String() string {
	return fmt.Sprintf("[%.6g, %.6g]", iv.Lower, iv.Upper)
}
