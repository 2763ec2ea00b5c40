package interval

import "math"

// Proportion returns the normal-approximation (Wald) confidence interval
// for a population proportion, given successes out of trials and a
// confidence multiplier (z* or t*, usually from Multiplier).
//
// The estimate is the exact quotient p̂ = successes/trials, never a rounded
// figure, and the margin is multiplier·√(p̂(1−p̂)/trials). The bounds are NOT
// clamped to [0, 1]: for small samples or extreme p̂ the approximation can
// legitimately spill outside the probability range, and silently correcting
// that would hide exactly the weakness the method has there. Use
// ProportionWilson when that matters.
//
// p̂ = 0 or p̂ = 1 makes the standard error zero and the interval collapses
// to a point; that is reported by Interval.IsPoint, not by an error.
func Proportion(successes, trials int, multiplier float64) (Interval, error) {
	if trials <= 0 {
		return Interval{}, ErrNoTrials
	}
	if successes < 0 || successes > trials {
		return Interval{}, ErrSuccessRange
	}
	if err := checkMultiplier(multiplier); err != nil {
		return Interval{}, err
	}

	n := float64(trials)
	p := float64(successes) / n
	se := math.Sqrt(p * (1 - p) / n)
	margin := multiplier * se

	return Interval{Lower: p - margin, Upper: p + margin}, nil
}

// ProportionWilson returns the Wilson score interval for a population
// proportion. It is the standard alternative to Proportion when p̂ sits
// near 0 or 1: the score construction recenters the interval at
//
//	(p̂ + z²/2n) / (1 + z²/n)
//
// and keeps both bounds inside [0, 1]. At p̂ = 0 or p̂ = 1 it stays
// informative where the Wald interval collapses to a point.
//
// For comfortable samples the two methods agree to a few parts in a
// thousand. The two are separate operations; nothing switches between
// them on the caller's behalf.
func ProportionWilson(successes, trials int, multiplier float64) (Interval, error) {
	if trials <= 0 {
		return Interval{}, ErrNoTrials
	}
	if successes < 0 || successes > trials {
		return Interval{}, ErrSuccessRange
	}
	if err := checkMultiplier(multiplier); err != nil {
		return Interval{}, err
	}

	n := float64(trials)
	p := float64(successes) / n
	z2 := multiplier * multiplier
	denom := 1 + z2/n

	center := (p + z2/(2*n)) / denom
	margin := (multiplier / denom) * math.Sqrt(p*(1-p)/n+z2/(4*n*n))

	return Interval{Lower: center - margin, Upper: center + margin}, nil
}
