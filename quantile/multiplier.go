package quantile

// Multiplier returns the two-sided critical value for a confidence interval
// around a sample mean: the quantile of order (1+level)/2 of the standard
// normal distribution when n > 30, and of Student's t with n-1 degrees of
// freedom otherwise. level is the confidence level, e.g. 0.95.
//
// Multiplier(659, 0.95) ≈ 1.960 (z), Multiplier(25, 0.95) ≈ 2.064 (t, df 24).
//
// Quantiles come from the Analytic provider; use MultiplierWith to swap in
// Table or MoreMath.
func Multiplier(n int, level float64) (float64, error) {
	return MultiplierWith(Analytic{}, n, level)
}

// MultiplierWith is Multiplier with an explicit quantile Provider.
func MultiplierWith(prov Provider, n int, level float64) (float64, error) {
	if prov == nil {
		return 0, ErrNilProvider
	}
	if !(level > 0 && level < 1) {
		return 0, ErrBadLevel
	}
	if n < 2 {
		return 0, ErrBadSampleSize
	}

	p := (1 + level) / 2
	if n > smallSampleMax {
		return prov.Normal(p)
	}
	return prov.StudentT(p, float64(n-1))
}
