package quantile

import moremath "github.com/aclements/go-moremath/stats"

// MoreMath resolves quantiles through github.com/aclements/go-moremath, an
// implementation derived independently of this package. Its main job is
// cross-verification: tests pit it against Analytic, and callers who already
// depend on go-moremath can stay on a single numeric stack.
//
// Normal quantiles come straight from moremath's inverse CDF. The t
// distribution there exposes only the forward CDF, so StudentT inverts it
// with the same bracketing search Analytic uses.
type MoreMath struct{}

// Normal returns the quantile of order p of the standard normal
// distribution, as computed by go-moremath.
func (MoreMath) Normal(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return moremath.StdNormal.InvCDF(p), nil
}

// StudentT returns the quantile of order p of Student's t distribution with
// df degrees of freedom, inverting go-moremath's CDF numerically.
func (MoreMath) StudentT(p float64, df float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	if err := checkDF(df); err != nil {
		return 0, err
	}

	dist := moremath.TDist{V: df}
	switch {
	case p == 0.5:
		return 0, nil
	case p < 0.5:
		x, err := invertCDF(dist.CDF, 1-p)
		return -x, err
	default:
		return invertCDF(dist.CDF, p)
	}
}
