package quantile

import "math"

// Table resolves quantiles from the printed two-sided t-table found in
// introductory statistics texts: degrees of freedom 1..30 crossed with
// confidence levels 0.90, 0.95 and 0.99, three decimals each, plus the
// matching z row. Requests off that grid return ErrOutsideTable instead of
// a silently interpolated value.
//
// The quantile order p maps to the printed column through level = 2p - 1:
// the 0.975 column of a one-sided table is the 95% column of a two-sided
// one. Orders below 0.5 resolve by symmetry.
type Table struct{}

// levelEps is the tolerance used when matching a requested level or df
// against the printed grid.
const levelEps = 1e-9

// tableLevels are the printed columns, in the order of the value arrays.
var tableLevels = [3]float64{0.90, 0.95, 0.99}

// zByLevel is the z row of the printed table.
var zByLevel = [3]float64{1.645, 1.960, 2.576}

// Two-sided critical values t*(df) for df = 1..30, one array per column.
var (
	t90 = [30]float64{
		6.314, 2.920, 2.353, 2.132, 2.015, 1.943, 1.895, 1.860, 1.833, 1.812,
		1.796, 1.782, 1.771, 1.761, 1.753, 1.746, 1.740, 1.734, 1.729, 1.725,
		1.721, 1.717, 1.714, 1.711, 1.708, 1.706, 1.703, 1.701, 1.699, 1.697,
	}
	t95 = [30]float64{
		12.706, 4.303, 3.182, 2.776, 2.571, 2.447, 2.365, 2.306, 2.262, 2.228,
		2.201, 2.179, 2.160, 2.145, 2.131, 2.120, 2.110, 2.101, 2.093, 2.086,
		2.080, 2.074, 2.069, 2.064, 2.060, 2.056, 2.052, 2.048, 2.045, 2.042,
	}
	t99 = [30]float64{
		63.657, 9.925, 5.841, 4.604, 4.032, 3.707, 3.499, 3.355, 3.250, 3.169,
		3.106, 3.055, 3.012, 2.977, 2.947, 2.921, 2.898, 2.878, 2.861, 2.845,
		2.831, 2.819, 2.807, 2.797, 2.787, 2.779, 2.771, 2.763, 2.756, 2.750,
	}
)

var tByLevel = [3]*[30]float64{&t90, &t95, &t99}

// Normal returns the z row entry whose column matches the order p.
func (Table) Normal(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	if p < 0.5 {
		z, err := Table{}.Normal(1 - p)
		return -z, err
	}
	col, ok := matchLevel(2*p - 1)
	if !ok {
		return 0, ErrOutsideTable
	}
	return zByLevel[col], nil
}

// StudentT returns the printed t*(df) entry whose column matches the
// order p. df must be one of the printed integer rows 1..30.
func (Table) StudentT(p float64, df float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	if err := checkDF(df); err != nil {
		return 0, err
	}
	if p < 0.5 {
		t, err := Table{}.StudentT(1-p, df)
		return -t, err
	}
	row, ok := matchRow(df)
	if !ok {
		return 0, ErrOutsideTable
	}
	col, ok := matchLevel(2*p - 1)
	if !ok {
		return 0, ErrOutsideTable
	}
	return tByLevel[col][row-1], nil
}

// matchLevel finds the printed column for a two-sided level, if any.
func matchLevel(level float64) (int, bool) {
	for i, l := range tableLevels {
		if math.Abs(level-l) <= levelEps {
			return i, true
		}
	}
	return 0, false
}

// matchRow finds the printed df row, if any. Only integer df 1..30 exist.
func matchRow(df float64) (int, bool) {
	r := math.Round(df)
	if math.Abs(df-r) > levelEps {
		return 0, false
	}
	if r < 1 || r > 30 {
		return 0, false
	}
	return int(r), true
}
