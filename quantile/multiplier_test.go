package quantile_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/confint/quantile"
)

func TestMultiplier_LargeSampleUsesZ(t *testing.T) {
	t.Parallel()

	// 659 respondents in the car-seat survey: well past the z threshold.
	m, err := quantile.Multiplier(659, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 1.959963984540054, m, 1e-9)
	assert.InDelta(t, 1.96, m, 5e-3, "matches the rounded classroom constant")
}

func TestMultiplier_SmallSampleUsesT(t *testing.T) {
	t.Parallel()

	// 25 cartwheel distances: t with 24 degrees of freedom.
	m, err := quantile.Multiplier(25, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 2.0638985616280205, m, 1e-8)
	assert.InDelta(t, 2.064, m, 1e-3, "matches the printed t-table entry")
}

func TestMultiplier_ThresholdBoundary(t *testing.T) {
	t.Parallel()

	// n=30 is still small (t, df=29); n=31 switches to z.
	m30, err := quantile.Multiplier(30, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 2.045229642132703, m30, 1e-8)

	m31, err := quantile.Multiplier(31, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 1.959963984540054, m31, 1e-9)

	assert.Greater(t, m30, m31, "the t side of the cut is the wider one")
}

func TestMultiplier_OtherLevels(t *testing.T) {
	t.Parallel()

	m, err := quantile.Multiplier(100, 0.90)
	require.NoError(t, err)
	assert.InDelta(t, 1.6448536269514722, m, 1e-9)

	m, err = quantile.Multiplier(100, 0.99)
	require.NoError(t, err)
	assert.InDelta(t, 2.5758293035489004, m, 1e-9)

	// Wider level, wider multiplier.
	m90, err := quantile.Multiplier(25, 0.90)
	require.NoError(t, err)
	m99, err := quantile.Multiplier(25, 0.99)
	require.NoError(t, err)
	assert.Greater(t, m99, m90)
}

func TestMultiplier_BadLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		_, err := quantile.Multiplier(25, level)
		assert.ErrorIs(t, err, quantile.ErrBadLevel, "level=%v must be rejected", level)
	}
}

func TestMultiplier_BadSampleSize(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 0, -5} {
		_, err := quantile.Multiplier(n, 0.95)
		assert.ErrorIs(t, err, quantile.ErrBadSampleSize, "n=%d must be rejected", n)
	}
}

func TestMultiplierWith_Providers(t *testing.T) {
	t.Parallel()

	// The printed table returns its three-decimal entry verbatim.
	m, err := quantile.MultiplierWith(quantile.Table{}, 25, 0.95)
	require.NoError(t, err)
	assert.Equal(t, 2.064, m)

	m, err = quantile.MultiplierWith(quantile.Table{}, 659, 0.95)
	require.NoError(t, err)
	assert.Equal(t, 1.960, m)

	// go-moremath lands on the same quantiles as the analytic provider.
	m, err = quantile.MultiplierWith(quantile.MoreMath{}, 659, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 1.959963984540054, m, 1e-8)

	_, err = quantile.MultiplierWith(nil, 25, 0.95)
	assert.ErrorIs(t, err, quantile.ErrNilProvider)
}

func TestMultiplier_ClassroomConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.645, quantile.Z90)
	assert.Equal(t, 1.960, quantile.Z95)
	assert.Equal(t, 2.576, quantile.Z99)
}
