package quantile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/confint/quantile"
)

func TestTable_KnownEntries(t *testing.T) {
	t.Parallel()

	var tab quantile.Table

	got, err := tab.StudentT(0.975, 24)
	require.NoError(t, err)
	assert.Equal(t, 2.064, got, "the classroom 95% critical value for n=25")

	got, err = tab.StudentT(0.975, 1)
	require.NoError(t, err)
	assert.Equal(t, 12.706, got)

	got, err = tab.StudentT(0.95, 10)
	require.NoError(t, err)
	assert.Equal(t, 1.812, got)

	got, err = tab.StudentT(0.995, 5)
	require.NoError(t, err)
	assert.Equal(t, 4.032, got)
}

func TestTable_ZRow(t *testing.T) {
	t.Parallel()

	var tab quantile.Table

	for level, want := range map[float64]float64{0.90: 1.645, 0.95: 1.960, 0.99: 2.576} {
		got, err := tab.Normal((1 + level) / 2)
		require.NoError(t, err, "level=%v", level)
		assert.Equal(t, want, got, "z at level=%v", level)
	}

	// Lower-tail orders resolve by symmetry.
	got, err := tab.Normal(0.025)
	require.NoError(t, err)
	assert.Equal(t, -1.960, got)
}

func TestTable_OutsideGrid(t *testing.T) {
	t.Parallel()

	var tab quantile.Table

	_, err := tab.StudentT(0.975, 31)
	assert.ErrorIs(t, err, quantile.ErrOutsideTable, "df=31 is not printed")

	_, err = tab.StudentT(0.975, 2.5)
	assert.ErrorIs(t, err, quantile.ErrOutsideTable, "fractional df is not printed")

	_, err = tab.StudentT(0.96, 10)
	assert.ErrorIs(t, err, quantile.ErrOutsideTable, "level 0.92 is not a printed column")

	_, err = tab.Normal(0.9)
	assert.ErrorIs(t, err, quantile.ErrOutsideTable, "level 0.80 is not a printed column")
}

func TestTable_BadArguments(t *testing.T) {
	t.Parallel()

	var tab quantile.Table

	_, err := tab.Normal(0)
	assert.ErrorIs(t, err, quantile.ErrBadProbability)

	_, err = tab.StudentT(0.975, -1)
	assert.ErrorIs(t, err, quantile.ErrBadDegreesOfFreedom)
}

// TestTable_AgreesWithAnalytic sweeps the whole printed grid and checks that
// every three-decimal entry is the correctly rounded analytic quantile.
func TestTable_AgreesWithAnalytic(t *testing.T) {
	t.Parallel()

	var (
		tab quantile.Table
		ana quantile.Analytic
	)
	for _, level := range []float64{0.90, 0.95, 0.99} {
		p := (1 + level) / 2
		for df := 1.0; df <= 30; df++ {
			printed, err := tab.StudentT(p, df)
			require.NoError(t, err)
			exact, err := ana.StudentT(p, df)
			require.NoError(t, err)
			assert.InDelta(t, exact, printed, 5.5e-4, "level=%v df=%v", level, df)
		}

		printedZ, err := tab.Normal(p)
		require.NoError(t, err)
		exactZ, err := ana.Normal(p)
		require.NoError(t, err)
		assert.InDelta(t, exactZ, printedZ, 7.5e-4, "z row, level=%v", level)
	}
}
