package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/confint/interval"
	"github.com/katalvlaran/confint/quantile"
)

func TestMultiplier_Delegation(t *testing.T) {
	t.Parallel()

	// interval.Multiplier and quantile.Multiplier are the same policy.
	got, err := interval.Multiplier(25, 0.95)
	require.NoError(t, err)
	want, err := quantile.Multiplier(25, 0.95)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.InDelta(t, 2.063899, got, 1e-6)

	got, err = interval.Multiplier(659, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 1.959964, got, 1e-6)
}

func TestMeanAtLevel_ComposesPolicy(t *testing.T) {
	t.Parallel()

	got, err := interval.MeanAtLevel(cartwheel, 0.95)
	require.NoError(t, err)

	m, err := quantile.Multiplier(len(cartwheel), 0.95)
	require.NoError(t, err)
	want, err := interval.Mean(cartwheel, m)
	require.NoError(t, err)

	assert.Equal(t, want, got, "one-call form must match the explicit composition")

	// Full-precision t*(24) lands a hair inside the printed-table figures.
	assert.InDelta(t, 76.2641, got.Lower, 1e-3)
	assert.InDelta(t, 88.6959, got.Upper, 1e-3)
}

func TestProportionAtLevel_LargeSurvey(t *testing.T) {
	t.Parallel()

	got, err := interval.ProportionAtLevel(surveyYes, surveyTrials, 0.95)
	require.NoError(t, err)

	z, err := quantile.Multiplier(surveyTrials, 0.95)
	require.NoError(t, err)
	want, err := interval.Proportion(surveyYes, surveyTrials, z)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.InDelta(t, 0.8225, got.Lower, 1e-3)
	assert.InDelta(t, 0.8771, got.Upper, 1e-3)
}

func TestProportionAtLevel_SmallSampleUsesT(t *testing.T) {
	t.Parallel()

	// 20 trials sit on the t side of the rule, df = 19.
	got, err := interval.ProportionAtLevel(17, 20, 0.95)
	require.NoError(t, err)

	tStar, err := quantile.Analytic{}.StudentT(0.975, 19)
	require.NoError(t, err)
	want, err := interval.Proportion(17, 20, tStar)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestAtLevel_ErrorSurface(t *testing.T) {
	t.Parallel()

	// Level and size failures carry both the package umbrella and the
	// quantile sentinel that named the cause.
	_, err := interval.MeanAtLevel(cartwheel, 1.2)
	assert.ErrorIs(t, err, interval.ErrInvalidArgument)
	assert.ErrorIs(t, err, quantile.ErrBadLevel)

	_, err = interval.MeanAtLevel([]float64{82.48}, 0.95)
	assert.ErrorIs(t, err, interval.ErrInvalidArgument)
	assert.ErrorIs(t, err, quantile.ErrBadSampleSize)

	_, err = interval.ProportionAtLevel(5, 0, 0.95)
	assert.ErrorIs(t, err, interval.ErrInvalidArgument)
}
