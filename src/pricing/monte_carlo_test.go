package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/option-pricer/src/models"
)

func TestMonteCarloPricerValidation(t *testing.T) {
	pricer := NewMonteCarloPricer(42)

	base := models.PricingParams{
		Spot:   100,
		Strike: 100,
		Sigma:  0.2,
		Rate:   0.05,
		Days:   10,
		Paths:  100,
	}

	t.Run("valid params", func(t *testing.T) {
		_, err := pricer.Price(base)
		assert.NoError(t, err)
	})

	t.Run("non-positive spot", func(t *testing.T) {
		p := base
		p.Spot = 0
		_, err := pricer.Price(p)
		assert.ErrorIs(t, err, models.NonPositiveSpotErr)
	})

	t.Run("non-positive strike", func(t *testing.T) {
		p := base
		p.Strike = -5
		_, err := pricer.Price(p)
		assert.ErrorIs(t, err, models.NonPositiveStrikeErr)
	})

	t.Run("negative sigma", func(t *testing.T) {
		p := base
		p.Sigma = -0.1
		_, err := pricer.Price(p)
		assert.ErrorIs(t, err, models.NegativeSigmaErr)
	})

	t.Run("non-positive days", func(t *testing.T) {
		p := base
		p.Days = 0
		_, err := pricer.Price(p)
		assert.ErrorIs(t, err, models.NonPositiveDaysErr)
	})

	t.Run("non-positive paths", func(t *testing.T) {
		p := base
		p.Paths = 0
		_, err := pricer.Price(p)
		assert.ErrorIs(t, err, models.NonPositivePathsErr)
	})
}

func TestMonteCarloPricerNonNegativeQuotes(t *testing.T) {
	quote, err := NewMonteCarloPricer(7).Price(models.PricingParams{
		Spot:   100,
		Strike: 110,
		Sigma:  0.3,
		Rate:   0.02,
		Days:   32,
		Paths:  5000,
	})

	require.NoError(t, err)

	assert.GreaterOrEqual(t, quote.EuropeanCall, 0.0)
	assert.GreaterOrEqual(t, quote.EuropeanPut, 0.0)
	assert.GreaterOrEqual(t, quote.AsianCall, 0.0)
	assert.GreaterOrEqual(t, quote.AsianPut, 0.0)
}

func TestMonteCarloPricerZeroSigmaIsDeterministic(t *testing.T) {
	params := models.PricingParams{
		Spot:   100,
		Strike: 90,
		Sigma:  0,
		Rate:   0.05,
		Days:   30,
		Paths:  16,
	}

	quote, err := NewMonteCarloPricer(1).Price(params)
	require.NoError(t, err)

	h := 1.0 / float64(params.Days)
	discount := math.Exp(-params.Rate)
	terminal := params.Spot * math.Exp(params.Rate)

	sum := 0.0
	for k := 1; k <= params.Days; k++ {
		sum += params.Spot * math.Exp(params.Rate*h*float64(k))
	}
	average := sum / float64(params.Days)

	assert.InDelta(t, discount*(terminal-params.Strike), quote.EuropeanCall, 1e-9)
	assert.InDelta(t, 0.0, quote.EuropeanPut, 1e-9)
	assert.InDelta(t, discount*(average-params.Strike), quote.AsianCall, 1e-9)
	assert.InDelta(t, 0.0, quote.AsianPut, 1e-9)

	// zero variance: a different seed must yield the identical quote
	quote2, err := NewMonteCarloPricer(99).Price(params)
	require.NoError(t, err)
	assert.Equal(t, quote, quote2)
}

func TestMonteCarloPricerSameSeedReproduces(t *testing.T) {
	params := models.PricingParams{
		Spot:   100,
		Strike: 105,
		Sigma:  0.25,
		Rate:   0.03,
		Days:   16,
		Paths:  2000,
	}

	quote1, err := NewMonteCarloPricer(1234).Price(params)
	require.NoError(t, err)

	quote2, err := NewMonteCarloPricer(1234).Price(params)
	require.NoError(t, err)

	assert.Equal(t, quote1, quote2)
}

func TestMonteCarloPricerPutCallParity(t *testing.T) {
	params := models.PricingParams{
		Spot:   100,
		Strike: 100,
		Sigma:  0.25,
		Rate:   0.05,
		Days:   64,
		Paths:  100000,
	}

	quote, err := NewMonteCarloPricer(42).Price(params)
	require.NoError(t, err)

	parity := params.Spot - params.Strike*math.Exp(-params.Rate*params.Horizon())
	assert.InDelta(t, parity, quote.EuropeanCall-quote.EuropeanPut, 0.5)
}

func TestMonteCarloPricerStrikeMonotonicity(t *testing.T) {
	strikes := []float64{80, 90, 100, 110, 120}

	var prevCall, prevPut, prevAsianCall, prevAsianPut float64
	for i, strike := range strikes {
		// same seed per strike so every pricing sees the identical paths
		quote, err := NewMonteCarloPricer(7).Price(models.PricingParams{
			Spot:   100,
			Strike: strike,
			Sigma:  0.2,
			Rate:   0.05,
			Days:   16,
			Paths:  20000,
		})

		require.NoError(t, err)

		if i > 0 {
			assert.LessOrEqual(t, quote.EuropeanCall, prevCall)
			assert.GreaterOrEqual(t, quote.EuropeanPut, prevPut)
			assert.LessOrEqual(t, quote.AsianCall, prevAsianCall)
			assert.GreaterOrEqual(t, quote.AsianPut, prevAsianPut)
		}

		prevCall = quote.EuropeanCall
		prevPut = quote.EuropeanPut
		prevAsianCall = quote.AsianCall
		prevAsianPut = quote.AsianPut
	}
}

func TestMonteCarloPricerMatchesBlackScholes(t *testing.T) {
	params := models.PricingParams{
		Spot:   100,
		Strike: 100,
		Sigma:  0.2,
		Rate:   0.05,
		Days:   64,
		Paths:  200000,
	}

	quote, err := NewMonteCarloPricer(314159).Price(params)
	require.NoError(t, err)

	expectedCall := BlackScholesCall(params.Spot, params.Strike, params.Sigma, params.Rate, params.Horizon())
	expectedPut := BlackScholesPut(params.Spot, params.Strike, params.Sigma, params.Rate, params.Horizon())

	assert.InDelta(t, expectedCall, quote.EuropeanCall, 0.25)
	assert.InDelta(t, expectedPut, quote.EuropeanPut, 0.25)
}

func TestMonteCarloPricerTwoSeedAgreement(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 2x200k-path simulation in short mode")
	}

	params := models.PricingParams{
		Spot:   100,
		Strike: 100,
		Sigma:  0.25,
		Rate:   0.05,
		Days:   260,
		Paths:  200000,
	}

	quote1, err := NewMonteCarloPricer(1).Price(params)
	require.NoError(t, err)

	quote2, err := NewMonteCarloPricer(2).Price(params)
	require.NoError(t, err)

	relDiff := math.Abs(quote1.EuropeanCall-quote2.EuropeanCall) / quote1.EuropeanCall
	assert.Less(t, relDiff, 0.02)
}
