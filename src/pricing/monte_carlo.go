package pricing

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jiaming2012/option-pricer/src/models"
)

// MonteCarloPricer estimates option prices by simulating geometric Brownian
// motion paths. Each pricer owns its own seeded normal source, so pricers with
// distinct seeds can run concurrently and a fixed seed reproduces the batch.
type MonteCarloPricer struct {
	normal distuv.Normal
}

func NewMonteCarloPricer(seed uint64) *MonteCarloPricer {
	return &MonteCarloPricer{
		normal: distuv.Normal{
			Mu:    0,
			Sigma: 1,
			Src:   rand.NewSource(seed),
		},
	}
}

// Price runs one simulation batch and reduces it to the four discounted
// option-price estimates. Plain Monte Carlo: no antithetic sampling, no
// control variates, no internal convergence check.
func (m *MonteCarloPricer) Price(p models.PricingParams) (models.PriceQuote, error) {
	if err := p.Validate(); err != nil {
		return models.PriceQuote{}, fmt.Errorf("MonteCarloPricer.Price: invalid params: %w", err)
	}

	h := p.StepSize()
	driftTerm := (p.Rate - 0.5*p.Sigma*p.Sigma) * h
	volTerm := p.Sigma * math.Sqrt(h)

	prices := make([]float64, p.Paths)
	sums := make([]float64, p.Paths)
	for i := range prices {
		prices[i] = p.Spot
	}

	for step := 0; step < p.Days; step++ {
		for i := range prices {
			z := m.normal.Rand()
			prices[i] *= math.Exp(driftTerm + volTerm*z)
			sums[i] += prices[i]
		}
	}

	euroCalls := make([]float64, p.Paths)
	euroPuts := make([]float64, p.Paths)
	asianCalls := make([]float64, p.Paths)
	asianPuts := make([]float64, p.Paths)

	for i := range prices {
		terminal := prices[i]
		average := sums[i] / float64(p.Days)

		euroCalls[i] = math.Max(0, terminal-p.Strike)
		euroPuts[i] = math.Max(0, p.Strike-terminal)
		asianCalls[i] = math.Max(0, average-p.Strike)
		asianPuts[i] = math.Max(0, p.Strike-average)
	}

	discount := math.Exp(-p.Rate * p.Horizon())

	quote := models.PriceQuote{}
	for _, payoff := range []struct {
		samples []float64
		out     *float64
	}{
		{euroCalls, &quote.EuropeanCall},
		{euroPuts, &quote.EuropeanPut},
		{asianCalls, &quote.AsianCall},
		{asianPuts, &quote.AsianPut},
	} {
		mean, err := stats.Mean(payoff.samples)
		if err != nil {
			return models.PriceQuote{}, fmt.Errorf("MonteCarloPricer.Price: failed to calculate mean payoff: %v", err)
		}

		*payoff.out = mean * discount
	}

	return quote, nil
}
