package dispatcher

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-pricer/src/eventpubsub"
	"github.com/jiaming2012/option-pricer/src/executor"
	"github.com/jiaming2012/option-pricer/src/models"
	"github.com/jiaming2012/option-pricer/src/pricing"
)

var NilPriceFuncErr = fmt.Errorf("price function must be set")

// PriceFunc prices one grid point. The seed identifies the task's private
// random stream.
type PriceFunc func(params models.PricingParams, seed uint64) (models.PriceQuote, error)

// MonteCarloPriceFunc is the production PriceFunc: a fresh Monte Carlo pricer
// per task, seeded so that no two tasks share a random stream.
func MonteCarloPriceFunc(params models.PricingParams, seed uint64) (models.PriceQuote, error) {
	return pricing.NewMonteCarloPricer(seed).Price(params)
}

// GridRequest describes one strike x sigma pricing grid run.
type GridRequest struct {
	RunID    string
	Scenario models.ScenarioParams
	Strikes  []float64
	Sigmas   []float64
	BaseSeed uint64
}

// submission tags a handle with the grid coordinate it was submitted for, so
// collection never depends on the executor preserving any ordering.
type submission struct {
	strikeIdx int
	sigmaIdx  int
	handle    executor.Handle[models.PriceQuote]
}

// RunGrid submits one pricing task per (strike, sigma) pair in strike-major
// order, blocks until every task has completed, and assembles the dense
// result grid. Any task failure fails the whole run; a partial grid is never
// returned.
func RunGrid(ctx context.Context, req GridRequest, priceFn PriceFunc, exec executor.Executor[models.PriceQuote]) (*models.ResultGrid, error) {
	if priceFn == nil {
		return nil, fmt.Errorf("RunGrid: %w", NilPriceFuncErr)
	}

	grid, err := models.NewResultGrid(req.Strikes, req.Sigmas)
	if err != nil {
		return nil, fmt.Errorf("RunGrid: %w", err)
	}

	log.Debugf("RunGrid (%s): submitting %d tasks", req.RunID, len(req.Strikes)*len(req.Sigmas))

	var submissions []submission
	taskNo := uint64(0)

	for i, strike := range req.Strikes {
		for j, sigma := range req.Sigmas {
			params := req.Scenario.WithStrikeAndSigma(strike, sigma)
			seed := req.BaseSeed + taskNo
			taskNo++

			handle, err := exec.Submit(ctx, func(ctx context.Context) (models.PriceQuote, error) {
				return priceFn(params, seed)
			})

			if err != nil {
				return nil, fmt.Errorf("RunGrid: failed to submit task for cell (%v, %v): %w", i, j, err)
			}

			submissions = append(submissions, submission{
				strikeIdx: i,
				sigmaIdx:  j,
				handle:    handle,
			})
		}
	}

	handles := make([]executor.Handle[models.PriceQuote], 0, len(submissions))
	for _, s := range submissions {
		handles = append(handles, s.handle)
	}

	if err := executor.WaitAll(ctx, handles); err != nil {
		return nil, fmt.Errorf("RunGrid: %w", err)
	}

	for _, s := range submissions {
		quote, err := s.handle.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("RunGrid: task for cell (%v, %v) failed: %w", s.strikeIdx, s.sigmaIdx, err)
		}

		if err := grid.Set(s.strikeIdx, s.sigmaIdx, quote); err != nil {
			return nil, fmt.Errorf("RunGrid: %w", err)
		}

		eventpubsub.PublishGridCellComputed(eventpubsub.GridCellComputed{
			RunID:     req.RunID,
			StrikeIdx: s.strikeIdx,
			SigmaIdx:  s.sigmaIdx,
			Strike:    req.Strikes[s.strikeIdx],
			Sigma:     req.Sigmas[s.sigmaIdx],
			Quote:     quote,
		})
	}

	eventpubsub.PublishGridCompleted(eventpubsub.GridCompleted{
		RunID:     req.RunID,
		CellCount: len(submissions),
	})

	return grid, nil
}
