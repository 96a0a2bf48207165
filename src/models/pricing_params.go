package models

import "fmt"

// PricingParams bundles the market inputs for a single Monte Carlo pricing.
// One instance is built per grid point and never mutated afterwards.
type PricingParams struct {
	Spot   float64
	Strike float64
	Sigma  float64
	Rate   float64
	Days   int
	Paths  int
}

func (p PricingParams) Validate() error {
	if p.Spot <= 0 {
		return fmt.Errorf("PricingParams.Validate: spot=%v: %w", p.Spot, NonPositiveSpotErr)
	}

	if p.Strike <= 0 {
		return fmt.Errorf("PricingParams.Validate: strike=%v: %w", p.Strike, NonPositiveStrikeErr)
	}

	if p.Sigma < 0 {
		return fmt.Errorf("PricingParams.Validate: sigma=%v: %w", p.Sigma, NegativeSigmaErr)
	}

	if p.Days < 1 {
		return fmt.Errorf("PricingParams.Validate: days=%v: %w", p.Days, NonPositiveDaysErr)
	}

	if p.Paths < 1 {
		return fmt.Errorf("PricingParams.Validate: paths=%v: %w", p.Paths, NonPositivePathsErr)
	}

	return nil
}

// StepSize returns the time step h used to discretize the horizon.
func (p PricingParams) StepSize() float64 {
	return 1.0 / float64(p.Days)
}

// Horizon returns the total simulated time in the same units as Rate and Sigma.
func (p PricingParams) Horizon() float64 {
	return p.StepSize() * float64(p.Days)
}

// ScenarioParams holds the inputs shared by every point of a pricing grid.
type ScenarioParams struct {
	Spot  float64
	Rate  float64
	Days  int
	Paths int
}

// WithStrikeAndSigma builds the full parameter set for one grid point.
func (s ScenarioParams) WithStrikeAndSigma(strike, sigma float64) PricingParams {
	return PricingParams{
		Spot:   s.Spot,
		Strike: strike,
		Sigma:  sigma,
		Rate:   s.Rate,
		Days:   s.Days,
		Paths:  s.Paths,
	}
}
