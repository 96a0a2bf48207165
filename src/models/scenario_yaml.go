package models

import "fmt"

// ScenarioYAML is the on-disk description of a pricing grid run.
type ScenarioYAML struct {
	Spot     float64   `yaml:"spot"`
	Rate     float64   `yaml:"rate"`
	Days     int       `yaml:"days"`
	Paths    int       `yaml:"paths"`
	BaseSeed uint64    `yaml:"base_seed"`
	Strikes  []float64 `yaml:"strikes"`
	Sigmas   []float64 `yaml:"sigmas"`
}

func (s *ScenarioYAML) Validate() error {
	if s.Spot <= 0 {
		return fmt.Errorf("ScenarioYAML.Validate: spot=%v: %w", s.Spot, NonPositiveSpotErr)
	}

	if s.Days < 1 {
		return fmt.Errorf("ScenarioYAML.Validate: days=%v: %w", s.Days, NonPositiveDaysErr)
	}

	if s.Paths < 1 {
		return fmt.Errorf("ScenarioYAML.Validate: paths=%v: %w", s.Paths, NonPositivePathsErr)
	}

	if len(s.Strikes) == 0 {
		return fmt.Errorf("ScenarioYAML.Validate: %w", EmptyStrikesErr)
	}

	if len(s.Sigmas) == 0 {
		return fmt.Errorf("ScenarioYAML.Validate: %w", EmptySigmasErr)
	}

	for _, strike := range s.Strikes {
		if strike <= 0 {
			return fmt.Errorf("ScenarioYAML.Validate: strike=%v: %w", strike, NonPositiveStrikeErr)
		}
	}

	for _, sigma := range s.Sigmas {
		if sigma < 0 {
			return fmt.Errorf("ScenarioYAML.Validate: sigma=%v: %w", sigma, NegativeSigmaErr)
		}
	}

	return nil
}

// ToScenarioParams extracts the parameters shared by every grid point.
func (s *ScenarioYAML) ToScenarioParams() ScenarioParams {
	return ScenarioParams{
		Spot:  s.Spot,
		Rate:  s.Rate,
		Days:  s.Days,
		Paths: s.Paths,
	}
}
