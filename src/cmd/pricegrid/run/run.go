package run

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/option-pricer/src/dispatcher"
	"github.com/jiaming2012/option-pricer/src/eventpubsub"
	"github.com/jiaming2012/option-pricer/src/executor"
	"github.com/jiaming2012/option-pricer/src/models"
	"github.com/jiaming2012/option-pricer/src/pricing"
	"github.com/jiaming2012/option-pricer/src/utils"
)

type RunArgs struct {
	ConfigFilePath string
	OutDir         string
	MaxWorkers     int
	BaseSeed       uint64
	GoEnv          string
}

func loadScenario(configFilePath string) (*models.ScenarioYAML, error) {
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("loadScenario: error reading %s: %v", configFilePath, err)
	}

	var scenario models.ScenarioYAML
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("loadScenario: error unmarshalling %s: %v", configFilePath, err)
	}

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("loadScenario: %w", err)
	}

	return &scenario, nil
}

// blackScholesReference builds the closed-form European grid used as a sanity
// check next to the simulated one. Asian estimates have no closed form and
// are left zero.
func blackScholesReference(scenario *models.ScenarioYAML) (*models.ResultGrid, error) {
	grid, err := models.NewResultGrid(scenario.Strikes, scenario.Sigmas)
	if err != nil {
		return nil, fmt.Errorf("blackScholesReference: %w", err)
	}

	horizon := 1.0 // days steps of size 1/days
	for i, strike := range scenario.Strikes {
		for j, sigma := range scenario.Sigmas {
			quote := models.PriceQuote{
				EuropeanCall: pricing.BlackScholesCall(scenario.Spot, strike, sigma, scenario.Rate, horizon),
				EuropeanPut:  pricing.BlackScholesPut(scenario.Spot, strike, sigma, scenario.Rate, horizon),
			}

			if err := grid.Set(i, j, quote); err != nil {
				return nil, fmt.Errorf("blackScholesReference: %w", err)
			}
		}
	}

	return grid, nil
}

func exportGrid(grid *models.ResultGrid, outDir, runID string) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("exportGrid: failed to create directory: %v", err)
	}

	outPath := filepath.Join(outDir, fmt.Sprintf("grid-%s.csv", runID))

	file, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("exportGrid: error creating CSV file: %v", err)
	}

	defer file.Close()

	records := grid.ToRecords()
	if err := gocsv.MarshalFile(&records, file); err != nil {
		return "", fmt.Errorf("exportGrid: error marshalling file: %v", err)
	}

	return outPath, nil
}

func Run(ctx context.Context, args RunArgs) (*models.ResultGrid, error) {
	if projectsDir := os.Getenv("PROJECTS_DIR"); projectsDir != "" {
		if err := utils.InitEnvironmentVariables(projectsDir, args.GoEnv); err != nil {
			log.Warnf("Run: failed to load env files: %v", err)
		}
	}

	scenario, err := loadScenario(args.ConfigFilePath)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	baseSeed := scenario.BaseSeed
	if args.BaseSeed != 0 {
		baseSeed = args.BaseSeed
	}

	maxWorkers := args.MaxWorkers
	if maxWorkers < 1 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}

	pool, err := executor.NewPool[models.PriceQuote](maxWorkers)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	defer pool.Close()

	runID := uuid.New().String()
	totalCells := len(scenario.Strikes) * len(scenario.Sigmas)

	eventpubsub.Init()

	if err := eventpubsub.Subscribe(eventpubsub.GridCellComputedEvent, func(event eventpubsub.GridCellComputed) {
		log.Infof("run %s: cell (%d, %d): strike=%.2f sigma=%.2f european call=%.4f", event.RunID, event.StrikeIdx, event.SigmaIdx, event.Strike, event.Sigma, event.Quote.EuropeanCall)
	}); err != nil {
		return nil, fmt.Errorf("Run: failed to subscribe to cell events: %v", err)
	}

	log.Infof("run %s: pricing %d strikes x %d sigmas (%d cells, %d paths each) on %d workers", runID, len(scenario.Strikes), len(scenario.Sigmas), totalCells, scenario.Paths, maxWorkers)

	grid, err := dispatcher.RunGrid(ctx, dispatcher.GridRequest{
		RunID:    runID,
		Scenario: scenario.ToScenarioParams(),
		Strikes:  scenario.Strikes,
		Sigmas:   scenario.Sigmas,
		BaseSeed: baseSeed,
	}, dispatcher.MonteCarloPriceFunc, pool)

	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	eventpubsub.Flush()

	for _, kind := range models.QuoteKinds {
		fmt.Println(grid.Render(kind))
	}

	reference, err := blackScholesReference(scenario)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	fmt.Println("black-scholes reference:")
	fmt.Println(reference.Render(models.EuropeanCallQuote))

	if args.OutDir != "" {
		outPath, err := exportGrid(grid, args.OutDir, runID)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}

		log.Infof("run %s: exported %d cells to %s", runID, totalCells, outPath)
	}

	return grid, nil
}
