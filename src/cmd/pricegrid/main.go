package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/jiaming2012/option-pricer/src/cmd/pricegrid/run"
)

var rootCmd = &cobra.Command{
	Use:   "pricegrid",
	Short: "Prices a strike x volatility grid of European and Asian options via Monte Carlo simulation",
	Long: `This program loads a pricing scenario from a YAML file, simulates every (strike, sigma)
grid point in parallel on a bounded worker pool, and renders the four resulting
price surfaces (European call/put, Asian call/put) along with a closed-form
Black-Scholes reference for the European estimates.`,
	Run: func(cmd *cobra.Command, args []string) {
		configFilePath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config flag: %v", err)
		}

		outDir, err := cmd.Flags().GetString("out-dir")
		if err != nil {
			log.Fatalf("error getting out-dir flag: %v", err)
		}

		maxWorkers, err := cmd.Flags().GetInt("workers")
		if err != nil {
			log.Fatalf("error getting workers flag: %v", err)
		}

		baseSeed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			log.Fatalf("error getting seed flag: %v", err)
		}

		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env flag: %v", err)
		}

		if _, err := run.Run(context.Background(), run.RunArgs{
			ConfigFilePath: configFilePath,
			OutDir:         outDir,
			MaxWorkers:     maxWorkers,
			BaseSeed:       baseSeed,
			GoEnv:          goEnv,
		}); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the YAML scenario file describing spot, rate, days, paths and the strike/sigma grids. This flag is required.")
	rootCmd.PersistentFlags().StringP("out-dir", "o", "", "Directory to export the populated grid as CSV. If unset, no CSV is written.")
	rootCmd.PersistentFlags().IntP("workers", "w", 0, "Maximum number of simulation tasks run in parallel. Defaults to GOMAXPROCS.")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Base seed for the per-task random streams. Overrides the scenario's base_seed when non-zero.")
	rootCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")

	rootCmd.MarkPersistentFlagRequired("config")

	cobra.CheckErr(rootCmd.Execute())
}
