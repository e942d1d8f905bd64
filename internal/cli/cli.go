// Package cli wires the pipeline stages into the mlb-attendance command
// tree.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/mlb-attendance/internal/logger"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDataDir string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mlb-attendance",
		Short: "Build and model the MLB attendance dataset",
		Long: `A pipeline for MLB game attendance modeling, 2000-2024.
Filters raw reference CSVs, scrapes team schedule pages, merges weather and
stadium capacity data, cleans and encodes features, and fits baseline
regression models.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "data", "Directory for pipeline CSV files")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newFilterCmd())
	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newTrainCmd())
	cmd.AddCommand(newExploreCmd())

	return cmd
}

// dataPath resolves a file name inside the data directory.
func dataPath(name string) string {
	return filepath.Join(flagDataDir, name)
}

// Standard file names within the data directory.
const (
	capacityFullFile      = "stadium_capacity_full.csv"
	capacityFile          = "stadium_capacity.csv"
	retrosheetRawFile     = "retrosheet_gameinfo.csv"
	retrosheetFile        = "retrosheet_gameinfo_filtered.csv"
	gameDataFile          = "game_data.csv"
	modelingDatasetFile   = "MLB_games_2000-2024.csv"
	correlationPlotFile   = "correlation_matrix.png"
	residualScatterFile   = "residuals_vs_predicted.png"
	residualHistogramFile = "residual_histogram.png"
)
