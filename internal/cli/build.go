package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/mlb-attendance/internal/clean"
	"github.com/pfrederiksen/mlb-attendance/internal/dataset"
	"github.com/pfrederiksen/mlb-attendance/internal/logger"
	"github.com/pfrederiksen/mlb-attendance/internal/merge"
	"github.com/pfrederiksen/mlb-attendance/internal/stadium"
	"github.com/pfrederiksen/mlb-attendance/internal/weather"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Merge and clean the scraped data into the modeling dataset",
		RunE:  runBuild,
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	games, err := dataset.ReadGames(dataPath(gameDataFile))
	if err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}
	weathers, err := weather.Load(dataPath(retrosheetFile))
	if err != nil {
		return fmt.Errorf("loading weather data: %w", err)
	}
	stadiums, err := stadium.Load(dataPath(capacityFile))
	if err != nil {
		return fmt.Errorf("loading stadium data: %w", err)
	}

	merged, err := merge.Merge(games, weathers, stadiums)
	if err != nil {
		return fmt.Errorf("merging: %w", err)
	}

	// Unmatched joins are data-quality gaps to surface, not failures.
	weatherGaps, stadiumGaps := 0, 0
	for _, r := range merged {
		if !r.WeatherMatched {
			weatherGaps++
			logger.Warn("No weather record for game", logger.Fields{
				"date": r.Game.Date.Format("2006-01-02"),
				"team": r.Game.Team,
				"seq":  r.Game.Seq,
			})
		}
		if !r.StadiumMatched {
			stadiumGaps++
			logger.Warn("No stadium record for team-year", logger.Fields{
				"team": r.Game.Team,
				"year": r.Year,
			})
		}
	}

	rows, rowErrs := clean.Clean(merged)
	for _, re := range rowErrs {
		logger.Error("Dropping row that failed cleaning", logger.Fields{
			"date":  re.Date.Format("2006-01-02"),
			"team":  re.Team,
			"field": re.Field,
		}, re.Err)
	}

	if err := dataset.WriteRows(dataPath(modelingDatasetFile), rows); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}

	fmt.Printf("Merged %d games (%d weather gaps, %d stadium gaps)\n",
		len(merged), weatherGaps, stadiumGaps)
	fmt.Printf("Cleaned to %d rows (%d dropped)\n", len(rows), len(rowErrs))
	fmt.Printf("Wrote %s\n", dataPath(modelingDatasetFile))
	return nil
}
