package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/mlb-attendance/internal/dataset"
	"github.com/pfrederiksen/mlb-attendance/internal/scraper"
	"github.com/pfrederiksen/mlb-attendance/internal/stadium"
)

func newScrapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scrape",
		Short: "Scrape per-team season schedules from baseball-reference",
		Long: `Scrapes schedule/result tables for every team in the stadium capacity
file, seasons 2000-2024 excluding 2020 and 2021. Failed pages are logged
and skipped; expect the run to take a while due to the politeness delay
between requests.`,
		RunE: runScrape,
	}
}

func runScrape(cmd *cobra.Command, args []string) error {
	stadiums, err := stadium.Load(dataPath(capacityFile))
	if err != nil {
		return fmt.Errorf("loading team list: %w", err)
	}
	teams := stadium.Teams(stadiums)
	years := scraper.Years()
	fmt.Printf("Scraping %d teams x %d seasons\n", len(teams), len(years))

	records := scraper.New().FetchAll(teams, years)
	if len(records) == 0 {
		return fmt.Errorf("no games scraped")
	}

	if err := dataset.WriteGames(dataPath(gameDataFile), records); err != nil {
		return fmt.Errorf("writing game data: %w", err)
	}
	fmt.Printf("Wrote %s (%d games)\n", dataPath(gameDataFile), len(records))
	return nil
}
