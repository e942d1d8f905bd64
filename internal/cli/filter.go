package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/mlb-attendance/internal/filter"
)

func newFilterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter",
		Short: "Filter the raw reference CSVs down to the 2000+ seasons",
		RunE:  runFilter,
	}
}

func runFilter(cmd *cobra.Command, args []string) error {
	capRows, err := filter.Capacity(dataPath(capacityFullFile), dataPath(capacityFile))
	if err != nil {
		return fmt.Errorf("filtering stadium capacity: %w", err)
	}
	fmt.Printf("Wrote %s (%d rows)\n", dataPath(capacityFile), capRows)

	retroRows, err := filter.Retrosheet(dataPath(retrosheetRawFile), dataPath(retrosheetFile))
	if err != nil {
		return fmt.Errorf("filtering retrosheet gameinfo: %w", err)
	}
	fmt.Printf("Wrote %s (%d rows)\n", dataPath(retrosheetFile), retroRows)

	return nil
}
