package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/mlb-attendance/internal/dataset"
	"github.com/pfrederiksen/mlb-attendance/internal/encode"
	"github.com/pfrederiksen/mlb-attendance/internal/explore"
	"github.com/pfrederiksen/mlb-attendance/internal/model"
)

var flagPlots bool

func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Summarize the dataset and plot correlations and residuals",
		RunE:  runExplore,
	}
	cmd.Flags().BoolVar(&flagPlots, "plots", true, "Render PNG plots into the data directory")
	return cmd
}

func runExplore(cmd *cobra.Command, args []string) error {
	path := dataPath(modelingDatasetFile)
	if err := explore.Summary(path, os.Stdout); err != nil {
		return fmt.Errorf("summarizing: %w", err)
	}

	if !flagPlots {
		return nil
	}

	rows, err := dataset.ReadRows(path)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	corr, _, err := explore.Correlations(rows)
	if err != nil {
		return fmt.Errorf("computing correlations: %w", err)
	}
	if err := explore.SaveCorrelationHeatmap(corr, dataPath(correlationPlotFile)); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", dataPath(correlationPlotFile))

	// Residual plots come from a quick in-sample linear fit; they are a
	// diagnostic view of the data, not a model evaluation.
	enc := encode.New(true)
	if err := enc.Fit(rows); err != nil {
		return fmt.Errorf("fitting encoder: %w", err)
	}
	X, _, _, err := enc.Transform(rows)
	if err != nil {
		return fmt.Errorf("encoding rows: %w", err)
	}
	y := encode.Target(rows)

	ols := model.NewOLS()
	if err := ols.Fit(X, y); err != nil {
		return fmt.Errorf("fitting linear model: %w", err)
	}
	pred, err := ols.Predict(X)
	if err != nil {
		return fmt.Errorf("predicting: %w", err)
	}
	resid := explore.Residuals(y, pred)

	if err := explore.SaveResidualScatter(pred, resid, dataPath(residualScatterFile)); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", dataPath(residualScatterFile))

	if err := explore.SaveResidualHist(resid, dataPath(residualHistogramFile)); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", dataPath(residualHistogramFile))
	return nil
}
