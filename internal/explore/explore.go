// Package explore provides summary statistics, correlations, and residual
// plots for the modeling dataset.
package explore

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/pfrederiksen/mlb-attendance/internal/clean"
)

// Summary writes per-column descriptive statistics and missing-value counts
// for a dataset CSV.
func Summary(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return fmt.Errorf("reading %s: %w", path, df.Err)
	}

	fmt.Fprintln(w, "Summary statistics:")
	fmt.Fprintln(w, df.Describe())

	fmt.Fprintln(w, "Missing values:")
	for _, name := range df.Names() {
		missing := 0
		for _, isNaN := range df.Col(name).IsNaN() {
			if isNaN {
				missing++
			}
		}
		fmt.Fprintf(w, "  %s: %d\n", name, missing)
	}
	return nil
}

// numericColumns lists the dataset columns included in the correlation
// matrix, in order.
var numericColumns = []string{
	"attendance", "capacity", "win_pct", "division_rank", "games_behind",
	"cLI", "streak", "temp", "windspeed",
	"runs_scored_pg", "runs_allowed_pg",
	"runs_scored_last_10", "runs_allowed_last_10", "last_10_win_pct",
}

// Correlations computes the Pearson correlation matrix over the numeric
// dataset columns, returning the matrix and the column labels.
func Correlations(rows []clean.Row) (*mat.SymDense, []string, error) {
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("need at least 2 rows, got %d", len(rows))
	}

	X := mat.NewDense(len(rows), len(numericColumns), nil)
	for i, r := range rows {
		X.SetRow(i, []float64{
			float64(r.Attendance), float64(r.Capacity), r.WinPct,
			float64(r.DivisionRank), r.GamesBehind, r.CLI, float64(r.Streak),
			float64(r.Temp), float64(r.Windspeed),
			r.RunsScoredPG, r.RunsAllowedPG,
			r.RunsScoredLast10, r.RunsAllowedLast10, r.Last10WinPct,
		})
	}

	corr := mat.NewSymDense(len(numericColumns), nil)
	stat.CorrelationMatrix(corr, X, nil)
	return corr, numericColumns, nil
}

// Residuals returns observed minus predicted values.
func Residuals(yTrue, yPred []float64) []float64 {
	out := make([]float64, len(yTrue))
	for i := range yTrue {
		out[i] = yTrue[i] - yPred[i]
	}
	return out
}
