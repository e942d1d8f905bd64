// Package filter trims the raw reference CSVs down to the 2000+ seasons the
// pipeline covers.
package filter

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/pfrederiksen/mlb-attendance/internal/dataset"
)

// MinYear is the first season the pipeline covers.
const MinYear = 2000

// Capacity filters the full stadium-capacity CSV to rows with Year >= 2000.
func Capacity(inPath, outPath string) (int, error) {
	return byYear(inPath, outPath, "Year")
}

// Retrosheet filters the raw retrosheet gameinfo CSV to rows with
// season >= 2000.
func Retrosheet(inPath, outPath string) (int, error) {
	return byYear(inPath, outPath, "season")
}

// byYear keeps rows whose year column is at or past MinYear, writing the
// result atomically. Returns the surviving row count.
func byYear(inPath, outPath, column string) (int, error) {
	f, err := os.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return 0, fmt.Errorf("reading %s: %w", inPath, df.Err)
	}

	filtered := df.Filter(dataframe.F{
		Colname:    column,
		Comparator: series.GreaterEq,
		Comparando: MinYear,
	})
	if filtered.Err != nil {
		return 0, fmt.Errorf("filtering %s on %s: %w", inPath, column, filtered.Err)
	}

	err = dataset.WriteAtomic(outPath, func(w io.Writer) error {
		return filtered.WriteCSV(w)
	})
	if err != nil {
		return 0, err
	}
	return filtered.Nrow(), nil
}
