// Package encode converts cleaned game rows into a numeric feature matrix.
//
// Three transformations apply: one-hot encoding of the categorical columns,
// sine/cosine pairs for the cyclic calendar columns, and standardization of
// the numeric predictors. Category sets and scaling parameters are fit once
// on training data and reused unchanged for any later transform; Fit refuses
// to run twice so evaluation data can never leak into the parameters.
package encode

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/pfrederiksen/mlb-attendance/internal/clean"
)

// numericNames lists the predictors that get standardized, in matrix order.
var numericNames = []string{
	"division_rank", "games_behind", "cLI", "streak",
	"runs_scored_pg", "runs_allowed_pg",
	"runs_scored_last_10", "runs_allowed_last_10", "last_10_win_pct",
	"temp", "windspeed", "capacity", "win_pct",
}

// flagNames lists the binary predictors, passed through unscaled.
var flagNames = []string{"night", "opening_day", "dh", "makeup"}

// categoricalNames lists the one-hot encoded columns.
var categoricalNames = []string{"team", "opponent", "stadium", "sky", "precip"}

// Encoder turns cleaned rows into model input. Construct with New, call Fit
// on the training rows, then Transform on any rows.
type Encoder struct {
	// Cyclic enables the sine/cosine calendar pair features, used for the
	// linear-model feature sets.
	Cyclic bool

	categories map[string][]string       // column -> sorted category values
	catIndex   map[string]map[string]int // column -> value -> position
	scaler     Scaler
	fitted     bool
}

// New creates an unfitted encoder.
func New(cyclic bool) *Encoder {
	return &Encoder{Cyclic: cyclic}
}

// Fit learns the category sets and scaling parameters from training rows.
// It can only be called once per encoder.
func (e *Encoder) Fit(rows []clean.Row) error {
	if e.fitted {
		return fmt.Errorf("encoder already fitted")
	}
	if len(rows) == 0 {
		return fmt.Errorf("cannot fit encoder on zero rows")
	}

	e.categories = make(map[string][]string, len(categoricalNames))
	e.catIndex = make(map[string]map[string]int, len(categoricalNames))
	for _, col := range categoricalNames {
		set := make(map[string]bool)
		for _, r := range rows {
			set[categoricalValue(r, col)] = true
		}
		values := make([]string, 0, len(set))
		for v := range set {
			values = append(values, v)
		}
		sort.Strings(values)
		e.categories[col] = values

		index := make(map[string]int, len(values))
		for i, v := range values {
			index[v] = i
		}
		e.catIndex[col] = index
	}

	numeric := mat.NewDense(len(rows), len(numericNames), nil)
	for i, r := range rows {
		numeric.SetRow(i, numericValues(r))
	}
	if err := e.scaler.Fit(numeric); err != nil {
		return err
	}

	e.fitted = true
	return nil
}

// Transform encodes rows using the fitted parameters. Unseen category values
// encode as the all-zero vector for their column; the count of such values is
// returned so callers can log it.
func (e *Encoder) Transform(rows []clean.Row) (X *mat.Dense, names []string, unseen int, err error) {
	if !e.fitted {
		return nil, nil, 0, fmt.Errorf("encoder not fitted")
	}
	if len(rows) == 0 {
		return nil, nil, 0, fmt.Errorf("cannot transform zero rows")
	}

	names = e.FeatureNames()
	X = mat.NewDense(len(rows), len(names), nil)

	// Scale the numeric block first.
	numeric := mat.NewDense(len(rows), len(numericNames), nil)
	for i, r := range rows {
		numeric.SetRow(i, numericValues(r))
	}
	scaled, err := e.scaler.Transform(numeric)
	if err != nil {
		return nil, nil, 0, err
	}

	for i, r := range rows {
		j := 0
		for k := 0; k < len(numericNames); k++ {
			X.Set(i, j, scaled.At(i, k))
			j++
		}
		for _, v := range flagValues(r) {
			X.Set(i, j, v)
			j++
		}
		if e.Cyclic {
			sin, cos := Cyclic(float64(r.Weekday), 7)
			X.Set(i, j, sin)
			X.Set(i, j+1, cos)
			// Months are 1-based; shift so January and December sit adjacent.
			sin, cos = Cyclic(float64(r.Month-1), 12)
			X.Set(i, j+2, sin)
			X.Set(i, j+3, cos)
			j += 4
		}
		for _, col := range categoricalNames {
			width := len(e.categories[col])
			if pos, ok := e.catIndex[col][categoricalValue(r, col)]; ok {
				X.Set(i, j+pos, 1)
			} else {
				unseen++
			}
			j += width
		}
	}
	return X, names, unseen, nil
}

// FeatureNames returns the encoded column names in matrix order.
func (e *Encoder) FeatureNames() []string {
	names := make([]string, 0)
	names = append(names, numericNames...)
	names = append(names, flagNames...)
	if e.Cyclic {
		names = append(names, "day_of_week_sin", "day_of_week_cos", "month_sin", "month_cos")
	}
	for _, col := range categoricalNames {
		for _, v := range e.categories[col] {
			names = append(names, col+"_"+v)
		}
	}
	return names
}

// Target extracts the attendance vector.
func Target(rows []clean.Row) []float64 {
	y := make([]float64, len(rows))
	for i, r := range rows {
		y[i] = float64(r.Attendance)
	}
	return y
}

// Cyclic encodes a periodic integer as a point on the unit circle, so that
// the last and first values of the period sit next to each other.
func Cyclic(value, period float64) (sin, cos float64) {
	theta := 2 * math.Pi * value / period
	return math.Sin(theta), math.Cos(theta)
}

func numericValues(r clean.Row) []float64 {
	return []float64{
		float64(r.DivisionRank), r.GamesBehind, r.CLI, float64(r.Streak),
		r.RunsScoredPG, r.RunsAllowedPG,
		r.RunsScoredLast10, r.RunsAllowedLast10, r.Last10WinPct,
		float64(r.Temp), float64(r.Windspeed), float64(r.Capacity), r.WinPct,
	}
}

func flagValues(r clean.Row) []float64 {
	return []float64{
		float64(r.Night), float64(r.OpeningDay), float64(r.Doubleheader), float64(r.Makeup),
	}
}

func categoricalValue(r clean.Row, col string) string {
	switch col {
	case "team":
		return r.Team
	case "opponent":
		return r.Opponent
	case "stadium":
		return r.Stadium
	case "sky":
		return r.Sky
	case "precip":
		return r.Precip
	}
	return ""
}

// Scaler standardizes columns to zero mean and unit variance. Parameters are
// fit once; Transform never refits, so applying a train-fitted scaler to
// evaluation data uses the training mean and standard deviation.
type Scaler struct {
	mean   []float64
	std    []float64
	fitted bool
}

// Fit computes per-column means and standard deviations.
func (s *Scaler) Fit(X *mat.Dense) error {
	if s.fitted {
		return fmt.Errorf("scaler already fitted")
	}
	rows, cols := X.Dims()
	if rows == 0 {
		return fmt.Errorf("cannot fit scaler on zero rows")
	}

	s.mean = make([]float64, cols)
	s.std = make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, X)
		mean, std := stat.MeanStdDev(col, nil)
		s.mean[j] = mean
		if std == 0 || math.IsNaN(std) {
			// Constant column: center only.
			std = 1
		}
		s.std[j] = std
	}
	s.fitted = true
	return nil
}

// Transform standardizes X with the fitted parameters.
func (s *Scaler) Transform(X *mat.Dense) (*mat.Dense, error) {
	if !s.fitted {
		return nil, fmt.Errorf("scaler not fitted")
	}
	rows, cols := X.Dims()
	if cols != len(s.mean) {
		return nil, fmt.Errorf("scaler fitted on %d columns, got %d", len(s.mean), cols)
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, (X.At(i, j)-s.mean[j])/s.std[j])
		}
	}
	return out, nil
}

// Mean returns the fitted per-column means.
func (s *Scaler) Mean() []float64 { return s.mean }

// Std returns the fitted per-column standard deviations.
func (s *Scaler) Std() []float64 { return s.std }
