package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/pfrederiksen/mlb-attendance/internal/clean"
	"github.com/pfrederiksen/mlb-attendance/internal/dataset"
	"github.com/pfrederiksen/mlb-attendance/internal/encode"
	"github.com/pfrederiksen/mlb-attendance/internal/logger"
	"github.com/pfrederiksen/mlb-attendance/internal/model"
)

var (
	flagTestFrac    float64
	flagFolds       int
	flagSeed        int64
	flagRidgeLambda float64
	flagLassoLambda float64
)

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit attendance regression models and report error metrics",
		RunE:  runTrain,
	}

	cmd.Flags().Float64Var(&flagTestFrac, "test-frac", 0.2, "Held-out test fraction")
	cmd.Flags().IntVar(&flagFolds, "folds", 5, "Cross-validation folds")
	cmd.Flags().Int64Var(&flagSeed, "seed", 42, "Shuffle seed")
	cmd.Flags().Float64Var(&flagRidgeLambda, "ridge-lambda", 1.0, "Ridge L2 penalty")
	cmd.Flags().Float64Var(&flagLassoLambda, "lasso-lambda", 10.0, "Lasso L1 penalty")

	return cmd
}

func runTrain(cmd *cobra.Command, args []string) error {
	rows, err := dataset.ReadRows(dataPath(modelingDatasetFile))
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	fmt.Printf("Loaded %d games\n", len(rows))

	// Split on rows first so the encoder only ever sees training data
	// during Fit.
	trainRows, testRows, err := splitRows(rows, flagTestFrac, flagSeed)
	if err != nil {
		return err
	}

	enc := encode.New(true)
	if err := enc.Fit(trainRows); err != nil {
		return fmt.Errorf("fitting encoder: %w", err)
	}

	XTrain, names, _, err := enc.Transform(trainRows)
	if err != nil {
		return fmt.Errorf("encoding training rows: %w", err)
	}
	XTest, _, unseen, err := enc.Transform(testRows)
	if err != nil {
		return fmt.Errorf("encoding test rows: %w", err)
	}
	if unseen > 0 {
		logger.Warn("Unseen categories in test data mapped to zero vectors", logger.Fields{
			"count": unseen,
		})
	}
	yTrain := encode.Target(trainRows)
	yTest := encode.Target(testRows)
	fmt.Printf("Encoded %d features\n", len(names))

	models := []struct {
		name string
		make func() model.Model
	}{
		{"linear", func() model.Model { return model.NewOLS() }},
		{"ridge", func() model.Model { return model.NewRidge(flagRidgeLambda) }},
		{"lasso", func() model.Model { return model.NewLasso(flagLassoLambda) }},
	}

	for _, m := range models {
		fmt.Printf("\n=== %s ===\n", m.name)

		cvMean, cvStd, err := model.CrossValidate(m.make, XTrain, yTrain, flagFolds, flagSeed)
		if err != nil {
			return fmt.Errorf("%s cross-validation: %w", m.name, err)
		}
		fmt.Printf("Cross Validation R²: %.5f ± %.5f\n", cvMean, cvStd)

		fitted := m.make()
		if err := fitted.Fit(XTrain, yTrain); err != nil {
			return fmt.Errorf("fitting %s: %w", m.name, err)
		}
		if err := printSplitMetrics(fitted, XTrain, yTrain, "Train"); err != nil {
			return err
		}
		if err := printSplitMetrics(fitted, XTest, yTest, "Test"); err != nil {
			return err
		}
	}
	return nil
}

// splitRows shuffles and partitions the cleaned rows before any encoding,
// keeping evaluation data out of the encoder's fit entirely.
func splitRows(rows []clean.Row, testFrac float64, seed int64) (trainRows, testRows []clean.Row, err error) {
	n := len(rows)
	nTest := int(float64(n) * testFrac)
	if nTest < 1 || nTest >= n {
		return nil, nil, fmt.Errorf("test fraction %v leaves no usable split of %d rows", testFrac, n)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	for i, idx := range perm {
		if i < nTest {
			testRows = append(testRows, rows[idx])
		} else {
			trainRows = append(trainRows, rows[idx])
		}
	}
	return trainRows, testRows, nil
}

func printSplitMetrics(m model.Model, X *mat.Dense, y []float64, label string) error {
	pred, err := m.Predict(X)
	if err != nil {
		return fmt.Errorf("predicting %s set: %w", label, err)
	}
	metrics := model.Evaluate(y, pred)
	fmt.Printf("%s Metrics:\n", label)
	fmt.Printf("  MAE:  %.2f\n", metrics.MAE)
	fmt.Printf("  MSE:  %.2f\n", metrics.MSE)
	fmt.Printf("  RMSE: %.2f\n", metrics.RMSE)
	fmt.Printf("  R²:   %.4f\n", metrics.R2)
	return nil
}
