// Package model fits baseline regression models to the encoded feature
// matrix and reports error metrics.
package model

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Model is a regression model over a feature matrix.
type Model interface {
	Name() string
	Fit(X *mat.Dense, y []float64) error
	Predict(X *mat.Dense) ([]float64, error)
}

// Metrics holds regression error metrics.
type Metrics struct {
	MAE  float64
	MSE  float64
	RMSE float64
	R2   float64
}

// Evaluate computes metrics for predictions against true values.
func Evaluate(yTrue, yPred []float64) Metrics {
	n := float64(len(yTrue))
	var absSum, sqSum float64
	for i := range yTrue {
		d := yPred[i] - yTrue[i]
		absSum += math.Abs(d)
		sqSum += d * d
	}
	mse := sqSum / n
	return Metrics{
		MAE:  absSum / n,
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		R2:   stat.RSquaredFrom(yPred, yTrue, nil),
	}
}

// Split shuffles and partitions the data into train and test sets.
func Split(X *mat.Dense, y []float64, testFrac float64, seed int64) (XTrain, XTest *mat.Dense, yTrain, yTest []float64, err error) {
	n, _ := X.Dims()
	if n != len(y) {
		return nil, nil, nil, nil, fmt.Errorf("X has %d rows but y has %d", n, len(y))
	}
	nTest := int(float64(n) * testFrac)
	if nTest < 1 || nTest >= n {
		return nil, nil, nil, nil, fmt.Errorf("test fraction %v leaves no usable split of %d rows", testFrac, n)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	testIdx := perm[:nTest]
	trainIdx := perm[nTest:]
	XTrain, yTrain = subset(X, y, trainIdx)
	XTest, yTest = subset(X, y, testIdx)
	return XTrain, XTest, yTrain, yTest, nil
}

// CrossValidate computes k-fold cross-validated R², returning the mean and
// standard deviation across folds.
func CrossValidate(newModel func() Model, X *mat.Dense, y []float64, k int, seed int64) (mean, stdDev float64, err error) {
	n, _ := X.Dims()
	if k < 2 || k > n {
		return 0, 0, fmt.Errorf("cannot run %d-fold CV on %d rows", k, n)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	scores := make([]float64, 0, k)
	for fold := 0; fold < k; fold++ {
		var holdIdx, fitIdx []int
		for i, idx := range perm {
			if i%k == fold {
				holdIdx = append(holdIdx, idx)
			} else {
				fitIdx = append(fitIdx, idx)
			}
		}

		XFit, yFit := subset(X, y, fitIdx)
		XHold, yHold := subset(X, y, holdIdx)

		m := newModel()
		if err := m.Fit(XFit, yFit); err != nil {
			return 0, 0, fmt.Errorf("fold %d: %w", fold, err)
		}
		pred, err := m.Predict(XHold)
		if err != nil {
			return 0, 0, fmt.Errorf("fold %d: %w", fold, err)
		}
		scores = append(scores, Evaluate(yHold, pred).R2)
	}

	mean, stdDev = stat.MeanStdDev(scores, nil)
	return mean, stdDev, nil
}

func subset(X *mat.Dense, y []float64, idx []int) (*mat.Dense, []float64) {
	_, cols := X.Dims()
	Xs := mat.NewDense(len(idx), cols, nil)
	ys := make([]float64, len(idx))
	for i, src := range idx {
		Xs.SetRow(i, mat.Row(nil, src, X))
		ys[i] = y[src]
	}
	return Xs, ys
}

// withIntercept prepends a column of ones.
func withIntercept(X *mat.Dense) *mat.Dense {
	rows, cols := X.Dims()
	out := mat.NewDense(rows, cols+1, nil)
	for i := 0; i < rows; i++ {
		out.Set(i, 0, 1)
		for j := 0; j < cols; j++ {
			out.Set(i, j+1, X.At(i, j))
		}
	}
	return out
}
