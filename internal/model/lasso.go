package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Lasso is L1-regularized linear regression fit by cyclic coordinate
// descent with soft thresholding. The intercept is handled by centering and
// is not penalized.
type Lasso struct {
	Lambda  float64
	MaxIter int
	Tol     float64

	intercept float64
	coef      []float64
}

// NewLasso creates an unfitted lasso model with the given penalty.
func NewLasso(lambda float64) *Lasso {
	return &Lasso{Lambda: lambda, MaxIter: 1000, Tol: 1e-6}
}

func (m *Lasso) Name() string { return "lasso" }

// Fit runs coordinate descent until the largest coefficient update falls
// below Tol or MaxIter sweeps complete.
func (m *Lasso) Fit(X *mat.Dense, y []float64) error {
	rows, cols := X.Dims()
	if rows != len(y) {
		return fmt.Errorf("X has %d rows but y has %d", rows, len(y))
	}
	if m.Lambda < 0 {
		return fmt.Errorf("negative lambda %v", m.Lambda)
	}

	// Center everything so the intercept drops out of the descent.
	colMeans := make([]float64, cols)
	col := make([]float64, rows)
	Xc := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, X)
		colMeans[j] = stat.Mean(col, nil)
		for i := 0; i < rows; i++ {
			Xc.Set(i, j, X.At(i, j)-colMeans[j])
		}
	}
	yMean := stat.Mean(y, nil)
	resid := make([]float64, rows)
	for i := range y {
		resid[i] = y[i] - yMean
	}

	// Per-column squared norms; a constant column has norm 0 and keeps a
	// zero coefficient.
	norms := make([]float64, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			v := Xc.At(i, j)
			norms[j] += v * v
		}
	}

	beta := make([]float64, cols)
	penalty := m.Lambda * float64(rows)
	for iter := 0; iter < m.MaxIter; iter++ {
		maxDelta := 0.0
		for j := 0; j < cols; j++ {
			if norms[j] == 0 {
				continue
			}
			// rho is the correlation of column j with the residual,
			// with column j's own contribution added back.
			rho := 0.0
			for i := 0; i < rows; i++ {
				rho += Xc.At(i, j) * (resid[i] + Xc.At(i, j)*beta[j])
			}
			updated := softThreshold(rho, penalty) / norms[j]
			delta := updated - beta[j]
			if delta != 0 {
				for i := 0; i < rows; i++ {
					resid[i] -= Xc.At(i, j) * delta
				}
				beta[j] = updated
			}
			if math.Abs(delta) > maxDelta {
				maxDelta = math.Abs(delta)
			}
		}
		if maxDelta < m.Tol {
			break
		}
	}

	m.coef = beta
	m.intercept = yMean
	for j := 0; j < cols; j++ {
		m.intercept -= beta[j] * colMeans[j]
	}
	return nil
}

// Predict returns fitted values for X.
func (m *Lasso) Predict(X *mat.Dense) ([]float64, error) {
	if m.coef == nil {
		return nil, fmt.Errorf("model not fitted")
	}
	rows, cols := X.Dims()
	if cols != len(m.coef) {
		return nil, fmt.Errorf("model fitted with %d features, got %d", len(m.coef), cols)
	}

	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		v := m.intercept
		for j := 0; j < cols; j++ {
			v += m.coef[j] * X.At(i, j)
		}
		out[i] = v
	}
	return out, nil
}

// Coefficients returns the fitted coefficients, intercept first.
func (m *Lasso) Coefficients() []float64 {
	if m.coef == nil {
		return nil
	}
	out := make([]float64, 0, len(m.coef)+1)
	out = append(out, m.intercept)
	out = append(out, m.coef...)
	return out
}

func softThreshold(v, penalty float64) float64 {
	switch {
	case v > penalty:
		return v - penalty
	case v < -penalty:
		return v + penalty
	default:
		return 0
	}
}
