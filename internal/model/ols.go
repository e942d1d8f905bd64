package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// OLS is ordinary least squares regression with an intercept.
type OLS struct {
	coef *mat.VecDense // intercept first
}

// NewOLS creates an unfitted OLS model.
func NewOLS() *OLS { return &OLS{} }

func (m *OLS) Name() string { return "linear" }

// Fit solves the least-squares problem via QR factorization.
func (m *OLS) Fit(X *mat.Dense, y []float64) error {
	rows, cols := X.Dims()
	if rows != len(y) {
		return fmt.Errorf("X has %d rows but y has %d", rows, len(y))
	}
	if rows <= cols {
		return fmt.Errorf("underdetermined system: %d rows, %d features", rows, cols)
	}

	Xa := withIntercept(X)
	var qr mat.QR
	qr.Factorize(Xa)

	var coef mat.VecDense
	if err := qr.SolveVecTo(&coef, false, mat.NewVecDense(len(y), y)); err != nil {
		return fmt.Errorf("solving least squares: %w", err)
	}
	m.coef = &coef
	return nil
}

// Predict returns fitted values for X.
func (m *OLS) Predict(X *mat.Dense) ([]float64, error) {
	if m.coef == nil {
		return nil, fmt.Errorf("model not fitted")
	}
	return predictLinear(X, m.coef)
}

// Coefficients returns the fitted coefficients, intercept first.
func (m *OLS) Coefficients() []float64 {
	if m.coef == nil {
		return nil
	}
	out := make([]float64, m.coef.Len())
	for i := range out {
		out[i] = m.coef.AtVec(i)
	}
	return out
}

func predictLinear(X *mat.Dense, coef *mat.VecDense) ([]float64, error) {
	Xa := withIntercept(X)
	rows, cols := Xa.Dims()
	if cols != coef.Len() {
		return nil, fmt.Errorf("model fitted with %d features, got %d", coef.Len()-1, cols-1)
	}

	var yhat mat.VecDense
	yhat.MulVec(Xa, coef)
	out := make([]float64, rows)
	for i := range out {
		out[i] = yhat.AtVec(i)
	}
	return out, nil
}
