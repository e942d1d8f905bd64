package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Ridge is L2-regularized linear regression. The intercept is not penalized.
type Ridge struct {
	Lambda float64

	coef *mat.VecDense
}

// NewRidge creates an unfitted ridge model with the given penalty.
func NewRidge(lambda float64) *Ridge { return &Ridge{Lambda: lambda} }

func (m *Ridge) Name() string { return "ridge" }

// Fit solves the regularized normal equations (XᵀX + λI)β = Xᵀy.
func (m *Ridge) Fit(X *mat.Dense, y []float64) error {
	rows, _ := X.Dims()
	if rows != len(y) {
		return fmt.Errorf("X has %d rows but y has %d", rows, len(y))
	}
	if m.Lambda < 0 {
		return fmt.Errorf("negative lambda %v", m.Lambda)
	}

	Xa := withIntercept(X)
	_, p := Xa.Dims()

	var gram mat.Dense
	gram.Mul(Xa.T(), Xa)
	for j := 1; j < p; j++ { // skip the intercept column
		gram.Set(j, j, gram.At(j, j)+m.Lambda)
	}

	var xty mat.VecDense
	xty.MulVec(Xa.T(), mat.NewVecDense(len(y), y))

	var coef mat.VecDense
	if err := coef.SolveVec(&gram, &xty); err != nil {
		return fmt.Errorf("solving ridge system: %w", err)
	}
	m.coef = &coef
	return nil
}

// Predict returns fitted values for X.
func (m *Ridge) Predict(X *mat.Dense) ([]float64, error) {
	if m.coef == nil {
		return nil, fmt.Errorf("model not fitted")
	}
	return predictLinear(X, m.coef)
}

// Coefficients returns the fitted coefficients, intercept first.
func (m *Ridge) Coefficients() []float64 {
	if m.coef == nil {
		return nil
	}
	out := make([]float64, m.coef.Len())
	for i := range out {
		out[i] = m.coef.AtVec(i)
	}
	return out
}
