package explore

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveResidualScatter plots residuals against predicted values.
func SaveResidualScatter(yPred, residuals []float64, path string) error {
	pts := make(plotter.XYs, len(yPred))
	for i := range yPred {
		pts[i].X = yPred[i]
		pts[i].Y = residuals[i]
	}

	p := plot.New()
	p.Title.Text = "Residuals vs Predicted Attendance"
	p.X.Label.Text = "Predicted attendance"
	p.Y.Label.Text = "Residual"

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("building scatter: %w", err)
	}
	s.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(s, plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// SaveResidualHist plots a histogram of residuals.
func SaveResidualHist(residuals []float64, path string) error {
	p := plot.New()
	p.Title.Text = "Residual Distribution"
	p.X.Label.Text = "Residual"

	h, err := plotter.NewHist(plotter.Values(residuals), 40)
	if err != nil {
		return fmt.Errorf("building histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// corrGrid adapts a correlation matrix to the heat map grid interface.
type corrGrid struct {
	m *mat.SymDense
}

func (g corrGrid) Dims() (c, r int) {
	n, _ := g.m.Dims()
	return n, n
}

func (g corrGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// SaveCorrelationHeatmap renders the correlation matrix as a heat map.
func SaveCorrelationHeatmap(corr *mat.SymDense, path string) error {
	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(corrGrid{m: corr}, pal)
	hm.Min = -1
	hm.Max = 1

	p := plot.New()
	p.Title.Text = "Correlation Matrix of Numerical Features"
	p.Add(hm)

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
