package quadfit

import (
	"fmt"
	"io"
	"math"

	"github.com/guptarohit/asciigraph"
)

// Plotter renders a fitted model against the cleaned data it was fitted
// to. Implementations are purely cosmetic collaborators: Fit ignores their
// errors and returns the same model whether or not one is configured.
type Plotter interface {
	Plot(d *Dataset, m *Model) error
}

// asciiPlotter renders fits as terminal line charts.
type asciiPlotter struct {
	w      io.Writer
	width  int
	height int
}

// NewASCIIPlotter returns a Plotter that renders to w using ASCII line
// charts. For one predictor it draws the fitted curve sampled across the
// observed x-range; for two predictors, where a surface cannot be drawn as
// a line chart, it draws the observed and fitted responses as two series.
func NewASCIIPlotter(w io.Writer) Plotter {
	return &asciiPlotter{w: w, width: 60, height: 12}
}

func (p *asciiPlotter) Plot(d *Dataset, m *Model) error {
	var chart string
	switch m.NumPredictors {
	case 1:
		series, err := p.curveSeries(d, m)
		if err != nil {
			return err
		}
		chart = asciigraph.Plot(series,
			asciigraph.Height(p.height),
			asciigraph.Width(p.width),
			asciigraph.Caption(m.Formula))
	case 2:
		observed, fitted := responseSeries(d, m)
		chart = asciigraph.PlotMany([][]float64{observed, fitted},
			asciigraph.Height(p.height),
			asciigraph.Width(p.width),
			asciigraph.Caption(m.Formula))
	default:
		return fmt.Errorf("%w: cannot plot %d predictors", ErrTooManyColumns, m.NumPredictors)
	}

	_, err := fmt.Fprintln(p.w, chart)

	return err
}

// curveSeries samples the fitted curve across the observed x-range.
func (p *asciiPlotter) curveSeries(d *Dataset, m *Model) ([]float64, error) {
	xs := d.Col(0)
	lo, hi := xs[0], xs[0]
	for _, v := range xs {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		// Degenerate x-range, plot the single fitted value.
		v, err := m.Predict(lo)
		if err != nil {
			return nil, err
		}

		return []float64{v, v}, nil
	}

	samples := p.width
	series := make([]float64, samples)
	step := (hi - lo) / float64(samples-1)
	for i := range series {
		v, err := m.Predict(lo + float64(i)*step)
		if err != nil {
			return nil, err
		}
		series[i] = v
	}

	return series, nil
}

// responseSeries pairs the observed responses with the model's fitted
// values at the same observations.
func responseSeries(d *Dataset, m *Model) (observed, fitted []float64) {
	observed = make([]float64, d.Rows())
	for i := range observed {
		observed[i] = d.Y.AtVec(i)
	}
	fitted = fittedValues(d, m.Coefficients)

	return observed, fitted
}
