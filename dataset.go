package quadfit

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dataset holds the cleaned observations a model was fitted to: the rows of
// the original inputs in which neither x nor y had a missing value.
//
// A Dataset is what the Plotter collaborator receives, so a custom plotter
// sees exactly the data that drove the fit rather than the raw inputs.
type Dataset struct {
	// X holds the cleaned predictor values, one row per surviving
	// observation and one column per predictor.
	X *mat.Dense
	// Y holds the cleaned response values, aligned with the rows of X.
	Y *mat.VecDense
}

// Rows returns the number of observations that survived cleaning.
func (d *Dataset) Rows() int {
	r, _ := d.X.Dims()
	return r
}

// Predictors returns the number of predictor variables (1 or 2).
func (d *Dataset) Predictors() int {
	_, c := d.X.Dims()
	return c
}

// Col returns a copy of predictor column j.
func (d *Dataset) Col(j int) []float64 {
	out := make([]float64, d.Rows())
	mat.Col(out, j, d.X)

	return out
}

// cleanRows drops every observation row in which x or y holds a NaN and
// packs the survivors into a Dataset. It returns nil when no rows survive;
// the caller decides whether that is fatal.
func cleanRows(x mat.Matrix, y *mat.VecDense) *Dataset {
	rows, cols := x.Dims()

	var (
		kept  []float64
		keptY []float64
		nKept int
	)
	for i := 0; i < rows; i++ {
		if math.IsNaN(y.AtVec(i)) {
			continue
		}
		missing := false
		for j := 0; j < cols; j++ {
			if math.IsNaN(x.At(i, j)) {
				missing = true
				break
			}
		}
		if missing {
			continue
		}
		for j := 0; j < cols; j++ {
			kept = append(kept, x.At(i, j))
		}
		keptY = append(keptY, y.AtVec(i))
		nKept++
	}

	if nKept == 0 {
		// mat.NewDense rejects zero dimensions, so no Dataset can
		// represent "every row dropped".
		return nil
	}

	return &Dataset{
		X: mat.NewDense(nKept, cols, kept),
		Y: mat.NewVecDense(nKept, keptY),
	}
}
