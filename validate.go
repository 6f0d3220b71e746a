package quadfit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// minObservations is the smallest number of rows a fit accepts. A quadratic
// curve has 3 coefficients, so anything less is underdetermined before
// cleaning even starts.
const minObservations = 3

// maxPredictors bounds the supported design: 1 predictor fits a curve,
// 2 predictors fit a surface.
const maxPredictors = 2

// validateValues checks the content-level rules on x and y: both must be
// nonempty and free of infinities. NaN is allowed here; it marks a missing
// observation and is handled by row cleaning.
func validateValues(x mat.Matrix, y *mat.VecDense) error {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("%w: x is %dx%d", ErrEmptyInput, rows, cols)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if math.IsInf(x.At(i, j), 0) {
				return fmt.Errorf("%w: x contains an infinite value at (%d,%d)", ErrNonfiniteInput, i, j)
			}
		}
	}
	if y == nil || y.Len() == 0 {
		return fmt.Errorf("%w: y is empty", ErrNonfiniteInput)
	}
	for i := 0; i < y.Len(); i++ {
		if math.IsInf(y.AtVec(i), 0) {
			return fmt.Errorf("%w: y contains an infinite value at row %d", ErrNonfiniteInput, i)
		}
	}

	return nil
}

// validateShape checks the structural rules on x and y after the fit
// options have been applied: enough observations, a supported predictor
// count, and matching row counts.
func validateShape(x mat.Matrix, y *mat.VecDense) error {
	rows, cols := x.Dims()
	if rows < minObservations {
		return fmt.Errorf("%w: got %d rows, need at least %d", ErrInsufficientRows, rows, minObservations)
	}
	if cols > maxPredictors {
		return fmt.Errorf("%w: got %d columns, at most %d supported", ErrTooManyColumns, cols, maxPredictors)
	}
	if rows != y.Len() {
		return fmt.Errorf("%w: x has %d rows, y has %d", ErrDimensionMismatch, rows, y.Len())
	}

	return nil
}
