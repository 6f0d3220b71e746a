package quadfit

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/louisepb/Nottingham-Workshop/internal/options"
)

// Fit fits a quadratic regression model to the observations in x and y by
// linear least squares.
//
// x is the predictor matrix with one row per observation and 1 or 2
// columns; y is the response vector with one entry per observation.
// Neither may contain infinite values. NaN entries mark missing
// observations: any row of x or y containing a NaN is dropped before
// fitting.
//
// Validation is fail-fast and ordered; the first violated rule determines
// the returned error:
//
//  1. x must be nonempty (ErrEmptyInput)
//  2. x must be finite (ErrNonfiniteInput)
//  3. y must be nonempty and finite (ErrNonfiniteInput)
//  4. options must apply cleanly (ErrInvalidOption)
//  5. x must have at least 3 rows (ErrInsufficientRows)
//  6. x must have at most 2 columns (ErrTooManyColumns)
//  7. x and y row counts must match (ErrDimensionMismatch)
//
// If cleaning drops every row, Fit fails with ErrAllValuesMissing.
//
// The solve uses a QR factorization of the quadratic design matrix. A
// rank-deficient design is not an error: the solver's conditioning
// complaint is treated as advisory and the best-effort solution is
// returned.
//
// When a plotter is configured (WithPlot, WithPlotter), the cleaned data
// and fitted model are handed to it after the solve. The plot is purely a
// side effect: a plotter failure is ignored and the returned model is the
// same as without one.
//
// Example:
//
//	x := mat.NewDense(4, 2, []float64{1, 2, 2, 3, 3, 5, 4, 4})
//	y := mat.NewVecDense(4, []float64{3.1, 7.9, 18.7, 21.2})
//	model, err := quadfit.Fit(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Coefficients) // [c0 c1 c2 c3 c4 c5]
func Fit(x mat.Matrix, y *mat.VecDense, opts ...FitOption) (*Model, error) {
	if err := validateValues(x, y); err != nil {
		return nil, err
	}

	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}

	if err := validateShape(x, y); err != nil {
		return nil, err
	}

	data := cleanRows(x, y)
	if data == nil {
		return nil, fmt.Errorf("%w: every row of the input contains a NaN", ErrAllValuesMissing)
	}

	coeffs, err := solveLeastSquares(designMatrix(data), data.Y)
	if err != nil {
		return nil, err
	}

	model := newModel(data, coeffs)

	if cfg.plotter != nil {
		// Visualization never influences the fit result.
		_ = cfg.plotter.Plot(data, model)
	}

	return model, nil
}

// solveLeastSquares computes the coefficient vector minimizing ‖a·c − y‖₂
// through a QR factorization of the design matrix.
func solveLeastSquares(a *mat.Dense, y *mat.VecDense) ([]float64, error) {
	_, terms := a.Dims()
	c := mat.NewVecDense(terms, nil)

	var qr mat.QR
	qr.Factorize(a)

	if err := qr.SolveVecTo(c, false, y); err != nil {
		// mat.Condition flags an ill-conditioned (rank-deficient) design
		// but the solution is still the solver's best effort; keep it.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: %v", ErrSolveFailed, err)
		}
	}

	coeffs := make([]float64, terms)
	for i := range coeffs {
		coeffs[i] = c.AtVec(i)
	}

	return coeffs, nil
}
