// Package quadfit fits quadratic regression models to observed data by
// linear least squares.
//
// The package supports one or two predictor variables. With one predictor
// it fits a quadratic curve y = c0 + c1*x + c2*x², returning 3
// coefficients. With two predictors it fits a quadratic surface
// y = c0 + c1*x1 + c2*x2 + c3*x1² + c4*x2² + c5*x1*x2, returning 6
// coefficients. Coefficients are always ordered constant-first, matching
// the design matrix column order above.
//
// # Basic Usage
//
// Fitting a curve to observed data:
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//
//	    quadfit "github.com/louisepb/Nottingham-Workshop"
//	)
//
//	x := mat.NewDense(5, 1, []float64{-2, -1, 0, 1, 2})
//	y := mat.NewVecDense(5, []float64{9, 4, 1, 0, 1})
//
//	model, err := quadfit.Fit(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Formula)       // fitted equation
//	fmt.Println(model.Coefficients)  // [c0 c1 c2]
//
// # Validation and Missing Values
//
// Inputs are validated up front; the first violation wins and is reported
// through a sentinel error matchable with errors.Is (see ErrEmptyInput and
// friends). Infinite values are rejected outright, while NaN values mark
// missing observations: any row of x or y containing a NaN is dropped
// before fitting. If every row is dropped, Fit fails with
// ErrAllValuesMissing rather than handing a degenerate system to the
// solver.
//
// # Fitting
//
// The least-squares system is solved through a QR factorization of the
// design matrix (gonum's mat.QR). Rank-deficient designs do not fail: the
// solver's conditioning warning is treated as advisory and the best-effort
// solution is returned.
//
// # Visualization
//
// Plotting is an optional side effect, disabled by default and delegated
// to a swappable Plotter collaborator:
//
//	model, err := quadfit.Fit(x, y, quadfit.WithPlot())
//
// The returned model is identical whether or not a plotter is configured,
// and a plotter failure never affects the fit result.
package quadfit
