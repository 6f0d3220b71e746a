package quadfit

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Model is a fitted quadratic regression model.
//
// Fields:
//   - Coefficients: fitted parameters, constant-first, in the design
//     matrix column order (length 3 for one predictor, 6 for two)
//   - NumPredictors: number of predictor variables (1 or 2)
//   - Rows: number of observations used after missing rows were dropped
//   - RSquared: coefficient of determination over the cleaned data
//   - RMSE: root mean square error over the cleaned data
//   - Formula: human-readable fitted equation
type Model struct {
	Coefficients  []float64
	NumPredictors int
	Rows          int
	RSquared      float64
	RMSE          float64
	Formula       string
}

// Predict evaluates the fitted curve or surface at the given predictor
// values. The number of values must match the model's predictor count;
// otherwise Predict fails with ErrDimensionMismatch.
func (m *Model) Predict(xs ...float64) (float64, error) {
	if len(xs) != m.NumPredictors {
		return 0, fmt.Errorf("%w: model has %d predictors, got %d values",
			ErrDimensionMismatch, m.NumPredictors, len(xs))
	}

	row := quadraticRow(make([]float64, len(m.Coefficients)), xs...)

	return floats.Dot(row, m.Coefficients), nil
}

// String returns a short human-readable summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Predictors: %d, Rows: %d, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.NumPredictors, m.Rows, m.RSquared, m.RMSE, m.Formula)
}

// newModel assembles a Model from the cleaned data and solved coefficients,
// computing the fit statistics and formula.
func newModel(d *Dataset, coeffs []float64) *Model {
	fitted := fittedValues(d, coeffs)
	observed := make([]float64, d.Rows())
	for i := range observed {
		observed[i] = d.Y.AtVec(i)
	}

	return &Model{
		Coefficients:  coeffs,
		NumPredictors: d.Predictors(),
		Rows:          d.Rows(),
		RSquared:      rSquared(observed, fitted),
		RMSE:          rmse(observed, fitted),
		Formula:       formula(coeffs, d.Predictors()),
	}
}

// formula renders the fitted equation in the coefficient order of the
// design matrix.
func formula(c []float64, predictors int) string {
	if predictors == 1 {
		return fmt.Sprintf("y = %.4g + %.4g*x + %.4g*x²", c[0], c[1], c[2])
	}

	return fmt.Sprintf("y = %.4g + %.4g*x1 + %.4g*x2 + %.4g*x1² + %.4g*x2² + %.4g*x1*x2",
		c[0], c[1], c[2], c[3], c[4], c[5])
}
