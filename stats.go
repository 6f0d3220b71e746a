package quadfit

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// fittedValues evaluates the model at every cleaned observation.
func fittedValues(d *Dataset, coeffs []float64) []float64 {
	n := d.Rows()
	p := d.Predictors()

	row := make([]float64, len(coeffs))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if p == 1 {
			quadraticRow(row, d.X.At(i, 0))
		} else {
			quadraticRow(row, d.X.At(i, 0), d.X.At(i, 1))
		}
		var sum float64
		for j, c := range coeffs {
			sum += c * row[j]
		}
		out[i] = sum
	}

	return out
}

// rSquared computes the coefficient of determination. A constant response
// (zero total variance) yields 0 rather than NaN.
func rSquared(observed, fitted []float64) float64 {
	r2 := stat.RSquaredFrom(fitted, observed, nil)
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		return 0
	}

	return r2
}

// rmse computes the root mean square error of the fit.
func rmse(observed, fitted []float64) float64 {
	var sumSq float64
	for i := range observed {
		diff := observed[i] - fitted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}
