package quadfit

import "gonum.org/v1/gonum/mat"

// numTerms returns the number of quadratic basis terms for the given
// predictor count: 3 for a curve, 6 for a surface.
func numTerms(predictors int) int {
	if predictors == 1 {
		return 3
	}

	return 6
}

// quadraticRow writes the quadratic basis expansion of one observation
// into dst and returns it. The column order is the contract shared by the
// design matrix, the coefficient vector and Model.Predict:
//
//	1 predictor:  [1, x, x²]
//	2 predictors: [1, x1, x2, x1², x2², x1*x2]
func quadraticRow(dst []float64, xs ...float64) []float64 {
	switch len(xs) {
	case 1:
		x := xs[0]
		dst[0] = 1
		dst[1] = x
		dst[2] = x * x
	case 2:
		x1, x2 := xs[0], xs[1]
		dst[0] = 1
		dst[1] = x1
		dst[2] = x2
		dst[3] = x1 * x1
		dst[4] = x2 * x2
		dst[5] = x1 * x2
	}

	return dst
}

// designMatrix builds the quadratic design matrix for the cleaned dataset,
// one row of basis terms per observation.
func designMatrix(d *Dataset) *mat.Dense {
	n := d.Rows()
	p := d.Predictors()
	terms := numTerms(p)

	a := mat.NewDense(n, terms, nil)
	row := make([]float64, terms)
	for i := 0; i < n; i++ {
		if p == 1 {
			quadraticRow(row, d.X.At(i, 0))
		} else {
			quadraticRow(row, d.X.At(i, 0), d.X.At(i, 1))
		}
		a.SetRow(i, row)
	}

	return a
}
