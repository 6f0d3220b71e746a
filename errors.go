package quadfit

import "errors"

// Sentinel errors returned by Fit and Model methods. Callers branch on the
// failure category with errors.Is; messages carry additional context but
// the kind is what is stable.
var (
	// ErrEmptyInput indicates the predictor matrix has a zero dimension.
	ErrEmptyInput = errors.New("quadfit: empty input")

	// ErrNonfiniteInput indicates x or y contains an infinite value. The
	// wrapped message names the offending argument.
	ErrNonfiniteInput = errors.New("quadfit: non-finite input")

	// ErrInvalidOption indicates a fit option could not be applied, such as
	// a nil plotter.
	ErrInvalidOption = errors.New("quadfit: invalid fit option")

	// ErrInsufficientRows indicates fewer than 3 observations were supplied.
	ErrInsufficientRows = errors.New("quadfit: insufficient rows")

	// ErrTooManyColumns indicates more than 2 predictor columns were supplied.
	ErrTooManyColumns = errors.New("quadfit: too many predictor columns")

	// ErrDimensionMismatch indicates the row counts of x and y differ, or a
	// prediction was requested with the wrong number of predictor values.
	ErrDimensionMismatch = errors.New("quadfit: dimension mismatch")

	// ErrAllValuesMissing indicates every observation row contained a NaN,
	// leaving no finite data to fit.
	ErrAllValuesMissing = errors.New("quadfit: all values missing")

	// ErrSolveFailed wraps an unexpected failure from the least-squares
	// solver. Rank deficiency is not reported through this error; see Fit.
	ErrSolveFailed = errors.New("quadfit: least-squares solve failed")
)
