package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/mat"

	quadfit "github.com/louisepb/Nottingham-Workshop"
)

type demoFlags struct {
	rows       int
	predictors int
	noise      float64
	seed       int64
	plot       bool
}

func bindFlags(fs *pflag.FlagSet, f *demoFlags) {
	fs.IntVar(&f.rows, "rows", 50, "number of synthetic observations")
	fs.IntVar(&f.predictors, "predictors", 1, "number of predictor variables (1 or 2)")
	fs.Float64Var(&f.noise, "noise", 0.1, "standard deviation of additive noise")
	fs.Int64Var(&f.seed, "seed", 1, "random seed for synthetic data")
	fs.BoolVar(&f.plot, "plot", false, "render an ASCII plot of the fit")
}

func Execute(ctx context.Context) error {
	var flags demoFlags

	root := &cobra.Command{
		Use:   "quadfit",
		Short: "Fit a quadratic model to synthetic data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(flags)
		},
	}
	bindFlags(root.Flags(), &flags)

	return root.ExecuteContext(ctx)
}

func runDemo(flags demoFlags) error {
	if flags.predictors != 1 && flags.predictors != 2 {
		return fmt.Errorf("predictors must be 1 or 2, got %d", flags.predictors)
	}

	rng := rand.New(rand.NewSource(flags.seed))
	x, y, truth := syntheticData(rng, flags.rows, flags.predictors, flags.noise)

	log.Info().
		Int("rows", flags.rows).
		Int("predictors", flags.predictors).
		Float64("noise", flags.noise).
		Floats64("true_coefficients", truth).
		Msg("generated synthetic quadratic data")

	var opts []quadfit.FitOption
	if flags.plot {
		opts = append(opts, quadfit.WithPlot())
	}

	model, err := quadfit.Fit(x, y, opts...)
	if err != nil {
		return fmt.Errorf("fit failed: %w", err)
	}

	log.Info().
		Floats64("coefficients", model.Coefficients).
		Float64("r_squared", model.RSquared).
		Float64("rmse", model.RMSE).
		Msg(model.Formula)

	return nil
}

// syntheticData draws predictors uniformly from [-3, 3), evaluates a fixed
// quadratic relationship and perturbs the response with Gaussian noise. It
// returns the inputs and the true coefficients for comparison.
func syntheticData(rng *rand.Rand, rows, predictors int, noise float64) (*mat.Dense, *mat.VecDense, []float64) {
	x := mat.NewDense(rows, predictors, nil)
	y := mat.NewVecDense(rows, nil)

	var truth []float64
	if predictors == 1 {
		truth = []float64{2, -1, 0.5} // y = 2 - x + 0.5x²
	} else {
		truth = []float64{1, 0.5, -2, 0.25, 1.5, -0.75}
	}

	for i := 0; i < rows; i++ {
		x1 := rng.Float64()*6 - 3
		var v float64
		if predictors == 1 {
			x.Set(i, 0, x1)
			v = truth[0] + truth[1]*x1 + truth[2]*x1*x1
		} else {
			x2 := rng.Float64()*6 - 3
			x.Set(i, 0, x1)
			x.Set(i, 1, x2)
			v = truth[0] + truth[1]*x1 + truth[2]*x2 +
				truth[3]*x1*x1 + truth[4]*x2*x2 + truth[5]*x1*x2
		}
		y.SetVec(i, v+rng.NormFloat64()*noise)
	}

	return x, y, truth
}
