package quadfit

import (
	"errors"
	"os"

	"github.com/louisepb/Nottingham-Workshop/internal/options"
)

// fitConfig holds the per-call configuration assembled from FitOptions.
type fitConfig struct {
	plotter Plotter
}

// defaultFitConfig returns the default configuration: no plotting.
func defaultFitConfig() fitConfig {
	return fitConfig{}
}

// FitOption is a functional option for Fit.
type FitOption = options.Option[*fitConfig]

// WithPlot enables visualization of the fitted model using the default
// ASCII plotter writing to standard output.
func WithPlot() FitOption {
	return options.NoError(func(cfg *fitConfig) {
		cfg.plotter = NewASCIIPlotter(os.Stdout)
	})
}

// WithPlotter enables visualization through a custom Plotter. A nil
// plotter is rejected; Fit reports it as ErrInvalidOption.
func WithPlotter(p Plotter) FitOption {
	return options.New(func(cfg *fitConfig) error {
		if p == nil {
			return errors.New("plotter must not be nil")
		}
		cfg.plotter = p

		return nil
	})
}
