package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fitLikeConfig mimics the configuration targets in the root package.
type fitLikeConfig struct {
	tolerance float64
	verbose   bool
}

func withTolerance(tol float64) Option[*fitLikeConfig] {
	return New(func(c *fitLikeConfig) error {
		if tol <= 0 {
			return errors.New("tolerance must be positive")
		}
		c.tolerance = tol

		return nil
	})
}

func withVerbose() Option[*fitLikeConfig] {
	return NoError(func(c *fitLikeConfig) {
		c.verbose = true
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &fitLikeConfig{}
		err := Apply(cfg, withTolerance(1e-8), withVerbose())
		require.NoError(t, err)
		require.Equal(t, 1e-8, cfg.tolerance)
		require.True(t, cfg.verbose)
	})

	t.Run("no options leaves target untouched", func(t *testing.T) {
		cfg := &fitLikeConfig{tolerance: 0.5}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 0.5, cfg.tolerance)
	})

	t.Run("stops at first failing option", func(t *testing.T) {
		cfg := &fitLikeConfig{}
		err := Apply(cfg, withTolerance(-1), withVerbose())
		require.Error(t, err)
		require.Contains(t, err.Error(), "tolerance must be positive")
		require.False(t, cfg.verbose, "options after the failure must not apply")
	})
}

func TestNew_PropagatesError(t *testing.T) {
	cfg := &fitLikeConfig{}
	opt := New(func(c *fitLikeConfig) error {
		return errors.New("boom")
	})
	require.EqualError(t, opt.apply(cfg), "boom")
}

func TestNoError_NeverFails(t *testing.T) {
	cfg := &fitLikeConfig{}
	opt := NoError(func(c *fitLikeConfig) {
		c.verbose = true
	})
	require.NoError(t, opt.apply(cfg))
	require.True(t, cfg.verbose)
}
