package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type strideConfig struct {
	stride   int
	padding  bool
	lastCall string
}

var errBadStride = errors.New("stride must be positive")

func withStride(n int) Option[*strideConfig] {
	return New(func(c *strideConfig) error {
		if n <= 0 {
			return errBadStride
		}
		c.stride = n
		c.lastCall = "stride"

		return nil
	})
}

func withPadding(enabled bool) Option[*strideConfig] {
	return NoError(func(c *strideConfig) {
		c.padding = enabled
		c.lastCall = "padding"
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &strideConfig{}
		err := Apply(cfg, withStride(3), withPadding(true))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.stride)
		require.True(t, cfg.padding)
		require.Equal(t, "padding", cfg.lastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &strideConfig{}
		err := Apply(cfg, withPadding(true), withStride(0), withStride(7))
		require.ErrorIs(t, err, errBadStride)
		require.Equal(t, 0, cfg.stride)
		require.Equal(t, "padding", cfg.lastCall)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &strideConfig{}
		var maybe Option[*strideConfig]
		err := Apply(cfg, maybe, withStride(5))
		require.NoError(t, err)
		require.Equal(t, 5, cfg.stride)
	})

	t.Run("empty options leave target unchanged", func(t *testing.T) {
		cfg := &strideConfig{stride: 9}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 9, cfg.stride)
		require.Empty(t, cfg.lastCall)
	})
}

func TestGenericTargets(t *testing.T) {
	var n int
	require.NoError(t, Apply(&n, Option[*int](NoError(func(p *int) { *p = 42 }))))
	require.Equal(t, 42, n)
}
