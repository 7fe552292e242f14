package vector

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/internal/metrics"
	"github.com/arloliu/pixels/internal/options"
)

type vectorConfig struct {
	logger    *zap.Logger
	alignment int
	metrics   *metrics.Recorder
}

// VectorOption configures a column vector.
type VectorOption = options.Option[*vectorConfig]

func newVectorConfig(defaultAlignment int, opts []VectorOption) (*vectorConfig, error) {
	cfg := &vectorConfig{
		logger:    zap.NewNop(),
		alignment: defaultAlignment,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithLogger sets the logger that reports skipped text values. The default discards everything.
func WithLogger(logger *zap.Logger) VectorOption {
	return options.NoError(func(cfg *vectorConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	})
}

// WithAlignment overrides the alignment in bytes of owned value buffers.
// It must be a power of two.
func WithAlignment(alignment int) VectorOption {
	return options.New(func(cfg *vectorConfig) error {
		if alignment <= 0 || alignment&(alignment-1) != 0 {
			return fmt.Errorf("%w: alignment %d is not a power of two", errs.ErrInvalidArgument, alignment)
		}
		cfg.alignment = alignment

		return nil
	})
}

// WithMetrics records skipped text values on reg.
func WithMetrics(reg prometheus.Registerer) VectorOption {
	return options.New(func(cfg *vectorConfig) error {
		recorder, err := metrics.NewRecorder(reg)
		if err != nil {
			return err
		}
		cfg.metrics = recorder

		return nil
	})
}
