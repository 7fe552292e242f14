package writer

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/format"
	"github.com/arloliu/pixels/internal/options"
	"github.com/arloliu/pixels/vector"
)

type writerConfig struct {
	pixelStride   int
	encodingLevel format.EncodingLevel
	nullsPadding  bool
	byteOrder     format.ByteOrder
	logger        *zap.Logger
	registerer    prometheus.Registerer
}

// WriterOption configures a column writer.
type WriterOption = options.Option[*writerConfig]

func newWriterConfig(opts []WriterOption) (*writerConfig, error) {
	cfg := &writerConfig{
		pixelStride:   vector.DefaultSize,
		encodingLevel: format.EncodingLevel0,
		byteOrder:     format.LittleEndian,
		logger:        zap.NewNop(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithPixelStride sets the number of rows per pixel. The default is vector.DefaultSize.
func WithPixelStride(stride int) WriterOption {
	return options.New(func(cfg *writerConfig) error {
		if stride <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidPixelStride, stride)
		}
		cfg.pixelStride = stride

		return nil
	})
}

// WithEncodingLevel sets the encoding level. EncodingLevel2 and above enable run-length
// encoding and disable null padding.
func WithEncodingLevel(level format.EncodingLevel) WriterOption {
	return options.New(func(cfg *writerConfig) error {
		if !level.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidEncodingLevel, level)
		}
		cfg.encodingLevel = level

		return nil
	})
}

// WithNullsPadding makes null rows occupy a zero value slot. It has no effect from
// EncodingLevel2 on.
func WithNullsPadding(padding bool) WriterOption {
	return options.NoError(func(cfg *writerConfig) {
		cfg.nullsPadding = padding
	})
}

// WithLittleEndian writes fixed-width values in little-endian order. This is the default.
func WithLittleEndian() WriterOption {
	return options.NoError(func(cfg *writerConfig) {
		cfg.byteOrder = format.LittleEndian
	})
}

// WithBigEndian writes fixed-width values in big-endian order.
func WithBigEndian() WriterOption {
	return options.NoError(func(cfg *writerConfig) {
		cfg.byteOrder = format.BigEndian
	})
}

// WithLogger sets the logger for pixel flushes and discarded rows.
func WithLogger(logger *zap.Logger) WriterOption {
	return options.NoError(func(cfg *writerConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	})
}

// WithPrometheusRegisterer records pixel and row counters on reg. Writers sharing a
// registerer share the collectors.
func WithPrometheusRegisterer(reg prometheus.Registerer) WriterOption {
	return options.NoError(func(cfg *writerConfig) {
		cfg.registerer = reg
	})
}

// decideNullsPadding returns the effective null padding flag of a writer that honors the
// option.
func decideNullsPadding(cfg *writerConfig) bool {
	if cfg.encodingLevel.Ge(format.EncodingLevel2) {
		return false
	}

	return cfg.nullsPadding
}
