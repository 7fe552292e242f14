// Package metrics records column writer and vector activity as Prometheus metrics.
//
// A nil *Recorder is valid and records nothing, so components hold a recorder
// unconditionally and only the constructors decide whether metrics are on.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pixels"

// Recorder owns the pixels collectors registered on one registry.
type Recorder struct {
	pixelsFlushed *prometheus.CounterVec
	bytesEmitted  *prometheus.CounterVec
	rowsWritten   *prometheus.CounterVec
	rowsSkipped   *prometheus.CounterVec
	pixelBytes    *prometheus.HistogramVec
}

// NewRecorder registers the pixels collectors on reg. Collectors already registered by an
// earlier recorder on the same registry are reused, so every writer of a file can call
// NewRecorder with a shared registry.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		return nil, nil
	}

	var err error
	r := &Recorder{}

	r.pixelsFlushed, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pixels_flushed_total",
		Help:      "Number of pixels emitted by column writers",
	}, []string{"column", "encoding"}))
	if err != nil {
		return nil, err
	}

	r.bytesEmitted, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bytes_emitted_total",
		Help:      "Number of bytes column writers appended to their sinks",
	}, []string{"column", "stream"}))
	if err != nil {
		return nil, err
	}

	r.rowsWritten, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_written_total",
		Help:      "Number of rows consumed by column writers",
	}, []string{"column"}))
	if err != nil {
		return nil, err
	}

	r.rowsSkipped, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_skipped_total",
		Help:      "Number of text values column vectors rejected and skipped",
	}, []string{"column", "reason"}))
	if err != nil {
		return nil, err
	}

	r.pixelBytes, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "pixel_encoded_bytes",
		Help:      "Encoded size of a pixel",
		Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
	}, []string{"column", "encoding"}))
	if err != nil {
		return nil, err
	}

	return r, nil
}

// PixelFlushed records one emitted pixel of size bytes.
func (r *Recorder) PixelFlushed(column, encoding string, size int) {
	if r == nil {
		return
	}

	r.pixelsFlushed.WithLabelValues(column, encoding).Inc()
	r.bytesEmitted.WithLabelValues(column, "data").Add(float64(size))
	r.pixelBytes.WithLabelValues(column, encoding).Observe(float64(size))
}

// NullsEmitted records the bytes of a null bitmap stream.
func (r *Recorder) NullsEmitted(column string, size int) {
	if r == nil {
		return
	}

	r.bytesEmitted.WithLabelValues(column, "nulls").Add(float64(size))
}

func (r *Recorder) RowsWritten(column string, rows int) {
	if r == nil {
		return
	}

	r.rowsWritten.WithLabelValues(column).Add(float64(rows))
}

func (r *Recorder) RowSkipped(column, reason string) {
	if r == nil {
		return
	}

	r.rowsSkipped.WithLabelValues(column, reason).Inc()
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}

		return c, err
	}

	return c, nil
}
