package writer

import (
	"fmt"

	"github.com/arloliu/pixels/encoding"
	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/format"
	"github.com/arloliu/pixels/internal/pool"
	"github.com/arloliu/pixels/sink"
	"github.com/arloliu/pixels/vector"
)

// DecimalColumnWriter writes the unscaled values of decimal(precision, scale) columns.
//
// Precisions up to 18 are written as 64-bit slots, wider ones as 128-bit slots. Null rows
// take a zero slot only when the effective null padding is on.
type DecimalColumnWriter struct {
	columnWriter
	precision int
	scale     int
	physical  format.PhysicalType

	lo        []int64
	hi        []int64
	releaseLo func()
	releaseHi func()
}

var _ ColumnWriter = (*DecimalColumnWriter)(nil)

// NewDecimalColumnWriter creates a writer for td, which must describe a decimal of at most
// 38 digits.
func NewDecimalColumnWriter(td format.TypeDescription, out sink.ByteSink, opts ...WriterOption) (*DecimalColumnWriter, error) {
	if td.Category != format.CategoryDecimal {
		return nil, fmt.Errorf("%w: %s is not a decimal", errs.ErrInvalidTypeDescription, td)
	}

	physical, ok := format.DecimalPhysicalType(td.Precision)
	if !ok {
		return nil, fmt.Errorf("%w: precision %d", errs.ErrPrecisionTooLarge, td.Precision)
	}
	if td.Precision < 1 || td.Scale < 0 || td.Scale > td.Precision {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTypeDescription, td)
	}

	cfg, err := newWriterConfig(opts)
	if err != nil {
		return nil, err
	}

	w := &DecimalColumnWriter{
		precision: td.Precision,
		scale:     td.Scale,
		physical:  physical,
	}
	if err := w.init(format.CategoryDecimal, out, format.ColumnEncodingNone, cfg); err != nil {
		return nil, err
	}
	w.nullsPadding = decideNullsPadding(cfg)

	w.lo, w.releaseLo = pool.GetInt64Slice(cfg.pixelStride)
	if physical == format.PhysicalInt128 {
		w.hi, w.releaseHi = pool.GetInt64Slice(cfg.pixelStride)
	}
	w.encodePixel = w.encode
	w.releaseAcc = w.release

	return w, nil
}

// Precision returns the number of decimal digits of the column.
func (w *DecimalColumnWriter) Precision() int { return w.precision }

// Scale returns the number of fractional digits of the column.
func (w *DecimalColumnWriter) Scale() int { return w.scale }

// Write consumes rowCount rows of a DecimalColumnVector with the writer's precision and scale.
func (w *DecimalColumnWriter) Write(v vector.ColumnVector, rowCount int) (int64, error) {
	dv, ok := v.(*vector.DecimalColumnVector)
	if !ok {
		return 0, fmt.Errorf("%w: decimal writer cannot write %T", errs.ErrVectorTypeMismatch, v)
	}
	if dv.Precision() != w.precision || dv.Scale() != w.scale {
		return 0, fmt.Errorf("%w: decimal(%d,%d) vector for a decimal(%d,%d) column",
			errs.ErrVectorTypeMismatch, dv.Precision(), dv.Scale(), w.precision, w.scale)
	}
	if err := w.checkWrite(dv, rowCount); err != nil {
		return 0, err
	}

	return w.write(dv, rowCount, func(row int, null bool) {
		if null {
			if w.nullsPadding {
				i := w.nextSlot()
				w.lo[i] = 0
				if w.hi != nil {
					w.hi[i] = 0
				}
			}

			return
		}

		i := w.nextSlot()
		if w.hi == nil {
			value := dv.Unscaled(row)
			w.lo[i] = value
			w.pixelStats.Update(value)

			return
		}

		value := dv.Int128At(row)
		w.lo[i] = int64(value.Lo) //nolint:gosec
		w.hi[i] = value.Hi
		if value.IsInt64() {
			w.pixelStats.Update(int64(value.Lo)) //nolint:gosec
		} else {
			w.pixelStats.UpdateWide()
		}
	})
}

func (w *DecimalColumnWriter) encode(buf *pool.ByteBuffer) {
	n := w.curPixelVectorIndex
	if w.hi == nil {
		encoding.WriteLongs(buf, w.engine, w.lo[:n])
		return
	}

	buf.Grow(n * w.physical.Size())
	for i := range n {
		encoding.WriteInt128(buf, w.engine, w.hi[i], uint64(w.lo[i])) //nolint:gosec
	}
}

func (w *DecimalColumnWriter) release() {
	w.releaseLo()
	w.lo = nil
	if w.releaseHi != nil {
		w.releaseHi()
		w.hi = nil
	}
}
