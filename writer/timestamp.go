package writer

import (
	"fmt"

	"github.com/arloliu/pixels/encoding"
	"github.com/arloliu/pixels/endian"
	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/format"
	"github.com/arloliu/pixels/internal/pool"
	"github.com/arloliu/pixels/sink"
	"github.com/arloliu/pixels/vector"
)

// TimestampColumnWriter writes timestamp columns as microseconds since the epoch.
//
// Null rows always take a zero slot, whatever the null padding option says. From
// EncodingLevel2 on the slots of each pixel are run-length encoded.
type TimestampColumnWriter struct {
	columnWriter
	precision int

	values        []int64
	releaseValues func()

	runlengthEncoding bool
	encoder           encoding.ColumnarEncoder[int64]
}

var _ ColumnWriter = (*TimestampColumnWriter)(nil)

// NewTimestampColumnWriter creates a writer for td, which must describe a timestamp.
func NewTimestampColumnWriter(td format.TypeDescription, out sink.ByteSink, opts ...WriterOption) (*TimestampColumnWriter, error) {
	if td.Category != format.CategoryTimestamp {
		return nil, fmt.Errorf("%w: %s is not a timestamp", errs.ErrInvalidTypeDescription, td)
	}
	if td.Precision < 0 || td.Precision > 9 {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTypeDescription, td)
	}

	cfg, err := newWriterConfig(opts)
	if err != nil {
		return nil, err
	}

	w := &TimestampColumnWriter{
		precision:         td.Precision,
		runlengthEncoding: cfg.encodingLevel.Ge(format.EncodingLevel2),
	}

	kind := format.ColumnEncodingNone
	if w.runlengthEncoding {
		kind = format.ColumnEncodingRunLength
		w.encoder = encoding.NewRunLenIntEncoder(true)
	} else {
		w.encoder = encoding.NewInt64RawEncoder(endian.GetEngine(cfg.byteOrder))
	}

	if err := w.init(format.CategoryTimestamp, out, kind, cfg); err != nil {
		return nil, err
	}
	w.nullsPadding = true

	w.values, w.releaseValues = pool.GetInt64Slice(cfg.pixelStride)
	w.encodePixel = w.encode
	w.releaseAcc = w.release

	return w, nil
}

// Precision returns the fractional second digits declared by the column type.
func (w *TimestampColumnWriter) Precision() int { return w.precision }

// Write consumes rowCount rows of a TimestampColumnVector.
func (w *TimestampColumnWriter) Write(v vector.ColumnVector, rowCount int) (int64, error) {
	tv, ok := v.(*vector.TimestampColumnVector)
	if !ok {
		return 0, fmt.Errorf("%w: timestamp writer cannot write %T", errs.ErrVectorTypeMismatch, v)
	}
	if err := w.checkWrite(tv, rowCount); err != nil {
		return 0, err
	}

	return w.write(tv, rowCount, func(row int, null bool) {
		i := w.nextSlot()
		if null {
			w.values[i] = 0
			return
		}

		value := tv.MicrosAt(row)
		w.values[i] = value
		w.pixelStats.Update(value)
	})
}

func (w *TimestampColumnWriter) encode(buf *pool.ByteBuffer) {
	w.encoder.WriteSlice(w.values[:w.curPixelVectorIndex])
	buf.MustWrite(w.encoder.Bytes())
	w.encoder.Finish()
}

func (w *TimestampColumnWriter) release() {
	if rle, ok := w.encoder.(*encoding.RunLenIntEncoder); ok {
		rle.Clear()
	} else {
		w.encoder.Finish()
	}
	w.encoder = nil
	w.releaseValues()
	w.values = nil
}
