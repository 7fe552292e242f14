package writer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/pixels/endian"
	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/format"
	"github.com/arloliu/pixels/internal/hash"
	"github.com/arloliu/pixels/internal/metrics"
	"github.com/arloliu/pixels/internal/pool"
	"github.com/arloliu/pixels/section"
	"github.com/arloliu/pixels/sink"
	"github.com/arloliu/pixels/vector"
)

// ColumnWriter encodes the rows of one column into pixels.
type ColumnWriter interface {
	// Write consumes the first rowCount rows of v and returns the sink position after any
	// pixels emitted by the call. The vector variant is checked before anything changes.
	//
	// When the sink fails the error is a *PartialWriteError. Its Rows leading rows were taken
	// in and stay buffered, so a retry must resume at row Rows of v.
	Write(v vector.ColumnVector, rowCount int) (int64, error)

	// Flush emits the buffered rows as a short pixel.
	Flush() error

	// FinishChunk flushes, appends the null bitmap stream of the chunk and returns the chunk
	// index. The writer then starts a new chunk on the same sink.
	FinishChunk() (section.ChunkIndex, error)

	// ColumnChunkEncoding returns the encoding of every pixel the writer emits.
	ColumnChunkEncoding() format.ColumnEncoding

	// PixelEntries returns the index entries of the pixels emitted in the current chunk.
	PixelEntries() []section.PixelEntry

	// Statistics returns the statistics of the current chunk, buffered rows included.
	Statistics() section.IntegerStatistics

	// BufferedRows returns the number of rows of the pixel being filled.
	BufferedRows() int

	// PixelCount returns the number of pixels emitted in the current chunk.
	PixelCount() int

	// Close releases the pooled buffers. Buffered rows are discarded. It is idempotent.
	Close() error
}

// New creates the column writer for td.
func New(td format.TypeDescription, out sink.ByteSink, opts ...WriterOption) (ColumnWriter, error) {
	switch td.Category {
	case format.CategoryDecimal:
		return NewDecimalColumnWriter(td, out, opts...)
	case format.CategoryTimestamp:
		return NewTimestampColumnWriter(td, out, opts...)
	default:
		return nil, fmt.Errorf("%w: no column writer for %s", errs.ErrInvalidTypeDescription, td)
	}
}

// PartialWriteError reports a Write aborted by a sink failure.
type PartialWriteError struct {
	// Rows is the number of leading rows of the vector the writer consumed.
	Rows int
	Err  error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("%d rows consumed: %v", e.Rows, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }

// columnWriter holds the pixel bookkeeping shared by the writers. The embedding writer owns
// the value accumulator and plugs in through encodePixel and releaseAcc.
type columnWriter struct {
	column   string
	out      sink.ByteSink
	engine   endian.EndianEngine
	encoding format.ColumnEncoding
	cfg      *writerConfig
	logger   *zap.Logger
	metrics  *metrics.Recorder

	pixelStride  int
	nullsPadding bool

	curPixelElement     int // rows in the current pixel
	curPixelVectorIndex int // value slots in the current pixel
	hasNull             bool
	isNull              []bool
	releaseIsNull       func()
	pixelStats          section.IntegerStatistics

	entries    []section.PixelEntry
	chunkStats section.IntegerStatistics
	nulls      *pool.ByteBuffer
	digest     *hash.Digest

	closed bool

	encodePixel func(buf *pool.ByteBuffer)
	releaseAcc  func()
}

func (w *columnWriter) init(category format.Category, out sink.ByteSink, kind format.ColumnEncodingKind, cfg *writerConfig) error {
	if out == nil {
		return fmt.Errorf("%w: nil sink", errs.ErrInvalidArgument)
	}

	recorder, err := metrics.NewRecorder(cfg.registerer)
	if err != nil {
		return err
	}

	w.column = category.String()
	w.out = out
	w.engine = endian.GetEngine(cfg.byteOrder)
	w.encoding = format.ColumnEncoding{Kind: kind}
	w.cfg = cfg
	w.logger = cfg.logger.With(zap.String("component", "column_writer"), zap.String("column", w.column))
	w.metrics = recorder
	w.pixelStride = cfg.pixelStride
	w.isNull, w.releaseIsNull = pool.GetBoolSlice(cfg.pixelStride)
	w.nulls = pool.GetChunkBuffer()
	w.digest = hash.NewDigest()

	return nil
}

// checkWrite validates a Write call before any state changes.
func (w *columnWriter) checkWrite(v vector.ColumnVector, rowCount int) error {
	if w.closed {
		return errs.ErrClosed
	}
	if v.Closed() {
		return fmt.Errorf("%w: vector", errs.ErrClosed)
	}
	if rowCount < 0 || rowCount > v.Length() {
		return fmt.Errorf("%w: row count %d, vector length %d", errs.ErrInvalidArgument, rowCount, v.Length())
	}
	if rowCount > 0 && !v.Attached() {
		return errs.ErrBufferNotAttached
	}

	return nil
}

// write walks the first rowCount rows of v, records their null flags and hands each row
// to appendRow, which stores the value slot if any. Full pixels are emitted as they fill.
func (w *columnWriter) write(v vector.ColumnVector, rowCount int, appendRow func(row int, null bool)) (int64, error) {
	for row := 0; row < rowCount; row++ {
		// a pixel left behind by a failed sink is emitted before taking new rows
		if w.curPixelElement >= w.pixelStride {
			if err := w.newPixel(); err != nil {
				w.metrics.RowsWritten(w.column, row)
				return 0, &PartialWriteError{Rows: row, Err: err}
			}
		}

		null := v.IsNull(row)
		w.isNull[w.curPixelElement] = null
		w.curPixelElement++
		if null {
			w.hasNull = true
			w.pixelStats.HasNull = true
		}
		appendRow(row, null)

		if w.curPixelElement >= w.pixelStride {
			if err := w.newPixel(); err != nil {
				w.metrics.RowsWritten(w.column, row+1)
				return 0, &PartialWriteError{Rows: row + 1, Err: err}
			}
		}
	}
	w.metrics.RowsWritten(w.column, rowCount)

	return w.out.WritePos(), nil
}

// nextSlot returns the accumulator index of the next value slot.
func (w *columnWriter) nextSlot() int {
	idx := w.curPixelVectorIndex
	w.curPixelVectorIndex++

	return idx
}

// newPixel encodes the current pixel, appends it to the sink and starts the next one.
func (w *columnWriter) newPixel() error {
	if w.curPixelElement == 0 {
		return nil
	}

	buf := pool.GetPixelBuffer()
	defer pool.PutPixelBuffer(buf)

	w.encodePixel(buf)
	data := buf.Bytes()

	offset := w.out.WritePos()
	if err := w.out.PutBytes(data); err != nil {
		return fmt.Errorf("emit pixel %d of %s column: %w", len(w.entries), w.column, err)
	}

	entry := section.PixelEntry{
		Offset:     offset,
		Length:     len(data),
		Rows:       w.curPixelElement,
		Slots:      w.curPixelVectorIndex,
		HasNull:    w.hasNull,
		Padded:     w.nullsPadding,
		Checksum:   hash.Checksum(data),
		Statistics: w.pixelStats,
	}
	w.entries = append(w.entries, entry)
	w.digest.Add(data)
	w.chunkStats.Merge(w.pixelStats)
	appendNullBitmap(w.nulls, w.isNull[:w.curPixelElement])

	w.metrics.PixelFlushed(w.column, w.encoding.Kind.String(), len(data))
	w.logger.Debug("pixel flushed",
		zap.Int("pixel", len(w.entries)-1),
		zap.Int64("offset", offset),
		zap.Int("bytes", len(data)),
		zap.Int("rows", entry.Rows),
		zap.Int("slots", entry.Slots),
	)

	w.curPixelElement = 0
	w.curPixelVectorIndex = 0
	w.hasNull = false
	w.pixelStats.Reset()

	return nil
}

// Flush emits the buffered rows as a short pixel. It does nothing when no row is buffered.
func (w *columnWriter) Flush() error {
	if w.closed {
		return errs.ErrClosed
	}

	return w.newPixel()
}

// FinishChunk flushes the buffered rows, appends the null bitmap of the chunk and returns
// its index. Pixel entries, statistics and the checksum start over for the next chunk.
func (w *columnWriter) FinishChunk() (section.ChunkIndex, error) {
	if err := w.Flush(); err != nil {
		return section.ChunkIndex{}, err
	}

	idx := section.ChunkIndex{
		Encoding:    w.encoding,
		ByteOrder:   w.cfg.byteOrder,
		PixelStride: w.pixelStride,
		NullsOffset: w.out.WritePos(),
		NullsLength: w.nulls.Len(),
		Checksum:    w.digest.Sum64(),
		Entries:     w.entries,
		Statistics:  w.chunkStats,
	}

	if w.nulls.Len() > 0 {
		if err := w.out.PutBytes(w.nulls.Bytes()); err != nil {
			return section.ChunkIndex{}, fmt.Errorf("emit null bitmap of %s column: %w", w.column, err)
		}
		w.metrics.NullsEmitted(w.column, w.nulls.Len())
	}

	w.logger.Debug("column chunk finished",
		zap.Int("pixels", len(idx.Entries)),
		zap.Int64("nulls_offset", idx.NullsOffset),
		zap.Int("nulls_bytes", idx.NullsLength),
	)

	w.entries = nil
	w.chunkStats.Reset()
	w.nulls.Reset()
	w.digest.Reset()

	return idx, nil
}

// ColumnChunkEncoding returns the encoding chosen at construction.
func (w *columnWriter) ColumnChunkEncoding() format.ColumnEncoding { return w.encoding }

// PixelEntries returns the entries of the pixels emitted in the current chunk. The slice is
// handed over to the chunk index by FinishChunk.
func (w *columnWriter) PixelEntries() []section.PixelEntry { return w.entries }

// Statistics returns the chunk statistics merged with those of the buffered rows.
func (w *columnWriter) Statistics() section.IntegerStatistics {
	stats := w.chunkStats
	stats.Merge(w.pixelStats)

	return stats
}

// BufferedRows returns the number of rows waiting for the next pixel.
func (w *columnWriter) BufferedRows() int { return w.curPixelElement }

// PixelCount returns the number of pixels emitted in the current chunk.
func (w *columnWriter) PixelCount() int { return len(w.entries) }

// HasNull reports whether the pixel being filled contains a null row.
func (w *columnWriter) HasNull() bool { return w.hasNull }

// NullsPadding reports whether null rows occupy a value slot.
func (w *columnWriter) NullsPadding() bool { return w.nullsPadding }

// PixelStride returns the number of rows per pixel.
func (w *columnWriter) PixelStride() int { return w.pixelStride }

// Close discards the buffered rows and returns the pooled buffers. Later calls do nothing.
func (w *columnWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.curPixelElement > 0 {
		w.logger.Warn("discarding buffered rows", zap.Int("rows", w.curPixelElement))
	}

	w.releaseAcc()
	w.releaseIsNull()
	w.isNull = nil
	pool.PutChunkBuffer(w.nulls)
	w.nulls = nil

	return nil
}

// appendNullBitmap packs flags into buf, one bit per row with the first row in the most
// significant bit. The last byte is zero padded.
func appendNullBitmap(buf *pool.ByteBuffer, flags []bool) {
	for i := 0; i < len(flags); i += 8 {
		var b byte
		for j := i; j < min(i+8, len(flags)); j++ {
			if flags[j] {
				b |= 0x80 >> (j - i)
			}
		}
		buf.B = append(buf.B, b)
	}
}
