package vector

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/format"
	"github.com/arloliu/pixels/internal/memory"
)

// DefaultSize is the default row capacity of a vector and the default pixel stride of writers.
const DefaultSize = 1024

// ColumnVector is a growable column of values with one null flag per row.
//
// The set of implementations is closed: DateColumnVector, DecimalColumnVector and
// TimestampColumnVector. Column writers switch on the concrete type.
type ColumnVector interface {
	// Category returns the logical type of the values.
	Category() format.Category

	// Length returns the row capacity.
	Length() int

	// WriteIndex returns the number of rows appended so far.
	WriteIndex() int

	ReadIndex() int
	SetReadIndex(index int) error

	// IsNull reports whether the row at index is null. Out of range rows are not null.
	IsNull(index int) bool

	// NullFlags returns the null flag of every row up to Length. The slice is owned by the
	// vector and invalidated by EnsureSize.
	NullFlags() []bool

	// Encoding reports whether the vector owns its value buffer.
	Encoding() bool

	// Attached reports whether a value buffer is present, owned or borrowed.
	Attached() bool

	// MemoryUsage returns the bytes held by the vector.
	MemoryUsage() int64

	AddNull() error
	AddBool(value bool) error
	AddInt64(value int64) error

	// AddString parses value according to the column type and appends it.
	AddString(value string) error

	// EnsureSize grows the capacity to at least newCapacity, copying the existing values when
	// preserveData is set. It never shrinks.
	EnsureSize(newCapacity int, preserveData bool) error

	// Reset empties the vector and keeps its buffers.
	Reset()

	// Close releases the value buffer. It is idempotent.
	Close()
	Closed() bool

	columnVector()
}

// base holds the bookkeeping shared by all vectors. The typed view over buf lives in the
// embedding vector and is refreshed through onResize.
type base struct {
	category    format.Category
	length      int
	writeIndex  int
	readIndex   int
	isNull      []bool
	noNulls     bool
	encoding    bool
	memoryUsage int64
	closed      bool

	buf      *memory.Buffer
	elemSize int
	onResize func()
	cfg      *vectorConfig
}

func (b *base) init(category format.Category, capacity, elemSize, defaultAlignment int, encoding bool, opts []VectorOption) error {
	if capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", errs.ErrInvalidArgument, capacity)
	}

	cfg, err := newVectorConfig(defaultAlignment, opts)
	if err != nil {
		return err
	}

	b.category = category
	b.cfg = cfg
	b.length = capacity
	b.isNull = make([]bool, capacity)
	b.noNulls = true
	b.encoding = encoding
	b.elemSize = elemSize
	b.memoryUsage = int64(capacity)

	if encoding {
		buf, err := memory.Allocate(capacity, elemSize, cfg.alignment)
		if err != nil {
			return err
		}
		b.buf = buf
		b.memoryUsage += int64(capacity * elemSize)
	}

	return nil
}

func (b *base) columnVector() {}

func (b *base) Category() format.Category { return b.category }

func (b *base) Length() int { return b.length }

func (b *base) WriteIndex() int { return b.writeIndex }

func (b *base) ReadIndex() int { return b.readIndex }

func (b *base) SetReadIndex(index int) error {
	if index < 0 || index > b.writeIndex {
		return fmt.Errorf("%w: read index %d, write index %d", errs.ErrIndexOutOfRange, index, b.writeIndex)
	}
	b.readIndex = index

	return nil
}

func (b *base) IsNull(index int) bool {
	if index < 0 || index >= len(b.isNull) {
		return false
	}

	return b.isNull[index]
}

func (b *base) NullFlags() []bool { return b.isNull }

// HasNulls reports whether any appended row is null.
func (b *base) HasNulls() bool { return !b.noNulls }

func (b *base) Encoding() bool { return b.encoding }

func (b *base) Attached() bool { return b.buf != nil }

func (b *base) MemoryUsage() int64 { return b.memoryUsage }

func (b *base) Closed() bool { return b.closed }

// Alignment returns the alignment of the first value, 0 when no buffer is attached.
func (b *base) Alignment() int {
	if b.buf == nil {
		return 0
	}

	return b.buf.Alignment()
}

func (b *base) Reset() {
	b.writeIndex = 0
	b.readIndex = 0
	b.noNulls = true
	clear(b.isNull)
}

func (b *base) EnsureSize(newCapacity int, preserveData bool) error {
	if b.closed {
		return errs.ErrClosed
	}
	if newCapacity <= b.length {
		return nil
	}
	if b.buf == nil {
		return errs.ErrBufferNotAttached
	}

	added, err := b.buf.Resize(newCapacity, preserveData)
	if err != nil {
		return err
	}

	isNull := make([]bool, newCapacity)
	if preserveData {
		copy(isNull, b.isNull)
	}
	b.isNull = isNull

	b.memoryUsage += int64(added) + int64(newCapacity-b.length)
	b.length = newCapacity
	b.onResize()

	return nil
}

// Close releases an owned buffer and drops a borrowed one. Later calls do nothing.
func (b *base) Close() {
	if b.closed {
		return
	}

	b.closed = true
	if b.buf != nil {
		if b.buf.Owned() {
			b.memoryUsage -= int64(b.buf.Capacity() * b.elemSize)
		}
		b.buf.Release()
		b.buf = nil
	}
	b.onResize()
}

// attach installs a borrowed buffer on a vector created without encoding.
func (b *base) attach(buf *memory.Buffer) error {
	if b.closed {
		return errs.ErrClosed
	}
	if b.encoding {
		return fmt.Errorf("%w: vector owns its buffer", errs.ErrInvalidArgument)
	}
	if buf.Capacity() < b.length {
		return fmt.Errorf("%w: attached %d values, vector length %d", errs.ErrInvalidArgument, buf.Capacity(), b.length)
	}

	if b.buf != nil {
		b.buf.Release()
	}
	b.buf = buf
	b.onResize()

	return nil
}

// nextSlot returns the index of the next appended row, doubling the capacity when full.
func (b *base) nextSlot() (int, error) {
	if b.closed {
		return 0, errs.ErrClosed
	}
	if b.buf == nil {
		return 0, errs.ErrBufferNotAttached
	}

	if b.writeIndex >= b.length {
		if err := b.EnsureSize(max(b.length*2, 1), true); err != nil {
			return 0, err
		}
	}

	return b.writeIndex, nil
}

// checkSet validates a positional write.
func (b *base) checkSet(index int) error {
	if b.closed {
		return errs.ErrClosed
	}
	if b.buf == nil {
		return errs.ErrBufferNotAttached
	}
	if index < 0 || index >= b.length {
		return fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, index, b.length)
	}

	return nil
}

// commit marks the row at index as written.
func (b *base) commit(index int, null bool) {
	b.isNull[index] = null
	if null {
		b.noNulls = false
	}
	if index >= b.writeIndex {
		b.writeIndex = index + 1
	}
}

// skip reports a text value that could not be appended.
func (b *base) skip(text string, err error) {
	reason := "malformed"
	if errors.Is(err, errs.ErrDecimalOverflow) {
		reason = "overflow"
	}

	b.cfg.logger.Warn("skipping text value",
		zap.Stringer("column", b.category),
		zap.String("value", text),
		zap.String("reason", reason),
		zap.Error(err),
	)
	b.cfg.metrics.RowSkipped(b.category.String(), reason)
}

func boolToInt64(v bool) int64 {
	if v {
		return 1
	}

	return 0
}
