package encoding

import (
	"iter"

	"github.com/arloliu/pixels/endian"
	"github.com/arloliu/pixels/internal/pool"
)

// Int64RawEncoder stores every value as a fixed 8-byte integer in the byte order of its engine.
//
// This is the layout of a pixel whose column encoding is NONE: values are placed back to back,
// so a reader can address value i at offset 8*i without decoding anything else.
type Int64RawEncoder struct {
	buf    *pool.ByteBuffer
	count  int
	engine endian.EndianEngine
}

var _ ColumnarEncoder[int64] = (*Int64RawEncoder)(nil)

// NewInt64RawEncoder creates a raw encoder using the specified endian engine.
//
// Example:
//
//	encoder := NewInt64RawEncoder(endian.GetLittleEndianEngine())
//	defer encoder.Finish()
//	encoder.WriteSlice([]int64{314, -1, 0})
//	data := encoder.Bytes() // 24 bytes
func NewInt64RawEncoder(engine endian.EndianEngine) *Int64RawEncoder {
	return &Int64RawEncoder{
		engine: engine,
		buf:    pool.GetPixelBuffer(),
	}
}

// Write encodes a single value.
func (e *Int64RawEncoder) Write(value int64) {
	e.count++
	e.buf.Grow(8)

	bufLen := e.buf.Len()
	bs := e.buf.Bytes()[bufLen : bufLen+8]
	e.engine.PutUint64(bs, uint64(value)) //nolint:gosec
	e.buf.SetLength(bufLen + 8)
}

// WriteSlice encodes values with a single buffer growth.
func (e *Int64RawEncoder) WriteSlice(values []int64) {
	e.count += len(values)
	WriteLongs(e.buf, e.engine, values)
}

// Bytes returns the encoded bytes. The slice is valid until the next Write, WriteSlice or Finish.
func (e *Int64RawEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *Int64RawEncoder) Len() int {
	return e.count
}

// Size returns the number of encoded bytes.
func (e *Int64RawEncoder) Size() int {
	return e.buf.Len()
}

// Reset is a no-op: raw encoding carries no state between values.
func (e *Int64RawEncoder) Reset() {}

// Finish returns the buffer to the pool and leaves the encoder empty and reusable.
func (e *Int64RawEncoder) Finish() {
	pool.PutPixelBuffer(e.buf)
	e.buf = pool.GetPixelBuffer()
	e.count = 0
}

// Int64RawDecoder is the inverse of Int64RawEncoder. It is stateless.
type Int64RawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[int64] = Int64RawDecoder{}

func NewInt64RawDecoder(engine endian.EndianEngine) Int64RawDecoder {
	return Int64RawDecoder{engine: engine}
}

// All yields up to count values. Truncated input yields the complete values only.
func (d Int64RawDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := range count {
			start := i * 8
			if start+8 > len(data) {
				return
			}

			if !yield(int64(d.engine.Uint64(data[start : start+8]))) { //nolint:gosec
				return
			}
		}
	}
}

// At returns the value at index, or false when index is outside [0, count) or the data is short.
func (d Int64RawDecoder) At(data []byte, index int, count int) (int64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	start := index * 8
	if start+8 > len(data) {
		return 0, false
	}

	return int64(d.engine.Uint64(data[start : start+8])), true //nolint:gosec
}
