package encoding

import (
	"github.com/arloliu/pixels/endian"
	"github.com/arloliu/pixels/format"
	"github.com/arloliu/pixels/internal/pool"
)

// Fixed-width primitives. Each function appends the value to buf in the named byte order
// and advances the buffer's write position.

func WriteShortLE(buf *pool.ByteBuffer, v int16) {
	buf.B = endian.GetLittleEndianEngine().AppendUint16(buf.B, uint16(v)) //nolint:gosec
}

func WriteShortBE(buf *pool.ByteBuffer, v int16) {
	buf.B = endian.GetBigEndianEngine().AppendUint16(buf.B, uint16(v)) //nolint:gosec
}

func WriteIntLE(buf *pool.ByteBuffer, v int32) {
	buf.B = endian.GetLittleEndianEngine().AppendUint32(buf.B, uint32(v)) //nolint:gosec
}

func WriteIntBE(buf *pool.ByteBuffer, v int32) {
	buf.B = endian.GetBigEndianEngine().AppendUint32(buf.B, uint32(v)) //nolint:gosec
}

func WriteLongLE(buf *pool.ByteBuffer, v int64) {
	buf.B = endian.GetLittleEndianEngine().AppendUint64(buf.B, uint64(v)) //nolint:gosec
}

func WriteLongBE(buf *pool.ByteBuffer, v int64) {
	buf.B = endian.GetBigEndianEngine().AppendUint64(buf.B, uint64(v)) //nolint:gosec
}

// WriteInt128 appends a 128-bit two's complement value given as its high and low words.
// Little-endian output is the low word followed by the high word, each little-endian,
// so that the 16 bytes read as one little-endian integer. Big-endian output is the
// mirror image.
func WriteInt128(buf *pool.ByteBuffer, engine endian.EndianEngine, high int64, low uint64) {
	if endian.OrderOf(engine) == format.BigEndian {
		buf.B = engine.AppendUint64(buf.B, uint64(high)) //nolint:gosec
		buf.B = engine.AppendUint64(buf.B, low)

		return
	}

	buf.B = engine.AppendUint64(buf.B, low)
	buf.B = engine.AppendUint64(buf.B, uint64(high)) //nolint:gosec
}

// WriteLongs appends values as 64-bit integers using engine, growing the buffer once.
func WriteLongs(buf *pool.ByteBuffer, engine endian.EndianEngine, values []int64) {
	n := len(values)
	if n == 0 {
		return
	}

	buf.Grow(n * 8)
	start := buf.Len()
	buf.ExtendOrGrow(n * 8)
	bs := buf.Bytes()

	for i, v := range values {
		offset := start + i*8
		engine.PutUint64(bs[offset:offset+8], uint64(v)) //nolint:gosec
	}
}
