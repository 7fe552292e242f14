package encoding

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/internal/pool"
)

// Run-length integer layout.
//
// The stream is a sequence of groups, each introduced by a control byte read as int8:
//   - 0..127: a run of control+3 values. A signed delta byte and the base value follow;
//     value i of the run is base + i*delta.
//   - -1..-128: -control literal values follow.
//
// Base and literal values are unsigned varints, zigzag mapped first when the encoder is signed.
const (
	rleMinRepeat   = 3
	rleMaxRepeat   = 127 + rleMinRepeat
	rleMaxLiterals = 128
	rleMinDelta    = -128
	rleMaxDelta    = 127
)

// RunLenIntEncoder compresses runs of repeated or arithmetically progressing integers.
type RunLenIntEncoder struct {
	buf           *pool.ByteBuffer
	signed        bool
	literals      [rleMaxLiterals]int64
	numLiterals   int
	delta         int64
	repeat        bool
	tailRunLength int
	count         int
	tmp           [binary.MaxVarintLen64]byte
}

var _ ColumnarEncoder[int64] = (*RunLenIntEncoder)(nil)

// NewRunLenIntEncoder creates an encoder. Signed encoders zigzag map values before writing
// them as varints and must be paired with a signed decoder.
func NewRunLenIntEncoder(signed bool) *RunLenIntEncoder {
	return &RunLenIntEncoder{
		buf:    pool.GetPixelBuffer(),
		signed: signed,
	}
}

// Encode encodes exactly values and returns their encoding. Any earlier output is discarded
// first, so each call produces a self-contained stream. The returned slice is valid until the
// next call on the encoder.
func (e *RunLenIntEncoder) Encode(values []int64) []byte {
	e.buf.Reset()
	e.count = 0
	e.resetState()

	e.WriteSlice(values)
	e.flush()

	return e.buf.Bytes()
}

// Write adds a single value.
func (e *RunLenIntEncoder) Write(value int64) {
	e.count++

	if e.numLiterals == 0 {
		e.literals[0] = value
		e.numLiterals = 1
		e.tailRunLength = 1

		return
	}

	if e.repeat {
		if value == e.literals[0]+e.delta*int64(e.numLiterals) {
			e.numLiterals++
			if e.numLiterals == rleMaxRepeat {
				e.flush()
			}

			return
		}

		e.flush()
		e.literals[0] = value
		e.numLiterals = 1
		e.tailRunLength = 1

		return
	}

	last := e.literals[e.numLiterals-1]
	if e.tailRunLength != 1 && value == last+e.delta {
		e.tailRunLength++
	} else {
		e.delta = value - last
		if e.delta < rleMinDelta || e.delta > rleMaxDelta {
			e.tailRunLength = 1
		} else {
			e.tailRunLength = 2
		}
	}

	if e.tailRunLength == rleMinRepeat {
		if e.numLiterals+1 == rleMinRepeat {
			e.repeat = true
			e.numLiterals++

			return
		}

		// the last two literals start the run
		e.numLiterals -= rleMinRepeat - 1
		base, delta := e.literals[e.numLiterals], e.delta
		e.flush()
		e.literals[0] = base
		e.delta = delta
		e.tailRunLength = rleMinRepeat
		e.repeat = true
		e.numLiterals = rleMinRepeat

		return
	}

	e.literals[e.numLiterals] = value
	e.numLiterals++
	if e.numLiterals == rleMaxLiterals {
		e.flush()
	}
}

// WriteSlice adds values in order.
func (e *RunLenIntEncoder) WriteSlice(values []int64) {
	e.buf.Grow(len(values) + len(values)/rleMaxLiterals + 1)
	for _, v := range values {
		e.Write(v)
	}
}

// Bytes flushes pending values and returns everything encoded since the last Encode or Finish.
func (e *RunLenIntEncoder) Bytes() []byte {
	e.flush()
	return e.buf.Bytes()
}

// Len returns the number of values written since the last Encode or Finish.
func (e *RunLenIntEncoder) Len() int {
	return e.count
}

// Size flushes pending values and returns the encoded size in bytes.
func (e *RunLenIntEncoder) Size() int {
	e.flush()
	return e.buf.Len()
}

// Reset flushes pending values so the next value starts a new group. Encoded data is kept.
func (e *RunLenIntEncoder) Reset() {
	e.flush()
}

// Finish discards all state and encoded data and returns the buffer to the pool.
// The encoder stays usable.
func (e *RunLenIntEncoder) Finish() {
	pool.PutPixelBuffer(e.buf)
	e.buf = pool.GetPixelBuffer()
	e.count = 0
	e.resetState()
}

// Clear releases the encoder buffer. The encoder must not be used afterwards.
func (e *RunLenIntEncoder) Clear() {
	if e.buf != nil {
		pool.PutPixelBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
	e.resetState()
}

func (e *RunLenIntEncoder) resetState() {
	e.numLiterals = 0
	e.tailRunLength = 0
	e.repeat = false
	e.delta = 0
}

func (e *RunLenIntEncoder) flush() {
	if e.numLiterals == 0 {
		return
	}

	if e.repeat {
		e.buf.B = append(e.buf.B, byte(e.numLiterals-rleMinRepeat), byte(int8(e.delta))) //nolint:gosec
		e.writeValue(e.literals[0])
	} else {
		e.buf.B = append(e.buf.B, byte(int8(-e.numLiterals))) //nolint:gosec
		for i := range e.numLiterals {
			e.writeValue(e.literals[i])
		}
	}

	e.resetState()
}

func (e *RunLenIntEncoder) writeValue(v int64) {
	var u uint64
	if e.signed {
		u = zigzagEncode(v)
	} else {
		u = uint64(v) //nolint:gosec
	}

	n := binary.PutUvarint(e.tmp[:], u)
	e.buf.MustWrite(e.tmp[:n])
}

// RunLenIntDecoder decodes streams produced by RunLenIntEncoder.
type RunLenIntDecoder struct {
	signed bool
}

var _ ColumnarDecoder[int64] = RunLenIntDecoder{}

func NewRunLenIntDecoder(signed bool) RunLenIntDecoder {
	return RunLenIntDecoder{signed: signed}
}

// Decode returns exactly count values, or ErrCorruptedData when data holds fewer.
func (d RunLenIntDecoder) Decode(data []byte, count int) ([]int64, error) {
	out := make([]int64, 0, count)

	err := d.walk(data, count, func(v int64) bool {
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, err
	}

	if len(out) < count {
		return nil, fmt.Errorf("%w: decoded %d of %d values", errs.ErrCorruptedData, len(out), count)
	}

	return out, nil
}

// All yields up to count values, stopping silently on malformed data.
func (d RunLenIntDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		_ = d.walk(data, count, yield)
	}
}

// At decodes the stream up to index. Run-length data has no random access.
func (d RunLenIntDecoder) At(data []byte, index int, count int) (int64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	var (
		value int64
		pos   int
		found bool
	)

	_ = d.walk(data, index+1, func(v int64) bool {
		if pos == index {
			value, found = v, true
			return false
		}
		pos++

		return true
	})

	return value, found
}

func (d RunLenIntDecoder) walk(data []byte, count int, yield func(int64) bool) error {
	emitted := 0
	offset := 0

	for emitted < count && offset < len(data) {
		control := int8(data[offset]) //nolint:gosec
		offset++

		if control >= 0 {
			length := int(control) + rleMinRepeat
			if offset >= len(data) {
				return fmt.Errorf("%w: missing run delta at offset %d", errs.ErrCorruptedData, offset)
			}
			delta := int64(int8(data[offset])) //nolint:gosec
			offset++

			base, n, err := d.readValue(data[offset:])
			if err != nil {
				return err
			}
			offset += n

			for i := 0; i < length && emitted < count; i++ {
				if !yield(base + int64(i)*delta) {
					return nil
				}
				emitted++
			}

			continue
		}

		length := -int(control)
		for i := 0; i < length && emitted < count; i++ {
			v, n, err := d.readValue(data[offset:])
			if err != nil {
				return err
			}
			offset += n

			if !yield(v) {
				return nil
			}
			emitted++
		}
	}

	return nil
}

func (d RunLenIntDecoder) readValue(data []byte) (int64, int, error) {
	u, n := binary.Uvarint(data)
	if n <= 0 {
		return 0, 0, fmt.Errorf("%w: malformed varint", errs.ErrCorruptedData)
	}

	if d.signed {
		return zigzagDecode(u), n, nil
	}

	return int64(u), n, nil //nolint:gosec
}

func zigzagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63)) //nolint:gosec
}

func zigzagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}
