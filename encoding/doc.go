// Package encoding provides the integer encodings used to lay out pixel values.
//
// Two concrete encoders back the column writers:
//
//   - Int64RawEncoder writes fixed 8-byte values in a chosen byte order. It is the layout of
//     pixels whose column chunk encoding is NONE.
//   - RunLenIntEncoder collapses runs of repeated values and short-step arithmetic
//     progressions. It is used for timestamp columns at encoding level 2 and is reported
//     as RUNLENGTH in the column chunk encoding.
//
// Both implement the generic ColumnarEncoder interface and come with a matching
// ColumnarDecoder used to verify written data.
//
// The fixed-width primitives (WriteIntLE, WriteLongBE, WriteInt128 and friends) append a
// single value to a pool.ByteBuffer and are the building blocks of the raw layouts.
//
// # Run-length example
//
//	encoder := encoding.NewRunLenIntEncoder(true)
//	defer encoder.Clear()
//
//	data := encoder.Encode([]int64{7, 7, 7, 7, 7}) // 3 bytes
//	values, err := encoding.NewRunLenIntDecoder(true).Decode(data, 5)
//
// # Thread Safety
//
// Encoders are stateful and must not be shared between goroutines. Decoders are stateless
// values and are safe for concurrent use.
package encoding
