package encoding

import "iter"

type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice, Reset or Finish.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the encoded values.
	Size() int

	// Reset clears the internal encoder state but keeps the accumulated data in the internal buffer.
	//
	// Len(), Size() and Bytes() keep reporting the accumulated data.
	Reset()

	// Finish drops the accumulated data and returns buffer resources to the pool.
	//
	// Use defer to ensure it's called even in error paths:
	//
	//	encoder := NewInt64RawEncoder(engine)
	//	defer encoder.Finish()
	//
	//	encoder.Write(value)
	//	data := encoder.Bytes() // read before Finish
	Finish()

	// Write a single value.
	//
	// For bulk writes, use WriteSlice for better performance.
	Write(data T)

	// WriteSlice encodes a slice of values.
	WriteSlice(values []T)
}

type ColumnarDecoder[T comparable] interface {
	// All returns an iterator that yields the values decoded from data.
	//
	// The data should be the byte slice payload produced by a corresponding encoder.
	// The iterator yields exactly count values if the data is valid, fewer when the data
	// is malformed or short. The caller should handle this case appropriately.
	All(data []byte, count int) iter.Seq[T]

	// At retrieves the value at the specified zero-based index from the encoded data.
	//
	// If the index is out of bounds (index < 0 or index >= count), or the data does not
	// contain the value, the second return value is false.
	At(data []byte, index int, count int) (T, bool)
}
