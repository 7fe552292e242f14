// Package sink defines the append-only byte destination column writers emit pixels into.
//
// A column writer borrows its sink and never closes it. Every PutBytes call appends
// synchronously and a failing sink aborts the writer call that triggered it. The pixel that
// failed stays buffered in the writer.
//
// Two implementations are provided:
//   - Buffer keeps the column chunk in memory and can seal it with a compress codec.
//   - Stream forwards bytes to an io.Writer (a file, a network connection) and tracks the
//     stream offset itself.
package sink

// ByteSink is the output stream of a column writer.
type ByteSink interface {
	// PutBytes appends data to the stream.
	PutBytes(data []byte) error

	// WritePos returns the current stream offset, the number of bytes appended so far
	// plus any starting offset of the stream.
	WritePos() int64
}
