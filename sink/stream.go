package sink

import (
	"fmt"
	"io"
)

// Stream is a ByteSink over an io.Writer that keeps track of the write offset.
type Stream struct {
	writer io.Writer
	offset int64
}

var _ ByteSink = (*Stream)(nil)

// NewStream returns a stream starting at offset 0.
func NewStream(w io.Writer) *Stream {
	return &Stream{writer: w}
}

// NewStreamAt returns a stream whose first byte lands at offset, for column chunks that
// start after a file header or a previous chunk.
func NewStreamAt(w io.Writer, offset int64) *Stream {
	return &Stream{writer: w, offset: offset}
}

// Reset points the stream at a new writer and rewinds the offset to 0.
func (s *Stream) Reset(w io.Writer) {
	s.writer = w
	s.offset = 0
}

// PutBytes writes data. Bytes accepted by the writer before a failure still advance the offset.
func (s *Stream) PutBytes(data []byte) error {
	n, err := s.writer.Write(data)
	s.offset += int64(n)

	if err != nil {
		return fmt.Errorf("sink write at offset %d: %w", s.offset, err)
	}
	if n != len(data) {
		return fmt.Errorf("sink write at offset %d: %w", s.offset, io.ErrShortWrite)
	}

	return nil
}

func (s *Stream) WritePos() int64 {
	return s.offset
}
