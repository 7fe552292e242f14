package sink

import (
	"github.com/arloliu/pixels/compress"
	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/format"
	"github.com/arloliu/pixels/internal/pool"
)

// Buffer is an in-memory ByteSink backed by a pooled chunk buffer.
type Buffer struct {
	buf      *pool.ByteBuffer
	released bool
}

var _ ByteSink = (*Buffer)(nil)

func NewBuffer() *Buffer {
	return &Buffer{buf: pool.GetChunkBuffer()}
}

// PutBytes appends a copy of data.
func (b *Buffer) PutBytes(data []byte) error {
	if b.released {
		return errs.ErrClosed
	}

	b.buf.MustWrite(data)

	return nil
}

func (b *Buffer) WritePos() int64 {
	if b.released {
		return 0
	}

	return int64(b.buf.Len())
}

// Bytes returns the appended bytes. The slice is valid until the next PutBytes, Reset or Release.
func (b *Buffer) Bytes() []byte {
	if b.released {
		return nil
	}

	return b.buf.Bytes()
}

func (b *Buffer) Len() int {
	if b.released {
		return 0
	}

	return b.buf.Len()
}

// Reset empties the buffer and keeps its memory for the next column chunk.
func (b *Buffer) Reset() {
	if !b.released {
		b.buf.Reset()
	}
}

// Seal compresses the buffered column chunk. The buffer itself is left untouched.
func (b *Buffer) Seal(compressionType format.CompressionType) ([]byte, compress.CompressionStats, error) {
	if b.released {
		return nil, compress.CompressionStats{Algorithm: compressionType}, errs.ErrClosed
	}

	return compress.Seal(compressionType, b.buf.Bytes())
}

// Release returns the memory to the pool. It is safe to call more than once.
func (b *Buffer) Release() {
	if b.released {
		return
	}

	pool.PutChunkBuffer(b.buf)
	b.buf = nil
	b.released = true
}
