package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb.B)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(PixelBufferDefaultSize)
	bb.MustWrite([]byte("pix"))
	require.NoError(t, bb.WriteByte('e'))
	n, err := bb.Write([]byte("l"))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.Equal(t, []byte("pixel"), bb.Bytes())

	originalCap := bb.Cap()
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte{1, 2, 3})

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
	require.Equal(t, []byte{1, 2, 3}, out.Bytes())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no reallocation with sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(PixelBufferDefaultSize)
		originalCap := bb.Cap()
		bb.Grow(100)
		assert.Equal(t, originalCap, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(PixelBufferDefaultSize)
		bb.MustWrite(make([]byte, PixelBufferDefaultSize))
		bb.Grow(1)
		assert.GreaterOrEqual(t, bb.Cap(), 2*PixelBufferDefaultSize)
		assert.Equal(t, PixelBufferDefaultSize, bb.Len())
	})

	t.Run("large request is honoured", func(t *testing.T) {
		bb := NewByteBuffer(PixelBufferDefaultSize)
		bb.MustWrite(make([]byte, PixelBufferDefaultSize))
		bb.Grow(10 * PixelBufferDefaultSize)
		assert.GreaterOrEqual(t, bb.Cap(), 11*PixelBufferDefaultSize)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte("keep me"))
		bb.Grow(PixelBufferDefaultSize * 2)
		assert.Equal(t, []byte("keep me"), bb.Bytes())
	})
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(4)
	require.True(t, bb.Extend(4))
	require.False(t, bb.Extend(1))

	bb.ExtendOrGrow(8)
	require.Equal(t, 12, bb.Len())

	bb.SetLength(2)
	require.Equal(t, 2, bb.Len())
	require.Panics(t, func() { bb.SetLength(-1) })
	require.Panics(t, func() { bb.Slice(3, 1) })
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	big := NewByteBuffer(256)
	big.MustWrite([]byte("dropped"))
	p.Put(big)
	require.Equal(t, 7, big.Len(), "oversized buffers are not reset nor retained")

	small := p.Get()
	small.MustWrite([]byte("kept"))
	p.Put(small)
	require.Equal(t, 0, small.Len())

	require.NotPanics(t, func() { p.Put(nil) })
}

func TestDefaultPools(t *testing.T) {
	pixel := GetPixelBuffer()
	require.GreaterOrEqual(t, pixel.Cap(), PixelBufferDefaultSize)
	require.Equal(t, 0, pixel.Len())
	PutPixelBuffer(pixel)

	chunk := GetChunkBuffer()
	require.GreaterOrEqual(t, chunk.Cap(), ChunkBufferDefaultSize)
	PutChunkBuffer(chunk)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const goroutines = 32

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			for range 100 {
				bb := GetPixelBuffer()
				bb.MustWrite([]byte("data"))
				assert.Equal(t, 4, bb.Len())
				PutPixelBuffer(bb)
			}
		}()
	}
	wg.Wait()
}
