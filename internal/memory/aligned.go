// Package memory provides aligned, growable buffers with a single-release guarantee.
//
// Column vectors keep their typed values in a Buffer so that encoders can rely on
// 32 or 64 byte alignment of the first element. Go's allocator only guarantees the
// natural alignment of the element type, so Allocate over-allocates a byte slice and
// exposes an aligned window of it. The garbage collector does not move heap objects,
// which keeps the window aligned for the lifetime of the buffer.
//
// Typed access goes through View:
//
//	buf, _ := memory.Allocate(1024, 8, memory.Alignment64)
//	micros := memory.View[int64](buf)
//	micros[0] = 42
package memory

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/arloliu/pixels/errs"
)

const (
	Alignment32 = 32
	Alignment64 = 64

	maxReportedAlignment = 4096
)

// DefaultAlignment returns the alignment matching the widest vector registers of the host:
// 64 bytes when AVX-512 is available, 32 bytes otherwise.
func DefaultAlignment() int {
	if cpu.X86.HasAVX512F {
		return Alignment64
	}

	return Alignment32
}

// Buffer is a fixed capacity region of elements of a single size.
//
// An owned Buffer is allocated by Allocate, is aligned, and can grow through Resize.
// A borrowed Buffer wraps memory handed in by the caller and can never be reallocated.
// Release drops the reference exactly once; later calls are no-ops.
type Buffer struct {
	raw       []byte
	data      []byte
	elemSize  int
	capacity  int
	alignment int
	owned     bool
	released  bool
}

// Allocate returns an owned buffer holding capacity elements of elemSize bytes whose first
// element is aligned to alignment bytes. The memory is zeroed.
func Allocate(capacity, elemSize, alignment int) (*Buffer, error) {
	if err := validate(capacity, elemSize, alignment); err != nil {
		return nil, err
	}

	raw, data := alignedBytes(capacity*elemSize, alignment)

	return &Buffer{
		raw:       raw,
		data:      data,
		elemSize:  elemSize,
		capacity:  capacity,
		alignment: alignment,
		owned:     true,
	}, nil
}

// Wrap returns a borrowed buffer over the elements of s.
func Wrap[T any](s []T) *Buffer {
	var zero T
	size := int(unsafe.Sizeof(zero))

	b := &Buffer{elemSize: size, capacity: len(s)}
	if len(s) > 0 {
		b.data = unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*size)
		b.alignment = addrAlignment(uintptr(unsafe.Pointer(unsafe.SliceData(s))))
	}

	return b
}

// Resize grows the buffer to newCapacity elements. It is a no-op when newCapacity does not
// exceed the current capacity. With preserveData the existing elements are copied into the
// new region, otherwise the new region is zeroed. The old region is released.
//
// It returns the number of bytes added.
func (b *Buffer) Resize(newCapacity int, preserveData bool) (int, error) {
	if b.released {
		return 0, errs.ErrClosed
	}
	if newCapacity <= b.capacity {
		return 0, nil
	}
	if !b.owned {
		return 0, fmt.Errorf("%w: capacity %d, requested %d", errs.ErrBorrowedBuffer, b.capacity, newCapacity)
	}

	raw, data := alignedBytes(newCapacity*b.elemSize, b.alignment)
	if preserveData {
		copy(data, b.data)
	}

	added := (newCapacity - b.capacity) * b.elemSize
	b.raw, b.data = raw, data
	b.capacity = newCapacity

	return added, nil
}

// Release drops the buffer memory. It reports whether this call performed the release.
func (b *Buffer) Release() bool {
	if b == nil || b.released {
		return false
	}

	b.raw = nil
	b.data = nil
	b.released = true

	return true
}

// Bytes returns the aligned region, nil after Release.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Capacity returns the number of elements the buffer holds.
func (b *Buffer) Capacity() int {
	if b.released {
		return 0
	}

	return b.capacity
}

func (b *Buffer) ElemSize() int {
	return b.elemSize
}

// Alignment returns the alignment guaranteed for an owned buffer, or the observed alignment
// of the first element for a borrowed one.
func (b *Buffer) Alignment() int {
	return b.alignment
}

func (b *Buffer) Owned() bool {
	return b.owned
}

func (b *Buffer) Released() bool {
	return b.released
}

// Addr returns the address of the first element, 0 when the buffer is empty or released.
func (b *Buffer) Addr() uintptr {
	if len(b.data) == 0 {
		return 0
	}

	return uintptr(unsafe.Pointer(&b.data[0]))
}

// View reinterprets the buffer as a slice of T. The size of T must equal the element size
// the buffer was created with. View returns nil for a released or empty buffer.
func View[T any](b *Buffer) []T {
	if b == nil || len(b.data) == 0 {
		return nil
	}

	var zero T
	if int(unsafe.Sizeof(zero)) != b.elemSize {
		panic(fmt.Sprintf("memory.View: element size %d does not match buffer element size %d",
			unsafe.Sizeof(zero), b.elemSize))
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&b.data[0])), b.capacity)
}

func validate(capacity, elemSize, alignment int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", errs.ErrInvalidArgument, capacity)
	}
	if elemSize <= 0 {
		return fmt.Errorf("%w: element size %d", errs.ErrInvalidArgument, elemSize)
	}
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return fmt.Errorf("%w: alignment %d is not a power of two", errs.ErrInvalidArgument, alignment)
	}

	return nil
}

// alignedBytes allocates size bytes aligned to alignment and returns both the backing
// allocation and the aligned window.
func alignedBytes(size, alignment int) ([]byte, []byte) {
	raw := make([]byte, size+alignment)
	if size == 0 {
		return raw, raw[:0:0]
	}

	addr := uintptr(unsafe.Pointer(&raw[0]))
	offset := int((uintptr(alignment) - addr%uintptr(alignment)) % uintptr(alignment))

	return raw, raw[offset : offset+size : offset+size]
}

func addrAlignment(addr uintptr) int {
	align := 1
	for align < maxReportedAlignment && addr%uintptr(align*2) == 0 {
		align *= 2
	}

	return align
}
