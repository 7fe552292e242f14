package pool

import "sync"

// Slice pools backing the per-writer pixel accumulators and null bitmaps.
var (
	int64SlicePool = sync.Pool{
		New: func() any { return &[]int64{} },
	}
	boolSlicePool = sync.Pool{
		New: func() any { return &[]bool{} },
	}
)

// GetInt64Slice retrieves a zeroed int64 slice of length size from the pool.
//
// The caller must call the returned cleanup function exactly once to return the
// slice to the pool, and must not use the slice afterwards.
//
// Example:
//
//	pixel, cleanup := pool.GetInt64Slice(stride)
//	defer cleanup()
func GetInt64Slice(size int) ([]int64, func()) {
	ptr, _ := int64SlicePool.Get().(*[]int64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int64, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { int64SlicePool.Put(ptr) }
}

// GetBoolSlice retrieves a zeroed bool slice of length size from the pool.
//
// The caller must call the returned cleanup function exactly once to return the
// slice to the pool, and must not use the slice afterwards.
func GetBoolSlice(size int) ([]bool, func()) {
	ptr, _ := boolSlicePool.Get().(*[]bool)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]bool, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { boolSlicePool.Put(ptr) }
}
