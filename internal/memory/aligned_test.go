package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pixels/errs"
)

func TestAllocate_Alignment(t *testing.T) {
	for _, align := range []int{Alignment32, Alignment64} {
		for _, capacity := range []int{1, 7, 1024} {
			buf, err := Allocate(capacity, 8, align)
			require.NoError(t, err)
			require.True(t, buf.Owned())
			require.Equal(t, capacity, buf.Capacity())
			require.Len(t, buf.Bytes(), capacity*8)
			require.Zero(t, buf.Addr()%uintptr(align), "capacity=%d align=%d", capacity, align)
		}
	}
}

func TestAllocate_Invalid(t *testing.T) {
	_, err := Allocate(-1, 8, Alignment32)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Allocate(8, 0, Alignment32)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Allocate(8, 8, 24)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestAllocate_ZeroCapacity(t *testing.T) {
	buf, err := Allocate(0, 4, Alignment32)
	require.NoError(t, err)
	require.Equal(t, 0, buf.Capacity())
	require.Nil(t, View[int32](buf))
	require.Zero(t, buf.Addr())
}

func TestView(t *testing.T) {
	buf, err := Allocate(4, 8, Alignment64)
	require.NoError(t, err)

	values := View[int64](buf)
	require.Len(t, values, 4)
	values[2] = -42

	again := View[int64](buf)
	require.Equal(t, int64(-42), again[2])

	require.Panics(t, func() { View[int32](buf) })
}

func TestResize(t *testing.T) {
	buf, err := Allocate(2, 4, Alignment32)
	require.NoError(t, err)
	v := View[int32](buf)
	v[0], v[1] = 7, 9

	added, err := buf.Resize(2, true)
	require.NoError(t, err)
	require.Zero(t, added)

	added, err = buf.Resize(6, true)
	require.NoError(t, err)
	require.Equal(t, 16, added)
	require.Equal(t, 6, buf.Capacity())
	require.Zero(t, buf.Addr()%Alignment32)
	require.Equal(t, []int32{7, 9, 0, 0, 0, 0}, View[int32](buf))

	added, err = buf.Resize(8, false)
	require.NoError(t, err)
	require.Equal(t, 8, added)
	require.Equal(t, make([]int32, 8), View[int32](buf))
}

func TestWrap_Borrowed(t *testing.T) {
	backing := []int64{1, 2, 3}
	buf := Wrap(backing)

	require.False(t, buf.Owned())
	require.Equal(t, 3, buf.Capacity())
	require.Equal(t, 8, buf.ElemSize())
	require.GreaterOrEqual(t, buf.Alignment(), 8)

	View[int64](buf)[1] = 20
	require.Equal(t, int64(20), backing[1])

	_, err := buf.Resize(3, true)
	require.NoError(t, err)

	_, err = buf.Resize(4, true)
	require.ErrorIs(t, err, errs.ErrBorrowedBuffer)
}

func TestRelease_Once(t *testing.T) {
	buf, err := Allocate(16, 2, Alignment32)
	require.NoError(t, err)

	require.True(t, buf.Release())
	require.False(t, buf.Release())
	require.True(t, buf.Released())
	require.Nil(t, buf.Bytes())
	require.Equal(t, 0, buf.Capacity())

	_, err = buf.Resize(32, true)
	require.ErrorIs(t, err, errs.ErrClosed)

	var nilBuf *Buffer
	require.False(t, nilBuf.Release())
}

func TestDefaultAlignment(t *testing.T) {
	align := DefaultAlignment()
	require.Contains(t, []int{Alignment32, Alignment64}, align)
}
