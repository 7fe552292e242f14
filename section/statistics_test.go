package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerStatistics_Update(t *testing.T) {
	var s IntegerStatistics
	require.False(t, s.HasRange())

	for _, v := range []int64{5, -3, 12, 0} {
		s.Update(v)
	}

	require.True(t, s.HasRange())
	require.Equal(t, uint64(4), s.NumberOfValues)
	require.Equal(t, int64(-3), s.Minimum)
	require.Equal(t, int64(12), s.Maximum)
	require.Equal(t, int64(14), s.Sum)
	require.False(t, s.SumOverflow)

	s.Reset()
	require.Equal(t, IntegerStatistics{}, s)
}

func TestIntegerStatistics_SumOverflow(t *testing.T) {
	var s IntegerStatistics
	s.Update(math.MaxInt64)
	s.Update(1)
	require.True(t, s.SumOverflow)
	require.Zero(t, s.Sum)

	s.Update(-5)
	require.True(t, s.SumOverflow, "overflow is sticky")
	require.Equal(t, int64(-5), s.Minimum)

	var n IntegerStatistics
	n.Update(math.MinInt64)
	n.Update(-1)
	require.True(t, n.SumOverflow)
}

func TestIntegerStatistics_Wide(t *testing.T) {
	var s IntegerStatistics
	s.UpdateWide()
	require.False(t, s.HasRange())
	require.Equal(t, uint64(1), s.NumberOfValues)

	s.Update(7)
	require.True(t, s.HasRange())
	require.Equal(t, int64(7), s.Minimum)
	require.Equal(t, int64(7), s.Maximum)
}

func TestIntegerStatistics_Merge(t *testing.T) {
	var a, b, empty IntegerStatistics
	a.Update(3)
	a.Update(9)
	b.Update(-2)
	b.HasNull = true
	b.UpdateWide()

	var chunk IntegerStatistics
	chunk.Merge(empty)
	require.False(t, chunk.HasRange())

	chunk.Merge(a)
	chunk.Merge(b)

	require.Equal(t, uint64(4), chunk.NumberOfValues)
	require.Equal(t, uint64(1), chunk.WideValues)
	require.True(t, chunk.HasNull)
	require.Equal(t, int64(-2), chunk.Minimum)
	require.Equal(t, int64(9), chunk.Maximum)
	require.Equal(t, int64(10), chunk.Sum)

	var over IntegerStatistics
	over.Update(math.MaxInt64)
	chunk.Merge(over)
	require.True(t, chunk.SumOverflow)
}
