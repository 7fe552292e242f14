package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInt64Slice(t *testing.T) {
	t.Run("returns zeroed slice with requested size", func(t *testing.T) {
		slice, cleanup := GetInt64Slice(100)
		defer cleanup()

		require.Len(t, slice, 100)
		for _, v := range slice {
			require.Zero(t, v)
		}
	})

	t.Run("reused slices come back zeroed", func(t *testing.T) {
		slice, cleanup := GetInt64Slice(8)
		for i := range slice {
			slice[i] = int64(i + 1)
		}
		cleanup()

		again, cleanup2 := GetInt64Slice(8)
		defer cleanup2()
		require.Equal(t, make([]int64, 8), again)
	})
}

func TestGetBoolSlice(t *testing.T) {
	slice, cleanup := GetBoolSlice(16)
	for i := range slice {
		slice[i] = true
	}
	cleanup()

	again, cleanup2 := GetBoolSlice(16)
	defer cleanup2()
	require.Len(t, again, 16)
	require.Equal(t, make([]bool, 16), again)
}

func TestSlicePoolConcurrency(t *testing.T) {
	const goroutines = 64
	done := make(chan struct{}, goroutines)

	for range goroutines {
		go func() {
			ints, cleanupInts := GetInt64Slice(50)
			nulls, cleanupNulls := GetBoolSlice(50)
			defer cleanupInts()
			defer cleanupNulls()

			for j := range ints {
				ints[j] = int64(j)
				nulls[j] = j%2 == 0
			}
			done <- struct{}{}
		}()
	}

	for range goroutines {
		<-done
	}
}
