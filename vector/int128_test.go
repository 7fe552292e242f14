package vector

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt128(t *testing.T) {
	require.Equal(t, Int128{Lo: math.MaxUint64, Hi: -1}, Int128FromInt64(-1))
	require.Equal(t, "-1", Int128FromInt64(-1).String())
	require.Equal(t, "9223372036854775807", Int128FromInt64(math.MaxInt64).String())
	require.True(t, Int128FromInt64(math.MinInt64).IsInt64())
	require.False(t, Int128{Lo: 0, Hi: 1}.IsInt64())
	require.False(t, Int128{Lo: 1 << 63, Hi: 0}.IsInt64())

	for _, s := range []string{
		"0", "1", "-1", "18446744073709551616", "-18446744073709551617",
		"170141183460469231731687303715884105727", "-170141183460469231731687303715884105728",
	} {
		v, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)

		x, ok := Int128FromBig(v)
		require.True(t, ok, s)
		require.Equal(t, s, x.String())
	}

	tooBig, _ := new(big.Int).SetString("170141183460469231731687303715884105728", 10)
	_, ok := Int128FromBig(tooBig)
	require.False(t, ok)
}
