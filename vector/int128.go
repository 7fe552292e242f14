package vector

import "math/big"

// Int128 is a two's complement 128-bit integer, the storage of decimals with precision 19 to 38.
type Int128 struct {
	Lo uint64
	Hi int64
}

var (
	twoTo64   = new(big.Int).Lsh(big.NewInt(1), 64)
	twoTo128  = new(big.Int).Lsh(big.NewInt(1), 128)
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// Int128FromInt64 sign-extends v.
func Int128FromInt64(v int64) Int128 {
	return Int128{Lo: uint64(v), Hi: v >> 63} //nolint:gosec
}

// Int128FromBig converts v, reporting false when it does not fit in 128 bits.
func Int128FromBig(v *big.Int) (Int128, bool) {
	if v.Cmp(minInt128) < 0 || v.Cmp(maxInt128) > 0 {
		return Int128{}, false
	}

	u := new(big.Int).Set(v)
	if u.Sign() < 0 {
		u.Add(u, twoTo128)
	}

	lo := new(big.Int).Mod(u, twoTo64).Uint64()
	hi := new(big.Int).Rsh(u, 64).Uint64()

	return Int128{Lo: lo, Hi: int64(hi)}, true //nolint:gosec
}

// Big returns x as a big.Int.
func (x Int128) Big() *big.Int {
	v := new(big.Int).SetInt64(x.Hi)
	v.Lsh(v, 64)

	return v.Add(v, new(big.Int).SetUint64(x.Lo))
}

// IsInt64 reports whether x fits in an int64.
func (x Int128) IsInt64() bool {
	return x.Hi == int64(x.Lo)>>63 //nolint:gosec
}

func (x Int128) String() string {
	return x.Big().String()
}
