package vector

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/format"
)

var pow10 = [...]uint64{
	1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000,
	1_000_000_000, 10_000_000_000, 100_000_000_000, 1_000_000_000_000,
	10_000_000_000_000, 100_000_000_000_000, 1_000_000_000_000_000,
	10_000_000_000_000_000, 100_000_000_000_000_000, 1_000_000_000_000_000_000,
}

// decimalText is the lexical form of a decimal literal: [+-]digits[.digits].
type decimalText struct {
	negative bool
	intPart  string
	fracPart string
}

func splitDecimal(text string) (decimalText, error) {
	s := strings.TrimSpace(text)

	var d decimalText
	if s != "" && (s[0] == '-' || s[0] == '+') {
		d.negative = s[0] == '-'
		s = s[1:]
	}

	d.intPart, d.fracPart, _ = strings.Cut(s, ".")
	if d.intPart == "" && d.fracPart == "" {
		return d, fmt.Errorf("%w %q: no digits", errs.ErrInvalidDecimal, text)
	}
	if !allDigits(d.intPart) || !allDigits(d.fracPart) {
		return d, fmt.Errorf("%w %q", errs.ErrInvalidDecimal, text)
	}

	d.intPart = strings.TrimLeft(d.intPart, "0")

	return d, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// ParseShortDecimal returns the unscaled value of text for a decimal with precision up to 18.
//
// Fraction digits beyond scale are cut down to one, which rounds the result half away from
// zero. Fewer fraction digits than scale are padded with zeros. Values needing more than
// precision digits fail with ErrDecimalOverflow.
func ParseShortDecimal(text string, precision, scale int) (int64, error) {
	if precision > format.MaxShortDecimalPrecision {
		return 0, fmt.Errorf("%w: precision %d needs the 128-bit path", errs.ErrInvalidArgument, precision)
	}
	if err := checkDecimalType(precision, scale); err != nil {
		return 0, err
	}

	d, err := splitDecimal(text)
	if err != nil {
		return 0, err
	}

	frac := d.fracPart
	roundUp := false
	if len(frac) > scale {
		roundUp = frac[scale] >= '5'
		frac = frac[:scale]
	}

	limit := pow10[precision]
	var v uint64
	for _, digits := range [...]string{d.intPart, frac} {
		for i := 0; i < len(digits); i++ {
			v = v*10 + uint64(digits[i]-'0')
			if v >= limit {
				return 0, fmt.Errorf("%w: %q does not fit decimal(%d,%d)", errs.ErrDecimalOverflow, text, precision, scale)
			}
		}
	}

	for i := len(frac); i < scale; i++ {
		v *= 10
		if v >= limit {
			return 0, fmt.Errorf("%w: %q does not fit decimal(%d,%d)", errs.ErrDecimalOverflow, text, precision, scale)
		}
	}

	if roundUp {
		v++
		if v >= limit {
			return 0, fmt.Errorf("%w: %q does not fit decimal(%d,%d)", errs.ErrDecimalOverflow, text, precision, scale)
		}
	}

	if d.negative {
		return -int64(v), nil //nolint:gosec
	}

	return int64(v), nil //nolint:gosec
}

// ParseDecimal returns the unscaled value of text for any precision up to 38, rounding the
// same way as ParseShortDecimal.
func ParseDecimal(text string, precision, scale int) (Int128, error) {
	if precision <= format.MaxShortDecimalPrecision {
		v, err := ParseShortDecimal(text, precision, scale)
		if err != nil {
			return Int128{}, err
		}

		return Int128FromInt64(v), nil
	}

	if err := checkDecimalType(precision, scale); err != nil {
		return Int128{}, err
	}

	d, err := splitDecimal(text)
	if err != nil {
		return Int128{}, err
	}

	canonical := "0" + d.intPart
	if d.fracPart != "" {
		canonical += "." + d.fracPart
	}
	if d.negative {
		canonical = "-" + canonical
	}

	value, err := decimal.NewFromString(canonical)
	if err != nil {
		return Int128{}, fmt.Errorf("%w %q: %w", errs.ErrInvalidDecimal, text, err)
	}

	unscaled := value.Round(int32(scale)).Shift(int32(scale)).BigInt() //nolint:gosec
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil)
	if unscaled.CmpAbs(limit) >= 0 {
		return Int128{}, fmt.Errorf("%w: %q does not fit decimal(%d,%d)", errs.ErrDecimalOverflow, text, precision, scale)
	}

	x, _ := Int128FromBig(unscaled)

	return x, nil
}

func checkDecimalType(precision, scale int) error {
	if precision > format.MaxWidthInt128 {
		return fmt.Errorf("%w: precision %d", errs.ErrPrecisionTooLarge, precision)
	}
	if precision < 1 || scale < 0 || scale > precision {
		return fmt.Errorf("%w: decimal(%d,%d)", errs.ErrInvalidTypeDescription, precision, scale)
	}

	return nil
}
