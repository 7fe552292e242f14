package vector

import (
	"fmt"

	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/format"
	"github.com/arloliu/pixels/internal/memory"
)

// DecimalColumnVector holds the unscaled integer values of decimal(precision, scale).
// For example 3.14 in decimal(3,2) is stored as 314.
//
// The physical width is the narrowest of int16, int32, int64 and Int128 that holds
// precision digits.
type DecimalColumnVector struct {
	base
	precision int
	scale     int
	physical  format.PhysicalType

	i16  []int16
	i32  []int32
	i64  []int64
	i128 []Int128
}

var _ ColumnVector = (*DecimalColumnVector)(nil)

// NewDecimalColumnVector creates a decimal vector. Precision beyond 38 digits fails with
// ErrPrecisionTooLarge.
func NewDecimalColumnVector(capacity, precision, scale int, encoding bool, opts ...VectorOption) (*DecimalColumnVector, error) {
	if err := checkDecimalType(precision, scale); err != nil {
		return nil, err
	}

	physical, _ := format.DecimalPhysicalType(precision)
	v := &DecimalColumnVector{
		precision: precision,
		scale:     scale,
		physical:  physical,
	}
	v.onResize = v.refresh

	if err := v.init(format.CategoryDecimal, capacity, physical.Size(), memory.DefaultAlignment(), encoding, opts); err != nil {
		return nil, err
	}
	v.refresh()

	return v, nil
}

// NewDecimalColumnVectorFor creates a decimal vector from a type description.
func NewDecimalColumnVectorFor(td format.TypeDescription, capacity int, encoding bool, opts ...VectorOption) (*DecimalColumnVector, error) {
	if td.Category != format.CategoryDecimal {
		return nil, fmt.Errorf("%w: %s is not a decimal", errs.ErrInvalidTypeDescription, td)
	}

	return NewDecimalColumnVector(capacity, td.Precision, td.Scale, encoding, opts...)
}

func (v *DecimalColumnVector) refresh() {
	v.i16, v.i32, v.i64, v.i128 = nil, nil, nil, nil
	if v.buf == nil {
		return
	}

	switch v.physical {
	case format.PhysicalInt16:
		v.i16 = memory.View[int16](v.buf)[:v.length]
	case format.PhysicalInt32:
		v.i32 = memory.View[int32](v.buf)[:v.length]
	case format.PhysicalInt64:
		v.i64 = memory.View[int64](v.buf)[:v.length]
	case format.PhysicalInt128:
		v.i128 = memory.View[Int128](v.buf)[:v.length]
	}
}

func (v *DecimalColumnVector) Precision() int { return v.precision }

func (v *DecimalColumnVector) Scale() int { return v.scale }

func (v *DecimalColumnVector) PhysicalType() format.PhysicalType { return v.physical }

// TypeDescription returns decimal(precision, scale).
func (v *DecimalColumnVector) TypeDescription() format.TypeDescription {
	return format.NewDecimalType(v.precision, v.scale)
}

// Attach installs a borrowed value buffer. values must be a slice of the vector's physical
// type ([]int16, []int32, []int64 or []Int128) covering Length.
func (v *DecimalColumnVector) Attach(values any) error {
	var (
		buf      *memory.Buffer
		physical format.PhysicalType
	)

	switch s := values.(type) {
	case []int16:
		buf, physical = memory.Wrap(s), format.PhysicalInt16
	case []int32:
		buf, physical = memory.Wrap(s), format.PhysicalInt32
	case []int64:
		buf, physical = memory.Wrap(s), format.PhysicalInt64
	case []Int128:
		buf, physical = memory.Wrap(s), format.PhysicalInt128
	default:
		return fmt.Errorf("%w: cannot attach %T to a decimal vector", errs.ErrInvalidArgument, values)
	}

	if physical != v.physical {
		return fmt.Errorf("%w: attached %s values to a %s vector", errs.ErrInvalidArgument, physical, v.physical)
	}

	return v.attach(buf)
}

// AddInt64 always fails: integers carry no scale, so append text or use Set instead.
func (v *DecimalColumnVector) AddInt64(int64) error {
	return fmt.Errorf("%w: integer values cannot be added to a decimal vector", errs.ErrInvalidArgument)
}

// AddBool always fails, like AddInt64.
func (v *DecimalColumnVector) AddBool(bool) error {
	return fmt.Errorf("%w: boolean values cannot be added to a decimal vector", errs.ErrInvalidArgument)
}

// AddString appends a decimal literal such as "3.14" or "-0.5", adjusted to the vector's
// scale. Malformed text and values exceeding the precision are logged and skipped.
func (v *DecimalColumnVector) AddString(value string) error {
	if v.physical == format.PhysicalInt128 {
		x, err := ParseDecimal(value, v.precision, v.scale)
		if err != nil {
			v.skip(value, err)
			return nil
		}

		return v.appendInt128(x)
	}

	unscaled, err := ParseShortDecimal(value, v.precision, v.scale)
	if err != nil {
		v.skip(value, err)
		return nil
	}

	index, err := v.nextSlot()
	if err != nil {
		return err
	}
	v.store(index, unscaled)
	v.commit(index, false)

	return nil
}

func (v *DecimalColumnVector) appendInt128(x Int128) error {
	index, err := v.nextSlot()
	if err != nil {
		return err
	}

	v.i128[index] = x
	v.commit(index, false)

	return nil
}

func (v *DecimalColumnVector) AddNull() error {
	index, err := v.nextSlot()
	if err != nil {
		return err
	}

	if v.physical == format.PhysicalInt128 {
		v.i128[index] = Int128{}
	} else {
		v.store(index, 0)
	}
	v.commit(index, true)

	return nil
}

// Set writes an unscaled value at index and clears its null flag.
func (v *DecimalColumnVector) Set(index int, unscaled int64) error {
	if err := v.checkSet(index); err != nil {
		return err
	}
	if err := v.checkDigits(unscaled); err != nil {
		return err
	}

	if v.physical == format.PhysicalInt128 {
		v.i128[index] = Int128FromInt64(unscaled)
	} else {
		v.store(index, unscaled)
	}
	v.commit(index, false)

	return nil
}

// SetInt128 writes an unscaled 128-bit value at index. The value must fit the vector's
// physical width.
func (v *DecimalColumnVector) SetInt128(index int, unscaled Int128) error {
	if v.physical != format.PhysicalInt128 {
		if !unscaled.IsInt64() {
			return fmt.Errorf("%w: %s does not fit decimal(%d,%d)", errs.ErrDecimalOverflow, unscaled, v.precision, v.scale)
		}

		return v.Set(index, int64(unscaled.Lo)) //nolint:gosec
	}

	if err := v.checkSet(index); err != nil {
		return err
	}
	v.i128[index] = unscaled
	v.commit(index, false)

	return nil
}

// Unscaled returns the value at index widened to int64. For 128-bit vectors the value is
// truncated to its low word; use Int128At there. It returns 0 when no buffer is present,
// after Close included.
func (v *DecimalColumnVector) Unscaled(index int) int64 {
	if v.buf == nil {
		return 0
	}

	switch v.physical {
	case format.PhysicalInt16:
		return int64(v.i16[index])
	case format.PhysicalInt32:
		return int64(v.i32[index])
	case format.PhysicalInt64:
		return v.i64[index]
	default:
		return int64(v.i128[index].Lo) //nolint:gosec
	}
}

// Int128At returns the value at index sign-extended to 128 bits.
func (v *DecimalColumnVector) Int128At(index int) Int128 {
	if v.buf == nil {
		return Int128{}
	}
	if v.physical == format.PhysicalInt128 {
		return v.i128[index]
	}

	return Int128FromInt64(v.Unscaled(index))
}

// store writes an unscaled value already checked against the precision.
func (v *DecimalColumnVector) store(index int, unscaled int64) {
	switch v.physical {
	case format.PhysicalInt16:
		v.i16[index] = int16(unscaled) //nolint:gosec
	case format.PhysicalInt32:
		v.i32[index] = int32(unscaled) //nolint:gosec
	case format.PhysicalInt64:
		v.i64[index] = unscaled
	}
}

func (v *DecimalColumnVector) checkDigits(unscaled int64) error {
	if v.precision > format.MaxShortDecimalPrecision {
		return nil
	}

	abs := uint64(unscaled) //nolint:gosec
	if unscaled < 0 {
		abs = uint64(-unscaled) //nolint:gosec
	}
	if abs >= pow10[v.precision] {
		return fmt.Errorf("%w: %d does not fit decimal(%d,%d)", errs.ErrDecimalOverflow, unscaled, v.precision, v.scale)
	}

	return nil
}
