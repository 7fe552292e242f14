package format

import "fmt"

// Category identifies the logical type of a column.
type Category uint8

const (
	CategoryDate      Category = 0x1
	CategoryDecimal   Category = 0x2
	CategoryTimestamp Category = 0x3
)

// Maximum number of decimal digits each physical width can hold.
const (
	MaxWidthInt16  = 4
	MaxWidthInt32  = 9
	MaxWidthInt64  = 18
	MaxWidthInt128 = 38

	// MaxShortDecimalPrecision is the largest precision stored in a single 64-bit word.
	MaxShortDecimalPrecision = MaxWidthInt64

	// DefaultTimestampPrecision is the number of fractional second digits kept by timestamps.
	DefaultTimestampPrecision = 6
)

func (c Category) String() string {
	switch c {
	case CategoryDate:
		return "date"
	case CategoryDecimal:
		return "decimal"
	case CategoryTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// TypeDescription is the subset of a column's schema type the column encoding path needs.
type TypeDescription struct {
	Category  Category
	Precision int
	Scale     int
}

// NewDecimalType returns the type description of decimal(precision, scale).
func NewDecimalType(precision, scale int) TypeDescription {
	return TypeDescription{Category: CategoryDecimal, Precision: precision, Scale: scale}
}

// NewTimestampType returns the type description of timestamp(precision).
func NewTimestampType(precision int) TypeDescription {
	return TypeDescription{Category: CategoryTimestamp, Precision: precision}
}

// NewDateType returns the type description of date.
func NewDateType() TypeDescription {
	return TypeDescription{Category: CategoryDate}
}

func (t TypeDescription) String() string {
	switch t.Category {
	case CategoryDecimal:
		return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale)
	case CategoryTimestamp:
		return fmt.Sprintf("timestamp(%d)", t.Precision)
	default:
		return t.Category.String()
	}
}

// DecimalPhysicalType returns the narrowest physical type able to hold the given precision.
// The second return value is false when the precision exceeds MaxWidthInt128.
func DecimalPhysicalType(precision int) (PhysicalType, bool) {
	switch {
	case precision <= MaxWidthInt16:
		return PhysicalInt16, true
	case precision <= MaxWidthInt32:
		return PhysicalInt32, true
	case precision <= MaxWidthInt64:
		return PhysicalInt64, true
	case precision <= MaxWidthInt128:
		return PhysicalInt128, true
	default:
		return 0, false
	}
}
