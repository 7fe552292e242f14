package format

type (
	EncodingLevel      uint8
	ColumnEncodingKind uint8
	CompressionType    uint8
	ByteOrder          uint8
	PhysicalType       uint8
)

const (
	EncodingLevel0 EncodingLevel = 0 // EncodingLevel0 disables all encodings.
	EncodingLevel1 EncodingLevel = 1 // EncodingLevel1 enables lightweight encodings (dictionary on strings).
	EncodingLevel2 EncodingLevel = 2 // EncodingLevel2 enables run-length encoding and disables null padding.

	ColumnEncodingNone      ColumnEncodingKind = 0x0 // ColumnEncodingNone means fixed-width slots.
	ColumnEncodingRunLength ColumnEncodingKind = 0x1 // ColumnEncodingRunLength means run-length encoded integers.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	LittleEndian ByteOrder = 0x0 // LittleEndian is the default byte order of pixels.
	BigEndian    ByteOrder = 0x1 // BigEndian is supported for interoperability.

	PhysicalInt16  PhysicalType = 0x1
	PhysicalInt32  PhysicalType = 0x2
	PhysicalInt64  PhysicalType = 0x3
	PhysicalInt128 PhysicalType = 0x4
)

// Ge reports whether the level is greater than or equal to other.
func (l EncodingLevel) Ge(other EncodingLevel) bool {
	return l >= other
}

// Valid reports whether the level is one of the defined levels.
func (l EncodingLevel) Valid() bool {
	return l <= EncodingLevel2
}

func (l EncodingLevel) String() string {
	switch l {
	case EncodingLevel0:
		return "EL0"
	case EncodingLevel1:
		return "EL1"
	case EncodingLevel2:
		return "EL2"
	default:
		return "Unknown"
	}
}

func (k ColumnEncodingKind) String() string {
	switch k {
	case ColumnEncodingNone:
		return "NONE"
	case ColumnEncodingRunLength:
		return "RUNLENGTH"
	default:
		return "Unknown"
	}
}

// ColumnEncoding is the column chunk level encoding descriptor a reader uses
// to select the decode path of a column chunk.
type ColumnEncoding struct {
	Kind ColumnEncodingKind
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "LittleEndian"
	case BigEndian:
		return "BigEndian"
	default:
		return "Unknown"
	}
}

func (p PhysicalType) String() string {
	switch p {
	case PhysicalInt16:
		return "INT16"
	case PhysicalInt32:
		return "INT32"
	case PhysicalInt64:
		return "INT64"
	case PhysicalInt128:
		return "INT128"
	default:
		return "Unknown"
	}
}

// Size returns the width in bytes of one value of the physical type.
func (p PhysicalType) Size() int {
	switch p {
	case PhysicalInt16:
		return 2
	case PhysicalInt32:
		return 4
	case PhysicalInt64:
		return 8
	case PhysicalInt128:
		return 16
	default:
		return 0
	}
}
