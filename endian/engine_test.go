package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pixels/format"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result, "CheckEndianness() should return BigEndian")
	case 0x02:
		require.Equal(binary.LittleEndian, result, "CheckEndianness() should return LittleEndian")
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestIsNativeEndiannessInverse(t *testing.T) {
	littleEndian := IsNativeLittleEndian()
	bigEndian := IsNativeBigEndian()

	require.NotEqual(t, littleEndian, bigEndian)
	require.True(t, littleEndian || bigEndian)
}

func TestCompareNativeEndian(t *testing.T) {
	if IsNativeLittleEndian() {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
	}
}

func TestGetEngine(t *testing.T) {
	tests := []struct {
		name  string
		order format.ByteOrder
		want  binary.ByteOrder
		first byte
	}{
		{"little endian", format.LittleEndian, binary.LittleEndian, 0x04},
		{"big endian", format.BigEndian, binary.BigEndian, 0x01},
		{"unknown falls back to little endian", format.ByteOrder(0xFF), binary.LittleEndian, 0x04},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := GetEngine(tt.order)
			require.Implements(t, (*EndianEngine)(nil), engine)
			require.Equal(t, tt.want, engine)

			buf := engine.AppendUint32(nil, 0x01020304)
			require.Len(t, buf, 4)
			require.Equal(t, tt.first, buf[0])
			require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
		})
	}
}

func TestOrderOf(t *testing.T) {
	require.Equal(t, format.LittleEndian, OrderOf(GetLittleEndianEngine()))
	require.Equal(t, format.BigEndian, OrderOf(GetBigEndianEngine()))
	require.Equal(t, format.BigEndian, OrderOf(GetEngine(format.BigEndian)))
}

func TestEndianEngines(t *testing.T) {
	littleEngine := GetLittleEndianEngine()
	bigEngine := GetBigEndianEngine()

	var testUint64 uint64 = 0x0102030405060708
	littleBytes64 := make([]byte, 8)
	bigBytes64 := make([]byte, 8)

	littleEngine.PutUint64(littleBytes64, testUint64)
	bigEngine.PutUint64(bigBytes64, testUint64)

	require.NotEqual(t, littleBytes64, bigBytes64)
	require.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, littleBytes64)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, bigBytes64)
	require.Equal(t, testUint64, littleEngine.Uint64(littleBytes64))
	require.Equal(t, testUint64, bigEngine.Uint64(bigBytes64))
}
