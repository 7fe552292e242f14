// Package endian provides byte order utilities for the pixels column encoding path.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface,
// and maps the format.ByteOrder configuration value onto an engine.
//
// # Basic Usage
//
// Column writers resolve their engine once at construction time:
//
//	import "github.com/arloliu/pixels/endian"
//
//	engine := endian.GetEngine(format.LittleEndian)
//	buf = engine.AppendUint64(buf, uint64(value))
//
// Little-endian is the default byte order of pixels files. Big-endian exists for
// readers running on big-endian hosts that want to avoid byte swapping.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"

	"github.com/arloliu/pixels/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetEngine returns the engine for the configured byte order.
// Unknown values fall back to little-endian.
func GetEngine(order format.ByteOrder) EndianEngine {
	if order == format.BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// OrderOf returns the format.ByteOrder implemented by the engine.
func OrderOf(engine EndianEngine) format.ByteOrder {
	if engine == EndianEngine(binary.BigEndian) {
		return format.BigEndian
	}

	return format.LittleEndian
}
