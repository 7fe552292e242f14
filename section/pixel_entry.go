package section

import (
	"fmt"

	"github.com/arloliu/pixels/endian"
	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/internal/pool"
)

// PixelEntry records where one flushed pixel lives in the sink and what it holds.
// It is a fixed size of 32 bytes on disk.
type PixelEntry struct {
	// Offset is the absolute sink position of the first pixel byte.
	//
	// Offset: 0, Size: 8 bytes
	Offset int64

	// Length is the encoded byte length of the pixel.
	//
	// Offset: 8, Size: 4 bytes
	Length int

	// Rows is the number of rows the pixel covers, nulls included.
	//
	// Offset: 12, Size: 4 bytes
	Rows int

	// Slots is the number of encoded values. It is smaller than Rows when null rows were
	// not padded.
	//
	// Offset: 16, Size: 4 bytes
	Slots int

	// HasNull is stored as PixelFlagHasNull.
	//
	// Offset: 20, Size: 1 byte (flags), followed by 3 reserved bytes
	HasNull bool

	// Padded is stored as PixelFlagPadded.
	Padded bool

	// Checksum is the xxHash64 of the encoded pixel bytes.
	//
	// Offset: 24, Size: 8 bytes
	Checksum uint64

	// Statistics summarizes the pixel values.
	//
	// This field is not stored on disk and is only used in memory.
	Statistics IntegerStatistics
}

func (e *PixelEntry) flags() uint8 {
	var f uint8
	if e.HasNull {
		f |= PixelFlagHasNull
	}
	if e.Padded {
		f |= PixelFlagPadded
	}

	return f
}

// Bytes returns the entry encoded with engine.
func (e *PixelEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [PixelEntrySize]byte
	e.WriteToSlice(b[:], 0, engine)

	return b[:]
}

// WriteTo appends the entry to buf.
func (e *PixelEntry) WriteTo(buf *pool.ByteBuffer, engine endian.EndianEngine) {
	start := buf.Len()
	buf.ExtendOrGrow(PixelEntrySize)
	e.WriteToSlice(buf.Bytes(), start, engine)
}

// WriteToSlice writes the entry at offset of a pre-allocated slice and returns the next
// position.
func (e *PixelEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	b := data[offset : offset+PixelEntrySize]
	engine.PutUint64(b[0:8], uint64(e.Offset))  //nolint: gosec
	engine.PutUint32(b[8:12], uint32(e.Length)) //nolint: gosec
	engine.PutUint32(b[12:16], uint32(e.Rows))  //nolint: gosec
	engine.PutUint32(b[16:20], uint32(e.Slots)) //nolint: gosec
	b[20] = e.flags()
	b[21], b[22], b[23] = 0, 0, 0
	engine.PutUint64(b[24:32], e.Checksum)

	return offset + PixelEntrySize
}

// ParsePixelEntry decodes an entry written by Bytes. Statistics are left empty.
func ParsePixelEntry(data []byte, engine endian.EndianEngine) (PixelEntry, error) {
	if len(data) < PixelEntrySize {
		return PixelEntry{}, fmt.Errorf("%w: pixel entry needs %d bytes, got %d", errs.ErrCorruptedData, PixelEntrySize, len(data))
	}

	flags := data[20]

	return PixelEntry{
		Offset:   int64(engine.Uint64(data[0:8])), //nolint: gosec
		Length:   int(engine.Uint32(data[8:12])),
		Rows:     int(engine.Uint32(data[12:16])),
		Slots:    int(engine.Uint32(data[16:20])),
		HasNull:  flags&PixelFlagHasNull != 0,
		Padded:   flags&PixelFlagPadded != 0,
		Checksum: engine.Uint64(data[24:32]),
	}, nil
}
