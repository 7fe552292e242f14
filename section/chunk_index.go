package section

import (
	"fmt"

	"github.com/arloliu/pixels/endian"
	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/format"
	"github.com/arloliu/pixels/internal/pool"
)

// ChunkIndex describes one finished column chunk: how it is encoded, where each pixel and
// the null bitmap stream start, and the chunk statistics.
type ChunkIndex struct {
	Encoding    format.ColumnEncoding
	ByteOrder   format.ByteOrder
	PixelStride int

	// NullsOffset is the sink position of the null bitmap stream, NullsLength its byte length.
	NullsOffset int64
	NullsLength int

	// Checksum is the xxHash64 of the pixel bytes of the chunk in sink order.
	Checksum uint64

	Entries []PixelEntry

	// Statistics merges the statistics of all entries. Not stored on disk.
	Statistics IntegerStatistics
}

// PixelCount returns the number of pixels in the chunk.
func (c *ChunkIndex) PixelCount() int {
	return len(c.Entries)
}

// RowCount returns the number of rows in the chunk.
func (c *ChunkIndex) RowCount() int {
	rows := 0
	for i := range c.Entries {
		rows += c.Entries[i].Rows
	}

	return rows
}

// Size returns the serialized size in bytes.
func (c *ChunkIndex) Size() int {
	return ChunkIndexHeaderSize + len(c.Entries)*PixelEntrySize
}

// Bytes serializes the header and entries using the chunk byte order.
func (c *ChunkIndex) Bytes() []byte {
	buf := pool.NewByteBuffer(c.Size())
	c.WriteTo(buf)

	return buf.Bytes()
}

// WriteTo appends the serialized index to buf.
func (c *ChunkIndex) WriteTo(buf *pool.ByteBuffer) {
	engine := endian.GetEngine(c.ByteOrder)

	start := buf.Len()
	buf.ExtendOrGrow(c.Size())
	data := buf.Bytes()

	h := data[start : start+ChunkIndexHeaderSize]
	engine.PutUint16(h[0:2], MagicChunkIndexV1)
	h[2] = byte(c.Encoding.Kind)
	h[3] = byte(c.ByteOrder)
	engine.PutUint32(h[4:8], uint32(c.PixelStride))   //nolint: gosec
	engine.PutUint32(h[8:12], uint32(len(c.Entries))) //nolint: gosec
	engine.PutUint32(h[12:16], 0)
	engine.PutUint64(h[16:24], uint64(c.NullsOffset)) //nolint: gosec
	engine.PutUint64(h[24:32], uint64(c.NullsLength)) //nolint: gosec
	engine.PutUint64(h[32:40], c.Checksum)

	offset := start + ChunkIndexHeaderSize
	for i := range c.Entries {
		offset = c.Entries[i].WriteToSlice(data, offset, engine)
	}
}

// ParseChunkIndex decodes an index written by Bytes.
func ParseChunkIndex(data []byte) (ChunkIndex, error) {
	if len(data) < ChunkIndexHeaderSize {
		return ChunkIndex{}, fmt.Errorf("%w: chunk index header needs %d bytes, got %d", errs.ErrCorruptedData, ChunkIndexHeaderSize, len(data))
	}

	order := format.ByteOrder(data[3])
	if order != format.LittleEndian && order != format.BigEndian {
		return ChunkIndex{}, fmt.Errorf("%w: unknown byte order %d", errs.ErrCorruptedData, data[3])
	}
	engine := endian.GetEngine(order)

	if magic := engine.Uint16(data[0:2]); magic != MagicChunkIndexV1 {
		return ChunkIndex{}, fmt.Errorf("%w: bad chunk index magic 0x%04x", errs.ErrCorruptedData, magic)
	}

	count := int(engine.Uint32(data[8:12]))
	if len(data) < ChunkIndexHeaderSize+count*PixelEntrySize {
		return ChunkIndex{}, fmt.Errorf("%w: chunk index declares %d pixels, got %d bytes", errs.ErrCorruptedData, count, len(data))
	}

	idx := ChunkIndex{
		Encoding:    format.ColumnEncoding{Kind: format.ColumnEncodingKind(data[2])},
		ByteOrder:   order,
		PixelStride: int(engine.Uint32(data[4:8])),
		NullsOffset: int64(engine.Uint64(data[16:24])), //nolint: gosec
		NullsLength: int(engine.Uint64(data[24:32])),   //nolint: gosec
		Checksum:    engine.Uint64(data[32:40]),
		Entries:     make([]PixelEntry, count),
	}

	offset := ChunkIndexHeaderSize
	for i := range idx.Entries {
		entry, err := ParsePixelEntry(data[offset:], engine)
		if err != nil {
			return ChunkIndex{}, err
		}
		idx.Entries[i] = entry
		offset += PixelEntrySize
	}

	return idx, nil
}
