// Package section defines the binary chunk index that column writers produce next to the
// encoded pixels of a column chunk.
//
// # Overview
//
// A column chunk is a sequence of pixels followed by the null bitmap stream of the chunk:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Pixel 0 (fixed-width slots or run-length bytes)         │
//	├─────────────────────────────────────────────────────────┤
//	│ ...                                                     │
//	├─────────────────────────────────────────────────────────┤
//	│ Pixel N-1 (may hold fewer rows than the stride)         │
//	├─────────────────────────────────────────────────────────┤
//	│ Null bitmap stream                                      │
//	│  - one bit per row, MSB first                           │
//	│  - every pixel starts on a byte boundary                │
//	└─────────────────────────────────────────────────────────┘
//
// The chunk index locates every pixel inside the sink:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (40 bytes, fixed)                                │
//	│  - Magic (2 bytes), encoding kind (1), byte order (1)   │
//	│  - PixelStride (4 bytes), PixelCount (4 bytes)          │
//	│  - Reserved (4 bytes)                                   │
//	│  - NullsOffset (8 bytes), NullsLength (8 bytes)         │
//	│  - Checksum (8 bytes): xxHash64 of all pixel bytes      │
//	├─────────────────────────────────────────────────────────┤
//	│ Pixel entries (N × 32 bytes, fixed per entry)           │
//	│  - Offset (8), Length (4), Rows (4), Slots (4)          │
//	│  - Flags (1), reserved (3), Checksum (8)                │
//	└─────────────────────────────────────────────────────────┘
//
// All multi-byte fields use the byte order recorded in the header. The byte order field
// itself is a single byte and can be read before anything else.
//
// Statistics are kept in memory only. They are merged from pixel to chunk by the writers and
// serialized by whatever footer format embeds the chunk index.
package section
