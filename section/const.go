package section

const (
	// MagicChunkIndexV1 is the version 1 magic number of a serialized chunk index.
	MagicChunkIndexV1 uint16 = 0x5058

	PixelFlagHasNull uint8 = 0x01 // Pixel contains at least one null row.
	PixelFlagPadded  uint8 = 0x02 // Null rows of the pixel occupy a zero slot.
)

// fixed sizes of the chunk index structures in bytes
const (
	ChunkIndexHeaderSize = 40
	PixelEntrySize       = 32
)
