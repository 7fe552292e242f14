package compress

// ZstdCompressor provides Zstandard compression.
//
// It has the best ratio of the built-in codecs and suits column chunks headed for cold
// storage. The pure Go implementation from klauspost/compress is used by default; building
// with the gozstd tag and cgo enabled switches to the libzstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
