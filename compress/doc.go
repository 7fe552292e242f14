// Package compress provides the codecs used to seal finished pixels column chunks.
//
// Compression is the last stage of the write path: column writers lay values out per pixel
// (fixed-width or run-length), and the resulting chunk is optionally compressed as a whole
// before it is handed to the file container.
//
// # Supported Algorithms
//
//   - format.CompressionNone: pass-through
//   - format.CompressionZstd: best ratio (klauspost/compress, or libzstd with the gozstd tag)
//   - format.CompressionS2: balanced ratio and speed
//   - format.CompressionLZ4: fastest decompression
//
// # Usage
//
//	sealed, stats, err := compress.Seal(format.CompressionZstd, chunk)
//	if err != nil {
//	    return err
//	}
//	log.Printf("saved %.1f%%", stats.SpaceSavings())
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool resources and are safe for concurrent use.
package compress
