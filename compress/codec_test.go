package compress

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pixels/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// timestampChunk builds the bytes of fixed-width timestamp pixels, one value per second.
func timestampChunk(rows int) []byte {
	data := make([]byte, 0, rows*8)
	base := int64(1680739200000000)
	for i := range rows {
		data = binary.LittleEndian.AppendUint64(data, uint64(base+int64(i)*1_000_000)) //nolint:gosec
	}

	return data
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed)

			compressed, err = codec.Compress([]byte{})
			require.NoError(t, err)

			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"single_byte", []byte{0x42}},
		{"one_pixel", timestampChunk(1024)},
		{"column_chunk", timestampChunk(64 * 1024)},
		{"run_length_pixel", bytes.Repeat([]byte{0x7f, 0x00, 0x80, 0x80, 0xb4, 0xc1, 0xd8, 0xd3, 0x05}, 64)},
		{"zeros", make([]byte, 1024*1024)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_CompressFixedWidthPixels(t *testing.T) {
	chunk := timestampChunk(16 * 1024)

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}

		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(chunk)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(chunk)/2)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{"random_bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"text_as_compressed", []byte("this is not compressed data")},
		{"corrupted_header", []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}

		t.Run(codecName, func(t *testing.T) {
			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 16
	chunk := timestampChunk(4096)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(chunk)
			require.NoError(t, err)

			var wg sync.WaitGroup
			errCh := make(chan error, numGoroutines*2)

			for range numGoroutines {
				wg.Add(2)
				go func() {
					defer wg.Done()
					if _, err := codec.Compress(chunk); err != nil {
						errCh <- err
					}
				}()
				go func() {
					defer wg.Done()
					decompressed, err := codec.Decompress(compressed)
					if err != nil {
						errCh <- err
						return
					}
					if !bytes.Equal(chunk, decompressed) {
						errCh <- fmt.Errorf("decompressed data mismatch")
					}
				}()
			}

			wg.Wait()
			close(errCh)
			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := CreateCodec(ct, "column chunk")
		require.NoError(t, err)
		require.NotNil(t, codec)

		shared, err := GetCodec(ct)
		require.NoError(t, err)
		require.IsType(t, codec, shared)
	}

	_, err := CreateCodec(format.CompressionType(0x9), "column chunk")
	require.ErrorContains(t, err, "invalid column chunk compression")

	_, err = GetCodec(format.CompressionType(0x9))
	require.ErrorContains(t, err, "unsupported compression type")
}

func TestSeal(t *testing.T) {
	chunk := timestampChunk(8192)

	sealed, stats, err := Seal(format.CompressionZstd, chunk)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Equal(t, int64(len(chunk)), stats.OriginalSize)
	require.Equal(t, int64(len(sealed)), stats.CompressedSize)
	require.GreaterOrEqual(t, stats.CompressionTimeNs, int64(0))
	require.Less(t, stats.CompressionRatio(), 1.0)
	require.Greater(t, stats.SpaceSavings(), 0.0)

	restored, err := NewZstdCompressor().Decompress(sealed)
	require.NoError(t, err)
	require.Equal(t, chunk, restored)

	_, _, err = Seal(format.CompressionType(0), chunk)
	require.Error(t, err)
}

func TestCompressionStats_Calculations(t *testing.T) {
	require.Zero(t, CompressionStats{}.CompressionRatio())

	stats := CompressionStats{OriginalSize: 1000, CompressedSize: 250}
	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	noop := CompressionStats{OriginalSize: 10, CompressedSize: 10}
	require.InDelta(t, 0.0, noop.SpaceSavings(), 1e-9)
}
