// Package pixels encodes typed column data into pixels, the fixed-stride row groups of the
// pixels columnar file format.
//
// The write path has two halves. Column vectors (package vector) collect typed values with
// one null flag per row: dates, decimals and timestamps, appended as values or parsed from
// text. Column writers (package writer) consume vectors, cut the rows into pixels of a fixed
// stride and emit each encoded pixel to a byte sink (package sink), recording a chunk index
// (package section) with one entry per pixel.
//
// # Basic Usage
//
//	td := format.NewDecimalType(10, 2)
//	vec, _ := pixels.NewDecimalVector(td)
//	defer vec.Close()
//
//	vec.AddString("3.14")
//	vec.AddNull()
//	vec.AddString("-0.5")
//
//	chunk, err := pixels.EncodeColumn(td, vec, format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(chunk.Index.PixelCount(), len(chunk.Data))
//
// # Package Structure
//
// This package provides convenient top-level wrappers for the most common use cases. For
// streaming output, several chunks per writer or custom sinks, use the vector, writer and
// sink packages directly.
package pixels

import (
	"fmt"

	"github.com/arloliu/pixels/compress"
	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/format"
	"github.com/arloliu/pixels/section"
	"github.com/arloliu/pixels/sink"
	"github.com/arloliu/pixels/vector"
	"github.com/arloliu/pixels/writer"
)

var defaultWriterOptions = []writer.WriterOption{
	writer.WithLittleEndian(),
	writer.WithPixelStride(vector.DefaultSize),
	writer.WithEncodingLevel(format.EncodingLevel2),
}

// NewDateVector creates an owning date vector of vector.DefaultSize rows.
func NewDateVector(opts ...vector.VectorOption) (*vector.DateColumnVector, error) {
	return vector.NewDateColumnVector(vector.DefaultSize, true, opts...)
}

// NewDecimalVector creates an owning decimal vector of vector.DefaultSize rows for td.
func NewDecimalVector(td format.TypeDescription, opts ...vector.VectorOption) (*vector.DecimalColumnVector, error) {
	return vector.NewDecimalColumnVectorFor(td, vector.DefaultSize, true, opts...)
}

// NewTimestampVector creates an owning timestamp vector of vector.DefaultSize rows for td.
func NewTimestampVector(td format.TypeDescription, opts ...vector.VectorOption) (*vector.TimestampColumnVector, error) {
	if td.Category != format.CategoryTimestamp {
		return nil, fmt.Errorf("%w: %s is not a timestamp", errs.ErrInvalidTypeDescription, td)
	}

	return vector.NewTimestampColumnVector(vector.DefaultSize, td.Precision, true, opts...)
}

// NewColumnWriter creates the column writer for td with custom options.
//
// Available options:
//   - writer.WithPixelStride(n)
//   - writer.WithEncodingLevel(format.EncodingLevel0|1|2)
//   - writer.WithNullsPadding(true|false)
//   - writer.WithLittleEndian() / writer.WithBigEndian()
//   - writer.WithLogger(logger)
//   - writer.WithPrometheusRegisterer(reg)
func NewColumnWriter(td format.TypeDescription, out sink.ByteSink, opts ...writer.WriterOption) (writer.ColumnWriter, error) {
	return writer.New(td, out, opts...)
}

// NewDefaultColumnWriter creates a column writer with the recommended settings:
//   - Little-endian byte order
//   - vector.DefaultSize rows per pixel
//   - EncodingLevel2 (run-length timestamps, no null padding for decimals)
//
// Options given here are applied after the defaults and override them.
func NewDefaultColumnWriter(td format.TypeDescription, out sink.ByteSink, opts ...writer.WriterOption) (writer.ColumnWriter, error) {
	all := make([]writer.WriterOption, 0, len(defaultWriterOptions)+len(opts))
	all = append(all, defaultWriterOptions...)
	all = append(all, opts...)

	return writer.New(td, out, all...)
}

// EncodedChunk is a complete column chunk held in memory.
type EncodedChunk struct {
	// Data is the column chunk, compressed with Compression.
	Data        []byte
	Compression format.CompressionType
	Index       section.ChunkIndex
	Stats       compress.CompressionStats
}

// EncodeColumn writes the appended rows of v as one column chunk with the default writer
// settings plus opts, then compresses the chunk.
func EncodeColumn(td format.TypeDescription, v vector.ColumnVector, compression format.CompressionType, opts ...writer.WriterOption) (*EncodedChunk, error) {
	out := sink.NewBuffer()
	defer out.Release()

	w, err := NewDefaultColumnWriter(td, out, opts...)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	if _, err := w.Write(v, v.WriteIndex()); err != nil {
		return nil, err
	}

	idx, err := w.FinishChunk()
	if err != nil {
		return nil, err
	}

	data, stats, err := out.Seal(compression)
	if err != nil {
		return nil, err
	}
	if compression == format.CompressionNone {
		// the no-op codec returns the pooled buffer itself
		data = append([]byte(nil), data...)
	}

	return &EncodedChunk{
		Data:        data,
		Compression: compression,
		Index:       idx,
		Stats:       stats,
	}, nil
}

// DecodeChunkData decompresses the Data of an encoded chunk.
func DecodeChunkData(chunk *EncodedChunk) ([]byte, error) {
	codec, err := compress.GetCodec(chunk.Compression)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(chunk.Data)
}
