// Package writer turns column vectors into pixels, the fixed-stride row groups of a pixels
// column chunk.
//
// A column writer consumes vectors through Write, cuts the incoming rows into pixels of
// PixelStride rows each, encodes every full pixel and appends it to a sink.ByteSink. The
// boundaries of pixels depend only on the cumulative number of rows written, never on how
// the rows were split across Write calls.
//
// # Basic Usage
//
//	out := sink.NewBuffer()
//	w, err := writer.NewTimestampColumnWriter(format.NewTimestampType(6), out,
//	    writer.WithPixelStride(10000),
//	    writer.WithEncodingLevel(format.EncodingLevel2),
//	)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	if _, err := w.Write(vec, vec.WriteIndex()); err != nil {
//	    return err
//	}
//	index, err := w.FinishChunk()
//
// # Encodings
//
// Values are written as fixed-width integers in the configured byte order: 64-bit slots for
// timestamps and decimals up to precision 18, 128-bit slots above. The timestamp writer
// switches to run-length encoding from EncodingLevel2 on, and ColumnChunkEncoding reports
// the choice.
//
// # Nulls
//
// Every pixel records one null flag per row in the null bitmap stream appended by
// FinishChunk. Whether a null row also occupies a zero value slot depends on the writer:
// the decimal writer pads when WithNullsPadding is set and the encoding level is below
// EncodingLevel2, the timestamp writer always pads.
//
// # Thread Safety
//
// Writers are not safe for concurrent use. Writers of different columns are independent and
// may run in parallel.
package writer
