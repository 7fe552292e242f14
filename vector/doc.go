// Package vector provides the typed in-memory columns that feed column writers.
//
// A column vector is a growable buffer of values plus one null flag per row. Values are
// appended with the Add* methods, which double the capacity when the vector is full, or
// written at a position with Set.
//
// # Variants
//
//   - DateColumnVector: int32 days since 1970-01-01 UTC.
//   - DecimalColumnVector: unscaled integers of decimal(precision, scale); the physical
//     width is int16, int32, int64 or Int128 depending on the precision.
//   - TimestampColumnVector: int64 microseconds since the epoch, UTC.
//
// # Ownership
//
// A vector created with encoding set allocates its value buffer itself, aligned to 32 bytes
// (64 bytes for timestamps and on AVX-512 hosts), and frees it on Close. A vector created
// without encoding borrows the caller's slice through Attach and can never reallocate it.
//
// # Text values
//
// AddString parses text according to the column type. Malformed dates and decimals are
// logged at warn level and skipped: AddString returns nil and WriteIndex does not move.
// Malformed timestamps are returned as errors.
//
//	dates, err := vector.NewDateColumnVector(vector.DefaultSize, true, vector.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer dates.Close()
//
//	_ = dates.AddString("2023-04-06") // 19453
//	_ = dates.AddString("2023-02-30") // logged, skipped
//
// # Thread Safety
//
// Vectors are not safe for concurrent use.
package vector
