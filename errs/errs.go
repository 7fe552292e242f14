// Package errs defines the sentinel errors returned by pixels packages.
//
// Errors are wrapped with additional context using fmt.Errorf and the %w verb,
// so callers should match them with errors.Is:
//
//	if _, err := w.Write(vec, n); errors.Is(err, errs.ErrVectorTypeMismatch) {
//	    // wrong vector variant for this writer
//	}
package errs

import "errors"

var (
	// ErrInvalidArgument is returned when an argument is not acceptable for the operation,
	// for example an integer add on a decimal vector.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrVectorTypeMismatch is returned when a writer receives a vector variant it cannot encode.
	ErrVectorTypeMismatch = errors.New("vector type mismatch")

	// ErrPrecisionTooLarge is returned when a decimal precision exceeds the widest physical width.
	ErrPrecisionTooLarge = errors.New("decimal precision is bigger than the maximum supported width")

	// ErrInvalidTypeDescription is returned when a type description does not fit the column.
	ErrInvalidTypeDescription = errors.New("invalid type description")

	// ErrInvalidDate is returned when date text cannot be parsed.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidDecimal is returned when decimal text cannot be parsed.
	ErrInvalidDecimal = errors.New("invalid decimal format")

	// ErrDecimalOverflow is returned when a decimal value needs more digits than its precision.
	ErrDecimalOverflow = errors.New("decimal value exceeds precision")

	// ErrInvalidTimestamp is returned when timestamp text cannot be parsed or converted.
	ErrInvalidTimestamp = errors.New("invalid timestamp format")

	// ErrBufferNotAttached is returned when a borrowing vector is used before a buffer is attached.
	ErrBufferNotAttached = errors.New("vector buffer is not attached")

	// ErrBorrowedBuffer is returned when a borrowed buffer would have to be reallocated.
	ErrBorrowedBuffer = errors.New("borrowed buffer cannot be reallocated")

	// ErrClosed is returned when a closed vector or writer is used.
	ErrClosed = errors.New("already closed")

	// ErrIndexOutOfRange is returned when a positional access is beyond the vector capacity.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidPixelStride is returned when the configured pixel stride is not positive.
	ErrInvalidPixelStride = errors.New("invalid pixel stride")

	// ErrInvalidEncodingLevel is returned when the configured encoding level is unknown.
	ErrInvalidEncodingLevel = errors.New("invalid encoding level")

	// ErrCorruptedData is returned by decoders when encoded bytes are truncated or malformed.
	ErrCorruptedData = errors.New("corrupted encoded data")
)
