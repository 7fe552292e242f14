package vector

import (
	"fmt"
	"strings"
	"time"

	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/format"
	"github.com/arloliu/pixels/internal/memory"
)

const (
	timestampLayout     = time.DateTime
	maxTimestampFracLen = 6
)

// TimestampColumnVector holds timestamps as microseconds since 1970-01-01 00:00:00 UTC.
type TimestampColumnVector struct {
	base
	precision int
	micros    []int64
}

var _ ColumnVector = (*TimestampColumnVector)(nil)

// NewTimestampColumnVector creates a timestamp vector. Owned buffers are 64-byte aligned
// unless WithAlignment says otherwise.
func NewTimestampColumnVector(capacity, precision int, encoding bool, opts ...VectorOption) (*TimestampColumnVector, error) {
	if precision < 0 || precision > 9 {
		return nil, fmt.Errorf("%w: timestamp precision %d", errs.ErrInvalidTypeDescription, precision)
	}

	v := &TimestampColumnVector{precision: precision}
	v.onResize = v.refresh

	if err := v.init(format.CategoryTimestamp, capacity, 8, memory.Alignment64, encoding, opts); err != nil {
		return nil, err
	}
	v.refresh()

	return v, nil
}

func (v *TimestampColumnVector) refresh() {
	if v.buf == nil {
		v.micros = nil
		return
	}
	v.micros = memory.View[int64](v.buf)[:v.length]
}

func (v *TimestampColumnVector) Precision() int {
	return v.precision
}

// Attach installs micros as the borrowed value buffer. len(micros) must cover Length.
func (v *TimestampColumnVector) Attach(micros []int64) error {
	return v.attach(memory.Wrap(micros))
}

// AddInt64 appends microseconds since the epoch.
func (v *TimestampColumnVector) AddInt64(micros int64) error {
	index, err := v.nextSlot()
	if err != nil {
		return err
	}

	v.micros[index] = micros
	v.commit(index, false)

	return nil
}

func (v *TimestampColumnVector) AddBool(value bool) error {
	return v.AddInt64(boolToInt64(value))
}

// AddTime appends t at microsecond resolution.
func (v *TimestampColumnVector) AddTime(t time.Time) error {
	return v.AddInt64(t.UnixMicro())
}

// AddString appends a "YYYY-MM-DD HH:MM:SS[.ffffff]" timestamp read in UTC.
// Unlike dates and decimals, malformed text is returned as an error and nothing is appended.
func (v *TimestampColumnVector) AddString(value string) error {
	micros, err := ParseTimestamp(value)
	if err != nil {
		return err
	}

	return v.AddInt64(micros)
}

func (v *TimestampColumnVector) AddNull() error {
	index, err := v.nextSlot()
	if err != nil {
		return err
	}

	v.micros[index] = 0
	v.commit(index, true)

	return nil
}

// Set writes micros at index and clears its null flag.
func (v *TimestampColumnVector) Set(index int, micros int64) error {
	if err := v.checkSet(index); err != nil {
		return err
	}

	v.micros[index] = micros
	v.commit(index, false)

	return nil
}

// MicrosAt returns the value at index, which may be past the write index but must be
// below Length. It returns 0 when no buffer is present, after Close included.
func (v *TimestampColumnVector) MicrosAt(index int) int64 {
	if v.micros == nil {
		return 0
	}

	return v.micros[index]
}

// Values returns the appended timestamps. The slice aliases the vector buffer.
func (v *TimestampColumnVector) Values() []int64 {
	if v.micros == nil {
		return nil
	}

	return v.micros[:v.writeIndex]
}

// Current returns the values from the read index on, nil when no buffer is present.
func (v *TimestampColumnVector) Current() []int64 {
	if v.micros == nil {
		return nil
	}

	return v.micros[v.readIndex:v.writeIndex]
}

// ParseTimestamp converts "YYYY-MM-DD HH:MM:SS[.ffffff]" in UTC into microseconds since the
// epoch. Up to six fractional digits are accepted; "12.5" means 500 milliseconds.
func ParseTimestamp(text string) (int64, error) {
	text = strings.TrimSpace(text)

	if dot := strings.IndexByte(text, '.'); dot >= 0 && len(text)-dot-1 > maxTimestampFracLen {
		return 0, fmt.Errorf("%w %q: more than %d fractional digits", errs.ErrInvalidTimestamp, text, maxTimestampFracLen)
	}

	t, err := time.ParseInLocation(timestampLayout, text, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", errs.ErrInvalidTimestamp, text, err)
	}

	return t.UnixMicro(), nil
}
