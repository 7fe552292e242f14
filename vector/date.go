package vector

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/arloliu/pixels/errs"
	"github.com/arloliu/pixels/format"
	"github.com/arloliu/pixels/internal/memory"
)

const secondsPerDay = 24 * 60 * 60

// DateColumnVector holds dates as days since 1970-01-01 UTC.
type DateColumnVector struct {
	base
	days []int32
}

var _ ColumnVector = (*DateColumnVector)(nil)

// NewDateColumnVector creates a date vector of the given capacity. With encoding the vector
// allocates and owns an aligned buffer; without it a buffer must be attached with Attach.
func NewDateColumnVector(capacity int, encoding bool, opts ...VectorOption) (*DateColumnVector, error) {
	v := &DateColumnVector{}
	v.onResize = v.refresh

	if err := v.init(format.CategoryDate, capacity, 4, memory.DefaultAlignment(), encoding, opts); err != nil {
		return nil, err
	}
	v.refresh()

	return v, nil
}

func (v *DateColumnVector) refresh() {
	if v.buf == nil {
		v.days = nil
		return
	}
	v.days = memory.View[int32](v.buf)[:v.length]
}

// Attach installs days as the borrowed value buffer. len(days) must cover Length.
func (v *DateColumnVector) Attach(days []int32) error {
	return v.attach(memory.Wrap(days))
}

// Add appends days since the epoch.
func (v *DateColumnVector) Add(days int32) error {
	index, err := v.nextSlot()
	if err != nil {
		return err
	}

	v.days[index] = days
	v.commit(index, false)

	return nil
}

// AddTime appends the UTC calendar date of t.
func (v *DateColumnVector) AddTime(t time.Time) error {
	return v.Add(daysOf(t))
}

func (v *DateColumnVector) AddInt64(value int64) error {
	if value < math.MinInt32 || value > math.MaxInt32 {
		return fmt.Errorf("%w: %d days does not fit a date", errs.ErrInvalidArgument, value)
	}

	return v.Add(int32(value))
}

func (v *DateColumnVector) AddBool(value bool) error {
	return v.Add(int32(boolToInt64(value)))
}

// AddString appends a YYYY-MM-DD date. Malformed text is logged and skipped.
func (v *DateColumnVector) AddString(value string) error {
	days, err := ParseDate(value)
	if err != nil {
		v.skip(value, err)
		return nil
	}

	return v.Add(days)
}

func (v *DateColumnVector) AddNull() error {
	index, err := v.nextSlot()
	if err != nil {
		return err
	}

	v.days[index] = 0
	v.commit(index, true)

	return nil
}

// Set writes days at index and clears its null flag.
func (v *DateColumnVector) Set(index int, days int32) error {
	if err := v.checkSet(index); err != nil {
		return err
	}

	v.days[index] = days
	v.commit(index, false)

	return nil
}

// DayAt returns the value at index, which may be past the write index but must be
// below Length. It returns 0 when no buffer is present, after Close included.
func (v *DateColumnVector) DayAt(index int) int32 {
	if v.days == nil {
		return 0
	}

	return v.days[index]
}

// Values returns the appended days. The slice aliases the vector buffer.
func (v *DateColumnVector) Values() []int32 {
	if v.days == nil {
		return nil
	}

	return v.days[:v.writeIndex]
}

// Current returns the values from the read index on, nil when no buffer is present.
func (v *DateColumnVector) Current() []int32 {
	if v.days == nil {
		return nil
	}

	return v.days[v.readIndex:v.writeIndex]
}

// ParseDate converts YYYY-MM-DD into days since 1970-01-01, interpreting the date in UTC.
func ParseDate(text string) (int32, error) {
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(text), time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", errs.ErrInvalidDate, text, err)
	}

	return daysOf(t), nil
}

func daysOf(t time.Time) int32 {
	secs := t.Unix()
	days := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		days--
	}

	return int32(days) //nolint:gosec
}
