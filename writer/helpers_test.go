package writer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pixels/sink"
	"github.com/arloliu/pixels/vector"
)

// newTimestampVector builds a vector from values, where nil appends a null row.
func newTimestampVector(t *testing.T, values ...any) *vector.TimestampColumnVector {
	t.Helper()

	v, err := vector.NewTimestampColumnVector(len(values), 6, true)
	require.NoError(t, err)
	t.Cleanup(v.Close)

	for _, value := range values {
		if value == nil {
			require.NoError(t, v.AddNull())
			continue
		}
		require.NoError(t, v.AddInt64(int64(value.(int))))
	}

	return v
}

// newDecimalVector builds a vector from decimal literals, where "NULL" appends a null row.
func newDecimalVector(t *testing.T, precision, scale int, values ...string) *vector.DecimalColumnVector {
	t.Helper()

	v, err := vector.NewDecimalColumnVector(len(values), precision, scale, true)
	require.NoError(t, err)
	t.Cleanup(v.Close)

	for _, value := range values {
		if value == "NULL" {
			require.NoError(t, v.AddNull())
			continue
		}
		require.NoError(t, v.AddString(value))
	}
	require.Equal(t, len(values), v.WriteIndex())

	return v
}

var errSinkDown = errors.New("sink down")

// flakySink fails every PutBytes while down is set.
type flakySink struct {
	buf  *sink.Buffer
	down bool
}

func newFlakySink(t *testing.T) *flakySink {
	t.Helper()

	s := &flakySink{buf: sink.NewBuffer()}
	t.Cleanup(s.buf.Release)

	return s
}

func (s *flakySink) PutBytes(data []byte) error {
	if s.down {
		return errSinkDown
	}

	return s.buf.PutBytes(data)
}

func (s *flakySink) WritePos() int64 {
	return s.buf.WritePos()
}

func newBufferSink(t *testing.T) *sink.Buffer {
	t.Helper()

	out := sink.NewBuffer()
	t.Cleanup(out.Release)

	return out
}
