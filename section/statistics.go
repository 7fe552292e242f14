package section

// IntegerStatistics summarizes the non-null values of a pixel or a column chunk.
//
// Values outside the int64 range (128-bit decimals) are counted in WideValues and left out of
// Minimum, Maximum and Sum.
type IntegerStatistics struct {
	NumberOfValues uint64
	WideValues     uint64
	HasNull        bool
	Minimum        int64
	Maximum        int64
	Sum            int64
	SumOverflow    bool
}

// HasRange reports whether Minimum and Maximum hold a value.
func (s *IntegerStatistics) HasRange() bool {
	return s.NumberOfValues > s.WideValues
}

// Update adds one non-null value.
func (s *IntegerStatistics) Update(v int64) {
	if !s.HasRange() {
		s.Minimum, s.Maximum = v, v
	} else {
		s.Minimum = min(s.Minimum, v)
		s.Maximum = max(s.Maximum, v)
	}
	s.NumberOfValues++
	s.addSum(v)
}

// UpdateWide adds one non-null value that does not fit in an int64.
func (s *IntegerStatistics) UpdateWide() {
	s.NumberOfValues++
	s.WideValues++
}

// Merge folds other into s.
func (s *IntegerStatistics) Merge(other IntegerStatistics) {
	if other.HasRange() {
		if !s.HasRange() {
			s.Minimum, s.Maximum = other.Minimum, other.Maximum
		} else {
			s.Minimum = min(s.Minimum, other.Minimum)
			s.Maximum = max(s.Maximum, other.Maximum)
		}
	}

	s.NumberOfValues += other.NumberOfValues
	s.WideValues += other.WideValues
	s.HasNull = s.HasNull || other.HasNull
	s.SumOverflow = s.SumOverflow || other.SumOverflow
	s.addSum(other.Sum)
}

func (s *IntegerStatistics) Reset() {
	*s = IntegerStatistics{}
}

// addSum adds v to Sum. Once the sum overflowed it is no longer maintained.
func (s *IntegerStatistics) addSum(v int64) {
	if s.SumOverflow {
		return
	}

	sum := s.Sum + v
	if (v > 0 && sum < s.Sum) || (v < 0 && sum > s.Sum) {
		s.SumOverflow = true
		s.Sum = 0

		return
	}
	s.Sum = sum
}
