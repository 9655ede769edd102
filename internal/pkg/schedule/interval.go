package schedule

// MinutesPerDay is the number of minutes in one day.
const MinutesPerDay = 1440

// Interval is a half-open range of minutes within a day. An interval whose
// end is before its start wraps across midnight: [Start, 1440) plus [0, End).
type Interval struct {
	Start int
	End   int
}

func NewInterval(start, end int) (Interval, error) {
	if start < 0 || start >= MinutesPerDay || end < 0 || end >= MinutesPerDay || start == end {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

func (i Interval) Wraps() bool {
	return i.End < i.Start
}

func (i Interval) DurationMinutes() int {
	if i.Wraps() {
		return (MinutesPerDay - i.Start) + i.End
	}
	return i.End - i.Start
}

// segments decomposes the interval into non-wrapping [start, end) pairs.
func (i Interval) segments() [][2]int {
	if i.Wraps() {
		return [][2]int{{i.Start, MinutesPerDay}, {0, i.End}}
	}
	return [][2]int{{i.Start, i.End}}
}

// Overlaps reports whether the two intervals share any minute of the day.
// Wrapping intervals are compared segment by segment.
func (i Interval) Overlaps(other Interval) bool {
	for _, a := range i.segments() {
		for _, b := range other.segments() {
			if a[0] < b[1] && b[0] < a[1] {
				return true
			}
		}
	}
	return false
}

// Contains reports whether the given minute of the day falls inside the
// interval.
func (i Interval) Contains(minute int) bool {
	for _, s := range i.segments() {
		if minute >= s[0] && minute < s[1] {
			return true
		}
	}
	return false
}
