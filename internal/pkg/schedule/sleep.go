package schedule

// WakeSleep holds one day's wake-up and bedtime, in minutes after midnight.
type WakeSleep struct {
	Wake  int
	Sleep int
}

// SleepBlock is a derived sleep activity. A block that wraps midnight lists
// both the night it starts on and the morning it ends on.
type SleepBlock struct {
	Days     []Weekday
	Interval Interval
}

// DeriveSleepSchedule turns per-day wake and sleep times into sleep blocks,
// one per configured day, in weekday order. A bedtime after midnight (sleep
// before wake on the clock) yields a single-day block; a bedtime in the
// evening yields a block wrapping into the next morning. Equal wake and
// sleep times are rejected.
func DeriveSleepSchedule(perDay map[Weekday]WakeSleep) ([]SleepBlock, error) {
	var blocks []SleepBlock
	for _, day := range AllWeekdays {
		times, ok := perDay[day]
		if !ok {
			continue
		}
		interval, err := NewInterval(times.Sleep, times.Wake)
		if err != nil {
			return nil, err
		}

		days := []Weekday{day}
		if interval.Wraps() {
			days = append(days, day.Next())
		}
		blocks = append(blocks, SleepBlock{Days: days, Interval: interval})
	}
	return blocks, nil
}
