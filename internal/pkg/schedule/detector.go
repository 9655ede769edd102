package schedule

// Entry is one scheduled activity as the engine sees it.
type Entry struct {
	ID       string
	Days     []Weekday
	Interval Interval
}

// FindConflicts returns every existing entry that shares a day with the
// candidate and overlaps its interval. An entry whose ID equals excludeID is
// skipped so an activity being rescheduled never conflicts with itself.
func FindConflicts(days []Weekday, interval Interval, existing []Entry, excludeID string) []Entry {
	daySet := make(map[Weekday]bool, len(days))
	for _, day := range days {
		daySet[day] = true
	}

	var conflicts []Entry
	for _, entry := range existing {
		if excludeID != "" && entry.ID == excludeID {
			continue
		}
		if !sharesDay(daySet, entry.Days) {
			continue
		}
		if interval.Overlaps(entry.Interval) {
			conflicts = append(conflicts, entry)
		}
	}
	return conflicts
}

func sharesDay(daySet map[Weekday]bool, days []Weekday) bool {
	for _, day := range days {
		if daySet[day] {
			return true
		}
	}
	return false
}
