package schedule

import "sort"

// maxResolveIterations bounds the slot search. Every advance moves the
// candidate forward by at least one minute within at most 24 hour windows,
// so twice that is a safe cap.
const maxResolveIterations = 48

// Resolve finds the earliest start at or after preferredStart where an
// activity of the given duration fits on the day. A slot fits when it
// overlaps no existing entry on that day and the candidate's start hour would
// not exceed sixty scheduled minutes. Returns ErrSchedulingExhausted when no
// slot fits before midnight.
func Resolve(day Weekday, durationMinutes, preferredStart int, existing []Entry) (int, error) {
	if durationMinutes <= 0 || durationMinutes >= MinutesPerDay {
		return 0, ErrInvalidInterval
	}
	if preferredStart < 0 || preferredStart >= MinutesPerDay {
		return 0, ErrInvalidInterval
	}

	segments := daySegments(day, existing)
	start := preferredStart
	for i := 0; i < maxResolveIterations; i++ {
		if start+durationMinutes > MinutesPerDay {
			return 0, ErrSchedulingExhausted
		}
		if next, full := hourCapacityAdvance(start, durationMinutes, segments); full {
			start = next
			continue
		}
		if next, conflict := overlapAdvance(start, durationMinutes, segments); conflict {
			start = next
			continue
		}
		return start, nil
	}
	return 0, ErrSchedulingExhausted
}

// ResolveAll finds the earliest common start that fits on every given day.
// Advancing on one day restarts the scan so the returned start holds for all
// days at once.
func ResolveAll(days []Weekday, durationMinutes, preferredStart int, existing []Entry) (int, error) {
	if len(days) == 0 {
		return 0, ErrInvalidInterval
	}

	start := preferredStart
	for i := 0; i < maxResolveIterations; i++ {
		advanced := false
		for _, day := range days {
			resolved, err := Resolve(day, durationMinutes, start, existing)
			if err != nil {
				return 0, err
			}
			if resolved > start {
				start = resolved
				advanced = true
				break
			}
		}
		if !advanced {
			return start, nil
		}
	}
	return 0, ErrSchedulingExhausted
}

// daySegments collects the non-wrapping occupied ranges of the day, sorted
// by start.
func daySegments(day Weekday, existing []Entry) [][2]int {
	var segments [][2]int
	for _, entry := range existing {
		onDay := false
		for _, d := range entry.Days {
			if d == day {
				onDay = true
				break
			}
		}
		if !onDay {
			continue
		}
		segments = append(segments, entry.Interval.segments()...)
	}
	sort.Slice(segments, func(i, j int) bool {
		return segments[i][0] < segments[j][0]
	})
	return segments
}

// hourCapacityAdvance checks the candidate's start hour. When the minutes
// already scheduled in that clock hour plus the candidate's share of it would
// exceed sixty, the candidate moves to the top of the next hour.
func hourCapacityAdvance(start, durationMinutes int, segments [][2]int) (int, bool) {
	hourStart := (start / 60) * 60
	hourEnd := hourStart + 60

	scheduled := 0
	for _, segment := range segments {
		from := max(segment[0], hourStart)
		to := min(segment[1], hourEnd)
		if from < to {
			scheduled += to - from
		}
	}

	candidateShare := min(start+durationMinutes, hourEnd) - start
	if scheduled+candidateShare > 60 {
		return hourEnd, true
	}
	return start, false
}

// overlapAdvance moves the candidate past the first occupied range it
// overlaps.
func overlapAdvance(start, durationMinutes int, segments [][2]int) (int, bool) {
	end := start + durationMinutes
	for _, segment := range segments {
		if start < segment[1] && segment[0] < end {
			return segment[1], true
		}
	}
	return start, false
}
