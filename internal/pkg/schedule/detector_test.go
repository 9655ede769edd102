package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConflicts(t *testing.T) {
	existing := []Entry{
		{ID: "yoga", Days: []Weekday{Monday, Wednesday}, Interval: Interval{Start: 540, End: 600}},
		{ID: "journal", Days: []Weekday{Tuesday}, Interval: Interval{Start: 540, End: 600}},
		{ID: "night-walk", Days: []Weekday{Friday}, Interval: Interval{Start: 1380, End: 30}},
	}

	t.Run("reports overlap on a shared day", func(t *testing.T) {
		conflicts := FindConflicts([]Weekday{Monday}, Interval{Start: 570, End: 630}, existing, "")
		require.Len(t, conflicts, 1)
		assert.Equal(t, "yoga", conflicts[0].ID)
	})

	t.Run("same time on a different day is free", func(t *testing.T) {
		conflicts := FindConflicts([]Weekday{Thursday}, Interval{Start: 540, End: 600}, existing, "")
		assert.Empty(t, conflicts)
	})

	t.Run("collects conflicts across several requested days", func(t *testing.T) {
		conflicts := FindConflicts([]Weekday{Monday, Tuesday}, Interval{Start: 550, End: 590}, existing, "")
		require.Len(t, conflicts, 2)
	})

	t.Run("skips the excluded entry", func(t *testing.T) {
		conflicts := FindConflicts([]Weekday{Monday}, Interval{Start: 540, End: 600}, existing, "yoga")
		assert.Empty(t, conflicts)
	})

	t.Run("detects conflict with a wrapping entry", func(t *testing.T) {
		conflicts := FindConflicts([]Weekday{Friday}, Interval{Start: 10, End: 90}, existing, "")
		require.Len(t, conflicts, 1)
		assert.Equal(t, "night-walk", conflicts[0].ID)
	})
}
