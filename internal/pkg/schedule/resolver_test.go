package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("keeps the preferred start when the slot is free", func(t *testing.T) {
		start, err := Resolve(Monday, 30, 570, nil)
		require.NoError(t, err)
		assert.Equal(t, 570, start)
	})

	t.Run("ignores entries on other days", func(t *testing.T) {
		existing := []Entry{
			{ID: "a", Days: []Weekday{Tuesday}, Interval: Interval{Start: 540, End: 600}},
		}
		start, err := Resolve(Monday, 30, 555, existing)
		require.NoError(t, err)
		assert.Equal(t, 555, start)
	})

	t.Run("moves past a fully booked hour", func(t *testing.T) {
		// 09:00-10:00 is taken; a 09:15 request lands at 10:00.
		existing := []Entry{
			{ID: "a", Days: []Weekday{Monday}, Interval: Interval{Start: 540, End: 600}},
		}
		start, err := Resolve(Monday, 30, 555, existing)
		require.NoError(t, err)
		assert.Equal(t, 600, start)
	})

	t.Run("respects the sixty minute hour budget", func(t *testing.T) {
		// 50 minutes of the 09:00 hour are taken; a 20 minute request at
		// 09:40 would push the hour over budget, so it lands at 10:00.
		existing := []Entry{
			{ID: "a", Days: []Weekday{Monday}, Interval: Interval{Start: 540, End: 570}},
			{ID: "b", Days: []Weekday{Monday}, Interval: Interval{Start: 575, End: 595}},
		}
		start, err := Resolve(Monday, 20, 580, existing)
		require.NoError(t, err)
		assert.Equal(t, 600, start)
	})

	t.Run("advances past an overlapping entry", func(t *testing.T) {
		existing := []Entry{
			{ID: "a", Days: []Weekday{Monday}, Interval: Interval{Start: 570, End: 630}},
		}
		start, err := Resolve(Monday, 30, 570, existing)
		require.NoError(t, err)
		assert.Equal(t, 630, start)
	})

	t.Run("walks through consecutive entries", func(t *testing.T) {
		existing := []Entry{
			{ID: "a", Days: []Weekday{Monday}, Interval: Interval{Start: 600, End: 630}},
			{ID: "b", Days: []Weekday{Monday}, Interval: Interval{Start: 630, End: 650}},
		}
		start, err := Resolve(Monday, 10, 610, existing)
		require.NoError(t, err)
		assert.Equal(t, 650, start)
	})

	t.Run("fails when the slot would cross midnight", func(t *testing.T) {
		_, err := Resolve(Monday, 45, 1410, nil)
		assert.ErrorIs(t, err, ErrSchedulingExhausted)
	})

	t.Run("fails when the remaining day cannot fit the duration", func(t *testing.T) {
		existing := []Entry{
			{ID: "a", Days: []Weekday{Monday}, Interval: Interval{Start: 1380, End: 1439}},
		}
		_, err := Resolve(Monday, 90, 1370, existing)
		assert.ErrorIs(t, err, ErrSchedulingExhausted)
	})

	t.Run("rejects invalid durations", func(t *testing.T) {
		_, err := Resolve(Monday, 0, 600, nil)
		assert.ErrorIs(t, err, ErrInvalidInterval)

		_, err = Resolve(Monday, 1440, 600, nil)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestResolveAll(t *testing.T) {
	t.Run("finds a start shared by all days", func(t *testing.T) {
		existing := []Entry{
			{ID: "a", Days: []Weekday{Monday}, Interval: Interval{Start: 540, End: 600}},
			{ID: "b", Days: []Weekday{Tuesday}, Interval: Interval{Start: 600, End: 660}},
		}
		start, err := ResolveAll([]Weekday{Monday, Tuesday}, 30, 555, existing)
		require.NoError(t, err)
		assert.Equal(t, 660, start)
	})

	t.Run("returns the preferred start when every day is free", func(t *testing.T) {
		start, err := ResolveAll([]Weekday{Monday, Tuesday, Wednesday}, 30, 480, nil)
		require.NoError(t, err)
		assert.Equal(t, 480, start)
	})

	t.Run("fails when one day has no room", func(t *testing.T) {
		existing := []Entry{
			{ID: "a", Days: []Weekday{Tuesday}, Interval: Interval{Start: 1400, End: 1439}},
		}
		_, err := ResolveAll([]Weekday{Monday, Tuesday}, 60, 1390, existing)
		assert.ErrorIs(t, err, ErrSchedulingExhausted)
	})

	t.Run("rejects an empty day list", func(t *testing.T) {
		_, err := ResolveAll(nil, 30, 600, nil)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}
