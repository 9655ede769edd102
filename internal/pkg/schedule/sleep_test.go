package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSleepSchedule(t *testing.T) {
	t.Run("evening bedtime wraps into the next morning", func(t *testing.T) {
		perDay := map[Weekday]WakeSleep{
			Monday: {Wake: 390, Sleep: 1350}, // wake 06:30, sleep 22:30
		}
		blocks, err := DeriveSleepSchedule(perDay)
		require.NoError(t, err)
		require.Len(t, blocks, 1)

		block := blocks[0]
		assert.Equal(t, []Weekday{Monday, Tuesday}, block.Days)
		assert.Equal(t, 1350, block.Interval.Start)
		assert.Equal(t, 390, block.Interval.End)
		assert.True(t, block.Interval.Wraps())
	})

	t.Run("bedtime after midnight stays on one day", func(t *testing.T) {
		perDay := map[Weekday]WakeSleep{
			Saturday: {Wake: 540, Sleep: 90}, // sleep 01:30, wake 09:00
		}
		blocks, err := DeriveSleepSchedule(perDay)
		require.NoError(t, err)
		require.Len(t, blocks, 1)

		block := blocks[0]
		assert.Equal(t, []Weekday{Saturday}, block.Days)
		assert.False(t, block.Interval.Wraps())
		assert.Equal(t, 450, block.Interval.DurationMinutes())
	})

	t.Run("produces one block per configured day in weekday order", func(t *testing.T) {
		perDay := make(map[Weekday]WakeSleep, len(AllWeekdays))
		for _, day := range AllWeekdays {
			perDay[day] = WakeSleep{Wake: 420, Sleep: 1380}
		}
		blocks, err := DeriveSleepSchedule(perDay)
		require.NoError(t, err)
		require.Len(t, blocks, 7)
		for i, block := range blocks {
			assert.Equal(t, AllWeekdays[i], block.Days[0])
		}
	})

	t.Run("sunday night wraps to monday", func(t *testing.T) {
		perDay := map[Weekday]WakeSleep{
			Sunday: {Wake: 420, Sleep: 1380},
		}
		blocks, err := DeriveSleepSchedule(perDay)
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, []Weekday{Sunday, Monday}, blocks[0].Days)
	})

	t.Run("rejects equal wake and sleep times", func(t *testing.T) {
		perDay := map[Weekday]WakeSleep{
			Monday: {Wake: 420, Sleep: 420},
		}
		_, err := DeriveSleepSchedule(perDay)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}
