package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCompanions(t *testing.T) {
	offsets := CompanionOffsets{
		AfterWake:       30,
		MorningDuration: 5,
		BeforeSleep:     45,
		EveningDuration: 12,
	}

	t.Run("anchors both companions to the day's times", func(t *testing.T) {
		perDay := map[Weekday]WakeSleep{
			Monday: {Wake: 420, Sleep: 1380}, // wake 07:00, sleep 23:00
		}
		companions := DeriveCompanions(perDay, offsets)
		require.Len(t, companions, 2)

		morning := companions[0]
		assert.Equal(t, CompanionMorning, morning.Kind)
		assert.Equal(t, Monday, morning.Day)
		assert.Equal(t, 450, morning.Interval.Start) // 07:30
		assert.Equal(t, 455, morning.Interval.End)   // 07:35

		evening := companions[1]
		assert.Equal(t, CompanionEvening, evening.Kind)
		assert.Equal(t, Monday, evening.Day)
		assert.Equal(t, 1335, evening.Interval.Start) // 22:15
		assert.Equal(t, 1347, evening.Interval.End)   // 22:27
	})

	t.Run("evening companion before an after-midnight bedtime lands on the previous day", func(t *testing.T) {
		perDay := map[Weekday]WakeSleep{
			Saturday: {Wake: 540, Sleep: 15}, // sleep 00:15
		}
		companions := DeriveCompanions(perDay, offsets)
		require.Len(t, companions, 2)

		evening := companions[1]
		assert.Equal(t, CompanionEvening, evening.Kind)
		assert.Equal(t, Friday, evening.Day)
		assert.Equal(t, 1410, evening.Interval.Start) // 23:30
		assert.Equal(t, 1422, evening.Interval.End)   // 23:42
	})

	t.Run("covers every configured day", func(t *testing.T) {
		perDay := make(map[Weekday]WakeSleep, len(AllWeekdays))
		for _, day := range AllWeekdays {
			perDay[day] = WakeSleep{Wake: 420, Sleep: 1380}
		}
		companions := DeriveCompanions(perDay, offsets)
		assert.Len(t, companions, 14)
	})
}
