package schedule

type CompanionKind string

const (
	CompanionMorning CompanionKind = "morning"
	CompanionEvening CompanionKind = "evening"
)

// CompanionOffsets positions the companion activities relative to the wake
// and sleep times, all in minutes.
type CompanionOffsets struct {
	AfterWake       int
	MorningDuration int
	BeforeSleep     int
	EveningDuration int
}

// Companion is a short derived activity anchored to one day's wake or sleep
// time.
type Companion struct {
	Kind     CompanionKind
	Day      Weekday
	Interval Interval
}

// DeriveCompanions produces the morning and evening companion activities for
// every configured day, in weekday order. The morning companion starts a
// fixed offset after waking. The evening companion ends a fixed offset
// before bedtime; when that pushes its start past midnight onto the previous
// clock day, the companion is labeled with the previous weekday so it still
// precedes that night's sleep.
func DeriveCompanions(perDay map[Weekday]WakeSleep, offsets CompanionOffsets) []Companion {
	var companions []Companion
	for _, day := range AllWeekdays {
		times, ok := perDay[day]
		if !ok {
			continue
		}

		morningStart := (times.Wake + offsets.AfterWake) % MinutesPerDay
		companions = append(companions, Companion{
			Kind: CompanionMorning,
			Day:  day,
			Interval: Interval{
				Start: morningStart,
				End:   (morningStart + offsets.MorningDuration) % MinutesPerDay,
			},
		})

		eveningDay := day
		eveningStart := times.Sleep - offsets.BeforeSleep
		if eveningStart < 0 {
			eveningStart += MinutesPerDay
			eveningDay = day.Prev()
		}
		companions = append(companions, Companion{
			Kind: CompanionEvening,
			Day:  eveningDay,
			Interval: Interval{
				Start: eveningStart,
				End:   (eveningStart + offsets.EveningDuration) % MinutesPerDay,
			},
		})
	}
	return companions
}
