package schedule

import "fmt"

// Weekday is a day name as stored on activities, e.g. "Monday".
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var AllWeekdays = []Weekday{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

var weekdayIndex = map[Weekday]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

func ParseWeekday(name string) (Weekday, error) {
	day := Weekday(name)
	if _, ok := weekdayIndex[day]; !ok {
		return "", fmt.Errorf("unknown weekday: %s", name)
	}
	return day, nil
}

func (d Weekday) Next() Weekday {
	return AllWeekdays[(weekdayIndex[d]+1)%len(AllWeekdays)]
}

func (d Weekday) Prev() Weekday {
	return AllWeekdays[(weekdayIndex[d]+len(AllWeekdays)-1)%len(AllWeekdays)]
}
