package requests

type CreateActivity struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Category    string   `json:"category" validate:"required,category"`
	Days        []string `json:"days" validate:"required,min=1,dive,weekday"`
	StartTime   string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string   `json:"end_time" validate:"required,datetime=15:04"`
	UserID      string
}

type CreateActivityAutoSlot struct {
	Title           string   `json:"title" validate:"required,max=120"`
	Description     string   `json:"description" validate:"omitempty,max=500"`
	Category        string   `json:"category" validate:"required,category"`
	Days            []string `json:"days" validate:"required,min=1,dive,weekday"`
	PreferredStart  string   `json:"preferred_start" validate:"required,datetime=15:04"`
	DurationMinutes int      `json:"duration_minutes" validate:"required,min=1,max=1439"`
	UserID          string
}

type UpdateActivity struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Category    string   `json:"category" validate:"required,category"`
	Days        []string `json:"days" validate:"required,min=1,dive,weekday"`
	StartTime   string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string   `json:"end_time" validate:"required,datetime=15:04"`
	UserID      string
	RoutineID   string
}

type ToggleCompletion struct {
	UserID    string
	RoutineID string
}

type FindActivities struct {
	Day      string `validate:"omitempty,weekday"`
	Category string `validate:"omitempty,category"`
	UserID   string
}

type DeleteActivity struct {
	UserID    string
	RoutineID string
}

type ClearActivities struct {
	UserID string
}

type SleepTimes struct {
	WakeTime  string `json:"wake_time" validate:"required,datetime=15:04"`
	SleepTime string `json:"sleep_time" validate:"required,datetime=15:04"`
}

// SetSleepSchedule accepts either one uniform wake/sleep pair for the whole
// week or explicit per-day pairs. Exactly one of the two must be set.
type SetSleepSchedule struct {
	Uniform *SleepTimes           `json:"uniform,omitempty"`
	PerDay  map[string]SleepTimes `json:"per_day,omitempty" validate:"omitempty,dive"`
	UserID  string
}
