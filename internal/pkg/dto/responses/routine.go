package responses

type Activity struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Days        []string `json:"days"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Completed   bool     `json:"completed"`
	Derived     bool     `json:"derived"`
}

// WeeklySchedule groups a user's activities by day in week order.
type WeeklySchedule struct {
	Days []DaySchedule `json:"days"`
}

type DaySchedule struct {
	Day        string     `json:"day"`
	Activities []Activity `json:"activities"`
}
