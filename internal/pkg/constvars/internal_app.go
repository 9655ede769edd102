package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	MongoCollectionTimetable = "timetable"
)

const (
	RedisKeyWeeklyScheduleFormat = "routines:%s"
	RedisKeyRoutineLockFormat    = "lock:routines:%s"
)

// Activity categories. Sleep and Rest are exempt from conflict checking.
const (
	CategoryJournal   = "Journal"
	CategoryExercise  = "Exercise"
	CategoryChallenge = "Challenge"
	CategoryTherapy   = "Therapy"
	CategoryCustom    = "Custom"
	CategorySleep     = "Sleep"
	CategoryRest      = "Rest"
)

var ActivityCategories = []string{
	CategoryJournal,
	CategoryExercise,
	CategoryChallenge,
	CategoryTherapy,
	CategoryCustom,
	CategorySleep,
	CategoryRest,
}

// Titles of the derived activities regenerated alongside the sleep schedule.
const (
	DerivedSleepTitle   = "Sleep"
	DerivedMorningTitle = "Morning Reflection"
	DerivedEveningTitle = "Relaxation Technique"
)

const (
	ScheduleEventDerivedSetReplaced = "schedule.derived_set_replaced"
	ScheduleEventCleared            = "schedule.cleared"
)
