package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must have at least %s items",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of: %s",
	"datetime": "must be a valid time in HH:MM format",
	"category": "must be a valid activity category",
	"weekday":  "must be a valid weekday name",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientActivityNotFound              = "activity not found"
	ErrClientInvalidActivityTime           = "activity start time must be before its end time"
	ErrClientScheduleConflict              = "this time slot conflicts with an existing activity"
	ErrClientScheduleFull                  = "no free slot could be found on that day"
	ErrClientScheduleBusy                  = "your schedule is being updated, please retry"
	ErrClientInvalidSleepSchedule          = "provide either a uniform sleep schedule or per-day times, not both"
	ErrClientTooManyRequests               = "too many scheduling requests, slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevMissingRequestID       = "request ID not found in request context"
	ErrDevServerDeadlineExceeded = "deadline exceeded"

	ErrDevActivityNotFound     = "activity not found for this user"
	ErrDevInvalidInterval      = "activity interval is invalid"
	ErrDevScheduleConflict     = "candidate interval conflicts with existing activities"
	ErrDevSchedulingExhausted  = "slot resolution exhausted the bounded search"
	ErrDevScheduleLockNotOwned = "schedule lock not acquired"
	ErrDevInvalidSleepSchedule = "sleep schedule must set exactly one of uniform or per_day"
	ErrDevTooManyRequests      = "rate limit exceeded"

	// Database messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument = "failed to delete document from database"
	ErrDevDBFailedToIterateDocs    = "failed to iterate documents from database"

	// Redis messages
	ErrDevRedisSet       = "failed to set value into redis"
	ErrDevRedisGet       = "failed to get value from redis"
	ErrDevRedisDelete    = "failed to delete value from redis"
	ErrDevRedisUnlock    = "failed to release redis lock"
	ErrDevRedisTrySetNX  = "failed to acquire redis lock"
	ErrDevQueuePublish   = "failed to publish message to queue"
	ErrDevQueueNoConfirm = "broker did not confirm the published message"
)
