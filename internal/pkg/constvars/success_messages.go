package constvars

const (
	CreateActivitySuccessMessage   = "Successfully created activity"
	FindActivitiesSuccessMessage   = "Successfully fetched activities"
	UpdateActivitySuccessMessage   = "Successfully updated activity"
	DeleteActivitySuccessMessage   = "Successfully deleted activity"
	ToggleCompletionSuccessMessage = "Successfully updated activity status"
	SetSleepScheduleSuccessMessage = "Successfully updated sleep schedule"
	ClearActivitiesSuccessMessage  = "Successfully cleared all activities"
	AutoSlotActivitySuccessMessage = "Successfully scheduled activity at the next free slot"
)
