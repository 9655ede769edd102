package constvars

const (
	URLParamUserID    = "user_id"
	URLParamRoutineID = "routine_id"
)

const (
	URLQueryParamDay      = "day"
	URLQueryParamCategory = "category"
)
