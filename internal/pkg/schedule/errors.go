package schedule

import "errors"

var (
	ErrInvalidInterval     = errors.New("interval start and end must be distinct minutes within a day")
	ErrSchedulingExhausted = errors.New("no free slot found within the remaining day")
)
