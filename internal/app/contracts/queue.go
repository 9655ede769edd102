package contracts

import "context"

type ScheduleEventPublisher interface {
	PublishScheduleEvent(ctx context.Context, eventType, userID string, payload interface{}) error
}
