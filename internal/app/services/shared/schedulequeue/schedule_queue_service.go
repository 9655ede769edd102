package schedulequeue

import (
	"context"
	"encoding/json"
	"fmt"
	"storyai-service/internal/app/contracts"
	"storyai-service/internal/pkg/constvars"
	"storyai-service/internal/pkg/exceptions"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const QueueName = "schedule_events_queue"

// ScheduleEvent is the payload published whenever a user's timetable changes
// in bulk, so downstream consumers can refresh reminders and insights.
type ScheduleEvent struct {
	EventType  string      `json:"event_type"`
	UserID     string      `json:"user_id"`
	Payload    interface{} `json:"payload,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Service publishes schedule events to a durable RabbitMQ queue with
// publisher confirms.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger) (contracts.ScheduleEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		QueueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}
	return svc, nil
}

func (s *Service) PublishScheduleEvent(ctx context.Context, eventType, userID string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("ScheduleQueue.PublishScheduleEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, QueueName),
		zap.String(constvars.LoggingEventTypeKey, eventType),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	body, err := json.Marshal(ScheduleEvent{
		EventType:  eventType,
		UserID:     userID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", QueueName, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueuePublish(fmt.Errorf("message not confirmed"))
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err())
	}

	s.log.Info("ScheduleQueue.PublishScheduleEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, eventType),
	)
	return nil
}
