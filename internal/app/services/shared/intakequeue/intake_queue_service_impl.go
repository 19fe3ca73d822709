package intakequeue

import (
	"context"

	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type intakeQueueService struct {
	Channel *amqp091.Channel
	Queue   string
}

func NewIntakeQueueService(rabbitMQConnection *amqp091.Connection, queue string) (IntakeQueueService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &intakeQueueService{
		Channel: channel,
		Queue:   queue,
	}, nil
}

func (s *intakeQueueService) PublishSubmitted(ctx context.Context, event *SubmittedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	return nil
}
