package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// appointmentEvent is the payload published to the appointment queue.
// Consumers key off the Event field; the appointment snapshot is
// denormalized so they never have to call back into this service.
type appointmentEvent struct {
	Event       string              `json:"event"`
	Appointment *models.Appointment `json:"appointment"`
	OccurredAt  time.Time           `json:"occurred_at"`
}

type rabbitMQPublisher struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

// NewRabbitMQPublisher declares the durable appointment queue and enables
// publisher confirms so an acknowledged booking is never silently lost.
func NewRabbitMQPublisher(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
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

	return &rabbitMQPublisher{
		ch:        ch,
		log:       log,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (p *rabbitMQPublisher) AppointmentCreated(ctx context.Context, appointment *models.Appointment) error {
	return p.publish(ctx, constvars.EventAppointmentCreated, appointment)
}

func (p *rabbitMQPublisher) AppointmentCancelled(ctx context.Context, appointment *models.Appointment) error {
	return p.publish(ctx, constvars.EventAppointmentCancelled, appointment)
}

func (p *rabbitMQPublisher) publish(ctx context.Context, event string, appointment *models.Appointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("EventPublisher.publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("event", event),
	)

	body, err := json.Marshal(appointmentEvent{
		Event:       event,
		Appointment: appointment,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Headers:      amqp.Table{"event": event},
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queueName, false, false, msg); err != nil {
		return exceptions.ErrEventPublish(err)
	}

	select {
	case confirmed := <-p.confirms:
		if !confirmed.Ack {
			return exceptions.ErrEventPublish(fmt.Errorf("message not confirmed"))
		}
	case <-ctx.Done():
		return exceptions.ErrEventPublish(ctx.Err())
	}
	return nil
}
