package contracts

import (
	"carebook-service/internal/app/models"
	"context"
)

// EventPublisher emits appointment lifecycle facts to the message queue.
// Consumers (reporting, mailers) live outside this service.
type EventPublisher interface {
	AppointmentCreated(ctx context.Context, appointment *models.Appointment) error
	AppointmentCancelled(ctx context.Context, appointment *models.Appointment) error
}
