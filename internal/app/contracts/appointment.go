package contracts

import (
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	Count(ctx context.Context) (int64, error)
	DeleteByID(ctx context.Context, appointmentID string) error
}

type BookingUsecase interface {
	// Calendar renders the month grid for a doctor: all dates of the month
	// with leading blanks, selectable iff offered and not past.
	Calendar(ctx context.Context, doctorID string, year, month int) (*responses.Calendar, error)
	// Slots returns the offered time-slot labels for one date.
	Slots(ctx context.Context, doctorID, date string) (*responses.DaySlots, error)
	// Book writes exactly one scheduled appointment at the doctor's
	// current fee; it never mutates the doctor's availability.
	Book(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error)
	// Cancel hard-deletes the appointment. Allowed to the owning patient,
	// the appointment's doctor, or an admin.
	Cancel(ctx context.Context, session *models.Session, appointmentID string) error
}
