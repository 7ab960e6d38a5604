package contracts

import (
	"carebook-service/internal/pkg/dto/responses"
	"context"
)

// AdminUsecase backs the back-office screens: dashboard counts plus the
// list/search/delete operations over doctors, patients and appointments.
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*responses.AdminDashboard, error)
	ListDoctors(ctx context.Context, search string) ([]responses.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
	ListPatients(ctx context.Context, search string) ([]responses.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	ListAppointments(ctx context.Context, search string) ([]responses.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
}
