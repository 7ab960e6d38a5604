package contracts

import (
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/responses"
	"context"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) error
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	DeleteByID(ctx context.Context, patientID string) error
}

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	FindByID(ctx context.Context, adminID string) (*models.Admin, error)
}

type PatientUsecase interface {
	// Dashboard lists the patient's own appointments, newest first.
	Dashboard(ctx context.Context, session *models.Session) ([]responses.Appointment, error)
}
