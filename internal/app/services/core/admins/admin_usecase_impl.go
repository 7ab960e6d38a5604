package admins

import (
	"context"
	"strings"
	"sync"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type adminUsecase struct {
	UserRepository        contracts.UserRepository
	DoctorRepository      contracts.DoctorRepository
	PatientRepository     contracts.PatientRepository
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

var (
	adminUsecaseInstance contracts.AdminUsecase
	onceAdminUsecase     sync.Once
)

func NewAdminUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.AdminUsecase {
	onceAdminUsecase.Do(func() {
		adminUsecaseInstance = &adminUsecase{
			UserRepository:        userRepository,
			DoctorRepository:      doctorRepository,
			PatientRepository:     patientRepository,
			AppointmentRepository: appointmentRepository,
			Log:                   logger,
		}
	})
	return adminUsecaseInstance
}

func (uc *adminUsecase) Dashboard(ctx context.Context) (*responses.AdminDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Debug("adminUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctorCount, err := uc.DoctorRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	patientCount, err := uc.UserRepository.CountByRole(ctx, constvars.RolePatient)
	if err != nil {
		return nil, err
	}
	appointmentCount, err := uc.AppointmentRepository.Count(ctx)
	if err != nil {
		return nil, err
	}

	doctors, err := uc.ListDoctors(ctx, "")
	if err != nil {
		return nil, err
	}
	patients, err := uc.ListPatients(ctx, "")
	if err != nil {
		return nil, err
	}
	appointments, err := uc.ListAppointments(ctx, "")
	if err != nil {
		return nil, err
	}

	return &responses.AdminDashboard{
		DoctorCount:      doctorCount,
		PatientCount:     patientCount,
		AppointmentCount: appointmentCount,
		Doctors:          doctors,
		Patients:         patients,
		Appointments:     appointments,
	}, nil
}

func (uc *adminUsecase) ListDoctors(ctx context.Context, search string) ([]responses.Doctor, error) {
	doctorModels, err := uc.DoctorRepository.FindAll(ctx)
	if search != "" {
		doctorModels, err = uc.DoctorRepository.Search(ctx, search)
	}
	if err != nil {
		return nil, err
	}

	result := make([]responses.Doctor, 0, len(doctorModels))
	for i := range doctorModels {
		result = append(result, utils.ToDoctorSummaryResponse(&doctorModels[i]))
	}
	return result, nil
}

func (uc *adminUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	if err := uc.DoctorRepository.DeleteByID(ctx, doctorID); err != nil {
		return err
	}
	return uc.UserRepository.DeleteByID(ctx, doctorID)
}

func (uc *adminUsecase) ListPatients(ctx context.Context, search string) ([]responses.Patient, error) {
	userModels, err := uc.UserRepository.FindByRole(ctx, constvars.RolePatient)
	if search != "" {
		userModels, err = uc.UserRepository.SearchByRole(ctx, constvars.RolePatient, search)
	}
	if err != nil {
		return nil, err
	}

	result := make([]responses.Patient, 0, len(userModels))
	for _, user := range userModels {
		result = append(result, responses.Patient{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
	}
	return result, nil
}

func (uc *adminUsecase) DeletePatient(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("patient_id", patientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotFound(nil)
	}

	if err := uc.PatientRepository.DeleteByID(ctx, patientID); err != nil {
		return err
	}
	return uc.UserRepository.DeleteByID(ctx, patientID)
}

func (uc *adminUsecase) ListAppointments(ctx context.Context, search string) ([]responses.Appointment, error) {
	appointmentModels, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := utils.ToAppointmentResponses(appointmentModels)
	if search == "" {
		return result, nil
	}

	term := strings.ToLower(search)
	filtered := make([]responses.Appointment, 0, len(result))
	for _, appointment := range result {
		if strings.Contains(strings.ToLower(appointment.DoctorName), term) ||
			strings.Contains(strings.ToLower(appointment.PatientName), term) ||
			strings.Contains(strings.ToLower(appointment.ID), term) ||
			strings.Contains(appointment.Date, term) {
			filtered = append(filtered, appointment)
		}
	}
	return filtered, nil
}

func (uc *adminUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	return uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
}
