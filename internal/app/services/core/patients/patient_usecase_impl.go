package patients

import (
	"context"
	"sync"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			AppointmentRepository: appointmentRepository,
			Log:                   logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) Dashboard(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Debug("patientUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointmentModels, err := uc.AppointmentRepository.FindByPatientID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("patientUsecase.Dashboard error finding appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return utils.ToAppointmentResponses(appointmentModels), nil
}
