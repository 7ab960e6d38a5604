package doctors

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	MinioStorage          contracts.Storage
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository:      doctorRepository,
			AppointmentRepository: appointmentRepository,
			MinioStorage:          minioStorage,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, specialty, search string) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Debug("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("specialty", specialty),
		zap.String("search", search),
	)

	var (
		doctorModels []models.Doctor
		err          error
	)
	switch {
	case search != "":
		doctorModels, err = uc.DoctorRepository.Search(ctx, search)
	case specialty != "":
		doctorModels, err = uc.DoctorRepository.FindBySpecialty(ctx, specialty)
	default:
		doctorModels, err = uc.DoctorRepository.FindAll(ctx)
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

func (uc *doctorUsecase) ListSpecialties(ctx context.Context) ([]string, error) {
	doctorModels, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	specialties := make([]string, 0)
	for _, doctor := range doctorModels {
		if doctor.Specialty == "" || seen[doctor.Specialty] {
			continue
		}
		seen[doctor.Specialty] = true
		specialties = append(specialties, doctor.Specialty)
	}
	sort.Strings(specialties)
	return specialties, nil
}

func (uc *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	response := utils.ToDoctorDetailResponse(doctor)
	return &response, nil
}

func (uc *doctorUsecase) Onboard(ctx context.Context, session *models.Session, request *requests.OnboardDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.Onboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	doctor.Specialty = request.Specialty
	doctor.Qualification = request.Qualification
	doctor.ConsultationFee = request.ConsultationFee
	doctor.Bio = request.Bio
	if request.ProfileImage != "" {
		doctor.ProfileImage = request.ProfileImage
	}
	doctor.UpdatedAt = time.Now().UTC()

	err = uc.DoctorRepository.UpdateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.Onboard error updating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := utils.ToDoctorDetailResponse(doctor)
	return &response, nil
}

func (uc *doctorUsecase) UpdateProfile(ctx context.Context, session *models.Session, doctorID string, request *requests.UpdateDoctorProfile) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", doctorID),
	)

	if session.UserID != doctorID && session.Role != constvars.RoleAdmin {
		return nil, exceptions.ErrNotProfileOwner(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	// Last-load baseline check: an edit based on a copy older than the
	// stored document is rejected instead of overwriting the newer write.
	if request.EditBaseline != "" {
		baseline, err := time.Parse(time.RFC3339, request.EditBaseline)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		if baseline.Before(doctor.UpdatedAt.Truncate(time.Second)) {
			return nil, exceptions.ErrProfileEditConflict(nil)
		}
	}

	doctor.Name = request.Name
	doctor.Specialty = request.Specialty
	doctor.Qualification = request.Qualification
	doctor.ConsultationFee = request.ConsultationFee
	doctor.Bio = request.Bio
	if request.ProfileImage != "" {
		doctor.ProfileImage = request.ProfileImage
	}
	doctor.UpdatedAt = time.Now().UTC()

	err = uc.DoctorRepository.UpdateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.UpdateProfile error updating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := utils.ToDoctorDetailResponse(doctor)
	return &response, nil
}

func (uc *doctorUsecase) UpdateAvailability(ctx context.Context, session *models.Session, doctorID string, request *requests.UpdateAvailability) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", doctorID),
	)

	if session.UserID != doctorID && session.Role != constvars.RoleAdmin {
		return exceptions.ErrNotProfileOwner(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	availability := make([]models.AvailabilityDay, 0, len(request.Availability))
	for _, day := range request.Availability {
		availability = append(availability, models.AvailabilityDay{
			Date:  day.Date,
			Slots: day.Slots,
		})
	}

	return uc.DoctorRepository.UpdateAvailability(ctx, doctorID, availability)
}

func (uc *doctorUsecase) UploadProfileImage(ctx context.Context, session *models.Session, doctorID string, file io.Reader, fileHeader *multipart.FileHeader) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UploadProfileImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", doctorID),
	)

	if session.UserID != doctorID && session.Role != constvars.RoleAdmin {
		return "", exceptions.ErrNotProfileOwner(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return "", err
	}
	if doctor == nil {
		return "", exceptions.ErrDoctorNotFound(nil)
	}

	err = utils.ValidateImage(fileHeader, int64(uc.InternalConfig.Storage.ProfilePictureMaxUploadSizeInMB))
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	objectName := utils.GenerateFileName("profile", doctorID, filepath.Ext(fileHeader.Filename))
	_, err = uc.MinioStorage.UploadFile(ctx, file, fileHeader, uc.InternalConfig.Storage.BucketName, objectName)
	if err != nil {
		uc.Log.Error("doctorUsecase.UploadProfileImage error uploading file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	doctor.ProfileImage = objectName
	doctor.UpdatedAt = time.Now().UTC()
	err = uc.DoctorRepository.UpdateDoctor(ctx, doctor)
	if err != nil {
		return "", err
	}
	return objectName, nil
}

func (uc *doctorUsecase) Dashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Debug("doctorUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	appointmentModels, err := uc.AppointmentRepository.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	return &responses.DoctorDashboard{
		Doctor:       utils.ToDoctorDetailResponse(doctor),
		Appointments: utils.ToAppointmentResponses(appointmentModels),
	}, nil
}

func (uc *doctorUsecase) Watch(ctx context.Context, doctorID string) (<-chan *responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	modelStream, err := uc.DoctorRepository.WatchByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	out := make(chan *responses.Doctor)
	go func() {
		defer close(out)
		for model := range modelStream {
			response := utils.ToDoctorDetailResponse(model)
			select {
			case out <- &response:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
