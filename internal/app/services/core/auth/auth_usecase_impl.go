package auth

import (
	"context"
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

type authUsecase struct {
	UserRepository    contracts.UserRepository
	DoctorRepository  contracts.DoctorRepository
	PatientRepository contracts.PatientRepository
	AdminRepository   contracts.AdminRepository
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	adminRepository contracts.AdminRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:    userRepository,
			DoctorRepository:  doctorRepository,
			PatientRepository: patientRepository,
			AdminRepository:   adminRepository,
			SessionService:    sessionService,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Register error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.Register error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := time.Now().UTC()
	userModel := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		Role:     request.Role,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		uc.Log.Error("authUsecase.Register error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.createRoleProfile(ctx, userID, request, now)
	if err != nil {
		uc.Log.Error("authUsecase.Register error creating role profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("role", request.Role),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("role", request.Role),
	)
	return &responses.Register{
		UserID: userID,
		Role:   request.Role,
	}, nil
}

// createRoleProfile writes the role-specific document keyed by the user ID.
// Doctors start with an empty availability and fill it in during onboarding.
func (uc *authUsecase) createRoleProfile(ctx context.Context, userID string, request *requests.Register, now time.Time) error {
	timeModel := models.TimeModel{CreatedAt: now, UpdatedAt: now}

	switch request.Role {
	case constvars.RoleDoctor:
		return uc.DoctorRepository.CreateDoctor(ctx, &models.Doctor{
			ID:           userID,
			Name:         request.Name,
			Email:        request.Email,
			Availability: []models.AvailabilityDay{},
			TimeModel:    timeModel,
		})
	case constvars.RoleAdmin:
		return uc.AdminRepository.CreateAdmin(ctx, &models.Admin{
			ID:        userID,
			Name:      request.Name,
			Email:     request.Email,
			TimeModel: timeModel,
		})
	default:
		return uc.PatientRepository.CreatePatient(ctx, &models.Patient{
			ID:        userID,
			Name:      request.Name,
			Email:     request.Email,
			TimeModel: timeModel,
		})
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	// Role-checked login: the caller states which portal it is signing
	// into, and a mismatch is rejected before any session exists.
	if request.Role != "" && user.Role != request.Role {
		return nil, exceptions.ErrRoleDoesNotMatch(nil)
	}

	sessionModel := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
	}

	sessionTTL := time.Duration(uc.InternalConfig.Booking.SessionExpiredTimeInHours) * time.Hour
	err = uc.SessionService.CreateSession(ctx, sessionModel, sessionTTL)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionModel.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("role", user.Role),
	)
	return &responses.Login{
		Token: token,
		User: responses.CurrentUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.SessionService.DeleteSession(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *authUsecase) CurrentUser(ctx context.Context, session *models.Session) (*responses.CurrentUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.CurrentUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("authUsecase.CurrentUser error finding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		// The account record is gone; answer from the session snapshot
		// with the default role rather than breaking the caller.
		return &responses.CurrentUser{
			ID:    session.UserID,
			Name:  session.Name,
			Email: session.Email,
			Role:  constvars.RolePatient,
		}, nil
	}

	return &responses.CurrentUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (uc *authUsecase) ResolveRole(ctx context.Context, userID string) (string, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil || user.Role == "" {
		return constvars.RolePatient, nil
	}
	return user.Role, nil
}
