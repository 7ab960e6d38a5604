package auth

import (
	"context"
	"testing"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) SearchByRole(ctx context.Context, role, term string) ([]models.User, error) {
	args := m.Called(ctx, role, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockDoctorProfileRepository struct {
	mock.Mock
}

func (m *MockDoctorProfileRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorProfileRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorProfileRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorProfileRepository) FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error) {
	args := m.Called(ctx, specialty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorProfileRepository) Search(ctx context.Context, term string) ([]models.Doctor, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorProfileRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorProfileRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorProfileRepository) UpdateAvailability(ctx context.Context, doctorID string, availability []models.AvailabilityDay) error {
	args := m.Called(ctx, doctorID, availability)
	return args.Error(0)
}

func (m *MockDoctorProfileRepository) DeleteByID(ctx context.Context, doctorID string) error {
	args := m.Called(ctx, doctorID)
	return args.Error(0)
}

func (m *MockDoctorProfileRepository) WatchByID(ctx context.Context, doctorID string) (<-chan *models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan *models.Doctor), args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) DeleteByID(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) FindByID(ctx context.Context, adminID string) (*models.Admin, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	args := m.Called(ctx, session, ttl)
	return args.Error(0)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type authUsecaseMocks struct {
	userRepo    *MockUserRepository
	doctorRepo  *MockDoctorProfileRepository
	patientRepo *MockPatientRepository
	adminRepo   *MockAdminRepository
	sessions    *MockSessionService
}

func newTestAuthUsecase() (*authUsecase, *authUsecaseMocks) {
	mocks := &authUsecaseMocks{
		userRepo:    new(MockUserRepository),
		doctorRepo:  new(MockDoctorProfileRepository),
		patientRepo: new(MockPatientRepository),
		adminRepo:   new(MockAdminRepository),
		sessions:    new(MockSessionService),
	}
	uc := &authUsecase{
		UserRepository:    mocks.userRepo,
		DoctorRepository:  mocks.doctorRepo,
		PatientRepository: mocks.patientRepo,
		AdminRepository:   mocks.adminRepo,
		SessionService:    mocks.sessions,
		InternalConfig: &config.InternalConfig{
			JWT:     config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
			Booking: config.Booking{SessionExpiredTimeInHours: 1},
		},
		Log: zap.NewNop(),
	}
	return uc, mocks
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("duplicate email is rejected before any write", func(t *testing.T) {
		uc, mocks := newTestAuthUsecase()
		mocks.userRepo.On("FindByEmail", mock.Anything, "taken@example.com").
			Return(&models.User{ID: "u1", Email: "taken@example.com"}, nil)

		_, err := uc.Register(context.Background(), &requests.Register{
			Name:     "Ravi Kumar",
			Email:    "taken@example.com",
			Password: "supersecret",
			Role:     constvars.RolePatient,
		})
		assertAuthErrorStatus(t, err, constvars.StatusBadRequest)
		mocks.userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("patient registration creates user and patient profile", func(t *testing.T) {
		uc, mocks := newTestAuthUsecase()
		mocks.userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		mocks.userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return("u-new", nil)
		mocks.patientRepo.On("CreatePatient", mock.Anything, mock.MatchedBy(func(p *models.Patient) bool {
			return p.ID == "u-new" && p.Email == "new@example.com"
		})).Return(nil)

		response, err := uc.Register(context.Background(), &requests.Register{
			Name:     "Ravi Kumar",
			Email:    "new@example.com",
			Password: "supersecret",
			Role:     constvars.RolePatient,
		})
		assert.NoError(t, err)
		assert.Equal(t, "u-new", response.UserID)
		assert.Equal(t, constvars.RolePatient, response.Role)
		mocks.patientRepo.AssertExpectations(t)
	})

	t.Run("doctor registration creates a profile with empty availability", func(t *testing.T) {
		uc, mocks := newTestAuthUsecase()
		mocks.userRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(nil, nil)
		mocks.userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return("u-doc", nil)
		mocks.doctorRepo.On("CreateDoctor", mock.Anything, mock.MatchedBy(func(d *models.Doctor) bool {
			return d.ID == "u-doc" && d.Availability != nil && len(d.Availability) == 0
		})).Return(nil)

		_, err := uc.Register(context.Background(), &requests.Register{
			Name:     "Dr. Asha Rao",
			Email:    "doc@example.com",
			Password: "supersecret",
			Role:     constvars.RoleDoctor,
		})
		assert.NoError(t, err)
		mocks.doctorRepo.AssertExpectations(t)
		mocks.patientRepo.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	hashed, err := utils.HashPassword("supersecret")
	if err != nil {
		t.Fatalf("hashing fixture password: %v", err)
	}
	storedUser := func() *models.User {
		return &models.User{
			ID:       "u1",
			Name:     "Ravi Kumar",
			Email:    "ravi@example.com",
			Password: hashed,
			Role:     constvars.RolePatient,
		}
	}

	t.Run("unknown email", func(t *testing.T) {
		uc, mocks := newTestAuthUsecase()
		mocks.userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		_, err := uc.Login(context.Background(), &requests.Login{
			Email:    "ghost@example.com",
			Password: "supersecret",
		})
		assertAuthErrorStatus(t, err, constvars.StatusUnauthorized)
		mocks.sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, mocks := newTestAuthUsecase()
		mocks.userRepo.On("FindByEmail", mock.Anything, "ravi@example.com").Return(storedUser(), nil)

		_, err := uc.Login(context.Background(), &requests.Login{
			Email:    "ravi@example.com",
			Password: "wrongwrong",
		})
		assertAuthErrorStatus(t, err, constvars.StatusUnauthorized)
		mocks.sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("role mismatch is rejected before a session exists", func(t *testing.T) {
		uc, mocks := newTestAuthUsecase()
		mocks.userRepo.On("FindByEmail", mock.Anything, "ravi@example.com").Return(storedUser(), nil)

		_, err := uc.Login(context.Background(), &requests.Login{
			Email:    "ravi@example.com",
			Password: "supersecret",
			Role:     constvars.RoleAdmin,
		})
		assertAuthErrorStatus(t, err, constvars.StatusForbidden)
		mocks.sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("success creates a session and returns a token", func(t *testing.T) {
		uc, mocks := newTestAuthUsecase()
		mocks.userRepo.On("FindByEmail", mock.Anything, "ravi@example.com").Return(storedUser(), nil)
		mocks.sessions.On("CreateSession", mock.Anything, mock.MatchedBy(func(s *models.Session) bool {
			return s.UserID == "u1" && s.SessionID != ""
		}), time.Hour).Return(nil)

		response, err := uc.Login(context.Background(), &requests.Login{
			Email:    "ravi@example.com",
			Password: "supersecret",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, "u1", response.User.ID)
		assert.Equal(t, constvars.RolePatient, response.User.Role)

		sessionID, err := utils.ParseSessionJWT(response.Token, "test-secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, sessionID)
		mocks.sessions.AssertExpectations(t)
	})
}

func TestAuthUsecase_ResolveRole(t *testing.T) {
	t.Run("defaults to patient when the user record is gone", func(t *testing.T) {
		uc, mocks := newTestAuthUsecase()
		mocks.userRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

		role, err := uc.ResolveRole(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Equal(t, constvars.RolePatient, role)
	})

	t.Run("returns the stored role", func(t *testing.T) {
		uc, mocks := newTestAuthUsecase()
		mocks.userRepo.On("FindByID", mock.Anything, "u1").
			Return(&models.User{ID: "u1", Role: constvars.RoleDoctor}, nil)

		role, err := uc.ResolveRole(context.Background(), "u1")
		assert.NoError(t, err)
		assert.Equal(t, constvars.RoleDoctor, role)
	})
}

func assertAuthErrorStatus(t *testing.T, err error, statusCode int) {
	t.Helper()
	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	if assert.True(t, ok, "expected *exceptions.CustomError, got %T", err) {
		assert.Equal(t, statusCode, customErr.StatusCode)
	}
}
