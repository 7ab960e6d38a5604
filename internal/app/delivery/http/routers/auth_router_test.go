package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/controllers"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Register), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthUsecase) CurrentUser(ctx context.Context, session *models.Session) (*responses.CurrentUser, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CurrentUser), args.Error(1)
}

func (m *MockAuthUsecase) ResolveRole(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
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

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			Timezone:            "UTC",
			LoginRatePerMinute:  60,
			LoginBlockInMinutes: 1,
		},
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
}

func setupAuthRouter(t *testing.T) (*chi.Mux, *MockAuthUsecase, *MockSessionService) {
	t.Helper()
	logger := zap.NewNop()
	mockAuthUsecase := new(MockAuthUsecase)
	mockSessionService := new(MockSessionService)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		AuthUsecase:    mockAuthUsecase,
		SessionService: mockSessionService,
		InternalConfig: testInternalConfig(),
	}
	authController := controllers.NewAuthController(logger, mockAuthUsecase)

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, authController)
	return router, mockAuthUsecase, mockSessionService
}

func TestAuthRoutes(t *testing.T) {
	t.Run("POST /register returns 201 on success", func(t *testing.T) {
		router, mockAuthUsecase, _ := setupAuthRouter(t)
		mockAuthUsecase.On("Register", mock.Anything, mock.AnythingOfType("*requests.Register")).
			Return(&responses.Register{UserID: "u1", Role: constvars.RolePatient}, nil)

		body := []byte(`{"name":"Ravi Kumar","email":"ravi@example.com","password":"supersecret","role":"patient"}`)
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "expected 201 for a valid registration")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("POST /register rejects an invalid role", func(t *testing.T) {
		router, mockAuthUsecase, _ := setupAuthRouter(t)

		body := []byte(`{"name":"Ravi Kumar","email":"ravi@example.com","password":"supersecret","role":"superuser"}`)
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "expected 400 for an unknown role")
		mockAuthUsecase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("POST /login returns the token envelope", func(t *testing.T) {
		router, mockAuthUsecase, _ := setupAuthRouter(t)
		mockAuthUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.Login")).
			Return(&responses.Login{
				Token: "jwt-token",
				User:  responses.CurrentUser{ID: "u1", Role: constvars.RolePatient},
			}, nil)

		body := []byte(`{"email":"ravi@example.com","password":"supersecret"}`)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "jwt-token")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("GET /me requires a bearer token", func(t *testing.T) {
		router, _, _ := setupAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("GET /me resolves the session through Redis and the stored role", func(t *testing.T) {
		router, mockAuthUsecase, mockSessionService := setupAuthRouter(t)

		token, err := utils.GenerateSessionJWT("sess-1", "test-secret", 1)
		assert.NoError(t, err)

		mockSessionService.On("GetSession", mock.Anything, "sess-1").
			Return(&models.Session{SessionID: "sess-1", UserID: "u1", Role: constvars.RolePatient}, nil)
		mockAuthUsecase.On("ResolveRole", mock.Anything, "u1").Return(constvars.RolePatient, nil)
		mockAuthUsecase.On("CurrentUser", mock.Anything, mock.AnythingOfType("*models.Session")).
			Return(&responses.CurrentUser{ID: "u1", Name: "Ravi Kumar", Role: constvars.RolePatient}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockSessionService.AssertExpectations(t)
		mockAuthUsecase.AssertExpectations(t)
	})
}
