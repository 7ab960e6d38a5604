package appointments

import (
	"context"
	"testing"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error) {
	args := m.Called(ctx, specialty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Search(ctx context.Context, term string) ([]models.Doctor, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) UpdateAvailability(ctx context.Context, doctorID string, availability []models.AvailabilityDay) error {
	args := m.Called(ctx, doctorID, availability)
	return args.Error(0)
}

func (m *MockDoctorRepository) DeleteByID(ctx context.Context, doctorID string) error {
	args := m.Called(ctx, doctorID)
	return args.Error(0)
}

func (m *MockDoctorRepository) WatchByID(ctx context.Context, doctorID string) (<-chan *models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan *models.Doctor), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) AppointmentCreated(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockEventPublisher) AppointmentCancelled(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func newTestBookingUsecase(doctorRepo contracts.DoctorRepository, appointmentRepo contracts.AppointmentRepository, publisher contracts.EventPublisher) *bookingUsecase {
	return &bookingUsecase{
		DoctorRepository:      doctorRepo,
		AppointmentRepository: appointmentRepo,
		EventPublisher:        publisher,
		InternalConfig: &config.InternalConfig{
			App: config.App{Timezone: "UTC"},
		},
		Log: zap.NewNop(),
	}
}

func testDoctor() *models.Doctor {
	return &models.Doctor{
		ID:              "doc-1",
		Name:            "Dr. Asha Rao",
		Specialty:       "Cardiology",
		ConsultationFee: 150,
		Availability: []models.AvailabilityDay{
			{Date: "2100-01-15", Slots: []string{"09:00", "10:00"}},
			{Date: "2000-01-10", Slots: []string{"09:00"}},
			{Date: "2100-01-20", Slots: []string{}},
		},
	}
}

func TestBookingUsecase_Calendar(t *testing.T) {
	t.Run("leading blanks pad to the first weekday", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(testDoctor(), nil)
		uc := newTestBookingUsecase(doctorRepo, new(MockAppointmentRepository), new(MockEventPublisher))

		// January 1st 2100 is a Friday, so the Sunday-first grid starts
		// with five blank cells.
		calendar, err := uc.Calendar(context.Background(), "doc-1", 2100, 1)
		assert.NoError(t, err)
		assert.Equal(t, "January", calendar.MonthName)
		assert.Len(t, calendar.Cells, 5+31)
		for i := 0; i < 5; i++ {
			assert.True(t, calendar.Cells[i].Blank)
		}
		assert.False(t, calendar.Cells[5].Blank)
		assert.Equal(t, 1, calendar.Cells[5].Day)
		assert.Equal(t, "2100-01-01", calendar.Cells[5].Date)
	})

	t.Run("selectable only when offered and not past", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(testDoctor(), nil)
		uc := newTestBookingUsecase(doctorRepo, new(MockAppointmentRepository), new(MockEventPublisher))

		calendar, err := uc.Calendar(context.Background(), "doc-1", 2100, 1)
		assert.NoError(t, err)

		selectable := make(map[string]bool)
		for _, cell := range calendar.Cells {
			if !cell.Blank {
				selectable[cell.Date] = cell.Selectable
			}
		}
		assert.True(t, selectable["2100-01-15"], "offered future date must be selectable")
		assert.False(t, selectable["2100-01-16"], "date without offered slots must not be selectable")
		assert.False(t, selectable["2100-01-20"], "date with empty slot list must not be selectable")
	})

	t.Run("offered past dates are not selectable", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(testDoctor(), nil)
		uc := newTestBookingUsecase(doctorRepo, new(MockAppointmentRepository), new(MockEventPublisher))

		calendar, err := uc.Calendar(context.Background(), "doc-1", 2000, 1)
		assert.NoError(t, err)
		for _, cell := range calendar.Cells {
			assert.False(t, cell.Selectable, "cell %s must not be selectable", cell.Date)
		}
	})

	t.Run("invalid month is rejected", func(t *testing.T) {
		uc := newTestBookingUsecase(new(MockDoctorRepository), new(MockAppointmentRepository), new(MockEventPublisher))

		_, err := uc.Calendar(context.Background(), "doc-1", 2100, 13)
		assertCustomErrorStatus(t, err, constvars.StatusBadRequest)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		doctorRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)
		uc := newTestBookingUsecase(doctorRepo, new(MockAppointmentRepository), new(MockEventPublisher))

		_, err := uc.Calendar(context.Background(), "ghost", 2100, 1)
		assertCustomErrorStatus(t, err, constvars.StatusNotFound)
	})
}

func TestBookingUsecase_Slots(t *testing.T) {
	doctorRepo := new(MockDoctorRepository)
	doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(testDoctor(), nil)
	uc := newTestBookingUsecase(doctorRepo, new(MockAppointmentRepository), new(MockEventPublisher))

	t.Run("offered date returns its slots", func(t *testing.T) {
		daySlots, err := uc.Slots(context.Background(), "doc-1", "2100-01-15")
		assert.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00"}, daySlots.Slots)
	})

	t.Run("unoffered date returns an empty list", func(t *testing.T) {
		daySlots, err := uc.Slots(context.Background(), "doc-1", "2100-01-16")
		assert.NoError(t, err)
		assert.Empty(t, daySlots.Slots)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, err := uc.Slots(context.Background(), "doc-1", "15-01-2100")
		assertCustomErrorStatus(t, err, constvars.StatusBadRequest)
	})
}

func TestBookingUsecase_Book(t *testing.T) {
	patientSession := &models.Session{
		SessionID: "sess-1",
		UserID:    "patient-1",
		Name:      "Ravi Kumar",
		Role:      constvars.RolePatient,
	}

	t.Run("writes one scheduled appointment at the current fee", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(testDoctor(), nil)

		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return("appt-1", nil)

		publisher := new(MockEventPublisher)
		publisher.On("AppointmentCreated", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

		uc := newTestBookingUsecase(doctorRepo, appointmentRepo, publisher)

		response, err := uc.Book(context.Background(), patientSession, &requests.BookAppointment{
			DoctorID: "doc-1",
			Date:     "2100-01-15",
			Time:     "09:00",
		})
		assert.NoError(t, err)
		assert.Equal(t, "appt-1", response.ID)
		assert.Equal(t, constvars.AppointmentStatusScheduled, response.Status)
		assert.Equal(t, float64(150), response.Fee)
		assert.Equal(t, "Dr. Asha Rao", response.DoctorName)
		assert.Equal(t, "Ravi Kumar", response.PatientName)

		appointmentRepo.AssertNumberOfCalls(t, "CreateAppointment", 1)
		publisher.AssertExpectations(t)
	})

	t.Run("missing date or time is rejected before any write", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		uc := newTestBookingUsecase(new(MockDoctorRepository), appointmentRepo, new(MockEventPublisher))

		_, err := uc.Book(context.Background(), patientSession, &requests.BookAppointment{DoctorID: "doc-1"})
		assertCustomErrorStatus(t, err, constvars.StatusBadRequest)
		appointmentRepo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("slot outside the offered list is rejected", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(testDoctor(), nil)
		appointmentRepo := new(MockAppointmentRepository)
		uc := newTestBookingUsecase(doctorRepo, appointmentRepo, new(MockEventPublisher))

		_, err := uc.Book(context.Background(), patientSession, &requests.BookAppointment{
			DoctorID: "doc-1",
			Date:     "2100-01-15",
			Time:     "11:00",
		})
		assertCustomErrorStatus(t, err, constvars.StatusBadRequest)
		appointmentRepo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("unauthenticated booking is rejected", func(t *testing.T) {
		uc := newTestBookingUsecase(new(MockDoctorRepository), new(MockAppointmentRepository), new(MockEventPublisher))

		_, err := uc.Book(context.Background(), nil, &requests.BookAppointment{
			DoctorID: "doc-1",
			Date:     "2100-01-15",
			Time:     "09:00",
		})
		assertCustomErrorStatus(t, err, constvars.StatusUnauthorized)
	})

	t.Run("booking never mutates availability and has no uniqueness guard", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(testDoctor(), nil)

		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return("appt-1", nil).Once()
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return("appt-2", nil).Once()

		publisher := new(MockEventPublisher)
		publisher.On("AppointmentCreated", mock.Anything, mock.Anything).Return(nil)

		uc := newTestBookingUsecase(doctorRepo, appointmentRepo, publisher)

		request := &requests.BookAppointment{DoctorID: "doc-1", Date: "2100-01-15", Time: "09:00"}
		first, err := uc.Book(context.Background(), patientSession, request)
		assert.NoError(t, err)
		second, err := uc.Book(context.Background(), patientSession, request)
		assert.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		doctorRepo.AssertNotCalled(t, "UpdateAvailability", mock.Anything, mock.Anything, mock.Anything)
		doctorRepo.AssertNotCalled(t, "UpdateDoctor", mock.Anything, mock.Anything)
	})
}

func TestBookingUsecase_Cancel(t *testing.T) {
	storedAppointment := func() *models.Appointment {
		return &models.Appointment{
			ID:        "appt-1",
			DoctorID:  "doc-1",
			PatientID: "patient-1",
			Date:      "2100-01-15",
			Time:      "09:00",
			Status:    constvars.AppointmentStatusScheduled,
		}
	}

	t.Run("owning patient can cancel", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(storedAppointment(), nil)
		appointmentRepo.On("DeleteByID", mock.Anything, "appt-1").Return(nil)

		publisher := new(MockEventPublisher)
		publisher.On("AppointmentCancelled", mock.Anything, mock.Anything).Return(nil)

		uc := newTestBookingUsecase(new(MockDoctorRepository), appointmentRepo, publisher)

		err := uc.Cancel(context.Background(), &models.Session{UserID: "patient-1", Role: constvars.RolePatient}, "appt-1")
		assert.NoError(t, err)
		appointmentRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("admin can cancel", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(storedAppointment(), nil)
		appointmentRepo.On("DeleteByID", mock.Anything, "appt-1").Return(nil)

		publisher := new(MockEventPublisher)
		publisher.On("AppointmentCancelled", mock.Anything, mock.Anything).Return(nil)

		uc := newTestBookingUsecase(new(MockDoctorRepository), appointmentRepo, publisher)

		err := uc.Cancel(context.Background(), &models.Session{UserID: "someone-else", Role: constvars.RoleAdmin}, "appt-1")
		assert.NoError(t, err)
	})

	t.Run("a stranger cannot cancel", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(storedAppointment(), nil)

		uc := newTestBookingUsecase(new(MockDoctorRepository), appointmentRepo, new(MockEventPublisher))

		err := uc.Cancel(context.Background(), &models.Session{UserID: "patient-2", Role: constvars.RolePatient}, "appt-1")
		assertCustomErrorStatus(t, err, constvars.StatusUnauthorized)
		appointmentRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

		uc := newTestBookingUsecase(new(MockDoctorRepository), appointmentRepo, new(MockEventPublisher))

		err := uc.Cancel(context.Background(), &models.Session{UserID: "patient-1"}, "ghost")
		assertCustomErrorStatus(t, err, constvars.StatusNotFound)
	})
}

func assertCustomErrorStatus(t *testing.T, err error, statusCode int) {
	t.Helper()
	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	if assert.True(t, ok, "expected *exceptions.CustomError, got %T", err) {
		assert.Equal(t, statusCode, customErr.StatusCode)
	}
}
