package appointments

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

// calendarWeekdays is the Sunday-first header row of the booking grid.
// The leading blank count below depends on this ordering.
var calendarWeekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type bookingUsecase struct {
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			DoctorRepository:      doctorRepository,
			AppointmentRepository: appointmentRepository,
			EventPublisher:        eventPublisher,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return bookingUsecaseInstance
}

// today returns the current date string in the configured timezone. Date
// comparisons are plain string compares, which is safe for the
// "YYYY-MM-DD" layout.
func (uc *bookingUsecase) today() string {
	loc, err := time.LoadLocation(uc.InternalConfig.App.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Format(constvars.DateLayout)
}

func (uc *bookingUsecase) Calendar(ctx context.Context, doctorID string, year, month int) (*responses.Calendar, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Debug("bookingUsecase.Calendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", doctorID),
		zap.Int("year", year),
		zap.Int("month", month),
	)

	if month < 1 || month > 12 || year < 1 {
		return nil, exceptions.ErrDateNotSelectable(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	offered := make(map[string]bool, len(doctor.Availability))
	for _, day := range doctor.Availability {
		if len(day.Slots) > 0 {
			offered[day.Date] = true
		}
	}

	today := uc.today()
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]responses.CalendarCell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, responses.CalendarCell{Blank: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := first.AddDate(0, 0, day-1).Format(constvars.DateLayout)
		cells = append(cells, responses.CalendarCell{
			Date:       date,
			Day:        day,
			Selectable: offered[date] && date >= today,
		})
	}

	return &responses.Calendar{
		Year:      year,
		Month:     month,
		MonthName: time.Month(month).String(),
		Weekdays:  calendarWeekdays,
		Cells:     cells,
	}, nil
}

func (uc *bookingUsecase) Slots(ctx context.Context, doctorID, date string) (*responses.DaySlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Debug("bookingUsecase.Slots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", doctorID),
		zap.String("date", date),
	)

	if err := utils.ValidateCalendarDate(date); err != nil {
		return nil, exceptions.ErrDateNotSelectable(err)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	slots := doctor.SlotsFor(date)
	if slots == nil {
		slots = []string{}
	}
	return &responses.DaySlots{Date: date, Slots: slots}, nil
}

func (uc *bookingUsecase) Book(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", request.DoctorID),
	)

	if session == nil {
		return nil, exceptions.ErrMissingSessionData(nil)
	}
	if request.Date == "" || request.Time == "" {
		return nil, exceptions.ErrDateAndTimeRequired(nil)
	}
	if err := utils.ValidateCalendarDate(request.Date); err != nil {
		return nil, exceptions.ErrDateNotSelectable(err)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		uc.Log.Error("bookingUsecase.Book error finding doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	offeredSlots := doctor.SlotsFor(request.Date)
	if offeredSlots == nil || request.Date < uc.today() {
		return nil, exceptions.ErrDateNotSelectable(nil)
	}

	slotOffered := false
	for _, slot := range offeredSlots {
		if slot == request.Time {
			slotOffered = true
			break
		}
	}
	if !slotOffered {
		return nil, exceptions.ErrSlotNotOffered(nil)
	}

	// The appointment snapshots the doctor's current fee and both display
	// names. The doctor's availability is never written here.
	appointmentModel := &models.Appointment{
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		DoctorSpecialty: doctor.Specialty,
		PatientID:       session.UserID,
		PatientName:     session.Name,
		Date:            request.Date,
		Time:            request.Time,
		Status:          constvars.AppointmentStatusScheduled,
		Fee:             doctor.ConsultationFee,
		CreatedAt:       time.Now().UTC(),
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointmentModel)
	if err != nil {
		uc.Log.Error("bookingUsecase.Book error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointmentModel.ID = appointmentID

	// The booking is already persisted; a publish failure must not turn
	// an accepted appointment into a client-facing error.
	if err := uc.EventPublisher.AppointmentCreated(ctx, appointmentModel); err != nil {
		uc.Log.Error("bookingUsecase.Book error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	utils.LogBusinessEvent(uc.Log, constvars.EventAppointmentCreated, requestID,
		zap.String("appointment_id", appointmentID),
		zap.String("doctor_id", doctor.ID),
		zap.String("patient_id", session.UserID),
		zap.String("date", request.Date),
		zap.String("time", request.Time),
	)

	appointmentResponse := utils.ToAppointmentResponse(appointmentModel)
	return &appointmentResponse, nil
}

func (uc *bookingUsecase) Cancel(ctx context.Context, session *models.Session, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
	)

	if session == nil {
		return exceptions.ErrMissingSessionData(nil)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	allowed := session.UserID == appointment.PatientID ||
		session.UserID == appointment.DoctorID ||
		session.Role == constvars.RoleAdmin
	if !allowed {
		return exceptions.ErrRoleNotAllowed(nil)
	}

	err = uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("bookingUsecase.Cancel error deleting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	if err := uc.EventPublisher.AppointmentCancelled(ctx, appointment); err != nil {
		uc.Log.Error("bookingUsecase.Cancel error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	utils.LogBusinessEvent(uc.Log, constvars.EventAppointmentCancelled, requestID,
		zap.String("appointment_id", appointmentID),
		zap.String("cancelled_by", session.UserID),
	)
	return nil
}
