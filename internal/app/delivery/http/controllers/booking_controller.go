package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

// Calendar defaults to the current month when year or month is absent.
func (ctrl *BookingController) Calendar(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)

	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if rawYear := r.URL.Query().Get(constvars.QueryParamYear); rawYear != "" {
		parsed, err := strconv.Atoi(rawYear)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
		year = parsed
	}
	if rawMonth := r.URL.Query().Get(constvars.QueryParamMonth); rawMonth != "" {
		parsed, err := strconv.Atoi(rawMonth)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
		month = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.Calendar(ctx, doctorID, year, month)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorCalendarSuccess, response)
}

func (ctrl *BookingController) Slots(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	date := r.URL.Query().Get(constvars.QueryParamDate)
	if date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.Slots(ctx, doctorID, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorSlotsSuccess, response)
}

func (ctrl *BookingController) Book(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.BookAppointment)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.DoctorID = chi.URLParam(r, constvars.URLParamDoctorID)

	// Sanitize request
	utils.SanitizeBookAppointmentRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.Book(ctx, sessionData, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentBookedSuccess, response)
}

func (ctrl *BookingController) Cancel(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.BookingUsecase.Cancel(ctx, sessionData, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelSuccess, nil)
}
