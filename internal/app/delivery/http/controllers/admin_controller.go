package controllers

import (
	"context"
	"net/http"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminController struct {
	Log          *zap.Logger
	AdminUsecase contracts.AdminUsecase
}

func NewAdminController(logger *zap.Logger, adminUsecase contracts.AdminUsecase) *AdminController {
	return &AdminController{
		Log:          logger,
		AdminUsecase: adminUsecase,
	}
}

func (ctrl *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AdminUsecase.Dashboard(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AdminDashboardSuccess, response)
}

func (ctrl *AdminController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get(constvars.QueryParamSearch)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AdminUsecase.ListDoctors(ctx, search)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AdminListSuccess, response)
}

func (ctrl *AdminController) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AdminUsecase.DeleteDoctor(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AdminDeleteSuccess, nil)
}

func (ctrl *AdminController) ListPatients(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get(constvars.QueryParamSearch)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AdminUsecase.ListPatients(ctx, search)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AdminListSuccess, response)
}

func (ctrl *AdminController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AdminUsecase.DeletePatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AdminDeleteSuccess, nil)
}

func (ctrl *AdminController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get(constvars.QueryParamSearch)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AdminUsecase.ListAppointments(ctx, search)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AdminListSuccess, response)
}

func (ctrl *AdminController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AdminUsecase.DeleteAppointment(ctx, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AdminDeleteSuccess, nil)
}
