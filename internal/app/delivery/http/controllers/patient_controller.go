package controllers

import (
	"context"
	"net/http"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) Dashboard(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.Dashboard(ctx, sessionData)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientDashboardSuccess, response)
}
