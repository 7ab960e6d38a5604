package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log            *zap.Logger
	DoctorUsecase  contracts.DoctorUsecase
	InternalConfig *config.InternalConfig
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, internalConfig *config.InternalConfig) *DoctorController {
	return &DoctorController{
		Log:            logger,
		DoctorUsecase:  doctorUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get(constvars.QueryParamSpecialty)
	search := r.URL.Query().Get(constvars.QueryParamSearch)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.ListDoctors(ctx, specialty, search)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorListSuccess, response)
}

func (ctrl *DoctorController) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.ListSpecialties(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SpecialtiesSuccess, response)
}

func (ctrl *DoctorController) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.GetDoctor(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorDetailSuccess, response)
}

func (ctrl *DoctorController) Onboard(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.OnboardDoctor)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeOnboardDoctorRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.Onboard(ctx, sessionData, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorOnboardedSuccess, response)
}

func (ctrl *DoctorController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)

	request := new(requests.UpdateDoctorProfile)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateDoctorProfileRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.UpdateProfile(ctx, sessionData, doctorID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorUpdatedSuccess, response)
}

func (ctrl *DoctorController) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)

	request := new(requests.UpdateAvailability)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateAvailabilityRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.DoctorUsecase.UpdateAvailability(ctx, sessionData, doctorID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityUpdateSuccess, nil)
}

func (ctrl *DoctorController) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)

	maxUploadSize := int64(ctrl.InternalConfig.Storage.ProfilePictureMaxUploadSizeInMB) << 20
	err = r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("profile_image")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	objectName, err := ctrl.DoctorUsecase.UploadProfileImage(ctx, sessionData, doctorID, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileImageSuccess, map[string]string{
		"profile_image": objectName,
	})
}

func (ctrl *DoctorController) Dashboard(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.Dashboard(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorDashboardSuccess, response)
}

// Events streams the doctor document over server-sent events: one snapshot
// on connect, then one event per remote change until the client goes away.
func (ctrl *DoctorController) Events(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.WrapWithoutError(
			constvars.StatusInternalServerError,
			constvars.ErrClientSomethingWrongWithApplication,
			"response writer does not support streaming",
		))
		return
	}

	ctx := r.Context()

	snapshot, err := ctrl.DoctorUsecase.GetDoctor(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	stream, err := ctrl.DoctorUsecase.Watch(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEEventStream)
	w.Header().Set(constvars.HeaderCacheControl, "no-cache")
	w.Header().Set(constvars.HeaderConnection, "keep-alive")
	w.WriteHeader(constvars.StatusOK)

	writeEvent := func(payload interface{}) bool {
		body, err := json.Marshal(payload)
		if err != nil {
			return false
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", body); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}

	if !writeEvent(snapshot) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case doctor, open := <-stream:
			if !open {
				return
			}
			if !writeEvent(doctor) {
				return
			}
		}
	}
}
