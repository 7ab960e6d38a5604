package controllers

import (
	"net/http"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"
)

func sessionFromRequest(r *http.Request) (*models.Session, error) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || sessionData == nil {
		return nil, exceptions.ErrMissingSessionData(nil)
	}
	return sessionData, nil
}
