package middlewares

import (
	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}
