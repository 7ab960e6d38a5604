package contracts

import (
	"carebook-service/internal/app/models"
	"context"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
