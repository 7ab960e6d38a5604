package session

import (
	"context"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return svc.RedisRepository.Set(ctx, session.SessionID, session, ttl)
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionID)
}
