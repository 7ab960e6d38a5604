package contracts

import (
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, session *models.Session) (*responses.CurrentUser, error)
	// ResolveRole re-reads the stored role for a session, defaulting to
	// patient when the user record is absent. Route guards call this on
	// every request so a stale session snapshot never widens access.
	ResolveRole(ctx context.Context, userID string) (string, error)
}
