package contracts

import (
	"carebook-service/internal/app/models"
	"context"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByRole(ctx context.Context, role string) ([]models.User, error)
	SearchByRole(ctx context.Context, role, term string) ([]models.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, userID string) error
}
