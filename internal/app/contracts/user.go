package contracts

import (
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/dto/responses"
	"context"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindActiveByRole(ctx context.Context, role string) ([]models.User, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*models.User, error)
	EnsureBootstrapAdmin(ctx context.Context) error
}
