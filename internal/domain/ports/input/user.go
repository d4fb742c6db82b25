package input

import (
	"change-request-service/internal/domain/models"
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name UserInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename UserInputPort.go

type UserInputPort interface {
	CreateUser(ctx context.Context, username string, email string, password string, userType models.UserType, status models.UserStatus) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	EnsureAdmin(ctx context.Context, username string, email string, password string) (bool, error)
}
