package input

import (
	"change-request-service/internal/domain/models"
	"context"
)

//go:generate mockery --name AuthInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename AuthInputPort.go

type AuthInputPort interface {
	Signup(ctx context.Context, username string, email string, password string) (*models.User, error)
	Login(ctx context.Context, login string, password string) (*models.Session, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}
