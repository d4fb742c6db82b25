package services

import (
	"change-request-service/internal/domain/models"
	"time"

	"github.com/google/uuid"
)

//go:generate mockery --name PasswordHasher --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename PasswordHasher.go
//go:generate mockery --name TokenIssuer --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename TokenIssuer.go

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

type TokenClaims struct {
	UserID    uuid.UUID
	Username  string
	UserType  models.UserType
	ExpiresAt time.Time
}

type TokenIssuer interface {
	Issue(user *models.User) (string, time.Time, error)
	Parse(token string) (*TokenClaims, error)
}
