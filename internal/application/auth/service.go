package auth

import (
	"change-request-service/internal/domain/models"
	"change-request-service/internal/domain/ports/input"
	ports "change-request-service/internal/domain/ports/output"
	uow "change-request-service/internal/domain/ports/output/uow"
	"change-request-service/internal/domain/services"
	"change-request-service/internal/utils"
	"context"
	"errors"
	"strings"
)

const MinPasswordLength = 6

type Service struct {
	uow    uow.UnitOfWork
	hasher services.PasswordHasher
	tokens services.TokenIssuer
	log    ports.Logger
}

func NewService(uow uow.UnitOfWork, hasher services.PasswordHasher, tokens services.TokenIssuer, log ports.Logger) input.AuthInputPort {
	return &Service{uow: uow, hasher: hasher, tokens: tokens, log: log}
}

// Signup registers a developer account that an admin has to activate.
func (s *Service) Signup(ctx context.Context, username string, email string, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = models.NormalizeEmail(email)
	if !models.ValidUsername(username) || email == "" || len(password) < MinPasswordLength {
		return nil, utils.ErrInvalidArgument
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Error("Signup hash failed", "err", err, "username", username)
		return nil, err
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Signup begin tx failed", "err", err, "username", username)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		UserType:     models.UserTypeDeveloper,
		Status:       models.UserStatusPending,
	}
	if err := tx.UserRepository().CreateUser(ctx, u); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Signup commit failed", "err", err, "username", username)
		return nil, err
	}
	commit = true
	s.log.Info("user signed up", "user_id", u.ID, "username", u.Username)
	return u, nil
}

func (s *Service) Login(ctx context.Context, login string, password string) (*models.Session, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	u, err := tx.UserRepository().GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			return nil, utils.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			s.log.Warn("Login wrong password", "user_id", u.ID)
			return nil, utils.ErrInvalidCredentials
		}
		return nil, err
	}
	if u.Status != models.UserStatusActive {
		return nil, utils.ErrUserInactive
	}
	token, exp, err := s.tokens.Issue(u)
	if err != nil {
		s.log.Error("Login issue token failed", "err", err, "user_id", u.ID)
		return nil, err
	}
	return &models.Session{Token: token, ExpiresAt: exp, User: u}, nil
}

// Authenticate resolves a session token to the current user.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, utils.ErrUnauthorized
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	u, err := tx.UserRepository().GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			return nil, utils.ErrUnauthorized
		}
		return nil, err
	}
	if u.Status != models.UserStatusActive {
		return nil, utils.ErrUserInactive
	}
	return u, nil
}
