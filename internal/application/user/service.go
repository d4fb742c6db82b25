package user

import (
	"change-request-service/internal/domain/models"
	"change-request-service/internal/domain/ports/input"
	ports "change-request-service/internal/domain/ports/output"
	uow "change-request-service/internal/domain/ports/output/uow"
	"change-request-service/internal/domain/services"
	"change-request-service/internal/utils"
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	uow    uow.UnitOfWork
	hasher services.PasswordHasher
	log    ports.Logger
}

func NewService(uow uow.UnitOfWork, hasher services.PasswordHasher, log ports.Logger) input.UserInputPort {
	return &Service{uow: uow, hasher: hasher, log: log}
}

func (s *Service) CreateUser(ctx context.Context, username string, email string, password string, userType models.UserType, status models.UserStatus) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = models.NormalizeEmail(email)
	if !models.ValidUsername(username) || email == "" || password == "" || !userType.Valid() || !status.Valid() {
		s.log.Error("CreateUser invalid argument", "username", username, "user_type", userType, "status", status)
		return nil, utils.ErrInvalidArgument
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("CreateUser begin tx failed", "err", err, "username", username)
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
		UserType:     userType,
		Status:       status,
	}
	if err := tx.UserRepository().CreateUser(ctx, u); err != nil {
		s.log.Error("CreateUser repo failed", "err", err, "username", username)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("CreateUser commit failed", "err", err, "username", username)
		return nil, err
	}
	commit = true
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if id == uuid.Nil {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	return tx.UserRepository().GetUserByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	return tx.UserRepository().ListUsers(ctx)
}

func validUpdate(upd models.UserUpdate) bool {
	if upd.Empty() {
		return false
	}
	if upd.Username != nil && !models.ValidUsername(*upd.Username) {
		return false
	}
	if upd.Email != nil && strings.TrimSpace(*upd.Email) == "" {
		return false
	}
	if upd.UserType != nil && !upd.UserType.Valid() {
		return false
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return false
	}
	return true
}

func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error) {
	if id == uuid.Nil || !validUpdate(upd) {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	repo := tx.UserRepository()
	if err := repo.UpdateUser(ctx, id, upd); err != nil {
		return nil, err
	}
	u, err := repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("UpdateUser commit failed", "err", err, "user_id", id)
		return nil, err
	}
	commit = true
	s.log.Info("user updated", "user_id", id, "user_type", u.UserType, "status", u.Status)
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := tx.UserRepository().DeleteUser(ctx, id); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	commit = true
	return nil
}

// EnsureAdmin seeds an active admin when no users exist yet. It reports
// whether an account was created.
func (s *Service) EnsureAdmin(ctx context.Context, username string, email string, password string) (bool, error) {
	if !models.ValidUsername(username) || password == "" {
		return false, utils.ErrInvalidArgument
	}
	if strings.TrimSpace(email) == "" {
		email = username + "@localhost"
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, err
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return false, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	repo := tx.UserRepository()
	n, err := repo.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	u := &models.User{
		Username:     strings.TrimSpace(username),
		Email:        models.NormalizeEmail(email),
		PasswordHash: hash,
		UserType:     models.UserTypeAdmin,
		Status:       models.UserStatusActive,
	}
	if err := repo.CreateUser(ctx, u); err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	commit = true
	s.log.Info("bootstrap admin created", "user_id", u.ID, "username", u.Username)
	return true, nil
}
