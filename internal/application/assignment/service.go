package assignment

import (
	"change-request-service/internal/domain/models"
	"change-request-service/internal/domain/ports/input"
	ports "change-request-service/internal/domain/ports/output"
	uow "change-request-service/internal/domain/ports/output/uow"
	"change-request-service/internal/utils"
	"context"

	"github.com/google/uuid"
)

type Service struct {
	uow uow.UnitOfWork
	log ports.Logger
}

func NewService(uow uow.UnitOfWork, log ports.Logger) input.AssignmentInputPort {
	return &Service{uow: uow, log: log}
}

// ListUserProjects returns the projects assigned to userID. An unknown user
// is ErrUserNotFound rather than an empty list.
func (s *Service) ListUserProjects(ctx context.Context, userID uuid.UUID) ([]*models.Project, error) {
	if userID == uuid.Nil {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if _, err := tx.UserRepository().GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return tx.AssignmentRepository().ListProjectsByUserID(ctx, userID)
}

func (s *Service) Assign(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	if userID == uuid.Nil || projectID == uuid.Nil {
		return utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Assign begin tx failed", "err", err, "user_id", userID, "project_id", projectID)
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if _, err := tx.UserRepository().GetUserByID(ctx, userID); err != nil {
		return err
	}
	if _, err := tx.ProjectRepository().GetProjectByID(ctx, projectID); err != nil {
		return err
	}
	if err := tx.AssignmentRepository().Assign(ctx, userID, projectID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Assign commit failed", "err", err, "user_id", userID, "project_id", projectID)
		return err
	}
	commit = true
	s.log.Info("project assigned", "user_id", userID, "project_id", projectID)
	return nil
}

func (s *Service) Revoke(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	if userID == uuid.Nil || projectID == uuid.Nil {
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
	if err := tx.AssignmentRepository().Revoke(ctx, userID, projectID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	commit = true
	s.log.Info("project revoked", "user_id", userID, "project_id", projectID)
	return nil
}
