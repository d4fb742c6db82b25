package project

import (
	"change-request-service/internal/domain/models"
	"change-request-service/internal/domain/ports/input"
	ports "change-request-service/internal/domain/ports/output"
	uow "change-request-service/internal/domain/ports/output/uow"
	"change-request-service/internal/utils"
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	uow uow.UnitOfWork
	log ports.Logger
}

func NewService(uow uow.UnitOfWork, log ports.Logger) input.ProjectInputPort {
	return &Service{uow: uow, log: log}
}

func (s *Service) CreateProject(ctx context.Context, title string, description string) (*models.Project, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("CreateProject begin tx failed", "err", err, "title", title)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	p := &models.Project{Title: title, Description: description}
	if err := tx.ProjectRepository().CreateProject(ctx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("CreateProject commit failed", "err", err, "title", title)
		return nil, err
	}
	commit = true
	s.log.Info("project created", "project_id", p.ID, "title", p.Title)
	return p, nil
}

func (s *Service) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
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
	return tx.ProjectRepository().GetProjectByID(ctx, id)
}

func (s *Service) ListProjects(ctx context.Context) ([]*models.Project, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	return tx.ProjectRepository().ListProjects(ctx)
}

func (s *Service) UpdateProject(ctx context.Context, id uuid.UUID, upd models.ProjectUpdate) (*models.Project, error) {
	if id == uuid.Nil || (upd.Title == nil && upd.Description == nil) {
		return nil, utils.ErrInvalidArgument
	}
	if upd.Title != nil {
		t := strings.TrimSpace(*upd.Title)
		if t == "" {
			return nil, utils.ErrInvalidArgument
		}
		upd.Title = &t
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
	repo := tx.ProjectRepository()
	if err := repo.UpdateProject(ctx, id, upd); err != nil {
		return nil, err
	}
	p, err := repo.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	commit = true
	return p, nil
}

func (s *Service) DeleteProject(ctx context.Context, id uuid.UUID) error {
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
	if err := tx.ProjectRepository().DeleteProject(ctx, id); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	commit = true
	s.log.Info("project deleted", "project_id", id)
	return nil
}
