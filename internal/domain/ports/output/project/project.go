package project

import (
	"change-request-service/internal/domain/models"
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name ProjectRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename ProjectRepository.go

type ProjectRepository interface {
	CreateProject(ctx context.Context, project *models.Project) error
	GetProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, upd models.ProjectUpdate) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
}
