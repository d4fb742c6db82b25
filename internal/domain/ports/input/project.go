package input

import (
	"change-request-service/internal/domain/models"
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name ProjectInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename ProjectInputPort.go

type ProjectInputPort interface {
	CreateProject(ctx context.Context, title string, description string) (*models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, upd models.ProjectUpdate) (*models.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}
