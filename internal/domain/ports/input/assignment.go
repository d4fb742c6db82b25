package input

import (
	"change-request-service/internal/domain/models"
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name AssignmentInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename AssignmentInputPort.go

type AssignmentInputPort interface {
	ListUserProjects(ctx context.Context, userID uuid.UUID) ([]*models.Project, error)
	Assign(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error
	Revoke(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error
}
