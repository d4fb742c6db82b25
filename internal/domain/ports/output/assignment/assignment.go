package assignment

import (
	"change-request-service/internal/domain/models"
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name AssignmentRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename AssignmentRepository.go

type AssignmentRepository interface {
	ListProjectsByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Project, error)
	Assign(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error
	Revoke(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error
	IsAssigned(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) (bool, error)
}
