package changerequest

import (
	"change-request-service/internal/domain/models"
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockery --name ChangeRequestRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename ChangeRequestRepository.go

type ChangeRequestRepository interface {
	CreateChangeRequest(ctx context.Context, cr *models.ChangeRequest) error
	GetChangeRequestByID(ctx context.Context, id uuid.UUID) (*models.ChangeRequest, error)
	LockChangeRequestByID(ctx context.Context, id uuid.UUID) (*models.ChangeRequest, error)
	ListChangeRequests(ctx context.Context, filter models.ChangeRequestFilter) ([]*models.ChangeRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus, reason *string, deploymentDate *time.Time) error
	CountByUserAndStatus(ctx context.Context) ([]models.StatusCount, error)
}
