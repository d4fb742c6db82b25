package input

import (
	"change-request-service/internal/domain/models"
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name ChangeRequestInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename ChangeRequestInputPort.go

type ChangeRequestInputPort interface {
	CreateChangeRequest(ctx context.Context, actor models.Actor, projectID uuid.UUID, requestType models.RequestType, description string) (*models.ChangeRequest, error)
	GetChangeRequest(ctx context.Context, id uuid.UUID) (*models.ChangeRequest, error)
	QueryChangeRequests(ctx context.Context, actor models.Actor, filter models.ChangeRequestFilter) ([]*models.ChangeRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus, reason string) (*models.ChangeRequest, error)
	Reports(ctx context.Context) ([]*models.UserReport, error)
}
