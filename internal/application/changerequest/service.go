package changerequest

import (
	"change-request-service/internal/domain/models"
	"change-request-service/internal/domain/ports/input"
	ports "change-request-service/internal/domain/ports/output"
	uow "change-request-service/internal/domain/ports/output/uow"
	"change-request-service/internal/utils"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	uow uow.UnitOfWork
	log ports.Logger
	now func() time.Time
}

func NewService(uow uow.UnitOfWork, log ports.Logger) input.ChangeRequestInputPort {
	return &Service{uow: uow, log: log, now: time.Now}
}

// CreateChangeRequest files a pending request on behalf of a developer who is
// assigned to the project.
func (s *Service) CreateChangeRequest(ctx context.Context, actor models.Actor, projectID uuid.UUID, requestType models.RequestType, description string) (*models.ChangeRequest, error) {
	if !actor.Is(models.UserTypeDeveloper) {
		return nil, utils.ErrForbidden
	}
	description = strings.TrimSpace(description)
	if _, ok := models.ParseRequestType(string(requestType)); !ok || description == "" || projectID == uuid.Nil {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("CreateChangeRequest begin tx failed", "err", err, "user_id", actor.UserID)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if _, err := tx.ProjectRepository().GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	assigned, err := tx.AssignmentRepository().IsAssigned(ctx, actor.UserID, projectID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		s.log.Warn("CreateChangeRequest project not assigned", "user_id", actor.UserID, "project_id", projectID)
		return nil, fmt.Errorf("%w: project is not assigned to the user", utils.ErrForbidden)
	}
	crRepo := tx.ChangeRequestRepository()
	cr := &models.ChangeRequest{
		Description: description,
		ProjectID:   projectID,
		UserID:      actor.UserID,
		RequestType: models.RequestType(strings.ToLower(strings.TrimSpace(string(requestType)))),
		Status:      models.RequestStatusPending,
	}
	if err := crRepo.CreateChangeRequest(ctx, cr); err != nil {
		return nil, err
	}
	full, err := crRepo.GetChangeRequestByID(ctx, cr.ID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("CreateChangeRequest commit failed", "err", err, "user_id", actor.UserID)
		return nil, err
	}
	commit = true
	s.log.Info("change request created", "change_request_id", full.ID, "project_id", projectID, "user_id", actor.UserID)
	return full, nil
}

func (s *Service) GetChangeRequest(ctx context.Context, id uuid.UUID) (*models.ChangeRequest, error) {
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
	return tx.ChangeRequestRepository().GetChangeRequestByID(ctx, id)
}

// QueryChangeRequests lists requests matching filter. Developers only ever
// see their own requests whatever userId they ask for.
func (s *Service) QueryChangeRequests(ctx context.Context, actor models.Actor, filter models.ChangeRequestFilter) ([]*models.ChangeRequest, error) {
	if filter.Status != nil {
		if _, ok := models.ParseRequestStatus(string(*filter.Status)); !ok {
			return nil, utils.ErrInvalidArgument
		}
	}
	if actor.Is(models.UserTypeDeveloper) {
		self := actor.UserID
		filter.UserID = &self
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	return tx.ChangeRequestRepository().ListChangeRequests(ctx, filter)
}

// UpdateStatus moves a request along pending -> approved | rolledback and
// approved -> deployed. A rollback needs a non-blank reason; an approval
// reason is optional and stored trimmed.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus, reason string) (*models.ChangeRequest, error) {
	if id == uuid.Nil {
		return nil, utils.ErrInvalidArgument
	}
	if _, ok := models.ParseRequestStatus(string(status)); !ok {
		return nil, utils.ErrInvalidArgument
	}
	if status == models.RequestStatusRolledBack && utils.IsBlank(reason) {
		return nil, utils.ErrReasonRequired
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("UpdateStatus begin tx failed", "err", err, "change_request_id", id)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	repo := tx.ChangeRequestRepository()
	current, err := repo.LockChangeRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", utils.ErrInvalidTransition, current.Status, status)
	}
	var deployedAt *time.Time
	if status == models.RequestStatusDeployed {
		t := s.now().UTC()
		deployedAt = &t
	}
	if err := repo.UpdateStatus(ctx, id, status, utils.TrimmedOrNil(reason), deployedAt); err != nil {
		return nil, err
	}
	updated, err := repo.GetChangeRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("UpdateStatus commit failed", "err", err, "change_request_id", id)
		return nil, err
	}
	commit = true
	s.log.Info("change request status changed", "change_request_id", id, "from", current.Status, "to", status)
	return updated, nil
}

// Reports returns one row per user with change request counts by status,
// users without requests included.
func (s *Service) Reports(ctx context.Context) ([]*models.UserReport, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	users, err := tx.UserRepository().ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := tx.ChangeRequestRepository().CountByUserAndStatus(ctx)
	if err != nil {
		return nil, err
	}
	byUser := make(map[uuid.UUID]*models.UserReport, len(users))
	reports := make([]*models.UserReport, 0, len(users))
	for _, u := range users {
		r := &models.UserReport{User: *u}
		byUser[u.ID] = r
		reports = append(reports, r)
	}
	for _, c := range counts {
		if r, ok := byUser[c.UserID]; ok {
			r.Add(c.Status, c.Count)
		}
	}
	return reports, nil
}
