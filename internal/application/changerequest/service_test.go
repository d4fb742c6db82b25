package changerequest_test

import (
	"context"
	"errors"
	"testing"
	"time"

	app "change-request-service/internal/application/changerequest"
	"change-request-service/internal/domain/models"
	"change-request-service/internal/infrastructure/logger"
	"change-request-service/internal/utils"
	"change-request-service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uow      *mocks.UnitOfWork
	tx       *mocks.Transaction
	crRepo   *mocks.ChangeRequestRepository
	projRepo *mocks.ProjectRepository
	asgRepo  *mocks.AssignmentRepository
	userRepo *mocks.UserRepository
}

func newFixture(t *testing.T) *fixture {
	return &fixture{
		uow:      mocks.NewUnitOfWork(t),
		tx:       mocks.NewTransaction(t),
		crRepo:   mocks.NewChangeRequestRepository(t),
		projRepo: mocks.NewProjectRepository(t),
		asgRepo:  mocks.NewAssignmentRepository(t),
		userRepo: mocks.NewUserRepository(t),
	}
}

func TestChangeRequestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name      string
		status    models.RequestStatus
		reason    string
		mockSetup func(f *fixture)
		wantErr   error
	}{
		{
			name:   "approve without reason",
			status: models.RequestStatusApproved,
			reason: "   ",
			mockSetup: func(f *fixture) {
				f.uow.EXPECT().Begin(ctx).Return(f.tx, nil)
				f.tx.EXPECT().ChangeRequestRepository().Return(f.crRepo)
				f.crRepo.EXPECT().LockChangeRequestByID(ctx, id).Return(&models.ChangeRequest{ID: id, Status: models.RequestStatusPending}, nil)
				f.crRepo.EXPECT().UpdateStatus(ctx, id, models.RequestStatusApproved, (*string)(nil), (*time.Time)(nil)).Return(nil)
				f.crRepo.EXPECT().GetChangeRequestByID(ctx, id).Return(&models.ChangeRequest{ID: id, Status: models.RequestStatusApproved}, nil)
				f.tx.EXPECT().Commit(ctx).Return(nil)
			},
		},
		{
			name:   "approve with reason is trimmed",
			status: models.RequestStatusApproved,
			reason: "  looks good ",
			mockSetup: func(f *fixture) {
				f.uow.EXPECT().Begin(ctx).Return(f.tx, nil)
				f.tx.EXPECT().ChangeRequestRepository().Return(f.crRepo)
				f.crRepo.EXPECT().LockChangeRequestByID(ctx, id).Return(&models.ChangeRequest{ID: id, Status: models.RequestStatusPending}, nil)
				f.crRepo.EXPECT().UpdateStatus(ctx, id, models.RequestStatusApproved, mock.MatchedBy(func(r *string) bool {
					return r != nil && *r == "looks good"
				}), (*time.Time)(nil)).Return(nil)
				f.crRepo.EXPECT().GetChangeRequestByID(ctx, id).Return(&models.ChangeRequest{ID: id, Status: models.RequestStatusApproved}, nil)
				f.tx.EXPECT().Commit(ctx).Return(nil)
			},
		},
		{
			name:    "rollback without reason",
			status:  models.RequestStatusRolledBack,
			reason:  " ",
			wantErr: utils.ErrReasonRequired,
		},
		{
			name:   "deploy sets deployment date",
			status: models.RequestStatusDeployed,
			mockSetup: func(f *fixture) {
				f.uow.EXPECT().Begin(ctx).Return(f.tx, nil)
				f.tx.EXPECT().ChangeRequestRepository().Return(f.crRepo)
				f.crRepo.EXPECT().LockChangeRequestByID(ctx, id).Return(&models.ChangeRequest{ID: id, Status: models.RequestStatusApproved}, nil)
				f.crRepo.EXPECT().UpdateStatus(ctx, id, models.RequestStatusDeployed, (*string)(nil), mock.MatchedBy(func(d *time.Time) bool {
					return d != nil && !d.IsZero()
				})).Return(nil)
				f.crRepo.EXPECT().GetChangeRequestByID(ctx, id).Return(&models.ChangeRequest{ID: id, Status: models.RequestStatusDeployed}, nil)
				f.tx.EXPECT().Commit(ctx).Return(nil)
			},
		},
		{
			name:   "deploy from pending is rejected",
			status: models.RequestStatusDeployed,
			mockSetup: func(f *fixture) {
				f.uow.EXPECT().Begin(ctx).Return(f.tx, nil)
				f.tx.EXPECT().ChangeRequestRepository().Return(f.crRepo)
				f.crRepo.EXPECT().LockChangeRequestByID(ctx, id).Return(&models.ChangeRequest{ID: id, Status: models.RequestStatusPending}, nil)
				f.tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrInvalidTransition,
		},
		{
			name:   "approve twice is rejected",
			status: models.RequestStatusApproved,
			mockSetup: func(f *fixture) {
				f.uow.EXPECT().Begin(ctx).Return(f.tx, nil)
				f.tx.EXPECT().ChangeRequestRepository().Return(f.crRepo)
				f.crRepo.EXPECT().LockChangeRequestByID(ctx, id).Return(&models.ChangeRequest{ID: id, Status: models.RequestStatusApproved}, nil)
				f.tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrInvalidTransition,
		},
		{
			name:    "unknown status",
			status:  models.RequestStatus("archived"),
			wantErr: utils.ErrInvalidArgument,
		},
		{
			name:   "not found",
			status: models.RequestStatusApproved,
			mockSetup: func(f *fixture) {
				f.uow.EXPECT().Begin(ctx).Return(f.tx, nil)
				f.tx.EXPECT().ChangeRequestRepository().Return(f.crRepo)
				f.crRepo.EXPECT().LockChangeRequestByID(ctx, id).Return(nil, utils.ErrChangeRequestNotFound)
				f.tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrChangeRequestNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.mockSetup != nil {
				tt.mockSetup(f)
			}
			svc := app.NewService(f.uow, logger.New("dev"))
			cr, err := svc.UpdateStatus(ctx, id, tt.status, tt.reason)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, cr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.status, cr.Status)
		})
	}
}

func TestChangeRequestService_CreateChangeRequest(t *testing.T) {
	ctx := context.Background()
	dev := models.Actor{UserID: uuid.New(), UserType: models.UserTypeDeveloper}
	pid := uuid.New()

	tests := []struct {
		name        string
		actor       models.Actor
		requestType models.RequestType
		description string
		mockSetup   func(f *fixture)
		wantErr     error
	}{
		{
			name:        "success",
			actor:       dev,
			requestType: models.RequestTypeBugFix,
			description: " fix login ",
			mockSetup: func(f *fixture) {
				f.uow.EXPECT().Begin(ctx).Return(f.tx, nil)
				f.tx.EXPECT().ProjectRepository().Return(f.projRepo)
				f.tx.EXPECT().AssignmentRepository().Return(f.asgRepo)
				f.tx.EXPECT().ChangeRequestRepository().Return(f.crRepo)
				f.projRepo.EXPECT().GetProjectByID(ctx, pid).Return(&models.Project{ID: pid}, nil)
				f.asgRepo.EXPECT().IsAssigned(ctx, dev.UserID, pid).Return(true, nil)
				f.crRepo.EXPECT().CreateChangeRequest(ctx, mock.MatchedBy(func(cr *models.ChangeRequest) bool {
					return cr.Description == "fix login" && cr.Status == models.RequestStatusPending && cr.UserID == dev.UserID
				})).Run(func(_ context.Context, cr *models.ChangeRequest) {
					cr.ID = uuid.New()
				}).Return(nil)
				f.crRepo.EXPECT().GetChangeRequestByID(ctx, mock.Anything).Return(&models.ChangeRequest{Status: models.RequestStatusPending}, nil)
				f.tx.EXPECT().Commit(ctx).Return(nil)
			},
		},
		{
			name:        "approver cannot submit",
			actor:       models.Actor{UserID: uuid.New(), UserType: models.UserTypeApprover},
			requestType: models.RequestTypeBugFix,
			description: "x",
			wantErr:     utils.ErrForbidden,
		},
		{
			name:        "unknown type",
			actor:       dev,
			requestType: models.RequestType("refactor"),
			description: "x",
			wantErr:     utils.ErrInvalidArgument,
		},
		{
			name:        "blank description",
			actor:       dev,
			requestType: models.RequestTypeUpdates,
			description: "  ",
			wantErr:     utils.ErrInvalidArgument,
		},
		{
			name:        "project not assigned",
			actor:       dev,
			requestType: models.RequestTypeNewFeature,
			description: "x",
			mockSetup: func(f *fixture) {
				f.uow.EXPECT().Begin(ctx).Return(f.tx, nil)
				f.tx.EXPECT().ProjectRepository().Return(f.projRepo)
				f.tx.EXPECT().AssignmentRepository().Return(f.asgRepo)
				f.projRepo.EXPECT().GetProjectByID(ctx, pid).Return(&models.Project{ID: pid}, nil)
				f.asgRepo.EXPECT().IsAssigned(ctx, dev.UserID, pid).Return(false, nil)
				f.tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrForbidden,
		},
		{
			name:        "project missing",
			actor:       dev,
			requestType: models.RequestTypeNewFeature,
			description: "x",
			mockSetup: func(f *fixture) {
				f.uow.EXPECT().Begin(ctx).Return(f.tx, nil)
				f.tx.EXPECT().ProjectRepository().Return(f.projRepo)
				f.projRepo.EXPECT().GetProjectByID(ctx, pid).Return(nil, utils.ErrProjectNotFound)
				f.tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrProjectNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.mockSetup != nil {
				tt.mockSetup(f)
			}
			svc := app.NewService(f.uow, logger.New("dev"))
			cr, err := svc.CreateChangeRequest(ctx, tt.actor, pid, tt.requestType, tt.description)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, cr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, models.RequestStatusPending, cr.Status)
		})
	}
}

func TestChangeRequestService_QueryChangeRequests(t *testing.T) {
	ctx := context.Background()
	devID := uuid.New()
	other := uuid.New()
	pending := models.RequestStatusPending

	t.Run("developer is scoped to own requests", func(t *testing.T) {
		f := newFixture(t)
		f.uow.EXPECT().Begin(ctx).Return(f.tx, nil)
		f.tx.EXPECT().ChangeRequestRepository().Return(f.crRepo)
		f.tx.EXPECT().Rollback(ctx).Return(nil)
		f.crRepo.EXPECT().ListChangeRequests(ctx, mock.MatchedBy(func(fl models.ChangeRequestFilter) bool {
			return fl.UserID != nil && *fl.UserID == devID
		})).Return([]*models.ChangeRequest{{UserID: devID}}, nil)

		svc := app.NewService(f.uow, logger.New("dev"))
		got, err := svc.QueryChangeRequests(ctx, models.Actor{UserID: devID, UserType: models.UserTypeDeveloper}, models.ChangeRequestFilter{UserID: &other})
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("approver filters by status", func(t *testing.T) {
		f := newFixture(t)
		f.uow.EXPECT().Begin(ctx).Return(f.tx, nil)
		f.tx.EXPECT().ChangeRequestRepository().Return(f.crRepo)
		f.tx.EXPECT().Rollback(ctx).Return(nil)
		f.crRepo.EXPECT().ListChangeRequests(ctx, models.ChangeRequestFilter{Status: &pending}).Return(nil, nil)

		svc := app.NewService(f.uow, logger.New("dev"))
		got, err := svc.QueryChangeRequests(ctx, models.Actor{UserID: other, UserType: models.UserTypeApprover}, models.ChangeRequestFilter{Status: &pending})
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("unknown status", func(t *testing.T) {
		bad := models.RequestStatus("weird")
		svc := app.NewService(mocks.NewUnitOfWork(t), logger.New("dev"))
		_, err := svc.QueryChangeRequests(ctx, models.Actor{UserType: models.UserTypeApprover}, models.ChangeRequestFilter{Status: &bad})
		require.ErrorIs(t, err, utils.ErrInvalidArgument)
	})
}

func TestChangeRequestService_Reports(t *testing.T) {
	ctx := context.Background()
	alice := &models.User{ID: uuid.New(), Username: "alice"}
	bob := &models.User{ID: uuid.New(), Username: "bob"}

	f := newFixture(t)
	f.uow.EXPECT().Begin(ctx).Return(f.tx, nil)
	f.tx.EXPECT().UserRepository().Return(f.userRepo)
	f.tx.EXPECT().ChangeRequestRepository().Return(f.crRepo)
	f.tx.EXPECT().Rollback(ctx).Return(nil)
	f.userRepo.EXPECT().ListUsers(ctx).Return([]*models.User{alice, bob}, nil)
	f.crRepo.EXPECT().CountByUserAndStatus(ctx).Return([]models.StatusCount{
		{UserID: alice.ID, Status: models.RequestStatusPending, Count: 2},
		{UserID: alice.ID, Status: models.RequestStatusDeployed, Count: 1},
		{UserID: uuid.New(), Status: models.RequestStatusPending, Count: 9},
	}, nil)

	svc := app.NewService(f.uow, logger.New("dev"))
	reports, err := svc.Reports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.Equal(t, "alice", reports[0].User.Username)
	require.Equal(t, 3, reports[0].Total)
	require.Equal(t, 2, reports[0].Pending)
	require.Equal(t, 1, reports[0].Deployed)
	require.Equal(t, 0, reports[1].Total)
}

func TestChangeRequestService_BeginFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.uow.EXPECT().Begin(ctx).Return(nil, errors.New("db down"))

	svc := app.NewService(f.uow, logger.New("dev"))
	_, err := svc.GetChangeRequest(ctx, uuid.New())
	require.EqualError(t, err, "db down")
}
