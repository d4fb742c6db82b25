package project_test

import (
	"context"
	"errors"
	"testing"

	app "change-request-service/internal/application/project"
	"change-request-service/internal/domain/models"
	"change-request-service/internal/infrastructure/logger"
	"change-request-service/internal/utils"
	"change-request-service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateProject(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name        string
		title       string
		description string
		mockSetup   func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.ProjectRepository)
		wantErr     error
	}{
		{
			name:        "success",
			title:       " Billing ",
			description: "invoices",
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.ProjectRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().ProjectRepository().Return(repo)
				repo.EXPECT().CreateProject(ctx, mock.MatchedBy(func(p *models.Project) bool { return p.Title == "Billing" })).Return(nil)
				tx.EXPECT().Commit(ctx).Return(nil)
			},
		},
		{
			name:        "missing description",
			title:       "Billing",
			description: " ",
			wantErr:     utils.ErrInvalidArgument,
		},
		{
			name:        "duplicate title",
			title:       "Billing",
			description: "invoices",
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.ProjectRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().ProjectRepository().Return(repo)
				repo.EXPECT().CreateProject(ctx, mock.Anything).Return(utils.ErrProjectExists)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrProjectExists,
		},
		{
			name:        "begin fails",
			title:       "Billing",
			description: "invoices",
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.ProjectRepository) {
				uow.EXPECT().Begin(ctx).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUOW := mocks.NewUnitOfWork(t)
			mockTx := mocks.NewTransaction(t)
			mockRepo := mocks.NewProjectRepository(t)
			if tt.mockSetup != nil {
				tt.mockSetup(mockUOW, mockTx, mockRepo)
			}
			svc := app.NewService(mockUOW, logger.New("dev"))
			p, err := svc.CreateProject(ctx, tt.title, tt.description)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.Equal(t, tt.wantErr.Error(), err.Error())
				require.Nil(t, p)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "Billing", p.Title)
		})
	}
}

func TestProjectService_UpdateProject(t *testing.T) {
	ctx := context.Background()
	pid := uuid.New()
	title := "  New title "
	blank := ""

	t.Run("trims title and reloads", func(t *testing.T) {
		mockUOW := mocks.NewUnitOfWork(t)
		mockTx := mocks.NewTransaction(t)
		mockRepo := mocks.NewProjectRepository(t)
		mockUOW.EXPECT().Begin(ctx).Return(mockTx, nil)
		mockTx.EXPECT().ProjectRepository().Return(mockRepo)
		mockRepo.EXPECT().UpdateProject(ctx, pid, mock.MatchedBy(func(u models.ProjectUpdate) bool {
			return u.Title != nil && *u.Title == "New title"
		})).Return(nil)
		mockRepo.EXPECT().GetProjectByID(ctx, pid).Return(&models.Project{ID: pid, Title: "New title"}, nil)
		mockTx.EXPECT().Commit(ctx).Return(nil)

		svc := app.NewService(mockUOW, logger.New("dev"))
		p, err := svc.UpdateProject(ctx, pid, models.ProjectUpdate{Title: &title})
		require.NoError(t, err)
		require.Equal(t, "New title", p.Title)
	})

	t.Run("blank title", func(t *testing.T) {
		svc := app.NewService(mocks.NewUnitOfWork(t), logger.New("dev"))
		_, err := svc.UpdateProject(ctx, pid, models.ProjectUpdate{Title: &blank})
		require.ErrorIs(t, err, utils.ErrInvalidArgument)
	})

	t.Run("nothing to update", func(t *testing.T) {
		svc := app.NewService(mocks.NewUnitOfWork(t), logger.New("dev"))
		_, err := svc.UpdateProject(ctx, pid, models.ProjectUpdate{})
		require.ErrorIs(t, err, utils.ErrInvalidArgument)
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	ctx := context.Background()
	pid := uuid.New()

	mockUOW := mocks.NewUnitOfWork(t)
	mockTx := mocks.NewTransaction(t)
	mockRepo := mocks.NewProjectRepository(t)
	mockUOW.EXPECT().Begin(ctx).Return(mockTx, nil)
	mockTx.EXPECT().ProjectRepository().Return(mockRepo)
	mockRepo.EXPECT().DeleteProject(ctx, pid).Return(utils.ErrProjectNotFound)
	mockTx.EXPECT().Rollback(ctx).Return(nil)

	svc := app.NewService(mockUOW, logger.New("dev"))
	require.ErrorIs(t, svc.DeleteProject(ctx, pid), utils.ErrProjectNotFound)
}
