package changerequest_repository_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"change-request-service/internal/domain/models"
	"change-request-service/internal/infrastructure/logger"
	changerequest_repository "change-request-service/internal/infrastructure/persistence/postgres/changerequest"
	"change-request-service/internal/utils"
	"change-request-service/mocks"
)

func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = mock.Anything
	}
	return args
}

func TestChangeRequestRepository_LockChangeRequestByID(t *testing.T) {
	id := uuid.New()

	t.Run("locked", func(t *testing.T) {
		q := mocks.NewQuerier(t)
		row := mocks.NewRow(t)
		repo := changerequest_repository.NewChangeRequestRepository(q, logger.New("dev"))
		q.EXPECT().QueryRow(mock.Anything, mock.MatchedBy(func(sql string) bool {
			return strings.Contains(sql, "FOR UPDATE")
		}), pgx.NamedArgs{"id": id}).Return(row)
		row.EXPECT().Scan(anyArgs(10)...).RunAndReturn(func(dest ...interface{}) error {
			*dest[0].(*uuid.UUID) = id
			*dest[5].(*models.RequestStatus) = models.RequestStatusPending
			return nil
		})

		cr, err := repo.LockChangeRequestByID(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, models.RequestStatusPending, cr.Status)
	})

	t.Run("missing", func(t *testing.T) {
		q := mocks.NewQuerier(t)
		row := mocks.NewRow(t)
		repo := changerequest_repository.NewChangeRequestRepository(q, logger.New("dev"))
		q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)
		row.EXPECT().Scan(anyArgs(10)...).Return(pgx.ErrNoRows)

		_, err := repo.LockChangeRequestByID(context.Background(), id)
		require.ErrorIs(t, err, utils.ErrChangeRequestNotFound)
	})
}

func TestChangeRequestRepository_UpdateStatus(t *testing.T) {
	id := uuid.New()
	deployed := time.Now().UTC()

	tests := []struct {
		name      string
		tag       pgconn.CommandTag
		wantIsErr error
	}{
		{name: "updated", tag: pgconn.NewCommandTag("UPDATE 1")},
		{name: "missing", tag: pgconn.NewCommandTag("UPDATE 0"), wantIsErr: utils.ErrChangeRequestNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mocks.NewQuerier(t)
			repo := changerequest_repository.NewChangeRequestRepository(q, logger.New("dev"))
			q.EXPECT().Exec(mock.Anything, mock.Anything, mock.MatchedBy(func(args pgx.NamedArgs) bool {
				return args["status"] == models.RequestStatusDeployed && args["id"] == id
			})).Return(tt.tag, nil)

			err := repo.UpdateStatus(context.Background(), id, models.RequestStatusDeployed, nil, &deployed)
			if tt.wantIsErr != nil {
				require.ErrorIs(t, err, tt.wantIsErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestChangeRequestRepository_CreateChangeRequest(t *testing.T) {
	tests := []struct {
		name      string
		scanErr   error
		wantIsErr error
	}{
		{name: "success"},
		{name: "unknown project", scanErr: &pgconn.PgError{Code: "23503", ConstraintName: "change_requests_project_id_fkey"}, wantIsErr: utils.ErrProjectNotFound},
		{name: "unknown user", scanErr: &pgconn.PgError{Code: "23503", ConstraintName: "change_requests_user_id_fkey"}, wantIsErr: utils.ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mocks.NewQuerier(t)
			row := mocks.NewRow(t)
			repo := changerequest_repository.NewChangeRequestRepository(q, logger.New("dev"))
			q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)
			row.EXPECT().Scan(anyArgs(3)...).RunAndReturn(func(dest ...interface{}) error {
				if tt.scanErr != nil {
					return tt.scanErr
				}
				*dest[0].(*models.RequestStatus) = models.RequestStatusPending
				return nil
			})

			cr := &models.ChangeRequest{ProjectID: uuid.New(), UserID: uuid.New(), RequestType: models.RequestTypeBugFix, Description: "x"}
			err := repo.CreateChangeRequest(context.Background(), cr)
			if tt.wantIsErr != nil {
				require.ErrorIs(t, err, tt.wantIsErr)
				return
			}
			require.NoError(t, err)
			require.NotEqual(t, uuid.Nil, cr.ID)
			require.Equal(t, models.RequestStatusPending, cr.Status)
		})
	}
}
