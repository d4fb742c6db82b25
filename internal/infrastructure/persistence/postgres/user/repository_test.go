package user_repository_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"change-request-service/internal/domain/models"
	user_port "change-request-service/internal/domain/ports/output/user"
	"change-request-service/internal/infrastructure/logger"
	user_repository "change-request-service/internal/infrastructure/persistence/postgres/user"
	"change-request-service/internal/utils"
	"change-request-service/mocks"
)

func newRepo(t *testing.T) (user_port.UserRepository, *mocks.Querier) {
	q := mocks.NewQuerier(t)
	log := logger.New("dev")
	return user_repository.NewUserRepository(q, log), q
}

func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = mock.Anything
	}
	return args
}

func TestUserRepository_CreateUser(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		scanErr   error
		wantIsErr error
		wantErr   bool
	}{
		{name: "success"},
		{name: "unique violation", scanErr: &pgconn.PgError{Code: "23505"}, wantErr: true, wantIsErr: utils.ErrUserExists},
		{name: "db error", scanErr: errors.New("db error"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, q := newRepo(t)
			row := mocks.NewRow(t)
			q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)
			row.EXPECT().Scan(anyArgs(2)...).RunAndReturn(func(dest ...interface{}) error {
				if tt.scanErr != nil {
					return tt.scanErr
				}
				*dest[0].(*time.Time) = now
				*dest[1].(*time.Time) = now
				return nil
			})

			u := &models.User{Username: "alice", Email: "alice@example.com", UserType: models.UserTypeDeveloper, Status: models.UserStatusPending}
			err := repo.CreateUser(context.Background(), u)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantIsErr != nil {
					assert.ErrorIs(t, err, tt.wantIsErr)
				}
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, u.ID)
			assert.Equal(t, now, u.CreatedAt)
		})
	}
}

func TestUserRepository_CreateUser_LowercasesEmail(t *testing.T) {
	repo, q := newRepo(t)
	row := mocks.NewRow(t)
	q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.MatchedBy(func(args pgx.NamedArgs) bool {
		return args["email"] == "alice@example.com"
	})).Return(row)
	row.EXPECT().Scan(anyArgs(2)...).Return(nil)

	u := &models.User{Username: "alice", Email: " Alice@Example.COM ", UserType: models.UserTypeDeveloper, Status: models.UserStatusPending}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	assert.Equal(t, "alice@example.com", u.Email)
}

func TestUserRepository_GetUserByLogin(t *testing.T) {
	tests := []struct {
		name       string
		login      string
		wantColumn string
		wantArg    string
	}{
		{name: "username", login: " alice ", wantColumn: "WHERE username = @login", wantArg: "alice"},
		{name: "email", login: "Admin@Example.com", wantColumn: "WHERE email = @login", wantArg: "admin@example.com"},
		{name: "username shaped like an email never matches usernames", login: "admin@example.com", wantColumn: "WHERE email = @login", wantArg: "admin@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, q := newRepo(t)
			row := mocks.NewRow(t)
			q.EXPECT().QueryRow(mock.Anything, mock.MatchedBy(func(sql string) bool {
				return strings.Contains(sql, tt.wantColumn) && !strings.Contains(sql, " OR ")
			}), pgx.NamedArgs{"login": tt.wantArg}).Return(row)
			row.EXPECT().Scan(anyArgs(8)...).RunAndReturn(func(dest ...interface{}) error {
				*dest[1].(*string) = "alice"
				return nil
			})
			u, err := repo.GetUserByLogin(context.Background(), tt.login)
			require.NoError(t, err)
			assert.Equal(t, "alice", u.Username)
		})
	}

	t.Run("not found", func(t *testing.T) {
		repo, q := newRepo(t)
		row := mocks.NewRow(t)
		q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)
		row.EXPECT().Scan(anyArgs(8)...).Return(pgx.ErrNoRows)
		_, err := repo.GetUserByLogin(context.Background(), "ghost")
		require.ErrorIs(t, err, utils.ErrUserNotFound)
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		repo, q := newRepo(t)
		row := mocks.NewRow(t)
		q.EXPECT().QueryRow(mock.Anything, mock.Anything, pgx.NamedArgs{"id": id}).Return(row)
		row.EXPECT().Scan(anyArgs(8)...).RunAndReturn(func(dest ...interface{}) error {
			*dest[0].(*uuid.UUID) = id
			*dest[1].(*string) = "alice"
			*dest[4].(*models.UserType) = models.UserTypeAdmin
			*dest[5].(*models.UserStatus) = models.UserStatusActive
			return nil
		})
		u, err := repo.GetUserByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, models.UserTypeAdmin, u.UserType)
	})

	t.Run("not found", func(t *testing.T) {
		repo, q := newRepo(t)
		row := mocks.NewRow(t)
		q.EXPECT().QueryRow(mock.Anything, mock.Anything, pgx.NamedArgs{"id": id}).Return(row)
		row.EXPECT().Scan(anyArgs(8)...).Return(pgx.ErrNoRows)
		u, err := repo.GetUserByID(context.Background(), id)
		require.ErrorIs(t, err, utils.ErrUserNotFound)
		assert.Nil(t, u)
	})
}

func TestUserRepository_UpdateUser(t *testing.T) {
	id := uuid.New()
	status := models.UserStatusActive
	tests := []struct {
		name      string
		tag       pgconn.CommandTag
		execErr   error
		wantIsErr error
	}{
		{name: "success", tag: pgconn.NewCommandTag("UPDATE 1")},
		{name: "missing", tag: pgconn.NewCommandTag("UPDATE 0"), wantIsErr: utils.ErrUserNotFound},
		{name: "duplicate email", execErr: &pgconn.PgError{Code: "23505"}, wantIsErr: utils.ErrUserExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, q := newRepo(t)
			q.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(tt.tag, tt.execErr)
			err := repo.UpdateUser(context.Background(), id, models.UserUpdate{Status: &status})
			if tt.wantIsErr != nil {
				require.ErrorIs(t, err, tt.wantIsErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUserRepository_DeleteUser(t *testing.T) {
	repo, q := newRepo(t)
	q.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("DELETE 0"), nil)
	require.ErrorIs(t, repo.DeleteUser(context.Background(), uuid.New()), utils.ErrUserNotFound)
}

func TestUserRepository_CountUsers(t *testing.T) {
	repo, q := newRepo(t)
	row := mocks.NewRow(t)
	q.EXPECT().QueryRow(mock.Anything, mock.Anything).Return(row)
	row.EXPECT().Scan(mock.Anything).RunAndReturn(func(dest ...interface{}) error {
		*dest[0].(*int) = 4
		return nil
	})
	n, err := repo.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
