package user_repository

import (
	"change-request-service/internal/domain/models"
	ports "change-request-service/internal/domain/ports/output"
	user_port "change-request-service/internal/domain/ports/output/user"
	"change-request-service/internal/infrastructure/persistence/postgres"
	"change-request-service/internal/utils"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewUserRepository(querier postgres.Querier, log ports.Logger) user_port.UserRepository {
	return &UserRepository{querier: querier, log: log}
}

const userColumns = `id, username, email, password_hash, user_type, status, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.UserType, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = models.NormalizeEmail(user.Email)
	const q = `
		INSERT INTO users (id, username, email, password_hash, user_type, status, created_at, updated_at)
		VALUES (@id, @username, @email, @password_hash, @user_type, @status, now(), now())
		RETURNING created_at, updated_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":            user.ID,
		"username":      user.Username,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"user_type":     user.UserType,
		"status":        user.Status,
	})
	if err := row.Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		if postgres.PgErrorCode(err) == postgres.CodeUniqueViolation {
			return utils.ErrUserExists
		}
		r.log.Error("CreateUser failed", "username", user.Username, "err", err)
		return err
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = @id;`
	u, err := scanUser(r.querier.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrUserNotFound
		}
		r.log.Error("GetUserByID failed", "user_id", id, "err", err)
		return nil, err
	}
	return u, nil
}

// GetUserByLogin matches login against emails when it contains "@" and
// against usernames otherwise. Both columns are unique, so at most one row matches.
func (r *UserRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE username = @login;`
	login = strings.TrimSpace(login)
	if strings.Contains(login, "@") {
		q = `SELECT ` + userColumns + ` FROM users WHERE email = @login;`
		login = models.NormalizeEmail(login)
	}
	u, err := scanUser(r.querier.QueryRow(ctx, q, pgx.NamedArgs{"login": login}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrUserNotFound
		}
		r.log.Error("GetUserByLogin failed", "login", login, "err", err)
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, username;`
	rows, err := r.querier.Query(ctx, q)
	if err != nil {
		r.log.Error("ListUsers query failed", "err", err)
		return nil, err
	}
	defer rows.Close()

	res := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			r.log.Error("ListUsers scan failed", "err", err)
			return nil, err
		}
		res = append(res, u)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uuid.UUID, upd models.UserUpdate) error {
	const q = `
		UPDATE users
		SET username = COALESCE(@username, username),
			email = COALESCE(@email, email),
			user_type = COALESCE(@user_type, user_type),
			status = COALESCE(@status, status),
			updated_at = now()
		WHERE id = @id;
	`
	var email *string
	if upd.Email != nil {
		e := models.NormalizeEmail(*upd.Email)
		email = &e
	}
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{
		"id":        id,
		"username":  upd.Username,
		"email":     email,
		"user_type": upd.UserType,
		"status":    upd.Status,
	})
	if err != nil {
		if postgres.PgErrorCode(err) == postgres.CodeUniqueViolation {
			return utils.ErrUserExists
		}
		r.log.Error("UpdateUser failed", "user_id", id, "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE id = @id;`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		r.log.Error("DeleteUser failed", "user_id", id, "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM users;`
	var n int
	if err := r.querier.QueryRow(ctx, q).Scan(&n); err != nil {
		r.log.Error("CountUsers failed", "err", err)
		return 0, err
	}
	return n, nil
}
