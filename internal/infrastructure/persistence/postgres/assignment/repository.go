package assignment_repository

import (
	"change-request-service/internal/domain/models"
	ports "change-request-service/internal/domain/ports/output"
	assignment_port "change-request-service/internal/domain/ports/output/assignment"
	"change-request-service/internal/infrastructure/persistence/postgres"
	"change-request-service/internal/utils"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type AssignmentRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewAssignmentRepository(querier postgres.Querier, log ports.Logger) assignment_port.AssignmentRepository {
	return &AssignmentRepository{querier: querier, log: log}
}

func (r *AssignmentRepository) ListProjectsByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Project, error) {
	const q = `
		SELECT p.id, p.title, p.description, p.created_at, p.updated_at
		FROM projects p
		JOIN user_projects up ON up.project_id = p.id
		WHERE up.user_id = @user_id
		ORDER BY up.assigned_at, p.title;
	`
	rows, err := r.querier.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		r.log.Error("ListProjectsByUserID query failed", "user_id", userID, "err", err)
		return nil, err
	}
	defer rows.Close()

	res := make([]*models.Project, 0)
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			r.log.Error("ListProjectsByUserID scan failed", "user_id", userID, "err", err)
			return nil, err
		}
		res = append(res, &p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (r *AssignmentRepository) Assign(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	const q = `
		INSERT INTO user_projects (user_id, project_id, assigned_at)
		VALUES (@user_id, @project_id, now());
	`
	if _, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "project_id": projectID}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case postgres.CodeUniqueViolation:
				return utils.ErrAlreadyAssigned
			case postgres.CodeForeignKeyViolation:
				if strings.Contains(strings.ToLower(pgErr.ConstraintName), "project_id") {
					return utils.ErrProjectNotFound
				}
				return utils.ErrUserNotFound
			}
		}
		r.log.Error("Assign failed", "user_id", userID, "project_id", projectID, "err", err)
		return err
	}
	return nil
}

func (r *AssignmentRepository) Revoke(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	const q = `DELETE FROM user_projects WHERE user_id = @user_id AND project_id = @project_id;`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "project_id": projectID})
	if err != nil {
		r.log.Error("Revoke failed", "user_id", userID, "project_id", projectID, "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNotAssigned
	}
	return nil
}

func (r *AssignmentRepository) IsAssigned(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM user_projects WHERE user_id = @user_id AND project_id = @project_id
		);
	`
	var ok bool
	if err := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "project_id": projectID}).Scan(&ok); err != nil {
		r.log.Error("IsAssigned failed", "user_id", userID, "project_id", projectID, "err", err)
		return false, err
	}
	return ok, nil
}
