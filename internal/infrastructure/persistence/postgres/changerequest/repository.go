package changerequest_repository

import (
	"change-request-service/internal/domain/models"
	ports "change-request-service/internal/domain/ports/output"
	cr_port "change-request-service/internal/domain/ports/output/changerequest"
	"change-request-service/internal/infrastructure/persistence/postgres"
	"change-request-service/internal/utils"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ChangeRequestRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewChangeRequestRepository(querier postgres.Querier, log ports.Logger) cr_port.ChangeRequestRepository {
	return &ChangeRequestRepository{querier: querier, log: log}
}

// selectJoined embeds the owning project and user so list views need no extra lookups.
const selectJoined = `
	SELECT cr.id, cr.description, cr.request_type, cr.status, cr.reason, cr.deployment_date,
	       cr.created_at, cr.updated_at,
	       p.id, p.title, p.description, p.created_at, p.updated_at,
	       u.id, u.username, u.email, u.user_type, u.status, u.created_at, u.updated_at
	FROM change_requests cr
	JOIN projects p ON p.id = cr.project_id
	JOIN users u ON u.id = cr.user_id
`

func scanJoined(row pgx.Row) (*models.ChangeRequest, error) {
	var (
		cr models.ChangeRequest
		p  models.Project
		u  models.User
	)
	if err := row.Scan(
		&cr.ID, &cr.Description, &cr.RequestType, &cr.Status, &cr.Reason, &cr.DeploymentDate,
		&cr.CreatedAt, &cr.UpdatedAt,
		&p.ID, &p.Title, &p.Description, &p.CreatedAt, &p.UpdatedAt,
		&u.ID, &u.Username, &u.Email, &u.UserType, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	cr.ProjectID = p.ID
	cr.UserID = u.ID
	cr.Project = &p
	cr.User = &u
	return &cr, nil
}

func (r *ChangeRequestRepository) CreateChangeRequest(ctx context.Context, cr *models.ChangeRequest) error {
	if cr.ID == uuid.Nil {
		cr.ID = uuid.New()
	}
	const q = `
		INSERT INTO change_requests (id, description, project_id, user_id, request_type, status, created_at, updated_at)
		VALUES (@id, @description, @project_id, @user_id, @request_type, 'pending', now(), now())
		RETURNING status, created_at, updated_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":           cr.ID,
		"description":  cr.Description,
		"project_id":   cr.ProjectID,
		"user_id":      cr.UserID,
		"request_type": cr.RequestType,
	})
	if err := row.Scan(&cr.Status, &cr.CreatedAt, &cr.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case postgres.CodeForeignKeyViolation:
				if strings.Contains(strings.ToLower(pgErr.ConstraintName), "project_id") {
					return utils.ErrProjectNotFound
				}
				return utils.ErrUserNotFound
			case postgres.CodeInvalidTextRep:
				return utils.ErrInvalidArgument
			}
		}
		r.log.Error("CreateChangeRequest failed", "project_id", cr.ProjectID, "user_id", cr.UserID, "err", err)
		return err
	}
	return nil
}

func (r *ChangeRequestRepository) GetChangeRequestByID(ctx context.Context, id uuid.UUID) (*models.ChangeRequest, error) {
	q := selectJoined + ` WHERE cr.id = @id;`
	cr, err := scanJoined(r.querier.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrChangeRequestNotFound
		}
		r.log.Error("GetChangeRequestByID failed", "change_request_id", id, "err", err)
		return nil, err
	}
	return cr, nil
}

func (r *ChangeRequestRepository) LockChangeRequestByID(ctx context.Context, id uuid.UUID) (*models.ChangeRequest, error) {
	const q = `
		SELECT id, description, project_id, user_id, request_type, status, reason, deployment_date, created_at, updated_at
		FROM change_requests
		WHERE id = @id
		FOR UPDATE;
	`
	var cr models.ChangeRequest
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	if err := row.Scan(&cr.ID, &cr.Description, &cr.ProjectID, &cr.UserID, &cr.RequestType, &cr.Status,
		&cr.Reason, &cr.DeploymentDate, &cr.CreatedAt, &cr.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrChangeRequestNotFound
		}
		r.log.Error("LockChangeRequestByID failed", "change_request_id", id, "err", err)
		return nil, err
	}
	return &cr, nil
}

func (r *ChangeRequestRepository) ListChangeRequests(ctx context.Context, filter models.ChangeRequestFilter) ([]*models.ChangeRequest, error) {
	q := selectJoined + `
		WHERE (@status::text IS NULL OR cr.status = @status::text)
		  AND (@user_id::uuid IS NULL OR cr.user_id = @user_id::uuid)
		  AND (@project_id::uuid IS NULL OR cr.project_id = @project_id::uuid)
		ORDER BY cr.updated_at DESC, cr.id;
	`
	rows, err := r.querier.Query(ctx, q, pgx.NamedArgs{
		"status":     filter.Status,
		"user_id":    filter.UserID,
		"project_id": filter.ProjectID,
	})
	if err != nil {
		r.log.Error("ListChangeRequests query failed", "err", err)
		return nil, err
	}
	defer rows.Close()

	res := make([]*models.ChangeRequest, 0)
	for rows.Next() {
		cr, err := scanJoined(rows)
		if err != nil {
			r.log.Error("ListChangeRequests scan failed", "err", err)
			return nil, err
		}
		res = append(res, cr)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (r *ChangeRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus, reason *string, deploymentDate *time.Time) error {
	const q = `
		UPDATE change_requests
		SET status = @status,
			reason = COALESCE(@reason, reason),
			deployment_date = COALESCE(@deployment_date, deployment_date),
			updated_at = now()
		WHERE id = @id;
	`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{
		"id":              id,
		"status":          status,
		"reason":          reason,
		"deployment_date": deploymentDate,
	})
	if err != nil {
		r.log.Error("UpdateStatus failed", "change_request_id", id, "status", status, "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrChangeRequestNotFound
	}
	return nil
}

func (r *ChangeRequestRepository) CountByUserAndStatus(ctx context.Context) ([]models.StatusCount, error) {
	const q = `
		SELECT user_id, status, COUNT(*)
		FROM change_requests
		GROUP BY user_id, status
		ORDER BY user_id, status;
	`
	rows, err := r.querier.Query(ctx, q)
	if err != nil {
		r.log.Error("CountByUserAndStatus query failed", "err", err)
		return nil, err
	}
	defer rows.Close()

	var res []models.StatusCount
	for rows.Next() {
		var c models.StatusCount
		if err := rows.Scan(&c.UserID, &c.Status, &c.Count); err != nil {
			r.log.Error("CountByUserAndStatus scan failed", "err", err)
			return nil, err
		}
		res = append(res, c)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}
