package project_repository

import (
	"change-request-service/internal/domain/models"
	ports "change-request-service/internal/domain/ports/output"
	project_port "change-request-service/internal/domain/ports/output/project"
	"change-request-service/internal/infrastructure/persistence/postgres"
	"change-request-service/internal/utils"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProjectRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewProjectRepository(querier postgres.Querier, log ports.Logger) project_port.ProjectRepository {
	return &ProjectRepository{querier: querier, log: log}
}

func (r *ProjectRepository) CreateProject(ctx context.Context, p *models.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	const q = `
		INSERT INTO projects (id, title, description, created_at, updated_at)
		VALUES (@id, @title, @description, now(), now())
		RETURNING created_at, updated_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"id": p.ID, "title": p.Title, "description": p.Description})
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		if postgres.PgErrorCode(err) == postgres.CodeUniqueViolation {
			return utils.ErrProjectExists
		}
		r.log.Error("CreateProject failed", "title", p.Title, "err", err)
		return err
	}
	return nil
}

func (r *ProjectRepository) GetProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	const q = `
		SELECT id, title, description, created_at, updated_at
		FROM projects
		WHERE id = @id;
	`
	var p models.Project
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrProjectNotFound
		}
		r.log.Error("GetProjectByID failed", "project_id", id, "err", err)
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) ListProjects(ctx context.Context) ([]*models.Project, error) {
	const q = `
		SELECT id, title, description, created_at, updated_at
		FROM projects
		ORDER BY title;
	`
	rows, err := r.querier.Query(ctx, q)
	if err != nil {
		r.log.Error("ListProjects query failed", "err", err)
		return nil, err
	}
	defer rows.Close()

	res := make([]*models.Project, 0)
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			r.log.Error("ListProjects scan failed", "err", err)
			return nil, err
		}
		res = append(res, &p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, id uuid.UUID, upd models.ProjectUpdate) error {
	const q = `
		UPDATE projects
		SET title = COALESCE(@title, title),
			description = COALESCE(@description, description),
			updated_at = now()
		WHERE id = @id;
	`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"id": id, "title": upd.Title, "description": upd.Description})
	if err != nil {
		if postgres.PgErrorCode(err) == postgres.CodeUniqueViolation {
			return utils.ErrProjectExists
		}
		r.log.Error("UpdateProject failed", "project_id", id, "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM projects WHERE id = @id;`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		r.log.Error("DeleteProject failed", "project_id", id, "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrProjectNotFound
	}
	return nil
}
