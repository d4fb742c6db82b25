package uow

import (
	ports "change-request-service/internal/domain/ports/output"
	assignment_port "change-request-service/internal/domain/ports/output/assignment"
	cr_port "change-request-service/internal/domain/ports/output/changerequest"
	project_port "change-request-service/internal/domain/ports/output/project"
	user_port "change-request-service/internal/domain/ports/output/user"

	"change-request-service/internal/domain/ports/output/uow"
	assignment_repo "change-request-service/internal/infrastructure/persistence/postgres/assignment"
	cr_repo "change-request-service/internal/infrastructure/persistence/postgres/changerequest"
	project_repo "change-request-service/internal/infrastructure/persistence/postgres/project"
	user_repo "change-request-service/internal/infrastructure/persistence/postgres/user"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
	log  ports.Logger
}

func NewPostgresUOW(pool *pgxpool.Pool, log ports.Logger) uow.UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log}
}

func (u *PostgresUnitOfWork) Begin(ctx context.Context) (uow.Transaction, error) {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: u.log}, nil
}

type PostgresTransaction struct {
	tx  pgx.Tx
	log ports.Logger
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) UserRepository() user_port.UserRepository {
	return user_repo.NewUserRepository(t.tx, t.log)
}

func (t *PostgresTransaction) ProjectRepository() project_port.ProjectRepository {
	return project_repo.NewProjectRepository(t.tx, t.log)
}

func (t *PostgresTransaction) AssignmentRepository() assignment_port.AssignmentRepository {
	return assignment_repo.NewAssignmentRepository(t.tx, t.log)
}

func (t *PostgresTransaction) ChangeRequestRepository() cr_port.ChangeRequestRepository {
	return cr_repo.NewChangeRequestRepository(t.tx, t.log)
}
