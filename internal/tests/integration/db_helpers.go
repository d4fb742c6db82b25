//go:build integration

package integration

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaTables are the tables the migrations create and resetDB empties.
var schemaTables = []string{"users", "projects", "user_projects", "change_requests"}

func TruncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE TABLE "+strings.Join(schemaTables, ", ")+" RESTART IDENTITY CASCADE")
	return err
}

func resetDB(t *testing.T) {
	t.Helper()
	if db == nil {
		t.Fatal("postgres container not initialized")
	}
	if err := TruncateAll(suiteCtx, db.Pool); err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func insertUser(t *testing.T, username, userType, status string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Pool.Exec(suiteCtx,
		`INSERT INTO users(id, username, email, password_hash, user_type, status) VALUES ($1,$2,$3,'x',$4,$5)`,
		id, username, username+"@example.com", userType, status)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return id
}

func insertProject(t *testing.T, title string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Pool.Exec(suiteCtx, `INSERT INTO projects(id, title, description) VALUES ($1,$2,'')`, id, title)
	if err != nil {
		t.Fatalf("insert project: %v", err)
	}
	return id
}

func insertChangeRequest(t *testing.T, userID, projectID uuid.UUID, status string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Pool.Exec(suiteCtx,
		`INSERT INTO change_requests(id, description, project_id, user_id, request_type, status) VALUES ($1,'seed',$2,$3,'bug_fix',$4)`,
		id, projectID, userID, status)
	if err != nil {
		t.Fatalf("insert change request: %v", err)
	}
	return id
}
