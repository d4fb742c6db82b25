//go:build integration

package integration

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"change-request-service/internal/application/assignment"
	"change-request-service/internal/application/auth"
	"change-request-service/internal/application/changerequest"
	"change-request-service/internal/application/project"
	userapp "change-request-service/internal/application/user"
	"change-request-service/internal/client"
	"change-request-service/internal/domain/ports/input"
	"change-request-service/internal/infrastructure/config"
	apihttp "change-request-service/internal/infrastructure/http"
	"change-request-service/internal/infrastructure/logger"
	"change-request-service/internal/infrastructure/persistence/postgres/uow"
	"change-request-service/internal/infrastructure/security"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stack struct {
	server *httptest.Server
	users  input.UserInputPort
}

func startStack(t *testing.T) *stack {
	t.Helper()
	resetDB(t)

	log := logger.New("test")
	u := uow.NewPostgresUOW(db.Pool, log)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	tokens := security.NewJWTIssuer("integration-secret", time.Hour)
	users := userapp.NewService(u, hasher, log)

	srv := apihttp.NewServer(":0", log, apihttp.Services{
		Auth:          auth.NewService(u, hasher, tokens, log),
		Users:         users,
		Projects:      project.NewService(u, log),
		Assignments:   assignment.NewService(u, log),
		ChangeRequest: changerequest.NewService(u, log),
	})
	cfg := &config.Config{
		Env:        "test",
		HTTPServer: config.HTTPServer{RequestTimeout: 5 * time.Second},
		Auth:       config.Auth{CookieName: "token"},
	}
	ts := httptest.NewServer(srv.Handler(cfg))
	t.Cleanup(ts.Close)
	return &stack{server: ts, users: users}
}

func (s *stack) client(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.New(s.server.URL, client.WithHTTPClient(s.server.Client()))
	require.NoError(t, err)
	return c
}

func (s *stack) login(t *testing.T, username, password string) *client.Client {
	t.Helper()
	c := s.client(t)
	_, err := c.Login(suiteCtx, username, password)
	require.NoError(t, err)
	return c
}

func TestChangeRequestLifecycle_HTTPIntegration(t *testing.T) {
	s := startStack(t)
	ctx := suiteCtx

	created, err := s.users.EnsureAdmin(ctx, "admin", "admin@example.com", "adminpass")
	require.NoError(t, err)
	require.True(t, created)
	created, err = s.users.EnsureAdmin(ctx, "admin2", "", "adminpass")
	require.NoError(t, err)
	require.False(t, created)

	admin := s.login(t, "admin", "adminpass")

	anon := s.client(t)
	dev, err := anon.Signup(ctx, "dev", "dev@example.com", "devpass1")
	require.NoError(t, err)
	require.Equal(t, "pending", dev.Status)

	_, err = s.client(t).Login(ctx, "dev", "devpass1")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.Status)

	form := client.NewUserForm(admin, dev.ID)
	require.NoError(t, form.Load(ctx))
	form.Status = "active"
	_, err = form.Save(ctx)
	require.NoError(t, err)

	_, err = admin.CreateUser(ctx, client.NewUser{Username: "appr", Email: "appr@example.com", Password: "apprpass", UserType: client.RoleApprover})
	require.NoError(t, err)

	pf := client.NewProjectForm(admin)
	pf.Title, pf.Description = "Alpha", "first project"
	alpha, err := pf.Submit(ctx)
	require.NoError(t, err)
	pf.Title, pf.Description = "Beta", "second project"
	_, err = pf.Submit(ctx)
	require.NoError(t, err)

	pf.Title, pf.Description = "Alpha", "again"
	_, err = pf.Submit(ctx)
	require.Error(t, err)
	require.NotEmpty(t, pf.ErrorMessage())

	av := client.NewAssignmentView(admin, dev.ID)
	require.NoError(t, av.Load(ctx))
	require.Len(t, av.Assignable(), 2)
	require.Empty(t, av.Revocable())
	require.NoError(t, av.Assign(ctx, "Alpha"))
	require.Len(t, av.Revocable(), 1)
	require.Len(t, av.Assignable(), 1)

	developer := s.login(t, "dev", "devpass1")

	d := client.NewGuard(developer).Check(ctx, client.RoleAdmin)
	require.False(t, d.Allowed)
	require.Equal(t, "/dashboards/developer", d.Redirect)

	crf := client.NewChangeRequestForm(developer)
	crf.ProjectID, crf.RequestType, crf.Description = alpha.ID, "bug_fix", "fix the login page"
	cr, err := crf.Submit(ctx)
	require.NoError(t, err)
	require.Equal(t, client.StatusPending, cr.Status)

	history := client.NewHistory(developer, dev.ID)
	require.NoError(t, history.Load(ctx))
	require.Len(t, history.Requests(), 1)

	approver := s.login(t, "appr", "apprpass")

	_, err = approver.CreateChangeRequest(ctx, alpha.ID, "bug_fix", "approvers cannot submit")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.Status)

	pending := client.NewPendingReview(approver)
	require.NoError(t, pending.Load(ctx))
	require.Len(t, pending.Requests(), 1)
	require.Error(t, pending.Rollback(ctx, cr.ID))
	pending.SetReason(cr.ID, "  looks right ")
	require.NoError(t, pending.Approve(ctx, cr.ID))
	require.Empty(t, pending.Requests())

	queue := client.NewDeploymentQueue(approver)
	require.NoError(t, queue.Load(ctx))
	require.Len(t, queue.Requests(), 1)
	require.NoError(t, queue.MarkDeployed(ctx, cr.ID))
	require.Empty(t, queue.Requests())

	err = approver.UpdateStatus(ctx, cr.ID, client.StatusRolledBack, "too late")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.Status)

	final, err := approver.GetChangeRequest(ctx, cr.ID)
	require.NoError(t, err)
	require.Equal(t, client.StatusDeployed, final.Status)
	require.NotNil(t, final.DeploymentDate)
	require.NotNil(t, final.Reason)
	require.Equal(t, "looks right", *final.Reason)

	reports := client.NewReportsView(admin)
	require.NoError(t, reports.Load(ctx))
	var devReport *client.UserReport
	for _, r := range reports.Reports() {
		if r.User.ID == dev.ID {
			devReport = &r
		}
	}
	require.NotNil(t, devReport)
	require.Equal(t, 1, devReport.Total)
	require.Equal(t, 1, devReport.Deployed)

	require.NoError(t, av.Revoke(ctx, "Alpha"))
	require.Empty(t, av.Revocable())
}

func TestAuth_CookieSession_HTTPIntegration(t *testing.T) {
	s := startStack(t)
	_, err := s.users.EnsureAdmin(suiteCtx, "admin", "admin@example.com", "adminpass")
	require.NoError(t, err)

	// the default client keeps the session cookie and never sends a bearer token
	c, err := client.New(s.server.URL)
	require.NoError(t, err)
	_, err = c.Login(suiteCtx, "admin@example.com", "adminpass")
	require.NoError(t, err)
	c.SetToken("")

	shell := client.NewShell(c)
	require.NoError(t, shell.Load(suiteCtx))
	require.Equal(t, "admin", shell.User().Username)
	require.Len(t, shell.Links(), 3)

	require.NoError(t, c.Logout(suiteCtx))
	require.Error(t, shell.Load(suiteCtx))
	require.Equal(t, "Authentication check failed", shell.ErrorMessage())
}

func TestAuth_EmailLoginUnaffectedBySignups_HTTPIntegration(t *testing.T) {
	s := startStack(t)
	_, err := s.users.EnsureAdmin(suiteCtx, "admin", "admin@example.com", "adminpass")
	require.NoError(t, err)

	anon := s.client(t)
	_, err = anon.Signup(suiteCtx, "admin@example.com", "squatter@example.com", "squatpass")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)

	_, err = anon.Signup(suiteCtx, "squatter", "ADMIN@example.com", "squatpass")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.Status)

	sess, err := s.client(t).Login(suiteCtx, "Admin@Example.com", "adminpass")
	require.NoError(t, err)
	require.Equal(t, "admin", sess.User.Username)
}
