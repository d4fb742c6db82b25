package client_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"change-request-service/internal/client"

	"github.com/stretchr/testify/require"
)

func pendingBackend() *backend {
	b := newBackend()
	b.requests = []client.ChangeRequest{
		{ID: "a", Status: client.StatusPending},
		{ID: "b", Status: client.StatusPending},
		{ID: "c", Status: client.StatusApproved},
	}
	return b
}

func TestPendingReview_Approve(t *testing.T) {
	b := pendingBackend()
	v := client.NewPendingReview(newTestClient(t, b))
	ctx := context.Background()

	require.NoError(t, v.Load(ctx))
	require.Len(t, v.Requests(), 2)

	require.True(t, v.TogglePanel("a"))
	v.SetReason("a", "   ")
	require.NoError(t, v.Approve(ctx, "a"))

	require.Len(t, b.statuses(), 1)
	require.Equal(t, client.StatusApproved, b.statuses()[0].Status)
	require.Nil(t, b.statuses()[0].Reason)
	require.Len(t, v.Requests(), 1)
	require.Equal(t, "b", v.Requests()[0].ID)
	require.False(t, v.PanelOpen("a"))
	require.Empty(t, v.Reason("a"))
	require.Empty(t, v.ErrorMessage())
}

func TestPendingReview_ApproveSendsTrimmedReason(t *testing.T) {
	b := pendingBackend()
	v := client.NewPendingReview(newTestClient(t, b))
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	v.SetReason("b", "  looks good  ")
	require.NoError(t, v.Approve(ctx, "b"))
	require.Equal(t, "looks good", *b.statuses()[0].Reason)
}

func TestPendingReview_RollbackRequiresReason(t *testing.T) {
	b := pendingBackend()
	v := client.NewPendingReview(newTestClient(t, b))
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	err := v.Rollback(ctx, "a")
	var verr *client.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Reason is required for rollbacks", v.ErrorMessage())
	require.Zero(t, b.count("status"))
	require.Len(t, v.Requests(), 2)

	v.SetReason("a", " breaks login ")
	require.NoError(t, v.Rollback(ctx, "a"))
	require.Equal(t, client.StatusRolledBack, b.statuses()[0].Status)
	require.Equal(t, "breaks login", *b.statuses()[0].Reason)
	require.Len(t, v.Requests(), 1)
}

func TestPendingReview_FailureKeepsItem(t *testing.T) {
	b := pendingBackend()
	v := client.NewPendingReview(newTestClient(t, b))
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	b.setFail("status", http.StatusConflict)
	require.Error(t, v.Approve(ctx, "a"))
	require.Equal(t, "Failed to approved request", v.ErrorMessage())
	require.Len(t, v.Requests(), 2)
	require.False(t, v.Processing("a"))
}

func TestPendingReview_LoadFailure(t *testing.T) {
	b := pendingBackend()
	b.setFail("query", http.StatusInternalServerError)
	v := client.NewPendingReview(newTestClient(t, b))

	require.Error(t, v.Load(context.Background()))
	require.Equal(t, "Failed to fetch pending requests", v.ErrorMessage())
	require.False(t, v.Loading())
}

func TestPendingReview_ProcessingGuard(t *testing.T) {
	b := pendingBackend()
	b.entered = make(chan struct{})
	b.release = make(chan struct{})
	v := client.NewPendingReview(newTestClient(t, b))
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	done := make(chan error, 1)
	go func() { done <- v.Approve(ctx, "a") }()
	<-b.entered

	require.True(t, v.Processing("a"))
	require.ErrorIs(t, v.Approve(ctx, "a"), client.ErrInProgress)

	close(b.release)
	require.NoError(t, <-done)
	require.False(t, v.Processing("a"))
	require.Equal(t, 1, b.count("status"))
}

func TestDeploymentQueue_MarkDeployed(t *testing.T) {
	b := pendingBackend()
	v := client.NewDeploymentQueue(newTestClient(t, b))
	ctx := context.Background()

	require.NoError(t, v.Load(ctx))
	require.Len(t, v.Requests(), 1)

	require.NoError(t, v.MarkDeployed(ctx, "c"))
	require.Empty(t, v.Requests())
	require.Equal(t, client.StatusDeployed, b.statuses()[0].Status)
	require.Nil(t, b.statuses()[0].Reason)
}

func TestDeploymentQueue_Failure(t *testing.T) {
	b := pendingBackend()
	v := client.NewDeploymentQueue(newTestClient(t, b))
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	b.setFail("status", http.StatusConflict)
	require.Error(t, v.MarkDeployed(ctx, "c"))
	require.Equal(t, "Failed to mark as deployed", v.ErrorMessage())
	require.Len(t, v.Requests(), 1)
}

func assignmentBackend() *backend {
	b := newBackend()
	b.users = []client.User{{ID: "u1", Username: "dev", UserType: client.RoleDeveloper}}
	b.projects = []client.Project{
		{ID: "p1", Title: "Alpha"},
		{ID: "p2", Title: "Beta"},
		{ID: "p3", Title: "Gamma"},
	}
	b.assigned["u1"] = []string{"p2"}
	b.requests = []client.ChangeRequest{{ID: "cr1", UserID: "u1", ProjectID: "p2"}}
	return b
}

func titles(ps []client.Project) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func TestAssignmentView_LoadPartitionsProjects(t *testing.T) {
	b := assignmentBackend()
	v := client.NewAssignmentView(newTestClient(t, b), "u1")

	require.NoError(t, v.Load(context.Background()))
	require.Equal(t, "dev", v.User().Username)
	require.Len(t, v.ChangeRequests(), 1)
	require.Equal(t, []string{"Alpha", "Gamma"}, titles(v.Assignable()))
	require.Equal(t, []string{"Beta"}, titles(v.Revocable()))
	require.Len(t, append(v.Assignable(), v.Revocable()...), 3)
}

func TestAssignmentView_AssignAndRevoke(t *testing.T) {
	b := assignmentBackend()
	v := client.NewAssignmentView(newTestClient(t, b), "u1")
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	require.NoError(t, v.Assign(ctx, "Gamma"))
	require.Equal(t, []string{"Alpha"}, titles(v.Assignable()))
	require.ElementsMatch(t, []string{"Beta", "Gamma"}, titles(v.Revocable()))

	require.NoError(t, v.Revoke(ctx, "Beta"))
	require.ElementsMatch(t, []string{"Alpha", "Beta"}, titles(v.Assignable()))
	require.Equal(t, []string{"Gamma"}, titles(v.Revocable()))
}

func TestAssignmentView_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing user id", func(t *testing.T) {
		b := assignmentBackend()
		v := client.NewAssignmentView(newTestClient(t, b), " ")
		require.Error(t, v.Load(ctx))
		require.Equal(t, "User doesn't exist", v.ErrorMessage())
		require.Zero(t, b.count("user"))
	})

	t.Run("any load fails", func(t *testing.T) {
		b := assignmentBackend()
		b.setFail("projects", http.StatusInternalServerError)
		v := client.NewAssignmentView(newTestClient(t, b), "u1")
		require.Error(t, v.Load(ctx))
		require.Equal(t, "Failed to load user or projects", v.ErrorMessage())
	})

	t.Run("unknown titles", func(t *testing.T) {
		b := assignmentBackend()
		v := client.NewAssignmentView(newTestClient(t, b), "u1")
		require.NoError(t, v.Load(ctx))

		require.ErrorIs(t, v.Assign(ctx, "Nope"), client.ErrNotFound)
		require.Equal(t, "Project not found", v.ErrorMessage())
		require.ErrorIs(t, v.Revoke(ctx, "Alpha"), client.ErrNotFound)
		require.Equal(t, "Project not found for revoking", v.ErrorMessage())
		require.Zero(t, b.count("assign"))
		require.Zero(t, b.count("revoke"))
	})

	t.Run("assign call fails", func(t *testing.T) {
		b := assignmentBackend()
		v := client.NewAssignmentView(newTestClient(t, b), "u1")
		require.NoError(t, v.Load(ctx))
		b.setFail("assign", http.StatusConflict)
		require.Error(t, v.Assign(ctx, "Alpha"))
		require.Equal(t, "Failed to assign project", v.ErrorMessage())
	})
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		role  string
		want  []string
		route string
	}{
		{role: client.RoleAdmin, want: []string{"Users", "User Information", "Projects"}, route: "/dashboards/admin"},
		{role: client.RoleApprover, want: []string{"Pending", "Approved", "Rolled back"}, route: "/dashboards/approver"},
		{role: "Developer", want: []string{"Projects", "Change Request History", "Actions"}, route: "/dashboards/developer"},
		{role: "guest", route: "/dashboards"},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			links := client.Navigation(tt.role)
			labels := make([]string, 0, len(links))
			for _, l := range links {
				labels = append(labels, l.Label)
			}
			if tt.want == nil {
				require.Empty(t, labels)
			} else {
				require.Equal(t, tt.want, labels)
				require.Equal(t, "./", links[0].Path)
			}
			require.Equal(t, tt.route, client.DefaultRoute(tt.role))
		})
	}
}

func TestShell(t *testing.T) {
	ctx := context.Background()

	t.Run("approver", func(t *testing.T) {
		b := newBackend()
		b.me = &client.User{ID: "u1", UserType: client.RoleApprover}
		s := client.NewShell(newTestClient(t, b))
		require.Empty(t, s.Links())
		require.NoError(t, s.Load(ctx))
		require.Len(t, s.Links(), 3)
		require.False(t, s.NoAccess())
	})

	t.Run("unknown role", func(t *testing.T) {
		b := newBackend()
		b.me = &client.User{ID: "u1", UserType: "auditor"}
		s := client.NewShell(newTestClient(t, b))
		require.NoError(t, s.Load(ctx))
		require.Empty(t, s.Links())
		require.True(t, s.NoAccess())
	})

	t.Run("null identity replaces an earlier user", func(t *testing.T) {
		b := newBackend()
		b.me = &client.User{ID: "a1", UserType: client.RoleAdmin}
		s := client.NewShell(newTestClient(t, b))
		require.NoError(t, s.Load(ctx))
		require.Len(t, s.Links(), 3)

		b.answerNullIdentity()
		require.Error(t, s.Load(ctx))
		require.Equal(t, "No user data received", s.ErrorMessage())
		require.Nil(t, s.User())
		require.Empty(t, s.Links())
		require.True(t, s.NoAccess())
	})

	t.Run("no session", func(t *testing.T) {
		b := newBackend()
		s := client.NewShell(newTestClient(t, b))
		require.Error(t, s.Load(ctx))
		require.Equal(t, "Authentication check failed", s.ErrorMessage())
		require.Nil(t, s.User())
	})
}

func TestGuard_Check(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		me      *client.User
		allowed []string
		want    client.Decision
	}{
		{name: "anonymous", allowed: []string{client.RoleAdmin}, want: client.Decision{Redirect: "/login"}},
		{name: "allowed", me: &client.User{UserType: client.RoleAdmin}, allowed: []string{client.RoleAdmin}, want: client.Decision{Allowed: true}},
		{name: "any role", me: &client.User{UserType: client.RoleDeveloper}, want: client.Decision{Allowed: true}},
		{name: "wrong role", me: &client.User{UserType: client.RoleDeveloper}, allowed: []string{client.RoleAdmin}, want: client.Decision{Redirect: "/dashboards/developer"}},
		{name: "unknown role", me: &client.User{UserType: "auditor"}, allowed: []string{client.RoleAdmin}, want: client.Decision{Redirect: "/dashboards"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBackend()
			b.me = tt.me
			got := client.NewGuard(newTestClient(t, b)).Check(ctx, tt.allowed...)
			require.Equal(t, tt.want.Allowed, got.Allowed)
			require.Equal(t, tt.want.Redirect, got.Redirect)
		})
	}
}

func TestChangeRequestForm_Submit(t *testing.T) {
	b := newBackend()
	f := client.NewChangeRequestForm(newTestClient(t, b))
	ctx := context.Background()

	f.Description = "  "
	f.ProjectID = "p1"
	f.RequestType = "bug_fix"
	_, err := f.Submit(ctx)
	var verr *client.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Zero(t, b.count("create"))

	f.Description = " fix login "
	f.RequestType = "rewrite"
	_, err = f.Submit(ctx)
	require.ErrorAs(t, err, &verr)
	require.Zero(t, b.count("create"))

	f.RequestType = "BUG_FIX"
	cr, err := f.Submit(ctx)
	require.NoError(t, err)
	require.Equal(t, "cr-new", cr.ID)
	require.Equal(t, 1, b.count("create"))
	require.Equal(t, map[string]string{"projectId": "p1", "request_type": "bug_fix", "description": "fix login"}, b.createdBodies()[0])
	require.Empty(t, f.Description)
	require.Empty(t, f.ProjectID)
	require.Empty(t, f.RequestType)
}

func TestProjectForm_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		b := newBackend()
		f := client.NewProjectForm(newTestClient(t, b))
		f.Title = "Alpha"
		_, err := f.Submit(ctx)
		require.Error(t, err)
		require.Equal(t, "Please fill in all fields", f.ErrorMessage())
		require.Zero(t, b.count("create-project"))
	})

	t.Run("server message", func(t *testing.T) {
		b := newBackend()
		b.setFail("create-project", http.StatusConflict)
		f := client.NewProjectForm(newTestClient(t, b))
		f.Title, f.Description = "Alpha", "first"
		_, err := f.Submit(ctx)
		require.Error(t, err)
		require.Equal(t, "create-project failed", f.ErrorMessage())
		require.Equal(t, "Alpha", f.Title)
	})

	t.Run("created", func(t *testing.T) {
		b := newBackend()
		f := client.NewProjectForm(newTestClient(t, b))
		f.Title, f.Description = " Alpha ", "first"
		p, err := f.Submit(ctx)
		require.NoError(t, err)
		require.Equal(t, "Alpha", p.Title)
		require.Empty(t, f.Title)
		require.Empty(t, f.Description)
	})
}

func TestUserForm(t *testing.T) {
	b := newBackend()
	b.users = []client.User{{ID: "u1", Username: "dev", UserType: client.RoleDeveloper, Status: "pending"}}
	f := client.NewUserForm(newTestClient(t, b), "u1")
	ctx := context.Background()

	require.NoError(t, f.Load(ctx))
	require.Equal(t, "dev", f.Username)

	f.Status = "active"
	u, err := f.Save(ctx)
	require.NoError(t, err)
	require.Equal(t, "active", u.Status)
	require.Equal(t, 1, b.count("update-user"))
}

func TestLists(t *testing.T) {
	b := newBackend()
	b.users = []client.User{{ID: "u1"}, {ID: "u2"}}
	b.requests = []client.ChangeRequest{
		{ID: "1", UserID: "u1", ProjectID: "p1", Status: client.StatusRolledBack},
		{ID: "2", UserID: "u2", ProjectID: "p1", Status: client.StatusPending},
		{ID: "3", UserID: "u1", ProjectID: "p2", Status: client.StatusDeployed},
	}
	c := newTestClient(t, b)
	ctx := context.Background()

	rolled := client.NewRolledBackList(c)
	require.NoError(t, rolled.Load(ctx))
	require.Len(t, rolled.Requests(), 1)

	history := client.NewHistory(c, "u1")
	require.NoError(t, history.Load(ctx))
	require.Len(t, history.Requests(), 2)

	byProject := client.NewProjectRequests(c, "p1")
	require.NoError(t, byProject.Load(ctx))
	require.Len(t, byProject.Requests(), 2)

	users := client.NewUsersList(c)
	require.NoError(t, users.Load(ctx))
	require.NoError(t, users.Delete(ctx, "u1"))
	require.Len(t, users.Users(), 1)
	require.Equal(t, 1, b.count("users"))

	reports := client.NewReportsView(c)
	require.NoError(t, reports.Load(ctx))
	require.Len(t, reports.Reports(), 2)
	require.Equal(t, 2, reports.Reports()[0].Total)

	b.setFail("query", http.StatusInternalServerError)
	require.Error(t, rolled.Load(ctx))
	require.Equal(t, "Failed to fetch rolled back requests", rolled.ErrorMessage())
}
