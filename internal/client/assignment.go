package client

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// AssignmentView manages which projects are assigned to one user.
type AssignmentView struct {
	viewState
	api    *Client
	userID string

	user     *User
	current  []Project
	all      []Project
	requests []ChangeRequest
}

func NewAssignmentView(api *Client, userID string) *AssignmentView {
	return &AssignmentView{api: api, userID: strings.TrimSpace(userID)}
}

// Load fetches the user, their projects, their change requests and every
// project concurrently. Any failure fails the whole load.
func (v *AssignmentView) Load(ctx context.Context) error {
	if v.userID == "" {
		v.setError("User doesn't exist")
		return validationError("User doesn't exist")
	}
	v.mu.Lock()
	v.loading = true
	v.err = ""
	v.mu.Unlock()

	var (
		user     *User
		current  []Project
		requests []ChangeRequest
		all      []Project
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = v.api.GetUser(gctx, v.userID)
		return err
	})
	g.Go(func() error {
		var err error
		current, err = v.api.UserProjects(gctx, v.userID)
		return err
	})
	g.Go(func() error {
		var err error
		requests, err = v.api.QueryChangeRequests(gctx, Query{UserID: v.userID})
		return err
	})
	g.Go(func() error {
		var err error
		all, err = v.api.ListProjects(gctx)
		return err
	})
	err := g.Wait()

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.err = "Failed to load user or projects"
		return err
	}
	v.user, v.current, v.requests, v.all = user, current, requests, all
	return nil
}

func (v *AssignmentView) User() *User {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.user
}

func (v *AssignmentView) ChangeRequests() []ChangeRequest {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]ChangeRequest(nil), v.requests...)
}

// Assignable is every project not yet assigned, in the order of all projects.
func (v *AssignmentView) Assignable() []Project {
	v.mu.Lock()
	defer v.mu.Unlock()
	assigned := make(map[string]struct{}, len(v.current))
	for _, p := range v.current {
		assigned[p.ID] = struct{}{}
	}
	out := make([]Project, 0, len(v.all))
	for _, p := range v.all {
		if _, ok := assigned[p.ID]; !ok {
			out = append(out, p)
		}
	}
	return out
}

func (v *AssignmentView) Revocable() []Project {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Project(nil), v.current...)
}

func findByTitle(projects []Project, title string) (Project, bool) {
	for _, p := range projects {
		if p.Title == title {
			return p, true
		}
	}
	return Project{}, false
}

// Assign looks title up among all projects, assigns it and refetches the
// user's projects.
func (v *AssignmentView) Assign(ctx context.Context, title string) error {
	v.mu.Lock()
	p, ok := findByTitle(v.all, title)
	v.mu.Unlock()
	if !ok {
		v.setError("Project not found")
		return ErrNotFound
	}
	if err := v.api.AssignProject(ctx, v.userID, p.ID); err != nil {
		v.setError("Failed to assign project")
		return err
	}
	return v.refreshCurrent(ctx)
}

// Revoke looks title up among the user's current projects.
func (v *AssignmentView) Revoke(ctx context.Context, title string) error {
	v.mu.Lock()
	p, ok := findByTitle(v.current, title)
	v.mu.Unlock()
	if !ok {
		v.setError("Project not found for revoking")
		return ErrNotFound
	}
	if err := v.api.RevokeProject(ctx, v.userID, p.ID); err != nil {
		v.setError("Failed to revoke project")
		return err
	}
	return v.refreshCurrent(ctx)
}

func (v *AssignmentView) refreshCurrent(ctx context.Context) error {
	current, err := v.api.UserProjects(ctx, v.userID)
	if err != nil {
		v.setError("Failed to load user or projects")
		return err
	}
	v.mu.Lock()
	v.current = current
	v.err = ""
	v.mu.Unlock()
	return nil
}
