package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"

	"change-request-service/internal/client"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type statusCall struct {
	ID     string
	Status string
	Reason *string
}

// backend is an in-memory stand-in for the REST API.
type backend struct {
	mu sync.Mutex

	me        *client.User
	users     []client.User
	projects  []client.Project
	assigned  map[string][]string
	requests  []client.ChangeRequest
	wrapQuery bool
	nullMe    bool

	// when set, status updates signal entered and wait on release
	entered chan struct{}
	release chan struct{}

	fail        map[string]int
	calls       map[string]int
	statusCalls []statusCall
	created     []map[string]string
	newUsers    []client.NewUser
}

func newBackend() *backend {
	return &backend{
		assigned: make(map[string][]string),
		fail:     make(map[string]int),
		calls:    make(map[string]int),
	}
}

func (b *backend) count(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[name]
}

func (b *backend) setFail(name string, status int) {
	b.mu.Lock()
	b.fail[name] = status
	b.mu.Unlock()
}

func (b *backend) answerNullIdentity() {
	b.mu.Lock()
	b.nullMe = true
	b.mu.Unlock()
}

func (b *backend) statuses() []statusCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]statusCall(nil), b.statusCalls...)
}

func (b *backend) createdBodies() []map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]string(nil), b.created...)
}

func (b *backend) createdUsers() []client.NewUser {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]client.NewUser(nil), b.newUsers...)
}

func (b *backend) projectList() []client.Project {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]client.Project(nil), b.projects...)
}

func notFound(w http.ResponseWriter, what string) {
	writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]string{"code": "NOT_FOUND", "message": what + " not found"}})
}

func (b *backend) hit(w http.ResponseWriter, name string) bool {
	b.mu.Lock()
	b.calls[name]++
	code := b.fail[name]
	b.mu.Unlock()
	if code != 0 {
		writeJSON(w, code, map[string]any{"error": map[string]string{"code": "FAILED", "message": name + " failed"}})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *backend) projectsOf(userID string) []client.Project {
	out := []client.Project{}
	for _, p := range b.projects {
		if slices.Contains(b.assigned[userID], p.ID) {
			out = append(out, p)
		}
	}
	return out
}

func (b *backend) router() http.Handler {
	r := chi.NewRouter()
	r.Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "me") {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.nullMe {
			writeJSON(w, http.StatusOK, map[string]any{"user": nil})
			return
		}
		if b.me == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": map[string]string{"code": "UNAUTHORIZED", "message": "unauthorized"}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"user": b.me})
	})
	r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "users") {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"users": b.users})
	})
	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "user") {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, u := range b.users {
			if u.ID == chi.URLParam(r, "id") {
				writeJSON(w, http.StatusOK, u)
				return
			}
		}
		notFound(w, "user")
	})
	r.Post("/users", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "create-user") {
			return
		}
		var in client.NewUser
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Status == "" {
			in.Status = "active"
		}
		b.mu.Lock()
		b.newUsers = append(b.newUsers, in)
		b.mu.Unlock()
		writeJSON(w, http.StatusCreated, client.User{ID: "u-new", Username: in.Username, Email: in.Email, UserType: in.UserType, Status: in.Status})
	})
	r.Post("/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "signup") {
			return
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		b.newUsers = append(b.newUsers, client.NewUser{Username: in["username"], Email: in["email"], Password: in["password"]})
		b.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{"user": client.User{
			ID: "u-signup", Username: in["username"], Email: in["email"], UserType: client.RoleDeveloper, Status: "pending",
		}})
	})
	r.Patch("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "update-user") {
			return
		}
		var patch client.UserPatch
		_ = json.NewDecoder(r.Body).Decode(&patch)
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, u := range b.users {
			if u.ID != chi.URLParam(r, "id") {
				continue
			}
			if patch.Username != nil {
				b.users[i].Username = *patch.Username
			}
			if patch.UserType != nil {
				b.users[i].UserType = *patch.UserType
			}
			if patch.Status != nil {
				b.users[i].Status = *patch.Status
			}
			writeJSON(w, http.StatusOK, b.users[i])
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	r.Delete("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "delete-user") {
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/project/all-projects", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "projects") {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"projects": b.projects})
	})
	r.Post("/project/create", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "create-project") {
			return
		}
		var in client.Project
		_ = json.NewDecoder(r.Body).Decode(&in)
		in.ID = "p-new"
		writeJSON(w, http.StatusCreated, in)
	})
	r.Get("/project/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "project") {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, p := range b.projects {
			if p.ID == chi.URLParam(r, "id") {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
		notFound(w, "project")
	})
	r.Patch("/project/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "update-project") {
			return
		}
		var in struct {
			Title       *string `json:"title"`
			Description *string `json:"description"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, p := range b.projects {
			if p.ID != chi.URLParam(r, "id") {
				continue
			}
			if in.Title != nil {
				b.projects[i].Title = *in.Title
			}
			if in.Description != nil {
				b.projects[i].Description = *in.Description
			}
			writeJSON(w, http.StatusOK, b.projects[i])
			return
		}
		notFound(w, "project")
	})
	r.Delete("/project/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "delete-project") {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		n := len(b.projects)
		b.projects = slices.DeleteFunc(b.projects, func(p client.Project) bool { return p.ID == chi.URLParam(r, "id") })
		if len(b.projects) == n {
			notFound(w, "project")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/user-project", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "user-projects") {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.projectsOf(r.URL.Query().Get("userId")))
	})
	r.Post("/user-project", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "assign") {
			return
		}
		var in struct {
			UserID    string `json:"userId"`
			ProjectID string `json:"projectId"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		b.assigned[in.UserID] = append(b.assigned[in.UserID], in.ProjectID)
		b.mu.Unlock()
		writeJSON(w, http.StatusCreated, in)
	})
	r.Delete("/user-project", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "revoke") {
			return
		}
		var in struct {
			UserID    string `json:"userId"`
			ProjectID string `json:"projectId"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		b.assigned[in.UserID] = slices.DeleteFunc(b.assigned[in.UserID], func(id string) bool { return id == in.ProjectID })
		b.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/change-request/query", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "query") {
			return
		}
		q := r.URL.Query()
		b.mu.Lock()
		defer b.mu.Unlock()
		out := []client.ChangeRequest{}
		for _, cr := range b.requests {
			if s := q.Get("status"); s != "" && cr.Status != s {
				continue
			}
			if u := q.Get("userId"); u != "" && cr.UserID != u {
				continue
			}
			if p := q.Get("projectId"); p != "" && cr.ProjectID != p {
				continue
			}
			out = append(out, cr)
		}
		if b.wrapQuery {
			writeJSON(w, http.StatusOK, map[string]any{"requests": out})
			return
		}
		writeJSON(w, http.StatusOK, out)
	})
	r.Post("/change-request/create", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "create") {
			return
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		b.created = append(b.created, in)
		b.mu.Unlock()
		writeJSON(w, http.StatusCreated, client.ChangeRequest{
			ID: "cr-new", ProjectID: in["projectId"], RequestType: in["request_type"],
			Description: in["description"], Status: client.StatusPending,
		})
	})
	r.Patch("/change-request/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "status") {
			return
		}
		if b.release != nil {
			b.entered <- struct{}{}
			<-b.release
		}
		var in struct {
			Status string  `json:"status"`
			Reason *string `json:"reason"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		b.statusCalls = append(b.statusCalls, statusCall{ID: chi.URLParam(r, "id"), Status: in.Status, Reason: in.Reason})
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"id": chi.URLParam(r, "id"), "status": in.Status})
	})
	r.Get("/change-request/all-users", func(w http.ResponseWriter, r *http.Request) {
		if !b.hit(w, "reports") {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		reports := make([]client.UserReport, 0, len(b.users))
		for _, u := range b.users {
			rep := client.UserReport{User: u}
			for _, cr := range b.requests {
				if cr.UserID == u.ID {
					rep.Total++
				}
			}
			reports = append(reports, rep)
		}
		writeJSON(w, http.StatusOK, map[string]any{"reports": reports})
	})
	return r
}

func newTestClient(t *testing.T, b *backend) *client.Client {
	t.Helper()
	srv := httptest.NewServer(b.router())
	t.Cleanup(srv.Close)
	c, err := client.New(srv.URL, client.WithHTTPClient(srv.Client()), client.WithToken("token"))
	require.NoError(t, err)
	return c
}
