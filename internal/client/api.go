package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) Login(ctx context.Context, login, password string) (*Session, error) {
	var s Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, map[string]string{"username": login, "password": password}, &s); err != nil {
		return nil, err
	}
	c.token = s.Token
	return &s, nil
}

func (c *Client) Signup(ctx context.Context, username, email, password string) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	c.token = ""
	return err
}

// Me resolves the current session. The server answers {"user": {...}}.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out struct {
		Users []User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) CreateUser(ctx context.Context, nu NewUser) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPost, "/users", nil, nu, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, patch UserPatch) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(id), nil, patch, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var out struct {
		Projects []Project `json:"projects"`
	}
	if err := c.do(ctx, http.MethodGet, "/project/all-projects", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var p Project
	if err := c.do(ctx, http.MethodGet, "/project/"+url.PathEscape(id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProject(ctx context.Context, title, description string) (*Project, error) {
	var p Project
	body := map[string]string{"title": title, "description": description}
	if err := c.do(ctx, http.MethodPost, "/project/create", nil, body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, title, description *string) (*Project, error) {
	var p Project
	body := map[string]*string{"title": title, "description": description}
	if err := c.do(ctx, http.MethodPatch, "/project/"+url.PathEscape(id), nil, body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/project/"+url.PathEscape(id), nil, nil, nil)
}

// UserProjects lists the projects assigned to userID (a bare JSON array).
func (c *Client) UserProjects(ctx context.Context, userID string) ([]Project, error) {
	var out []Project
	if err := c.do(ctx, http.MethodGet, "/user-project", url.Values{"userId": {userID}}, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AssignProject(ctx context.Context, userID, projectID string) error {
	return c.do(ctx, http.MethodPost, "/user-project", nil, map[string]string{"userId": userID, "projectId": projectID}, nil)
}

func (c *Client) RevokeProject(ctx context.Context, userID, projectID string) error {
	return c.do(ctx, http.MethodDelete, "/user-project", nil, map[string]string{"userId": userID, "projectId": projectID}, nil)
}

// QueryChangeRequests accepts both a bare array and {"requests": [...]}.
func (c *Client) QueryChangeRequests(ctx context.Context, q Query) ([]ChangeRequest, error) {
	values := url.Values{}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if q.UserID != "" {
		values.Set("userId", q.UserID)
	}
	if q.ProjectID != "" {
		values.Set("projectId", q.ProjectID)
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/change-request/query", values, nil, &raw); err != nil {
		return nil, err
	}
	return decodeRequests(raw)
}

func decodeRequests(raw json.RawMessage) ([]ChangeRequest, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []ChangeRequest{}, nil
	}
	if trimmed[0] == '[' {
		var list []ChangeRequest
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode change requests: %w", err)
		}
		return list, nil
	}
	var wrapped struct {
		Requests []ChangeRequest `json:"requests"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("decode change requests: %w", err)
	}
	if wrapped.Requests == nil {
		return []ChangeRequest{}, nil
	}
	return wrapped.Requests, nil
}

func (c *Client) GetChangeRequest(ctx context.Context, id string) (*ChangeRequest, error) {
	var cr ChangeRequest
	if err := c.do(ctx, http.MethodGet, "/change-request/"+url.PathEscape(id), nil, nil, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

type statusPatch struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// UpdateStatus sends {status, reason}; an empty reason is omitted.
func (c *Client) UpdateStatus(ctx context.Context, id, status, reason string) error {
	return c.do(ctx, http.MethodPatch, "/change-request/"+url.PathEscape(id), nil, statusPatch{Status: status, Reason: reason}, nil)
}

func (c *Client) CreateChangeRequest(ctx context.Context, projectID, requestType, description string) (*ChangeRequest, error) {
	var cr ChangeRequest
	body := map[string]string{"projectId": projectID, "request_type": requestType, "description": description}
	if err := c.do(ctx, http.MethodPost, "/change-request/create", nil, body, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

func (c *Client) Reports(ctx context.Context) ([]UserReport, error) {
	var out struct {
		Reports []UserReport `json:"reports"`
	}
	if err := c.do(ctx, http.MethodGet, "/change-request/all-users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Reports, nil
}
