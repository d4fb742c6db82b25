package client

import "context"

// RequestList is a read-only change request list backed by one query.
type RequestList struct {
	viewState
	api      *Client
	query    Query
	failMsg  string
	requests []ChangeRequest
}

// NewRolledBackList lists rolled back requests.
func NewRolledBackList(api *Client) *RequestList {
	return &RequestList{api: api, query: Query{Status: StatusRolledBack}, failMsg: "Failed to fetch rolled back requests"}
}

// NewHistory lists the change requests of one user.
func NewHistory(api *Client, userID string) *RequestList {
	return &RequestList{api: api, query: Query{UserID: userID}, failMsg: "Failed to fetch change request history"}
}

// NewProjectRequests lists the change requests filed against one project.
func NewProjectRequests(api *Client, projectID string) *RequestList {
	return &RequestList{api: api, query: Query{ProjectID: projectID}, failMsg: "Failed to load project data"}
}

func (l *RequestList) Load(ctx context.Context) error {
	l.mu.Lock()
	l.loading = true
	l.err = ""
	l.mu.Unlock()

	list, err := l.api.QueryChangeRequests(ctx, l.query)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		l.err = l.failMsg
		return err
	}
	l.requests = list
	return nil
}

func (l *RequestList) Requests() []ChangeRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]ChangeRequest(nil), l.requests...)
}

// UsersList is the admin's user table.
type UsersList struct {
	viewState
	api   *Client
	users []User
}

func NewUsersList(api *Client) *UsersList {
	return &UsersList{api: api}
}

func (l *UsersList) Load(ctx context.Context) error {
	l.mu.Lock()
	l.loading = true
	l.err = ""
	l.mu.Unlock()

	users, err := l.api.ListUsers(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		l.err = MessageOr(err, "Failed to fetch users")
		return err
	}
	l.users = users
	return nil
}

func (l *UsersList) Users() []User {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]User(nil), l.users...)
}

// Delete removes the user on the server and then locally, without a refetch.
func (l *UsersList) Delete(ctx context.Context, id string) error {
	if err := l.api.DeleteUser(ctx, id); err != nil {
		l.setError(MessageOr(err, "Failed to delete user"))
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.users[:0:0]
	for _, u := range l.users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	l.users = out
	l.err = ""
	return nil
}

// ReportsView shows per-user change request counts.
type ReportsView struct {
	viewState
	api     *Client
	reports []UserReport
}

func NewReportsView(api *Client) *ReportsView {
	return &ReportsView{api: api}
}

func (v *ReportsView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.loading = true
	v.err = ""
	v.mu.Unlock()

	reports, err := v.api.Reports(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.err = MessageOr(err, "Failed to fetch reports")
		return err
	}
	v.reports = reports
	return nil
}

func (v *ReportsView) Reports() []UserReport {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]UserReport(nil), v.reports...)
}
