package client

import (
	"context"
	"slices"
	"strings"
)

// Forms expose their inputs as fields. Callers edit the fields from the goroutine
// that owns the form; the form methods read and clear them under the view lock.

const fillAllFields = "Please fill in all fields"

// MinPasswordLength matches the server's signup rule.
const MinPasswordLength = 6

// ChangeRequestForm is the developer's submission form.
type ChangeRequestForm struct {
	viewState
	api *Client

	Description string
	ProjectID   string
	RequestType string
}

func NewChangeRequestForm(api *Client) *ChangeRequestForm {
	return &ChangeRequestForm{api: api}
}

func (f *ChangeRequestForm) snapshot() (string, string, string, error) {
	f.mu.Lock()
	desc := strings.TrimSpace(f.Description)
	pid := strings.TrimSpace(f.ProjectID)
	rt := strings.ToLower(strings.TrimSpace(f.RequestType))
	f.mu.Unlock()
	if desc == "" || pid == "" || rt == "" {
		return "", "", "", validationError(fillAllFields)
	}
	if !slices.Contains(RequestTypes, rt) {
		return "", "", "", validationError("Unknown request type")
	}
	return desc, pid, rt, nil
}

// Submit posts the request exactly once and clears the form on success.
// Invalid input never reaches the server.
func (f *ChangeRequestForm) Submit(ctx context.Context) (*ChangeRequest, error) {
	desc, pid, rt, err := f.snapshot()
	if err != nil {
		f.setError(err.Error())
		return nil, err
	}
	f.mu.Lock()
	f.loading = true
	f.err = ""
	f.mu.Unlock()

	cr, err := f.api.CreateChangeRequest(ctx, pid, rt, desc)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		f.err = MessageOr(err, "Failed to submit change request")
		return nil, err
	}
	f.Description, f.ProjectID, f.RequestType = "", "", ""
	return cr, nil
}

// ProjectForm creates a project.
type ProjectForm struct {
	viewState
	api *Client

	Title       string
	Description string
}

func NewProjectForm(api *Client) *ProjectForm {
	return &ProjectForm{api: api}
}

func (f *ProjectForm) Submit(ctx context.Context) (*Project, error) {
	f.mu.Lock()
	title := strings.TrimSpace(f.Title)
	desc := strings.TrimSpace(f.Description)
	f.mu.Unlock()
	if title == "" || desc == "" {
		f.setError(fillAllFields)
		return nil, validationError(fillAllFields)
	}
	f.mu.Lock()
	f.loading = true
	f.err = ""
	f.mu.Unlock()

	p, err := f.api.CreateProject(ctx, title, desc)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		f.err = MessageOr(err, "Failed to create project")
		return nil, err
	}
	f.Title, f.Description = "", ""
	return p, nil
}

// ProjectEditForm edits or deletes one existing project.
type ProjectEditForm struct {
	viewState
	api       *Client
	projectID string

	Title       string
	Description string
}

func NewProjectEditForm(api *Client, projectID string) *ProjectEditForm {
	return &ProjectEditForm{api: api, projectID: strings.TrimSpace(projectID)}
}

// Load fills the form from the stored project.
func (f *ProjectEditForm) Load(ctx context.Context) error {
	if f.projectID == "" {
		f.setError("Project doesn't exist")
		return validationError("Project doesn't exist")
	}
	f.mu.Lock()
	f.loading = true
	f.err = ""
	f.mu.Unlock()

	p, err := f.api.GetProject(ctx, f.projectID)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		f.err = MessageOr(err, "Failed to load project data")
		return err
	}
	f.Title, f.Description = p.Title, p.Description
	return nil
}

// Save sends both fields; a blank one is rejected locally.
func (f *ProjectEditForm) Save(ctx context.Context) (*Project, error) {
	f.mu.Lock()
	title := strings.TrimSpace(f.Title)
	desc := strings.TrimSpace(f.Description)
	f.mu.Unlock()
	if f.projectID == "" {
		f.setError("Project doesn't exist")
		return nil, validationError("Project doesn't exist")
	}
	if title == "" || desc == "" {
		f.setError(fillAllFields)
		return nil, validationError(fillAllFields)
	}
	p, err := f.api.UpdateProject(ctx, f.projectID, &title, &desc)
	if err != nil {
		f.setError(MessageOr(err, "Failed to update project"))
		return nil, err
	}
	f.mu.Lock()
	f.Title, f.Description = p.Title, p.Description
	f.err = ""
	f.mu.Unlock()
	return p, nil
}

func (f *ProjectEditForm) Delete(ctx context.Context) error {
	if f.projectID == "" {
		f.setError("Project doesn't exist")
		return validationError("Project doesn't exist")
	}
	if err := f.api.DeleteProject(ctx, f.projectID); err != nil {
		f.setError(MessageOr(err, "Failed to delete project"))
		return err
	}
	f.mu.Lock()
	f.Title, f.Description = "", ""
	f.err = ""
	f.mu.Unlock()
	return nil
}

// AddUserForm is the admin's form for creating an account directly.
type AddUserForm struct {
	viewState
	api *Client

	Username string
	Email    string
	Password string
	UserType string
	Status   string
}

func NewAddUserForm(api *Client) *AddUserForm {
	return &AddUserForm{api: api}
}

// Submit creates the user and clears the form. An empty status is left to
// the server, which defaults it to active.
func (f *AddUserForm) Submit(ctx context.Context) (*User, error) {
	f.mu.Lock()
	nu := NewUser{
		Username: strings.TrimSpace(f.Username),
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
		UserType: strings.ToLower(strings.TrimSpace(f.UserType)),
		Status:   strings.ToLower(strings.TrimSpace(f.Status)),
	}
	f.mu.Unlock()
	if nu.Username == "" || nu.Email == "" || nu.Password == "" || nu.UserType == "" {
		f.setError(fillAllFields)
		return nil, validationError(fillAllFields)
	}
	u, err := f.api.CreateUser(ctx, nu)
	if err != nil {
		f.setError(MessageOr(err, "User wasn't created"))
		return nil, err
	}
	f.mu.Lock()
	f.Username, f.Email, f.Password, f.UserType, f.Status = "", "", "", "", ""
	f.err = ""
	f.mu.Unlock()
	return u, nil
}

// SignupForm registers a developer account that waits for an admin.
type SignupForm struct {
	viewState
	api *Client

	Username string
	Email    string
	Password string
}

func NewSignupForm(api *Client) *SignupForm {
	return &SignupForm{api: api}
}

func (f *SignupForm) Submit(ctx context.Context) (*User, error) {
	f.mu.Lock()
	username := strings.TrimSpace(f.Username)
	email := strings.TrimSpace(f.Email)
	password := f.Password
	f.mu.Unlock()
	if username == "" || email == "" || password == "" {
		f.setError(fillAllFields)
		return nil, validationError(fillAllFields)
	}
	if len(password) < MinPasswordLength {
		f.setError("Password must be at least 6 characters")
		return nil, validationError("Password must be at least 6 characters")
	}
	u, err := f.api.Signup(ctx, username, email, password)
	if err != nil {
		f.setError(MessageOr(err, "Failed to sign up"))
		return nil, err
	}
	f.mu.Lock()
	f.Username, f.Email, f.Password = "", "", ""
	f.err = ""
	f.mu.Unlock()
	return u, nil
}

// UserForm is the admin's edit form for one user.
type UserForm struct {
	viewState
	api    *Client
	userID string

	Username string
	UserType string
	Status   string
}

func NewUserForm(api *Client, userID string) *UserForm {
	return &UserForm{api: api, userID: strings.TrimSpace(userID)}
}

// Load fills the form from the stored user.
func (f *UserForm) Load(ctx context.Context) error {
	if f.userID == "" {
		f.setError("User doesn't exist")
		return validationError("User doesn't exist")
	}
	u, err := f.api.GetUser(ctx, f.userID)
	if err != nil {
		f.setError(MessageOr(err, "Failed to load user"))
		return err
	}
	f.mu.Lock()
	f.Username, f.UserType, f.Status = u.Username, u.UserType, u.Status
	f.err = ""
	f.mu.Unlock()
	return nil
}

// Save patches only the fields that are filled in.
func (f *UserForm) Save(ctx context.Context) (*User, error) {
	var patch UserPatch
	f.mu.Lock()
	if s := strings.TrimSpace(f.Username); s != "" {
		patch.Username = &s
	}
	if s := strings.TrimSpace(f.UserType); s != "" {
		patch.UserType = &s
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		patch.Status = &s
	}
	f.mu.Unlock()
	if patch.Username == nil && patch.UserType == nil && patch.Status == nil {
		f.setError("Nothing to save")
		return nil, validationError("Nothing to save")
	}
	u, err := f.api.UpdateUser(ctx, f.userID, patch)
	if err != nil {
		f.setError(MessageOr(err, "Failed to save changes"))
		return nil, err
	}
	f.setError("")
	return u, nil
}
