package client

import "time"

const (
	RoleAdmin     = "admin"
	RoleApprover  = "approver"
	RoleDeveloper = "developer"
)

const (
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusRolledBack = "rolledback"
	StatusDeployed   = "deployed"
)

var RequestTypes = []string{"new_feature", "edited_feature", "bug_fix", "updates"}

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ChangeRequest struct {
	ID             string     `json:"id"`
	Description    string     `json:"description"`
	ProjectID      string     `json:"projectId"`
	UserID         string     `json:"userId"`
	Project        *Project   `json:"project,omitempty"`
	User           *User      `json:"user,omitempty"`
	RequestType    string     `json:"request_type"`
	Status         string     `json:"status"`
	Reason         *string    `json:"reason,omitempty"`
	DeploymentDate *time.Time `json:"deployment_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type UserReport struct {
	User       User `json:"user"`
	Total      int  `json:"total"`
	Pending    int  `json:"pending"`
	Approved   int  `json:"approved"`
	RolledBack int  `json:"rolledback"`
	Deployed   int  `json:"deployed"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// Query filters /change-request/query. Empty fields are not sent.
type Query struct {
	Status    string
	UserID    string
	ProjectID string
}

type UserPatch struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	UserType *string `json:"user_type,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type NewUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
	Status   string `json:"status,omitempty"`
}
