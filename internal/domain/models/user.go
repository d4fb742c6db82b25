package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type UserType string

const (
	UserTypeDeveloper UserType = "developer"
	UserTypeApprover  UserType = "approver"
	UserTypeAdmin     UserType = "admin"
)

// ParseUserType accepts any casing ("ADMIN", "Admin") and reports whether the
// value names a known role.
func ParseUserType(s string) (UserType, bool) {
	t := UserType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

func (t UserType) Valid() bool {
	switch t {
	case UserTypeDeveloper, UserTypeApprover, UserTypeAdmin:
		return true
	}
	return false
}

type UserStatus string

const (
	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusIdle    UserStatus = "idle"
)

func ParseUserStatus(s string) (UserStatus, bool) {
	st := UserStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.Valid()
}

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusPending, UserStatusActive, UserStatusIdle:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	UserType     UserType
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidUsername rejects blank names and names containing "@", which is
// reserved for logging in by email.
func ValidUsername(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && !strings.Contains(s, "@")
}

// NormalizeEmail is the stored form of an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// UserUpdate carries the optional fields of a partial user update.
type UserUpdate struct {
	Username *string
	Email    *string
	UserType *UserType
	Status   *UserStatus
}

func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.UserType == nil && u.Status == nil
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID   uuid.UUID
	UserType UserType
}

func (a Actor) Is(types ...UserType) bool {
	for _, t := range types {
		if a.UserType == t {
			return true
		}
	}
	return false
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}
