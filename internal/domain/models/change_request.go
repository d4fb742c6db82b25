package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type RequestType string

const (
	RequestTypeNewFeature    RequestType = "new_feature"
	RequestTypeEditedFeature RequestType = "edited_feature"
	RequestTypeBugFix        RequestType = "bug_fix"
	RequestTypeUpdates       RequestType = "updates"
)

func ParseRequestType(s string) (RequestType, bool) {
	t := RequestType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case RequestTypeNewFeature, RequestTypeEditedFeature, RequestTypeBugFix, RequestTypeUpdates:
		return t, true
	}
	return t, false
}

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusApproved   RequestStatus = "approved"
	RequestStatusRolledBack RequestStatus = "rolledback"
	RequestStatusDeployed   RequestStatus = "deployed"
)

var AllRequestStatuses = []RequestStatus{
	RequestStatusPending,
	RequestStatusApproved,
	RequestStatusRolledBack,
	RequestStatusDeployed,
}

func ParseRequestStatus(s string) (RequestStatus, bool) {
	st := RequestStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllRequestStatuses {
		if st == known {
			return st, true
		}
	}
	return st, false
}

// CanTransitionTo reports whether a request in status s may move to next.
// pending -> approved | rolledback, approved -> deployed. Nothing else.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return next == RequestStatusApproved || next == RequestStatusRolledBack
	case RequestStatusApproved:
		return next == RequestStatusDeployed
	}
	return false
}

type ChangeRequest struct {
	ID             uuid.UUID
	Description    string
	ProjectID      uuid.UUID
	UserID         uuid.UUID
	Project        *Project
	User           *User
	RequestType    RequestType
	Status         RequestStatus
	Reason         *string
	DeploymentDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ChangeRequestFilter narrows a change request query. Nil fields match all.
type ChangeRequestFilter struct {
	Status    *RequestStatus
	UserID    *uuid.UUID
	ProjectID *uuid.UUID
}

// UserReport aggregates a user's change requests by status.
type UserReport struct {
	User       User
	Total      int
	Pending    int
	Approved   int
	RolledBack int
	Deployed   int
}

func (r *UserReport) Add(status RequestStatus, n int) {
	switch status {
	case RequestStatusPending:
		r.Pending += n
	case RequestStatusApproved:
		r.Approved += n
	case RequestStatusRolledBack:
		r.RolledBack += n
	case RequestStatusDeployed:
		r.Deployed += n
	}
	r.Total += n
}

// StatusCount is the number of change requests a user has in one status.
type StatusCount struct {
	UserID uuid.UUID
	Status RequestStatus
	Count  int
}
