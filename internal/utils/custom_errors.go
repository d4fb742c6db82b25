package utils

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserExists            = errors.New("user already exists")
	ErrProjectNotFound       = errors.New("project not found")
	ErrProjectExists         = errors.New("project already exists")
	ErrChangeRequestNotFound = errors.New("change request not found")
	ErrAlreadyAssigned       = errors.New("project already assigned to user")
	ErrNotAssigned           = errors.New("project not assigned to user")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrReasonRequired        = errors.New("reason is required for rollbacks")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserInactive          = errors.New("user account is not active")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrNotFound              = errors.New("not found")
	ErrAlreadyExists         = errors.New("already exists")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrInvalidJSON           = errors.New("invalid json body")
	ErrValidationFailed      = errors.New("validation failed")
	ErrInternal              = errors.New("internal error")
)
