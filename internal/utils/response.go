package utils

import (
	"encoding/json"
	"errors"
	"net/http"
)

type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

func HTTPCodeConverter(status int, errs ...error) string {
	if status == http.StatusConflict && len(errs) > 0 && errs[0] != nil {
		err := errs[0]
		switch {
		case errors.Is(err, ErrInvalidTransition):
			return "INVALID_TRANSITION"
		case errors.Is(err, ErrAlreadyAssigned):
			return "ALREADY_ASSIGNED"
		case errors.Is(err, ErrUserExists):
			return "USER_EXISTS"
		case errors.Is(err, ErrProjectExists):
			return "PROJECT_EXISTS"
		}
	}
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	default:
		return "INTERNAL"
	}
}

// StatusFromError maps service sentinels to an HTTP status. Unknown errors are 500.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrReasonRequired):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrUserInactive):
		return http.StatusForbidden
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrProjectNotFound),
		errors.Is(err, ErrChangeRequestNotFound), errors.Is(err, ErrNotAssigned),
		errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrAlreadyAssigned),
		errors.Is(err, ErrUserExists), errors.Is(err, ErrProjectExists),
		errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := ErrorResponse{Error: ErrorDetails{Code: code, Message: message}}
	return json.NewEncoder(w).Encode(resp)
}

// WriteServiceError writes err with the status and code derived from it.
// Internal errors never leak their text.
func WriteServiceError(w http.ResponseWriter, err error) error {
	status := StatusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = ErrInternal.Error()
	}
	return WriteError(w, status, HTTPCodeConverter(status, err), msg)
}
