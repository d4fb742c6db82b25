package auth

import (
	"change-request-service/internal/infrastructure/http/handlers/dto"
	"change-request-service/internal/infrastructure/metrics"
	"change-request-service/internal/utils"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

// LoginRequest accepts the account's username or email.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) login() string {
	if s := strings.TrimSpace(r.Username); s != "" {
		return s
	}
	return strings.TrimSpace(r.Email)
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      dto.UserDTO `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	if err := utils.Validate(req); err != nil || req.login() == "" {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "username or email and password are required")
		return
	}

	session, err := h.authService.Login(r.Context(), req.login(), req.Password)
	if err != nil {
		metrics.RecordLogin(false)
		switch {
		case errors.Is(err, utils.ErrInvalidCredentials):
			_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), err.Error())
		case errors.Is(err, utils.ErrUserInactive):
			_ = utils.WriteError(w, http.StatusForbidden, utils.HTTPCodeConverter(http.StatusForbidden), err.Error())
		case errors.Is(err, utils.ErrInvalidArgument):
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
		default:
			h.log.Error("Login failed", "err", err)
			_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), "internal error")
		}
		return
	}
	metrics.RecordLogin(true)
	h.log.Info("Login succeeded", "user_id", session.User.ID)

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	_ = utils.WriteJSON(w, http.StatusOK, LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      dto.ToUserDTO(session.User),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	_ = utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
