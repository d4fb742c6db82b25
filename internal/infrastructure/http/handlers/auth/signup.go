package auth

import (
	"change-request-service/internal/infrastructure/http/handlers/dto"
	middlewares "change-request-service/internal/infrastructure/http/middleware"
	"change-request-service/internal/utils"
	"encoding/json"
	"errors"
	"net/http"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserResponse struct {
	User dto.UserDTO `json:"user"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ValidationMessage(err))
		return
	}

	u, err := h.authService.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrUserExists):
			_ = utils.WriteError(w, http.StatusConflict, utils.HTTPCodeConverter(http.StatusConflict, err), err.Error())
		case errors.Is(err, utils.ErrInvalidArgument):
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
		default:
			h.log.Error("Signup failed", "err", err, "username", req.Username)
			_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), "internal error")
		}
		return
	}
	_ = utils.WriteJSON(w, http.StatusCreated, UserResponse{User: dto.ToUserDTO(u)})
}

// Me returns the user resolved by the authentication middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middlewares.UserFromContext(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthorized.Error())
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, UserResponse{User: dto.ToUserDTO(u)})
}
