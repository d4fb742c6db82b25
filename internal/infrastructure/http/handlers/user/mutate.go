package user

import (
	"change-request-service/internal/domain/models"
	"change-request-service/internal/infrastructure/http/handlers/dto"
	"change-request-service/internal/utils"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"user_type" validate:"required"`
	Status   string `json:"status"`
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ValidationMessage(err))
		return
	}
	userType, ok := models.ParseUserType(req.UserType)
	if !ok {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid user_type")
		return
	}
	status := models.UserStatusActive
	if req.Status != "" {
		if status, ok = models.ParseUserStatus(req.Status); !ok {
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid status")
			return
		}
	}

	h.log.Info("CreateUser request", slog.String("username", req.Username), slog.String("user_type", string(userType)))

	u, err := h.userService.CreateUser(r.Context(), req.Username, req.Email, req.Password, userType, status)
	if err != nil {
		h.writeServiceError(w, "CreateUser", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusCreated, dto.ToUserDTO(u))
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
	UserType *string `json:"user_type"`
	Status   *string `json:"status"`
}

func (req UpdateUserRequest) toUpdate() (models.UserUpdate, bool) {
	upd := models.UserUpdate{Username: req.Username, Email: req.Email}
	if req.UserType != nil {
		t, ok := models.ParseUserType(*req.UserType)
		if !ok {
			return upd, false
		}
		upd.UserType = &t
	}
	if req.Status != nil {
		s, ok := models.ParseUserStatus(*req.Status)
		if !ok {
			return upd, false
		}
		upd.Status = &s
	}
	return upd, true
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid user id")
		return
	}
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ValidationMessage(err))
		return
	}
	upd, ok := req.toUpdate()
	if !ok {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid user_type or status")
		return
	}

	h.log.Info("UpdateUser request", slog.String("user_id", id.String()))

	u, err := h.userService.UpdateUser(r.Context(), id, upd)
	if err != nil {
		h.writeServiceError(w, "UpdateUser", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserDTO(u))
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid user id")
		return
	}
	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		h.writeServiceError(w, "DeleteUser", err)
		return
	}
	h.log.Info("user deleted", slog.String("user_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
