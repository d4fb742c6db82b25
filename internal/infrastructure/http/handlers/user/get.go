package user

import (
	"change-request-service/internal/domain/models"
	"change-request-service/internal/infrastructure/http/handlers/dto"
	middlewares "change-request-service/internal/infrastructure/http/middleware"
	"change-request-service/internal/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ListUsersResponse struct {
	Users []dto.UserDTO `json:"users"`
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.writeServiceError(w, "ListUsers", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, ListUsersResponse{Users: dto.ToUserDTOs(users)})
}

// GetUser is open to admins and to the user themselves.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid user id")
		return
	}
	actor, _ := middlewares.ActorFromContext(r.Context())
	if !actor.Is(models.UserTypeAdmin) && actor.UserID != id {
		_ = utils.WriteError(w, http.StatusForbidden, utils.HTTPCodeConverter(http.StatusForbidden), utils.ErrForbidden.Error())
		return
	}
	u, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "GetUser", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserDTO(u))
}
