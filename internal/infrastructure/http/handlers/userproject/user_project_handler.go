package userproject

import (
	"change-request-service/internal/domain/models"
	input "change-request-service/internal/domain/ports/input"
	"change-request-service/internal/infrastructure/http/handlers/dto"
	middlewares "change-request-service/internal/infrastructure/http/middleware"
	"change-request-service/internal/infrastructure/logger"
	"change-request-service/internal/utils"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type UserProjectHandler struct {
	assignmentService input.AssignmentInputPort
	log               *logger.Logger
}

func NewUserProjectHandler(assignmentSvc input.AssignmentInputPort, log *logger.Logger) *UserProjectHandler {
	return &UserProjectHandler{assignmentService: assignmentSvc, log: log}
}

type AssignmentRequest struct {
	UserID    string `json:"userId" validate:"required,uuid"`
	ProjectID string `json:"projectId" validate:"required,uuid"`
}

type AssignmentResponse struct {
	UserID    string `json:"userId"`
	ProjectID string `json:"projectId"`
}

func (h *UserProjectHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, utils.ErrUserNotFound), errors.Is(err, utils.ErrProjectNotFound), errors.Is(err, utils.ErrNotAssigned):
		_ = utils.WriteError(w, http.StatusNotFound, utils.HTTPCodeConverter(http.StatusNotFound), err.Error())
	case errors.Is(err, utils.ErrAlreadyAssigned):
		_ = utils.WriteError(w, http.StatusConflict, utils.HTTPCodeConverter(http.StatusConflict, err), err.Error())
	case errors.Is(err, utils.ErrInvalidArgument):
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
	default:
		h.log.Error(op+" failed", "err", err)
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), "internal error")
	}
}

// ListUserProjects answers with a bare array of the user's projects.
func (h *UserProjectHandler) ListUserProjects(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "userId is required")
		return
	}
	actor, _ := middlewares.ActorFromContext(r.Context())
	if !actor.Is(models.UserTypeAdmin) && actor.UserID != userID {
		_ = utils.WriteError(w, http.StatusForbidden, utils.HTTPCodeConverter(http.StatusForbidden), utils.ErrForbidden.Error())
		return
	}
	projects, err := h.assignmentService.ListUserProjects(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, "ListUserProjects", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToProjectDTOs(projects))
}

func decodeAssignment(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	var req AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return uuid.Nil, uuid.Nil, false
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ValidationMessage(err))
		return uuid.Nil, uuid.Nil, false
	}
	return uuid.MustParse(req.UserID), uuid.MustParse(req.ProjectID), true
}

func (h *UserProjectHandler) Assign(w http.ResponseWriter, r *http.Request) {
	userID, projectID, ok := decodeAssignment(w, r)
	if !ok {
		return
	}

	h.log.Info("Assign request", slog.String("user_id", userID.String()), slog.String("project_id", projectID.String()))

	if err := h.assignmentService.Assign(r.Context(), userID, projectID); err != nil {
		h.writeServiceError(w, "Assign", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusCreated, AssignmentResponse{UserID: userID.String(), ProjectID: projectID.String()})
}

func (h *UserProjectHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	userID, projectID, ok := decodeAssignment(w, r)
	if !ok {
		return
	}

	h.log.Info("Revoke request", slog.String("user_id", userID.String()), slog.String("project_id", projectID.String()))

	if err := h.assignmentService.Revoke(r.Context(), userID, projectID); err != nil {
		h.writeServiceError(w, "Revoke", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
