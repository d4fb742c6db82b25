package changerequest

import (
	"change-request-service/internal/domain/models"
	"change-request-service/internal/infrastructure/http/handlers/dto"
	middlewares "change-request-service/internal/infrastructure/http/middleware"
	"change-request-service/internal/infrastructure/metrics"
	"change-request-service/internal/utils"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreateRequest struct {
	ProjectID   string `json:"projectId" validate:"required,uuid"`
	RequestType string `json:"request_type" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason"`
}

func (h *ChangeRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ValidationMessage(err))
		return
	}
	requestType, ok := models.ParseRequestType(req.RequestType)
	if !ok {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid request_type")
		return
	}
	actor, _ := middlewares.ActorFromContext(r.Context())
	projectID := uuid.MustParse(req.ProjectID)

	h.log.Info("CreateChangeRequest request", slog.String("user_id", actor.UserID.String()), slog.String("project_id", req.ProjectID))

	cr, err := h.crService.CreateChangeRequest(r.Context(), actor, projectID, requestType, req.Description)
	if err != nil {
		h.writeServiceError(w, "CreateChangeRequest", err)
		return
	}
	metrics.RecordCreated(string(cr.RequestType))
	_ = utils.WriteJSON(w, http.StatusCreated, dto.ToChangeRequestDTO(cr))
}

// UpdateStatus applies one status transition: approve, roll back or deploy.
func (h *ChangeRequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid change request id")
		return
	}
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "status is required")
		return
	}
	status, ok := models.ParseRequestStatus(req.Status)
	if !ok {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid status")
		return
	}

	h.log.Info("UpdateStatus request", slog.String("change_request_id", id.String()), slog.String("status", string(status)))

	cr, err := h.crService.UpdateStatus(r.Context(), id, status, req.Reason)
	if err != nil {
		h.writeServiceError(w, "UpdateStatus", err)
		return
	}
	metrics.RecordTransition(string(cr.Status))
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToChangeRequestDTO(cr))
}
