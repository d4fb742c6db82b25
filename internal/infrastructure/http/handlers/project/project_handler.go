package project

import (
	"change-request-service/internal/domain/models"
	input "change-request-service/internal/domain/ports/input"
	"change-request-service/internal/infrastructure/http/handlers/dto"
	"change-request-service/internal/infrastructure/logger"
	"change-request-service/internal/utils"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projectService input.ProjectInputPort
	log            *logger.Logger
}

func NewProjectHandler(projectSvc input.ProjectInputPort, log *logger.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: projectSvc, log: log}
}

type ListProjectsResponse struct {
	Projects []dto.ProjectDTO `json:"projects"`
}

type CreateProjectRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (h *ProjectHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, utils.ErrProjectNotFound):
		_ = utils.WriteError(w, http.StatusNotFound, utils.HTTPCodeConverter(http.StatusNotFound), err.Error())
	case errors.Is(err, utils.ErrProjectExists):
		_ = utils.WriteError(w, http.StatusConflict, utils.HTTPCodeConverter(http.StatusConflict, err), err.Error())
	case errors.Is(err, utils.ErrInvalidArgument):
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "title and description are required")
	default:
		h.log.Error(op+" failed", "err", err)
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), "internal error")
	}
}

func projectID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid project id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListProjects(r.Context())
	if err != nil {
		h.writeServiceError(w, "ListProjects", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, ListProjectsResponse{Projects: dto.ToProjectDTOs(projects)})
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	p, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "GetProject", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToProjectDTO(p))
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "title and description are required")
		return
	}

	h.log.Info("CreateProject request", slog.String("title", req.Title))

	p, err := h.projectService.CreateProject(r.Context(), req.Title, req.Description)
	if err != nil {
		h.writeServiceError(w, "CreateProject", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusCreated, dto.ToProjectDTO(p))
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	var req UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	p, err := h.projectService.UpdateProject(r.Context(), id, models.ProjectUpdate{Title: req.Title, Description: req.Description})
	if err != nil {
		h.writeServiceError(w, "UpdateProject", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToProjectDTO(p))
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	if err := h.projectService.DeleteProject(r.Context(), id); err != nil {
		h.writeServiceError(w, "DeleteProject", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
