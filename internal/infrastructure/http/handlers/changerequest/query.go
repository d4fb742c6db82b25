package changerequest

import (
	"change-request-service/internal/domain/models"
	"change-request-service/internal/infrastructure/http/handlers/dto"
	middlewares "change-request-service/internal/infrastructure/http/middleware"
	"change-request-service/internal/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type QueryResponse struct {
	Requests []dto.ChangeRequestDTO `json:"requests"`
}

type ReportsResponse struct {
	Reports []dto.UserReportDTO `json:"reports"`
}

func parseFilter(r *http.Request) (models.ChangeRequestFilter, string) {
	var filter models.ChangeRequestFilter
	q := r.URL.Query()
	if s := q.Get("status"); s != "" {
		st, ok := models.ParseRequestStatus(s)
		if !ok {
			return filter, "invalid status"
		}
		filter.Status = &st
	}
	userID, err := utils.ParseUUIDPtr(q.Get("userId"))
	if err != nil {
		return filter, "invalid userId"
	}
	filter.UserID = userID
	projectID, err := utils.ParseUUIDPtr(q.Get("projectId"))
	if err != nil {
		return filter, "invalid projectId"
	}
	filter.ProjectID = projectID
	return filter, ""
}

func (h *ChangeRequestHandler) Query(w http.ResponseWriter, r *http.Request) {
	filter, msg := parseFilter(r)
	if msg != "" {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), msg)
		return
	}
	actor, _ := middlewares.ActorFromContext(r.Context())
	crs, err := h.crService.QueryChangeRequests(r.Context(), actor, filter)
	if err != nil {
		h.writeServiceError(w, "QueryChangeRequests", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, QueryResponse{Requests: dto.ToChangeRequestDTOs(crs)})
}

func (h *ChangeRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid change request id")
		return
	}
	cr, err := h.crService.GetChangeRequest(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "GetChangeRequest", err)
		return
	}
	actor, _ := middlewares.ActorFromContext(r.Context())
	if actor.Is(models.UserTypeDeveloper) && cr.UserID != actor.UserID {
		_ = utils.WriteError(w, http.StatusNotFound, utils.HTTPCodeConverter(http.StatusNotFound), utils.ErrChangeRequestNotFound.Error())
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToChangeRequestDTO(cr))
}

func (h *ChangeRequestHandler) AllUsers(w http.ResponseWriter, r *http.Request) {
	reports, err := h.crService.Reports(r.Context())
	if err != nil {
		h.writeServiceError(w, "Reports", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, ReportsResponse{Reports: dto.ToUserReportDTOs(reports)})
}
