package changerequest

import (
	input "change-request-service/internal/domain/ports/input"
	"change-request-service/internal/infrastructure/logger"
	"change-request-service/internal/utils"
	"errors"
	"net/http"
)

type ChangeRequestHandler struct {
	crService input.ChangeRequestInputPort
	log       *logger.Logger
}

func NewChangeRequestHandler(crSvc input.ChangeRequestInputPort, log *logger.Logger) *ChangeRequestHandler {
	return &ChangeRequestHandler{crService: crSvc, log: log}
}

func (h *ChangeRequestHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, utils.ErrChangeRequestNotFound), errors.Is(err, utils.ErrProjectNotFound), errors.Is(err, utils.ErrUserNotFound):
		_ = utils.WriteError(w, http.StatusNotFound, utils.HTTPCodeConverter(http.StatusNotFound), err.Error())
	case errors.Is(err, utils.ErrInvalidTransition):
		_ = utils.WriteError(w, http.StatusConflict, utils.HTTPCodeConverter(http.StatusConflict, err), err.Error())
	case errors.Is(err, utils.ErrReasonRequired), errors.Is(err, utils.ErrInvalidArgument):
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
	case errors.Is(err, utils.ErrForbidden):
		_ = utils.WriteError(w, http.StatusForbidden, utils.HTTPCodeConverter(http.StatusForbidden), err.Error())
	default:
		h.log.Error(op+" failed", "err", err)
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), "internal error")
	}
}
