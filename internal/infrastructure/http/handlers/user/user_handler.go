package user

import (
	input "change-request-service/internal/domain/ports/input"
	"change-request-service/internal/infrastructure/logger"
	"change-request-service/internal/utils"
	"errors"
	"net/http"
)

type UserHandler struct {
	userService input.UserInputPort
	log         *logger.Logger
}

func NewUserHandler(userSvc input.UserInputPort, log *logger.Logger) *UserHandler {
	return &UserHandler{userService: userSvc, log: log}
}

func (h *UserHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, utils.ErrUserNotFound):
		_ = utils.WriteError(w, http.StatusNotFound, utils.HTTPCodeConverter(http.StatusNotFound), err.Error())
	case errors.Is(err, utils.ErrUserExists):
		_ = utils.WriteError(w, http.StatusConflict, utils.HTTPCodeConverter(http.StatusConflict, err), err.Error())
	case errors.Is(err, utils.ErrInvalidArgument):
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
	default:
		h.log.Error(op+" failed", "err", err)
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), "internal error")
	}
}
