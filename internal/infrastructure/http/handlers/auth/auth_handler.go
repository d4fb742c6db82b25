package auth

import (
	input "change-request-service/internal/domain/ports/input"
	"change-request-service/internal/infrastructure/logger"
)

type CookieOptions struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authService input.AuthInputPort
	cookie      CookieOptions
	log         *logger.Logger
}

func NewAuthHandler(authSvc input.AuthInputPort, cookie CookieOptions, log *logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authSvc, cookie: cookie, log: log}
}
