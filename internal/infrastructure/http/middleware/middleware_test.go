package middlewares_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"change-request-service/internal/domain/models"
	middlewares "change-request-service/internal/infrastructure/http/middleware"
	"change-request-service/internal/infrastructure/logger"
	"change-request-service/internal/utils"
	"change-request-service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func okHandler(t *testing.T, wantUser bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := middlewares.UserFromContext(r.Context())
		require.Equal(t, wantUser, ok)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthenticate(t *testing.T) {
	uid := uuid.New()
	tests := []struct {
		name       string
		prepare    func(r *http.Request)
		mockSetup  func(auth *mocks.AuthInputPort)
		wantStatus int
		wantLogged bool
	}{
		{
			name: "bearer token",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer tok")
			},
			mockSetup: func(auth *mocks.AuthInputPort) {
				auth.EXPECT().Authenticate(mock.Anything, "tok").Return(&models.User{ID: uid, UserType: models.UserTypeAdmin}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "cookie token",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "token", Value: "from-cookie"})
			},
			mockSetup: func(auth *mocks.AuthInputPort) {
				auth.EXPECT().Authenticate(mock.Anything, "from-cookie").Return(&models.User{ID: uid}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "no token",
			prepare:    func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer old")
			},
			mockSetup: func(auth *mocks.AuthInputPort) {
				auth.EXPECT().Authenticate(mock.Anything, "old").Return(nil, utils.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "inactive user",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer idle")
			},
			mockSetup: func(auth *mocks.AuthInputPort) {
				auth.EXPECT().Authenticate(mock.Anything, "idle").Return(nil, utils.ErrUserInactive)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "store failure",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer tok")
			},
			mockSetup: func(auth *mocks.AuthInputPort) {
				auth.EXPECT().Authenticate(mock.Anything, "tok").Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mocks.NewAuthInputPort(t)
			if tt.mockSetup != nil {
				tt.mockSetup(auth)
			}
			var logs bytes.Buffer
			h := middlewares.Authenticate(auth, "token", logger.NewWithWriter("dev", &logs))(okHandler(t, true))
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantLogged, bytes.Contains(logs.Bytes(), []byte("Authenticate failed")))
			if tt.wantStatus == http.StatusInternalServerError {
				require.NotContains(t, rec.Body.String(), "db down")
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name       string
		user       *models.User
		wantStatus int
	}{
		{name: "allowed", user: &models.User{UserType: models.UserTypeApprover}, wantStatus: http.StatusNoContent},
		{name: "wrong role", user: &models.User{UserType: models.UserTypeDeveloper}, wantStatus: http.StatusForbidden},
		{name: "anonymous", wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := middlewares.RequireRoles(models.UserTypeApprover, models.UserTypeAdmin)(okHandler(t, true))
			req := httptest.NewRequest(http.MethodPatch, "/change-request/x", nil)
			if tt.user != nil {
				req = req.WithContext(middlewares.WithUser(req.Context(), tt.user))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequestLoggerMiddleware(t *testing.T) {
	h := middlewares.RequestLoggerMiddleware(logger.New("dev"))(okHandler(t, false))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
}
