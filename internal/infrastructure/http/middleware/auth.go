package middlewares

import (
	"change-request-service/internal/domain/models"
	"change-request-service/internal/domain/ports/input"
	ports "change-request-service/internal/domain/ports/output"
	"change-request-service/internal/infrastructure/security"
	"change-request-service/internal/utils"
	"context"
	"errors"
	"net/http"
)

type ctxKey int

const userKey ctxKey = iota

func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok && u != nil
}

func ActorFromContext(ctx context.Context) (models.Actor, bool) {
	u, ok := UserFromContext(ctx)
	if !ok {
		return models.Actor{}, false
	}
	return models.Actor{UserID: u.ID, UserType: u.UserType}, true
}

// TokenFromRequest reads the session token from the Authorization header,
// falling back to the named cookie.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if token, err := security.ExtractBearer(r.Header.Get("Authorization")); err == nil && token != "" {
		return token
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// Authenticate resolves the request token to a user and stores it in the
// request context. Requests without a valid token are rejected.
func Authenticate(auth input.AuthInputPort, cookieName string, log ports.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r, cookieName)
			if token == "" {
				_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthorized.Error())
				return
			}
			u, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if !errors.Is(err, utils.ErrUnauthorized) && !errors.Is(err, utils.ErrUserInactive) {
					log.Error("Authenticate failed", "err", err, "path", r.URL.Path)
				}
				_ = utils.WriteServiceError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

// RequireRoles lets through only users whose role is one of roles.
func RequireRoles(roles ...models.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthorized.Error())
				return
			}
			if !actor.Is(roles...) {
				_ = utils.WriteError(w, http.StatusForbidden, utils.HTTPCodeConverter(http.StatusForbidden), utils.ErrForbidden.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
