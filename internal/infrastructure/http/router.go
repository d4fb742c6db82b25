package http

import (
	"change-request-service/internal/domain/models"
	input "change-request-service/internal/domain/ports/input"
	"change-request-service/internal/infrastructure/config"
	"change-request-service/internal/infrastructure/http/handlers/auth"
	"change-request-service/internal/infrastructure/http/handlers/changerequest"
	"change-request-service/internal/infrastructure/http/handlers/project"
	"change-request-service/internal/infrastructure/http/handlers/user"
	"change-request-service/internal/infrastructure/http/handlers/userproject"
	middlewares "change-request-service/internal/infrastructure/http/middleware"
	"change-request-service/internal/infrastructure/logger"
	"change-request-service/internal/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

type Services struct {
	Auth          input.AuthInputPort
	Users         input.UserInputPort
	Projects      input.ProjectInputPort
	Assignments   input.AssignmentInputPort
	ChangeRequest input.ChangeRequestInputPort
}

type Router struct {
	router   *chi.Mux
	log      *logger.Logger
	services Services
	cookie   string
}

func NewRouter(log *logger.Logger, services Services) *Router {
	return &Router{
		router:   chi.NewRouter(),
		log:      log,
		services: services,
	}
}

func (r *Router) Setup(cfg *config.Config) {
	r.cookie = cfg.Auth.CookieName

	r.router.Use(chiMiddleware.RequestID)
	r.router.Use(chiMiddleware.RealIP)
	r.router.Use(chiMiddleware.Recoverer)
	r.router.Use(middlewares.RequestLoggerMiddleware(r.log))
	r.router.Use(chiMiddleware.Timeout(cfg.HTTPServer.RequestTimeout))
	r.router.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	r.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_ = utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.router.Handle("/metrics", promhttp.Handler())

	r.router.Mount("/auth", r.setupAuthRoutes(cfg))
	r.router.Mount("/users", r.setupUserRoutes())
	r.router.Mount("/project", r.setupProjectRoutes())
	r.router.Mount("/user-project", r.setupUserProjectRoutes())
	r.router.Mount("/change-request", r.setupChangeRequestRoutes())
}

func (r *Router) authenticated() func(http.Handler) http.Handler {
	return middlewares.Authenticate(r.services.Auth, r.cookie, r.log)
}

func (r *Router) setupAuthRoutes(cfg *config.Config) http.Handler {
	h := auth.NewAuthHandler(r.services.Auth, auth.CookieOptions{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure}, r.log)
	sub := chi.NewRouter()
	sub.Post("/login", h.Login)
	sub.Post("/signup", h.Signup)
	sub.Post("/logout", h.Logout)
	sub.With(r.authenticated()).Get("/me", h.Me)
	return sub
}

func (r *Router) setupUserRoutes() http.Handler {
	h := user.NewUserHandler(r.services.Users, r.log)
	admin := middlewares.RequireRoles(models.UserTypeAdmin)
	sub := chi.NewRouter()
	sub.Use(r.authenticated())
	sub.With(admin).Get("/", h.ListUsers)
	sub.With(admin).Post("/", h.CreateUser)
	sub.Get("/{id}", h.GetUser)
	sub.With(admin).Patch("/{id}", h.UpdateUser)
	sub.With(admin).Delete("/{id}", h.DeleteUser)
	return sub
}

func (r *Router) setupProjectRoutes() http.Handler {
	h := project.NewProjectHandler(r.services.Projects, r.log)
	admin := middlewares.RequireRoles(models.UserTypeAdmin)
	sub := chi.NewRouter()
	sub.Use(r.authenticated())
	sub.Get("/all-projects", h.ListProjects)
	sub.With(admin).Post("/create", h.CreateProject)
	sub.Get("/{id}", h.GetProject)
	sub.With(admin).Patch("/{id}", h.UpdateProject)
	sub.With(admin).Delete("/{id}", h.DeleteProject)
	return sub
}

func (r *Router) setupUserProjectRoutes() http.Handler {
	h := userproject.NewUserProjectHandler(r.services.Assignments, r.log)
	admin := middlewares.RequireRoles(models.UserTypeAdmin)
	sub := chi.NewRouter()
	sub.Use(r.authenticated())
	sub.Get("/", h.ListUserProjects)
	sub.With(admin).Post("/", h.Assign)
	sub.With(admin).Delete("/", h.Revoke)
	return sub
}

func (r *Router) setupChangeRequestRoutes() http.Handler {
	h := changerequest.NewChangeRequestHandler(r.services.ChangeRequest, r.log)
	sub := chi.NewRouter()
	sub.Use(r.authenticated())
	sub.Get("/query", h.Query)
	sub.Get("/all-users", h.AllUsers)
	sub.With(middlewares.RequireRoles(models.UserTypeDeveloper)).Post("/create", h.Create)
	sub.Get("/{id}", h.Get)
	sub.With(middlewares.RequireRoles(models.UserTypeApprover, models.UserTypeAdmin)).Patch("/{id}", h.UpdateStatus)
	return sub
}

func (r *Router) GetRouter() *chi.Mux { return r.router }
