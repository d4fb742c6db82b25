package main

import (
	"change-request-service/internal/application/assignment"
	"change-request-service/internal/application/auth"
	"change-request-service/internal/application/changerequest"
	"change-request-service/internal/application/project"
	userapp "change-request-service/internal/application/user"
	"change-request-service/internal/infrastructure/config"
	httpserver "change-request-service/internal/infrastructure/http"
	"change-request-service/internal/infrastructure/logger"
	"change-request-service/internal/infrastructure/migrator"
	"change-request-service/internal/infrastructure/persistence/postgres"
	pg_uow "change-request-service/internal/infrastructure/persistence/postgres/uow"
	"change-request-service/internal/infrastructure/security"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.MustLoad()

	ctx := context.Background()
	log := logger.New(cfg.Env)
	dsn := cfg.Database.DSN()

	mg, err := migrator.NewMigrator(cfg.Database.MigrationsPath, dsn, log)
	if err != nil {
		log.Error("Failed to init migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := mg.Up(); err != nil {
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := mg.Close(); err != nil {
		log.Warn("Failed to close migrator", slog.String("error", err.Error()))
	}

	pool, err := postgres.NewPool(ctx, dsn)
	if err != nil {
		log.Error("Failed to connect to postgres", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	uow := pg_uow.NewPostgresUOW(pool, log)
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	userService := userapp.NewService(uow, hasher, log)
	services := httpserver.Services{
		Auth:          auth.NewService(uow, hasher, tokens, log),
		Users:         userService,
		Projects:      project.NewService(uow, log),
		Assignments:   assignment.NewService(uow, log),
		ChangeRequest: changerequest.NewService(uow, log),
	}

	if cfg.Bootstrap.Enabled() {
		created, err := userService.EnsureAdmin(ctx, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword)
		if err != nil {
			log.Error("Failed to bootstrap admin", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if created {
			log.Info("Bootstrap admin created", slog.String("username", cfg.Bootstrap.AdminUsername))
		}
	}

	addr := fmt.Sprintf("%s:%d", cfg.HTTPServer.Address, cfg.HTTPServer.Port)
	server := httpserver.NewServer(addr, log, services)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)

	go func() {
		if err := server.Run(cfg); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	<-quit
	log.Info("Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	log.Info("Server exited")
}
