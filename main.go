package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"stockholdings/src/api"
	"stockholdings/src/api/controllers"
	"stockholdings/src/api/handlers"
	"stockholdings/src/api/middleware"
	"stockholdings/src/config"
	"stockholdings/src/database"
	"stockholdings/src/repositories"
	"stockholdings/src/utils"
	aws_handler "stockholdings/src/utils/aws"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		logrus.WithError(err).Fatal("Error while loading config")
	}
	logger := utils.NewLoggerFromConfig(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.SetupDB(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("Couldn't connect to the database")
	}
	defer pool.Close()

	httpServer, err := newHTTPServer(cfg, pool, logger)
	if err != nil {
		logger.WithError(err).Fatal("Couldn't build the server")
	}

	errC := make(chan error, 1)
	go func() {
		logger.WithField("port", cfg.Service.Port).Info("Starting server")

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
		close(errC)
	}()

	select {
	case err := <-errC:
		if err != nil {
			logger.WithError(err).Error("An error raised while running the server")
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Service.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Graceful shutdown failed")
		}
	}
	logger.Info("Server stopped")
}

func newHTTPServer(cfg *config.Config, pool *pgxpool.Pool, logger *logrus.Logger) (*http.Server, error) {
	secret, err := aws_handler.ResolveJWTSecret(cfg.Auth, nil)
	if err != nil {
		return nil, err
	}

	repo := repositories.NewStockRepository(pool)
	controller := controllers.NewStockController(repo)
	h := handlers.NewHandler(controller, logger, cfg.Service.RequestTimeout)
	server := api.NewServer(h, middleware.NewJWTAuth(secret), logger, cfg.Service.AllowedOrigins)

	return api.NewHTTPServer(server, cfg.Service), nil
}
