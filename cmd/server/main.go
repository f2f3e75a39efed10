package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"smartjob-utils/internal/api/routes"
	"smartjob-utils/internal/config"
	"smartjob-utils/internal/logging"
	"smartjob-utils/internal/match/workers"
	"smartjob-utils/internal/search"
	"smartjob-utils/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting SmartJob Utils")

	// Pick the repository backend. Redis is preferred; when it is not
	// reachable the service still comes up on in-memory storage.
	var repo storage.Repository
	redisRepo := storage.NewRedisRepository(cfg)
	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	if err := redisRepo.Ping(pingCtx); err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory storage", map[string]interface{}{
			"error": err.Error(),
		})
		redisRepo.Close()
		repo = storage.NewMemoryRepository()
	} else {
		repo = redisRepo
	}
	cancel()
	defer repo.Close()

	// Initialize scoring pool
	poolManager := workers.NewPoolManager(cfg)
	if err := poolManager.Start(); err != nil {
		logger.Fatal("Failed to start scoring pool", map[string]interface{}{"error": err.Error()})
	}
	defer poolManager.Stop()

	// Initialize search service
	svc := search.NewService(cfg, repo, poolManager)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, cfg, svc, poolManager, repo)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping scoring pool...")
		if err := poolManager.Stop(); err != nil {
			logger.Error("Error stopping scoring pool", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}
