package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"smartjob-utils/internal/logging"
	"smartjob-utils/internal/match/workers"
	"smartjob-utils/internal/storage"
	"smartjob-utils/pkg/models"
	"smartjob-utils/pkg/utils"
)

var startTime = time.Now()

const version = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests. The service is ready
// when the scoring pool accepts batches and the repository answers a ping.
func ReadinessHandler(poolManager *workers.PoolManager, repo storage.Repository) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{"api": "ok"}
		status := "ready"
		code := http.StatusOK

		if poolManager.IsRunning() {
			checks["workers"] = "ok"
		} else {
			checks["workers"] = "not running"
			status = "not ready"
			code = http.StatusServiceUnavailable
		}

		pingCtx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := repo.Ping(pingCtx); err != nil {
			checks["storage"] = err.Error()
			status = "not ready"
			code = http.StatusServiceUnavailable
		} else {
			checks["storage"] = "ok"
		}

		return c.JSON(code, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// WorkerHealthHandler reports scoring pool health
func WorkerHealthHandler(poolManager *workers.PoolManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats := poolManager.GetStats()

		status := "healthy"
		code := http.StatusOK
		if !stats.Running {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}

		return c.JSON(code, map[string]interface{}{
			"status": status,
			"stats":  stats,
		})
	}
}

// StatusHandler provides detailed service status
func StatusHandler(poolManager *workers.PoolManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Status check requested", map[string]interface{}{"request_id": requestID})

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "operational",
			"timestamp": time.Now(),
			"version":   version,
			"uptime":    utils.FormatDuration(time.Since(startTime)),
			"workers":   poolManager.GetStats(),
		})
	}
}
