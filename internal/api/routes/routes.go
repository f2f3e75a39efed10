package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"smartjob-utils/internal/api/handlers"
	"smartjob-utils/internal/api/middleware"
	"smartjob-utils/internal/config"
	"smartjob-utils/internal/match/workers"
	"smartjob-utils/internal/search"
	"smartjob-utils/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, svc *search.Service, poolManager *workers.PoolManager, repo storage.Repository) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/live", handlers.LivenessHandler)
		health.GET("/ready", handlers.ReadinessHandler(poolManager, repo))
		health.GET("/workers", handlers.WorkerHealthHandler(poolManager))
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(poolManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resume")
		{
			resume.POST("/upload", handlers.UploadResumeHandler(svc))
		}

		jobs := v1.Group("/jobs")
		{
			jobs.POST("/search", handlers.SearchJobsHandler(svc))
			jobs.GET("/results/:user_id", handlers.GetResultsHandler(svc))
		}

		workerRoutes := v1.Group("/workers")
		{
			workerRoutes.GET("/stats", handlers.WorkerStatsHandler(poolManager))
			workerRoutes.GET("/users/:user_id", handlers.UserRateStatsHandler(poolManager))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "SmartJob Utils",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
