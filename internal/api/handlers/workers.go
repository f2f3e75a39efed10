package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"smartjob-utils/internal/match/workers"
)

// WorkerStatsHandler returns scoring pool statistics
func WorkerStatsHandler(poolManager *workers.PoolManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"stats":     poolManager.GetStats(),
			"timestamp": time.Now(),
		})
	}
}

// UserRateStatsHandler returns rate limiter statistics for one user
func UserRateStatsHandler(poolManager *workers.PoolManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Param("user_id")
		return c.JSON(http.StatusOK, map[string]interface{}{
			"user_id":   userID,
			"stats":     poolManager.GetUserStats(userID),
			"timestamp": time.Now(),
		})
	}
}
