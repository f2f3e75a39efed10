package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"smartjob-utils/internal/logging"
	"smartjob-utils/internal/match/workers"
	"smartjob-utils/internal/search"
	"smartjob-utils/internal/storage"
	"smartjob-utils/pkg/models"
	"smartjob-utils/pkg/utils"
)

// SearchJobsHandler runs one matching pass over a posting batch for a user
func SearchJobsHandler(svc *search.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := requestIDFromContext(c)
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Job search request received")

		var req models.JobSearchRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind request", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, requestID, "invalid_request", utils.NewBadRequestError("Invalid request format"))
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Request validation failed", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, requestID, "validation_failed", utils.NewValidationError(err.Error()))
		}

		result, err := svc.Search(c.Request().Context(), req)
		if err != nil {
			return searchErrorResponse(c, err, requestID, logger)
		}

		return c.JSON(http.StatusOK, models.JobSearchResponse{
			Success:        true,
			Results:        result.Results,
			Pagination:     result.Pagination,
			Relaxed:        result.Relaxed,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// GetResultsHandler re-paginates the stored result set for a user
func GetResultsHandler(svc *search.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := requestIDFromContext(c)
		logger := logging.LogWithRequestID(requestID)

		userID := c.Param("user_id")
		page, _ := strconv.Atoi(c.QueryParam("page"))
		pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

		result, err := svc.GetResults(c.Request().Context(), userID, page, pageSize)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return errorJSON(c, requestID, "results_not_found", utils.NewNotFoundError("No stored search results for user"))
			}
			logger.Error("Failed to load stored results", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, requestID, "results_lookup_failed", utils.NewInternalServerError("Failed to load stored search results"))
		}

		return c.JSON(http.StatusOK, models.JobSearchResponse{
			Success:        true,
			Results:        result.Results,
			Pagination:     result.Pagination,
			Relaxed:        result.Relaxed,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

func searchErrorResponse(c echo.Context, err error, requestID string, logger logging.Logger) error {
	switch {
	case errors.Is(err, search.ErrNoResume):
		logger.Warn("Search without uploaded resume")
		return errorJSON(c, requestID, "resume_required", utils.NewBadRequestError("Upload a resume before searching"))
	case errors.Is(err, workers.ErrRateLimited):
		logger.Warn("Search rate limited", map[string]interface{}{"error": err.Error()})
		return errorJSON(c, requestID, "rate_limited", utils.NewRateLimitError(err.Error()))
	default:
		logger.Error("Job search failed", map[string]interface{}{"error": err.Error()})
		return errorJSON(c, requestID, "search_failed", utils.NewInternalServerError("Failed to process job search"))
	}
}
