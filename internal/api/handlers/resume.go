package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"smartjob-utils/internal/extract"
	"smartjob-utils/internal/logging"
	"smartjob-utils/internal/search"
	"smartjob-utils/pkg/models"
	"smartjob-utils/pkg/utils"
)

var validate = validator.New()

// UploadResumeHandler handles resume upload and text extraction requests
func UploadResumeHandler(svc *search.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := requestIDFromContext(c)
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Resume upload request received")

		var req models.UploadResumeRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind request", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, requestID, "invalid_request", utils.NewBadRequestError("Invalid request format"))
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Request validation failed", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, requestID, "validation_failed", utils.NewValidationError(err.Error()))
		}

		data, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			logger.Error("Failed to decode document payload", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, requestID, "invalid_payload", utils.NewBadRequestError("Document data must be base64-encoded"))
		}

		result, err := svc.UploadResume(c.Request().Context(), req.UserID, data, req.Format)
		if err != nil {
			return uploadErrorResponse(c, err, requestID, logger)
		}

		return c.JSON(http.StatusOK, models.UploadResumeResponse{
			Success:        true,
			UserID:         req.UserID,
			Format:         string(result.Format),
			CharCount:      result.CharCount,
			Keywords:       result.Keywords,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

func uploadErrorResponse(c echo.Context, err error, requestID string, logger logging.Logger) error {
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		logger.Warn("Unsupported document format", map[string]interface{}{"error": err.Error()})
		return errorJSON(c, requestID, "unsupported_format", utils.NewBadRequestError(err.Error()))
	case errors.Is(err, extract.ErrCorruptDocument):
		logger.Warn("Corrupt document", map[string]interface{}{"error": err.Error()})
		return errorJSON(c, requestID, "corrupt_document", utils.NewExtractionError(err.Error()))
	default:
		logger.Error("Resume upload failed", map[string]interface{}{"error": err.Error()})
		return errorJSON(c, requestID, "upload_failed", utils.NewInternalServerError("Failed to process resume upload"))
	}
}

// requestIDFromContext returns the request ID set by the validation
// middleware, generating one when the middleware did not run.
func requestIDFromContext(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}
