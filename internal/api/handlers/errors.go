package handlers

import (
	"time"

	"github.com/labstack/echo/v4"

	"smartjob-utils/pkg/models"
	"smartjob-utils/pkg/utils"
)

// errorJSON renders a CustomError as the standard error envelope, taking the
// HTTP status from the error itself.
func errorJSON(c echo.Context, requestID, errorCode string, cerr *utils.CustomError) error {
	return c.JSON(cerr.Code, models.ErrorResponse{
		Error:     errorCode,
		Message:   cerr.Error(),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
