package handlers

import (
	"net/http"
	"time"

	"staffhub-utils/pkg/models"
	"staffhub-utils/pkg/utils"

	"github.com/labstack/echo/v4"
)

// flowErrorResponse maps a flow error onto the HTTP surface using the error
// taxonomy: validation 400, not-found 404, model/gateway 502, everything
// else 500
func flowErrorResponse(c echo.Context, requestID string, err error) error {
	errorCode := "internal_error"
	switch {
	case utils.IsValidationError(err):
		errorCode = "validation_failed"
	case utils.IsNotFoundError(err):
		errorCode = "not_found"
	case utils.IsLLMError(err):
		errorCode = "llm_error"
	}

	return c.JSON(utils.HTTPStatus(err), models.ErrorResponse{
		Error:     errorCode,
		Message:   err.Error(),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

func badRequestResponse(c echo.Context, requestID, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:     "invalid_request",
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
