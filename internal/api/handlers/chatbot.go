package handlers

import (
	"net/http"

	"staffhub-utils/internal/flows"
	"staffhub-utils/internal/logging"
	"staffhub-utils/pkg/models"
	"staffhub-utils/pkg/utils"

	"github.com/labstack/echo/v4"
)

// ChatHandler handles the POST /api/v1/chat endpoint
func ChatHandler(flowService *flows.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		logger.Info("Processing chat request", map[string]interface{}{
			"request_id": requestID,
			"endpoint":   "/api/v1/chat",
			"method":     "POST",
		})

		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to parse request body", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return badRequestResponse(c, requestID, "Invalid request body: "+err.Error())
		}

		result, err := flowService.Chat(c.Request().Context(), &req)
		if err != nil {
			logger.Error("Chat query failed", map[string]interface{}{
				"request_id": requestID,
				"user_role":  req.UserRole,
				"error":      err.Error(),
			})
			return flowErrorResponse(c, requestID, err)
		}

		return c.JSON(http.StatusOK, result)
	}
}
