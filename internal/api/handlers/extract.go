package handlers

import (
	"net/http"
	"time"

	"staffhub-utils/internal/flows"
	"staffhub-utils/internal/logging"
	"staffhub-utils/pkg/models"
	"staffhub-utils/pkg/utils"

	"github.com/labstack/echo/v4"
)

// ExtractSkillsHandler handles the POST /api/v1/extract/skills endpoint.
// An extraction that succeeds but finds nothing is reported as an error so
// the user can retry with a different file.
func ExtractSkillsHandler(flowService *flows.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		logger.Info("Processing skills extraction request", map[string]interface{}{
			"request_id": requestID,
			"endpoint":   "/api/v1/extract/skills",
			"method":     "POST",
		})

		var req models.ExtractDocumentRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to parse request body", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return badRequestResponse(c, requestID, "Invalid request body: "+err.Error())
		}

		result, err := flowService.ExtractSkills(c.Request().Context(), &req)
		if err != nil {
			logger.Error("Skills extraction failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return flowErrorResponse(c, requestID, err)
		}

		if len(result.Skills) == 0 {
			logger.Warn("Skills extraction returned an empty list", map[string]interface{}{
				"request_id": requestID,
			})
			return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error:     "no_skills_found",
				Message:   "Couldn't extract any skills. Try a different file.",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, result)
	}
}

// ExtractResumeInfoHandler handles the POST /api/v1/extract/resume endpoint
func ExtractResumeInfoHandler(flowService *flows.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		logger.Info("Processing resume extraction request", map[string]interface{}{
			"request_id": requestID,
			"endpoint":   "/api/v1/extract/resume",
			"method":     "POST",
		})

		var req models.ExtractDocumentRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to parse request body", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return badRequestResponse(c, requestID, "Invalid request body: "+err.Error())
		}

		result, err := flowService.ExtractResumeInfo(c.Request().Context(), &req)
		if err != nil {
			logger.Error("Resume extraction failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return flowErrorResponse(c, requestID, err)
		}

		return c.JSON(http.StatusOK, result)
	}
}

// ExtractProjectBrdHandler handles the POST /api/v1/extract/brd endpoint
func ExtractProjectBrdHandler(flowService *flows.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		logger.Info("Processing BRD extraction request", map[string]interface{}{
			"request_id": requestID,
			"endpoint":   "/api/v1/extract/brd",
			"method":     "POST",
		})

		var req models.ExtractDocumentRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to parse request body", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return badRequestResponse(c, requestID, "Invalid request body: "+err.Error())
		}

		result, err := flowService.ExtractProjectBrd(c.Request().Context(), &req)
		if err != nil {
			logger.Error("BRD extraction failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return flowErrorResponse(c, requestID, err)
		}

		return c.JSON(http.StatusOK, result)
	}
}
