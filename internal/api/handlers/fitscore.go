package handlers

import (
	"fmt"
	"net/http"
	"time"

	"staffhub-utils/internal/flows"
	"staffhub-utils/internal/logging"
	"staffhub-utils/internal/store"
	"staffhub-utils/pkg/models"
	"staffhub-utils/pkg/utils"

	"github.com/labstack/echo/v4"
)

// FitScoreHandler handles the POST /api/v1/staff/fit-score endpoint. The
// caller supplies a staff ID and a project tech stack; the staff member's
// skills come from the record store.
func FitScoreHandler(flowService *flows.Service, records store.RecordStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		logger.Info("Processing fit score request", map[string]interface{}{
			"request_id": requestID,
			"endpoint":   "/api/v1/staff/fit-score",
			"method":     "POST",
		})

		var req models.StaffFitScoreRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to parse request body", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return badRequestResponse(c, requestID, "Invalid request body: "+err.Error())
		}

		if req.StaffID == "" {
			return badRequestResponse(c, requestID, "Staff ID is required")
		}

		staff, ok := records.FindStaffByID(req.StaffID)
		if !ok {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "not_found",
				Message:   fmt.Sprintf("staff member %s not found", req.StaffID),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		result, err := flowService.CalculateFitScore(c.Request().Context(), &models.FitScoreRequest{
			ProjectTechStack: req.ProjectTechStack,
			StaffSkills:      staff.Skills,
		})
		if err != nil {
			logger.Error("Fit score calculation failed", map[string]interface{}{
				"request_id": requestID,
				"staff_id":   req.StaffID,
				"error":      err.Error(),
			})
			return flowErrorResponse(c, requestID, err)
		}

		return c.JSON(http.StatusOK, result)
	}
}
