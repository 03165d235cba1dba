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

// LeaveAssessmentHandler handles the POST /api/v1/leave/assess endpoint.
// The caller submits a date range; the handler derives the inclusive day
// count before invoking the flow.
func LeaveAssessmentHandler(flowService *flows.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		logger.Info("Processing leave assessment request", map[string]interface{}{
			"request_id": requestID,
			"endpoint":   "/api/v1/leave/assess",
			"method":     "POST",
		})

		var req models.LeaveAssessmentDateRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to parse request body", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return badRequestResponse(c, requestID, "Invalid request body: "+err.Error())
		}

		leaveDays, err := inclusiveDaySpan(req.StartDate, req.EndDate)
		if err != nil {
			return badRequestResponse(c, requestID, err.Error())
		}

		result, err := flowService.AssessLeave(c.Request().Context(), &models.LeaveAssessmentRequest{
			StaffID:   req.StaffID,
			LeaveType: req.LeaveType,
			LeaveDays: leaveDays,
		})
		if err != nil {
			logger.Error("Leave assessment failed", map[string]interface{}{
				"request_id": requestID,
				"staff_id":   req.StaffID,
				"error":      err.Error(),
			})
			return flowErrorResponse(c, requestID, err)
		}

		return c.JSON(http.StatusOK, result)
	}
}

// inclusiveDaySpan counts calendar days from start through end. A request
// for a single day has identical start and end dates and counts as one day.
func inclusiveDaySpan(startDate, endDate string) (float64, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0, utils.NewValidationError("start_date must be a date in YYYY-MM-DD format")
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0, utils.NewValidationError("end_date must be a date in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return 0, utils.NewValidationError("end_date must not be before start_date")
	}
	return end.Sub(start).Hours()/24 + 1, nil
}
