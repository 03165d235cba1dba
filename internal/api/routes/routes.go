package routes

import (
	"net/http"
	"time"

	"staffhub-utils/internal/api/handlers"
	"staffhub-utils/internal/api/middleware"
	"staffhub-utils/internal/config"
	"staffhub-utils/internal/flows"
	"staffhub-utils/internal/llm"
	"staffhub-utils/internal/store"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, flowService *flows.Service, llmManager *llm.Manager, records store.RecordStore) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Model-backed endpoints can take a while; everything else stays snappy
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler)

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		// Document extraction routes
		extract := v1.Group("/extract")
		{
			extract.POST("/skills", handlers.ExtractSkillsHandler(flowService))
			extract.POST("/resume", handlers.ExtractResumeInfoHandler(flowService))
			extract.POST("/brd", handlers.ExtractProjectBrdHandler(flowService))
		}

		// Staffing routes
		staff := v1.Group("/staff")
		{
			staff.POST("/fit-score", handlers.FitScoreHandler(flowService, records))
		}

		// Leave routes
		leave := v1.Group("/leave")
		{
			leave.POST("/assess", handlers.LeaveAssessmentHandler(flowService))
		}

		// Chatbot route
		v1.POST("/chat", handlers.ChatHandler(flowService))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Staff Hub AI Flows",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
