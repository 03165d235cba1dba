package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies a longer timeout to the model-backed
// endpoints and the default to everything else
func SelectiveTimeoutConfig(defaultTimeout, aiTimeout time.Duration) echo.MiddlewareFunc {
	isAIPath := func(c echo.Context) bool {
		return strings.HasPrefix(c.Request().URL.Path, "/api/v1/")
	}

	defaultMW := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: defaultTimeout,
		Skipper: isAIPath,
	})
	aiMW := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: aiTimeout,
		Skipper: func(c echo.Context) bool { return !isAIPath(c) },
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return defaultMW(aiMW(next))
	}
}
