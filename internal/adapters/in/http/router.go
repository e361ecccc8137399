// Package http exposes the ordering use cases over HTTP with echo.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"ordering/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouterConfig carries the cross-cutting settings of the HTTP layer.
type RouterConfig struct {
	Logger      *slog.Logger
	Development bool
	Metrics     *Metrics
}

// NewRouter builds the echo instance: middleware, health and metrics endpoints,
// Swagger UI and the API routes of server. It fails when the embedded OpenAPI
// document does not load.
func NewRouter(server servers.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load OpenAPI document: %w", err)
	}

	logger := cfg.Logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger, cfg.Development)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "Request handled",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("requestId", v.RequestID))
			return nil
		},
	}))
	// Metrics wraps Recover so that recovered panics are counted as 500s.
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware())
		e.GET("/metrics", cfg.Metrics.Handler())
	}
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if err = registerSwagger(e, swagger); err != nil {
		return nil, err
	}

	servers.RegisterHandlers(e, server)
	return e, nil
}
