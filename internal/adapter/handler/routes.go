package handler

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler the service mounts.
type Handlers struct {
	Health    *HealthHandler
	Dashboard *DashboardHandler
	API       *APIHandler
}

// Register mounts the dashboard, API and health routes on e.
func (h Handlers) Register(e *echo.Echo) {
	e.GET("/health", h.Health.Handle)

	e.GET("/", h.Dashboard.Mount)
	e.GET(FilterPath, h.Dashboard.Filter)
	e.GET(FilterPath+"/:field", h.Dashboard.SetField)

	api := e.Group("/api/v1")
	api.GET("/dashboard", h.API.Dashboard)
}
