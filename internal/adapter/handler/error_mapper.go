package handler

import (
	"errors"
	"net/http"

	"news-dashboard/internal/domain"
	"news-dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// mapDomainError converts a domain error into an appropriate echo.HTTPError.
// Upstream detail never reaches the client.
func mapDomainError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrDashboardLoad),
		errors.Is(err, domain.ErrUpstreamUnavailable),
		errors.Is(err, domain.ErrUpstreamStatus),
		errors.Is(err, domain.ErrUpstreamDecode):
		return echo.NewHTTPError(http.StatusBadGateway, usecase.LoadErrorMessage)

	case errors.Is(err, domain.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "dashboard session not found")

	case errors.Is(err, domain.ErrLoadAlreadyStarted):
		return echo.NewHTTPError(http.StatusConflict, "dashboard already loaded")

	case errors.Is(err, domain.ErrUnknownFilterField):
		return echo.NewHTTPError(http.StatusBadRequest, "unknown filter field")

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
