package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionCounter reports how many dashboard sessions are live.
type SessionCounter interface {
	Len() int
}

// HealthHandler reports liveness together with the session count.
type HealthHandler struct {
	sessions SessionCounter
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(sessions SessionCounter) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

type healthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Sessions int    `json:"sessions"`
}

// Handle serves GET /health.
func (h *HealthHandler) Handle(c echo.Context) error {
	resp := healthResponse{Status: "healthy", Service: "news-dashboard"}
	if h.sessions != nil {
		resp.Sessions = h.sessions.Len()
	}
	return c.JSON(http.StatusOK, resp)
}
