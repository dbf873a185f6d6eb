package handler

import (
	"net/http"

	"news-dashboard/internal/domain"
	"news-dashboard/internal/usecase"
	"news-dashboard/utils/logger"

	"github.com/labstack/echo/v4"
)

// APIHandler serves the JSON mirror of the dashboard.
type APIHandler struct {
	svc *usecase.DashboardService
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(svc *usecase.DashboardService) *APIHandler {
	return &APIHandler{svc: svc}
}

// dashboardResponse is the JSON shape of one dashboard view.
type dashboardResponse struct {
	Phase     string                 `json:"phase"`
	Selection domain.FilterSelection `json:"selection"`
	Loaded    int                    `json:"loaded"`
	Count     int                    `json:"count"`
	Articles  []domain.Article       `json:"articles"`
	Sources   []string               `json:"sources"`
	Stats     *domain.Stats          `json:"stats"`
}

// Dashboard handles GET /api/v1/dashboard. Every request loads fresh data and
// applies the query selection; no session is involved.
func (h *APIHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	snap, err := h.svc.View(ctx, selectionFromQuery(c))
	if err != nil {
		logger.GlobalContext.WithContext(ctx).Warn("dashboard api load failed", "error", err)
		return mapDomainError(err)
	}

	articles := snap.Articles
	if articles == nil {
		articles = []domain.Article{}
	}
	sources := snap.Sources
	if sources == nil {
		sources = []string{}
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Phase:     snap.Phase.String(),
		Selection: snap.Selection,
		Loaded:    snap.Loaded,
		Count:     len(articles),
		Articles:  articles,
		Sources:   sources,
		Stats:     snap.Stats,
	})
}
