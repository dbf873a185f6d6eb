package handler

import (
	"net/http"
	"time"

	"news-dashboard/internal/adapter/view"
	"news-dashboard/internal/domain"
	"news-dashboard/internal/usecase"
	"news-dashboard/utils/logger"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the dashboard session ID.
const SessionCookieName = "newsdash_session"

// FilterPath is the route that re-renders an existing session with a new selection.
const FilterPath = "/filter"

// ShellSessions stores one dashboard shell per visitor.
type ShellSessions interface {
	Create(shell *usecase.Shell) string
	Get(id string) (*usecase.Shell, bool)
	Delete(id string)
}

// DashboardHandler serves the server-rendered dashboard.
type DashboardHandler struct {
	svc          *usecase.DashboardService
	sessions     ShellSessions
	sessionTTL   time.Duration
	secureCookie bool
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(svc *usecase.DashboardService, sessions ShellSessions, sessionTTL time.Duration, secureCookie bool) *DashboardHandler {
	return &DashboardHandler{
		svc:          svc,
		sessions:     sessions,
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
	}
}

// Mount handles GET /: it replaces the visitor's session with a new one, loads
// it and renders the result.
func (h *DashboardHandler) Mount(c echo.Context) error {
	if old, err := c.Cookie(SessionCookieName); err == nil && old.Value != "" {
		h.sessions.Delete(old.Value)
	}

	shell := h.svc.NewShell()
	id := h.sessions.Create(shell)
	c.SetCookie(h.sessionCookie(id))

	ctx := logger.WithSessionID(c.Request().Context(), id)
	c.SetRequest(c.Request().WithContext(ctx))
	log := logger.GlobalContext.WithContext(ctx)

	if err := shell.Load(ctx); err != nil {
		log.Warn("dashboard mount failed", "error", err)
	}
	return h.render(c, shell.Snapshot())
}

// Filter handles GET /filter: it applies the query selection to the visitor's
// shell without refetching. Visitors without a live session are sent to /.
func (h *DashboardHandler) Filter(c echo.Context) error {
	shell, err := h.shellFor(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return h.render(c, shell.ApplySelection(selectionFromQuery(c)))
}

// SetField handles GET /filter/:field?value=, changing one field of the selection.
func (h *DashboardHandler) SetField(c echo.Context) error {
	field := c.Param("field")
	if !domain.IsFilterField(field) {
		return mapDomainError(domain.ErrUnknownFilterField)
	}

	shell, err := h.shellFor(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return h.render(c, shell.SetFilter(field, c.QueryParam("value")))
}

func (h *DashboardHandler) shellFor(c echo.Context) (*usecase.Shell, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, domain.ErrSessionNotFound
	}
	ctx := logger.WithSessionID(c.Request().Context(), cookie.Value)
	c.SetRequest(c.Request().WithContext(ctx))

	shell, ok := h.sessions.Get(cookie.Value)
	if !ok {
		logger.GlobalContext.WithContext(ctx).Debug("dashboard session expired")
		return nil, domain.ErrSessionNotFound
	}
	return shell, nil
}

func (h *DashboardHandler) render(c echo.Context, snap usecase.Snapshot) error {
	name, page := view.PageFor(snap, FilterPath)
	if name == view.TemplateLoading {
		page.RefreshURL = c.Request().URL.RequestURI()
	}

	status := http.StatusOK
	if snap.Phase == usecase.PhaseError {
		status = http.StatusBadGateway
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	if err := c.Render(status, name, page); err != nil {
		logger.GlobalContext.WithContext(c.Request().Context()).Error("render failed", "template", name, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error").SetInternal(err)
	}
	return nil
}

func (h *DashboardHandler) sessionCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
