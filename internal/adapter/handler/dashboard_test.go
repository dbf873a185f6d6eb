package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"news-dashboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_Mount(t *testing.T) {
	srv := newTestServer(t)
	srv.expectLoad()

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	body := rec.Body.String()
	assert.Contains(t, body, "Financial News Aggregator")
	assert.Contains(t, body, "News Articles (2)")
	assert.Contains(t, body, "Fed holds rates steady")
	assert.Contains(t, body, "Oil slides on weak demand")
	assert.Contains(t, body, "Positive: 1 (50.0%)")

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	shell, ok := srv.sessions.Get(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, usecase.PhaseReady, shell.Phase())
}

func TestDashboardHandler_RemountReplacesSession(t *testing.T) {
	srv := newTestServer(t)
	srv.expectLoad()
	srv.expectLoad()

	first := sessionCookie(t, srv.do(httptest.NewRequest(http.MethodGet, "/", nil)))
	require.Equal(t, 1, srv.sessions.Len())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(first)
	second := sessionCookie(t, srv.do(req))

	assert.NotEqual(t, first.Value, second.Value)
	_, ok := srv.sessions.Get(first.Value)
	assert.False(t, ok, "previous session must be dropped on remount")
	_, ok = srv.sessions.Get(second.Value)
	assert.True(t, ok)
	assert.Equal(t, 1, srv.sessions.Len())
}

func TestDashboardHandler_MountIgnoresUnknownCookie(t *testing.T) {
	srv := newTestServer(t)
	srv.expectLoad()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale"})
	rec := srv.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, "stale", sessionCookie(t, rec).Value)
	assert.Equal(t, 1, srv.sessions.Len())
}

func TestDashboardHandler_MountFailureShowsErrorView(t *testing.T) {
	srv := newTestServer(t)
	srv.expectFailedLoad()

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Something went wrong")
	assert.Contains(t, body, "Failed to fetch data. Please try again later.")
	assert.NotContains(t, body, "Loading news...")
	assert.NotContains(t, body, "news API unavailable")
}

func TestDashboardHandler_FilterDoesNotRefetch(t *testing.T) {
	srv := newTestServer(t)
	srv.expectLoad() // exactly one set of fetches for the whole test

	cookie := sessionCookie(t, srv.do(httptest.NewRequest(http.MethodGet, "/", nil)))

	tests := []struct {
		name     string
		query    string
		contains []string
		excludes []string
	}{
		{
			name:     "source",
			query:    "?source=Reuters",
			contains: []string{"News Articles (1)", "Fed holds rates steady"},
			excludes: []string{"Oil slides on weak demand"},
		},
		{
			name:     "sentiment",
			query:    "?sentiment=negative",
			contains: []string{"News Articles (1)", "Oil slides on weak demand"},
			excludes: []string{"Fed holds rates steady"},
		},
		{
			name:     "case-insensitive search",
			query:    "?search=CRUDE",
			contains: []string{"Oil slides on weak demand"},
			excludes: []string{"Fed holds rates steady"},
		},
		{
			name:     "unmatched source",
			query:    "?source=Financial+Times",
			contains: []string{"No news articles found. Try adjusting your filters."},
		},
		{
			name:     "cleared",
			query:    "",
			contains: []string{"News Articles (2)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, FilterPath+tt.query, nil)
			req.AddCookie(cookie)
			rec := srv.do(req)

			assert.Equal(t, http.StatusOK, rec.Code)
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestDashboardHandler_FilterWithoutSessionRedirects(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(httptest.NewRequest(http.MethodGet, FilterPath+"?source=Reuters", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, FilterPath, nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "expired"})
	rec = srv.do(req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestDashboardHandler_SetField(t *testing.T) {
	srv := newTestServer(t)
	srv.expectLoad()

	cookie := sessionCookie(t, srv.do(httptest.NewRequest(http.MethodGet, "/", nil)))

	req := httptest.NewRequest(http.MethodGet, FilterPath+"/sentiment?value=positive", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "News Articles (1)")

	// The earlier field stays selected when another changes.
	req = httptest.NewRequest(http.MethodGet, FilterPath+"/search?value=oil", nil)
	req.AddCookie(cookie)
	rec = srv.do(req)
	assert.Contains(t, rec.Body.String(), "No news articles found. Try adjusting your filters.")

	shell, ok := srv.sessions.Get(cookie.Value)
	require.True(t, ok)
	sel := shell.Snapshot().Selection
	assert.Equal(t, "positive", sel.Sentiment)
	assert.Equal(t, "oil", sel.Search)
}

func TestDashboardHandler_SetFieldUnknown(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(httptest.NewRequest(http.MethodGet, FilterPath+"/author?value=x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardHandler_LoadingSessionRendersLoadingView(t *testing.T) {
	srv := newTestServer(t)

	// A shell that has not settled yet.
	id := srv.sessions.Create(usecase.NewShell(srv.fetcher, nil))

	req := httptest.NewRequest(http.MethodGet, FilterPath+"?source=Reuters", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: id})
	rec := srv.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loading news...")
	assert.Contains(t, rec.Body.String(), "url=/filter?source=Reuters")
}
