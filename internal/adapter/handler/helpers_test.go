package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"news-dashboard/internal/adapter/view"
	"news-dashboard/internal/domain"
	"news-dashboard/internal/infrastructure/session"
	"news-dashboard/internal/mocks"
	"news-dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServer struct {
	echo     *echo.Echo
	fetcher  *mocks.MockNewsFetcher
	sessions *session.Store[*usecase.Shell]
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockNewsFetcher(ctrl)

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	sessions := session.NewStore[*usecase.Shell](time.Hour)
	t.Cleanup(sessions.Close)

	svc := usecase.NewDashboardService(fetcher, nil)
	e := echo.New()
	e.Renderer = renderer
	Handlers{
		Health:    NewHealthHandler(sessions),
		Dashboard: NewDashboardHandler(svc, sessions, time.Hour, false),
		API:       NewAPIHandler(svc),
	}.Register(e)

	return &testServer{echo: e, fetcher: fetcher, sessions: sessions}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func testArticles() []domain.Article {
	return []domain.Article{
		{
			ID:          "1",
			Title:       "Fed holds rates steady",
			Description: "Markets rally after the decision",
			PublishedAt: "2024-03-05T14:30:00Z",
			URL:         "https://example.com/fed",
			Source:      &domain.ArticleSource{Name: "Reuters"},
			Sentiment:   &domain.ArticleSentiment{Label: "positive"},
		},
		{
			ID:          "2",
			Title:       "Oil slides on weak demand",
			Description: "Crude falls for a third day",
			Source:      &domain.ArticleSource{Name: "Bloomberg"},
			Sentiment:   &domain.ArticleSentiment{Label: "negative"},
		},
	}
}

func (s *testServer) expectLoad() {
	articles := testArticles()
	s.fetcher.EXPECT().FetchArticles(gomock.Any(), gomock.Nil()).
		Return(&domain.ArticlesEnvelope{Status: "success", Count: len(articles), Data: articles}, nil)
	s.fetcher.EXPECT().FetchSources(gomock.Any()).
		Return(&domain.SourcesEnvelope{Status: "success", Count: 2, Data: []string{"Bloomberg", "Reuters"}}, nil)
	s.fetcher.EXPECT().FetchStats(gomock.Any()).
		Return(&domain.StatsEnvelope{Status: "success", Data: &domain.Stats{
			TotalArticles:         2,
			SentimentDistribution: domain.SentimentDistribution{Positive: 1, Negative: 1},
		}}, nil)
}

func (s *testServer) expectFailedLoad() {
	s.fetcher.EXPECT().FetchArticles(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUpstreamUnavailable)
	s.fetcher.EXPECT().FetchSources(gomock.Any()).Return(&domain.SourcesEnvelope{}, nil)
	s.fetcher.EXPECT().FetchStats(gomock.Any()).Return(&domain.StatsEnvelope{}, nil)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatalf("response has no %s cookie", SessionCookieName)
	return nil
}
