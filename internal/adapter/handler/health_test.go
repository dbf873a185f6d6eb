package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCounter int

func (f fixedCounter) Len() int { return int(f) }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name     string
		sessions SessionCounter
		want     string
	}{
		{
			name:     "reports live sessions",
			sessions: fixedCounter(3),
			want:     `{"status":"healthy","service":"news-dashboard","sessions":3}`,
		},
		{
			name: "no session store",
			want: `{"status":"healthy","service":"news-dashboard","sessions":0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, NewHealthHandler(tt.sessions).Handle(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestHealthRouteCountsSessions(t *testing.T) {
	srv := newTestServer(t)
	srv.expectLoad()

	srv.do(httptest.NewRequest(http.MethodGet, "/", nil))
	rec := srv.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"news-dashboard","sessions":1}`, rec.Body.String())
}
