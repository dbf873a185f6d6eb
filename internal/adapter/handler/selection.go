package handler

import (
	"strings"

	"news-dashboard/internal/domain"

	"github.com/labstack/echo/v4"
)

// selectionFromQuery reads the filter selection from source, sentiment and search.
// The search term is kept verbatim; source and sentiment are trimmed.
func selectionFromQuery(c echo.Context) domain.FilterSelection {
	return domain.FilterSelection{
		Source:    strings.TrimSpace(c.QueryParam(domain.FilterFieldSource)),
		Sentiment: strings.TrimSpace(c.QueryParam(domain.FilterFieldSentiment)),
		Search:    c.QueryParam(domain.FilterFieldSearch),
	}
}
