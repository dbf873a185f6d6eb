package view

import (
	"news-dashboard/internal/usecase"
)

// Template names.
const (
	TemplateDashboard = "dashboard.html"
	TemplateLoading   = "loading.html"
	TemplateError     = "error.html"
)

// Header texts.
const (
	AppTitle    = "Financial News Aggregator"
	AppSubtitle = "Real-time financial news with sentiment analysis"
)

// LoadingRefreshSeconds is how often the loading view polls for the settled shell.
const LoadingRefreshSeconds = 1

// Dashboard is the ready-phase body: filter panel, chart and grid.
type Dashboard struct {
	FilterAction string
	Panel        FilterPanel
	Chart        SentimentChart
	Grid         NewsGrid
}

// Page is the data handed to every page template.
type Page struct {
	Title          string
	Subtitle       string
	RefreshURL     string
	RefreshSeconds int
	Error          ErrorState
	Dashboard      Dashboard
}

// PageFor selects the template for the snapshot's phase and builds its data.
func PageFor(snap usecase.Snapshot, filterAction string) (string, Page) {
	page := Page{Title: AppTitle, Subtitle: AppSubtitle}

	switch snap.Phase {
	case usecase.PhaseLoading:
		page.RefreshURL = filterAction
		page.RefreshSeconds = LoadingRefreshSeconds
		return TemplateLoading, page
	case usecase.PhaseError:
		page.Error = NewErrorState(snap.ErrorMessage)
		return TemplateError, page
	default:
		page.Dashboard = Dashboard{
			FilterAction: filterAction,
			Panel:        NewFilterPanel(snap.Sources, snap.Selection),
			Chart:        NewSentimentChart(snap.Stats),
			Grid:         NewNewsGrid(snap.Articles),
		}
		return TemplateDashboard, page
	}
}
