package domain

//go:generate go run go.uber.org/mock/mockgen -source=port.go -destination=../mocks/mock_news_port.go -package=mocks

import (
	"context"
	"net/url"
)

// NewsFetcher reads the three resources the dashboard is built from.
// Implementations pass failures through without retrying.
type NewsFetcher interface {
	FetchArticles(ctx context.Context, params url.Values) (*ArticlesEnvelope, error)
	FetchSources(ctx context.Context) (*SourcesEnvelope, error)
	FetchStats(ctx context.Context) (*StatsEnvelope, error)
}
