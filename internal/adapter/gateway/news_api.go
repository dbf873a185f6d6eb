package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"news-dashboard/internal/domain"
	"news-dashboard/internal/infrastructure/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// News API paths.
const (
	ArticlesPath = "/api/news"
	SourcesPath  = "/api/news/sources"
	StatsPath    = "/api/news/stats"
)

// endpoint labels used in logs and metrics
const (
	endpointArticles = "articles"
	endpointSources  = "sources"
	endpointStats    = "stats"
)

// NewsAPIGateway implements domain.NewsFetcher over the news API's REST surface.
type NewsAPIGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewNewsAPIGateway creates a gateway with a tuned HTTP transport.
func NewNewsAPIGateway(baseURL string, timeout time.Duration, logger *slog.Logger) *NewsAPIGateway {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	return NewNewsAPIGatewayWithClient(baseURL, &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}, logger)
}

// NewNewsAPIGatewayWithClient creates a gateway around an existing HTTP client.
func NewNewsAPIGatewayWithClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *NewsAPIGateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &NewsAPIGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchArticles reads GET /api/news, passing params through unvalidated.
func (g *NewsAPIGateway) FetchArticles(ctx context.Context, params url.Values) (*domain.ArticlesEnvelope, error) {
	var env domain.ArticlesEnvelope
	if err := g.getJSON(ctx, endpointArticles, ArticlesPath, params, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// FetchSources reads GET /api/news/sources.
func (g *NewsAPIGateway) FetchSources(ctx context.Context) (*domain.SourcesEnvelope, error) {
	var env domain.SourcesEnvelope
	if err := g.getJSON(ctx, endpointSources, SourcesPath, nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// FetchStats reads GET /api/news/stats.
func (g *NewsAPIGateway) FetchStats(ctx context.Context) (*domain.StatsEnvelope, error) {
	var env domain.StatsEnvelope
	if err := g.getJSON(ctx, endpointStats, StatsPath, nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// BuildURL joins the base URL, path and query.
func (g *NewsAPIGateway) BuildURL(path string, params url.Values) string {
	u := g.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (g *NewsAPIGateway) getJSON(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	target := g.BuildURL(path, params)

	ctx, span := otel.Tracer("news-dashboard").Start(ctx, "newsapi."+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(semconv.HTTPRequestMethodKey.String(http.MethodGet), semconv.URLFull(target)))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstream(endpoint, 0, time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	metrics.RecordUpstream(endpoint, resp.StatusCode, time.Since(start))
	span.SetAttributes(semconv.HTTPResponseStatusCode(resp.StatusCode))
	g.logger.DebugContext(ctx, "news API responded",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
		return &domain.UpstreamStatusError{Endpoint: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode error")
		return fmt.Errorf("%w: %s: %w", domain.ErrUpstreamDecode, path, err)
	}
	return nil
}
