package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"news-dashboard/config"
	"news-dashboard/internal/adapter/gateway"
	"news-dashboard/internal/adapter/handler"
	"news-dashboard/internal/adapter/view"
	"news-dashboard/internal/infrastructure/session"
	"news-dashboard/internal/usecase"
	appmiddleware "news-dashboard/middleware"
	"news-dashboard/utils/logger"
	"news-dashboard/utils/otel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

func main() {
	// Docker healthcheck in the distroless image
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		slog.Warn("failed to initialize OpenTelemetry, continuing without tracing", "error", err)
		otelCfg.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Init(os.Getenv("LOG_LEVEL"), otelCfg.Enabled)
		slog.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}
	log := logger.Init(cfg.LogLevel, otelCfg.Enabled)

	log.InfoContext(ctx, "configuration loaded",
		"news_api_url", cfg.NewsAPIURL,
		"news_api_timeout", cfg.NewsAPITimeout,
		"port", cfg.Port,
		"session_ttl", cfg.SessionTTL)

	// Infrastructure
	newsGateway := gateway.NewNewsAPIGateway(cfg.NewsAPIURL, cfg.NewsAPITimeout, log)
	sessions := session.NewStore[*usecase.Shell](cfg.SessionTTL)
	defer sessions.Close()

	renderer, err := view.NewRenderer()
	if err != nil {
		log.ErrorContext(ctx, "failed to parse templates", "error", err)
		os.Exit(1)
	}

	// Usecases
	dashboardSvc := usecase.NewDashboardService(newsGateway, log)

	// Handlers
	handlers := handler.Handlers{
		Health:    handler.NewHealthHandler(sessions),
		Dashboard: handler.NewDashboardHandler(dashboardSvc, sessions, cfg.SessionTTL, cfg.SessionCookieSecure),
		API:       handler.NewAPIHandler(dashboardSvc),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(middleware.Recover())
	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.SecurityHeaders())
	if otelCfg.Enabled {
		e.Use(otelecho.Middleware(otelCfg.ServiceName))
		e.Use(appmiddleware.OTelStatusMiddleware())
	}
	e.Use(appmiddleware.RequestLogger())

	limiter := appmiddleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst, "/health", "/metrics")
	defer limiter.Close()
	e.Use(limiter.Middleware())

	handlers.Register(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	address := fmt.Sprintf(":%s", cfg.Port)
	log.InfoContext(ctx, "starting news-dashboard server", "address", address)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return otelShutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server exited properly")
}

// runHealthcheck performs a health check against the local server.
func runHealthcheck() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}
	return nil
}
