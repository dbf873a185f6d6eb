package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"news-dashboard/internal/domain"
	"news-dashboard/internal/infrastructure/metrics"

	"golang.org/x/sync/errgroup"
)

// LoadErrorMessage is the only failure text a visitor ever sees.
const LoadErrorMessage = "Failed to fetch data. Please try again later."

// Phase is the lifecycle phase of a dashboard shell.
type Phase int

const (
	// PhaseLoading is the initial phase, held until the initial fetches settle.
	PhaseLoading Phase = iota
	// PhaseError is terminal; a new shell must be mounted to recover.
	PhaseError
	// PhaseReady holds loaded data and accepts filter changes.
	PhaseReady
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of a shell's view state.
type Snapshot struct {
	Phase        Phase
	ErrorMessage string
	Articles     []domain.Article
	Loaded       int
	Sources      []string
	Stats        *domain.Stats
	Selection    domain.FilterSelection
}

// Shell owns the canonical article collection, the filter selection and the
// derived filtered collection for one dashboard session.
type Shell struct {
	fetcher domain.NewsFetcher
	logger  *slog.Logger

	mu       sync.RWMutex
	started  bool
	phase    Phase
	errMsg   string
	news     []domain.Article
	filtered []domain.Article
	sources  []string
	stats    *domain.Stats
	filters  domain.FilterSelection
}

// NewShell creates a shell in PhaseLoading with an empty filter selection.
func NewShell(fetcher domain.NewsFetcher, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{
		fetcher: fetcher,
		logger:  logger,
		phase:   PhaseLoading,
	}
}

// Load issues the articles, sources and stats fetches in parallel and moves the
// shell to PhaseReady, or to PhaseError on the first failure. It runs at most once.
func (s *Shell) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return domain.ErrLoadAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	var (
		articles *domain.ArticlesEnvelope
		sources  *domain.SourcesEnvelope
		stats    *domain.StatsEnvelope
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		env, err := s.fetcher.FetchArticles(gctx, nil)
		if err != nil {
			return s.fetchFailed(gctx, "articles", err)
		}
		articles = env
		return nil
	})
	g.Go(func() error {
		env, err := s.fetcher.FetchSources(gctx)
		if err != nil {
			return s.fetchFailed(gctx, "sources", err)
		}
		sources = env
		return nil
	})
	g.Go(func() error {
		env, err := s.fetcher.FetchStats(gctx)
		if err != nil {
			return s.fetchFailed(gctx, "stats", err)
		}
		stats = env
		return nil
	})

	if err := g.Wait(); err != nil {
		s.mu.Lock()
		s.phase = PhaseError
		s.errMsg = LoadErrorMessage
		s.mu.Unlock()

		metrics.RecordLoad(PhaseError.String())
		return fmt.Errorf("%w: %w", domain.ErrDashboardLoad, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if articles != nil {
		s.news = articles.Data
	}
	if sources != nil {
		s.sources = sources.Data
	}
	if stats != nil {
		s.stats = stats.Data
	}
	s.phase = PhaseReady
	s.recompute()

	metrics.RecordLoad(PhaseReady.String())
	s.logger.InfoContext(ctx, "dashboard loaded",
		"articles", len(s.news),
		"sources", len(s.sources),
		"has_stats", s.stats != nil)
	return nil
}

// fetchFailed logs which endpoint failed; siblings cancelled by the group stay quiet.
func (s *Shell) fetchFailed(ctx context.Context, endpoint string, err error) error {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return err
	}
	s.logger.ErrorContext(ctx, "error fetching data", "endpoint", endpoint, "error", err)
	return fmt.Errorf("fetch %s: %w", endpoint, err)
}

// SetFilter changes one field of the filter selection and recomputes the filtered collection.
func (s *Shell) SetFilter(name, value string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = s.filters.With(name, value)
	s.recompute()
	return s.snapshotLocked()
}

// ApplySelection replaces the whole filter selection and recomputes the filtered collection.
func (s *Shell) ApplySelection(sel domain.FilterSelection) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = sel
	s.recompute()
	return s.snapshotLocked()
}

// Phase returns the current phase.
func (s *Shell) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Snapshot returns a copy of the current view state.
func (s *Shell) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// recompute replaces the filtered collection; callers hold s.mu.
func (s *Shell) recompute() {
	s.filtered = domain.ApplyFilter(s.news, s.filters)
	metrics.RecordFiltered(len(s.filtered))
}

func (s *Shell) snapshotLocked() Snapshot {
	var articles []domain.Article
	if s.filtered != nil {
		articles = make([]domain.Article, len(s.filtered))
		for i, a := range s.filtered {
			articles[i] = a.Clone()
		}
	}
	return Snapshot{
		Phase:        s.phase,
		ErrorMessage: s.errMsg,
		Articles:     articles,
		Loaded:       len(s.news),
		Sources:      append([]string(nil), s.sources...),
		Stats:        s.stats.Clone(),
		Selection:    s.filters,
	}
}
