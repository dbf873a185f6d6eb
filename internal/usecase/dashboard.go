package usecase

import (
	"context"
	"log/slog"

	"news-dashboard/internal/domain"
)

// DashboardService mounts shells against a news fetcher.
type DashboardService struct {
	fetcher domain.NewsFetcher
	logger  *slog.Logger
}

// NewDashboardService creates a new DashboardService usecase.
func NewDashboardService(fetcher domain.NewsFetcher, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{fetcher: fetcher, logger: logger}
}

// NewShell returns an unloaded shell.
func (d *DashboardService) NewShell() *Shell {
	return NewShell(d.fetcher, d.logger)
}

// Mount creates a shell and runs its initial load. A failed load is reflected
// in the shell's phase; the error is returned for logging only.
func (d *DashboardService) Mount(ctx context.Context) (*Shell, error) {
	shell := d.NewShell()
	err := shell.Load(ctx)
	return shell, err
}

// View mounts a throwaway shell, applies sel and returns the resulting snapshot.
func (d *DashboardService) View(ctx context.Context, sel domain.FilterSelection) (Snapshot, error) {
	shell, err := d.Mount(ctx)
	if err != nil {
		return shell.Snapshot(), err
	}
	return shell.ApplySelection(sel), nil
}
