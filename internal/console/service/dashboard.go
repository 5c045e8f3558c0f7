package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/stellar/internal/console/store"
)

// DashboardStats is what the console home page shows.
type DashboardStats struct {
	TotalUsers  int
	ActiveUsers int
	Viewer      string
	Role        string
	LastLogin   time.Time
}

type DashboardService struct {
	Store store.Store
}

// Stats counts users and describes the viewer. A viewer that no longer
// exists gets the counts only.
func (s *DashboardService) Stats(ctx context.Context, viewerID string) (DashboardStats, error) {
	total, active, err := s.Store.Users().Count(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	stats := DashboardStats{TotalUsers: total, ActiveUsers: active}

	viewer, err := s.Store.Users().GetUserByID(ctx, viewerID)
	switch {
	case err == nil:
		stats.Viewer, stats.Role, stats.LastLogin = viewer.Name, viewer.Role, viewer.LastLogin
	case !errors.Is(err, store.ErrNotFound):
		return DashboardStats{}, err
	}
	return stats, nil
}
