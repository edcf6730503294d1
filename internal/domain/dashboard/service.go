package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard fetches projects and attendance concurrently and aggregates them
	GetDashboard(ctx context.Context, query DashboardQuery) (*DashboardResponse, error)

	// GetDeadlines returns the active projects ranked by deadline
	GetDeadlines(ctx context.Context, query DashboardQuery) (*DeadlinesResponse, error)
}
