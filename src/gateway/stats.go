package gateway

import (
	"context"

	"github.com/oyenscilik/cms-admin/src/apiclient"
	"github.com/oyenscilik/cms-admin/src/models"
)

// StatsGateway wraps the read-only /admin/stats endpoints.
type StatsGateway struct {
	client *apiclient.Client
}

// NewStatsGateway creates the stats gateway.
func NewStatsGateway(client *apiclient.Client) *StatsGateway {
	return &StatsGateway{client: client}
}

// Dashboard returns the aggregate stats snapshot.
func (g *StatsGateway) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := g.client.Get(ctx, "/admin/stats/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecentActivity returns the latest learner activity entries.
func (g *StatsGateway) RecentActivity(ctx context.Context) ([]models.ActivityEntry, error) {
	var out []models.ActivityEntry
	if err := g.client.Get(ctx, "/admin/stats/recent-activity", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopLearners returns the leaderboard.
func (g *StatsGateway) TopLearners(ctx context.Context) ([]models.TopLearner, error) {
	var out []models.TopLearner
	if err := g.client.Get(ctx, "/admin/stats/top-learners", &out); err != nil {
		return nil, err
	}
	return out, nil
}
