package womgo

import (
	"context"

	"github.com/osrstools/womgo/metric"
	"github.com/osrstools/womgo/model"
	"github.com/osrstools/womgo/routes"
)

// EfficiencyService handles the efficiency leaderboard endpoints.
type EfficiencyService struct {
	client *Client
}

// GetGlobalLeaderboards fetches the efficiency leaderboard for a
// computed metric, metric.Ehp or metric.Ehb.
func (s *EfficiencyService) GetGlobalLeaderboards(ctx context.Context, m metric.Computed, filter LeaderboardFilter) Result[[]model.Player] {
	p := newParams().str("metric", m.String())
	filter.apply(p)

	route := routes.GlobalEfficiencyLeaders.Compile().WithParams(p.values)

	return fetch(ctx, s.client, route, nil, s.client.serde.EfficiencyLeaderboard)
}

// GetCombinedLeaderboards fetches the leaderboard ranked by combined
// efficiency, the sum of hours played and hours bossed.
func (s *EfficiencyService) GetCombinedLeaderboards(ctx context.Context, filter LeaderboardFilter) Result[[]model.Player] {
	p := newParams().str("metric", "ehp+ehb")
	filter.apply(p)

	route := routes.GlobalEfficiencyLeaders.Compile().WithParams(p.values)

	return fetch(ctx, s.client, route, nil, s.client.serde.EfficiencyLeaderboard)
}
