package womgo

import (
	"context"

	"github.com/osrstools/womgo/metric"
	"github.com/osrstools/womgo/model"
	"github.com/osrstools/womgo/routes"
)

// DeltaService handles the gains leaderboard endpoints.
type DeltaService struct {
	client *Client
}

// GetGlobalLeaderboards fetches the top gainers for the metric over
// the period.
func (s *DeltaService) GetGlobalLeaderboards(ctx context.Context, m metric.Metric, period model.Period, filter LeaderboardFilter) Result[[]model.DeltaLeaderboardEntry] {
	p := newParams().
		str("metric", m.String()).
		str("period", string(period))
	filter.apply(p)

	route := routes.GlobalDeltaLeaders.Compile().WithParams(p.values)

	return fetch(ctx, s.client, route, nil, s.client.serde.DeltaLeaderboard)
}
