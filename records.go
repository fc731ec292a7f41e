package womgo

import (
	"context"

	"github.com/osrstools/womgo/metric"
	"github.com/osrstools/womgo/model"
	"github.com/osrstools/womgo/routes"
)

// RecordService handles the record endpoints.
type RecordService struct {
	client *Client
}

// LeaderboardFilter narrows a global leaderboard to a subset of the
// player base. Unset fields do not constrain the results.
type LeaderboardFilter struct {
	PlayerType  *model.PlayerType
	PlayerBuild *model.PlayerBuild
	Country     *model.Country
}

func (f LeaderboardFilter) apply(p *params) {
	enumParam(p, "playerType", f.PlayerType)
	enumParam(p, "playerBuild", f.PlayerBuild)
	enumParam(p, "country", f.Country)
}

// GetGlobalLeaderboards fetches the all-time best records for the
// metric and period.
func (s *RecordService) GetGlobalLeaderboards(ctx context.Context, m metric.Metric, period model.Period, filter LeaderboardFilter) Result[[]model.RecordLeaderboardEntry] {
	p := newParams().
		str("metric", m.String()).
		str("period", string(period))
	filter.apply(p)

	route := routes.GlobalRecordLeaders.Compile().WithParams(p.values)

	return fetch(ctx, s.client, route, nil, s.client.serde.RecordLeaderboard)
}
