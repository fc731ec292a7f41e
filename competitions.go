package womgo

import (
	"context"

	"github.com/osrstools/womgo/metric"
	"github.com/osrstools/womgo/model"
	"github.com/osrstools/womgo/routes"
)

// CompetitionService handles the competition endpoints.
type CompetitionService struct {
	client *Client
}

// CompetitionFilter narrows a competition search. Unset fields do not
// constrain the results.
type CompetitionFilter struct {
	Title  string
	Type   *model.CompetitionType
	Status *model.CompetitionStatus
	Metric *metric.Metric
}

func (f CompetitionFilter) apply(p *params) {
	p.str("title", f.Title)
	enumParam(p, "type", f.Type)
	enumParam(p, "status", f.Status)

	if f.Metric != nil {
		p.str("metric", f.Metric.String())
	}
}

// SearchCompetitions searches for competitions matching the filter.
func (s *CompetitionService) SearchCompetitions(ctx context.Context, filter CompetitionFilter, limit, offset int) Result[[]model.Competition] {
	p := newParams().pagination(limit, offset)
	filter.apply(p)

	route := routes.SearchCompetitions.Compile().WithParams(p.values)

	return fetch(ctx, s.client, route, nil, s.client.serde.Competitions)
}

// GetDetails fetches the detail record for the competition. A non-nil
// preview metric recomputes the standings as if the competition
// tracked that metric instead.
func (s *CompetitionService) GetDetails(ctx context.Context, id int, preview *metric.Metric) Result[model.CompetitionDetail] {
	p := newParams()
	if preview != nil {
		p.str("metric", preview.String())
	}

	route := routes.CompetitionDetails.Compile(id).WithParams(p.values)

	return fetch(ctx, s.client, route, nil, s.client.serde.CompetitionDetail)
}
