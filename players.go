package womgo

import (
	"context"
	"time"

	"github.com/osrstools/womgo/model"
	"github.com/osrstools/womgo/routes"
)

// PlayerService handles the player endpoints.
type PlayerService struct {
	client *Client
}

// GainsQuery narrows a gains lookup to a named period or an explicit
// date range. Exactly one of the two forms should be set; the remote
// rejects requests with neither.
type GainsQuery struct {
	Period    *model.Period
	StartDate *time.Time
	EndDate   *time.Time
}

func (q GainsQuery) apply(p *params) {
	enumParam(p, "period", q.Period)

	if q.StartDate != nil {
		p.str("startDate", q.StartDate.UTC().Format(time.RFC3339))
	}

	if q.EndDate != nil {
		p.str("endDate", q.EndDate.UTC().Format(time.RFC3339))
	}
}

// SearchPlayers searches for players whose username matches the given
// partial username. Zero limit and offset fall back to the remote
// defaults.
func (s *PlayerService) SearchPlayers(ctx context.Context, username string, limit, offset int) Result[[]model.Player] {
	route := routes.SearchPlayers.Compile().
		WithParams(newParams().str("username", username).pagination(limit, offset).values)

	return fetch(ctx, s.client, route, nil, s.client.serde.Players)
}

// UpdatePlayer requests a fresh hiscores sync for the player and
// returns the updated detail record.
func (s *PlayerService) UpdatePlayer(ctx context.Context, username string) Result[model.PlayerDetail] {
	route := routes.UpdatePlayer.Compile(username)

	return fetch(ctx, s.client, route, nil, s.client.serde.PlayerDetail)
}

// AssertPlayerType rechecks the game mode of the player, reporting
// whether it changed.
func (s *PlayerService) AssertPlayerType(ctx context.Context, username string) Result[model.AssertPlayerType] {
	route := routes.AssertPlayerType.Compile(username)

	return fetch(ctx, s.client, route, nil, s.client.serde.AssertPlayerType)
}

// GetDetails fetches the detail record for the player.
func (s *PlayerService) GetDetails(ctx context.Context, username string) Result[model.PlayerDetail] {
	route := routes.PlayerDetails.Compile(username)

	return fetch(ctx, s.client, route, nil, s.client.serde.PlayerDetail)
}

// GetDetailsByID fetches the detail record for the player with the
// given id.
func (s *PlayerService) GetDetailsByID(ctx context.Context, id int) Result[model.PlayerDetail] {
	route := routes.PlayerDetailsByID.Compile(id)

	return fetch(ctx, s.client, route, nil, s.client.serde.PlayerDetail)
}

// GetGains fetches the gains the player made over the queried window.
func (s *PlayerService) GetGains(ctx context.Context, username string, query GainsQuery) Result[model.PlayerGains] {
	p := newParams()
	query.apply(p)

	route := routes.PlayerGains.Compile(username).WithParams(p.values)

	return fetch(ctx, s.client, route, nil, s.client.serde.PlayerGains)
}

// GetSnapshots fetches the snapshots recorded for the player over the
// queried window.
func (s *PlayerService) GetSnapshots(ctx context.Context, username string, query GainsQuery) Result[[]model.Snapshot] {
	p := newParams()
	query.apply(p)

	route := routes.PlayerSnapshots.Compile(username).WithParams(p.values)

	return fetch(ctx, s.client, route, nil, s.client.serde.Snapshots)
}

// GetNameChanges fetches the name changes submitted for the player.
func (s *PlayerService) GetNameChanges(ctx context.Context, username string) Result[[]model.NameChange] {
	route := routes.PlayerNameChanges.Compile(username)

	return fetch(ctx, s.client, route, nil, s.client.serde.NameChanges)
}

// GetGroupMemberships fetches the groups the player belongs to.
func (s *PlayerService) GetGroupMemberships(ctx context.Context, username string, limit, offset int) Result[[]model.PlayerMembership] {
	route := routes.PlayerGroups.Compile(username).
		WithParams(newParams().pagination(limit, offset).values)

	return fetch(ctx, s.client, route, nil, s.client.serde.PlayerMemberships)
}
