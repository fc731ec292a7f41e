package womgo

import (
	"context"

	"github.com/osrstools/womgo/model"
	"github.com/osrstools/womgo/routes"
)

// GroupService handles the group endpoints.
type GroupService struct {
	client *Client
}

// SearchGroups searches for groups whose name matches the given
// partial name.
func (s *GroupService) SearchGroups(ctx context.Context, name string, limit, offset int) Result[[]model.Group] {
	route := routes.SearchGroups.Compile().
		WithParams(newParams().str("name", name).pagination(limit, offset).values)

	return fetch(ctx, s.client, route, nil, s.client.serde.Groups)
}

// GetDetails fetches the detail record for the group, including its
// member list.
func (s *GroupService) GetDetails(ctx context.Context, id int) Result[model.GroupDetail] {
	route := routes.GroupDetails.Compile(id)

	return fetch(ctx, s.client, route, nil, s.client.serde.GroupDetail)
}

// DeleteGroup deletes the group. The verification code issued at
// creation time authorizes the deletion.
func (s *GroupService) DeleteGroup(ctx context.Context, id int, verificationCode string) Result[model.HTTPSuccess] {
	route := routes.DeleteGroup.Compile(id)
	payload := map[string]string{"verificationCode": verificationCode}

	return fetchMessage(ctx, s.client, route, payload)
}

// GetCompetitions fetches the competitions hosted by the group.
func (s *GroupService) GetCompetitions(ctx context.Context, id int) Result[[]model.Competition] {
	route := routes.GroupCompetitions.Compile(id)

	return fetch(ctx, s.client, route, nil, s.client.serde.Competitions)
}
