package womgo

import (
	"context"

	"github.com/osrstools/womgo/model"
	"github.com/osrstools/womgo/routes"
)

// NameChangeService handles the name change endpoints.
type NameChangeService struct {
	client *Client
}

// SearchNameChanges searches the name change history. The username
// matches either side of a change; a nil status matches all statuses.
func (s *NameChangeService) SearchNameChanges(ctx context.Context, username string, status *model.NameChangeStatus, limit, offset int) Result[[]model.NameChange] {
	p := newParams().str("username", username).pagination(limit, offset)
	enumParam(p, "status", status)

	route := routes.SearchNameChanges.Compile().WithParams(p.values)

	return fetch(ctx, s.client, route, nil, s.client.serde.NameChanges)
}

// SubmitNameChange submits a pending name change from oldName to
// newName.
func (s *NameChangeService) SubmitNameChange(ctx context.Context, oldName, newName string) Result[model.NameChange] {
	payload := map[string]string{"oldName": oldName, "newName": newName}

	route := routes.SubmitNameChange.Compile()

	return fetch(ctx, s.client, route, payload, s.client.serde.NameChange)
}
