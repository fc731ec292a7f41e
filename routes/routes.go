// Package routes holds the route descriptors for every supported API
// operation. A Route is static configuration data: HTTP verb, path
// template with positional placeholders, and whether the operation
// needs an API key.
package routes

import (
	"fmt"
	"net/url"
	"strings"
)

// Route is an endpoint that has not been compiled yet.
type Route struct {
	// Method is the request method, i.e. GET, POST.
	Method string

	// URI is the path template; each {} placeholder is filled
	// positionally at compile time.
	URI string

	// RequiresAPIKey marks operations rejected without an api key.
	RequiresAPIKey bool
}

// Compile fills the URI placeholders with the given arguments and
// returns the compiled form. Arguments are escaped for safe use in a
// path segment.
func (r Route) Compile(args ...any) *CompiledRoute {
	uri := r.URI
	for _, arg := range args {
		segment := url.PathEscape(fmt.Sprintf("%v", arg))
		uri = strings.Replace(uri, "{}", segment, 1)
	}

	return &CompiledRoute{Route: r, URI: uri, Params: url.Values{}}
}

// CompiledRoute is a Route with its placeholders filled and query
// params attached.
type CompiledRoute struct {
	Route Route

	// URI is the concrete request path.
	URI string

	// Params holds the query parameters for the request.
	Params url.Values
}

// Method returns the verb of the underlying route.
func (c *CompiledRoute) Method() string { return c.Route.Method }

// WithParams adds query params and returns the route for chaining.
// Nil values passed through helper builders are expected to have been
// filtered already; everything given here is sent.
func (c *CompiledRoute) WithParams(params url.Values) *CompiledRoute {
	for key, values := range params {
		for _, v := range values {
			c.Params.Add(key, v)
		}
	}

	return c
}

// The route table. Keyed operations the client exposes; near-identical
// siblings from the full catalogue are added here as the surface
// grows.
var (
	SearchPlayers     = Route{Method: "GET", URI: "/players/search"}
	UpdatePlayer      = Route{Method: "POST", URI: "/players/{}"}
	AssertPlayerType  = Route{Method: "POST", URI: "/players/{}/assert-type"}
	PlayerDetails     = Route{Method: "GET", URI: "/players/{}"}
	PlayerDetailsByID = Route{Method: "GET", URI: "/players/id/{}"}
	PlayerGains       = Route{Method: "GET", URI: "/players/{}/gained"}
	PlayerSnapshots   = Route{Method: "GET", URI: "/players/{}/snapshots"}
	PlayerNameChanges = Route{Method: "GET", URI: "/players/{}/names"}
	PlayerGroups      = Route{Method: "GET", URI: "/players/{}/groups"}

	SearchNameChanges = Route{Method: "GET", URI: "/names"}
	SubmitNameChange  = Route{Method: "POST", URI: "/names"}

	GlobalRecordLeaders     = Route{Method: "GET", URI: "/records/leaderboard"}
	GlobalDeltaLeaders      = Route{Method: "GET", URI: "/deltas/leaderboard"}
	GlobalEfficiencyLeaders = Route{Method: "GET", URI: "/efficiency/leaderboard"}

	SearchGroups      = Route{Method: "GET", URI: "/groups"}
	GroupDetails      = Route{Method: "GET", URI: "/groups/{}"}
	DeleteGroup       = Route{Method: "DELETE", URI: "/groups/{}"}
	GroupCompetitions = Route{Method: "GET", URI: "/groups/{}/competitions"}

	SearchCompetitions = Route{Method: "GET", URI: "/competitions"}
	CompetitionDetails = Route{Method: "GET", URI: "/competitions/{}"}
)
