// Package transport provides the injected capability that performs
// the actual network calls. The dispatcher depends only on the
// Requester interface; the pooled HTTP implementation here is the
// default, with an explicit Start/Close lifecycle owned by the
// caller.
package transport

import (
	"context"
	"net/url"
)

// Request describes one outbound call, already compiled from a route
// descriptor.
type Request struct {
	// Method is the HTTP verb.
	Method string

	// Path is the concrete request path, relative to the base URL.
	Path string

	// Query holds the query parameters.
	Query url.Values

	// Body is the JSON payload, or nil for body-less requests.
	Body []byte
}

// Response is a raw response: status and unparsed body. Interpreting
// the body is the caller's concern.
type Response struct {
	Status int
	Body   []byte
}

// Requester executes requests against the remote service. Send
// returns an error only when no response was produced at all
// (connection failure, cancellation, lifecycle misuse); a response
// with a failure status is returned as a Response.
type Requester interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}
