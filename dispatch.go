package womgo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/osrstools/womgo/errs"
	"github.com/osrstools/womgo/model"
	"github.com/osrstools/womgo/result"
	"github.com/osrstools/womgo/routes"
	"github.com/osrstools/womgo/transport"
)

// fallbackErrorMessage stands in when a failed response carries no
// parseable message body.
const fallbackErrorMessage = "An unexpected error occurred while making the request."

// request executes a compiled route and returns the body and status
// of a successful response. Any failure, whether the request never
// completed or the remote answered with a failure status, comes back
// as a *errs.TransportError.
func (c *Client) request(ctx context.Context, route *routes.CompiledRoute, payload any) ([]byte, int, error) {
	var body []byte
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, &errs.TransportError{Message: err.Error()}
		}

		body = encoded
	}

	resp, err := c.requester.Send(ctx, &transport.Request{
		Method: route.Method(),
		Path:   route.URI,
		Query:  route.Params,
		Body:   body,
	})
	if err != nil {
		// No response was produced; Status stays zero.
		return nil, 0, &errs.TransportError{Message: err.Error()}
	}

	if resp.Status < http.StatusOK || resp.Status >= http.StatusMultipleChoices {
		return nil, resp.Status, &errs.TransportError{
			Status:  resp.Status,
			Message: errorMessage(resp.Body),
			RawBody: resp.Body,
		}
	}

	return resp.Body, resp.Status, nil
}

// errorMessage extracts the remote error message from a failure body,
// falling back to a generic one for unparseable bodies.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	return fallbackErrorMessage
}

// fetch runs the request-then-decode pipeline for an operation and
// folds the outcome into a Result.
func fetch[T any](ctx context.Context, c *Client, route *routes.CompiledRoute, payload any, decode func([]byte) (T, error)) Result[T] {
	body, _, err := c.request(ctx, route, payload)
	if err != nil {
		return result.Err[T, error](err)
	}

	value, err := decode(body)
	if err != nil {
		var decodeErr *errs.DecodeError
		if errors.As(err, &decodeErr) {
			c.mtr.RecordDecodeFailure(decodeErr.Target)
		}

		return result.Err[T, error](err)
	}

	return result.Ok[T, error](value)
}

// fetchMessage is the fold for message-only operations, where the
// decoded value keeps the response status alongside the message.
func fetchMessage(ctx context.Context, c *Client, route *routes.CompiledRoute, payload any) Result[model.HTTPSuccess] {
	body, status, err := c.request(ctx, route, payload)
	if err != nil {
		return result.Err[model.HTTPSuccess, error](err)
	}

	value, err := c.serde.Message(status, body)
	if err != nil {
		var decodeErr *errs.DecodeError
		if errors.As(err, &decodeErr) {
			c.mtr.RecordDecodeFailure(decodeErr.Target)
		}

		return result.Err[model.HTTPSuccess, error](err)
	}

	return result.Ok[model.HTTPSuccess, error](value)
}

// params builds query parameters, skipping unset values. Pointers are
// unset when nil, strings when empty, ints when non-positive.
type params struct {
	values url.Values
}

func newParams() *params {
	return &params{values: url.Values{}}
}

func (p *params) str(key, value string) *params {
	if value != "" {
		p.values.Set(key, value)
	}

	return p
}

func (p *params) num(key string, value int) *params {
	if value > 0 {
		p.values.Set(key, strconv.Itoa(value))
	}

	return p
}

func (p *params) pagination(limit, offset int) *params {
	return p.num("limit", limit).num("offset", offset)
}

// enumParam sets a string-kinded filter value when present.
func enumParam[T ~string](p *params, key string, value *T) {
	if value != nil {
		p.values.Set(key, string(*value))
	}
}
