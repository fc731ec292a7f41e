// Package serde converts untyped JSON value trees into the typed
// domain graph. Every exported decode method returns either a fully
// populated record or an *errs.DecodeError; a partially populated
// record is never produced.
//
// Decoding rules:
//   - required fields missing from the input fail the decode
//   - optional fields map to nil pointers for both absent and null
//   - whole wire numbers widen into fractional fields; fractional
//     wire numbers never narrow into integer fields
//   - metric-keyed objects resolve every key through the registry,
//     and an unrecognized key is fatal rather than skipped
//   - enumerated strings match their variant set exactly
package serde

import (
	"encoding/json"
	"fmt"

	"github.com/osrstools/womgo/errs"
	"github.com/osrstools/womgo/metric"
)

// node is one mapping level of the untyped value tree.
type node = map[string]any

// Deserializer decodes API response bodies into model records. It is
// stateless and safe for concurrent use.
type Deserializer struct{}

// NewDeserializer creates a Deserializer.
func NewDeserializer() *Deserializer {
	return &Deserializer{}
}

// guard wraps any field-level failure into a DecodeError naming the
// target shape. Unknown-metric panics pass through untouched; they
// are not decode failures.
func guard[T any](target string, decode func() (T, error)) (T, error) {
	v, err := decode()
	if err != nil {
		var zero T
		return zero, &errs.DecodeError{Target: target, Cause: err}
	}

	return v, nil
}

// parse unmarshals a response body into a mapping node.
func parse(body []byte) (node, error) {
	var n node
	if err := json.Unmarshal(body, &n); err != nil {
		return nil, fmt.Errorf("invalid json object: %w", err)
	}

	return n, nil
}

// parseList unmarshals a response body into a sequence of mapping
// nodes.
func parseList(body []byte) ([]node, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("invalid json array: %w", err)
	}

	nodes := make([]node, 0, len(raw))
	for i, item := range raw {
		var n node
		if err := json.Unmarshal(item, &n); err != nil {
			return nil, fmt.Errorf("element %d: invalid json object: %w", i, err)
		}

		nodes = append(nodes, n)
	}

	return nodes, nil
}

// decodeList runs a node-level decoder over every element of a
// sequence body.
func decodeList[T any](target string, body []byte, decode func(node) (T, error)) ([]T, error) {
	return guard(target, func() ([]T, error) {
		nodes, err := parseList(body)
		if err != nil {
			return nil, err
		}

		out := make([]T, 0, len(nodes))
		for i, n := range nodes {
			v, err := decode(n)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}

			out = append(out, v)
		}

		return out, nil
	})
}

// decodeObject runs a node-level decoder over a single object body.
func decodeObject[T any](target string, body []byte, decode func(node) (T, error)) (T, error) {
	return guard(target, func() (T, error) {
		n, err := parse(body)
		if err != nil {
			var zero T
			return zero, err
		}

		return decode(n)
	})
}

// keyedMap decodes a wire object keyed by metric wire names into a
// mapping from the resolved Metric. Resolution goes through
// metric.FromName, so an unrecognized key halts the decode instead of
// being dropped.
func keyedMap[T any](n node, key string, decode func(metric.Metric, node) (T, error)) (map[metric.Metric]T, error) {
	raw, err := child(n, key)
	if err != nil {
		return nil, err
	}

	out := make(map[metric.Metric]T, len(raw))
	for name, v := range raw {
		m := metric.FromName(name)

		sub, isNode := v.(node)
		if !isNode {
			return nil, fmt.Errorf("field %q: entry %q: expected object, got %T", key, name, v)
		}

		decoded, err := decode(m, sub)
		if err != nil {
			return nil, fmt.Errorf("field %q: entry %q: %w", key, name, err)
		}

		out[m] = decoded
	}

	return out, nil
}
