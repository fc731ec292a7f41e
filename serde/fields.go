package serde

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Field access primitives. Required accessors fail on absent or null
// values; Maybe accessors return nil for both, never a zero value.

func required(n node, key string) (any, error) {
	v, present := n[key]
	if !present || v == nil {
		return nil, fmt.Errorf("missing required field %q", key)
	}

	return v, nil
}

func str(n node, key string) (string, error) {
	v, err := required(n, key)
	if err != nil {
		return "", err
	}

	s, isStr := v.(string)
	if !isStr {
		return "", fmt.Errorf("field %q: expected string, got %T", key, v)
	}

	return s, nil
}

func strMaybe(n node, key string) (*string, error) {
	v, present := n[key]
	if !present || v == nil {
		return nil, nil
	}

	s, isStr := v.(string)
	if !isStr {
		return nil, fmt.Errorf("field %q: expected string, got %T", key, v)
	}

	return &s, nil
}

func boolean(n node, key string) (bool, error) {
	v, err := required(n, key)
	if err != nil {
		return false, err
	}

	b, isBool := v.(bool)
	if !isBool {
		return false, fmt.Errorf("field %q: expected bool, got %T", key, v)
	}

	return b, nil
}

// number returns the raw fractional value of a numeric field. Whole
// wire integers widen into it without loss.
func number(n node, key string) (float64, error) {
	v, err := required(n, key)
	if err != nil {
		return 0, err
	}

	f, isNum := v.(float64)
	if !isNum {
		return 0, fmt.Errorf("field %q: expected number, got %T", key, v)
	}

	return f, nil
}

// integer narrows a numeric field to an int. A fractional wire value
// is a decode failure, never a silent truncation.
func integer(n node, key string) (int, error) {
	f, err := number(n, key)
	if err != nil {
		return 0, err
	}

	if math.Trunc(f) != f {
		return 0, fmt.Errorf("field %q: cannot narrow %v to integer", key, f)
	}

	return int(f), nil
}

func integer64(n node, key string) (int64, error) {
	f, err := number(n, key)
	if err != nil {
		return 0, err
	}

	if math.Trunc(f) != f {
		return 0, fmt.Errorf("field %q: cannot narrow %v to integer", key, f)
	}

	return int64(f), nil
}

func integerMaybe(n node, key string) (*int, error) {
	v, present := n[key]
	if !present || v == nil {
		return nil, nil
	}

	i, err := integer(n, key)
	if err != nil {
		return nil, err
	}

	return &i, nil
}

// timestamp layouts accepted from the wire. The API emits ISO-8601
// with a trailing Z and optional fractional seconds.
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"}

func parseTimestamp(key, raw string) (time.Time, error) {
	trimmed := strings.TrimSuffix(raw, "Z")

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}

		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("field %q: invalid timestamp %q", key, raw)
}

func timestamp(n node, key string) (time.Time, error) {
	raw, err := str(n, key)
	if err != nil {
		return time.Time{}, err
	}

	return parseTimestamp(key, raw)
}

func timestampMaybe(n node, key string) (*time.Time, error) {
	raw, err := strMaybe(n, key)
	if err != nil || raw == nil {
		return nil, err
	}

	t, err := parseTimestamp(key, *raw)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// enum decodes an enumerated string field via exact, case-sensitive
// match. The failure carries the offending raw string so callers can
// detect a variant the service introduced ahead of a library update.
func enum[T ~string](n node, key string, parse func(string) (T, bool)) (T, error) {
	raw, err := str(n, key)
	if err != nil {
		var zero T
		return zero, err
	}

	v, known := parse(raw)
	if !known {
		var zero T
		return zero, fmt.Errorf("field %q: unknown variant %q", key, raw)
	}

	return v, nil
}

func enumMaybe[T ~string](n node, key string, parse func(string) (T, bool)) (*T, error) {
	raw, err := strMaybe(n, key)
	if err != nil || raw == nil {
		return nil, err
	}

	v, known := parse(*raw)
	if !known {
		return nil, fmt.Errorf("field %q: unknown variant %q", key, *raw)
	}

	return &v, nil
}

// child returns a nested mapping field.
func child(n node, key string) (node, error) {
	v, err := required(n, key)
	if err != nil {
		return nil, err
	}

	sub, isNode := v.(node)
	if !isNode {
		return nil, fmt.Errorf("field %q: expected object, got %T", key, v)
	}

	return sub, nil
}

// childMaybe returns a nested mapping field, or nil when absent/null.
func childMaybe(n node, key string) (node, error) {
	v, present := n[key]
	if !present || v == nil {
		return nil, nil
	}

	sub, isNode := v.(node)
	if !isNode {
		return nil, fmt.Errorf("field %q: expected object, got %T", key, v)
	}

	return sub, nil
}

// children returns a nested sequence-of-mappings field.
func children(n node, key string) ([]node, error) {
	v, err := required(n, key)
	if err != nil {
		return nil, err
	}

	raw, isList := v.([]any)
	if !isList {
		return nil, fmt.Errorf("field %q: expected array, got %T", key, v)
	}

	out := make([]node, 0, len(raw))
	for i, item := range raw {
		sub, isNode := item.(node)
		if !isNode {
			return nil, fmt.Errorf("field %q: element %d: expected object, got %T", key, i, item)
		}

		out = append(out, sub)
	}

	return out, nil
}
