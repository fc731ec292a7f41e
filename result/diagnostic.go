package result

// Diagnostic is a serializable snapshot of a Result for structured
// logging. It is a logging shape, not the wire format used for
// transport.
type Diagnostic struct {
	// Variant is "ok" or "err".
	Variant string `json:"variant"`

	// Value holds the success payload for the Ok variant.
	Value any `json:"value,omitempty"`

	// Error holds a rendering of the failure for the Err variant.
	Error any `json:"error,omitempty"`
}

// Diagnostic returns a snapshot of the variant and its payload.
func (r Result[T, E]) Diagnostic() Diagnostic {
	if r.ok {
		return Diagnostic{Variant: "ok", Value: r.value}
	}

	// Errors render as strings when possible so the snapshot stays
	// readable after JSON encoding.
	var rendered any = r.err
	if err, isErr := any(r.err).(error); isErr && err != nil {
		rendered = err.Error()
	}

	return Diagnostic{Variant: "err", Error: rendered}
}
