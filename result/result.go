// Package result provides the two-variant Result type returned by
// every client operation. A Result is exactly Ok or Err, immutable
// after construction, and never silently coerced to its contained
// value: the caller must branch.
package result

import (
	"fmt"

	"github.com/osrstools/womgo/errs"
)

// Result holds either a success value of type T or an error of
// type E. The zero Result is the Err variant with a zero error;
// construct values with Ok and Err instead.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok creates the success variant holding value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err creates the failure variant holding err.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether this result is the Ok variant.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether this result is the Err variant.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// Unwrap returns the success value. It panics with an
// *errs.UnwrapError when called on the Err variant. The panic reports
// only the dynamic type of the contained error, never its payload.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&errs.UnwrapError{
			AccessedAs:    "Ok",
			ActualVariant: fmt.Sprintf("Err(%T)", r.err),
		})
	}

	return r.value
}

// UnwrapErr returns the contained error. It panics with an
// *errs.UnwrapError when called on the Ok variant.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&errs.UnwrapError{
			AccessedAs:    "Err",
			ActualVariant: fmt.Sprintf("Ok(%T)", r.value),
		})
	}

	return r.err
}

// String implements fmt.Stringer.
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}

	return fmt.Sprintf("Err(%v)", r.err)
}

// Map applies fn to the success value and returns a Result holding
// its output. The Err variant passes through untouched, so fn is
// never invoked on a failed result and may assume a valid T.
func Map[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Result[U, E]{err: r.err}
	}

	return Ok[U, E](fn(r.value))
}
