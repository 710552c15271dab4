package result

import (
	"strings"

	"github.com/runtype/runtype/diag"
)

// Result is a sum of success (carrying a value of type A) and failure
// (carrying a non-empty list of validation errors).
//
// The zero value is Ok with A's zero value. Results are immutable; all
// combinators return fresh values.
type Result[A any] struct {
	value A
	errs  []diag.ValidationError
}

// Ok returns a successful Result carrying value.
func Ok[A any](value A) Result[A] {
	return Result[A]{value: value}
}

// Err returns a failed Result carrying the given errors.
//
// The error list must be non-empty; an empty list is programmer misuse
// and panics. The slice is retained as-is: callers must pass a fresh
// slice they will not mutate afterwards.
func Err[A any](errs []diag.ValidationError) Result[A] {
	if len(errs) == 0 {
		panic(diag.NewFailure("result.Err: empty error list"))
	}
	return Result[A]{errs: errs}
}

// IsOk reports whether the result is a success.
func (r Result[A]) IsOk() bool {
	return len(r.errs) == 0
}

// IsErr reports whether the result is a failure.
func (r Result[A]) IsErr() bool {
	return len(r.errs) > 0
}

// Errors returns the error list, or nil for an Ok result.
//
// Unlike [FromErr] this never panics; it is the accumulation-friendly
// accessor used when merging child failures into a parent's list.
func (r Result[A]) Errors() []diag.ValidationError {
	return r.errs
}

// FromOk returns the success value.
//
// Calling FromOk on an Err is programmer misuse: it panics with a
// [*diag.Failure] whose message concatenates every error description,
// one per line.
func FromOk[A any](r Result[A]) A {
	if r.IsErr() {
		msgs := make([]string, len(r.errs))
		for i, e := range r.errs {
			msgs[i] = e.Description
		}
		panic(diag.NewFailure("%s", strings.Join(msgs, "\n")))
	}
	return r.value
}

// FromErr returns the error list.
//
// Calling FromErr on an Ok is programmer misuse and panics with a
// [*diag.Failure].
func FromErr[A any](r Result[A]) []diag.ValidationError {
	if r.IsOk() {
		panic(diag.NewFailure("result.FromErr: result is Ok"))
	}
	return r.errs
}

// Map applies f to the success value; failures pass through.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.IsErr() {
		return Err[B](r.errs)
	}
	return Ok(f(r.value))
}

// Chain applies f to the success value and flattens; failures pass through.
func Chain[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.IsErr() {
		return Err[B](r.errs)
	}
	return f(r.value)
}

// Ap applies a Result-wrapped function to a Result-wrapped value.
//
// A failed function takes precedence; otherwise a failed argument passes
// through. Exposed for completeness of the algebra; the validators
// themselves do not use it.
func Ap[A, B any](rf Result[func(A) B], r Result[A]) Result[B] {
	if rf.IsErr() {
		return Err[B](rf.errs)
	}
	if r.IsErr() {
		return Err[B](r.errs)
	}
	return Ok(rf.value(r.value))
}
