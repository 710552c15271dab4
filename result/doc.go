// Package result implements the success-or-failures sum returned by every
// validator.
//
// A [Result] is either Ok, carrying the validated value, or Err, carrying a
// non-empty list of [diag.ValidationError]. The combinators (Map, Chain,
// Ap) follow the usual either-monad shape: they transform the success
// channel and pass failures through untouched.
//
// # Entry Point Pattern
//
// Validation entry points never return a Go error for rejected input;
// rejection is represented as an Err result. Extracting the wrong case
// ([FromOk] on an Err, [FromErr] on an Ok) is programmer misuse and panics
// with a [*diag.Failure].
package result
