// Package diag defines the error model shared by every validator.
//
// This package sits at the foundation tier of the module: it has no
// dependency on the validator algebra and is imported by every other
// package of the module except internal/value.
//
// # Design Principles
//
//   - Structured data, string-last presentation: the location of a fault is
//     stored as a [Context] (an ordered path of key/type-name entries),
//     never only embedded in message strings. The canonical description is
//     derived from the structured fields and can be reconstructed by any
//     reporter.
//   - Errors are values: a [ValidationError] is plain data. Rejecting a
//     value never panics.
//   - Programmer misuse panics: extracting the success value from a failed
//     result, or calling the root package's Crash and Assert helpers, raises
//     a typed [*Failure]
//     so bugs in calling code are not silently conflated with invalid
//     input.
//
// # Canonical Description
//
// Every ValidationError renders as
//
//	Invalid value <stringify(value)> supplied to <path>
//
// where the path joins each context entry as "key: typeName" with "/".
// [Stringify] renders callable values by function name and everything else
// as JSON. Reporters that want exactly these lines can use [Report].
package diag
