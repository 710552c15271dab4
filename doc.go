// Package runtype provides composable runtime type validation for Go
// applications.
//
// A [Type] pairs a name, a structural kind, and a pure validate function.
// Types are built from irreducible atoms (Nil, Any, String, Number,
// Boolean, Arr, Obj, Fun) and combinators (Array, Union, Tuple,
// Intersection, Maybe, Mapping, Refinement, Object, Keys, Exact, Shape,
// Recursion) and are applied to values of unknown shape — typically
// decoded JSON — at trust boundaries.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no dependencies on upper tiers; result imports diag):
//	  - diag: validation errors, context paths, and failure panics
//	  - result: the generic success-or-failures sum
//
//	Core library tier:
//	  - runtype (this package): the validator algebra
//	  - builtin: prebuilt refinements (Integer, UUID, Timestamp, …)
//
//	Adapter tier:
//	  - typeexpr: parse the canonical type-name syntax into validators
//	  - adapter/json: JSON / JSONC decoding into validation-ready values
//
// # Validation
//
// Validation is pure and synchronous. A Type rejects by returning an Err
// result whose errors each carry the offending value, the context path to
// it, and a canonical description; it never panics on bad input. Composite
// types accumulate every fault in one pass (array elements, tuple slots,
// object properties, intersection branches); only Union and Refinement
// collapse to a single error for the whole value, because a reporter
// cannot meaningfully pick among union branches or explain a predicate.
//
// On success a validator returns the value it was given: container inputs
// come back as the same reference, so callers may alias freely.
//
//	Point := runtype.Object(runtype.Props{
//	    runtype.P("x", runtype.Number),
//	    runtype.P("y", runtype.Number),
//	})
//	r := runtype.Validate(decoded, Point)
//	if r.IsErr() {
//	    for _, line := range diag.Report(r.Errors()) {
//	        fmt.Println(line)
//	    }
//	}
//
// Types are immutable after construction and safe for concurrent use,
// provided callers do not mutate a value while it is being validated.
package runtype
