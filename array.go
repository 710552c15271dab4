package runtype

import (
	"strconv"

	"github.com/runtype/runtype/diag"
	"github.com/runtype/runtype/internal/value"
	"github.com/runtype/runtype/result"
)

// Array accepts array values whose every element satisfies elem.
//
// Element errors are accumulated, not short-circuited: one validation pass
// reports every failing index, each under a context extended with the
// element's position. On success the result carries the input array
// reference unchanged.
//
// The default name is "Array<elem>".
func Array(elem *Type, name ...string) *Type {
	t := &Type{name: optName("Array<"+elem.name+">", name), kind: KindArray, elem: elem}
	t.validate = func(v any, ctx diag.Context) result.Result[any] {
		arr, ok := value.AsArray(v)
		if !ok {
			return reject(v, ctx)
		}
		var errs []diag.ValidationError
		for i := 0; i < arr.Len(); i++ {
			r := elem.validate(arr.Index(i), ctx.Extend(strconv.Itoa(i), elem.name))
			errs = append(errs, r.Errors()...)
		}
		if len(errs) > 0 {
			return result.Err[any](errs)
		}
		return result.Ok(v)
	}
	return t
}

// Tuple accepts array values validated position by position against types.
//
// All positional errors are accumulated. Excess elements are not errors:
// only indices 0..len(types)-1 are checked. A missing position reads as
// nil, and the type declared for that slot decides whether nil is
// acceptable — tuple itself does not check length.
//
// The default name is "[T0, T1, …]".
func Tuple(types []*Type, name ...string) *Type {
	members := make([]*Type, len(types))
	copy(members, types)
	t := &Type{name: optName("["+typeNames(members, ", ")+"]", name), kind: KindTuple, members: members}
	t.validate = func(v any, ctx diag.Context) result.Result[any] {
		arr, ok := value.AsArray(v)
		if !ok {
			return reject(v, ctx)
		}
		var errs []diag.ValidationError
		for i, mt := range members {
			r := mt.validate(arr.Index(i), ctx.Extend(strconv.Itoa(i), mt.name))
			errs = append(errs, r.Errors()...)
		}
		if len(errs) > 0 {
			return result.Err[any](errs)
		}
		return result.Ok(v)
	}
	return t
}
