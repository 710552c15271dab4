package runtype

import (
	"strconv"

	"github.com/runtype/runtype/diag"
	"github.com/runtype/runtype/internal/value"
	"github.com/runtype/runtype/result"
)

// Union accepts values matching any one of types, tried in order.
//
// First match wins: the result of the first succeeding member is returned
// and later members are not consulted. When no member matches, Union
// produces a single error at its own context rather than the union of
// per-branch errors — a reporter cannot meaningfully pick among branches.
//
// The default name is "(T0 | T1 | …)".
func Union(types []*Type, name ...string) *Type {
	members := make([]*Type, len(types))
	copy(members, types)
	t := &Type{name: optName("("+typeNames(members, " | ")+")", name), kind: KindUnion, members: members}
	t.validate = func(v any, ctx diag.Context) result.Result[any] {
		for _, mt := range members {
			if r := mt.validate(v, ctx); r.IsOk() {
				return r
			}
		}
		return reject(v, ctx)
	}
	return t
}

// Intersection accepts values matching all of types.
//
// Every member is validated under a context extended with the member's
// position, and all failures are accumulated. On overall success the
// result carries the original input value.
//
// The default name is "(T0 & T1 & …)".
func Intersection(types []*Type, name ...string) *Type {
	members := make([]*Type, len(types))
	copy(members, types)
	t := &Type{name: optName("("+typeNames(members, " & ")+")", name), kind: KindIntersection, members: members}
	t.validate = func(v any, ctx diag.Context) result.Result[any] {
		var errs []diag.ValidationError
		for i, mt := range members {
			r := mt.validate(v, ctx.Extend(strconv.Itoa(i), mt.name))
			errs = append(errs, r.Errors()...)
		}
		if len(errs) > 0 {
			return result.Err[any](errs)
		}
		return result.Ok(v)
	}
	return t
}

// Maybe accepts nil (returned as-is) or a value satisfying elem.
//
// The default name is "?elem".
func Maybe(elem *Type, name ...string) *Type {
	t := &Type{name: optName("?"+elem.name, name), kind: KindMaybe, elem: elem}
	t.validate = func(v any, ctx diag.Context) result.Result[any] {
		if value.IsNil(v) {
			return result.Ok(v)
		}
		return elem.validate(v, ctx)
	}
	return t
}
