package runtype

import (
	"github.com/runtype/runtype/diag"
	"github.com/runtype/runtype/result"
)

// Refinement narrows base by a runtime predicate.
//
// The value is first validated by base; base failures pass through
// unchanged. A value base accepts is then given to pred, and a false
// verdict produces a single error at the current context carrying the
// original value — the predicate is opaque, so there is no finer fault to
// report.
//
// The default name is "(base | predicateName)"; a function literal's
// predicate name renders as "<functionN>" with N its arity.
func Refinement(base *Type, pred func(v any) bool, name ...string) *Type {
	if pred == nil {
		panic(diag.NewFailure("runtype.Refinement: nil predicate over %q", base.name))
	}
	t := &Type{
		name: optName("("+base.name+" | "+diag.FuncName(pred)+")", name),
		kind: KindRefinement,
		base: base,
	}
	t.validate = func(v any, ctx diag.Context) result.Result[any] {
		r := base.validate(v, ctx)
		if r.IsErr() {
			return r
		}
		if !pred(result.FromOk(r)) {
			return reject(v, ctx)
		}
		return r
	}
	return t
}
