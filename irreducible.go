package runtype

import (
	"github.com/runtype/runtype/diag"
	"github.com/runtype/runtype/internal/value"
	"github.com/runtype/runtype/result"
)

// Irreducible builds an atom: a type with no children whose membership is
// decided by a single predicate. On rejection it produces one error at the
// current context.
func Irreducible(name string, is func(v any) bool) *Type {
	if is == nil {
		panic(diag.NewFailure("runtype.Irreducible: nil predicate for %q", name))
	}
	t := &Type{name: name, kind: KindIrreducible}
	t.validate = func(v any, ctx diag.Context) result.Result[any] {
		if !is(v) {
			return reject(v, ctx)
		}
		return result.Ok(v)
	}
	return t
}

// The irreducible atoms of the algebra.
//
// Number follows JSON semantics: any finite, non-NaN numeric value,
// including json.Number. Arr accepts any slice or array; Obj accepts any
// non-nil string-keyed map. Nil accepts untyped nil and typed nils, the
// shape a missing object key reads as.
var (
	Nil     = Irreducible("nil", value.IsNil)
	Any     = Irreducible("any", func(any) bool { return true })
	String  = Irreducible("string", isString)
	Number  = Irreducible("number", value.IsNumber)
	Boolean = Irreducible("boolean", isBoolean)
	Arr     = Irreducible("arr", isArr)
	Obj     = Irreducible("obj", isObj)
	Fun     = Irreducible("fun", value.IsFunc)
)

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}

func isArr(v any) bool {
	_, ok := value.AsArray(v)
	return ok
}

func isObj(v any) bool {
	_, ok := value.AsObject(v)
	return ok
}
