package runtype

import (
	"github.com/runtype/runtype/diag"
	"github.com/runtype/runtype/internal/value"
	"github.com/runtype/runtype/result"
)

// Literal accepts only values equal to lit, which must be a string, a
// number, or a boolean. Any other literal value is programmer misuse and
// panics.
//
// Numbers compare by numeric value rather than by Go type, so Literal(1)
// accepts a decoded JSON 1 regardless of whether the decoder produced
// float64, json.Number, or an int.
//
// The default name is the JSON rendering of lit.
func Literal(lit any, name ...string) *Type {
	equal := literalPredicate(lit)
	t := &Type{name: optName(diag.Stringify(lit), name), kind: KindLiteral}
	t.validate = func(v any, ctx diag.Context) result.Result[any] {
		if !equal(v) {
			return reject(v, ctx)
		}
		return result.Ok(v)
	}
	return t
}

func literalPredicate(lit any) func(any) bool {
	switch want := lit.(type) {
	case string:
		return func(v any) bool {
			s, ok := v.(string)
			return ok && s == want
		}
	case bool:
		return func(v any) bool {
			b, ok := v.(bool)
			return ok && b == want
		}
	}
	if f, ok := value.NumberValue(lit); ok {
		return func(v any) bool {
			g, ok := value.NumberValue(v)
			return ok && g == f
		}
	}
	panic(diag.NewFailure("runtype.Literal: literal must be a string, number, or boolean, got %s", diag.Stringify(lit)))
}
