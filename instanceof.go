package runtype

import (
	"reflect"

	"github.com/runtype/runtype/diag"
	"github.com/runtype/runtype/result"
)

// InstanceOf accepts values whose dynamic type is T.
//
// For a concrete T this is an exact dynamic-type check; for an interface T
// it accepts any value implementing the interface. This is the nominal
// counterpart to the structural combinators.
//
// The default name is T's type name.
func InstanceOf[T any](name ...string) *Type {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	t := &Type{name: optName(reflectTypeName(rt), name), kind: KindInstanceOf}
	t.validate = func(v any, ctx diag.Context) result.Result[any] {
		if _, ok := v.(T); !ok {
			return reject(v, ctx)
		}
		return result.Ok(v)
	}
	return t
}

// ClassOf accepts constructor functions for T: callable values whose first
// result is T itself, a type assignable to T, or a type that embeds T.
// The embedding case is the structural analogue of subclassing, so a
// constructor for a type wrapping T still counts as a constructor of T.
//
// ClassOf is expressed as a refinement over [Fun]; its kind is
// [KindRefinement]. The default name is "Class<T>".
func ClassOf[T any](name ...string) *Type {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	def := "Class<" + reflectTypeName(rt) + ">"
	return Refinement(Fun, constructsType(rt), optName(def, name))
}

func constructsType(target reflect.Type) func(any) bool {
	return func(v any) bool {
		ft := reflect.TypeOf(v)
		if ft == nil || ft.Kind() != reflect.Func || ft.NumOut() == 0 {
			return false
		}
		out := ft.Out(0)
		// Constructors conventionally return *T; unwrap one pointer level.
		if out.Kind() == reflect.Pointer {
			out = out.Elem()
		}
		if out == target || out.AssignableTo(target) {
			return true
		}
		return embedsType(out, target)
	}
}

// embedsType reports whether t transitively embeds target as an anonymous
// struct field.
func embedsType(t, target reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft == target || embedsType(ft, target) {
			return true
		}
	}
	return false
}

func reflectTypeName(rt reflect.Type) string {
	if n := rt.Name(); n != "" {
		return n
	}
	return rt.String()
}
