package runtype

import (
	"github.com/runtype/runtype/diag"
	"github.com/runtype/runtype/result"
)

// Recursion builds a self-referential type.
//
// define receives a placeholder standing for the type being defined and
// returns the full definition, which may reference the placeholder
// anywhere a child type is expected:
//
//	Tree := runtype.Recursion("Tree", func(self *runtype.Type) *runtype.Type {
//	    return runtype.Object(runtype.Props{
//	        runtype.P("value", runtype.Number),
//	        runtype.P("children", runtype.Array(self)),
//	    })
//	})
//
// The placeholder carries the recursion name from the start, so names
// derived from it inside define ("Array<Tree>") are already correct. The
// placeholder's validate delegates by late binding to the definition, so
// recursive descent terminates without any cyclic ownership: the
// placeholder holds a non-owning handle that is filled in exactly once,
// before Recursion returns.
//
// After define returns, the definition's name is rewritten to the
// recursion name. This back-patch is the one mutation a Type ever
// undergoes, and it completes before the type is exposed to callers.
//
// Calling the placeholder's Validate while define is still running is
// programmer misuse and panics with a [*diag.Failure].
func Recursion(name string, define func(self *Type) *Type) *Type {
	var resolved *Type
	self := &Type{name: name, kind: KindRecursion}
	self.validate = func(v any, ctx diag.Context) result.Result[any] {
		if resolved == nil {
			panic(diag.NewFailure("runtype.Recursion: %q validated before its definition completed", name))
		}
		return resolved.validate(v, ctx)
	}
	defined := define(self)
	if defined == nil {
		panic(diag.NewFailure("runtype.Recursion: define returned nil for %q", name))
	}
	defined.name = name
	resolved = defined
	return defined
}
