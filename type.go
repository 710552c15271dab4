package runtype

import (
	"strings"

	"github.com/runtype/runtype/diag"
	"github.com/runtype/runtype/result"
)

// Type is a runtime validator: a stable name, a structural [Kind], and a
// pure validate function.
//
// Types are constructed once and are immutable thereafter. The single
// exception is the back-patch performed by [Recursion], which rewrites the
// name of the type it returns before exposing it to callers. A combinator
// type owns its own record but holds only non-owning references to its
// children; sharing one child across many parents is legal and common.
type Type struct {
	name     string
	kind     Kind
	validate func(v any, ctx diag.Context) result.Result[any]

	// Kind-specific structure, used by dependent combinators (Keys, Shape)
	// and by callers that introspect a type.
	props    Props   // object, exact, shape
	elem     *Type   // array, maybe
	members  []*Type // union, tuple, intersection
	key, val *Type   // mapping
	base     *Type   // refinement
}

// Name returns the type's display name.
//
// Names are either user-supplied or derived deterministically from the
// structure; they are stable and are what context paths and error
// descriptions are built from.
func (t *Type) Name() string {
	return t.name
}

// Kind returns the structural discriminant.
func (t *Type) Kind() Kind {
	return t.kind
}

// String implements fmt.Stringer with the type's name.
func (t *Type) String() string {
	return t.name
}

// Validate checks v under the given context.
//
// On success the result carries the value Validate received: container
// inputs come back as the same reference. On rejection the result carries
// one error per fault, each located by an extension of ctx.
func (t *Type) Validate(v any, ctx diag.Context) result.Result[any] {
	return t.validate(v, ctx)
}

// Props returns the declared properties of an object-like type (object,
// exact, shape), in declaration order. Returns nil for other kinds.
func (t *Type) Props() Props {
	if t.props == nil {
		return nil
	}
	cp := make(Props, len(t.props))
	copy(cp, t.props)
	return cp
}

// Elem returns the element type of an array or maybe type, or nil.
func (t *Type) Elem() *Type {
	return t.elem
}

// Members returns the member types of a union, tuple, or intersection,
// or nil for other kinds.
func (t *Type) Members() []*Type {
	if t.members == nil {
		return nil
	}
	cp := make([]*Type, len(t.members))
	copy(cp, t.members)
	return cp
}

// KeyType returns the key type of a mapping, or nil.
func (t *Type) KeyType() *Type {
	return t.key
}

// ValueType returns the value type of a mapping, or nil.
func (t *Type) ValueType() *Type {
	return t.val
}

// Base returns the refined type of a refinement, or nil.
func (t *Type) Base() *Type {
	return t.base
}

// Prop is one declared property of an object-like type: a key and the
// type its value must satisfy.
type Prop struct {
	key string
	typ *Type
}

// P declares a property. Panics if t is nil.
func P(key string, t *Type) Prop {
	if t == nil {
		panic(diag.NewFailure("runtype.P: nil type for property %q", key))
	}
	return Prop{key: key, typ: t}
}

// Key returns the property key.
func (p Prop) Key() string {
	return p.key
}

// Type returns the property's declared type.
func (p Prop) Type() *Type {
	return p.typ
}

// Props is an ordered property list. Declaration order is significant:
// it drives default object names and the order of accumulated errors.
type Props []Prop

// reject builds the single-error failure every validator uses when it
// rejects a value at its own context.
func reject(v any, ctx diag.Context) result.Result[any] {
	return result.Err[any]([]diag.ValidationError{diag.NewError(v, ctx)})
}

// optName picks a user-supplied name over the derived default.
func optName(def string, name []string) string {
	if len(name) > 0 && name[0] != "" {
		return name[0]
	}
	return def
}

// typeNames renders the names of a member list joined by sep.
func typeNames(types []*Type, sep string) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.name
	}
	return strings.Join(parts, sep)
}

// objectDefaultName derives the canonical name of a property list:
// "{ k0: T0, k1: T1 }" in declaration order, "{}" when empty.
func objectDefaultName(props Props) string {
	if len(props) == 0 {
		return "{}"
	}
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.key + ": " + p.typ.name
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
