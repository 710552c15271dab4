package runtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default names are part of the reporter contract; they must be generated
// exactly, including spacing.
func TestDefaultNames(t *testing.T) {
	point := Object(Props{P("x", Number), P("y", Number)}, "Point")

	tests := []struct {
		name string
		typ  *Type
		want string
	}{
		{"literal string", Literal("on"), `"on"`},
		{"literal number", Literal(1.5), "1.5"},
		{"array", Array(String), "Array<string>"},
		{"maybe", Maybe(String), "?string"},
		{"union", Union([]*Type{String, Number, Boolean}), "(string | number | boolean)"},
		{"tuple", Tuple([]*Type{String, Number}), "[string, number]"},
		{"intersection", Intersection([]*Type{Obj, point}), "(obj & Point)"},
		{"mapping", Mapping(String, Number), "{ [key: string]: number }"},
		{"object", Object(Props{P("a", String), P("b", Number)}), "{ a: string, b: number }"},
		{"empty object", Object(nil), "{}"},
		{"keys", Keys(point), "$Keys<Point>"},
		{"exact", Exact(Props{P("a", String)}), "$Exact<{ a: string }>"},
		{"shape", Shape(point), "$Shape<Point>"},
		{"refinement named", Refinement(Number, isPositive), "(number | isPositive)"},
		{"nested", Array(Union([]*Type{String, Maybe(Number)})), "Array<(string | ?number)>"},
		{"custom overrides default", Array(String, "Tags"), "Tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.Name())
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindIrreducible, "irreducible"},
		{KindLiteral, "literal"},
		{KindInstanceOf, "instanceOf"},
		{KindArray, "array"},
		{KindUnion, "union"},
		{KindTuple, "tuple"},
		{KindIntersection, "intersection"},
		{KindMaybe, "maybe"},
		{KindMapping, "mapping"},
		{KindRefinement, "refinement"},
		{KindObject, "object"},
		{KindKeys, "keys"},
		{KindExact, "exact"},
		{KindShape, "shape"},
		{KindRecursion, "recursion"},
		{Kind(255), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestTypeIntrospection(t *testing.T) {
	arr := Array(Number)
	assert.Equal(t, Number, arr.Elem())

	u := Union([]*Type{String, Number})
	assert.Equal(t, []*Type{String, Number}, u.Members())

	m := Mapping(String, Number)
	assert.Equal(t, String, m.KeyType())
	assert.Equal(t, Number, m.ValueType())

	obj := Object(Props{P("a", String)})
	props := obj.Props()
	assert.Len(t, props, 1)
	assert.Equal(t, "a", props[0].Key())
	assert.Equal(t, String, props[0].Type())

	// Introspection returns copies; mutating them cannot corrupt the type.
	props[0] = P("b", Number)
	assert.Equal(t, "a", obj.Props()[0].Key())

	assert.Nil(t, Number.Props())
	assert.Nil(t, Number.Members())
	assert.Nil(t, Number.Elem())
}
