package runtype

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnion(t *testing.T) {
	typ := Union([]*Type{String, Number})
	assert.Equal(t, "(string | number)", typ.Name())
	assert.Equal(t, KindUnion, typ.Kind())

	assert.True(t, Is("a", typ))
	assert.True(t, Is(1, typ))
	assert.False(t, Is(true, typ))
}

func TestUnion_FirstMatchWins(t *testing.T) {
	// The second member would also match, but the first match decides;
	// its later sibling is never consulted.
	calls := 0
	spy := Irreducible("spy", func(v any) bool {
		calls++
		return true
	})

	typ := Union([]*Type{Any, spy})
	require.True(t, Is("anything", typ))
	assert.Equal(t, 0, calls)
}

func TestUnion_SingleErrorAtOwnContext(t *testing.T) {
	typ := Union([]*Type{String, Number})

	r := Validate(true, typ)
	require.True(t, r.IsErr())
	errs := r.Errors()
	require.Len(t, errs, 1, "union collapses to a single error")
	assert.Equal(t, true, errs[0].Value)
	assert.Equal(t, "Invalid value true supplied to : (string | number)", errs[0].Description)
}

func TestIntersection(t *testing.T) {
	hasA := Object(Props{P("a", Number)}, "HasA")
	hasB := Object(Props{P("b", String)}, "HasB")
	typ := Intersection([]*Type{hasA, hasB})

	assert.Equal(t, "(HasA & HasB)", typ.Name())
	assert.Equal(t, KindIntersection, typ.Kind())

	both := map[string]any{"a": 1, "b": "x"}
	assert.True(t, Is(both, typ))
	assert.Equal(t, Is(both, typ), Is(both, hasA) && Is(both, hasB))

	onlyA := map[string]any{"a": 1}
	assert.False(t, Is(onlyA, typ))
	assert.Equal(t, Is(onlyA, typ), Is(onlyA, hasA) && Is(onlyA, hasB))
}

func TestIntersection_AccumulatesBranchErrors(t *testing.T) {
	hasA := Object(Props{P("a", Number)}, "HasA")
	hasB := Object(Props{P("b", String)}, "HasB")
	typ := Intersection([]*Type{hasA, hasB})

	r := Validate(map[string]any{}, typ)
	require.True(t, r.IsErr())
	errs := r.Errors()
	require.Len(t, errs, 2)
	// Branch contexts carry the member position.
	assert.Equal(t, "Invalid value null supplied to : (HasA & HasB)/0: HasA/a: number", errs[0].Description)
	assert.Equal(t, "Invalid value null supplied to : (HasA & HasB)/1: HasB/b: string", errs[1].Description)
}

func TestIntersection_ReturnsOriginalReference(t *testing.T) {
	hasA := Object(Props{P("a", Number)})
	in := map[string]any{"a": 1}

	out := MustValidate(in, Intersection([]*Type{hasA, Obj}))
	assert.Equal(t, reflect.ValueOf(in).Pointer(), reflect.ValueOf(out).Pointer())
}

func TestMaybe(t *testing.T) {
	typ := Maybe(Number)
	assert.Equal(t, "?number", typ.Name())
	assert.Equal(t, KindMaybe, typ.Kind())

	assert.True(t, Is(nil, typ))
	assert.True(t, Is(1, typ))
	assert.False(t, Is("x", typ))
}

func TestMaybe_NilPassesThroughAsIs(t *testing.T) {
	var nilPtr *int
	out := MustValidate(nilPtr, Maybe(Number))
	assert.Equal(t, any(nilPtr), out)
}

func TestMaybe_ErrorComesFromElem(t *testing.T) {
	r := Validate("x", Maybe(Number))

	require.True(t, r.IsErr())
	errs := r.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, `Invalid value "x" supplied to : ?number`, errs[0].Description)
}
