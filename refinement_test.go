package runtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isPositive(v any) bool {
	f, ok := v.(int)
	return ok && f > 0
}

func TestRefinement(t *testing.T) {
	typ := Refinement(Number, isPositive)

	assert.Equal(t, "(number | isPositive)", typ.Name())
	assert.Equal(t, KindRefinement, typ.Kind())
	assert.Equal(t, Number, typ.Base())

	assert.True(t, Is(1, typ))
	assert.False(t, Is(-1, typ))
	assert.False(t, Is("x", typ))
}

func TestRefinement_AnonymousPredicateName(t *testing.T) {
	typ := Refinement(String, func(v any) bool { return v != "" })

	assert.Equal(t, "(string | <function1>)", typ.Name())
}

func TestRefinement_BaseErrorsPassThrough(t *testing.T) {
	typ := Refinement(Array(Number), func(v any) bool { return true })

	r := Validate([]any{"x"}, typ)
	require.True(t, r.IsErr())
	errs := r.Errors()
	require.Len(t, errs, 1)
	// The base's element error survives untouched; the refinement adds nothing.
	assert.Equal(t, `Invalid value "x" supplied to : (Array<number> | <function1>)/0: number`, errs[0].Description)
}

func TestRefinement_PredicateFailureIsSingleError(t *testing.T) {
	typ := Refinement(Number, isPositive)

	r := Validate(-5, typ)
	require.True(t, r.IsErr())
	errs := r.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, -5, errs[0].Value)
	assert.Equal(t, "Invalid value -5 supplied to : (number | isPositive)", errs[0].Description)
}

func TestRefinement_ChainsOverRefinement(t *testing.T) {
	nonEmpty := Refinement(String, func(v any) bool {
		s, _ := v.(string)
		return s != ""
	}, "NonEmpty")
	short := Refinement(nonEmpty, func(v any) bool {
		s, _ := v.(string)
		return len(s) <= 3
	}, "Short")

	assert.True(t, Is("ab", short))
	assert.False(t, Is("", short), "inner refinement rejects")
	assert.False(t, Is("abcd", short), "outer refinement rejects")
}

func TestRefinement_NilPredicatePanics(t *testing.T) {
	assert.Panics(t, func() { Refinement(Number, nil) })
}
