package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func namedPredicate(v any) bool { return v != nil }

func TestFuncName(t *testing.T) {
	anon := func(v any) bool { return true }
	twoArg := func(a, b string) bool { return a == b }

	tests := []struct {
		name string
		fn   any
		want string
	}{
		{name: "named function", fn: namedPredicate, want: "namedPredicate"},
		{name: "anonymous unary", fn: anon, want: "<function1>"},
		{name: "anonymous binary", fn: twoArg, want: "<function2>"},
		{name: "not callable", fn: 42, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FuncName(tt.fn))
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{name: "nil", v: nil, want: "null"},
		{name: "string", v: "a", want: `"a"`},
		{name: "number", v: 1, want: "1"},
		{name: "float", v: 1.5, want: "1.5"},
		{name: "bool", v: true, want: "true"},
		{name: "object", v: map[string]any{"a": 1}, want: `{"a":1}`},
		{name: "array", v: []any{1, "x"}, want: `[1,"x"]`},
		{name: "function", v: namedPredicate, want: "namedPredicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stringify(tt.v))
		})
	}
}

func TestStringify_UnmarshalableFallsBack(t *testing.T) {
	// A channel cannot be marshaled and is not callable; the %v form is
	// better than nothing.
	ch := make(chan int)
	assert.NotEmpty(t, Stringify(ch))
}
