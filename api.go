package runtype

import (
	"github.com/runtype/runtype/diag"
	"github.com/runtype/runtype/result"
)

// Validate checks v against t under the default context.
func Validate(v any, t *Type) result.Result[any] {
	return t.validate(v, DefaultContext(t))
}

// ValidateWithContext checks v against t under a caller-supplied context.
//
// This is the hook for embedding one validation inside another: the
// caller threads its own path so errors locate faults relative to the
// outer root.
func ValidateWithContext(v any, ctx diag.Context, t *Type) result.Result[any] {
	return t.validate(v, ctx)
}

// Is reports whether t accepts v.
func Is(v any, t *Type) bool {
	return Validate(v, t).IsOk()
}

// MustValidate returns v validated against t, panicking with a
// [*diag.Failure] listing every error description when t rejects v.
//
// Use this at boundaries where rejection is a programming error rather
// than expected input variance.
func MustValidate(v any, t *Type) any {
	return result.FromOk(Validate(v, t))
}

// DefaultContext seeds the context for a root validation of t: a single
// entry with an empty key and t's name.
func DefaultContext(t *Type) diag.Context {
	return diag.NewContext(t.name)
}

// EntryFor builds the context entry for descending into t under key.
func EntryFor(key string, t *Type) diag.ContextEntry {
	return diag.ContextEntry{Key: key, Name: t.name}
}
