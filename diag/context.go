package diag

import "strings"

// ContextEntry is one step of a validation path: the key under which a
// sub-validation descended and the name of the type it descended into.
type ContextEntry struct {
	Key  string
	Name string
}

// Context is the ordered path from the root of a validation down to the
// value currently being checked.
//
// A Context is immutable from the perspective of sibling branches: every
// descent produces a fresh extended copy via [Context.Extend], so two
// branches sharing a prefix can never observe each other's entries. This
// mirrors the copy-on-append discipline of an instance path builder.
//
// A Context is never empty once a validation is in flight; the top-level
// entry point seeds it with a single entry whose key is "" and whose name
// is the root type's name (see [NewContext]).
type Context []ContextEntry

// NewContext returns the default context for a root type name: a single
// entry with an empty key.
func NewContext(rootName string) Context {
	return Context{{Key: "", Name: rootName}}
}

// Extend returns a new Context with an entry appended.
//
// The receiver is copied in full; the returned Context shares no backing
// storage with it. Callers may extend the same Context from any number of
// branches concurrently.
func (c Context) Extend(key, name string) Context {
	child := make(Context, len(c), len(c)+1)
	copy(child, c)
	return append(child, ContextEntry{Key: key, Name: name})
}

// Path returns the rendered path: each entry as "key: name", joined by "/".
//
// The root entry has an empty key, so a top-level path reads
// ": number" and a nested one ": Array<number>/2: number".
func (c Context) Path() string {
	parts := make([]string, len(c))
	for i, e := range c {
		parts[i] = e.Key + ": " + e.Name
	}
	return strings.Join(parts, "/")
}
