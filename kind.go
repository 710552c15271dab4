package runtype

// Kind is the closed structural discriminant of a [Type].
//
// Every constructor stamps its result with exactly one Kind; validators
// never change kind after construction.
type Kind uint8

const (
	// KindIrreducible is an atom with no child validators.
	KindIrreducible Kind = iota
	// KindLiteral accepts a single primitive value.
	KindLiteral
	// KindInstanceOf accepts values of a specific dynamic type.
	KindInstanceOf
	// KindArray accepts arrays whose elements all satisfy one type.
	KindArray
	// KindUnion accepts values matching any one of several types.
	KindUnion
	// KindTuple accepts arrays validated position by position.
	KindTuple
	// KindIntersection accepts values matching all of several types.
	KindIntersection
	// KindMaybe accepts nil or a value of the wrapped type.
	KindMaybe
	// KindMapping accepts objects with typed keys and values.
	KindMapping
	// KindRefinement narrows a type by a runtime predicate.
	KindRefinement
	// KindObject accepts objects validated property by property.
	KindObject
	// KindKeys accepts the declared property names of an object type.
	KindKeys
	// KindExact is KindObject plus rejection of undeclared keys.
	KindExact
	// KindShape validates only the properties present on the value.
	KindShape
	// KindRecursion is the self-reference placeholder inside a recursive type.
	KindRecursion
)

// String returns the canonical lowercase label for the kind.
func (k Kind) String() string {
	switch k {
	case KindIrreducible:
		return "irreducible"
	case KindLiteral:
		return "literal"
	case KindInstanceOf:
		return "instanceOf"
	case KindArray:
		return "array"
	case KindUnion:
		return "union"
	case KindTuple:
		return "tuple"
	case KindIntersection:
		return "intersection"
	case KindMaybe:
		return "maybe"
	case KindMapping:
		return "mapping"
	case KindRefinement:
		return "refinement"
	case KindObject:
		return "object"
	case KindKeys:
		return "keys"
	case KindExact:
		return "exact"
	case KindShape:
		return "shape"
	case KindRecursion:
		return "recursion"
	default:
		return "unknown"
	}
}
