// Package typeexpr parses the canonical type-name syntax back into
// validators.
//
// The grammar is exactly the name convention the core emits, so for any
// expressible type the round trip holds: Parse(t.Name()).Name() == t.Name().
//
//	nil any string number boolean arr obj fun    irreducibles
//	Integer UUID Timestamp Date NonEmptyString   builtins
//	Array<T>          array
//	?T                maybe
//	(A | B | C)       union
//	(A & B)           intersection
//	[A, B]            tuple
//	{ a: T, b?: U }   object ("b?: U" is sugar for "b: ?U")
//	{ [key: K]: V }   mapping
//	$Keys<{ … }>      key-of
//	$Exact<{ … }>     closed object
//	$Shape<{ … }>     partial object
//	"s"  1  true      literals
//
// Parsing is the inverse of naming only up to structure: predicates of
// refinements are not expressible, so refinement names other than the
// named builtins do not parse.
package typeexpr
