// Package builtin provides prebuilt refinements over the core algebra for
// the data shapes that recur at every trust boundary: whole numbers,
// RFC 3339 timestamps, calendar dates, UUIDs, regular-expression patterns,
// and closed enumerations of string, number, or boolean literals.
//
// Everything here is an ordinary [runtype.Type] built from the public
// combinators; the package adds no new validation machinery.
package builtin
