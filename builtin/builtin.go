package builtin

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/runtype/runtype"
	"github.com/runtype/runtype/internal/value"
)

// Prebuilt refinements. Each is a shared, immutable validator; use them
// directly as children of any combinator.
var (
	// Integer accepts numbers with no fractional part.
	Integer = runtype.Refinement(runtype.Number, isInteger, "Integer")

	// NonEmptyString accepts strings of length >= 1.
	NonEmptyString = runtype.Refinement(runtype.String, isNonEmpty, "NonEmptyString")

	// UUID accepts the UUID string forms uuid.Validate accepts: the
	// canonical hyphenated form, and also the braced, "urn:uuid:"-prefixed
	// and unhyphenated 32-digit forms.
	UUID = runtype.Refinement(runtype.String, isUUID, "UUID")

	// Timestamp accepts RFC 3339 timestamps.
	Timestamp = runtype.Refinement(runtype.String, isTimestamp, "Timestamp")

	// Date accepts calendar dates in the form 2006-01-02.
	Date = runtype.Refinement(runtype.String, isDate, "Date")
)

const dateLayout = "2006-01-02"

func isInteger(v any) bool {
	return value.IsWhole(v)
}

func isNonEmpty(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

func isUUID(v any) bool {
	s, ok := v.(string)
	return ok && uuid.Validate(s) == nil
}

func isTimestamp(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func isDate(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// Pattern accepts strings matching re.
//
// The default name is "Pattern<re>".
func Pattern(re *regexp.Regexp, name ...string) *runtype.Type {
	def := "Pattern<" + re.String() + ">"
	if len(name) > 0 && name[0] != "" {
		def = name[0]
	}
	return runtype.Refinement(runtype.String, func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	}, def)
}

// Enum accepts exactly the given literal values (strings, numbers, or
// booleans), tried in order. It is a union of literals and carries the
// union's default name unless one is supplied.
func Enum(values []any, name ...string) *runtype.Type {
	members := make([]*runtype.Type, len(values))
	for i, v := range values {
		members[i] = runtype.Literal(v)
	}
	return runtype.Union(members, name...)
}
