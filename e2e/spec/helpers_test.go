package spec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runtype/runtype"
	jsonadapter "github.com/runtype/runtype/adapter/json"
	"github.com/runtype/runtype/diag"
	"github.com/runtype/runtype/result"
	"github.com/runtype/runtype/typeexpr"
)

// parseType parses a type expression, failing the test on syntax errors.
func parseType(t *testing.T, src string) *runtype.Type {
	t.Helper()
	typ, err := typeexpr.Parse(src)
	require.NoError(t, err, "parse type expression %q", src)
	return typ
}

// checkJSON decodes a JSON document and validates it, failing the test on
// decode errors. Validation rejection is returned, not failed.
func checkJSON(t *testing.T, doc string, typ *runtype.Type) result.Result[any] {
	t.Helper()
	r, err := jsonadapter.DecodeValidate([]byte(doc), typ)
	require.NoError(t, err, "decode %q", doc)
	return r
}

// descriptions renders a failed result's errors as canonical lines.
func descriptions(t *testing.T, r result.Result[any]) []string {
	t.Helper()
	require.True(t, r.IsErr(), "expected a rejection")
	return diag.Report(r.Errors())
}
