// Package json decodes JSON documents into the value shapes the validator
// algebra operates on: map[string]any objects, []any arrays, strings,
// booleans, nils, and json.Number numerics.
//
// # Parsing Modes
//
// The adapter supports two modes controlled by the WithStrict option:
//
//   - WithStrict(true) — uses encoding/json directly. Comments and
//     trailing commas are parse errors.
//
//   - WithStrict(false) (default) — preprocesses the input with
//     [tidwall/jsonc], stripping comments and trailing commas while
//     preserving byte offsets, then parses with encoding/json.
//
// Numbers decode as json.Number by default so integer fidelity survives
// the trip through the decoder; the Number irreducible and the builtin
// refinements understand json.Number directly. Use WithUseNumber(false)
// to decode plain float64 values instead.
//
// # Decode and Validate
//
// [Adapter.DecodeValidate] composes decoding with validation and keeps the
// two failure channels separate: malformed JSON is a Go error, a
// well-formed document that fails validation is an Err result.
package json
