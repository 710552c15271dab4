package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"

	"github.com/runtype/runtype"
	"github.com/runtype/runtype/result"
)

// Adapter decodes JSON data into validation-ready values.
//
// Thread safety: Adapter is safe for concurrent Decode calls after
// construction. No shared mutable state exists.
type Adapter struct {
	strict    bool
	useNumber bool
}

// Option configures Adapter behavior.
type Option func(*Adapter)

// WithStrict configures strict JSON parsing.
//
// When strict is true the input is parsed directly with encoding/json and
// comments or trailing commas are parse errors. When false (the default)
// the input is preprocessed with tidwall/jsonc first.
func WithStrict(strict bool) Option {
	return func(a *Adapter) {
		a.strict = strict
	}
}

// WithUseNumber configures numeric decoding.
//
// When use is true (the default) numbers decode as json.Number, which
// preserves integer fidelity. When false they decode as float64.
func WithUseNumber(use bool) Option {
	return func(a *Adapter) {
		a.useNumber = use
	}
}

// New creates an Adapter with the given options.
func New(opts ...Option) *Adapter {
	a := &Adapter{
		strict:    false,
		useNumber: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Decode parses data as a single JSON document.
//
// Returns an error for malformed input or for trailing content after the
// first document.
func (a *Adapter) Decode(data []byte) (any, error) {
	processed := data
	if !a.strict {
		processed = jsonc.ToJSON(data)
	}

	dec := json.NewDecoder(bytes.NewReader(processed))
	if a.useNumber {
		dec.UseNumber()
	}

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("json adapter: invalid JSON at offset %d: %w", dec.InputOffset(), err)
	}

	// Reject trailing content after the first document.
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("json adapter: trailing content at offset %d: %w", dec.InputOffset(), err)
		}
		return nil, fmt.Errorf("json adapter: unexpected content after document at offset %d: %v", dec.InputOffset(), tok)
	}

	return v, nil
}

// DecodeValidate decodes data and validates the document against t.
//
// The two failure channels stay separate: a non-nil error means the input
// was not decodable JSON; a decodable document that t rejects comes back
// as an Err result.
func (a *Adapter) DecodeValidate(data []byte, t *runtype.Type) (result.Result[any], error) {
	v, err := a.Decode(data)
	if err != nil {
		return result.Result[any]{}, err
	}
	return runtype.Validate(v, t), nil
}

// Decode parses data with a default (lenient, json.Number) adapter.
func Decode(data []byte) (any, error) {
	return New().Decode(data)
}

// DecodeValidate decodes and validates with a default adapter.
func DecodeValidate(data []byte, t *runtype.Type) (result.Result[any], error) {
	return New().DecodeValidate(data, t)
}
