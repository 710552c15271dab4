package typeexpr

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/runtype/runtype"
	"github.com/runtype/runtype/builtin"
)

// named resolves bare identifiers to shared validators.
var named = map[string]*runtype.Type{
	"nil":            runtype.Nil,
	"any":            runtype.Any,
	"string":         runtype.String,
	"number":         runtype.Number,
	"boolean":        runtype.Boolean,
	"arr":            runtype.Arr,
	"obj":            runtype.Obj,
	"fun":            runtype.Fun,
	"Integer":        builtin.Integer,
	"UUID":           builtin.UUID,
	"Timestamp":      builtin.Timestamp,
	"Date":           builtin.Date,
	"NonEmptyString": builtin.NonEmptyString,
}

// Parse parses a type expression into a validator.
//
// Returns an error describing the first syntax fault and its byte offset.
func Parse(src string) (*runtype.Type, error) {
	p := &parser{src: src}
	t, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected trailing input")
	}
	return t, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("typeexpr: %s at offset %d", fmt.Sprintf(format, args...), p.pos)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

// peek returns the next non-space byte without consuming it, or 0 at EOF.
func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// accept consumes b if it is the next non-space byte.
func (p *parser) accept(b byte) bool {
	if p.peek() == b {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(b byte) error {
	if !p.accept(b) {
		return p.errorf("expected %q", string(b))
	}
	return nil
}

func (p *parser) expr() (*runtype.Type, error) {
	if p.accept('?') {
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		return runtype.Maybe(inner), nil
	}
	return p.primary()
}

func (p *parser) primary() (*runtype.Type, error) {
	switch b := p.peek(); {
	case b == '(':
		return p.composite()
	case b == '[':
		return p.tuple()
	case b == '{':
		return p.object()
	case b == '"':
		s, err := p.quotedString()
		if err != nil {
			return nil, err
		}
		return runtype.Literal(s), nil
	case b == '$':
		return p.dollar()
	case b == '-' || isDigit(b):
		return p.numberLiteral()
	case isIdentStart(b):
		return p.identifier()
	case b == 0:
		return nil, p.errorf("unexpected end of input")
	default:
		return nil, p.errorf("unexpected %q", string(b))
	}
}

// composite parses "(A | B | …)" or "(A & B & …)"; a single parenthesized
// expression is plain grouping. Mixing "|" and "&" requires nesting.
func (p *parser) composite() (*runtype.Type, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	first, err := p.expr()
	if err != nil {
		return nil, err
	}
	op := p.peek()
	if op != '|' && op != '&' {
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return first, nil
	}
	members := []*runtype.Type{first}
	for p.accept(op) {
		next, err := p.expr()
		if err != nil {
			return nil, err
		}
		members = append(members, next)
	}
	if other := p.peek(); other == '|' || other == '&' {
		return nil, p.errorf("cannot mix %q and %q without parentheses", string(op), string(other))
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	if op == '|' {
		return runtype.Union(members), nil
	}
	return runtype.Intersection(members), nil
}

func (p *parser) tuple() (*runtype.Type, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	var members []*runtype.Type
	if p.peek() != ']' {
		for {
			t, err := p.expr()
			if err != nil {
				return nil, err
			}
			members = append(members, t)
			if !p.accept(',') {
				break
			}
		}
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return runtype.Tuple(members), nil
}

// object parses "{}", "{ [key: K]: V }", or "{ k: T, … }".
func (p *parser) object() (*runtype.Type, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	if p.accept('}') {
		return runtype.Object(nil), nil
	}
	if p.peek() == '[' {
		return p.mapping()
	}
	var props runtype.Props
	for {
		prop, err := p.prop()
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
		if !p.accept(',') {
			break
		}
	}
	if err := p.expect('}'); err != nil {
		return nil, err
	}
	return runtype.Object(props), nil
}

func (p *parser) mapping() (*runtype.Type, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	word, err := p.ident()
	if err != nil || word != "key" {
		return nil, p.errorf(`expected "key"`)
	}
	if err := p.expect(':'); err != nil {
		return nil, err
	}
	keyType, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	if err := p.expect(':'); err != nil {
		return nil, err
	}
	valType, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect('}'); err != nil {
		return nil, err
	}
	return runtype.Mapping(keyType, valType), nil
}

func (p *parser) prop() (runtype.Prop, error) {
	var key string
	var err error
	if p.peek() == '"' {
		key, err = p.quotedString()
	} else {
		key, err = p.ident()
	}
	if err != nil {
		return runtype.Prop{}, err
	}
	optional := p.accept('?')
	if err := p.expect(':'); err != nil {
		return runtype.Prop{}, err
	}
	t, err := p.expr()
	if err != nil {
		return runtype.Prop{}, err
	}
	if optional && t.Kind() != runtype.KindMaybe {
		t = runtype.Maybe(t)
	}
	return runtype.P(key, t), nil
}

// dollar parses "$Keys<…>", "$Exact<…>", and "$Shape<…>".
func (p *parser) dollar() (*runtype.Type, error) {
	p.accept('$')
	word, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	inner, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}
	if inner.Props() == nil {
		return nil, p.errorf("$%s requires an object type, got %q", word, inner.Name())
	}
	switch word {
	case "Keys":
		return runtype.Keys(inner), nil
	case "Exact":
		return runtype.Exact(inner.Props()), nil
	case "Shape":
		return runtype.Shape(inner), nil
	default:
		return nil, p.errorf("unknown operator $%s", word)
	}
}

func (p *parser) identifier() (*runtype.Type, error) {
	start := p.pos
	word, err := p.ident()
	if err != nil {
		return nil, err
	}
	switch word {
	case "true":
		return runtype.Literal(true), nil
	case "false":
		return runtype.Literal(false), nil
	case "Array":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		elem, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		return runtype.Array(elem), nil
	}
	if t, ok := named[word]; ok {
		return t, nil
	}
	p.pos = start
	return nil, p.errorf("unknown type name %q", word)
}

func (p *parser) ident() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected identifier")
	}
	return p.src[start:p.pos], nil
}

// quotedString parses a JSON string literal.
func (p *parser) quotedString() (string, error) {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '"' {
		return "", p.errorf("expected string")
	}
	end := p.pos + 1
	for end < len(p.src) {
		switch p.src[end] {
		case '\\':
			end += 2
			continue
		case '"':
			var s string
			if err := unquoteJSON(p.src[p.pos:end+1], &s); err != nil {
				return "", p.errorf("invalid string literal: %v", err)
			}
			p.pos = end + 1
			return s, nil
		}
		end++
	}
	return "", p.errorf("unterminated string")
}

func (p *parser) numberLiteral() (*runtype.Type, error) {
	p.skipSpace()
	start := p.pos
	if p.pos < len(p.src) && p.src[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.src) && (isDigit(p.src[p.pos]) || strings.ContainsRune(".eE+-", rune(p.src[p.pos]))) {
		p.pos++
	}
	f, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		p.pos = start
		return nil, p.errorf("invalid number literal")
	}
	return runtype.Literal(f), nil
}

func unquoteJSON(raw string, out *string) error {
	return json.Unmarshal([]byte(raw), out)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}
