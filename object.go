package runtype

import (
	"github.com/runtype/runtype/diag"
	"github.com/runtype/runtype/internal/value"
	"github.com/runtype/runtype/result"
)

// Object accepts object values validated property by property.
//
// Every declared property is checked, in declaration order, against the
// value stored under its key; a missing key reads as nil and the declared
// type decides whether that is acceptable (a property of type [Any] or
// [Maybe] accepts absence). Keys on the value that are not declared are
// ignored — see [Exact] for the closed variant. All property errors are
// accumulated. On success the result carries the input reference.
//
// The default name is "{ k0: T0, k1: T1 }" in declaration order.
func Object(props Props, name ...string) *Type {
	declared := make(Props, len(props))
	copy(declared, props)
	t := &Type{name: optName(objectDefaultName(declared), name), kind: KindObject, props: declared}
	t.validate = objectValidate(declared, nil)
	return t
}

// Mapping accepts object values whose every key satisfies keyType and
// every value satisfies valType.
//
// Keys are visited in sorted order so accumulated errors are
// deterministic. Both the key and the value of each entry are checked,
// each under a context extended with that key. On success the result
// carries the input reference.
//
// The default name is "{ [key: K]: V }".
func Mapping(keyType, valType *Type, name ...string) *Type {
	def := "{ [key: " + keyType.name + "]: " + valType.name + " }"
	t := &Type{name: optName(def, name), kind: KindMapping, key: keyType, val: valType}
	t.validate = func(v any, ctx diag.Context) result.Result[any] {
		obj, ok := value.AsObject(v)
		if !ok {
			return reject(v, ctx)
		}
		var errs []diag.ValidationError
		for _, k := range obj.Keys() {
			kr := keyType.validate(k, ctx.Extend(k, keyType.name))
			errs = append(errs, kr.Errors()...)
			vr := valType.validate(obj.Get(k), ctx.Extend(k, valType.name))
			errs = append(errs, vr.Errors()...)
		}
		if len(errs) > 0 {
			return result.Err[any](errs)
		}
		return result.Ok(v)
	}
	return t
}

// Keys accepts the declared property names of an object-like type.
//
// objectType must carry declared properties (an [Object], [Exact], or
// [Shape] type); anything else is programmer misuse and panics. A value
// is accepted iff it is a string equal to one of the declared keys.
//
// The default name is "$Keys<objectType>".
func Keys(objectType *Type, name ...string) *Type {
	if objectType.props == nil {
		panic(diag.NewFailure("runtype.Keys: %q is not an object type", objectType.name))
	}
	allowed := make(map[string]struct{}, len(objectType.props))
	for _, p := range objectType.props {
		allowed[p.key] = struct{}{}
	}
	t := &Type{name: optName("$Keys<"+objectType.name+">", name), kind: KindKeys}
	t.validate = func(v any, ctx diag.Context) result.Result[any] {
		s, ok := v.(string)
		if !ok {
			return reject(v, ctx)
		}
		if _, ok := allowed[s]; !ok {
			return reject(v, ctx)
		}
		return result.Ok(v)
	}
	return t
}

// Exact is [Object] with a closed key set: every key on the value that is
// not declared produces one additional error, located at a context
// extended with that key under the name "nil" (the only type an
// undeclared key could legally have).
//
// The default name is "$Exact<{ k0: T0, … }>".
func Exact(props Props, name ...string) *Type {
	declared := make(Props, len(props))
	copy(declared, props)
	t := &Type{name: optName("$Exact<"+objectDefaultName(declared)+">", name), kind: KindExact, props: declared}
	t.validate = objectValidate(declared, extraKeyErrors)
	return t
}

// Shape accepts object values whose present properties satisfy their
// declared types; missing properties are not errors. Undeclared keys are
// rejected exactly as in [Exact].
//
// objectType must carry declared properties, like [Keys]. The default
// name is "$Shape<objectType>".
func Shape(objectType *Type, name ...string) *Type {
	if objectType.props == nil {
		panic(diag.NewFailure("runtype.Shape: %q is not an object type", objectType.name))
	}
	declared := objectType.props
	t := &Type{name: optName("$Shape<"+objectType.name+">", name), kind: KindShape, props: declared}
	t.validate = func(v any, ctx diag.Context) result.Result[any] {
		obj, ok := value.AsObject(v)
		if !ok {
			return reject(v, ctx)
		}
		var errs []diag.ValidationError
		for _, p := range declared {
			if !obj.Has(p.key) {
				continue
			}
			r := p.typ.validate(obj.Get(p.key), ctx.Extend(p.key, p.typ.name))
			errs = append(errs, r.Errors()...)
		}
		errs = append(errs, extraKeyErrors(declared, obj, ctx)...)
		if len(errs) > 0 {
			return result.Err[any](errs)
		}
		return result.Ok(v)
	}
	return t
}

// objectValidate builds the shared property-walk validate function.
// extras, when non-nil, contributes additional errors for undeclared keys.
func objectValidate(declared Props, extras func(Props, value.Object, diag.Context) []diag.ValidationError) func(any, diag.Context) result.Result[any] {
	return func(v any, ctx diag.Context) result.Result[any] {
		obj, ok := value.AsObject(v)
		if !ok {
			return reject(v, ctx)
		}
		var errs []diag.ValidationError
		for _, p := range declared {
			r := p.typ.validate(obj.Get(p.key), ctx.Extend(p.key, p.typ.name))
			errs = append(errs, r.Errors()...)
		}
		if extras != nil {
			errs = append(errs, extras(declared, obj, ctx)...)
		}
		if len(errs) > 0 {
			return result.Err[any](errs)
		}
		return result.Ok(v)
	}
}

// extraKeyErrors produces one error per key present on the value but
// absent from the declaration, in sorted key order.
func extraKeyErrors(declared Props, obj value.Object, ctx diag.Context) []diag.ValidationError {
	keys := make(map[string]struct{}, len(declared))
	for _, p := range declared {
		keys[p.key] = struct{}{}
	}
	var errs []diag.ValidationError
	for _, k := range obj.Keys() {
		if _, ok := keys[k]; ok {
			continue
		}
		errs = append(errs, diag.NewError(obj.Get(k), ctx.Extend(k, Nil.name)))
	}
	return errs
}
