package diag

import (
	"encoding/json"
	"fmt"
	"path"
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

// anonymousFunc matches the synthesized names the runtime assigns to
// function literals ("pkg.Parent.func1", "pkg.glob..func2", …).
var anonymousFunc = regexp.MustCompile(`\.func\d+(\.\d+)*$`)

// FuncName returns the display name of a callable value.
//
// Named functions and methods contribute their base name ("isInteger",
// "Foo"). Function literals have no meaningful name and render as
// "<functionN>" where N is the function's arity. Non-callable values
// return "".
func FuncName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return ""
	}

	var full string
	if f := runtime.FuncForPC(rv.Pointer()); f != nil {
		full = f.Name()
	}
	if full == "" || anonymousFunc.MatchString(full) {
		return fmt.Sprintf("<function%d>", rv.Type().NumIn())
	}

	name := path.Base(full)
	// Generic instantiations carry a "[...]" suffix.
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	// Method values are reported with a "-fm" wrapper suffix.
	name = strings.TrimSuffix(name, "-fm")
	if name == "" {
		return fmt.Sprintf("<function%d>", rv.Type().NumIn())
	}
	return name
}

// Stringify renders a runtime value for inclusion in an error description.
//
// Callable values render as their display name (see [FuncName]); every
// other value renders as JSON. Values that cannot be marshaled fall back
// to the fmt "%v" form.
func Stringify(v any) string {
	if v != nil && reflect.ValueOf(v).Kind() == reflect.Func {
		return FuncName(v)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
