package runtype

import "github.com/runtype/runtype/diag"

// Assert panics with a [*diag.Failure] unless cond is true.
//
// The message is computed lazily so callers can format without paying for
// it on the happy path:
//
//	runtype.Assert(len(types) > 0, func() string { return "empty union" })
func Assert(cond bool, msg ...func() string) {
	if cond {
		return
	}
	text := "assert failed"
	if len(msg) > 0 && msg[0] != nil {
		text = msg[0]()
	}
	panic(diag.NewFailure("%s", text))
}

// Crash unconditionally panics with a [*diag.Failure] carrying msg.
func Crash(msg string) {
	panic(diag.NewFailure("%s", msg))
}
