package diag

import "fmt"

// FailurePrefix marks a panic raised for programmer misuse of the library,
// as opposed to a domain-level validation failure (which is always a value).
const FailurePrefix = "[runtime-validation failure]\n"

// Failure is the panic payload for programmer errors: extracting the wrong
// case of a result, a failed assertion, or an explicit crash.
//
// Failures are not expected to be recovered; they indicate a bug in the
// calling code rather than invalid input data.
type Failure struct {
	msg string
}

// NewFailure creates a Failure with a formatted message.
func NewFailure(format string, args ...any) *Failure {
	return &Failure{msg: fmt.Sprintf(format, args...)}
}

// Error returns the prefixed failure message.
func (f *Failure) Error() string {
	return FailurePrefix + f.msg
}

// Message returns the failure message without the prefix.
func (f *Failure) Message() string {
	return f.msg
}
