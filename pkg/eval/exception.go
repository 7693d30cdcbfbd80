package eval

import (
	"github.com/aap-lang/aap/pkg/diag"
)

// Error is an evaluation error, wrapping a structured reason (usually one
// of the types in the errs subpackage) with the source context where it
// was detected.
type Error struct {
	Reason  error
	Context *diag.Context
}

// Error returns the message of the reason.
func (e *Error) Error() string { return e.Reason.Error() }

// Unwrap returns the reason.
func (e *Error) Unwrap() error { return e.Reason }

// Range returns the source range the error is attributed to.
func (e *Error) Range() diag.Ranging { return e.Context.Range() }

// Show shows the error with its source context.
func (e *Error) Show(indent string) string {
	return "Error: \033[31;1m" + e.Reason.Error() + "\033[m\n" +
		e.Context.ShowCompact(indent+"  ")
}

// Reason returns the Reason field if err is an *Error, and err itself
// otherwise.
func Reason(err error) error {
	if e, ok := err.(*Error); ok {
		return e.Reason
	}
	return err
}

// Return is the control-flow "error" raised by a return statement. It
// unwinds through every intervening block frame without being inspected
// and is intercepted only at a function-call site, which extracts the
// carried value. A Return that reaches the top level surfaces to the
// driver as a fault.
type Return struct {
	Value    any
	HasValue bool
}

// Error implements the error interface. The message is only ever seen
// when the signal escapes all function calls.
func (r Return) Error() string { return "return used outside a function" }

// Show shows the flow "error".
func (r Return) Show(string) string {
	return "\033[33;1m" + r.Error() + "\033[m"
}
