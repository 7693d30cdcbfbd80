package parse

import (
	"errors"

	"github.com/aap-lang/aap/pkg/diag"
)

// Error is the type of lexical errors returned by Tokenize.
type Error struct {
	Message string
	Context diag.Context
}

func (e *Error) diagError() *diag.Error {
	return &diag.Error{Type: "lexical error", Message: e.Message, Context: e.Context}
}

// Error returns a plain text representation of the error.
func (e *Error) Error() string { return e.diagError().Error() }

// Range returns the range of the offending character.
func (e *Error) Range() diag.Ranging { return e.Context.Range() }

// Show shows the error with its source context.
func (e *Error) Show(indent string) string { return e.diagError().Show(indent) }

// GetError returns the *Error in err's chain, or nil if there is none.
func GetError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
