// Package errs declares error types used as evaluation error reasons.
package errs

import "fmt"

// AlreadyDeclared is raised when a declaration names a variable that is
// already in the declared set.
type AlreadyDeclared struct {
	VarName string
}

// Error implements the error interface.
func (e AlreadyDeclared) Error() string {
	return fmt.Sprintf("variable already declared: %s", e.VarName)
}

// NotDeclared is raised when reading or assigning a variable that has not
// been introduced with create.
type NotDeclared struct {
	VarName string
}

// Error implements the error interface.
func (e NotDeclared) Error() string {
	return fmt.Sprintf("variable not declared: %s (declare it with create first)", e.VarName)
}

// UndefinedFunction is raised when calling a function that has not been
// defined.
type UndefinedFunction struct {
	FnName string
}

// Error implements the error interface.
func (e UndefinedFunction) Error() string {
	return fmt.Sprintf("function not defined: %s", e.FnName)
}

// UnexpectedStatement is raised when no statement form starts with the
// current token.
type UnexpectedStatement struct {
	Token string
}

// Error implements the error interface.
func (e UnexpectedStatement) Error() string {
	return fmt.Sprintf("unexpected statement: %s", e.Token)
}

// UnexpectedToken is raised when the token stream does not have the shape
// the grammar needs at the current cursor.
type UnexpectedToken struct {
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e UnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected token: need %s, got %s", e.Expected, e.Actual)
}

// BadValue is raised when a value has the wrong type or shape for an
// operation, like ordering a string against a number.
type BadValue struct {
	What   string
	Valid  string
	Actual string
}

// Error implements the error interface.
func (e BadValue) Error() string {
	return fmt.Sprintf("bad value: %v must be %v, but is %v", e.What, e.Valid, e.Actual)
}
