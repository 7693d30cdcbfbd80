// Package must contains simple functions that panic on errors.
//
// It should only be used in tests and rare places where errors are
// provably impossible.
package must

import "os"

// OK panics if the error value is not nil. It is intended for use with
// functions that return just an error.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// WriteFile wraps os.WriteFile.
func WriteFile(filename, data string) {
	OK(os.WriteFile(filename, []byte(data), 0600))
}
