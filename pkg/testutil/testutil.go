// Package testutil contains common test utilities.
package testutil

import (
	"testing"
)

// TempHome sets HOME (and USERPROFILE on Windows) to a temporary directory
// for the duration of a test, and returns the directory.
func TempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("USERPROFILE", dir)
	return dir
}
