// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store
// API do not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingCmd is the error returned when a Cmd query completes with
// no result.
var ErrNoMatchingCmd = errors.New("no matching command line")

// Store is an interface satisfied by the storage service.
type Store interface {
	// NextCmdSeq returns the sequence number the next added command will
	// get.
	NextCmdSeq() (int, error)
	// AddCmd adds a command to the history and returns its sequence
	// number.
	AddCmd(text string) (int, error)
	// DelCmd deletes the command with the given sequence number.
	DelCmd(seq int) error
	// Cmd returns the text of the command with the given sequence number.
	Cmd(seq int) (string, error)
	// CmdsWithSeq returns all commands with sequence numbers in [from,
	// upto).
	CmdsWithSeq(from, upto int) ([]Cmd, error)
}

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}
