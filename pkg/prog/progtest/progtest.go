// Package progtest provides a fixture for testing subprograms.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"
)

// Fixture is a test fixture in which the three standard files are all
// pipes, with the pipe ends not used by the subprogram held by the test.
type Fixture struct {
	fds [3]*os.File
	inW *os.File
	out *capture
	err *capture
}

// Setup sets up a test fixture. The fixture is cleaned up automatically
// when the test finishes.
func Setup(t *testing.T) *Fixture {
	t.Helper()
	inR, inW := mustPipe(t)
	outW, out := newCapture(t)
	errW, errCap := newCapture(t)
	f := &Fixture{[3]*os.File{inR, outW, errW}, inW, out, errCap}
	t.Cleanup(func() {
		inR.Close()
		inW.Close()
		out.get()
		errCap.get()
	})
	return f
}

// Fds returns the file descriptors to pass to the subprogram.
func (f *Fixture) Fds() [3]*os.File { return f.fds }

// FeedIn feeds the given content to the subprogram's stdin and closes it.
func (f *Fixture) FeedIn(content string) {
	_, err := f.inW.WriteString(content)
	if err != nil {
		panic(err)
	}
	f.inW.Close()
}

// TestOut tests that the output on the given FD (1 or 2) is exactly wantOut.
func (f *Fixture) TestOut(t *testing.T, fd int, wantOut string) {
	t.Helper()
	if out := f.get(fd); out != wantOut {
		t.Errorf("got out %q, want %q", out, wantOut)
	}
}

// TestOutSnippet tests that the output on the given FD contains wantSnippet.
func (f *Fixture) TestOutSnippet(t *testing.T, fd int, wantSnippet string) {
	t.Helper()
	if out := f.get(fd); !strings.Contains(out, wantSnippet) {
		t.Errorf("got out %q, want string containing %q", out, wantSnippet)
	}
}

func (f *Fixture) get(fd int) string {
	switch fd {
	case 1:
		return f.out.get()
	case 2:
		return f.err.get()
	default:
		panic("fd must be 1 or 2")
	}
}

// TestError tests the error result of a subprogram along with the stderr
// snippet it should have produced.
func TestError(t *testing.T, f *Fixture, err error, wantErrSnippet string) {
	t.Helper()
	if err == nil {
		t.Errorf("got nil error, want non-nil")
	}
	f.TestOutSnippet(t, 2, wantErrSnippet)
}

// capture reads everything written to the write end of a pipe in the
// background. The first call of get closes the write end and returns what
// was read; further calls return the same string.
type capture struct {
	w     *os.File
	saved chan string
	got   *string
}

func newCapture(t *testing.T) (*os.File, *capture) {
	t.Helper()
	r, w := mustPipe(t)
	saved := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		saved <- string(b)
		r.Close()
	}()
	return w, &capture{w: w, saved: saved}
}

func (c *capture) get() string {
	if c.got == nil {
		c.w.Close()
		s := <-c.saved
		c.got = &s
	}
	return *c.got
}

func mustPipe(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	return r, w
}
