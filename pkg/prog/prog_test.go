package prog_test

import (
	"errors"
	"os"
	"testing"

	. "github.com/aap-lang/aap/pkg/prog"
	"github.com/aap-lang/aap/pkg/prog/progtest"
)

func TestBadFlag(t *testing.T) {
	f := progtest.Setup(t)

	exit := Run(f.Fds(), []string{"aap", "-bad-flag"}, testProgram{})

	if exit != 2 {
		t.Errorf("got exit %v, want 2", exit)
	}
	f.TestOutSnippet(t, 2, "flag provided but not defined: -bad-flag")
	f.TestOutSnippet(t, 2, "Usage:")
}

func TestDashH(t *testing.T) {
	f := progtest.Setup(t)

	exit := Run(f.Fds(), []string{"aap", "-h"}, testProgram{})

	// -h is treated as a bad flag.
	if exit != 2 {
		t.Errorf("got exit %v, want 2", exit)
	}
	f.TestOutSnippet(t, 2, "flag provided but not defined: -h")
}

func TestHelp(t *testing.T) {
	f := progtest.Setup(t)

	exit := Run(f.Fds(), []string{"aap", "-help"}, testProgram{})

	if exit != 0 {
		t.Errorf("got exit %v, want 0", exit)
	}
	f.TestOutSnippet(t, 1, "Usage: aap [flags] [script]")
}

func TestNoSuitableSubprogram(t *testing.T) {
	f := progtest.Setup(t)

	exit := Run(f.Fds(), []string{"aap"}, testProgram{notSuitable: true})

	if exit != 2 {
		t.Errorf("got exit %v, want 2", exit)
	}
	f.TestOut(t, 2, "internal error: no suitable subprogram\n")
}

func TestPreferEarlierSubprogram(t *testing.T) {
	f := progtest.Setup(t)

	exit := Run(f.Fds(), []string{"aap"},
		testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"})

	if exit != 0 {
		t.Errorf("got exit %v, want 0", exit)
	}
	f.TestOut(t, 1, "program 1")
}

func TestBadUsageError(t *testing.T) {
	f := progtest.Setup(t)

	exit := Run(f.Fds(), []string{"aap"},
		testProgram{returnErr: BadUsage("lorem ipsum")})

	if exit != 2 {
		t.Errorf("got exit %v, want 2", exit)
	}
	f.TestOutSnippet(t, 2, "lorem ipsum")
	f.TestOutSnippet(t, 2, "Usage:")
}

func TestExitError(t *testing.T) {
	f := progtest.Setup(t)

	exit := Run(f.Fds(), []string{"aap"}, testProgram{returnErr: Exit(3)})

	if exit != 3 {
		t.Errorf("got exit %v, want 3", exit)
	}
	f.TestOut(t, 2, "")
}

func TestExitError_0(t *testing.T) {
	if err := Exit(0); err != nil {
		t.Errorf("Exit(0) = %v, want nil", err)
	}
}

func TestPlainError(t *testing.T) {
	f := progtest.Setup(t)

	exit := Run(f.Fds(), []string{"aap"},
		testProgram{returnErr: errors.New("some error")})

	if exit != 2 {
		t.Errorf("got exit %v, want 2", exit)
	}
	f.TestOut(t, 2, "some error\n")
}

type testProgram struct {
	notSuitable bool
	writeOut    string
	returnErr   error
}

func (p testProgram) ShouldRun(*Flags) bool { return !p.notSuitable }

func (p testProgram) Run(fds [3]*os.File, _ *Flags, _ []string) error {
	fds[1].WriteString(p.writeOut)
	return p.returnErr
}
