package shell

import (
	"path/filepath"
	"testing"

	"github.com/aap-lang/aap/pkg/must"
	"github.com/aap-lang/aap/pkg/prog"
	"github.com/aap-lang/aap/pkg/prog/progtest"
	"github.com/aap-lang/aap/pkg/testutil"
)

func TestShell_RunsScript(t *testing.T) {
	f := progtest.Setup(t)
	path := filepath.Join(t.TempDir(), "script.aap")
	must.WriteFile(path, "print 1; print 2;")

	exit := prog.Run(f.Fds(), []string{"aap", path}, Program{})

	if exit != 0 {
		t.Errorf("got exit %v, want 0", exit)
	}
	f.TestOut(t, 1, "1\n2\n")
}

func TestShell_RunsCodeFromArg(t *testing.T) {
	f := progtest.Setup(t)

	exit := prog.Run(f.Fds(), []string{"aap", "-c", "print 3;"}, Program{})

	if exit != 0 {
		t.Errorf("got exit %v, want 0", exit)
	}
	f.TestOut(t, 1, "3\n")
}

func TestShell_CmdRequiresArgument(t *testing.T) {
	f := progtest.Setup(t)
	f.FeedIn("")

	exit := prog.Run(f.Fds(), []string{"aap", "-c"}, Program{})

	if exit != 2 {
		t.Errorf("got exit %v, want 2", exit)
	}
	f.TestOutSnippet(t, 2, "-c requires an argument")
}

func TestShell_Interact(t *testing.T) {
	testutil.TempHome(t)
	f := progtest.Setup(t)
	f.FeedIn("create x = 9; print x;\n")

	exit := prog.Run(f.Fds(), []string{"aap", "-norc"}, Program{})

	if exit != 0 {
		t.Errorf("got exit %v, want 0", exit)
	}
	f.TestOut(t, 1, "9\n")
}
