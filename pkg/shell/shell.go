// Package shell is the entry point for the terminal interface of aap.
package shell

import (
	"os"

	"github.com/aap-lang/aap/pkg/eval"
	"github.com/aap-lang/aap/pkg/logutil"
	"github.com/aap-lang/aap/pkg/prog"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the interpreter subprogram. It handles both script mode and
// interactive mode.
type Program struct{}

func (p Program) ShouldRun(*prog.Flags) bool { return true }

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	ev := eval.NewEvaler()

	if len(args) > 0 {
		exit := script(ev, fds, args, &scriptCfg{Cmd: f.CodeInArg})
		return prog.Exit(exit)
	}
	if f.CodeInArg {
		return prog.BadUsage("-c requires an argument")
	}

	interact(ev, fds, &interactCfg{Paths: makePaths(fds[2], f), NoRc: f.NoRc})
	return nil
}
