package shell

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/aap-lang/aap/pkg/diag"
	"github.com/aap-lang/aap/pkg/eval"
	"github.com/aap-lang/aap/pkg/parse"
	"github.com/aap-lang/aap/pkg/store"
	"github.com/aap-lang/aap/pkg/sys"
)

// Continuation prompt, shown while a command is still incomplete.
const morePrompt = "... "

// Configuration for the interactive mode.
type interactCfg struct {
	Paths Paths
	NoRc  bool
}

// Runs an interactive session, reading commands from fds[0] until EOF or an
// "exit;" command. A command may span several lines; it is complete when a
// line ends with ";" or "}" after trimming whitespace.
func interact(ev *eval.Evaler, fds [3]*os.File, cfg *interactCfg) {
	rc := cfg.Paths.Rc
	if cfg.NoRc {
		rc = ""
	}
	config, err := readConfig(rc)
	if err != nil {
		fmt.Fprintln(fds[2], "Warning:", err)
	}

	var st store.DBStore
	if !config.NoHistory && cfg.Paths.Db != "" {
		st, err = store.NewStore(cfg.Paths.Db)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
			fmt.Fprintln(fds[2], "Command history will not be saved.")
			st = nil
		} else {
			defer st.Close()
		}
	}

	tty := sys.IsATTY(fds[0].Fd())
	in := bufio.NewScanner(fds[0])
	cmdNum := 0
	var pending strings.Builder

	for {
		if tty {
			if pending.Len() == 0 {
				fmt.Fprint(fds[1], config.Prompt)
			} else {
				fmt.Fprint(fds[1], morePrompt)
			}
		}
		if !in.Scan() {
			break
		}
		line := in.Text()
		trimmed := strings.TrimSpace(line)
		if pending.Len() == 0 && trimmed == "" {
			continue
		}
		pending.WriteString(line)
		pending.WriteByte('\n')
		if !strings.HasSuffix(trimmed, ";") && !strings.HasSuffix(trimmed, "}") {
			continue
		}

		code := pending.String()
		pending.Reset()
		if strings.TrimSpace(code) == "exit;" {
			break
		}

		cmdNum++
		if st != nil {
			if _, err := st.AddCmd(strings.TrimSuffix(code, "\n")); err != nil {
				logger.Println("failed to save command:", err)
			}
		}

		src := parse.Source{Name: fmt.Sprintf("[tty %v]", cmdNum), Code: code}
		err := ev.Eval(src, eval.EvalCfg{Out: fds[1]})
		if err != nil {
			diag.ShowError(fds[2], err)
		}
	}

	if err := in.Err(); err != nil {
		fmt.Fprintln(fds[2], "error reading input:", err)
	}
}
