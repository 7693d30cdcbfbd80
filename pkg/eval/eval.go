// Package eval handles evaluation of aap code and maintains the state
// persisted between evaluations.
//
// There is no syntax tree: a session walks the token stream once,
// dispatching statements by lookahead and evaluating expressions as it
// parses them. See session.go.
package eval

import (
	"io"
	"os"

	"github.com/aap-lang/aap/pkg/logutil"
	"github.com/aap-lang/aap/pkg/parse"
)

var logger = logutil.GetLogger("[eval] ")

// Evaler provides methods for evaluating code, and carries the state that
// persists between evaluations of different pieces of code: the variable
// environment, the set of declared names, and the function table.
type Evaler struct {
	env      Env
	declared map[string]bool
	fns      FnTable
}

// EvalCfg keeps configuration for the Eval method.
type EvalCfg struct {
	// Destination of print statements. If nil, os.Stdout is used.
	Out io.Writer
}

// NewEvaler creates a new Evaler with an empty environment and function
// table.
func NewEvaler() *Evaler {
	return &Evaler{
		env:      make(Env),
		declared: make(map[string]bool),
		fns:      make(FnTable),
	}
}

// Eval tokenizes and evaluates the given source. Mutations made by
// top-level statements land in the Evaler's own state and are visible to
// later Eval calls; a fault stops evaluation but keeps the mutations
// already applied (evaluation is not transactional). The error, if not
// nil, is a *parse.Error, an *Error, or an escaped Return.
func (ev *Evaler) Eval(src parse.Source, cfg EvalCfg) error {
	logger.Printf("eval %v (%d bytes)", src.Name, len(src.Code))
	tokens, err := parse.Tokenize(src)
	if err != nil {
		return err
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	s := &session{
		src: src, tokens: tokens,
		env: ev.env, declared: ev.declared, fns: ev.fns,
		out: out,
	}
	return s.run()
}
