package eval

import (
	"maps"

	"github.com/aap-lang/aap/pkg/parse"
)

// Env is the variable environment, mapping variable names to values.
type Env map[string]any

// FnTable maps function names to their un-parsed bodies.
type FnTable map[string]Block

// Block is the body of an if, else, while or function construct: the
// token slice between the braces (braces excluded), captured verbatim,
// together with the source it was cut from so that faults raised while
// executing it later still show the right excerpt.
type Block struct {
	Tokens []parse.Token
	Src    parse.Source
}

func (e Env) clone() Env { return maps.Clone(e) }

func (t FnTable) clone() FnTable { return maps.Clone(t) }

// The declared set of a child session is derived from the keys of its
// copied environment; the two are kept in lockstep by every mutating
// statement.
func declaredFrom(e Env) map[string]bool {
	declared := make(map[string]bool, len(e))
	for name := range e {
		declared[name] = true
	}
	return declared
}
