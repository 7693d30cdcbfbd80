// Aap is an interpreter for the aap language, a tiny imperative language
// with variables, conditionals, loops and zero-argument functions. It is
// suitable for both interactive use and scripting.
package main

import (
	"os"

	"github.com/aap-lang/aap/pkg/buildinfo"
	"github.com/aap-lang/aap/pkg/lsp"
	"github.com/aap-lang/aap/pkg/prog"
	"github.com/aap-lang/aap/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		buildinfo.Program, lsp.Program{}, shell.Program{}))
}
