// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/aap-lang/aap/pkg/buildinfo.Var=value" to
// "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/aap-lang/aap/pkg/prog"
)

// Version identifies the version of aap. On development commits, it
// identifies the next release.
const Version = "v0.3.0"

// VersionSuffix is appended to Version in the output of "aap -version" and
// "aap -buildinfo" to build the full version string. This can be overriden
// when building aap.
var VersionSuffix = "-dev.unknown"

// Program is the buildinfo subprogram.
var Program prog.Program = program{}

type program struct{}

func (program) ShouldRun(f *prog.Flags) bool { return f.Version || f.BuildInfo }

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	fullVersion := Version + VersionSuffix
	if f.Version {
		if f.JSON {
			fmt.Fprintln(fds[1], quoteJSON(fullVersion))
		} else {
			fmt.Fprintln(fds[1], fullVersion)
		}
		return nil
	}
	if f.JSON {
		fmt.Fprintf(fds[1],
			`{"version":%s,"goversion":%s}`+"\n",
			quoteJSON(fullVersion), quoteJSON(runtime.Version()))
	} else {
		fmt.Fprintln(fds[1], "Version:", fullVersion)
		fmt.Fprintln(fds[1], "Go version:", runtime.Version())
	}
	return nil
}

func quoteJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(b)
}
