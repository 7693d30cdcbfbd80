package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aap-lang/aap/pkg/prog"
)

// Paths keeps the paths to the files used by the interactive mode.
type Paths struct {
	Rc string
	Db string
}

// Resolves the paths of rc.yaml and the history database, respecting
// overrides from CLI flags. Failure to establish the data directory is not
// fatal; it disables the affected files with a warning.
func makePaths(stderr io.Writer, f *prog.Flags) Paths {
	p := Paths{Rc: f.RC, Db: f.DB}
	if p.Rc != "" && p.Db != "" {
		return p
	}

	dataDir, err := ensureDataDir()
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
		fmt.Fprintln(stderr, "The rc file and command history will not be used.")
		return p
	}
	if p.Rc == "" {
		p.Rc = filepath.Join(dataDir, "rc.yaml")
	}
	if p.Db == "" {
		p.Db = filepath.Join(dataDir, "db.bolt")
	}
	return p
}

// Returns the data directory ~/.aap, creating it if it doesn't exist.
func ensureDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find home directory: %v", err)
	}
	dir := filepath.Join(home, ".aap")
	return dir, os.MkdirAll(dir, 0o700)
}
