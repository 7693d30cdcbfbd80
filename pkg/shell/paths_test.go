package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aap-lang/aap/pkg/prog"
	"github.com/aap-lang/aap/pkg/testutil"
)

func TestMakePaths_Defaults(t *testing.T) {
	home := testutil.TempHome(t)

	p := makePaths(os.Stderr, &prog.Flags{})

	wantRc := filepath.Join(home, ".aap", "rc.yaml")
	wantDb := filepath.Join(home, ".aap", "db.bolt")
	if p.Rc != wantRc {
		t.Errorf("got rc %q, want %q", p.Rc, wantRc)
	}
	if p.Db != wantDb {
		t.Errorf("got db %q, want %q", p.Db, wantDb)
	}
	if _, err := os.Stat(filepath.Join(home, ".aap")); err != nil {
		t.Errorf("data directory not created: %v", err)
	}
}

func TestMakePaths_Overrides(t *testing.T) {
	testutil.TempHome(t)

	p := makePaths(os.Stderr, &prog.Flags{RC: "/custom/rc.yaml", DB: "/custom/db.bolt"})

	if p.Rc != "/custom/rc.yaml" {
		t.Errorf("got rc %q, want %q", p.Rc, "/custom/rc.yaml")
	}
	if p.Db != "/custom/db.bolt" {
		t.Errorf("got db %q, want %q", p.Db, "/custom/db.bolt")
	}
}
