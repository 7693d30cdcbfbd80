package parse

import (
	"strings"
	"testing"

	"github.com/aap-lang/aap/pkg/diag"
)

func TestError(t *testing.T) {
	_, err := Tokenize(Source{Name: "[test]", Code: "print ?;"})
	if err == nil {
		t.Fatal("Tokenize -> no error, want lexical error")
	}

	// The returned value must be usable as a plain error.
	wantMsg := `lexical error: 6-7 in [test]: unexpected character "?"`
	if gotMsg := err.Error(); gotMsg != wantMsg {
		t.Errorf("Error() -> %q, want %q", gotMsg, wantMsg)
	}

	lexErr := GetError(err)
	if lexErr == nil {
		t.Fatalf("GetError -> nil, want *Error")
	}
	if lexErr.Message != `unexpected character "?"` {
		t.Errorf("Message = %q, want the offending character quoted", lexErr.Message)
	}
	if r := lexErr.Range(); r != (diag.Ranging{From: 6, To: 7}) {
		t.Errorf("Range() = %v, want 6-7", r)
	}
	if show := lexErr.Show(""); !strings.Contains(show, "Lexical error") ||
		!strings.Contains(show, "[test]") {
		t.Errorf("Show() = %q, want type title and source name included", show)
	}
}
