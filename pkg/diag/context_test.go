package diag

import (
	"strings"
	"testing"
)

var contextTests = []struct {
	Name    string
	Context *Context
	Indent  string

	WantShow        string
	WantShowCompact string
}{
	{
		Name:    "single-line culprit",
		Context: contextInParen("[test]", "while (bad)"),
		Indent:  "_",

		WantShow: lines(
			"[test], line 1:",
			"_while <(bad)>",
		),
		WantShowCompact: "[test], line 1: while <(bad)>",
	},
	{
		Name:    "multi-line culprit",
		Context: contextInParen("[test]", "while (bad\nbad)\nmore"),
		Indent:  "_",

		WantShow: lines(
			"[test], line 1-2:",
			"_while <(bad>",
			"_<bad)>",
		),
		WantShowCompact: lines(
			"[test], line 1-2: while <(bad>",
			"_                  <bad)>",
		),
	},
	{
		Name: "trailing newline in culprit is removed",
		//                             012345678 9
		Context: NewContext("[test]", "print x;\n", Ranging{6, 9}),
		Indent:  "_",

		WantShow: lines(
			"[test], line 1:",
			"_print <x;>",
		),
		WantShowCompact: "[test], line 1: print <x;>",
	},
	{
		Name: "empty culprit",
		//                             0123456 7
		Context: NewContext("[test]", "print x", Ranging{7, 7}),

		WantShow: lines(
			"[test], line 1:",
			"print x<^>",
		),
		WantShowCompact: "[test], line 1: print x<^>",
	},
	{
		Name:            "unknown culprit range",
		Context:         NewContext("[test]", "print", Ranging{-1, -1}),
		WantShow:        "[test], unknown position",
		WantShowCompact: "[test], unknown position",
	},
	{
		Name:            "invalid culprit range",
		Context:         NewContext("[test]", "print", Ranging{2, 1}),
		WantShow:        "[test], invalid position 2-1",
		WantShowCompact: "[test], invalid position 2-1",
	},
}

func TestContext(t *testing.T) {
	setCulpritMarkers(t, "<", ">")
	for _, test := range contextTests {
		t.Run(test.Name, func(t *testing.T) {
			gotShow := test.Context.Show(test.Indent)
			if gotShow != test.WantShow {
				t.Errorf("Show() -> %q, want %q", gotShow, test.WantShow)
			}
			gotShowCompact := test.Context.ShowCompact(test.Indent)
			if gotShowCompact != test.WantShowCompact {
				t.Errorf("ShowCompact() -> %q, want %q",
					gotShowCompact, test.WantShowCompact)
			}
		})
	}
}

func setCulpritMarkers(t *testing.T, begin, end string) {
	t.Helper()
	savedBegin, savedEnd := culpritLineBegin, culpritLineEnd
	culpritLineBegin, culpritLineEnd = begin, end
	t.Cleanup(func() {
		culpritLineBegin, culpritLineEnd = savedBegin, savedEnd
	})
}

// Returns a Context with the given name and source, and a range for the
// part between ( and ).
func contextInParen(name, src string) *Context {
	return NewContext(name, src,
		Ranging{strings.Index(src, "("), strings.Index(src, ")") + 1})
}

func lines(lines ...string) string {
	return strings.Join(lines, "\n")
}
