package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aap-lang/aap/pkg/diag"
)

// Kind and value of a token, without its range.
type kv struct {
	Kind  TokenKind
	Value any
}

func tokenize(t *testing.T, code string) []kv {
	t.Helper()
	tokens, err := Tokenize(Source{Name: "[test]", Code: code})
	if err != nil {
		t.Fatalf("Tokenize(%q) -> error %v, want nil", code, err)
	}
	kvs := make([]kv, len(tokens))
	for i, tok := range tokens {
		kvs[i] = kv{tok.Kind, tok.Value}
	}
	return kvs
}

var tokenizeTests = []struct {
	code string
	want []kv
}{
	{"", []kv{{EOF, ""}}},
	{"42", []kv{{NUMBER, 42}, {EOF, ""}}},
	{`"hi there"`, []kv{{STRING, "hi there"}, {EOF, ""}}},
	// No escape processing: the backslash is kept verbatim.
	{`"a\n"`, []kv{{STRING, `a\n`}, {EOF, ""}}},
	{"_x9", []kv{{ID, "_x9"}, {EOF, ""}}},
	// Reserved words are re-kinded.
	{"if else while print function return and or not create",
		[]kv{{IF, "if"}, {ELSE, "else"}, {WHILE, "while"}, {PRINT, "print"},
			{FUNCTION, "function"}, {RETURN, "return"}, {AND, "and"},
			{OR, "or"}, {NOT, "not"}, {CREATE, "create"}, {EOF, ""}}},
	// A keyword prefix inside a longer identifier stays an ID.
	{"iffy", []kv{{ID, "iffy"}, {EOF, ""}}},
	// Spaces, tabs and newlines produce no tokens.
	{" \t\n ", []kv{{EOF, ""}}},
	{"create x = 1;",
		[]kv{{CREATE, "create"}, {ID, "x"}, {ASSIGN, "="}, {NUMBER, 1},
			{END, ";"}, {EOF, ""}}},
	// First-match ordering: ASSIGN is tried before COMPARE, so == lexes
	// as two ASSIGN tokens.
	{"a==b", []kv{{ID, "a"}, {ASSIGN, "="}, {ASSIGN, "="}, {ID, "b"}, {EOF, ""}}},
	// The other comparison operators are unaffected.
	{"a!=b", []kv{{ID, "a"}, {COMPARE, "!="}, {ID, "b"}, {EOF, ""}}},
	{"a<=b", []kv{{ID, "a"}, {COMPARE, "<="}, {ID, "b"}, {EOF, ""}}},
	{"a>=b", []kv{{ID, "a"}, {COMPARE, ">="}, {ID, "b"}, {EOF, ""}}},
	{"a<b", []kv{{ID, "a"}, {COMPARE, "<"}, {ID, "b"}, {EOF, ""}}},
	{"a>b", []kv{{ID, "a"}, {COMPARE, ">"}, {ID, "b"}, {EOF, ""}}},
	// OP tokens are produced even though the grammar never consumes them.
	{"+ - * / %", []kv{{OP, "+"}, {OP, "-"}, {OP, "*"}, {OP, "/"}, {OP, "%"}, {EOF, ""}}},
	{"(){};", []kv{{LPAREN, "("}, {RPAREN, ")"}, {LBRACE, "{"}, {RBRACE, "}"}, {END, ";"}, {EOF, ""}}},
	// A quoted string may span lines.
	{"\"a\nb\"", []kv{{STRING, "a\nb"}, {EOF, ""}}},
	// Adjacent tokens without spaces.
	{"x=10;", []kv{{ID, "x"}, {ASSIGN, "="}, {NUMBER, 10}, {END, ";"}, {EOF, ""}}},
}

func TestTokenize(t *testing.T) {
	for _, test := range tokenizeTests {
		if diff := cmp.Diff(test.want, tokenize(t, test.code)); diff != "" {
			t.Errorf("Tokenize(%q) (-want +got):\n%s", test.code, diff)
		}
	}
}

var tokenizeErrorTests = []struct {
	code string
	// Range of the offending character.
	from, to int
}{
	{"@", 0, 1},
	{"x = 1 ? 2;", 6, 7},
	// Carriage return is covered by no pattern.
	{"x\r", 1, 2},
	// An unterminated string fails the STRING pattern, so the quote
	// itself is the unexpected character.
	{`"abc`, 0, 1},
	// Non-ASCII letters are not identifier characters.
	{"é", 0, 2},
}

func TestTokenize_Errors(t *testing.T) {
	for _, test := range tokenizeErrorTests {
		_, err := Tokenize(Source{Name: "[test]", Code: test.code})
		if err == nil {
			t.Errorf("Tokenize(%q) -> no error, want lexical error", test.code)
			continue
		}
		lexErr := GetError(err)
		if lexErr == nil {
			t.Errorf("Tokenize(%q) -> error of type %T, want *Error", test.code, err)
			continue
		}
		if r := lexErr.Range(); r.From != test.from || r.To != test.to {
			t.Errorf("Tokenize(%q) -> error at %d-%d, want %d-%d",
				test.code, r.From, r.To, test.from, test.to)
		}
	}
}

func TestTokenize_Ranges(t *testing.T) {
	code := `print "ok";`
	tokens, err := Tokenize(Source{Name: "[test]", Code: code})
	if err != nil {
		t.Fatalf("Tokenize(%q) -> error %v", code, err)
	}
	want := []diag.Ranging{
		{From: 0, To: 5},   // print
		{From: 6, To: 10},  // "ok"
		{From: 10, To: 11}, // ;
		{From: 11, To: 11}, // EOF
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Ranging != want[i] {
			t.Errorf("token %d has range %v, want %v", i, tok.Ranging, want[i])
		}
	}
}

func TestTokenize_NumberOutOfRange(t *testing.T) {
	_, err := Tokenize(Source{Name: "[test]", Code: "99999999999999999999999999"})
	if GetError(err) == nil {
		t.Errorf("got error %v, want *Error", err)
	}
}

func TestGetError(t *testing.T) {
	if GetError(nil) != nil {
		t.Errorf("GetError(nil) -> non-nil")
	}
	_, err := Tokenize(Source{Name: "[test]", Code: "@"})
	if GetError(err) == nil {
		t.Errorf("GetError of a lexical error -> nil")
	}
}
