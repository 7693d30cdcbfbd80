// Package parse implements the lexer of the aap language.
//
// Tokenization tries a fixed, ordered list of patterns at each offset and
// commits to the first pattern that matches at all, however short the
// match; patterns are never compared by length. The ordering is load
// bearing: ASSIGN is tried before COMPARE, so "==" always lexes as two
// ASSIGN tokens rather than one comparison token.
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aap-lang/aap/pkg/diag"
)

// A pattern matches a prefix of the remaining source, returning the number
// of bytes matched, or 0 for no match.
type pattern struct {
	kind  TokenKind
	match func(s string) int
}

// Tried in order at each offset; first match wins.
var patterns = []pattern{
	{NUMBER, matchDigits},
	{STRING, matchString},
	{ID, matchID},
	{ASSIGN, matchByte('=')},
	{END, matchByte(';')},
	{OP, matchOneOf("+-*/%")},
	{COMPARE, matchCompare},
	{LPAREN, matchByte('(')},
	{RPAREN, matchByte(')')},
	{LBRACE, matchByte('{')},
	{RBRACE, matchByte('}')},
	{newline, matchByte('\n')},
	{skipSpace, matchSpaces},
	{mismatch, matchAnyRune},
}

// Tokenize scans the source into a stream of tokens terminated by an EOF
// sentinel. The returned error, if not nil, has type *Error and reports
// the first character not covered by any pattern.
func Tokenize(src Source) ([]Token, error) {
	var tokens []Token
	pos := 0
	for pos < len(src.Code) {
		rest := src.Code[pos:]
		kind, n := TokenKind(-1), 0
		for _, p := range patterns {
			if l := p.match(rest); l > 0 {
				kind, n = p.kind, l
				break
			}
		}
		text := rest[:n]
		r := diag.Ranging{From: pos, To: pos + n}
		switch kind {
		case NUMBER:
			num, err := strconv.Atoi(text)
			if err != nil {
				return nil, errorp(src, r, "number out of range: %s", text)
			}
			tokens = append(tokens, Token{NUMBER, num, r})
		case STRING:
			// Quotes are dropped; the text between them is kept verbatim,
			// with no escape processing.
			tokens = append(tokens, Token{STRING, text[1 : n-1], r})
		case ID:
			if kw, ok := keywords[text]; ok {
				kind = kw
			}
			tokens = append(tokens, Token{kind, text, r})
		case newline, skipSpace:
			// Discarded.
		case mismatch:
			return nil, errorp(src, r, "unexpected character %q", text)
		default:
			tokens = append(tokens, Token{kind, text, r})
		}
		pos += n
	}
	tokens = append(tokens, Token{EOF, "", diag.PointRanging(len(src.Code))})
	return tokens, nil
}

func errorp(src Source, r diag.Ranger, format string, args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(src.Name, src.Code, r),
	}
}

func matchDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// Matches a double-quoted string with no escape sequences. The quoted text
// may span lines. An unterminated opening quote matches nothing, so the
// quote itself ends up as an unexpected character.
func matchString(s string) int {
	if len(s) == 0 || s[0] != '"' {
		return 0
	}
	if i := strings.IndexByte(s[1:], '"'); i != -1 {
		return i + 2
	}
	return 0
}

func matchID(s string) int {
	if len(s) == 0 || !isIDStart(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && isIDCont(s[n]) {
		n++
	}
	return n
}

func isIDStart(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isIDCont(b byte) bool {
	return isIDStart(b) || ('0' <= b && b <= '9')
}

func matchByte(b byte) func(string) int {
	return func(s string) int {
		if len(s) > 0 && s[0] == b {
			return 1
		}
		return 0
	}
}

func matchOneOf(set string) func(string) int {
	return func(s string) int {
		if len(s) > 0 && strings.IndexByte(set, s[0]) != -1 {
			return 1
		}
		return 0
	}
}

// Alternatives are tried in this order; "==" never matches here because
// ASSIGN has already consumed the first "=".
var compareOps = []string{"==", "!=", "<=", ">=", "<", ">"}

func matchCompare(s string) int {
	for _, op := range compareOps {
		if strings.HasPrefix(s, op) {
			return len(op)
		}
	}
	return 0
}

func matchSpaces(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

func matchAnyRune(s string) int {
	_, n := utf8.DecodeRuneInString(s)
	return n
}
