package parse

import "github.com/aap-lang/aap/pkg/diag"

// TokenKind enumerates the kinds of tokens produced by Tokenize.
type TokenKind int

// Token kinds. The order of the lexical kinds (NUMBER through RBRACE)
// follows the order in which their patterns are tried; see patterns in
// lex.go.
const (
	NUMBER TokenKind = iota
	STRING
	ID
	ASSIGN
	END
	OP
	COMPARE
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	EOF

	// Keyword kinds. An ID whose spelling is a reserved word is re-kinded
	// to one of these.
	CREATE
	IF
	ELSE
	WHILE
	PRINT
	FUNCTION
	RETURN
	AND
	OR
	NOT

	// Pattern-only kinds; they never appear in the output of Tokenize.
	newline
	skipSpace
	mismatch
)

var kindNames = [...]string{
	NUMBER: "NUMBER", STRING: "STRING", ID: "ID", ASSIGN: "ASSIGN",
	END: "END", OP: "OP", COMPARE: "COMPARE",
	LPAREN: "LPAREN", RPAREN: "RPAREN", LBRACE: "LBRACE", RBRACE: "RBRACE",
	EOF: "EOF",
	CREATE: "CREATE", IF: "IF", ELSE: "ELSE", WHILE: "WHILE",
	PRINT: "PRINT", FUNCTION: "FUNCTION", RETURN: "RETURN",
	AND: "AND", OR: "OR", NOT: "NOT",
	newline: "NEWLINE", skipSpace: "SKIP", mismatch: "MISMATCH",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "BAD KIND"
	}
	return kindNames[k]
}

// keywords maps reserved words to their token kinds.
var keywords = map[string]TokenKind{
	"if": IF, "else": ELSE, "while": WHILE, "print": PRINT,
	"function": FUNCTION, "return": RETURN,
	"and": AND, "or": OR, "not": NOT, "create": CREATE,
}

// Token is a classified lexical unit. Value is an int for NUMBER tokens,
// the text between the quotes for STRING tokens, and the raw lexeme
// otherwise. Tokens are immutable once produced.
type Token struct {
	Kind  TokenKind
	Value any
	diag.Ranging
}
