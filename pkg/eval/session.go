package eval

import (
	"errors"
	"fmt"
	"io"

	"github.com/aap-lang/aap/pkg/diag"
	"github.com/aap-lang/aap/pkg/eval/errs"
	"github.com/aap-lang/aap/pkg/eval/vals"
	"github.com/aap-lang/aap/pkg/parse"
)

// session is one execution unit: a cursor over a token stream plus the
// environment, declared-name set and function table it evaluates against.
// Statements are dispatched by lookahead and expressions are evaluated
// immediately as they are parsed; no syntax tree is built. Nested blocks
// run in child sessions seeded with copies of the parent's state, and the
// child's mutations are discarded when it finishes.
type session struct {
	src    parse.Source
	tokens []parse.Token
	pos    int

	env      Env
	declared map[string]bool
	fns      FnTable

	out io.Writer
}

// current returns the token under the cursor, or the EOF sentinel if the
// cursor has moved past the end (blocks are stored without a sentinel).
func (s *session) current() parse.Token {
	if s.pos >= len(s.tokens) {
		return parse.Token{Kind: parse.EOF, Value: "", Ranging: diag.PointRanging(len(s.src.Code))}
	}
	return s.tokens[s.pos]
}

func (s *session) peek() parse.Token {
	if s.pos+1 >= len(s.tokens) {
		return parse.Token{Kind: parse.EOF, Value: "", Ranging: diag.PointRanging(len(s.src.Code))}
	}
	return s.tokens[s.pos+1]
}

// advance returns the current token and moves the cursor past it.
func (s *session) advance() parse.Token {
	tok := s.current()
	if s.pos < len(s.tokens) {
		s.pos++
	}
	return tok
}

// expect consumes the current token if it has the wanted kind and faults
// otherwise.
func (s *session) expect(kind parse.TokenKind) (parse.Token, error) {
	tok := s.current()
	if tok.Kind != kind {
		return tok, s.errorp(tok, errs.UnexpectedToken{
			Expected: kind.String(), Actual: tok.Kind.String()})
	}
	s.pos++
	return tok, nil
}

func (s *session) errorp(r diag.Ranger, reason error) error {
	return &Error{Reason: reason, Context: diag.NewContext(s.src.Name, s.src.Code, r)}
}

// run dispatches statements until the end of the stream. The first fault
// stops execution; statements already executed keep their effects.
func (s *session) run() error {
	for s.current().Kind != parse.EOF {
		if err := s.statement(); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) statement() error {
	curr := s.current()
	switch {
	case curr.Kind == parse.CREATE:
		return s.declaration()
	case curr.Kind == parse.ID && s.peek().Kind == parse.ASSIGN:
		return s.assignment()
	case curr.Kind == parse.ID && s.peek().Kind == parse.LPAREN:
		if err := s.callStatement(); err != nil {
			return err
		}
		_, err := s.expect(parse.END)
		return err
	case curr.Kind == parse.PRINT:
		return s.printStatement()
	case curr.Kind == parse.IF:
		return s.ifStatement()
	case curr.Kind == parse.WHILE:
		return s.whileStatement()
	case curr.Kind == parse.FUNCTION:
		return s.functionDefinition()
	case curr.Kind == parse.RETURN:
		return s.returnStatement()
	default:
		return s.errorp(curr, errs.UnexpectedStatement{Token: tokenText(curr)})
	}
}

// declaration = CREATE ID ASSIGN expr END
func (s *session) declaration() error {
	s.advance() // CREATE
	id, err := s.expect(parse.ID)
	if err != nil {
		return err
	}
	name := id.Value.(string)
	if s.declared[name] {
		return s.errorp(id, errs.AlreadyDeclared{VarName: name})
	}
	if _, err := s.expect(parse.ASSIGN); err != nil {
		return err
	}
	value, err := s.expr()
	if err != nil {
		return err
	}
	s.env[name] = value
	s.declared[name] = true
	_, err = s.expect(parse.END)
	return err
}

// assignment = ID ASSIGN expr END
func (s *session) assignment() error {
	id := s.advance()
	name := id.Value.(string)
	if !s.declared[name] {
		return s.errorp(id, errs.NotDeclared{VarName: name})
	}
	if _, err := s.expect(parse.ASSIGN); err != nil {
		return err
	}
	value, err := s.expr()
	if err != nil {
		return err
	}
	s.env[name] = value
	_, err = s.expect(parse.END)
	return err
}

// callStatement = ID LPAREN RPAREN. Calls are recognized only in
// statement position; a value carried by the return signal is discarded
// here.
func (s *session) callStatement() error {
	id := s.advance()
	name := id.Value.(string)
	if _, err := s.expect(parse.LPAREN); err != nil {
		return err
	}
	if _, err := s.expect(parse.RPAREN); err != nil {
		return err
	}
	block, ok := s.fns[name]
	if !ok {
		return s.errorp(id, errs.UndefinedFunction{FnName: name})
	}
	err := execBlock(block, s.env.clone(), s.fns.clone(), s.out)
	var ret Return
	if errors.As(err, &ret) {
		// The single catch point of the return signal.
		return nil
	}
	return err
}

// printStatement = PRINT expr END
func (s *session) printStatement() error {
	s.advance() // PRINT
	value, err := s.expr()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, vals.ToString(value))
	_, err = s.expect(parse.END)
	return err
}

// ifStatement = IF LPAREN expr RPAREN LBRACE block RBRACE
//               [ELSE LBRACE block RBRACE]
//
// The chosen branch runs in a child session; its mutations are discarded,
// so the parent's environment is unchanged by the branch.
func (s *session) ifStatement() error {
	s.advance() // IF
	if _, err := s.expect(parse.LPAREN); err != nil {
		return err
	}
	cond, err := s.expr()
	if err != nil {
		return err
	}
	if _, err := s.expect(parse.RPAREN); err != nil {
		return err
	}
	if _, err := s.expect(parse.LBRACE); err != nil {
		return err
	}
	trueBlock, err := s.collectBlock()
	if err != nil {
		return err
	}
	falseBlock := Block{Src: s.src}
	if s.current().Kind == parse.ELSE {
		s.advance()
		if _, err := s.expect(parse.LBRACE); err != nil {
			return err
		}
		falseBlock, err = s.collectBlock()
		if err != nil {
			return err
		}
	}
	block := falseBlock
	if vals.Bool(cond) {
		block = trueBlock
	}
	return execBlock(block, s.env.clone(), s.fns.clone(), s.out)
}

// whileStatement = WHILE LPAREN condition-tokens RPAREN LBRACE block RBRACE
//
// The condition tokens are captured once, raw. Each check evaluates them
// in a fresh child seeded with a copy of the parent's environment, and
// each iteration runs the body in another child whose state is discarded
// afterwards. The parent's environment is never updated by the body, so a
// condition that depends on the body's mutations never observes them.
func (s *session) whileStatement() error {
	s.advance() // WHILE
	if _, err := s.expect(parse.LPAREN); err != nil {
		return err
	}
	condStart := s.pos
	for s.current().Kind != parse.RPAREN {
		if s.current().Kind == parse.EOF {
			return s.errorp(s.current(), errs.UnexpectedToken{
				Expected: parse.RPAREN.String(), Actual: parse.EOF.String()})
		}
		s.pos++
	}
	cond := Block{Tokens: s.tokens[condStart:s.pos], Src: s.src}
	s.pos++ // RPAREN
	if _, err := s.expect(parse.LBRACE); err != nil {
		return err
	}
	body, err := s.collectBlock()
	if err != nil {
		return err
	}
	for {
		value, err := evalCondition(cond, s.env.clone())
		if err != nil {
			return err
		}
		if !vals.Bool(value) {
			return nil
		}
		if err := execBlock(body, s.env.clone(), s.fns.clone(), s.out); err != nil {
			return err
		}
	}
}

// functionDefinition = FUNCTION ID LPAREN RPAREN LBRACE block RBRACE
//
// The body is captured verbatim, unparsed. Redefinition replaces the
// previous body silently.
func (s *session) functionDefinition() error {
	s.advance() // FUNCTION
	id, err := s.expect(parse.ID)
	if err != nil {
		return err
	}
	if _, err := s.expect(parse.LPAREN); err != nil {
		return err
	}
	if _, err := s.expect(parse.RPAREN); err != nil {
		return err
	}
	if _, err := s.expect(parse.LBRACE); err != nil {
		return err
	}
	block, err := s.collectBlock()
	if err != nil {
		return err
	}
	s.fns[id.Value.(string)] = block
	return nil
}

// returnStatement = RETURN [expr] END
func (s *session) returnStatement() error {
	s.advance() // RETURN
	ret := Return{}
	if s.current().Kind != parse.END {
		value, err := s.expr()
		if err != nil {
			return err
		}
		ret = Return{Value: value, HasValue: true}
	}
	if _, err := s.expect(parse.END); err != nil {
		return err
	}
	return ret
}

// collectBlock consumes tokens up to and including the first closing
// brace and returns them as a Block, braces excluded. Braces inside the
// block are not balanced: a nested block's closing brace ends the outer
// block.
func (s *session) collectBlock() (Block, error) {
	start := s.pos
	for s.current().Kind != parse.RBRACE {
		if s.current().Kind == parse.EOF {
			return Block{}, s.errorp(s.current(), errs.UnexpectedToken{
				Expected: parse.RBRACE.String(), Actual: parse.EOF.String()})
		}
		s.pos++
	}
	tokens := s.tokens[start:s.pos]
	s.pos++ // RBRACE
	return Block{Tokens: tokens, Src: s.src}, nil
}

// execBlock runs a block in a child session seeded with the given copies
// of the environment and function table. The child's mutated state dies
// with it; only its printed output and a propagating return signal get
// out.
func execBlock(b Block, env Env, fns FnTable, out io.Writer) error {
	child := &session{
		src: b.Src, tokens: b.Tokens,
		env: env, declared: declaredFrom(env), fns: fns,
		out: out,
	}
	return child.run()
}

// evalCondition evaluates a captured condition token slice as an
// expression against a copy of an environment.
func evalCondition(b Block, env Env) (any, error) {
	child := &session{
		src: b.Src, tokens: b.Tokens,
		env: env, declared: declaredFrom(env),
	}
	return child.expr()
}

// expr = compareExpr ((AND|OR) compareExpr)*
//
// Left-associative and not short-circuiting: both operands are always
// evaluated. The fold keeps operand values: AND yields the right operand
// when the left is truthy and the left otherwise; OR is the converse.
func (s *session) expr() (any, error) {
	result, err := s.compareExpr()
	if err != nil {
		return nil, err
	}
	for s.current().Kind == parse.AND || s.current().Kind == parse.OR {
		op := s.advance().Kind
		right, err := s.compareExpr()
		if err != nil {
			return nil, err
		}
		if op == parse.AND {
			if vals.Bool(result) {
				result = right
			}
		} else {
			if !vals.Bool(result) {
				result = right
			}
		}
	}
	return result, nil
}

// compareExpr = term (COMPARE term)*
//
// Chains fold left to right: each comparison yields a boolean that
// becomes the left operand of the next one.
func (s *session) compareExpr() (any, error) {
	left, err := s.term()
	if err != nil {
		return nil, err
	}
	for s.current().Kind == parse.COMPARE {
		opTok := s.advance()
		right, err := s.term()
		if err != nil {
			return nil, err
		}
		value, err := vals.Compare(opTok.Value.(string), left, right)
		if err != nil {
			return nil, s.errorp(opTok, err)
		}
		left = value
	}
	return left, nil
}

// term = NUMBER | STRING | ID | LPAREN expr RPAREN
//
// OP and NOT tokens are never consumed here; arithmetic and negation are
// tokenized but not part of the grammar.
func (s *session) term() (any, error) {
	tok := s.current()
	switch tok.Kind {
	case parse.NUMBER, parse.STRING:
		s.advance()
		return tok.Value, nil
	case parse.ID:
		s.advance()
		name := tok.Value.(string)
		if !s.declared[name] {
			return nil, s.errorp(tok, errs.NotDeclared{VarName: name})
		}
		if value, ok := s.env[name]; ok {
			return value, nil
		}
		// Declared but absent from the environment; defaults to 0.
		return 0, nil
	case parse.LPAREN:
		s.advance()
		value, err := s.expr()
		if err != nil {
			return nil, err
		}
		if _, err := s.expect(parse.RPAREN); err != nil {
			return nil, err
		}
		return value, nil
	default:
		return nil, s.errorp(tok, errs.UnexpectedToken{
			Expected: "a term", Actual: tok.Kind.String()})
	}
}

func tokenText(tok parse.Token) string {
	if text, ok := tok.Value.(string); ok && text != "" {
		return text
	}
	return fmt.Sprint(tok.Value)
}
