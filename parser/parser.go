/*
File   : stolac/parser/parser.go
Package: parser

Package parser implements a Pratt (precedence-climbing) parser that turns
a token.Token stream into an ast.Program. It never panics: malformed input
is recorded as an error string with a "[Line N]" prefix and parsing
continues on a best-effort basis, so later pipeline stages always receive
*some* AST to work with (spec.md §4.2, §7).

The parser keeps two tokens of lookahead (cur, peek), exactly like the
teacher's `CurrToken`/`NextToken` pair in go-mix/parser/parser.go, though
stolac's Parser carries no evaluation environment — constant folding and
variable tracking during parsing (as the teacher does via Env/Consts/
LetVars) belongs to the semantic analyzer here, not the parser.
*/
package parser

import (
	"fmt"

	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/lexer"
	"github.com/stola-lang/stolac/token"
)

// Precedence levels, lowest to highest, per spec.md §4.2.
const (
	_ int = iota
	LOWEST
	OR
	AND
	EQUALITY
	RELATIONAL
	SUM
	PRODUCT
	POWER
	PREFIX
	CALL
	INDEX
)

var precedences = map[token.Kind]int{
	token.OR_KW:            OR,
	token.AND_KW:           AND,
	token.EQ:               EQUALITY,
	token.EQUALS_WORD:      EQUALITY,
	token.NE:               EQUALITY,
	token.NOT_EQUALS:       EQUALITY,
	token.LT:               RELATIONAL,
	token.GT:               RELATIONAL,
	token.LE:               RELATIONAL,
	token.GE:               RELATIONAL,
	token.LESS_THAN:        RELATIONAL,
	token.GREATER_THAN:     RELATIONAL,
	token.LESS_EQUALS:      RELATIONAL,
	token.GREATER_EQUALS:   RELATIONAL,
	token.PLUS:             SUM,
	token.MINUS:            SUM,
	token.PLUS_WORD:        SUM,
	token.MINUS_WORD:       SUM,
	token.STAR:             PRODUCT,
	token.SLASH:            PRODUCT,
	token.PERCENT:          PRODUCT,
	token.TIMES_WORD:       PRODUCT,
	token.DIVIDED_BY:       PRODUCT,
	token.MODULO_WORD:      PRODUCT,
	token.POWER_OP:         POWER,
	token.POWER_WORD:       POWER,
	token.LPAREN:           CALL,
	token.LBRACKET:         INDEX,
	token.DOT:              INDEX,
	token.AT_KW:            INDEX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(left ast.Expression) ast.Expression
)

// Parser is a Pratt parser over a single module's token stream.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn

	Errors []string
}

// New creates a Parser over src and primes the two-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.prefixFns = make(map[token.Kind]prefixParseFn)
	p.infixFns = make(map[token.Kind]infixParseFn)
	p.registerExpressionParsers()
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.cur.Kind]; ok {
		return pr
	}
	return LOWEST
}

// errorf records a diagnostic with a "[Line N]" prefix, matching spec.md
// §4.2's error-reporting convention.
func (p *Parser) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.Errors = append(p.Errors, fmt.Sprintf("[Line %d] %s", p.cur.Pos.Line, msg))
}

// expect consumes the current token if it matches k, recording an error
// and leaving position unchanged otherwise.
func (p *Parser) expect(k token.Kind) bool {
	if p.curIs(k) {
		p.advance()
		return true
	}
	p.errorf("expected %s, got %s (%q)", k, p.cur.Kind, p.cur.Literal)
	return false
}

// skipNewlines consumes any run of NEWLINE tokens. Used at block entry
// ("blocks skip leading newlines", spec.md §4.2).
func (p *Parser) skipNewlines() {
	for p.curIs(token.NEWLINE) {
		p.advance()
	}
}

// recover implements the parser's forward-progress guarantee: after a
// statement parse fails (returns nil), advance one token unless already
// sitting on a NEWLINE or EOF, so a single bad token can never wedge the
// parser into an infinite loop.
func (p *Parser) recover() {
	if !p.curIs(token.NEWLINE) && !p.curIs(token.EOF) {
		p.advance()
	}
}

// Parse runs the parser to completion and returns a best-effort
// *ast.Program. Errors accumulate in p.Errors; a non-empty Errors slice
// means the program is only a best-effort approximation of the source.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	prog.Pos = p.cur.Pos
	for !p.curIs(token.EOF) {
		if p.curIs(token.NEWLINE) {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		} else {
			p.recover()
		}
	}
	return prog
}

// parseBlock parses a statement sequence up to (but not consuming) one of
// the supplied terminator keywords, which the caller consumes itself.
func (p *Parser) parseBlock(terminators ...token.Kind) *ast.Block {
	block := &ast.Block{}
	block.Pos = p.cur.Pos
	isTerminator := func(k token.Kind) bool {
		for _, t := range terminators {
			if k == t {
				return true
			}
		}
		return false
	}
	p.skipNewlines()
	for !p.curIs(token.EOF) && !isTerminator(p.cur.Kind) {
		if p.curIs(token.NEWLINE) {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.recover()
		}
	}
	return block
}
