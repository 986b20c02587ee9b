/*
File   : stolac/parser/parser_controls.go

`return [expr]`, `throw expr`, and `try...catch e...end`.
*/
package parser

import (
	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/token"
)

func (p *Parser) parseReturnStmt() ast.Statement {
	n := &ast.ReturnStmt{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'return'
	if !p.curIs(token.NEWLINE) && !p.curIs(token.EOF) && !p.curIs(token.END) {
		n.Value = p.parseExpression(LOWEST)
	}
	return n
}

func (p *Parser) parseThrowStmt() ast.Statement {
	n := &ast.ThrowStmt{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'throw'
	n.Value = p.parseExpression(LOWEST)
	return n
}

func (p *Parser) parseTryCatchStmt() ast.Statement {
	n := &ast.TryCatchStmt{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'try'
	n.TryBlock = p.parseBlock(token.CATCH)
	if !p.expect(token.CATCH) {
		return n
	}
	if !p.curIs(token.IDENTIFIER) {
		p.errorf("expected catch variable name, got %s", p.cur.Kind)
		return n
	}
	n.CatchVar = p.cur.Literal
	p.advance()
	n.CatchBlock = p.parseBlock(token.END)
	p.expect(token.END)
	return n
}
