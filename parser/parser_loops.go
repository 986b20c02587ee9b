/*
File   : stolac/parser/parser_loops.go

`while...end`, `loop name from a to b [step s]...end`, `for name in
iterable...end`.
*/
package parser

import (
	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/token"
)

func (p *Parser) parseWhileStmt() ast.Statement {
	n := &ast.WhileStmt{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'while'
	n.Condition = p.parseExpression(LOWEST)
	n.Body = p.parseBlock(token.END)
	p.expect(token.END)
	return n
}

func (p *Parser) parseLoopStmt() ast.Statement {
	n := &ast.LoopStmt{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'loop'
	if !p.curIs(token.IDENTIFIER) {
		p.errorf("expected loop counter name, got %s", p.cur.Kind)
		return nil
	}
	n.IteratorName = p.cur.Literal
	p.advance()
	if !p.expect(token.FROM) {
		return n
	}
	n.Start = p.parseExpression(LOWEST)
	if !p.expect(token.TO) {
		return n
	}
	n.End = p.parseExpression(LOWEST)
	if p.curIs(token.STEP) {
		p.advance()
		n.Step = p.parseExpression(LOWEST)
	}
	n.Body = p.parseBlock(token.END)
	p.expect(token.END)
	return n
}

func (p *Parser) parseForStmt() ast.Statement {
	n := &ast.ForStmt{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'for'
	if !p.curIs(token.IDENTIFIER) {
		p.errorf("expected loop variable name, got %s", p.cur.Kind)
		return nil
	}
	n.IteratorName = p.cur.Literal
	p.advance()
	if !p.expect(token.IN) {
		return n
	}
	n.Iterable = p.parseExpression(LOWEST)
	n.Body = p.parseBlock(token.END)
	p.expect(token.END)
	return n
}

func (p *Parser) parseBreakStmt() ast.Statement {
	n := &ast.BreakStmt{}
	n.Pos = p.cur.Pos
	p.advance()
	return n
}

func (p *Parser) parseContinueStmt() ast.Statement {
	n := &ast.ContinueStmt{}
	n.Pos = p.cur.Pos
	p.advance()
	return n
}
