/*
File   : stolac/parser/parser_conditionals.go

`if/elif/else...end` and `match/case/default...end`.
*/
package parser

import (
	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/token"
)

func (p *Parser) parseIfStmt() ast.Statement {
	n := &ast.IfStmt{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'if'
	n.Condition = p.parseExpression(LOWEST)
	n.Consequence = p.parseBlock(token.ELIF, token.ELSE, token.END)

	for p.curIs(token.ELIF) {
		p.advance()
		cond := p.parseExpression(LOWEST)
		body := p.parseBlock(token.ELIF, token.ELSE, token.END)
		n.ElifConditions = append(n.ElifConditions, cond)
		n.ElifBlocks = append(n.ElifBlocks, body)
	}

	if p.curIs(token.ELSE) {
		p.advance()
		n.Alternative = p.parseBlock(token.END)
	}

	p.expect(token.END)
	return n
}

func (p *Parser) parseMatchStmt() ast.Statement {
	n := &ast.MatchStmt{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'match'
	n.Subject = p.parseExpression(LOWEST)
	p.skipNewlines()

	for p.curIs(token.CASE) {
		p.advance()
		caseExpr := p.parseExpression(LOWEST)
		body := p.parseBlock(token.CASE, token.DEFAULT, token.END)
		n.Cases = append(n.Cases, caseExpr)
		n.Consequences = append(n.Consequences, body)
	}

	if p.curIs(token.DEFAULT) {
		p.advance()
		n.Default = p.parseBlock(token.END)
	}

	p.expect(token.END)
	return n
}
