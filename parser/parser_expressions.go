/*
File   : stolac/parser/parser_expressions.go

The Pratt expression core: prefix/infix function tables, the precedence-
climbing parseExpression loop, and the infix parsers for binary operators,
calls, indexing, member access, and the postfix `at` operator.
*/
package parser

import (
	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/token"
)

// registerExpressionParsers wires every prefix/infix token kind to its
// parsing function. Called once from New.
func (p *Parser) registerExpressionParsers() {
	p.prefixFns[token.IDENTIFIER] = p.parseIdentifier
	p.prefixFns[token.NUMBER] = p.parseNumberLiteral
	p.prefixFns[token.STRING] = p.parseStringLiteral
	p.prefixFns[token.TRUE_KW] = p.parseBooleanLiteral
	p.prefixFns[token.FALSE_KW] = p.parseBooleanLiteral
	p.prefixFns[token.NULL_KW] = p.parseNullLiteral
	p.prefixFns[token.THIS] = p.parseThisExpr
	p.prefixFns[token.MINUS] = p.parseUnaryExpr
	p.prefixFns[token.NOT_KW] = p.parseUnaryExpr
	p.prefixFns[token.LPAREN] = p.parseGroupedExpr
	p.prefixFns[token.LBRACKET] = p.parseArrayLiteral
	p.prefixFns[token.LBRACE] = p.parseDictLiteral
	p.prefixFns[token.NEW] = p.parseNewExpr

	infixKinds := []token.Kind{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.POWER_OP,
		token.PLUS_WORD, token.MINUS_WORD, token.TIMES_WORD, token.DIVIDED_BY, token.MODULO_WORD, token.POWER_WORD,
		token.LT, token.GT, token.LE, token.GE, token.EQ, token.NE,
		token.LESS_THAN, token.GREATER_THAN, token.LESS_EQUALS, token.GREATER_EQUALS, token.EQUALS_WORD, token.NOT_EQUALS,
		token.AND_KW, token.OR_KW,
	}
	for _, k := range infixKinds {
		p.infixFns[k] = p.parseBinaryExpr
	}
	p.infixFns[token.LPAREN] = p.parseCallExpr
	p.infixFns[token.LBRACKET] = p.parseIndexExpr
	p.infixFns[token.DOT] = p.parseDotExpr
	p.infixFns[token.AT_KW] = p.parseAtExpr
}

// parseExpression is the precedence-climbing loop: parse a prefix term,
// then repeatedly fold in infix operators whose precedence exceeds
// minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	prefix, ok := p.prefixFns[p.cur.Kind]
	if !ok {
		p.errorf("no prefix parse function for %s (%q)", p.cur.Kind, p.cur.Literal)
		return nil
	}
	left := prefix()

	for !p.curIs(token.NEWLINE) && !p.curIs(token.EOF) && minPrec < p.curPrecedence() {
		infix, ok := p.infixFns[p.cur.Kind]
		if !ok {
			return left
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) parseExpressionOrAssignmentStmt() ast.Statement {
	pos := p.cur.Pos
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if p.curIs(token.ASSIGN) {
		return p.parseAssignment(expr, pos)
	}
	stmt := &ast.ExpressionStmt{Expr: expr}
	stmt.Pos = pos
	return stmt
}

func (p *Parser) parseIdentifier() ast.Expression {
	n := &ast.Identifier{Name: p.cur.Literal}
	n.Pos = p.cur.Pos
	p.advance()
	return n
}

func (p *Parser) parseThisExpr() ast.Expression {
	n := &ast.ThisExpr{}
	n.Pos = p.cur.Pos
	p.advance()
	return n
}

func (p *Parser) parseUnaryExpr() ast.Expression {
	n := &ast.UnaryOp{Op: p.cur.Kind}
	n.Pos = p.cur.Pos
	p.advance()
	n.Right = p.parseExpression(PREFIX)
	return n
}

func (p *Parser) parseBinaryExpr(left ast.Expression) ast.Expression {
	n := &ast.BinaryOp{Op: p.cur.Kind, Left: left}
	n.Pos = p.cur.Pos
	prec := p.curPrecedence()
	p.advance()
	// POWER is right-associative; everything else is left-associative.
	if n.Op == token.POWER_OP || n.Op == token.POWER_WORD {
		n.Right = p.parseExpression(prec - 1)
	} else {
		n.Right = p.parseExpression(prec)
	}
	return n
}

func (p *Parser) parseGroupedExpr() ast.Expression {
	p.advance() // consume '('
	expr := p.parseExpression(LOWEST)
	if !p.expect(token.RPAREN) {
		return expr
	}
	return expr
}

func (p *Parser) parseCallExpr(callee ast.Expression) ast.Expression {
	n := &ast.CallExpr{Callee: callee}
	n.Pos = p.cur.Pos
	p.advance() // consume '('
	n.Args = p.parseExpressionList(token.RPAREN)
	return n
}

// parseExpressionList parses a comma-separated expression list up to and
// including the closing `end` delimiter.
func (p *Parser) parseExpressionList(end token.Kind) []ast.Expression {
	var list []ast.Expression
	if p.curIs(end) {
		p.advance()
		return list
	}
	list = append(list, p.parseExpression(LOWEST))
	for p.curIs(token.COMMA) {
		p.advance()
		list = append(list, p.parseExpression(LOWEST))
	}
	p.expect(end)
	return list
}

func (p *Parser) parseIndexExpr(object ast.Expression) ast.Expression {
	n := &ast.MemberAccess{Object: object, IsComputed: true}
	n.Pos = p.cur.Pos
	p.advance() // consume '['
	n.Property = p.parseExpression(LOWEST)
	p.expect(token.RBRACKET)
	return n
}

func (p *Parser) parseAtExpr(object ast.Expression) ast.Expression {
	n := &ast.MemberAccess{Object: object, IsComputed: true}
	n.Pos = p.cur.Pos
	p.advance() // consume 'at'
	n.Property = p.parseExpression(INDEX)
	return n
}

func (p *Parser) parseDotExpr(object ast.Expression) ast.Expression {
	n := &ast.MemberAccess{Object: object, IsComputed: false}
	n.Pos = p.cur.Pos
	p.advance() // consume '.'
	if !p.curIs(token.IDENTIFIER) {
		p.errorf("expected property name after '.', got %s", p.cur.Kind)
		return n
	}
	prop := &ast.Identifier{Name: p.cur.Literal}
	prop.Pos = p.cur.Pos
	n.Property = prop
	p.advance()
	return n
}

func (p *Parser) parseNewExpr() ast.Expression {
	n := &ast.NewExpr{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'new'
	if !p.curIs(token.IDENTIFIER) {
		p.errorf("expected class name after 'new', got %s", p.cur.Kind)
		return n
	}
	n.ClassName = p.cur.Literal
	p.advance()
	if p.curIs(token.LPAREN) {
		p.advance()
		n.Args = p.parseExpressionList(token.RPAREN)
	}
	return n
}
