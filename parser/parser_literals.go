/*
File   : stolac/parser/parser_literals.go

Prefix parsers for the scalar and collection literal forms.
*/
package parser

import (
	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/token"
)

func (p *Parser) parseNumberLiteral() ast.Expression {
	n := &ast.NumberLiteral{Text: p.cur.Literal}
	n.Pos = p.cur.Pos
	p.advance()
	return n
}

func (p *Parser) parseStringLiteral() ast.Expression {
	n := &ast.StringLiteral{Value: p.cur.Literal}
	n.Pos = p.cur.Pos
	p.advance()
	return n
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	n := &ast.BooleanLiteral{Value: p.cur.Kind == token.TRUE_KW}
	n.Pos = p.cur.Pos
	p.advance()
	return n
}

func (p *Parser) parseNullLiteral() ast.Expression {
	n := &ast.NullLiteral{}
	n.Pos = p.cur.Pos
	p.advance()
	return n
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	n := &ast.ArrayLiteral{}
	n.Pos = p.cur.Pos
	p.advance() // consume '['
	n.Elements = p.parseExpressionList(token.RBRACKET)
	return n
}

func (p *Parser) parseDictLiteral() ast.Expression {
	n := &ast.DictLiteral{}
	n.Pos = p.cur.Pos
	p.advance() // consume '{'
	if p.curIs(token.RBRACE) {
		p.advance()
		return n
	}
	for {
		key := p.parseExpression(LOWEST)
		if !p.expect(token.COLON) {
			break
		}
		value := p.parseExpression(LOWEST)
		n.Keys = append(n.Keys, key)
		n.Values = append(n.Values, value)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBRACE)
	return n
}
