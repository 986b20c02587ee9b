/*
File   : stolac/parser/parser_assignments.go

`target = value[: type]` assignment statements. The target has already
been parsed as an ordinary expression by the time parseAssignment is
called (parseExpressionOrAssignmentStmt peeks for a following '=');
legality of the target shape (Identifier or MemberAccess) is left to the
semantic analyzer, matching the parser's general policy of deferring
meaning to later stages and only enforcing grammar shape here.
*/
package parser

import (
	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/token"
)

func (p *Parser) parseAssignment(target ast.Expression, pos token.Position) ast.Statement {
	n := &ast.Assignment{Target: target}
	n.Pos = pos
	p.advance() // consume '='
	n.Value = p.parseExpression(LOWEST)
	if p.curIs(token.COLON) {
		p.advance()
		if p.curIs(token.IDENTIFIER) {
			t := p.cur.Literal
			n.TypeAnnotation = &t
			p.advance()
		}
	}
	return n
}
