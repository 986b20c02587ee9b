/*
File   : stolac/parser/parser_statements.go

Dispatches the current token to the right statement production. Falls
through to an expression-statement (optionally an assignment) when no
keyword matches — the common case for `foo()` or `x = 1`.
*/
package parser

import (
	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.LOOP:
		return p.parseLoopStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.MATCH:
		return p.parseMatchStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.BREAK:
		return p.parseBreakStmt()
	case token.CONTINUE:
		return p.parseContinueStmt()
	case token.FUNCTION:
		return p.parseFunctionDecl(false)
	case token.INTERRUPT:
		p.advance()
		if !p.expect(token.FUNCTION) {
			return nil
		}
		return p.parseFunctionDeclBody(true)
	case token.STRUCT:
		return p.parseStructDecl()
	case token.CLASS:
		return p.parseClassDecl()
	case token.IMPORT:
		return p.parseImportStmt()
	case token.IMPORT_NATIVE:
		return p.parseImportNative()
	case token.C_FUNCTION:
		return p.parseCFunctionDecl()
	case token.TRY:
		return p.parseTryCatchStmt()
	case token.THROW:
		return p.parseThrowStmt()
	case token.ASM:
		return p.parseAsmBlock()
	default:
		return p.parseExpressionOrAssignmentStmt()
	}
}
