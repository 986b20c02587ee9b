/*
File   : stolac/parser/parser_functions.go

`function name(params) [-> type]...end`, `struct name ⏎ fields ⏎ end`,
`class name ⏎ methods ⏎ end`, `c_function name(types) -> type`, and
`import_native "lib"`.
*/
package parser

import (
	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/token"
)

func (p *Parser) parseFunctionDecl(_ bool) ast.Statement {
	p.advance() // consume 'function'
	return p.parseFunctionDeclBody(false)
}

// parseFunctionDeclBody parses everything after the `function` keyword
// has already been consumed. Shared by plain and `interrupt function`
// declarations (spec.md §4.5 "Interrupt functions").
func (p *Parser) parseFunctionDeclBody(interrupt bool) ast.Statement {
	n := &ast.FunctionDecl{Interrupt: interrupt}
	n.Pos = p.cur.Pos
	if !p.curIs(token.IDENTIFIER) {
		p.errorf("expected function name, got %s", p.cur.Kind)
		return nil
	}
	n.Name = p.cur.Literal
	p.advance()
	if !p.expect(token.LPAREN) {
		return n
	}
	p.parseParamList(n)
	if p.curIs(token.ARROW) {
		p.advance()
		if p.curIs(token.IDENTIFIER) {
			n.ReturnType = p.cur.Literal
			p.advance()
		}
	}
	n.Body = p.parseBlock(token.END)
	p.expect(token.END)
	return n
}

// parseParamList parses `name[: type], name[: type], ...)`, appending to
// n.ParamNames/n.ParamTypes so the two always stay equal length
// (invariant iii, spec.md §3).
func (p *Parser) parseParamList(n *ast.FunctionDecl) {
	if p.curIs(token.RPAREN) {
		p.advance()
		return
	}
	for {
		if !p.curIs(token.IDENTIFIER) {
			p.errorf("expected parameter name, got %s", p.cur.Kind)
			break
		}
		name := p.cur.Literal
		p.advance()
		paramType := ""
		if p.curIs(token.COLON) {
			p.advance()
			if p.curIs(token.IDENTIFIER) {
				paramType = p.cur.Literal
				p.advance()
			}
		}
		n.ParamNames = append(n.ParamNames, name)
		n.ParamTypes = append(n.ParamTypes, paramType)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
}

func (p *Parser) parseStructDecl() ast.Statement {
	n := &ast.StructDecl{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'struct'
	if !p.curIs(token.IDENTIFIER) {
		p.errorf("expected struct name, got %s", p.cur.Kind)
		return nil
	}
	n.Name = p.cur.Literal
	p.advance()
	p.skipNewlines()
	for p.curIs(token.IDENTIFIER) {
		n.Fields = append(n.Fields, p.cur.Literal)
		p.advance()
		p.skipNewlines()
	}
	p.expect(token.END)
	return n
}

func (p *Parser) parseClassDecl() ast.Statement {
	n := &ast.ClassDecl{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'class'
	if !p.curIs(token.IDENTIFIER) {
		p.errorf("expected class name, got %s", p.cur.Kind)
		return nil
	}
	n.Name = p.cur.Literal
	p.advance()
	p.skipNewlines()
	for p.curIs(token.FUNCTION) {
		p.advance()
		if method, ok := p.parseFunctionDeclBody(false).(*ast.FunctionDecl); ok {
			n.Methods = append(n.Methods, method)
		}
		p.skipNewlines()
	}
	p.expect(token.END)
	return n
}

func (p *Parser) parseImportStmt() ast.Statement {
	n := &ast.ImportStmt{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'import'
	if !p.curIs(token.IDENTIFIER) {
		p.errorf("expected module name after import, got %s", p.cur.Kind)
		return nil
	}
	n.ModuleName = p.cur.Literal
	p.advance()
	return n
}

func (p *Parser) parseImportNative() ast.Statement {
	n := &ast.ImportNative{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'import_native'
	if !p.curIs(token.STRING) {
		p.errorf("expected library name string after import_native, got %s", p.cur.Kind)
		return nil
	}
	n.LibName = p.cur.Literal
	p.advance()
	return n
}

func (p *Parser) parseCFunctionDecl() ast.Statement {
	n := &ast.CFunctionDecl{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'c_function'
	if !p.curIs(token.IDENTIFIER) {
		p.errorf("expected function name, got %s", p.cur.Kind)
		return nil
	}
	n.Name = p.cur.Literal
	p.advance()
	if !p.expect(token.LPAREN) {
		return n
	}
	if !p.curIs(token.RPAREN) {
		for {
			if !p.curIs(token.IDENTIFIER) {
				p.errorf("expected parameter type, got %s", p.cur.Kind)
				break
			}
			n.ParamTypes = append(n.ParamTypes, p.cur.Literal)
			p.advance()
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	p.expect(token.RPAREN)
	if p.curIs(token.ARROW) {
		p.advance()
		if p.curIs(token.IDENTIFIER) {
			n.ReturnType = p.cur.Literal
			p.advance()
		}
	}
	return n
}
