/*
File   : stolac/parser/parser_asm.go

`asm { ... }` blocks bypass ordinary tokenization for their body: the
content between the braces is arbitrary GNU-assembler text, not Stola
source, so it is captured as a raw slice of the original buffer (by token
byte offset) rather than re-parsed as expressions/statements. The code
generator re-emits these lines verbatim (spec.md §4.5).
*/
package parser

import (
	"strings"

	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/token"
)

func (p *Parser) parseAsmBlock() ast.Statement {
	n := &ast.AsmBlock{}
	n.Pos = p.cur.Pos
	p.advance() // consume 'asm'
	if !p.curIs(token.LBRACE) {
		p.errorf("expected '{' after asm, got %s", p.cur.Kind)
		return n
	}
	contentStart := p.cur.Pos.Offset + 1 // just past '{'
	p.advance()                          // consume '{'

	depth := 1
	for depth > 0 && !p.curIs(token.EOF) {
		switch p.cur.Kind {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
			if depth == 0 {
				contentEnd := p.cur.Pos.Offset
				raw := p.lex.Source()[contentStart:contentEnd]
				n.Lines = splitAsmLines(raw)
				p.advance() // consume closing '}'
				return n
			}
		}
		p.advance()
	}
	p.errorf("unterminated asm block")
	return n
}

// splitAsmLines splits a raw asm body into lines, trimming a single
// trailing '\r' (CRLF sources) but otherwise preserving the line text
// untouched, including blank lines — the generator (not the parser) is
// responsible for stripping blanks and re-indenting (spec.md §4.5).
func splitAsmLines(raw string) []string {
	raw = strings.Trim(raw, "\n")
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, strings.TrimRight(l, "\r"))
	}
	return out
}
