package codegen

import (
	"strings"

	"github.com/stola-lang/stolac/ast"
)

// genAsmBlock re-emits an `asm { ... }` body verbatim: 4-space indented,
// blank lines stripped. parser_asm.go's doc comment already assigns this
// formatting decision to codegen rather than the parser, since the
// parser only needs to capture the raw lines, not decide how they look
// in the final .s file.
func (g *Generator) genAsmBlock(n *ast.AsmBlock) {
	for _, line := range n.Lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g.emitRaw("    " + strings.TrimRight(line, " \t\r"))
	}
}
