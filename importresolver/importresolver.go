/*
File   : stolac/importresolver/importresolver.go
Package: importresolver

Package importresolver implements the compiler's stdlib-import pass
(spec.md §4.3): after parsing, every top-level `import M` statement is
resolved to `<compilerDir>/stdlib/M.stola`, parsed, and its top-level
function declarations are prepended to the current program. The import
statements themselves are removed from the statement list. An unresolved
import is a warning, not an error — best-effort, matching the rest of the
pipeline's error-accumulation policy (spec.md §7). Freestanding mode
disables resolution entirely, since the freestanding runtime has no
standard library to link against.
*/
package importresolver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/parser"
)

// Reader abstracts reading a stdlib module's source so tests can supply an
// in-memory filesystem without touching disk, matching the spec's
// decision to treat file reading as a thin external collaborator
// (spec.md §1).
type Reader interface {
	ReadModule(path string) (string, error)
}

// OSReader reads stdlib modules from disk via os.ReadFile.
type OSReader struct{}

func (OSReader) ReadModule(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Result carries the resolver's output program alongside any warnings it
// accumulated (unresolved imports are warnings, never hard errors).
type Result struct {
	Program  *ast.Program
	Warnings []string
}

// Resolve rewrites prog's import statements: each `import M` is dropped
// and M's top-level function declarations are prepended, in import order,
// ahead of the program's own top-level statements (so mutual calls
// between the program and stdlib functions resolve during analysis
// exactly like ordinary hoisted top-level functions).
//
// stdlibDir is the directory holding `<module>.stola` sources (typically
// `<compiler_dir>/stdlib`). ext is the source file extension, normally
// "stola".
func Resolve(prog *ast.Program, reader Reader, stdlibDir, ext string) Result {
	var (
		prepended []ast.Statement
		kept      []ast.Statement
		warnings  []string
	)

	for _, stmt := range prog.Statements {
		imp, ok := stmt.(*ast.ImportStmt)
		if !ok {
			kept = append(kept, stmt)
			continue
		}
		modPath := filepath.Join(stdlibDir, fmt.Sprintf("%s.%s", imp.ModuleName, ext))
		src, err := reader.ReadModule(modPath)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf(
				"[Line %d] warning: could not resolve import %q (%v)",
				imp.Pos.Line, imp.ModuleName, err))
			continue
		}
		modParser := parser.New(src)
		modProgram := modParser.Parse()
		for _, w := range modParser.Errors {
			warnings = append(warnings, fmt.Sprintf(
				"[Line %d] warning: error parsing imported module %q: %s",
				imp.Pos.Line, imp.ModuleName, w))
		}
		for _, modStmt := range modProgram.Statements {
			switch modStmt.(type) {
			case *ast.FunctionDecl, *ast.StructDecl, *ast.ClassDecl:
				prepended = append(prepended, modStmt)
			default:
				// Non-declaration top-level statements in a stdlib module
				// are not spliced in; only its declarations are exported.
			}
		}
	}

	out := &ast.Program{}
	out.Pos = prog.Pos
	out.Statements = append(out.Statements, prepended...)
	out.Statements = append(out.Statements, kept...)
	return Result{Program: out, Warnings: warnings}
}
