/*
File   : stolac/codegen/generator.go
Package: codegen

Generator holds the state for emitting Intel-syntax GNU assembler from a
parsed, analyzed AST. It mirrors the shape of a tree-walking evaluator
(Evaluator in the teacher's eval package: parser/scope/builtins/writer
state bundled into one struct with per-concern method files) but instead
of executing the tree, each visit method appends assembly text to Gen's
buffer. Mode and ABI are fixed for the lifetime of one Generate call,
matching spec.md §4.5 "ABI-selected at build time."
*/
package codegen

import (
	"bytes"
	"fmt"

	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/codegen/abi"
)

// Mode selects hosted (full runtime) or freestanding (no runtime, raw
// integers) code generation, per spec.md §1.
type Mode int

const (
	Hosted Mode = iota
	Freestanding
)

// Generator walks an *ast.Program and produces one assembly text output.
// One Generator is used for exactly one Generate call; construct a fresh
// one per compilation the same way the parser and analyzer are
// single-use per program.
type Generator struct {
	Mode Mode
	ABI  abi.ABI

	text   bytes.Buffer // accumulated .text body, one function at a time
	strs   *stringPool
	extern map[string]bool // runtime entry points actually called, for .extern
	labels *labelAllocator

	fn *funcCtx // the function currently being generated, nil at top level

	cFunctions map[string]bool // names declared via c_function, for call-site dispatch

	Errors []string
}

// New returns a Generator configured for mode/target.
func New(mode Mode, target abi.Target) *Generator {
	return &Generator{
		Mode:   mode,
		ABI:    abi.Select(target),
		strs:       newStringPool(),
		extern:     make(map[string]bool),
		labels:     newLabelAllocator(),
		cFunctions: make(map[string]bool),
	}
}

func (g *Generator) errorf(format string, args ...interface{}) {
	g.Errors = append(g.Errors, fmt.Sprintf(format, args...))
}

func (g *Generator) emit(format string, args ...interface{}) {
	fmt.Fprintf(&g.text, "    "+format+"\n", args...)
}

func (g *Generator) emitLabel(label string) {
	fmt.Fprintf(&g.text, "%s:\n", label)
}

func (g *Generator) emitRaw(line string) {
	g.text.WriteString(line)
	g.text.WriteByte('\n')
}

func (g *Generator) useRuntimeFunc(name string) {
	if g.Mode == Hosted {
		g.extern[name] = true
	}
}

// Generate emits the full assembly text for prog: main's prologue
// (registering every class's methods, per spec.md §4.5), every top-level
// function, and finally the inline setjmp/longjmp and assembled
// directives/data/extern sections around the collected .text body.
func (g *Generator) Generate(prog *ast.Program) string {
	var classes []*ast.ClassDecl
	var mainStmts []ast.Statement

	for _, stmt := range prog.Statements {
		if cf, ok := stmt.(*ast.CFunctionDecl); ok {
			g.cFunctions[cf.Name] = true
		}
	}

	for _, stmt := range prog.Statements {
		switch n := stmt.(type) {
		case *ast.FunctionDecl:
			g.generateFunction(n)
		case *ast.ClassDecl:
			classes = append(classes, n)
			for _, m := range n.Methods {
				g.generateMethod(n.Name, m)
			}
		case *ast.StructDecl, *ast.ImportStmt:
			// struct declarations carry no code of their own; plain
			// import statements are already resolved away before codegen
			// runs (importresolver splices their declarations in and
			// drops the import node itself).
		case *ast.CFunctionDecl, *ast.ImportNative:
			// load_dll/bind_c_function need to run once at startup, in
			// main, in source order relative to each other.
			mainStmts = append(mainStmts, stmt)
		default:
			mainStmts = append(mainStmts, stmt)
		}
	}

	g.generateMain(classes, mainStmts)

	return g.assemble()
}

// assemble concatenates the directive header, .extern list, .data
// section (string literal pool), the collected .text body, and the
// inline setjmp/longjmp subroutine (hosted only) into the final output.
func (g *Generator) assemble() string {
	var out bytes.Buffer

	out.WriteString(".intel_syntax noprefix\n")
	out.WriteString(".global main\n")

	if g.Mode == Hosted {
		for _, name := range sortedKeys(g.extern) {
			fmt.Fprintf(&out, ".extern %s\n", name)
		}
		out.WriteString(".extern stola_setjmp\n")
		out.WriteString(".extern stola_longjmp\n")
	}

	if g.strs.len() > 0 {
		out.WriteString(".data\n")
		out.WriteString(g.strs.emitData())
	}

	out.WriteString(".text\n")
	out.Write(g.text.Bytes())

	return out.String()
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
