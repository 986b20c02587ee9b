package codegen

import (
	"strconv"

	"github.com/stola-lang/stolac/ast"
)

// genLiteral emits code for a literal or identifier expression, leaving
// the result (a stola_value* in hosted mode, a raw 64-bit value in
// freestanding mode) in rax.
func (g *Generator) genLiteral(expr ast.Expression, fc *funcCtx) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		g.genNumberLiteral(n)
	case *ast.BooleanLiteral:
		g.genBooleanLiteral(n)
	case *ast.NullLiteral:
		g.genNullLiteral()
	case *ast.StringLiteral:
		g.genStringLiteral(n)
	case *ast.Identifier:
		g.genIdentifier(n, fc)
	default:
		g.errorf("[Line %d] internal error: genLiteral called with non-literal %T", expr.Position().Line, expr)
	}
}

func (g *Generator) genNumberLiteral(n *ast.NumberLiteral) {
	val, err := strconv.ParseInt(n.Text, 10, 64)
	if err != nil {
		// spec.md §4.1 leaves non-integer numeric text undefined at the
		// lexer; truncating toward zero here is the same relaxed
		// coercion ToNumber uses on the runtime side.
		f, ferr := strconv.ParseFloat(n.Text, 64)
		if ferr == nil {
			val = int64(f)
		}
	}
	if g.Mode == Freestanding {
		g.emit("mov rax, %d", val)
		return
	}
	g.emit("mov %s, %d", g.ABI.ArgRegister(0), val)
	g.emitCallAndUse("stola_new_int")
}

func (g *Generator) genBooleanLiteral(n *ast.BooleanLiteral) {
	iv := 0
	if n.Value {
		iv = 1
	}
	if g.Mode == Freestanding {
		g.emit("mov rax, %d", iv)
		return
	}
	g.emit("mov %s, %d", g.ABI.ArgRegister(0), iv)
	g.emitCallAndUse("stola_new_bool")
}

func (g *Generator) genNullLiteral() {
	if g.Mode == Freestanding {
		g.emit("xor rax, rax")
		return
	}
	g.emitCallAndUse("stola_new_null")
}

func (g *Generator) genStringLiteral(n *ast.StringLiteral) {
	if g.Mode == Freestanding {
		g.errorf("[Line %d] string literals are not supported in freestanding mode", n.Position().Line)
		g.emit("xor rax, rax")
		return
	}
	label := g.strs.Label(n.Value)
	g.emit("lea %s, [rip + %s]", g.ABI.ArgRegister(0), label)
	g.emitCallAndUse("stola_new_string")
}

func (g *Generator) genIdentifier(n *ast.Identifier, fc *funcCtx) {
	if fc != nil {
		if lv, ok := fc.lookupLocal(n.Name); ok {
			g.emit("mov rax, %s", lv.operand())
			return
		}
	}
	// Every assignable name becomes a local in its enclosing function
	// (spec.md §4.4 "implicit declaration on assignment"); sema has no
	// free-standing global-variable kind (DefineGlobal is never called),
	// so an identifier that isn't a local here can only be a bare
	// reference to a function/struct/class name outside call position.
	// Stola has no first-class function values, so there is nothing
	// meaningful to load into rax for it.
	g.errorf("[Line %d] %q cannot be used as a value here", n.Position().Line, n.Name)
}

// emitCallAndUse is emitCall plus marking the runtime symbol as used; every
// runtime call site in the generator goes through it, except the bare
// `call stola_setjmp` in genTryCatchStmt.
func (g *Generator) emitCallAndUse(name string) {
	g.useRuntimeFunc(name)
	g.emitCall(name)
}
