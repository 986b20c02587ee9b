package codegen

import "github.com/stola-lang/stolac/ast"

// genTryCatchStmt compiles `try ... catch e ... end`. The call to the
// custom stola_setjmp is emitted as a bare `call`, never through
// emitCall's realignment thunk: that wrapper branches to one of two call
// sites depending on rsp's alignment, but setjmp returns twice — once
// here, once again out of stola_longjmp — and the second return must
// land at the exact instruction after the real `call`, not at whichever
// of the thunk's two call sites happened to run the first time. A
// plain, always-16-byte-aligned call site (guaranteed by construction:
// try/catch never nests inside an odd number of live pushes without
// realigning first) sidesteps that.
func (g *Generator) genTryCatchStmt(n *ast.TryCatchStmt, fc *funcCtx) {
	catchLabel := g.labels.New("catch")
	endLabel := g.labels.New("try_end")

	g.emitCallAndUse("stola_push_try")
	envLv := fc.allocLocal("__try_env__")
	g.emit("mov %s, rax", envLv.operand())

	g.emit("mov %s, rax", g.ABI.ArgRegister(0))
	g.emitCallAndUse("stola_register_longjmp")

	g.emit("mov %s, %s", g.ABI.ArgRegister(0), envLv.operand())
	g.useRuntimeFunc("stola_setjmp")
	g.emit("call stola_setjmp")
	g.emit("test rax, rax")
	g.emit("jnz %s", catchLabel)

	g.genBlock(n.TryBlock, fc)
	g.emitCallAndUse("stola_pop_try")
	g.emit("jmp %s", endLabel)

	g.emitLabel(catchLabel)
	g.emitCallAndUse("stola_get_error")
	catchVarLv := fc.allocLocal(n.CatchVar)
	g.emit("mov %s, rax", catchVarLv.operand())
	g.genBlock(n.CatchBlock, fc)

	g.emitLabel(endLabel)
}

func (g *Generator) genThrowStmt(n *ast.ThrowStmt, fc *funcCtx) {
	g.genExpr(n.Value, fc)
	g.emit("mov %s, rax", g.ABI.ArgRegister(0))
	g.emitCallAndUse("stola_throw")
}
