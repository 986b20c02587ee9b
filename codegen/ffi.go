package codegen

import "github.com/stola-lang/stolac/ast"

// genImportNative compiles `import_native "libname"` to a load_dll call
// evaluated once at program startup, matching where class-method
// registration runs (generateMain), since both are one-time setup work
// that has to happen before any code referencing the library executes.
func (g *Generator) genImportNative(n *ast.ImportNative) {
	label := g.strs.Label(n.LibName)
	g.emit("lea %s, [rip + %s]", g.ABI.ArgRegister(0), label)
	g.emitCallAndUse("stola_load_dll")
}

// genCFunctionDecl compiles `c_function name(...)` to a bind_c_function
// call, looking up the symbol by its declared name in the most recently
// loaded library (spec.md §4.6 doesn't name an explicit library handle
// parameter for bind_c_function, so the runtime registry binds against
// whichever library loaded last, matching the C reference runtime's
// single global FFI table).
func (g *Generator) genCFunctionDecl(n *ast.CFunctionDecl) {
	label := g.strs.Label(n.Name)
	g.emit("lea %s, [rip + %s]", g.ABI.ArgRegister(0), label)
	g.emitCallAndUse("stola_bind_c_function")
}

// genCCallExpr compiles a call to a name declared via c_function:
// invoke_c_function(symbol_name, a1, a2, a3, a4). invoke_c_function
// takes 5 parameters, one more than the 4-register argument window
// every other native call in this generator uses, so the 4th argument
// (a4) is passed the way the System V and Windows conventions both
// already handle a 5th integer argument: pushed onto the stack
// immediately ahead of the call, above the register-carried ones.
func (g *Generator) genCCallExpr(name string, args []ast.Expression, fc *funcCtx) {
	n := len(args)
	if n > 4 {
		g.errorf("c_function call %q has %d arguments; the FFI bridge supports at most 4", name, n)
		n = 4
	}
	for _, a := range args[:n] {
		g.genExpr(a, fc)
		g.emit("push rax")
	}
	var a4 string
	if n == 4 {
		a4 = "rax"
		g.emit("pop %s", a4) // a4 popped first, then pushed back below so it sits above the register args on the stack
	}
	regArgs := n
	if regArgs > 3 {
		regArgs = 3
	}
	for i := regArgs - 1; i >= 0; i-- {
		g.emit("pop %s", g.ABI.ArgRegister(i+1))
	}
	for i := regArgs; i < 3; i++ {
		g.emit("mov %s, 0", g.ABI.ArgRegister(i+1))
	}
	label := g.strs.Label(name)
	g.emit("lea %s, [rip + %s]", g.ABI.ArgRegister(0), label)
	if a4 != "" {
		g.emit("push %s", a4)
	} else {
		g.emit("push 0")
	}
	g.emitCallAndUse("stola_invoke_c_function")
	g.emit("add rsp, 8") // pop the stack-passed a4 the callee didn't clean up
}
