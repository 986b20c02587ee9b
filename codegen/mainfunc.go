package codegen

import "github.com/stola-lang/stolac/ast"

// generateMain emits the `main` label: for every class, register_method
// is called once per method so invoke_method can dispatch against it
// later, then every top-level statement outside a function/class runs in
// sequence, and finally the process exits 0 — mirroring a plain `int
// main(void)` in the original's codegen rather than giving stola scripts
// their own distinct entry convention.
func (g *Generator) generateMain(classes []*ast.ClassDecl, stmts []ast.Statement) {
	g.emitLabel("main")
	fc := g.newFuncCtx("main", false)
	g.fn = fc

	g.emit("push rbp")
	g.emit("mov rbp, rsp")
	g.emit("sub rsp, %d", spillAreaSize)

	if g.Mode == Hosted {
		for _, cls := range classes {
			for _, m := range cls.Methods {
				g.registerMethod(cls.Name, m.Name)
			}
		}
	}

	for _, stmt := range stmts {
		g.genStmt(stmt, fc)
	}

	g.emit("mov rax, 0")
	g.emit("add rsp, %d", spillAreaSize)
	g.emit("pop rbp")
	g.emit("ret")

	g.fn = nil
}

// registerMethod emits one register_method(class_name, method_name,
// &ClassName_methodName) call.
func (g *Generator) registerMethod(className, methodName string) {
	classLabel := g.strs.Label(className)
	nameLabel := g.strs.Label(methodName)
	codeLabel := className + "_" + methodName

	g.emit("lea %s, [rip + %s]", g.ABI.ArgRegister(2), codeLabel)
	g.emit("lea %s, [rip + %s]", g.ABI.ArgRegister(1), nameLabel)
	g.emit("lea %s, [rip + %s]", g.ABI.ArgRegister(0), classLabel)
	g.emitCallAndUse("stola_register_method")
}
