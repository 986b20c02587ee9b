package codegen

import "github.com/stola-lang/stolac/ast"

// generateFunction emits one top-level function: label, prologue,
// parameter binding, body, shared epilogue, per spec.md §4.5. Interrupt
// functions get the wider caller-saved-register save/restore and
// `iretq` instead of `ret`.
func (g *Generator) generateFunction(n *ast.FunctionDecl) {
	g.emitLabel(n.Name)
	g.generateFunctionBody(n.Name, n.ParamNames, n.Body, n.Interrupt)
}

// generateMethod emits one class method under a name-mangled label
// (`ClassName_methodName`) so register_method can bind a distinct code
// pointer per class/method pair without colliding on plain method names
// shared across classes.
func (g *Generator) generateMethod(className string, n *ast.FunctionDecl) {
	label := className + "_" + n.Name
	g.emitLabel(label)
	params := append([]string{"this"}, n.ParamNames...)
	g.generateFunctionBody(label, params, n.Body, false)
}

func (g *Generator) generateFunctionBody(name string, params []string, body *ast.Block, interrupt bool) {
	fc := g.newFuncCtx(name, interrupt)
	g.fn = fc

	if interrupt {
		g.emitInterruptPrologue()
	} else {
		g.emit("push rbp")
		g.emit("mov rbp, rsp")
	}

	// Parameters bind to their first-fit locals before anything else, so
	// a reference to a parameter inside the body resolves through the
	// same lookupLocal path as any other local.
	for i, p := range params {
		if i >= len(g.ABI.ArgRegisters) {
			break
		}
		lv := fc.allocLocal(p)
		g.emit("mov %s, %s", lv.operand(), g.ABI.ArgRegister(i))
	}

	if !interrupt {
		for _, reg := range fc.usedRegs {
			g.emit("push %s", reg)
		}
		g.emit("sub rsp, %d", spillAreaSize)
		if g.ABI.ShadowSpace > 0 {
			g.emit("sub rsp, %d", g.ABI.ShadowSpace)
		}
	}

	g.genBlock(body, fc)

	// Fall-through (a body with no explicit return on every path) returns
	// null in hosted mode, 0 in freestanding, matching spec.md §4.4's
	// implicit-null-return rule.
	if g.Mode == Hosted {
		g.emitCallAndUse("stola_new_null")
	} else {
		g.emit("xor rax, rax")
	}

	g.emitLabel(fc.epilogue)
	if interrupt {
		g.emitInterruptEpilogue()
	} else {
		if g.ABI.ShadowSpace > 0 {
			g.emit("add rsp, %d", g.ABI.ShadowSpace)
		}
		g.emit("add rsp, %d", spillAreaSize)
		for i := len(fc.usedRegs) - 1; i >= 0; i-- {
			g.emit("pop %s", fc.usedRegs[i])
		}
		g.emit("leave")
		g.emit("ret")
	}

	g.fn = nil
}

// emitInterruptPrologue saves every caller-saved register plus rsi/rdi
// (spec.md §4.5: interrupt functions can't assume the interrupted code's
// registers are otherwise preserved), rather than the plain push-rbp
// prologue ordinary functions use.
func (g *Generator) emitInterruptPrologue() {
	g.emit("push rbp")
	g.emit("mov rbp, rsp")
	for _, reg := range interruptSavedRegs {
		g.emit("push %s", reg)
	}
}

func (g *Generator) emitInterruptEpilogue() {
	for i := len(interruptSavedRegs) - 1; i >= 0; i-- {
		g.emit("pop %s", interruptSavedRegs[i])
	}
	g.emit("leave")
	g.emit("iretq")
}

var interruptSavedRegs = []string{"rax", "rcx", "rdx", "rsi", "rdi", "r8", "r9", "r10", "r11"}
