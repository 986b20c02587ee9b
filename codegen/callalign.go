package codegen

// emitCall emits a call to target (any runtime or user function label)
// through a runtime 16-byte stack-realignment check rather than static
// push/pop parity tracking. Every codegen path (expression evaluation,
// control flow, nested calls inside call arguments) can reach a call
// site with a different number of live pushes ahead of it; checking
// rsp's low bits at the call site itself is the one place that has to
// get this right, so every call in the generator funnels through here
// instead of each call site reasoning about its own parity. The one
// exception is the bare `call stola_setjmp` in genTryCatchStmt. Under an
// ABI with shadow space, that space is reserved just below rsp around
// each call as well.
func (g *Generator) emitCall(target string) {
	aligned := g.labels.New("aligned")
	end := g.labels.New("call_end")
	shadow := g.ABI.ShadowSpace
	g.emit("mov r10, rsp")
	g.emit("and r10, 15")
	g.emit("jz %s", aligned)
	g.emit("sub rsp, %d", 8+shadow)
	g.emit("call %s", target)
	g.emit("add rsp, %d", 8+shadow)
	g.emit("jmp %s", end)
	g.emitLabel(aligned)
	if shadow > 0 {
		g.emit("sub rsp, %d", shadow)
	}
	g.emit("call %s", target)
	if shadow > 0 {
		g.emit("add rsp, %d", shadow)
	}
	g.emitLabel(end)
}
