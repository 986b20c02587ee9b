package codegen

import "github.com/stola-lang/stolac/ast"

// genTruthyTest emits the truthiness check for the value currently in
// rax, leaving ZF set so the caller can follow with `jz <falseLabel>`:
// stola_is_truthy(rax) returns 0/1 in rax, so `test rax, rax; jz` reads
// correctly in hosted mode. Freestanding mode has no boxed Values, so the
// raw integer is tested directly with the same jz convention.
func (g *Generator) genTruthyTest(fc *funcCtx, falseLabel string) {
	if g.Mode == Hosted {
		g.emit("mov %s, rax", g.ABI.ArgRegister(0))
		g.emitCallAndUse("stola_is_truthy")
	}
	g.emit("test rax, rax")
	g.emit("jz %s", falseLabel)
}

func (g *Generator) genIfStmt(n *ast.IfStmt, fc *funcCtx) {
	end := g.labels.New("if_end")

	g.genExpr(n.Condition, fc)
	nextLabel := g.labels.New("elif")
	g.genTruthyTest(fc, nextLabel)
	g.genBlock(n.Consequence, fc)
	g.emit("jmp %s", end)
	g.emitLabel(nextLabel)

	for i, cond := range n.ElifConditions {
		g.genExpr(cond, fc)
		next := g.labels.New("elif")
		g.genTruthyTest(fc, next)
		g.genBlock(n.ElifBlocks[i], fc)
		g.emit("jmp %s", end)
		g.emitLabel(next)
	}

	if n.Alternative != nil {
		g.genBlock(n.Alternative, fc)
	}
	g.emitLabel(end)
}

func (g *Generator) genWhileStmt(n *ast.WhileStmt, fc *funcCtx) {
	head := g.labels.New("while_head")
	end := g.labels.New("while_end")

	fc.breakLabels = append(fc.breakLabels, end)
	fc.continueLabels = append(fc.continueLabels, head)
	defer g.popLoopLabels(fc)

	g.emitLabel(head)
	g.genExpr(n.Condition, fc)
	g.genTruthyTest(fc, end)
	g.genBlock(n.Body, fc)
	g.emit("jmp %s", head)
	g.emitLabel(end)
}

// genLoopStmt compiles `loop name from a to b [step s]`: init, a header
// that tests the iterator against the end bound, the body, and an
// increment before looping back, matching the init/condition/body/
// increment cycle an ordinary for-loop lowers to.
func (g *Generator) genLoopStmt(n *ast.LoopStmt, fc *funcCtx) {
	head := g.labels.New("loop_head")
	incr := g.labels.New("loop_incr")
	end := g.labels.New("loop_end")

	g.genExpr(n.Start, fc)
	iterLv := fc.allocLocal(n.IteratorName)
	g.emit("mov %s, rax", iterLv.operand())

	fc.breakLabels = append(fc.breakLabels, end)
	fc.continueLabels = append(fc.continueLabels, incr)
	defer g.popLoopLabels(fc)

	g.emitLabel(head)
	g.emit("mov rax, %s", iterLv.operand())
	g.emit("push rax")
	g.genExpr(n.End, fc)
	g.emit("mov %s, rax", g.ABI.ArgRegister(1))
	g.emit("pop %s", g.ABI.ArgRegister(0))
	g.emitCallAndUse("stola_lt")
	g.genTruthyTest(fc, end)

	g.genBlock(n.Body, fc)

	g.emitLabel(incr)
	g.emit("mov rax, %s", iterLv.operand())
	g.emit("push rax")
	if n.Step != nil {
		g.genExpr(n.Step, fc)
	} else if g.Mode == Hosted {
		g.emit("mov %s, 1", g.ABI.ArgRegister(0))
		g.emitCallAndUse("stola_new_int")
	} else {
		g.emit("mov rax, 1")
	}
	g.emit("mov %s, rax", g.ABI.ArgRegister(1))
	g.emit("pop %s", g.ABI.ArgRegister(0))
	g.emitCallAndUse("stola_add")
	g.emit("mov %s, rax", iterLv.operand())
	g.emit("jmp %s", head)
	g.emitLabel(end)
}

// genForStmt compiles `for name in iterable`. The closed built-in list
// has no generic iterator protocol entry point (spec.md §6 names array
// and dict accessors, not a cursor), so iteration is lowered directly
// against length/array_get. No check is made that the iterable is an
// array and no diagnostic is given for a dict or struct: stola_length
// reports 0 for those, so the body does not run.
func (g *Generator) genForStmt(n *ast.ForStmt, fc *funcCtx) {
	head := g.labels.New("for_head")
	incr := g.labels.New("for_incr")
	end := g.labels.New("for_end")

	g.genExpr(n.Iterable, fc)
	iterableLv := fc.allocLocal("__for_iterable_" + n.IteratorName)
	g.emit("mov %s, rax", iterableLv.operand())

	g.emit("mov rax, 0")
	idxLv := fc.allocLocal("__for_idx_" + n.IteratorName)
	if g.Mode == Hosted {
		g.emit("mov %s, 0", g.ABI.ArgRegister(0))
		g.emitCallAndUse("stola_new_int")
	}
	g.emit("mov %s, rax", idxLv.operand())

	fc.breakLabels = append(fc.breakLabels, end)
	fc.continueLabels = append(fc.continueLabels, incr)
	defer g.popLoopLabels(fc)

	g.emitLabel(head)
	g.emit("mov %s, %s", g.ABI.ArgRegister(0), iterableLv.operand())
	g.emitCallAndUse("stola_length")
	g.emit("push rax")
	g.emit("mov rax, %s", idxLv.operand())
	g.emit("mov %s, rax", g.ABI.ArgRegister(1))
	g.emit("pop %s", g.ABI.ArgRegister(0))
	g.emit("xchg %s, %s", g.ABI.ArgRegister(0), g.ABI.ArgRegister(1))
	g.emitCallAndUse("stola_lt")
	g.genTruthyTest(fc, end)

	g.emit("mov %s, %s", g.ABI.ArgRegister(0), iterableLv.operand())
	g.emit("mov %s, %s", g.ABI.ArgRegister(1), idxLv.operand())
	g.emitCallAndUse("stola_array_get")
	itemLv := fc.allocLocal(n.IteratorName)
	g.emit("mov %s, rax", itemLv.operand())

	g.genBlock(n.Body, fc)

	g.emitLabel(incr)
	g.emit("mov rax, %s", idxLv.operand())
	g.emit("push rax")
	if g.Mode == Hosted {
		g.emit("mov %s, 1", g.ABI.ArgRegister(0))
		g.emitCallAndUse("stola_new_int")
	} else {
		g.emit("mov rax, 1")
	}
	g.emit("mov %s, rax", g.ABI.ArgRegister(1))
	g.emit("pop %s", g.ABI.ArgRegister(0))
	g.emitCallAndUse("stola_add")
	g.emit("mov %s, rax", idxLv.operand())
	g.emit("jmp %s", head)
	g.emitLabel(end)
}

// genMatchStmt compiles `match subject case v1 ... case v2 ... default
// ... end` as a sequential chain of eq tests, matching the sequential
// evaluation order spec.md §4.4 describes (first matching case wins, no
// jump table).
func (g *Generator) genMatchStmt(n *ast.MatchStmt, fc *funcCtx) {
	end := g.labels.New("match_end")

	g.genExpr(n.Subject, fc)
	subjectLv := fc.allocLocal("__match_subject__")
	g.emit("mov %s, rax", subjectLv.operand())

	for i, caseExpr := range n.Cases {
		next := g.labels.New("match_case")
		g.genExpr(caseExpr, fc)
		g.emit("mov %s, rax", g.ABI.ArgRegister(1))
		g.emit("mov %s, %s", g.ABI.ArgRegister(0), subjectLv.operand())
		g.emitCallAndUse("stola_eq")
		g.genTruthyTest(fc, next)
		g.genBlock(n.Consequences[i], fc)
		g.emit("jmp %s", end)
		g.emitLabel(next)
	}

	if n.Default != nil {
		g.genBlock(n.Default, fc)
	}
	g.emitLabel(end)
}

func (g *Generator) popLoopLabels(fc *funcCtx) {
	fc.breakLabels = fc.breakLabels[:len(fc.breakLabels)-1]
	fc.continueLabels = fc.continueLabels[:len(fc.continueLabels)-1]
}
