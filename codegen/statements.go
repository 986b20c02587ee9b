package codegen

import "github.com/stola-lang/stolac/ast"

// genBlock emits every statement in b in order. Blocks don't introduce a
// new register-allocation scope of their own; spec.md §4.4's "shares
// local indices with its function" rule is a sema-time concept about
// symbol indices, and at codegen time every local within one function
// already shares fc regardless of which nested block declared it.
func (g *Generator) genBlock(b *ast.Block, fc *funcCtx) {
	for _, stmt := range b.Statements {
		g.genStmt(stmt, fc)
	}
}

func (g *Generator) genStmt(stmt ast.Statement, fc *funcCtx) {
	switch n := stmt.(type) {
	case *ast.ExpressionStmt:
		g.genExpr(n.Expr, fc)
	case *ast.Assignment:
		g.genAssignment(n, fc)
	case *ast.IfStmt:
		g.genIfStmt(n, fc)
	case *ast.WhileStmt:
		g.genWhileStmt(n, fc)
	case *ast.LoopStmt:
		g.genLoopStmt(n, fc)
	case *ast.ForStmt:
		g.genForStmt(n, fc)
	case *ast.MatchStmt:
		g.genMatchStmt(n, fc)
	case *ast.ReturnStmt:
		g.genReturnStmt(n, fc)
	case *ast.BreakStmt:
		g.genBreakStmt(n, fc)
	case *ast.ContinueStmt:
		g.genContinueStmt(n, fc)
	case *ast.TryCatchStmt:
		g.genTryCatchStmt(n, fc)
	case *ast.ThrowStmt:
		g.genThrowStmt(n, fc)
	case *ast.AsmBlock:
		g.genAsmBlock(n)
	case *ast.ImportNative:
		g.genImportNative(n)
	case *ast.CFunctionDecl:
		g.genCFunctionDecl(n)
	case *ast.FunctionDecl, *ast.ClassDecl, *ast.StructDecl, *ast.ImportStmt:
		// Nested declarations of these shapes don't occur in bodies that
		// reached codegen (the analyzer only hoists them at top level);
		// nothing to emit here.
	default:
		g.errorf("[Line %d] internal error: genStmt called with unhandled node %T", stmt.Position().Line, stmt)
	}
}

func (g *Generator) genAssignment(n *ast.Assignment, fc *funcCtx) {
	switch target := n.Target.(type) {
	case *ast.Identifier:
		g.genExpr(n.Value, fc)
		lv := fc.allocLocal(target.Name)
		g.emit("mov %s, rax", lv.operand())
	case *ast.MemberAccess:
		g.genExpr(target.Object, fc)
		g.emit("push rax")
		if target.IsComputed {
			g.genExpr(target.Property, fc)
			g.emit("push rax")
			g.genExpr(n.Value, fc)
			g.emit("mov %s, rax", g.ABI.ArgRegister(2))
			g.emit("pop %s", g.ABI.ArgRegister(1))
			g.emit("pop %s", g.ABI.ArgRegister(0))
			g.emitCallAndUse("stola_array_set")
			return
		}
		prop, ok := target.Property.(*ast.Identifier)
		if !ok {
			g.errorf("[Line %d] internal error: non-computed assignment target without identifier property", n.Position().Line)
			return
		}
		label := g.strs.Label(prop.Name)
		g.genExpr(n.Value, fc)
		g.emit("mov %s, rax", g.ABI.ArgRegister(2))
		g.emit("lea %s, [rip + %s]", g.ABI.ArgRegister(1), label)
		g.emit("pop %s", g.ABI.ArgRegister(0))
		g.emitCallAndUse("stola_struct_set")
	default:
		g.errorf("[Line %d] internal error: unsupported assignment target %T", n.Position().Line, n.Target)
	}
}

func (g *Generator) genReturnStmt(n *ast.ReturnStmt, fc *funcCtx) {
	if n.Value != nil {
		g.genExpr(n.Value, fc)
	} else if g.Mode == Hosted {
		g.emitCallAndUse("stola_new_null")
	} else {
		g.emit("xor rax, rax")
	}
	g.emit("jmp %s", fc.epilogue)
}

func (g *Generator) genBreakStmt(n *ast.BreakStmt, fc *funcCtx) {
	if len(fc.breakLabels) == 0 {
		g.errorf("[Line %d] internal error: break outside a loop reached codegen", n.Position().Line)
		return
	}
	g.emit("jmp %s", fc.breakLabels[len(fc.breakLabels)-1])
}

func (g *Generator) genContinueStmt(n *ast.ContinueStmt, fc *funcCtx) {
	if len(fc.continueLabels) == 0 {
		g.errorf("[Line %d] internal error: continue outside a loop reached codegen", n.Position().Line)
		return
	}
	g.emit("jmp %s", fc.continueLabels[len(fc.continueLabels)-1])
}
