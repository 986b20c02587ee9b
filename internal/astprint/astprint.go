/*
File   : stolac/internal/astprint/astprint.go
Package: astprint

Package astprint renders an ast.Node tree as an indented, human-readable
outline. No stolac command-line flag or REPL mode uses it; the
importresolver tests use it to compare declarations.

It plays the same role as the teacher's PrintingVisitor
(go-mix/main/print_visitor.go), adapted from the visitor-interface
dispatch the teacher uses to a type switch, since stolac's AST is a plain
sum type rather than an Accept-method visitor hierarchy.
*/
package astprint

import (
	"bytes"
	"fmt"

	"github.com/stola-lang/stolac/ast"
)

const indentSize = 2

// Print renders node as a multi-line indented tree.
func Print(node ast.Node) string {
	var buf bytes.Buffer
	write(&buf, node, 0)
	return buf.String()
}

func write(buf *bytes.Buffer, node ast.Node, indent int) {
	pad := func() {
		for i := 0; i < indent; i++ {
			buf.WriteByte(' ')
		}
	}
	line := func(format string, args ...interface{}) {
		pad()
		fmt.Fprintf(buf, format+"\n", args...)
	}
	child := func(n ast.Node) {
		write(buf, n, indent+indentSize)
	}

	switch n := node.(type) {
	case *ast.Program:
		line("Program")
		for _, s := range n.Statements {
			child(s)
		}
	case *ast.Block:
		line("Block")
		for _, s := range n.Statements {
			child(s)
		}
	case *ast.ExpressionStmt:
		line("ExpressionStmt")
		child(n.Expr)
	case *ast.Assignment:
		line("Assignment")
		child(n.Target)
		child(n.Value)
	case *ast.IfStmt:
		line("If")
		child(n.Condition)
		child(n.Consequence)
		for i, cond := range n.ElifConditions {
			line("Elif")
			child(cond)
			child(n.ElifBlocks[i])
		}
		if n.Alternative != nil {
			line("Else")
			child(n.Alternative)
		}
	case *ast.WhileStmt:
		line("While")
		child(n.Condition)
		child(n.Body)
	case *ast.LoopStmt:
		line("Loop %s", n.IteratorName)
		child(n.Start)
		child(n.End)
		if n.Step != nil {
			child(n.Step)
		}
		child(n.Body)
	case *ast.ForStmt:
		line("For %s", n.IteratorName)
		child(n.Iterable)
		child(n.Body)
	case *ast.MatchStmt:
		line("Match")
		child(n.Subject)
		for i, c := range n.Cases {
			line("Case")
			child(c)
			child(n.Consequences[i])
		}
		if n.Default != nil {
			line("Default")
			child(n.Default)
		}
	case *ast.ReturnStmt:
		line("Return")
		if n.Value != nil {
			child(n.Value)
		}
	case *ast.BreakStmt:
		line("Break")
	case *ast.ContinueStmt:
		line("Continue")
	case *ast.FunctionDecl:
		line("Function %s(%v) -> %s interrupt=%v", n.Name, n.ParamNames, n.ReturnType, n.Interrupt)
		child(n.Body)
	case *ast.StructDecl:
		line("Struct %s %v", n.Name, n.Fields)
	case *ast.ClassDecl:
		line("Class %s", n.Name)
		for _, m := range n.Methods {
			child(m)
		}
	case *ast.ImportStmt:
		line("Import %s", n.ModuleName)
	case *ast.ImportNative:
		line("ImportNative %s", n.LibName)
	case *ast.CFunctionDecl:
		line("CFunction %s(%v) -> %s", n.Name, n.ParamTypes, n.ReturnType)
	case *ast.TryCatchStmt:
		line("Try")
		child(n.TryBlock)
		line("Catch %s", n.CatchVar)
		child(n.CatchBlock)
	case *ast.ThrowStmt:
		line("Throw")
		child(n.Value)
	case *ast.AsmBlock:
		line("Asm (%d lines)", len(n.Lines))
	case *ast.Identifier:
		line("Identifier %s", n.Name)
	case *ast.NumberLiteral:
		line("Number %s", n.Text)
	case *ast.StringLiteral:
		line("String %q", n.Value)
	case *ast.BooleanLiteral:
		line("Boolean %v", n.Value)
	case *ast.NullLiteral:
		line("Null")
	case *ast.BinaryOp:
		line("BinaryOp %s", n.Op)
		child(n.Left)
		child(n.Right)
	case *ast.UnaryOp:
		line("UnaryOp %s", n.Op)
		child(n.Right)
	case *ast.CallExpr:
		line("Call")
		child(n.Callee)
		for _, a := range n.Args {
			child(a)
		}
	case *ast.ArrayLiteral:
		line("Array")
		for _, e := range n.Elements {
			child(e)
		}
	case *ast.DictLiteral:
		line("Dict")
		for i, k := range n.Keys {
			child(k)
			child(n.Values[i])
		}
	case *ast.MemberAccess:
		line("MemberAccess computed=%v", n.IsComputed)
		child(n.Object)
		child(n.Property)
	case *ast.StructInitExpr:
		line("StructInit %s", n.StructName)
	case *ast.NewExpr:
		line("New %s", n.ClassName)
		for _, a := range n.Args {
			child(a)
		}
	case *ast.ThisExpr:
		line("This")
	default:
		line("<unknown node %T>", n)
	}
}
