/*
File   : stolac/sema/analyzer.go
Package: sema

The semantic analyzer (spec.md §4.4): lexical scoping, symbol
resolution with top-level hoisting, arity/type diagnostics, and
mode-conditional rejection rules. Errors and warnings are accumulated as
"[Line N] ..." strings exactly like the parser (spec.md §4.2's "Error
reporting" convention, reused here rather than invented fresh), never
raised — analysis always runs to completion over a best-effort AST
(spec.md §7 "Compiler errors are accumulated, not raised").
*/
package sema

import (
	"fmt"
	"strings"

	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/runtime"
)

// Mode selects which built-in table and mode-conditional rules apply.
type Mode int

const (
	Hosted Mode = iota
	Freestanding
)

// privilegedAsmMarkers are the instruction mnemonics spec.md §4.4 singles
// out as requiring freestanding mode.
var privilegedAsmMarkers = []string{"hlt", "lgdt", "lidt", "in ", "out "}

// Analyzer walks a *ast.Program and produces diagnostics. Result fields
// are populated by Analyze; the Analyzer itself is single-use per
// program, matching the compiler's single-pass-per-invocation posture
// (spec.md §5 "Compiler itself. Single-threaded.").
type Analyzer struct {
	Mode     Mode
	Global   *SymbolTable
	Errors   []string
	Warnings []string

	classDepth int // >0 while analyzing a method body; gates `this`
	loopDepth  int // >0 while inside a while/loop/for body; gates break/continue
}

// New returns an analyzer with the global scope pre-populated with the
// built-in table appropriate to mode (spec.md §4.4 "Built-ins").
func New(mode Mode) *Analyzer {
	a := &Analyzer{Mode: mode, Global: NewGlobalTable()}
	table := runtime.HostedBuiltins
	if mode == Freestanding {
		table = runtime.FreestandingBuiltins
	}
	for _, b := range table {
		sym := a.Global.DefineFunction(b.Name, b.Arity, nil, "")
		sym.Kind = KindFunction
	}
	return a
}

func (a *Analyzer) errorf(pos ast.Node, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	a.Errors = append(a.Errors, fmt.Sprintf("[Line %d] %s", pos.Position().Line, msg))
}

func (a *Analyzer) warnf(pos ast.Node, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	a.Warnings = append(a.Warnings, fmt.Sprintf("[Line %d] warning: %s", pos.Position().Line, msg))
}

// Analyze runs the two-pass hoisting analysis over prog and returns true
// iff no errors were recorded (spec.md §4.4 "analysis returns success iff
// no errors").
func (a *Analyzer) Analyze(prog *ast.Program) bool {
	a.hoist(prog)
	for _, stmt := range prog.Statements {
		a.analyzeStmt(stmt, a.Global)
	}
	return len(a.Errors) == 0
}

// hoist implements spec.md §9's required two passes: "(1) collect
// top-level function and class names into the global scope, (2) analyze
// each statement with those names visible." This is pass (1); pass (2)
// is the ordinary analyzeStmt loop in Analyze. Struct and c_function
// declarations are hoisted alongside functions and classes since nothing
// in spec.md restricts forward reference to only those two kinds, and
// withholding it would make struct-before-use a spurious error.
func (a *Analyzer) hoist(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		switch n := stmt.(type) {
		case *ast.FunctionDecl:
			a.Global.DefineFunction(n.Name, len(n.ParamNames), n.ParamTypes, n.ReturnType)
		case *ast.ClassDecl:
			a.Global.DefineClass(n.Name)
		case *ast.StructDecl:
			a.Global.DefineStruct(n.Name, len(n.Fields))
		case *ast.CFunctionDecl:
			a.Global.DefineCFunction(n.Name, n.ParamTypes, n.ReturnType)
		}
	}
}

func (a *Analyzer) analyzeBlock(b *ast.Block, scope *SymbolTable) {
	if b == nil {
		return
	}
	inner := NewBlockScope(scope)
	for _, stmt := range b.Statements {
		a.analyzeStmt(stmt, inner)
	}
}

func (a *Analyzer) analyzeStmt(stmt ast.Statement, scope *SymbolTable) {
	switch n := stmt.(type) {
	case *ast.ExpressionStmt:
		a.analyzeExpr(n.Expr, scope)

	case *ast.Assignment:
		a.analyzeExpr(n.Value, scope)
		a.analyzeAssignTarget(n, scope)

	case *ast.IfStmt:
		a.analyzeExpr(n.Condition, scope)
		a.analyzeBlock(n.Consequence, scope)
		for _, c := range n.ElifConditions {
			a.analyzeExpr(c, scope)
		}
		for _, b := range n.ElifBlocks {
			a.analyzeBlock(b, scope)
		}
		a.analyzeBlock(n.Alternative, scope)

	case *ast.WhileStmt:
		a.analyzeExpr(n.Condition, scope)
		a.loopDepth++
		a.analyzeBlock(n.Body, scope)
		a.loopDepth--

	case *ast.LoopStmt:
		a.analyzeExpr(n.Start, scope)
		a.analyzeExpr(n.End, scope)
		if n.Step != nil {
			a.analyzeExpr(n.Step, scope)
		}
		inner := NewBlockScope(scope)
		inner.DefineLocal(n.IteratorName)
		a.loopDepth++
		for _, stmt := range n.Body.Statements {
			a.analyzeStmt(stmt, inner)
		}
		a.loopDepth--

	case *ast.ForStmt:
		a.analyzeExpr(n.Iterable, scope)
		inner := NewBlockScope(scope)
		inner.DefineLocal(n.IteratorName)
		a.loopDepth++
		for _, stmt := range n.Body.Statements {
			a.analyzeStmt(stmt, inner)
		}
		a.loopDepth--

	case *ast.MatchStmt:
		a.analyzeExpr(n.Subject, scope)
		for _, c := range n.Cases {
			a.analyzeExpr(c, scope)
		}
		for _, b := range n.Consequences {
			a.analyzeBlock(b, scope)
		}
		a.analyzeBlock(n.Default, scope)

	case *ast.ReturnStmt:
		if n.Value != nil {
			a.analyzeExpr(n.Value, scope)
		}

	case *ast.BreakStmt:
		if a.loopDepth == 0 {
			a.errorf(n, "break outside of a loop")
		}

	case *ast.ContinueStmt:
		if a.loopDepth == 0 {
			a.errorf(n, "continue outside of a loop")
		}

	case *ast.FunctionDecl:
		a.analyzeFunctionDecl(n, scope)

	case *ast.StructDecl:
		// already hoisted at top level; re-declaring locally is accepted
		// the same way functions are, since nested struct decls are not
		// forbidden by spec.md.
		if !scope.HasLocal(n.Name) {
			scope.DefineStruct(n.Name, len(n.Fields))
		}

	case *ast.ClassDecl:
		a.analyzeClassDecl(n, scope)

	case *ast.ImportStmt, *ast.ImportNative:
		// resolved away by importresolver before analysis runs; if one
		// survives to here (resolver was skipped) there's nothing to
		// resolve against scope.

	case *ast.CFunctionDecl:
		if !scope.HasLocal(n.Name) {
			scope.DefineCFunction(n.Name, n.ParamTypes, n.ReturnType)
		}

	case *ast.TryCatchStmt:
		if a.Mode == Freestanding {
			a.errorf(n, "try/catch is not permitted in freestanding mode")
		}
		a.analyzeBlock(n.TryBlock, scope)
		catchScope := NewBlockScope(scope)
		catchScope.DefineLocal(n.CatchVar)
		for _, stmt := range n.CatchBlock.Statements {
			a.analyzeStmt(stmt, catchScope)
		}

	case *ast.ThrowStmt:
		if a.Mode == Freestanding {
			a.errorf(n, "throw is not permitted in freestanding mode")
		}
		a.analyzeExpr(n.Value, scope)

	case *ast.AsmBlock:
		a.analyzeAsmBlock(n)

	default:
		a.errorf(stmt, "internal: unhandled statement kind in analyzer")
	}
}

func (a *Analyzer) analyzeFunctionDecl(n *ast.FunctionDecl, outer *SymbolTable) {
	if !outer.HasLocal(n.Name) {
		outer.DefineFunction(n.Name, len(n.ParamNames), n.ParamTypes, n.ReturnType)
	}
	fnScope := NewFunctionScope(outer)
	for _, p := range n.ParamNames {
		fnScope.DefineLocal(p)
	}
	for _, stmt := range n.Body.Statements {
		a.analyzeStmt(stmt, fnScope)
	}
}

func (a *Analyzer) analyzeClassDecl(n *ast.ClassDecl, outer *SymbolTable) {
	if a.Mode == Freestanding {
		a.errorf(n, "class declarations are not permitted in freestanding mode")
	}
	if !outer.HasLocal(n.Name) {
		outer.DefineClass(n.Name)
	}
	a.classDepth++
	for _, m := range n.Methods {
		a.analyzeFunctionDecl(m, outer)
	}
	a.classDepth--
}

// analyzeAssignTarget implements spec.md §4.4's implicit-declaration
// rule: an undeclared identifier target is declared in the current scope
// (local inside a function, global at top level); a declared target
// whose existing type annotation differs from a new one only warns
// (dynamic relaxation), never errors.
func (a *Analyzer) analyzeAssignTarget(n *ast.Assignment, scope *SymbolTable) {
	ident, ok := n.Target.(*ast.Identifier)
	if !ok {
		// computed/member targets (obj.field = …, arr[i] = …) resolve
		// through the ordinary expression path instead of declaring.
		a.analyzeExpr(n.Target, scope)
		return
	}
	sym, found := scope.Resolve(ident.Name)
	if !found {
		if scope.IsFunctionScope || scope == a.Global {
			sym = scope.DefineLocal(ident.Name)
			if scope == a.Global {
				sym.Kind = KindGlobal
			}
		} else {
			sym = scope.DefineLocal(ident.Name)
		}
		if n.TypeAnnotation != nil {
			sym.ValueType = *n.TypeAnnotation
		}
		return
	}
	if n.TypeAnnotation != nil && sym.ValueType != "" && sym.ValueType != *n.TypeAnnotation {
		a.warnf(n, "assignment to %q changes its declared type from %q to %q", ident.Name, sym.ValueType, *n.TypeAnnotation)
	}
	if n.TypeAnnotation != nil && sym.ValueType == "" {
		sym.ValueType = *n.TypeAnnotation
	}
}

func (a *Analyzer) analyzeExpr(expr ast.Expression, scope *SymbolTable) {
	switch n := expr.(type) {
	case *ast.Identifier:
		if _, ok := scope.Resolve(n.Name); !ok {
			a.errorf(n, "undefined identifier %q", n.Name)
		}

	case *ast.NumberLiteral, *ast.StringLiteral, *ast.BooleanLiteral, *ast.NullLiteral:
		// nothing to resolve

	case *ast.BinaryOp:
		a.analyzeExpr(n.Left, scope)
		a.analyzeExpr(n.Right, scope)

	case *ast.UnaryOp:
		a.analyzeExpr(n.Right, scope)

	case *ast.CallExpr:
		a.analyzeExpr(n.Callee, scope)
		for _, arg := range n.Args {
			a.analyzeExpr(arg, scope)
		}

	case *ast.ArrayLiteral:
		for _, e := range n.Elements {
			a.analyzeExpr(e, scope)
		}

	case *ast.DictLiteral:
		for i := range n.Keys {
			a.analyzeExpr(n.Keys[i], scope)
			a.analyzeExpr(n.Values[i], scope)
		}

	case *ast.MemberAccess:
		a.analyzeExpr(n.Object, scope)
		if n.IsComputed {
			a.analyzeExpr(n.Property, scope)
		}
		// a non-computed property is a bare field/method name, resolved
		// dynamically against the receiver's struct type at runtime —
		// not a scope lookup.

	case *ast.StructInitExpr:
		// spec.md §9 Open Question: declared unreachable via the parser;
		// left unanalyzed since nothing constructs this node.

	case *ast.NewExpr:
		sym, ok := scope.Resolve(n.ClassName)
		if !ok {
			a.errorf(n, "undefined class %q", n.ClassName)
		} else if sym.Kind == KindStruct && sym.Arity != len(n.Args) {
			a.errorf(n, "struct %q constructor expects %d argument(s), got %d", n.ClassName, sym.Arity, len(n.Args))
		}
		for _, arg := range n.Args {
			a.analyzeExpr(arg, scope)
		}

	case *ast.ThisExpr:
		if a.classDepth == 0 {
			a.errorf(n, "this used outside a method body")
		}

	default:
		a.errorf(expr, "internal: unhandled expression kind in analyzer")
	}
}

func (a *Analyzer) analyzeAsmBlock(n *ast.AsmBlock) {
	if a.Mode == Freestanding {
		return
	}
	for _, line := range n.Lines {
		lowered := strings.ToLower(line)
		for _, marker := range privilegedAsmMarkers {
			if strings.Contains(lowered, marker) {
				a.warnf(n, "asm block uses privileged instruction %q outside freestanding mode", marker)
				break
			}
		}
	}
}
