/*
File   : stolac/ast/ast.go
Package: ast

Package ast defines the Stola abstract syntax tree: one Go type per node
shape named in spec.md §3, grouped into Statement and Expression node
families. Every node embeds a token.Position so downstream stages (the
semantic analyzer, the code generator) can always produce a "[Line N]"
diagnostic.

Unlike the original C implementation (a tagged union over raw-pointer
children, freed by explicit ast_free recursion), nodes here are ordinary
Go values: children are held as concrete pointers/slices and owned
exclusively by their parent, with lifetime managed by the garbage
collector. match-over-node-kind is done with a type switch instead of a
union tag.
*/
package ast

import "github.com/stola-lang/stolac/token"

// Node is implemented by every statement and expression node.
type Node interface {
	Position() token.Position
	node()
}

// Statement is implemented by every statement-shaped node.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression-shaped node.
type Expression interface {
	Node
	expressionNode()
}

// base carries the position every node needs; embedded by every concrete
// node type so Position() doesn't need to be hand-written 30 times.
type base struct {
	Pos token.Position
}

func (b base) Position() token.Position { return b.Pos }
func (b base) node()                    {}

type stmtBase struct{ base }

func (stmtBase) statementNode() {}

type exprBase struct{ base }

func (exprBase) expressionNode() {}

// ---------------------------------------------------------------------
// Program and blocks
// ---------------------------------------------------------------------

// Program is the root node: an ordered list of top-level statements.
type Program struct {
	stmtBase
	Statements []Statement
}

// Block is a `{ ... }`-free, `end`-terminated sequence of statements, used
// as the body of if/while/loop/for/function/class-method/try/catch.
type Block struct {
	stmtBase
	Statements []Statement
}

// ---------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------

// ExpressionStmt wraps an expression evaluated for effect.
type ExpressionStmt struct {
	stmtBase
	Expr Expression
}

// Assignment represents `target = value`, and implicitly declares target
// when it is an undeclared identifier (resolved by the analyzer, not the
// parser). TypeAnnotation is non-nil only when the source carried a
// trailing `: type` style annotation; the analyzer warns (never errors)
// when it conflicts with the symbol's previously-inferred type.
type Assignment struct {
	stmtBase
	Target         Expression // Identifier or MemberAccess
	Value          Expression
	TypeAnnotation *string
}

// IfStmt models `if cond ⏎ ... [elif cond ⏎ ...]* [else ⏎ ...] end`.
// ElifConditions and ElifBlocks always have equal length (invariant
// ii in spec.md §3).
type IfStmt struct {
	stmtBase
	Condition      Expression
	Consequence    *Block
	ElifConditions []Expression
	ElifBlocks     []*Block
	Alternative    *Block // nil if no else clause
}

// WhileStmt models `while cond ⏎ ... end`.
type WhileStmt struct {
	stmtBase
	Condition Expression
	Body      *Block
}

// LoopStmt models `loop name from a to b [step s] ⏎ ... end`. Step is nil
// when omitted (defaults to 1 at codegen time).
type LoopStmt struct {
	stmtBase
	IteratorName string
	Start        Expression
	End          Expression
	Step         Expression // nil if omitted
	Body         *Block
}

// ForStmt models `for name in iterable ⏎ ... end`.
type ForStmt struct {
	stmtBase
	IteratorName string
	Iterable     Expression
	Body         *Block
}

// MatchStmt models `match e ⏎ case v1 ⏎ ... case v2 ⏎ ... default ⏎ ... end`.
// Cases and Consequences always have equal length (invariant i).
type MatchStmt struct {
	stmtBase
	Subject     Expression
	Cases       []Expression
	Consequences []*Block
	Default     *Block // nil if no default clause
}

// ReturnStmt models `return [expr]`. Value is nil for a bare return.
type ReturnStmt struct {
	stmtBase
	Value Expression
}

// BreakStmt models `break` (supplemented: original_source/src/ast.h names
// AST_BREAK_STMT as a distinct top-level node, not folded into loop prose).
type BreakStmt struct {
	stmtBase
}

// ContinueStmt models `continue`, mirroring BreakStmt.
type ContinueStmt struct {
	stmtBase
}

// FunctionDecl models `function name(params) [-> returnType] ⏎ ... end`.
// Interrupt is true when the function was declared `interrupt function`
// and must be emitted with the caller-saved-register prologue/`iretq`
// epilogue described in spec.md §4.5.
//
// ParamNames and ParamTypes always have equal length (invariant iii);
// ParamTypes entries are empty strings when a parameter carries no
// annotation.
type FunctionDecl struct {
	stmtBase
	Name       string
	ParamNames []string
	ParamTypes []string
	ReturnType string // empty if unannotated
	Body       *Block
	Interrupt  bool
}

// StructDecl models `struct name ⏎ field1 ⏎ field2 ⏎ ... end`.
type StructDecl struct {
	stmtBase
	Name   string
	Fields []string
}

// ClassDecl models `class name ⏎ function m1(...) ... end ⏎ ... end`.
type ClassDecl struct {
	stmtBase
	Name    string
	Methods []*FunctionDecl
}

// ImportStmt models `import module_name`.
type ImportStmt struct {
	stmtBase
	ModuleName string
}

// ImportNative models `import_native "libname"`.
type ImportNative struct {
	stmtBase
	LibName string
}

// CFunctionDecl models `c_function name(type1, type2) -> returnType`, an
// FFI binding declaration with no body.
type CFunctionDecl struct {
	stmtBase
	Name       string
	ParamTypes []string
	ReturnType string
}

// TryCatchStmt models `try ⏎ ... catch e ⏎ ... end`.
type TryCatchStmt struct {
	stmtBase
	TryBlock   *Block
	CatchVar   string
	CatchBlock *Block
}

// ThrowStmt models `throw expr`.
type ThrowStmt struct {
	stmtBase
	Value Expression
}

// AsmBlock models `asm { ... }`: its Lines are re-emitted verbatim by the
// code generator (4-space indented, blank lines stripped), bypassing
// ordinary statement codegen entirely.
type AsmBlock struct {
	stmtBase
	Lines []string
}

// ---------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------

// Identifier is a bare name reference.
type Identifier struct {
	exprBase
	Name string
}

// NumberLiteral carries the literal text verbatim (typing — int vs.
// decimal — is decided at codegen/runtime time, not lexing/parsing time,
// per spec.md §4.1).
type NumberLiteral struct {
	exprBase
	Text string
}

// StringLiteral is an already-unescaped string value.
type StringLiteral struct {
	exprBase
	Value string
}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	exprBase
	Value bool
}

// NullLiteral is `null`.
type NullLiteral struct {
	exprBase
}

// BinaryOp is `left OP right` for any of the arithmetic, comparison, or
// logical binary operators. Op is the operator token's own kind, so the
// punctuation and word forms of one operator carry different Op values;
// the code generator maps them onto one kind (normalizeOp).
type BinaryOp struct {
	exprBase
	Op    token.Kind
	Left  Expression
	Right Expression
}

// UnaryOp is `-expr` or `not expr`.
type UnaryOp struct {
	exprBase
	Op    token.Kind
	Right Expression
}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	exprBase
	Callee Expression
	Args   []Expression
}

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	exprBase
	Elements []Expression
}

// DictLiteral is `{k1: v1, k2: v2, ...}`.
type DictLiteral struct {
	exprBase
	Keys   []Expression
	Values []Expression
}

// MemberAccess is `object.property` (IsComputed == false, Property is an
// *Identifier) or `object[index]` / `object at index` (IsComputed ==
// true, Property is an arbitrary Expression) — invariant iv in spec.md §3.
type MemberAccess struct {
	exprBase
	Object     Expression
	Property   Expression
	IsComputed bool
}

// StructInitExpr models AST_STRUCT_INITIALIZATION. Per spec.md §9 Open
// Question, it is declared here for parity with the original grammar but
// is unreachable from the parser: no production constructs one.
type StructInitExpr struct {
	exprBase
	StructName string
	Args       []Expression
}

// NewExpr is `new ClassName(args...)`.
type NewExpr struct {
	exprBase
	ClassName string
	Args      []Expression
}

// ThisExpr is the bare `this` keyword, legal only inside a method body
// (invariant v in spec.md §3, enforced by the semantic analyzer).
type ThisExpr struct {
	exprBase
}

// Interface guards — compile-time assertion that every node satisfies the
// family interface it claims to. Kept as one block instead of scattering
// `var _ Statement = (*X)(nil)` beside every type, matching the density
// the teacher repo uses for this kind of assertion.
var (
	_ Statement = (*Program)(nil)
	_ Statement = (*Block)(nil)
	_ Statement = (*ExpressionStmt)(nil)
	_ Statement = (*Assignment)(nil)
	_ Statement = (*IfStmt)(nil)
	_ Statement = (*WhileStmt)(nil)
	_ Statement = (*LoopStmt)(nil)
	_ Statement = (*ForStmt)(nil)
	_ Statement = (*MatchStmt)(nil)
	_ Statement = (*ReturnStmt)(nil)
	_ Statement = (*BreakStmt)(nil)
	_ Statement = (*ContinueStmt)(nil)
	_ Statement = (*FunctionDecl)(nil)
	_ Statement = (*StructDecl)(nil)
	_ Statement = (*ClassDecl)(nil)
	_ Statement = (*ImportStmt)(nil)
	_ Statement = (*ImportNative)(nil)
	_ Statement = (*CFunctionDecl)(nil)
	_ Statement = (*TryCatchStmt)(nil)
	_ Statement = (*ThrowStmt)(nil)
	_ Statement = (*AsmBlock)(nil)

	_ Expression = (*Identifier)(nil)
	_ Expression = (*NumberLiteral)(nil)
	_ Expression = (*StringLiteral)(nil)
	_ Expression = (*BooleanLiteral)(nil)
	_ Expression = (*NullLiteral)(nil)
	_ Expression = (*BinaryOp)(nil)
	_ Expression = (*UnaryOp)(nil)
	_ Expression = (*CallExpr)(nil)
	_ Expression = (*ArrayLiteral)(nil)
	_ Expression = (*DictLiteral)(nil)
	_ Expression = (*MemberAccess)(nil)
	_ Expression = (*StructInitExpr)(nil)
	_ Expression = (*NewExpr)(nil)
	_ Expression = (*ThisExpr)(nil)
)
