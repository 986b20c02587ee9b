/*
File   : stolac/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stola-lang/stolac/ast"
)

func TestParser_ExpressionStatement(t *testing.T) {
	p := New(`print("hi")`)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	call, ok := stmt.Expr.(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "print", call.Callee.(*ast.Identifier).Name)
	require.Len(t, call.Args, 1)
	assert.Equal(t, "hi", call.Args[0].(*ast.StringLiteral).Value)
}

func TestParser_BinaryPrecedence(t *testing.T) {
	p := New(`1 + 2 * 3`)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	expr := prog.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.BinaryOp)
	assert.Equal(t, "1", expr.Left.(*ast.NumberLiteral).Text)
	mul := expr.Right.(*ast.BinaryOp)
	assert.Equal(t, "2", mul.Left.(*ast.NumberLiteral).Text)
	assert.Equal(t, "3", mul.Right.(*ast.NumberLiteral).Text)
}

func TestParser_WordFormConcatenation(t *testing.T) {
	p := New(`x = 3
print("v=" plus x)`)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, prog.Statements, 2)
	_, ok := prog.Statements[0].(*ast.Assignment)
	require.True(t, ok)
}

func TestParser_IfElifElse(t *testing.T) {
	src := `if a
print(1)
elif b
print(2)
else
print(3)
end`
	p := New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	ifStmt := prog.Statements[0].(*ast.IfStmt)
	assert.Len(t, ifStmt.ElifConditions, 1)
	assert.Len(t, ifStmt.ElifBlocks, 1)
	assert.NotNil(t, ifStmt.Alternative)
}

func TestParser_LoopCounter(t *testing.T) {
	src := `loop i from 1 to 4
print(i)
end`
	p := New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	loop := prog.Statements[0].(*ast.LoopStmt)
	assert.Equal(t, "i", loop.IteratorName)
	assert.Nil(t, loop.Step)
}

func TestParser_FunctionHoistingShapeParsesCleanly(t *testing.T) {
	src := `function a()
b()
end
function b()
print(1)
end
a()`
	p := New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, prog.Statements, 3)
}

func TestParser_TryThrowCatch(t *testing.T) {
	src := `try
throw "boom"
catch e
print(e)
end`
	p := New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	tc := prog.Statements[0].(*ast.TryCatchStmt)
	assert.Equal(t, "e", tc.CatchVar)
	require.Len(t, tc.TryBlock.Statements, 1)
	_, ok := tc.TryBlock.Statements[0].(*ast.ThrowStmt)
	assert.True(t, ok)
}

func TestParser_ClassWithMethods(t *testing.T) {
	src := `class C
function init()
this.n = 7
end
function get()
return this.n
end
end`
	p := New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	class := prog.Statements[0].(*ast.ClassDecl)
	assert.Equal(t, "C", class.Name)
	require.Len(t, class.Methods, 2)
	assert.Equal(t, "init", class.Methods[0].Name)
}

func TestParser_MemberAccessAndAt(t *testing.T) {
	p := New(`arr at 0`)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	ma := prog.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.MemberAccess)
	assert.True(t, ma.IsComputed)
}

func TestParser_DictLiteral(t *testing.T) {
	p := New(`{"a": 1, "b": 2}`)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	dict := prog.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.DictLiteral)
	require.Len(t, dict.Keys, 2)
}

func TestParser_AsmBlockCapturesRawLines(t *testing.T) {
	src := "asm {\n  hlt\n  nop\n}"
	p := New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	blk := prog.Statements[0].(*ast.AsmBlock)
	require.Len(t, blk.Lines, 2)
	assert.Contains(t, blk.Lines[0], "hlt")
}

func TestParser_ErrorRecoveryMakesForwardProgress(t *testing.T) {
	p := New("if\nend\nprint(1)")
	prog := p.Parse()
	assert.NotEmpty(t, p.Errors)
	// Despite the malformed `if`, the parser must still reach the trailing
	// print(1) statement instead of looping forever.
	found := false
	for _, s := range prog.Statements {
		if es, ok := s.(*ast.ExpressionStmt); ok {
			if call, ok := es.Expr.(*ast.CallExpr); ok {
				if id, ok := call.Callee.(*ast.Identifier); ok && id.Name == "print" {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "expected parser to recover and reach print(1)")
}

func TestParser_RecursionBeforeDeclarationScenario(t *testing.T) {
	src := `function a()
b()
end
function b()
print(1)
end
a()`
	p := New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, prog.Statements, 3)
}
