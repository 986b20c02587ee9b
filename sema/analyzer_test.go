package sema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stola-lang/stolac/parser"
	"github.com/stola-lang/stolac/sema"
)

func TestAnalyze_RecursionBeforeDeclaration(t *testing.T) {
	src := "function a()\n  b()\nend\nfunction b()\n  print(1)\nend\na()\n"
	p := parser.New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)

	a := sema.New(sema.Hosted)
	ok := a.Analyze(prog)
	assert.True(t, ok, "errors: %v", a.Errors)
}

func TestAnalyze_UndefinedIdentifierIsError(t *testing.T) {
	p := parser.New("print(missing_name)\n")
	prog := p.Parse()
	require.Empty(t, p.Errors)

	a := sema.New(sema.Hosted)
	ok := a.Analyze(prog)
	assert.False(t, ok)
	require.Len(t, a.Errors, 1)
	assert.Contains(t, a.Errors[0], "missing_name")
}

func TestAnalyze_BreakOutsideLoopIsError(t *testing.T) {
	p := parser.New("break\n")
	prog := p.Parse()
	require.Empty(t, p.Errors)

	a := sema.New(sema.Hosted)
	ok := a.Analyze(prog)
	assert.False(t, ok)
	require.Len(t, a.Errors, 1)
	assert.Contains(t, a.Errors[0], "break")
}

func TestAnalyze_ContinueInsideWhileIsAccepted(t *testing.T) {
	p := parser.New("while true\n  continue\nend\n")
	prog := p.Parse()
	require.Empty(t, p.Errors)

	a := sema.New(sema.Hosted)
	ok := a.Analyze(prog)
	assert.True(t, ok, "errors: %v", a.Errors)
}

func TestAnalyze_ImplicitDeclarationOnAssignment(t *testing.T) {
	p := parser.New("x = 3\nprint(x)\n")
	prog := p.Parse()
	require.Empty(t, p.Errors)

	a := sema.New(sema.Hosted)
	ok := a.Analyze(prog)
	assert.True(t, ok, "errors: %v", a.Errors)
}

func TestAnalyze_ThisOutsideClassIsError(t *testing.T) {
	p := parser.New("print(this)\n")
	prog := p.Parse()
	require.Empty(t, p.Errors)

	a := sema.New(sema.Hosted)
	ok := a.Analyze(prog)
	assert.False(t, ok)
	assert.Contains(t, a.Errors[0], "this")
}

func TestAnalyze_ThisInsideMethodIsFine(t *testing.T) {
	src := "class C\n  function get()\n    return this\n  end\nend\n"
	p := parser.New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)

	a := sema.New(sema.Hosted)
	ok := a.Analyze(prog)
	assert.True(t, ok, "errors: %v", a.Errors)
}

func TestAnalyze_ClassDeclRejectedInFreestanding(t *testing.T) {
	src := "class C\n  function get()\n    return 1\n  end\nend\n"
	p := parser.New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)

	a := sema.New(sema.Freestanding)
	ok := a.Analyze(prog)
	assert.False(t, ok)
	assert.Contains(t, a.Errors[0], "freestanding")
}

func TestAnalyze_StructConstructorArityMismatchIsError(t *testing.T) {
	src := "struct Point\n  x\n  y\nend\np = new Point(1)\n"
	p := parser.New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)

	a := sema.New(sema.Hosted)
	ok := a.Analyze(prog)
	assert.False(t, ok)
	assert.Contains(t, a.Errors[0], "expects 2")
}

func TestAnalyze_TypeAnnotationMismatchIsWarningNotError(t *testing.T) {
	src := "x = 1 : int\nx = \"s\" : string\n"
	p := parser.New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)

	a := sema.New(sema.Hosted)
	ok := a.Analyze(prog)
	assert.True(t, ok, "errors: %v", a.Errors)
	require.NotEmpty(t, a.Warnings)
}

func TestAnalyze_AsmPrivilegedInstructionWarnsOutsideFreestanding(t *testing.T) {
	src := "asm {\n  hlt\n}\n"
	p := parser.New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)

	a := sema.New(sema.Hosted)
	ok := a.Analyze(prog)
	assert.True(t, ok)
	require.NotEmpty(t, a.Warnings)
	assert.Contains(t, a.Warnings[0], "hlt")
}

func TestAnalyze_UnknownBuiltinCallIsUndefinedError(t *testing.T) {
	p := parser.New("not_a_real_builtin(1)\n")
	prog := p.Parse()
	require.Empty(t, p.Errors)

	a := sema.New(sema.Hosted)
	ok := a.Analyze(prog)
	assert.False(t, ok)
}
