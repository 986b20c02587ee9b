/*
File   : stolac/importresolver/importresolver_test.go
*/
package importresolver

import (
	"fmt"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/internal/astprint"
	"github.com/stola-lang/stolac/parser"
)

type fakeReader map[string]string

func (f fakeReader) ReadModule(path string) (string, error) {
	if src, ok := f[path]; ok {
		return src, nil
	}
	return "", fmt.Errorf("no such module: %s", path)
}

func TestResolve_PrependsImportedFunctions(t *testing.T) {
	reader := fakeReader{
		"/stdlib/mathx.stola": "function clamp(x, lo, hi)\nreturn x\nend",
	}
	p := parser.New("import mathx\nclamp(1, 0, 2)")
	prog := p.Parse()
	require.Empty(t, p.Errors)

	res := Resolve(prog, reader, "/stdlib", "stola")
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Program.Statements, 2)

	fn, ok := res.Program.Statements[0].(*ast.FunctionDecl)
	require.True(t, ok, "expected prepended function declaration first")
	assert.Equal(t, "clamp", fn.Name)

	_, ok = res.Program.Statements[1].(*ast.ExpressionStmt)
	assert.True(t, ok, "expected the call expression statement to remain, import statement removed")
}

func TestResolve_UnresolvedImportIsWarningNotError(t *testing.T) {
	p := parser.New("import doesnotexist\nprint(1)")
	prog := p.Parse()
	require.Empty(t, p.Errors)

	res := Resolve(prog, fakeReader{}, "/stdlib", "stola")
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "doesnotexist")
	// The rest of the program must still be present.
	require.Len(t, res.Program.Statements, 1)
}

func TestResolve_OnlyDeclarationsAreSpliced(t *testing.T) {
	reader := fakeReader{
		"/stdlib/noisy.stola": "print(\"side effect at import time\")\nfunction f()\nend",
	}
	p := parser.New("import noisy")
	prog := p.Parse()
	require.Empty(t, p.Errors)

	res := Resolve(prog, reader, "/stdlib", "stola")
	require.Len(t, res.Program.Statements, 1)
	_, ok := res.Program.Statements[0].(*ast.FunctionDecl)
	assert.True(t, ok, "only the function declaration should have been spliced in")
}

// TestResolve_SplicedBodyMatchesSource checks that the declaration Resolve
// splices in is the module's own declaration, unchanged: its outline must
// diff empty against the outline of the same source parsed directly.
func TestResolve_SplicedBodyMatchesSource(t *testing.T) {
	src := "function clamp(x, lo, hi)\nreturn x\nend"
	mp := parser.New(src)
	mod := mp.Parse()
	require.Empty(t, mp.Errors)
	require.Len(t, mod.Statements, 1)

	p := parser.New("import mathx")
	prog := p.Parse()
	require.Empty(t, p.Errors)
	res := Resolve(prog, fakeReader{"/stdlib/mathx.stola": src}, "/stdlib", "stola")
	require.Len(t, res.Program.Statements, 1)

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(astprint.Print(mod.Statements[0])),
		B:        difflib.SplitLines(astprint.Print(res.Program.Statements[0])),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	require.NoError(t, err)
	assert.Empty(t, text)
}
