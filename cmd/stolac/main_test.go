package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stola-lang/stolac/codegen/abi"
	"github.com/stola-lang/stolac/sema"
)

func TestParseCompileArgs_Defaults(t *testing.T) {
	opts, in, out, err := parseCompileArgs([]string{"a.stola", "a.s"})
	require.NoError(t, err)
	assert.Equal(t, "a.stola", in)
	assert.Equal(t, "a.s", out)
	assert.Equal(t, sema.Hosted, opts.mode)
}

func TestParseCompileArgs_FreestandingAndTarget(t *testing.T) {
	opts, _, _, err := parseCompileArgs([]string{"--freestanding", "--target=windows", "a.stola", "a.s"})
	require.NoError(t, err)
	assert.Equal(t, sema.Freestanding, opts.mode)
	assert.Equal(t, abi.Windows, opts.target)
}

func TestParseCompileArgs_WrongArgCountErrors(t *testing.T) {
	_, _, _, err := parseCompileArgs([]string{"onlyone.stola"})
	assert.Error(t, err)
}

func TestCompile_WritesAssemblyOutputForValidProgram(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "main.stola")
	output := filepath.Join(dir, "main.s")
	require.NoError(t, os.WriteFile(input, []byte("x = 1\nprint(x)\n"), 0o644))

	code := compile(compileOptions{mode: sema.Hosted, target: abi.Linux, stdlibDir: dir}, input, output)
	assert.Equal(t, 0, code)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), ".intel_syntax noprefix")
	assert.Contains(t, string(data), ".global main")
}

func TestCompile_MissingInputReturnsNonZero(t *testing.T) {
	dir := t.TempDir()
	code := compile(compileOptions{mode: sema.Hosted, target: abi.Linux}, filepath.Join(dir, "missing.stola"), filepath.Join(dir, "out.s"))
	assert.Equal(t, 1, code)
}

func TestCompile_ParseErrorReturnsNonZero(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.stola")
	output := filepath.Join(dir, "bad.s")
	require.NoError(t, os.WriteFile(input, []byte("if\n"), 0o644))

	code := compile(compileOptions{mode: sema.Freestanding, target: abi.Linux}, input, output)
	assert.Equal(t, 1, code)
}
