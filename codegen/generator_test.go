package codegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stola-lang/stolac/codegen"
	"github.com/stola-lang/stolac/codegen/abi"
	"github.com/stola-lang/stolac/parser"
)

func generate(t *testing.T, src string, mode codegen.Mode, target abi.Target) (string, *codegen.Generator) {
	t.Helper()
	p := parser.New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors, "fixture must parse cleanly")
	g := codegen.New(mode, target)
	out := g.Generate(prog)
	return out, g
}

func TestGenerate_HostedProgram_HasDirectivesAndExternList(t *testing.T) {
	out, g := generate(t, "x = 1 + 2\nprint(x)\n", codegen.Hosted, abi.Linux)
	assert.Empty(t, g.Errors)
	assert.Contains(t, out, ".intel_syntax noprefix")
	assert.Contains(t, out, ".global main")
	assert.Contains(t, out, ".extern stola_add")
	assert.Contains(t, out, ".extern stola_print_value")
	assert.Contains(t, out, ".extern stola_new_int")
	assert.Contains(t, out, "main:")
}

func TestGenerate_HostedProgram_DoesNotExternUnusedBuiltins(t *testing.T) {
	out, _ := generate(t, "x = 1\n", codegen.Hosted, abi.Linux)
	assert.NotContains(t, out, ".extern stola_socket_connect")
}

func TestGenerate_FreestandingProgram_UsesNativeArithmeticNoRuntimeCalls(t *testing.T) {
	out, g := generate(t, "x = 1 + 2\n", codegen.Freestanding, abi.Linux)
	assert.Empty(t, g.Errors)
	assert.NotContains(t, out, ".extern")
	assert.Contains(t, out, "add rax, rbx")
}

func TestGenerate_FunctionDecl_EmitsLabelAndPrologue(t *testing.T) {
	out, _ := generate(t, "function add(a, b)\n  return a + b\nend\n", codegen.Hosted, abi.Linux)
	assert.Contains(t, out, "add:")
	assert.Contains(t, out, "push rbp")
	assert.Contains(t, out, "leave")
	assert.Contains(t, out, "ret")
}

func TestGenerate_WindowsTarget_UsesShadowSpaceRegisters(t *testing.T) {
	out, _ := generate(t, "function add(a, b)\n  return a + b\nend\n", codegen.Hosted, abi.Windows)
	assert.Contains(t, out, "mov r12, rcx")
	assert.Contains(t, out, "sub rsp, 32")
}

func TestGenerate_ClassDecl_RegistersMethodsInMain(t *testing.T) {
	src := "class Counter\n  function init()\n    this.n = 0\n  end\nend\nc = new Counter()\n"
	out, g := generate(t, src, codegen.Hosted, abi.Linux)
	assert.Empty(t, g.Errors)
	assert.Contains(t, out, "Counter_init:")
	assert.Contains(t, out, ".extern stola_register_method")
	assert.Contains(t, out, ".extern stola_invoke_method")
}

func TestGenerate_TryCatch_UsesSetjmpDirectlyNotThroughAlignedCallHelper(t *testing.T) {
	src := "try\n  throw 1\ncatch e\n  print(e)\nend\n"
	out, g := generate(t, src, codegen.Hosted, abi.Linux)
	assert.Empty(t, g.Errors)
	assert.Contains(t, out, "call stola_setjmp")
	// the bare call must not be immediately preceded by the alignment
	// check's own call, i.e. it isn't wrapped in emitCall's branchy thunk.
	lines := strings.Split(out, "\n")
	for i, l := range lines {
		if strings.Contains(l, "call stola_setjmp") {
			assert.NotContains(t, lines[i-1], "jz", "setjmp call site should not follow an alignment branch")
		}
	}
}

func TestGenerate_AsmBlock_PassesThroughVerbatimIndented(t *testing.T) {
	src := "asm {\n  nop\n  hlt\n}\n"
	out, _ := generate(t, src, codegen.Hosted, abi.Linux)
	assert.Contains(t, out, "    nop")
	assert.Contains(t, out, "    hlt")
}

func TestGenerate_IfElifElse_EmitsLabelChain(t *testing.T) {
	src := "if 1\n  x = 1\nelif 2\n  x = 2\nelse\n  x = 3\nend\n"
	out, g := generate(t, src, codegen.Hosted, abi.Linux)
	assert.Empty(t, g.Errors)
	assert.Contains(t, out, ".Lif_end")
	assert.Contains(t, out, ".Lelif")
}

func TestGenerate_BareFunctionNameAsValue_IsCodegenError(t *testing.T) {
	src := "function double(a)\n  return a + a\nend\nx = double\n"
	_, g := generate(t, src, codegen.Hosted, abi.Linux)
	require.NotEmpty(t, g.Errors)
	assert.Contains(t, g.Errors[0], "double")
}

func TestGenerate_CallSites_UseRuntimeAlignmentCheck(t *testing.T) {
	out, _ := generate(t, "x = 1\n", codegen.Hosted, abi.Linux)
	assert.Contains(t, out, "and r10, 15")
}
