package cruntime_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stola-lang/stolac/runtime/cruntime"
)

func TestEmbeddedSourceDeclaresEveryHostedBuiltin(t *testing.T) {
	// spec.md §8: "every runtime entry point the emitted assembly calls
	// appears in the closed list of §6" — checked from the other
	// direction here: every closed-list name has a stola_-prefixed
	// definition in the embedded source.
	names := []string{
		"add", "sub", "mul", "div", "mod", "neg", "eq", "lt", "gt", "le", "ge",
		"push", "pop", "shift", "unshift", "array_get", "array_set",
		"dict_get", "dict_set", "struct_get", "struct_set",
		"to_string", "to_number", "json_encode", "json_decode",
		"push_try", "pop_try", "throw", "get_error",
		"load_dll", "bind_c_function", "invoke_c_function",
		"register_method", "invoke_method",
	}
	for _, name := range names {
		assert.Contains(t, cruntime.Source, "stola_"+name, "missing C definition for built-in %q", name)
	}
}

func TestEmbeddedSourceDoesNotDefineItsOwnSetjmp(t *testing.T) {
	// spec.md §4.5/§9: stola_setjmp/stola_longjmp are emitted inline by
	// the code generator, not implemented in the C runtime — the header
	// only declares them extern.
	assert.True(t, strings.Contains(cruntime.Header, "extern int64_t stola_setjmp"))
	assert.False(t, strings.Contains(cruntime.Source, "int64_t stola_setjmp(stola_jmp_buf"))
}
