/*
File   : stolac/runtime/builtins.go
Package: runtime

The closed list of hosted built-in runtime entry points (spec.md §6): every
name the analyzer pre-populates into the global scope, and every name the
code generator is allowed to emit a call to in hosted mode. Freestanding
mode exposes only the `memory_*` raw-access entries.

Arity is fixed per entry, matching the "Runtime ABI" rule in spec.md §6 —
"Arity is fixed per entry." Builtins whose C implementation is variadic at
the source-language level (print accepts 1 argument here; printf-style
formatting is layered in the stdlib, not the runtime) are not modeled; this
table is deliberately the same shape as the original's one-name-one-arity
contract.
*/
package runtime

// BuiltinSpec names one hosted built-in function and its fixed arity.
type BuiltinSpec struct {
	Name  string
	Arity int
}

// HostedBuiltins is the closed list from spec.md §6, grouped by the same
// categories the spec uses. The semantic analyzer pre-populates the
// global scope with these (§4.4 "Built-ins"); the code generator resolves
// source-level builtin calls against this list. Its own helper calls
// (stola_is_truthy, stola_setjmp, stola_longjmp) are not in it.
var HostedBuiltins = []BuiltinSpec{
	// Arithmetic / comparison / logic
	{"add", 2}, {"sub", 2}, {"mul", 2}, {"div", 2}, {"mod", 2}, {"neg", 1},
	{"eq", 2}, {"lt", 2}, {"gt", 2}, {"le", 2}, {"ge", 2},
	{"and", 2}, {"or", 2}, {"not", 1},

	// Type constructors
	{"new_int", 1}, {"new_bool", 1}, {"new_string", 1}, {"new_null", 0},
	{"new_array", 0}, {"new_dict", 0}, {"new_struct", 1},

	// Arrays
	{"push", 2}, {"pop", 1}, {"shift", 1}, {"unshift", 2},
	{"length", 1}, {"array_get", 2}, {"array_set", 3},

	// Dicts
	{"dict_get", 2}, {"dict_set", 3},

	// Structs
	{"struct_get", 2}, {"struct_set", 3},

	// Strings
	{"to_string", 1}, {"to_number", 1}, {"string_split", 2},
	{"string_starts_with", 2}, {"string_ends_with", 2}, {"string_contains", 2},
	{"string_substring", 3}, {"string_index_of", 2}, {"string_replace", 3},
	{"string_trim", 1}, {"uppercase", 1}, {"lowercase", 1},

	// I/O
	{"print_value", 1}, {"read_file", 1}, {"write_file", 2},
	{"append_file", 2}, {"file_exists", 1},

	// Sockets
	{"socket_connect", 2}, {"socket_send", 2}, {"socket_receive", 2}, {"socket_close", 1},

	// WebSockets
	{"ws_connect", 1}, {"ws_send", 2}, {"ws_receive", 1}, {"ws_close", 1},
	{"ws_server_create", 1}, {"ws_server_accept", 1}, {"ws_server_close", 1}, {"ws_select", 2},

	// HTTP
	{"http_fetch", 2},

	// JSON
	{"json_encode", 1}, {"json_decode", 1},

	// Time / math
	{"current_time", 0}, {"sleep", 1}, {"random", 0}, {"floor", 1}, {"ceil", 1}, {"round", 1},

	// Concurrency
	{"thread_spawn", 2}, {"thread_join", 1},
	{"mutex_create", 0}, {"mutex_lock", 1}, {"mutex_unlock", 1},

	// OOP
	{"register_method", 3}, {"invoke_method", 3}, // invoke_method(this, name, argsArray) in the Go-side model; the emitted
	// assembly instead spreads a1/a2 into registers per spec.md §4.5 — see genMethodCall in codegen/expr.go.

	// FFI
	{"load_dll", 1}, {"bind_c_function", 1}, {"invoke_c_function", 5},

	// Exceptions
	{"push_try", 0}, {"pop_try", 0}, {"throw", 1}, {"get_error", 0}, {"register_longjmp", 1},

	// print is a convenience alias used pervasively by example scripts;
	// the analyzer treats it identically to print_value.
	{"print", 1},
	{"len", 1}, // alias for length, kept distinct since both appear in spec.md §4.4 "Built-ins" prose
}

// FreestandingBuiltins is the restricted set available with --freestanding
// (spec.md §6 "freestanding-only raw memory").
var FreestandingBuiltins = []BuiltinSpec{
	{"memory_read", 1}, {"memory_write", 2}, {"memory_write_byte", 2},
}

// Lookup returns the arity of name within the supplied builtin table and
// whether it was found.
func Lookup(table []BuiltinSpec, name string) (int, bool) {
	for _, b := range table {
		if b.Name == name {
			return b.Arity, true
		}
	}
	return 0, false
}
