package codegen

import "github.com/stola-lang/stolac/runtime"

// canonicalBuiltinName resolves a source-level builtin name to the
// canonical runtime entry point it compiles to, folding the two
// convenience aliases (print/len) onto their real C symbol name.
func canonicalBuiltinName(name string) string {
	switch name {
	case "print":
		return "print_value"
	case "len":
		return "length"
	default:
		return name
	}
}

// isHostedBuiltin reports whether name is one of the closed-list runtime
// entry points the generator is allowed to call in hosted mode. Sourced
// from the same table the semantic analyzer pre-populates the global
// scope with, so codegen and sema can never disagree about what counts
// as a builtin.
func isHostedBuiltin(name string) bool {
	_, ok := runtime.Lookup(runtime.HostedBuiltins, canonicalBuiltinName(name))
	return ok
}
