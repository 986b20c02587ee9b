package runtime

import "fmt"

// MethodFunc is the Go-side stand-in for a compiled method body; codegen
// emits a call through the registry by name rather than a direct symbol
// so that register_method/invoke_method's late-binding semantics (a
// struct type's method table can be extended at any point before first
// invocation, spec.md §4.5 "OOP") are representable without the compiler
// needing a closed class hierarchy up front.
type MethodFunc func(this Value, args []Value) Value

// MethodRegistry implements the register_method/invoke_method built-ins:
// an append-only table keyed by (typeName, methodName), mirroring the
// original's linear method table rather than a per-type vtable, since
// spec.md never bounds the number of registered methods per type.
type MethodRegistry struct {
	methods map[string]MethodFunc
}

func NewMethodRegistry() *MethodRegistry {
	return &MethodRegistry{methods: make(map[string]MethodFunc)}
}

func methodKey(typeName, methodName string) string { return typeName + "." + methodName }

// Register implements register_method. Re-registering the same
// (typeName, methodName) pair overwrites the previous binding rather
// than erroring, matching append-only growth with last-write-wins.
func (r *MethodRegistry) Register(typeName, methodName string, fn MethodFunc) {
	r.methods[methodKey(typeName, methodName)] = fn
}

// MethodNotFound is raised by Invoke when no method is registered for
// the receiver's dynamic type and the requested name.
type MethodNotFound struct {
	TypeName, MethodName string
}

func (e MethodNotFound) Error() string {
	return fmt.Sprintf("no method %q registered for type %q", e.MethodName, e.TypeName)
}

// Invoke implements invoke_method: dispatches on the receiver's dynamic
// struct type name, panicking with MethodNotFound (mapped by the caller
// to the language's throw/catch machinery) when absent.
func (r *MethodRegistry) Invoke(this Value, methodName string, args []Value) Value {
	if this.Tag != TagStruct {
		panic(MethodNotFound{TypeName: this.Tag.String(), MethodName: methodName})
	}
	fn, ok := r.methods[methodKey(this.Struct.TypeName, methodName)]
	if !ok {
		panic(MethodNotFound{TypeName: this.Struct.TypeName, MethodName: methodName})
	}
	return fn(this, args)
}

// FFIFunc is the Go-side stand-in for a bound C function pointer.
type FFIFunc func(args []Value) Value

// FFIRegistry implements load_dll/bind_c_function/invoke_c_function: a
// two-level table of loaded libraries and the functions bound out of
// them. The reference model never actually dlopen()s anything — codegen
// emits the real loader sequence against the runtime's FFI shims — this
// registry exists so compiler-side tests can exercise well-formed
// load/bind/invoke sequences without linking a native library.
type FFIRegistry struct {
	libs  map[string]bool
	funcs map[string]FFIFunc
}

func NewFFIRegistry() *FFIRegistry {
	return &FFIRegistry{libs: make(map[string]bool), funcs: make(map[string]FFIFunc)}
}

// LoadDLL implements load_dll: records libPath as loaded and returns a
// handle value (the path itself, since the model doesn't need a numeric
// handle).
func (r *FFIRegistry) LoadDLL(libPath string) Value {
	r.libs[libPath] = true
	return String(libPath)
}

// BindCFunction implements bind_c_function: associates symbolName with
// fn so a later InvokeCFunction can find it. In the reference model fn is
// supplied directly by the test harness; the emitted assembly instead
// resolves symbolName through the target OS's dynamic loader.
func (r *FFIRegistry) BindCFunction(symbolName string, fn FFIFunc) {
	r.funcs[symbolName] = fn
}

// CFunctionNotBound is raised by InvokeCFunction when symbolName was
// never bound.
type CFunctionNotBound struct{ SymbolName string }

func (e CFunctionNotBound) Error() string {
	return fmt.Sprintf("c function %q is not bound", e.SymbolName)
}

// InvokeCFunction implements invoke_c_function.
func (r *FFIRegistry) InvokeCFunction(symbolName string, args []Value) Value {
	fn, ok := r.funcs[symbolName]
	if !ok {
		panic(CFunctionNotBound{SymbolName: symbolName})
	}
	return fn(args)
}
