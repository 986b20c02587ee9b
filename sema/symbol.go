/*
File   : stolac/sema/symbol.go
Package: sema

Symbol and SymbolTable, the semantic analyzer's nested scope chain
(spec.md §3 "Symbol", §4.4). Grounded on go-mix/scope/scope.go's
parent-chain lookup/bind pattern, generalized from a value-carrying
interpreter scope to a symbol-carrying analyzer scope: this package never
holds a runtime.Value, only the static facts the code generator needs
(kind, slot index, arity, nominal type names).
*/
package sema

// Kind classifies what a Symbol names, mirroring spec.md §3's closed set.
type Kind int

const (
	KindGlobal Kind = iota
	KindLocal
	KindFunction
	KindStruct
	KindClass
	KindCFunction
)

func (k Kind) String() string {
	switch k {
	case KindGlobal:
		return "global"
	case KindLocal:
		return "local"
	case KindFunction:
		return "function"
	case KindStruct:
		return "struct"
	case KindClass:
		return "class"
	case KindCFunction:
		return "c_function"
	default:
		return "unknown"
	}
}

// Symbol is one resolved name: spec.md §3's { name, kind, index, arity,
// value_type, return_type, param_types }.
type Symbol struct {
	Name       string
	Kind       Kind
	Index      int
	Arity      int
	ValueType  string
	ReturnType string
	ParamTypes []string
}

// SymbolTable is one lexical scope. Function scopes reset LocalCount;
// block/loop/catch scopes share their enclosing function's local index
// space (spec.md §4.4 "each block/loop/catch introduces a lexical
// sub-scope that shares local indices with its function").
type SymbolTable struct {
	symbols         map[string]*Symbol
	Outer           *SymbolTable
	IsFunctionScope bool
	LocalCount      *int // shared pointer so nested blocks bump the owning function's counter
}

// NewGlobalTable returns the root table with no outer scope.
func NewGlobalTable() *SymbolTable {
	count := 0
	return &SymbolTable{
		symbols:         make(map[string]*Symbol),
		IsFunctionScope: true,
		LocalCount:      &count,
	}
}

// NewFunctionScope returns a child table that resets the local counter —
// used at a function declaration's body.
func NewFunctionScope(outer *SymbolTable) *SymbolTable {
	count := 0
	return &SymbolTable{
		symbols:         make(map[string]*Symbol),
		Outer:           outer,
		IsFunctionScope: true,
		LocalCount:      &count,
	}
}

// NewBlockScope returns a child table that shares the nearest enclosing
// function scope's local counter — used at if/while/loop/for/match/try
// bodies.
func NewBlockScope(outer *SymbolTable) *SymbolTable {
	return &SymbolTable{
		symbols:         make(map[string]*Symbol),
		Outer:           outer,
		IsFunctionScope: false,
		LocalCount:      outer.LocalCount,
	}
}

// Resolve walks outward from this table to the first table defining
// name.
func (t *SymbolTable) Resolve(name string) (*Symbol, bool) {
	if sym, ok := t.symbols[name]; ok {
		return sym, true
	}
	if t.Outer != nil {
		return t.Outer.Resolve(name)
	}
	return nil, false
}

// DefineGlobal registers name in this table with KindGlobal.
func (t *SymbolTable) DefineGlobal(name string) *Symbol {
	sym := &Symbol{Name: name, Kind: KindGlobal}
	t.symbols[name] = sym
	return sym
}

// DefineLocal registers name in this table with KindLocal, assigning the
// next slot index from the owning function's shared counter.
func (t *SymbolTable) DefineLocal(name string) *Symbol {
	idx := *t.LocalCount
	*t.LocalCount++
	sym := &Symbol{Name: name, Kind: KindLocal, Index: idx}
	t.symbols[name] = sym
	return sym
}

// DefineFunction registers name as a function symbol in this table.
func (t *SymbolTable) DefineFunction(name string, arity int, paramTypes []string, returnType string) *Symbol {
	sym := &Symbol{Name: name, Kind: KindFunction, Arity: arity, ParamTypes: paramTypes, ReturnType: returnType}
	t.symbols[name] = sym
	return sym
}

// DefineStruct registers name as a struct symbol, whose arity is its
// field count (spec.md §4.4 "arity equals field count").
func (t *SymbolTable) DefineStruct(name string, fieldCount int) *Symbol {
	sym := &Symbol{Name: name, Kind: KindStruct, Arity: fieldCount}
	t.symbols[name] = sym
	return sym
}

// DefineClass registers name as a class symbol.
func (t *SymbolTable) DefineClass(name string) *Symbol {
	sym := &Symbol{Name: name, Kind: KindClass}
	t.symbols[name] = sym
	return sym
}

// DefineCFunction registers name as an FFI-bound C function symbol.
func (t *SymbolTable) DefineCFunction(name string, paramTypes []string, returnType string) *Symbol {
	sym := &Symbol{Name: name, Kind: KindCFunction, Arity: len(paramTypes), ParamTypes: paramTypes, ReturnType: returnType}
	t.symbols[name] = sym
	return sym
}

// DefineHere registers sym directly in this table under its own name.
// The analyzer does not call it.
func (t *SymbolTable) DefineHere(sym *Symbol) {
	t.symbols[sym.Name] = sym
}

// HasLocal reports whether name is defined directly in this table
// (ignoring outer scopes), used by the struct, c_function, function and
// class declaration handlers to detect a name declared twice in one scope.
func (t *SymbolTable) HasLocal(name string) bool {
	_, ok := t.symbols[name]
	return ok
}
