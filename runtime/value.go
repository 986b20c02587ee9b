/*
File   : stolac/runtime/value.go
Package: runtime

Package runtime is the Go-side reference model of the tagged value
semantics the emitted assembly's C runtime (runtime/cruntime) implements
at native speed (spec.md §3 "Runtime value", §4.6). It exists so the
arithmetic/comparison/collection rules spec.md pins down — string
concatenation coercion, tag-sensitive equality, array growth-on-set,
division-by-zero aborting — are independently testable in Go instead of
only describable in prose, and so the semantic analyzer and code
generator have one shared, importable source of truth for the closed
built-in list (builtins.go) and nominal type names.

Values here are never freed: like the original "language heap", once
constructed a Value lives until the reference model itself is garbage
collected by the Go runtime — this package does not attempt to simulate
the emitted program's intentional leak-until-exit policy, since Go
already reclaims memory the compiler itself doesn't need anymore.
*/
package runtime

import (
	"fmt"
	"strconv"
)

// Tag is the runtime type tag carried alongside every Value, mirroring
// the eight kinds spec.md §3 names.
type Tag int

const (
	TagInt Tag = iota
	TagBool
	TagString
	TagArray
	TagDict
	TagStruct
	TagFunction
	TagNull
)

func (t Tag) String() string {
	switch t {
	case TagInt:
		return "int"
	case TagBool:
		return "bool"
	case TagString:
		return "string"
	case TagArray:
		return "array"
	case TagDict:
		return "dict"
	case TagStruct:
		return "struct"
	case TagFunction:
		return "function"
	case TagNull:
		return "null"
	default:
		return "unknown"
	}
}

// Value is a single tagged runtime value. Only one of the payload fields
// is meaningful for a given Tag; the rest are left zero. This mirrors the
// original's tagged union, but as a Go struct rather than raw bytes —
// there is no payload-size pressure on this side, the emitted assembly's
// heap representation is what spec.md §4.6's 16-byte cell actually
// describes.
type Value struct {
	Tag    Tag
	Int    int64
	Bool   bool
	Str    string
	Arr    *Array
	Dict   *Dict
	Struct *StructVal
	Fn     *FunctionVal
}

// FunctionVal is the runtime representation of a first-class function
// value (closures are not supported; spec.md's functions are named and
// module-level, so a FunctionVal only needs a name to resolve a call
// site through the method/FFI registries or a direct label).
type FunctionVal struct {
	Name string
}

func Int(n int64) Value        { return Value{Tag: TagInt, Int: n} }
func Bool(b bool) Value        { return Value{Tag: TagBool, Bool: b} }
func String(s string) Value    { return Value{Tag: TagString, Str: s} }
func Null() Value              { return Value{Tag: TagNull} }
func Function(name string) Value {
	return Value{Tag: TagFunction, Fn: &FunctionVal{Name: name}}
}
func ArrayValue(a *Array) Value      { return Value{Tag: TagArray, Arr: a} }
func DictValue(d *Dict) Value        { return Value{Tag: TagDict, Dict: d} }
func StructValue(s *StructVal) Value { return Value{Tag: TagStruct, Struct: s} }

// asInt coerces a value to its arithmetic integer form: ints pass through,
// bools promote to 0/1, every other tag reads as 0. Strings are handled
// separately by callers (Add) since string participation changes the
// operator's entire behavior rather than just its operand coercion.
func asInt(v Value) int64 {
	switch v.Tag {
	case TagInt:
		return v.Int
	case TagBool:
		if v.Bool {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Add implements the add built-in. If either operand is a string, the
// result is the string concatenation of both operands' ToDisplayString
// form (spec.md §4.6 "add does string concatenation if either operand is
// of string kind"); otherwise both operands are coerced via asInt and
// summed.
func Add(a, b Value) Value {
	if a.Tag == TagString || b.Tag == TagString {
		return String(ToDisplayString(a) + ToDisplayString(b))
	}
	return Int(asInt(a) + asInt(b))
}

func Sub(a, b Value) Value { return Int(asInt(a) - asInt(b)) }
func Mul(a, b Value) Value { return Int(asInt(a) * asInt(b)) }

// Div implements the div built-in. Division by zero aborts the program
// rather than returning a sentinel value or raising a catchable
// exception (spec.md §8 "division by zero aborts"); DivisionByZero is the
// panic value a caller embedding this package should recover and map to
// the process's abort path.
type DivisionByZero struct{}

func (DivisionByZero) Error() string { return "division by zero" }

func Div(a, b Value) Value {
	d := asInt(b)
	if d == 0 {
		panic(DivisionByZero{})
	}
	return Int(asInt(a) / d)
}

func Mod(a, b Value) Value {
	d := asInt(b)
	if d == 0 {
		panic(DivisionByZero{})
	}
	return Int(asInt(a) % d)
}

func Neg(a Value) Value { return Int(-asInt(a)) }

// Truthy implements the language's truthiness rule: null and the integer
// 0 and boolean false are falsy, everything else (including the empty
// string and empty array) is truthy. Only int/bool/null participate in
// the zero-check; other tags are unconditionally truthy.
func Truthy(v Value) bool {
	switch v.Tag {
	case TagNull:
		return false
	case TagBool:
		return v.Bool
	case TagInt:
		return v.Int != 0
	default:
		return true
	}
}

func And(a, b Value) Value { return Bool(Truthy(a) && Truthy(b)) }
func Or(a, b Value) Value  { return Bool(Truthy(a) || Truthy(b)) }
func Not(a Value) Value    { return Bool(!Truthy(a)) }

// Eq implements tag-sensitive equality (spec.md §8 "eq is tag-sensitive"):
// values of different tags are never equal, even when their coerced
// numeric forms would match (Int(1) != Bool(true)). Arrays and dicts
// compare by identity of their underlying storage, matching the
// reference-semantics the original's heap pointers give for free.
func Eq(a, b Value) Value {
	if a.Tag != b.Tag {
		return Bool(false)
	}
	switch a.Tag {
	case TagInt:
		return Bool(a.Int == b.Int)
	case TagBool:
		return Bool(a.Bool == b.Bool)
	case TagString:
		return Bool(a.Str == b.Str)
	case TagNull:
		return Bool(true)
	case TagArray:
		return Bool(a.Arr == b.Arr)
	case TagDict:
		return Bool(a.Dict == b.Dict)
	case TagStruct:
		return Bool(a.Struct == b.Struct)
	case TagFunction:
		return Bool(a.Fn.Name == b.Fn.Name)
	default:
		return Bool(false)
	}
}

func Lt(a, b Value) Value {
	if a.Tag == TagString && b.Tag == TagString {
		return Bool(a.Str < b.Str)
	}
	return Bool(asInt(a) < asInt(b))
}
func Gt(a, b Value) Value { return Lt(b, a) }
func Le(a, b Value) Value { return Bool(!Lt(b, a).Bool) }
func Ge(a, b Value) Value { return Bool(!Lt(a, b).Bool) }

// ToDisplayString renders a value the way print_value and string
// concatenation do: ints as decimal, bools as "true"/"false", null as
// "null", strings verbatim, and collections/structs/functions as a
// bracketed tag placeholder (their contents are not recursively
// stringified by the runtime; stdlib code walks them explicitly).
func ToDisplayString(v Value) string {
	switch v.Tag {
	case TagInt:
		return strconv.FormatInt(v.Int, 10)
	case TagBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case TagString:
		return v.Str
	case TagNull:
		return "null"
	case TagArray:
		return fmt.Sprintf("[array:%d]", v.Arr.Len())
	case TagDict:
		return fmt.Sprintf("[dict:%d]", v.Dict.Len())
	case TagStruct:
		return fmt.Sprintf("[struct:%s]", v.Struct.TypeName)
	case TagFunction:
		return fmt.Sprintf("[function:%s]", v.Fn.Name)
	default:
		return "?"
	}
}

// ToString implements the to_string built-in: identical to
// ToDisplayString for every tag except it is the one analyzer/codegen
// reach for by name, kept separate so callers that only want the
// built-in's documented name don't have to know it aliases the display
// formatter.
func ToString(v Value) Value { return String(ToDisplayString(v)) }

// ToNumber implements to_number: parses a string as a base-10 integer,
// passes ints through, promotes bools to 0/1, and yields 0 for anything
// else (arrays, dicts, structs, functions, null) rather than erroring —
// spec.md §8 only pins down the to_string(to_number(n)) == n round trip
// for well-formed numeric strings, so malformed input degrading to 0
// instead of raising is this model's Open Question resolution, consistent
// with the rest of the runtime's abort-only (not exception-only) error
// posture for built-ins.
func ToNumber(v Value) Value {
	switch v.Tag {
	case TagInt:
		return v
	case TagBool:
		return Int(asInt(v))
	case TagString:
		n, err := strconv.ParseInt(v.Str, 10, 64)
		if err != nil {
			return Int(0)
		}
		return Int(n)
	default:
		return Int(0)
	}
}
