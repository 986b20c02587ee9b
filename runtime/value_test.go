package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stola-lang/stolac/runtime"
)

func TestAdd_StringConcatenationWhenEitherOperandIsString(t *testing.T) {
	got := runtime.Add(runtime.String("x = "), runtime.Int(5))
	assert.Equal(t, runtime.TagString, got.Tag)
	assert.Equal(t, "x = 5", got.Str)

	got = runtime.Add(runtime.Int(5), runtime.String(" apples"))
	assert.Equal(t, "5 apples", got.Str)
}

func TestAdd_IntegerArithmeticPromotesBools(t *testing.T) {
	got := runtime.Add(runtime.Int(1), runtime.Bool(true))
	assert.Equal(t, runtime.Int(2), got)
}

func TestDiv_ByZeroPanics(t *testing.T) {
	assert.PanicsWithValue(t, runtime.DivisionByZero{}, func() {
		runtime.Div(runtime.Int(1), runtime.Int(0))
	})
}

func TestMod_ByZeroPanics(t *testing.T) {
	assert.PanicsWithValue(t, runtime.DivisionByZero{}, func() {
		runtime.Mod(runtime.Int(1), runtime.Int(0))
	})
}

func TestEq_IsTagSensitive(t *testing.T) {
	assert.False(t, runtime.Truthy(runtime.Eq(runtime.Int(1), runtime.Bool(true))))
	assert.True(t, runtime.Truthy(runtime.Eq(runtime.Int(1), runtime.Int(1))))
	assert.True(t, runtime.Truthy(runtime.Eq(runtime.Null(), runtime.Null())))
	assert.False(t, runtime.Truthy(runtime.Eq(runtime.Null(), runtime.Int(0))))
}

func TestTruthy(t *testing.T) {
	assert.False(t, runtime.Truthy(runtime.Null()))
	assert.False(t, runtime.Truthy(runtime.Int(0)))
	assert.False(t, runtime.Truthy(runtime.Bool(false)))
	assert.True(t, runtime.Truthy(runtime.Int(-1)))
	assert.True(t, runtime.Truthy(runtime.String("")))
}

func TestToStringToNumberRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, 123456789} {
		s := runtime.ToString(runtime.Int(n))
		back := runtime.ToNumber(s)
		require.Equal(t, runtime.TagInt, back.Tag)
		assert.Equal(t, n, back.Int, "round trip for %d", n)
	}
}

func TestArraySet_GrowsPastCurrentLength(t *testing.T) {
	a := runtime.NewArray()
	a.Push(runtime.Int(1))
	require.Equal(t, 1, a.Len())

	a.Set(5, runtime.Int(99))
	assert.Equal(t, 6, a.Len())
	assert.Equal(t, runtime.Int(99), a.Get(5))
	// the gap is filled with null, not garbage
	assert.Equal(t, runtime.Null(), a.Get(3))
}

func TestArray_PushPopShiftUnshift(t *testing.T) {
	a := runtime.NewArray()
	a.Push(runtime.Int(1))
	a.Push(runtime.Int(2))
	a.Unshift(runtime.Int(0))
	assert.Equal(t, runtime.Int(0), a.Get(0))
	assert.Equal(t, runtime.Int(0), a.Shift())
	assert.Equal(t, runtime.Int(2), a.Pop())
	assert.Equal(t, 1, a.Len())
}

func TestDict_PreservesInsertionOrder(t *testing.T) {
	d := runtime.NewDict()
	d.Set("z", runtime.Int(1))
	d.Set("a", runtime.Int(2))
	d.Set("m", runtime.Int(3))
	assert.Equal(t, []string{"z", "a", "m"}, d.Keys())
}

func TestDict_GrowsAndStillFindsAllKeys(t *testing.T) {
	d := runtime.NewDict()
	for i := 0; i < 100; i++ {
		d.Set(string(rune('a'+(i%26)))+string(rune('0'+(i/26))), runtime.Int(int64(i)))
	}
	assert.Equal(t, 100, d.Len())
}

func TestJSONRoundTrip(t *testing.T) {
	arr := runtime.NewArray()
	arr.Push(runtime.Int(1))
	arr.Push(runtime.String("two"))
	arr.Push(runtime.Bool(true))

	d := runtime.NewDict()
	d.Set("nested", runtime.ArrayValue(arr))
	d.Set("flag", runtime.Null())

	encoded, err := runtime.EncodeJSON(runtime.DictValue(d))
	require.NoError(t, err)

	decoded, err := runtime.DecodeJSON(encoded.Str)
	require.NoError(t, err)
	require.Equal(t, runtime.TagDict, decoded.Tag)

	nested := decoded.Dict.Get("nested")
	require.Equal(t, runtime.TagArray, nested.Tag)
	assert.Equal(t, 3, nested.Arr.Len())
	assert.Equal(t, runtime.Int(1), nested.Arr.Get(0))
	assert.Equal(t, runtime.String("two"), nested.Arr.Get(1))
	assert.True(t, runtime.Truthy(runtime.Eq(nested.Arr.Get(2), runtime.Bool(true))))
}

func TestStruct_GetSet(t *testing.T) {
	s := runtime.NewStruct("Point", []string{"x", "y"})
	assert.Equal(t, runtime.Null(), s.Get("x"))
	s.Set("x", runtime.Int(3))
	assert.Equal(t, runtime.Int(3), s.Get("x"))
}

func TestMethodRegistry_RegisterAndInvoke(t *testing.T) {
	r := runtime.NewMethodRegistry()
	r.Register("Point", "sum", func(this runtime.Value, args []runtime.Value) runtime.Value {
		return runtime.Add(this.Struct.Get("x"), this.Struct.Get("y"))
	})
	p := runtime.NewStruct("Point", []string{"x", "y"})
	p.Set("x", runtime.Int(2))
	p.Set("y", runtime.Int(3))
	got := r.Invoke(runtime.StructValue(p), "sum", nil)
	assert.Equal(t, runtime.Int(5), got)
}

func TestMethodRegistry_UnregisteredMethodPanics(t *testing.T) {
	r := runtime.NewMethodRegistry()
	p := runtime.NewStruct("Point", nil)
	assert.Panics(t, func() {
		r.Invoke(runtime.StructValue(p), "missing", nil)
	})
}

func TestFFIRegistry_BindAndInvoke(t *testing.T) {
	r := runtime.NewFFIRegistry()
	r.LoadDLL("libm.so")
	r.BindCFunction("sqrt", func(args []runtime.Value) runtime.Value {
		return runtime.Int(int64(args[0].Int))
	})
	got := r.InvokeCFunction("sqrt", []runtime.Value{runtime.Int(4)})
	assert.Equal(t, runtime.Int(4), got)
}

func TestTryStack_PushPopAndThrowRecover(t *testing.T) {
	ts := runtime.NewTryStack()
	ts.PushTry()
	require.Equal(t, 1, ts.Depth())

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			thrown, ok := r.(runtime.Thrown)
			require.True(t, ok)
			assert.Equal(t, runtime.String("boom"), thrown.Value)
		}()
		ts.Throw(runtime.String("boom"))
	}()

	assert.Equal(t, runtime.String("boom"), ts.GetError())
	ts.PopTry()
	assert.Equal(t, 0, ts.Depth())
}

func TestBuiltinLookup(t *testing.T) {
	arity, ok := runtime.Lookup(runtime.HostedBuiltins, "add")
	require.True(t, ok)
	assert.Equal(t, 2, arity)

	_, ok = runtime.Lookup(runtime.HostedBuiltins, "memory_read")
	assert.False(t, ok, "freestanding-only builtins must not leak into the hosted table")

	arity, ok = runtime.Lookup(runtime.FreestandingBuiltins, "memory_read")
	require.True(t, ok)
	assert.Equal(t, 1, arity)
}
