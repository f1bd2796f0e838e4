package safejson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stateErrorOf runs fn and returns the *StateError it panics with.
func stateErrorOf(t *testing.T, fn func()) (stateErr *StateError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		require.True(t, errors.Is(err, ErrWrongState))
		require.ErrorAs(t, err, &stateErr)
	}()
	fn()
	return nil
}

func TestNavigator_ObjectThenArrayThenObject(t *testing.T) {
	nav := NewNavigator(`{"a": {"b": [1, 2]}}`)
	require.True(t, nav.IsObject())

	nav.Next("a")
	require.True(t, nav.IsObject())
	assert.Equal(t, `{"b":[1,2]}`, nav.Object().String())

	nav.Next("b")
	require.True(t, nav.IsArray())
	assert.Equal(t, "[1,2]", nav.Array().String())

	// Element 1 is not an array, so the navigator flips to object state with
	// an empty object.
	nav.NextIndex(0)
	require.True(t, nav.IsObject())
	assert.Equal(t, "{}", nav.Object().String())
}

func TestNavigator_Chaining(t *testing.T) {
	doc := `{"data": {"rows": [[10, 20], [30, 40]], "meta": {"total": 4}}}`

	total := NewNavigator(doc).Next("data").Next("meta").Object().GetInt("total", 0)
	assert.Equal(t, int32(4), total)

	row := NewNavigator(doc).Next("data").Next("rows").NextIndex(1).Array()
	assert.Equal(t, int32(40), row.LastInt(0))
}

func TestNavigator_ArrayRoot(t *testing.T) {
	nav := NewNavigator(`  [{"id": 1}, [5, 6]]`)
	require.True(t, nav.IsArray())

	assert.Equal(t, int32(6), NewNavigator(`[{"id": 1}, [5, 6]]`).NextIndex(1).Array().LastInt(0))

	nav.NextIndex(0)
	require.True(t, nav.IsObject())
	assert.Equal(t, int32(1), nav.Object().GetInt("id", 0))
}

func TestNavigator_ConstructionFromText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantState State
		wantText  string
	}{
		{"object", `{"a":1}`, StateObject, `{"a":1}`},
		{"object with leading space", "\n\t {\"a\":1}", StateObject, `{"a":1}`},
		{"broken object", `{"a":`, StateObject, `{}`},
		{"array", `[1]`, StateArray, `[1]`},
		{"blank", "", StateArray, `[]`},
		{"garbage", "nonsense", StateArray, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator(tt.text)
			assert.Equal(t, tt.wantState, nav.State())
			assert.Equal(t, tt.wantText, nav.Value().String())
		})
	}
}

func TestNavigator_FromValues(t *testing.T) {
	obj := Parse(`{"k": [1]}`)
	nav := NavigateObject(obj)
	assert.Same(t, obj, nav.Object())

	arr := ParseArray(`[[1]]`)
	nav = NavigateArray(arr)
	assert.Same(t, arr, nav.Array())

	assert.Equal(t, "{}", NavigateObject(nil).Object().String())
	assert.Equal(t, "[]", NavigateArray(nil).Array().String())
}

func TestNavigator_EmptyOrMissingChildFallsBackToArray(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"missing key", "missing", "[]"},
		{"empty object", "empty", "[]"},
		{"null", "nothing", "[]"},
		{"scalar", "scalar", "[]"},
		{"array", "list", "[1,2]"},
		{"empty array", "none", "[]"},
	}

	doc := `{"empty": {}, "nothing": null, "scalar": 3, "list": [1, 2], "none": []}`
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator(doc).Next(tt.key)
			require.True(t, nav.IsArray())
			assert.Equal(t, tt.want, nav.Array().String())
		})
	}
}

func TestNavigator_IndexFallsBackToObject(t *testing.T) {
	doc := `[[], {"a": 1}, 7, null, [[2]]]`

	nav := NewNavigator(doc).NextIndex(0)
	assert.True(t, nav.IsObject())
	assert.Equal(t, "{}", nav.Object().String())

	nav = NewNavigator(doc).NextIndex(1)
	assert.Equal(t, `{"a":1}`, nav.Object().String())

	nav = NewNavigator(doc).NextIndex(99)
	assert.True(t, nav.IsObject())

	nav = NewNavigator(doc).NextIndex(4).NextIndex(0)
	assert.True(t, nav.IsArray())
	assert.Equal(t, "[2]", nav.Array().String())
}

func TestNavigator_Misuse(t *testing.T) {
	objNav := NewNavigator(`{"a": 1}`)
	arrNav := NewNavigator(`[1]`)

	err := stateErrorOf(t, func() { objNav.NextIndex(0) })
	assert.Equal(t, "NextIndex", err.Op)
	assert.Equal(t, StateObject, err.State)

	err = stateErrorOf(t, func() { arrNav.Next("a") })
	assert.Equal(t, "Next", err.Op)
	assert.Equal(t, StateArray, err.State)

	err = stateErrorOf(t, func() { objNav.Array() })
	assert.Equal(t, "Array", err.Op)

	err = stateErrorOf(t, func() { arrNav.Object() })
	assert.Equal(t, "Object", err.Op)
	assert.Contains(t, err.Error(), "array")
}

func TestNavigator_Lookup(t *testing.T) {
	nav := NewNavigator(`{"a": [1]}`)

	obj, ok := nav.LookupObject()
	assert.True(t, ok)
	assert.NotNil(t, obj)
	_, ok = nav.LookupArray()
	assert.False(t, ok)

	nav.Next("a")
	arr, ok := nav.LookupArray()
	assert.True(t, ok)
	assert.Equal(t, 1, arr.Len())
	_, ok = nav.LookupObject()
	assert.False(t, ok)
}

func TestNavigator_ZeroValue(t *testing.T) {
	var nav Navigator

	assert.True(t, nav.IsObject())
	assert.Equal(t, "{}", nav.Object().String())
	assert.True(t, nav.Next("x").IsArray())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "object", StateObject.String())
	assert.Equal(t, "array", StateArray.String())
}
