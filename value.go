package safejson

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the JSON type held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindObject
	KindArray
)

// String returns the JSON name of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a single JSON value. The zero Value is JSON null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	obj  *Object
	arr  *Array
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a float. NaN and the infinities have no JSON form and become null.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{kind: KindFloat, f: f}
}

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// ObjectValue wraps an object. A nil object becomes null.
func ObjectValue(o *Object) Value {
	if o == nil {
		return Value{}
	}
	return Value{kind: KindObject, obj: o}
}

// ArrayValue wraps an array. A nil array becomes null.
func ArrayValue(a *Array) Value {
	if a == nil {
		return Value{}
	}
	return Value{kind: KindArray, arr: a}
}

// Kind reports the JSON type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString projects v to a string. Strings are returned as-is; booleans and
// numbers are rendered as their JSON text. Objects and arrays do not
// project; use their String method for the JSON text.
func (v Value) AsString() (string, bool) {
	switch v.kind {
	case KindString:
		return v.s, true
	case KindBool:
		return strconv.FormatBool(v.b), true
	case KindInt:
		return strconv.FormatInt(v.i, 10), true
	case KindFloat:
		return formatFloat(v.f), true
	}
	return "", false
}

// AsInt64 projects v to a 64-bit integer. Floats are truncated toward zero
// and numeric strings are parsed; values outside the int64 range fail.
func (v Value) AsInt64() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		return truncFloat(v.f)
	case KindString:
		s := strings.TrimSpace(v.s)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		f, ok := parseFinite(s)
		if !ok {
			return 0, false
		}
		return truncFloat(f)
	}
	return 0, false
}

// AsInt32 projects v like AsInt64 and then requires the result to fit in 32 bits.
func (v Value) AsInt32() (int32, bool) {
	i, ok := v.AsInt64()
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, false
	}
	return int32(i), true
}

// AsFloat64 projects v to a float. Integers are widened and numeric strings parsed.
func (v Value) AsFloat64() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	case KindString:
		return parseFinite(strings.TrimSpace(v.s))
	}
	return 0, false
}

// AsBool projects v to a boolean. The strings "true" and "false" are
// accepted regardless of case.
func (v Value) AsBool() (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.b, true
	case KindString:
		switch {
		case strings.EqualFold(v.s, "true"):
			return true, true
		case strings.EqualFold(v.s, "false"):
			return false, true
		}
	}
	return false, false
}

// AsObject returns the object held by v.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// AsArray returns the array held by v.
func (v Value) AsArray() (*Array, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// Interface returns v as a plain Go value: nil, bool, int64, float64,
// string, *Object or *Array.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindObject:
		return v.obj
	case KindArray:
		return v.arr
	}
	return nil
}

// String returns the canonical JSON text of v.
func (v Value) String() string { return string(appendValue(nil, v)) }

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) { return appendValue(nil, v), nil }

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := decode(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func truncFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	// 2^63 is exactly representable; anything at or above it overflows.
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, false
	}
	return int64(t), true
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func formatFloat(f float64) string {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.FormatFloat(f, format, -1, 64)
}
