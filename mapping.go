package safejson

import (
	"math"
	"reflect"
	"sort"

	"github.com/goccy/go-json"
)

// Entry is one key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value any
}

// Mapping is an ordered list of key/value pairs, the order-preserving
// counterpart of map[string]any.
type Mapping []Entry

// Get returns the value of the first entry named key.
func (m Mapping) Get(key string) (any, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the entry keys in order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}

// ToMapping copies every pair of o into a Mapping in native key order.
// Values are the object's own Value entries, unconverted. Value.Interface
// reports integers as int64 and floats as float64, so a Mapping built from
// Go int, int32 or float32 values comes back widened.
func ToMapping(o *Object) Mapping {
	keys := o.Keys()
	m := make(Mapping, 0, len(keys))
	for _, key := range keys {
		v, _ := o.Get(key)
		m = append(m, Entry{Key: key, Value: v})
	}
	return m
}

// FromMapping builds a new object from m. A value that has no JSON form
// (channels, functions, NaN, types the encoder rejects) is stored as null
// instead of failing the conversion.
func FromMapping(m Mapping) *Object {
	return fromMapping(m, 1)
}

func fromMapping(m Mapping, depth int) *Object {
	obj := NewObject()
	for _, e := range m {
		v, ok := toValue(e.Value, depth)
		if !ok {
			v = Null()
		}
		obj.Put(e.Key, v)
	}
	return obj
}

// FromMap builds a new object from m with keys in sorted order.
func FromMap(m map[string]any) *Object {
	return fromMap(m, 1)
}

func fromMap(m map[string]any, depth int) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mapping := make(Mapping, 0, len(keys))
	for _, k := range keys {
		mapping = append(mapping, Entry{Key: k, Value: m[k]})
	}
	return fromMapping(mapping, depth)
}

// ForEach calls visit once for every pair of o in native key order. The key
// list is captured before the first call, so every key present at that
// point is visited exactly once.
func ForEach(o *Object, visit func(key string, v Value)) {
	for _, key := range o.Keys() {
		v, _ := o.Get(key)
		visit(key, v)
	}
}

// ToMappingList converts every element of a with GetObject and ToMapping.
// An empty array gives an empty list.
func ToMappingList(a *Array) []Mapping {
	out := make([]Mapping, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		out = append(out, ToMapping(a.GetObject(i)))
	}
	return out
}

// toValue converts a host value into a Value, reporting false when the
// value has no JSON representation. depth is the nesting level of the
// container holding x; a container that would nest deeper than MaxDepth is
// rejected, which also stops self-referencing maps and slices.
func toValue(x any, depth int) (Value, bool) {
	switch t := x.(type) {
	case nil:
		return Null(), true
	case Value:
		return t, true
	case *Object:
		return ObjectValue(t), true
	case *Array:
		return ArrayValue(t), true
	case Mapping:
		if depth >= MaxDepth {
			return Value{}, false
		}
		return ObjectValue(fromMapping(t, depth+1)), true
	case map[string]any:
		if depth >= MaxDepth {
			return Value{}, false
		}
		return ObjectValue(fromMap(t, depth+1)), true
	case []any:
		if depth >= MaxDepth {
			return Value{}, false
		}
		arr := NewArray()
		for _, item := range t {
			v, ok := toValue(item, depth+1)
			if !ok {
				v = Null()
			}
			arr.Append(v)
		}
		return ArrayValue(arr), true
	case bool:
		return Bool(t), true
	case string:
		return String(t), true
	case int:
		return Int(int64(t)), true
	case int8:
		return Int(int64(t)), true
	case int16:
		return Int(int64(t)), true
	case int32:
		return Int(int64(t)), true
	case int64:
		return Int(t), true
	case uint:
		return fromUint(uint64(t)), true
	case uint8:
		return Int(int64(t)), true
	case uint16:
		return Int(int64(t)), true
	case uint32:
		return Int(int64(t)), true
	case uint64:
		return fromUint(t), true
	case float32:
		return fromFloat(float64(t))
	case float64:
		return fromFloat(t)
	case json.Number:
		v, err := numberValue(string(t))
		return v, err == nil
	}

	switch reflect.ValueOf(x).Kind() {
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return Value{}, false
	}
	data, err := json.Marshal(x)
	if err != nil {
		return Value{}, false
	}
	v, err := decode(data)
	return v, err == nil
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

func fromFloat(f float64) (Value, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, false
	}
	return Float(f), true
}
