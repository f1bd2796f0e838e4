package safejson

// Object is a JSON object with keys kept in insertion order.
//
// A nil *Object stands for JSON null. Every method accepts a nil receiver:
// reads behave as on an empty object and Put is a no-op.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns a copy of the keys in native order.
func (o *Object) Keys() []string {
	if o == nil {
		return []string{}
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Get returns the value stored under key and whether the key is present.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present, even when its value is null.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// IsNull reports whether key is absent or holds JSON null.
func (o *Object) IsNull(key string) bool {
	v, _ := o.Get(key)
	return v.IsNull()
}

// Put stores v under key and returns o. An existing key keeps its position.
func (o *Object) Put(key string, v Value) *Object {
	if o == nil {
		return o
	}
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
	return o
}

// IsEmpty reports whether o is empty by its textual form.
// See IsEmptyObject.
func (o *Object) IsEmpty() bool { return IsEmptyObject(o) }

// String returns the canonical compact JSON text; a nil object prints as null.
func (o *Object) String() string { return string(appendObject(nil, o)) }

// MarshalJSON implements json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) { return appendObject(nil, o), nil }

// UnmarshalJSON implements json.Unmarshaler. It fails unless data holds a
// JSON object.
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := decode(data)
	if err != nil {
		return err
	}
	parsed, ok := v.AsObject()
	if !ok {
		return &KindError{Want: KindObject, Got: v.Kind()}
	}
	*o = *parsed
	return nil
}

// IsEmptyObject reports whether o is the null sentinel or its canonical text
// is exactly "{}", "null" or the empty string.
func IsEmptyObject(o *Object) bool {
	if o == nil {
		return true
	}
	text := o.String()
	return text == "{}" || text == "null" || text == ""
}
