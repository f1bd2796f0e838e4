package safejson

// Array is an ordered JSON array.
//
// A nil *Array stands for JSON null. Every method accepts a nil receiver:
// reads behave as on an empty array and Append is a no-op.
type Array struct {
	items []Value
}

// NewArray creates an array holding values.
func NewArray(values ...Value) *Array {
	items := make([]Value, len(values))
	copy(items, values)
	return &Array{items: items}
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Get returns the element at index and whether the index is in range.
func (a *Array) Get(index int) (Value, bool) {
	if a == nil || index < 0 || index >= len(a.items) {
		return Value{}, false
	}
	return a.items[index], true
}

// IsNull reports whether index is out of range or holds JSON null.
func (a *Array) IsNull(index int) bool {
	v, _ := a.Get(index)
	return v.IsNull()
}

// Append adds values to the end of a and returns a.
func (a *Array) Append(values ...Value) *Array {
	if a == nil {
		return a
	}
	a.items = append(a.items, values...)
	return a
}

// Values returns a copy of the elements.
func (a *Array) Values() []Value {
	if a == nil {
		return []Value{}
	}
	out := make([]Value, len(a.items))
	copy(out, a.items)
	return out
}

// IsEmpty reports whether a is empty. See IsEmptyArray.
func (a *Array) IsEmpty() bool { return IsEmptyArray(a) }

// String returns the canonical compact JSON text; a nil array prints as null.
func (a *Array) String() string { return string(appendArray(nil, a)) }

// MarshalJSON implements json.Marshaler.
func (a *Array) MarshalJSON() ([]byte, error) { return appendArray(nil, a), nil }

// UnmarshalJSON implements json.Unmarshaler. It fails unless data holds a
// JSON array.
func (a *Array) UnmarshalJSON(data []byte) error {
	v, err := decode(data)
	if err != nil {
		return err
	}
	parsed, ok := v.AsArray()
	if !ok {
		return &KindError{Want: KindArray, Got: v.Kind()}
	}
	*a = *parsed
	return nil
}

// IsEmptyArray reports whether a has no elements or its canonical text is
// exactly "[]", "null" or the empty string.
func IsEmptyArray(a *Array) bool {
	if a.Len() == 0 {
		return true
	}
	text := a.String()
	return text == "[]" || text == "null" || text == ""
}
