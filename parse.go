package safejson

import (
	"io"
)

// Parse parses text as a JSON object. Malformed text, or text whose
// top-level value is not an object, yields an empty object.
func Parse(text string) *Object {
	return ParseBytes([]byte(text))
}

// ParseBytes is Parse for a byte slice.
func ParseBytes(data []byte) *Object {
	v, err := decode(data)
	if err != nil {
		return NewObject()
	}
	if obj, ok := v.AsObject(); ok {
		return obj
	}
	return NewObject()
}

// ParseArray parses text as a JSON array. Malformed text, or text whose
// top-level value is not an array, yields an empty array.
func ParseArray(text string) *Array {
	return ParseArrayBytes([]byte(text))
}

// ParseArrayBytes is ParseArray for a byte slice.
func ParseArrayBytes(data []byte) *Array {
	v, err := decode(data)
	if err != nil {
		return NewArray()
	}
	if arr, ok := v.AsArray(); ok {
		return arr
	}
	return NewArray()
}

// ParseValue parses text as any JSON value and reports whether it was well formed.
func ParseValue(text string) (Value, bool) {
	v, err := decode([]byte(text))
	if err != nil {
		return Value{}, false
	}
	return v, true
}

// ReadObject reads r to the end and parses it like Parse. Read errors yield
// an empty object. r is closed before ReadObject returns.
func ReadObject(r io.ReadCloser) *Object {
	data, err := readAll(r)
	if err != nil {
		return NewObject()
	}
	return ParseBytes(data)
}

// ReadArray reads r to the end and parses it like ParseArray. Read errors
// yield an empty array. r is closed before ReadArray returns.
func ReadArray(r io.ReadCloser) *Array {
	data, err := readAll(r)
	if err != nil {
		return NewArray()
	}
	return ParseArrayBytes(data)
}

// WriteObject writes the canonical text of o to w and closes w. It reports
// whether both the write and the close succeeded.
func WriteObject(w io.WriteCloser, o *Object) bool {
	return writeText(w, o.String())
}

// WriteArray writes the canonical text of a to w and closes w. It reports
// whether both the write and the close succeeded.
func WriteArray(w io.WriteCloser, a *Array) bool {
	return writeText(w, a.String())
}

func readAll(r io.ReadCloser) (data []byte, err error) {
	if r == nil {
		return nil, errNilStream
	}
	defer func() {
		if cerr := r.Close(); err == nil {
			err = cerr
		}
	}()
	return io.ReadAll(r)
}

func writeText(w io.WriteCloser, text string) bool {
	if w == nil {
		return false
	}
	_, err := io.WriteString(w, text)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err == nil
}
