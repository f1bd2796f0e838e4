package safejson

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// MaxDepth bounds how deeply objects and arrays may nest in decoded text.
const MaxDepth = 1000

var (
	errInvalidJSON = errors.New("safejson: invalid JSON")
	errTooDeep     = errors.New("safejson: maximum nesting depth exceeded")
	errNilStream   = errors.New("safejson: nil stream")
)

// KindError reports a decoded value whose kind differs from the one required.
type KindError struct {
	Want Kind
	Got  Kind
}

// Error implements error interface
func (e *KindError) Error() string {
	return fmt.Sprintf("safejson: expected %s, got %s", e.Want, e.Got)
}

type decoder struct {
	dec   *json.Decoder
	depth int
}

// decode turns one complete JSON text into a Value, keeping object keys in
// document order.
func decode(data []byte) (Value, error) {
	if !json.Valid(data) {
		return Value{}, errInvalidJSON
	}
	d := &decoder{dec: json.NewDecoder(bytes.NewReader(data))}
	d.dec.UseNumber()

	tok, err := d.dec.Token()
	if err != nil {
		return Value{}, err
	}
	return d.value(tok)
}

func (d *decoder) next() (any, error) {
	tok, err := d.dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

func (d *decoder) value(tok any) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return d.object()
		case '[':
			return d.array()
		}
		return Value{}, fmt.Errorf("%w: unexpected %q", errInvalidJSON, rune(t))
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return numberValue(string(t))
	case float64:
		return numberValue(strconv.FormatFloat(t, 'g', -1, 64))
	case nil:
		return Null(), nil
	}
	return Value{}, fmt.Errorf("%w: unexpected token %T", errInvalidJSON, tok)
}

func (d *decoder) object() (Value, error) {
	if d.depth++; d.depth > MaxDepth {
		return Value{}, errTooDeep
	}
	defer func() { d.depth-- }()

	obj := NewObject()
	for {
		tok, err := d.next()
		if err != nil {
			return Value{}, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return ObjectValue(obj), nil
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("%w: object key is %T", errInvalidJSON, tok)
		}
		tok, err = d.next()
		if err != nil {
			return Value{}, err
		}
		v, err := d.value(tok)
		if err != nil {
			return Value{}, err
		}
		// Duplicate keys: the last value wins, the first position is kept.
		obj.Put(key, v)
	}
}

func (d *decoder) array() (Value, error) {
	if d.depth++; d.depth > MaxDepth {
		return Value{}, errTooDeep
	}
	defer func() { d.depth-- }()

	arr := NewArray()
	for {
		tok, err := d.next()
		if err != nil {
			return Value{}, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return ArrayValue(arr), nil
		}
		v, err := d.value(tok)
		if err != nil {
			return Value{}, err
		}
		arr.Append(v)
	}
}

// numberValue keeps integral literals as KindInt when they fit in int64 and
// falls back to a float otherwise.
func numberValue(lit string) (Value, error) {
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Int(i), nil
		}
	}
	f, ok := parseFinite(lit)
	if !ok {
		return Value{}, fmt.Errorf("%w: number %s out of range", errInvalidJSON, lit)
	}
	return Float(f), nil
}

func appendValue(dst []byte, v Value) []byte {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(dst, v.b)
	case KindInt:
		return strconv.AppendInt(dst, v.i, 10)
	case KindFloat:
		return append(dst, formatFloat(v.f)...)
	case KindString:
		return appendString(dst, v.s)
	case KindObject:
		return appendObject(dst, v.obj)
	case KindArray:
		return appendArray(dst, v.arr)
	}
	return append(dst, "null"...)
}

func appendObject(dst []byte, o *Object) []byte {
	if o == nil {
		return append(dst, "null"...)
	}
	dst = append(dst, '{')
	for i, key := range o.keys {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendString(dst, key)
		dst = append(dst, ':')
		dst = appendValue(dst, o.values[key])
	}
	return append(dst, '}')
}

func appendArray(dst []byte, a *Array) []byte {
	if a == nil {
		return append(dst, "null"...)
	}
	dst = append(dst, '[')
	for i, v := range a.items {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendValue(dst, v)
	}
	return append(dst, ']')
}

func appendString(dst []byte, s string) []byte {
	quoted, err := json.MarshalNoEscape(s)
	if err != nil {
		return strconv.AppendQuote(dst, s)
	}
	return append(dst, quoted...)
}
