package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcncl/safejson"
	"github.com/mcncl/safejson/internal/config"
	"github.com/mcncl/safejson/internal/errors"
)

// fieldSource reads one typed field from the navigator's current container.
// Each reader returns def when the field is absent, null or of another kind.
type fieldSource struct {
	str func(def string) string
	i32 func(def int32) int32
	i64 func(def int64) int64
	f64 func(def float64) float64
	b   func(def bool) bool
	obj func(def *safejson.Object) *safejson.Object
	arr func(def *safejson.Array) *safejson.Array
}

func objectSource(o *safejson.Object, key string) fieldSource {
	return fieldSource{
		str: func(def string) string { return o.GetString(key, def) },
		i32: func(def int32) int32 { return o.GetInt(key, def) },
		i64: func(def int64) int64 { return o.GetInt64(key, def) },
		f64: func(def float64) float64 { return o.GetFloat64(key, def) },
		b:   func(def bool) bool { return o.GetBool(key, def) },
		obj: func(def *safejson.Object) *safejson.Object {
			if def == nil {
				return o.GetObject(key)
			}
			return o.GetObjectOr(key, def)
		},
		arr: func(def *safejson.Array) *safejson.Array {
			if def == nil {
				return o.GetArray(key)
			}
			return o.GetArrayOr(key, def)
		},
	}
}

func indexSource(a *safejson.Array, index int) fieldSource {
	return fieldSource{
		str: func(def string) string { return a.GetString(index, def) },
		i32: func(def int32) int32 { return a.GetInt(index, def) },
		i64: func(def int64) int64 { return a.GetInt64(index, def) },
		f64: func(def float64) float64 { return a.GetFloat64(index, def) },
		b:   func(def bool) bool { return a.GetBool(index, def) },
		obj: func(def *safejson.Object) *safejson.Object {
			if def == nil {
				return a.GetObject(index)
			}
			return a.GetObjectOr(index, def)
		},
		arr: func(def *safejson.Array) *safejson.Array {
			if def == nil {
				return a.GetArray(index)
			}
			return a.GetArrayOr(index, def)
		},
	}
}

// firstSource and lastSource back the "first" and "last" locators
func firstSource(a *safejson.Array) fieldSource {
	src := indexSource(a, 0)
	src.str = a.FirstString
	src.i32 = a.FirstInt
	src.i64 = a.FirstInt64
	src.f64 = a.FirstFloat64
	src.b = a.FirstBool
	src.obj = func(def *safejson.Object) *safejson.Object {
		if def == nil {
			def = safejson.NewObject()
		}
		return a.FirstObject(def)
	}
	return src
}

func lastSource(a *safejson.Array) fieldSource {
	src := indexSource(a, a.Len()-1)
	src.str = a.LastString
	src.i32 = a.LastInt
	src.i64 = a.LastInt64
	src.f64 = a.LastFloat64
	src.b = a.LastBool
	src.obj = func(def *safejson.Object) *safejson.Object {
		if def == nil {
			def = safejson.NewObject()
		}
		return a.LastObject(def)
	}
	return src
}

// fieldSourceFor resolves a --field locator against the navigator's state:
// a key in object state, an index (or "first"/"last") in array state
func fieldSourceFor(nav *safejson.Navigator, field string) (fieldSource, error) {
	if nav.IsObject() {
		return objectSource(nav.Object(), field), nil
	}

	arr := nav.Array()
	switch field {
	case "first":
		return firstSource(arr), nil
	case "last":
		return lastSource(arr), nil
	}

	index, err := strconv.Atoi(field)
	if err != nil {
		return fieldSource{}, errors.NewNavigationError(
			fmt.Sprintf("field '%s' is not an index but the current value is an array", field),
			errors.ErrWrongStep,
		)
	}
	return indexSource(arr, index), nil
}

// readField reads field as typ. def is the --default text; when it is nil the
// per-type default from the config is used instead.
func readField(nav *safejson.Navigator, field, typ string, def *string, defaults config.DefaultsConfig) (safejson.Value, error) {
	src, err := fieldSourceFor(nav, field)
	if err != nil {
		return safejson.Null(), err
	}

	switch strings.ToLower(typ) {
	case "", "string":
		d := defaults.String
		if def != nil {
			d = *def
		}
		return safejson.String(src.str(d)), nil

	case "int":
		d := defaults.Int
		if def != nil {
			n, err := strconv.ParseInt(strings.TrimSpace(*def), 10, 32)
			if err != nil {
				return safejson.Null(), invalidDefault(typ, *def)
			}
			d = int32(n)
		}
		return safejson.Int(int64(src.i32(d))), nil

	case "int64":
		d := defaults.Int64
		if def != nil {
			n, err := strconv.ParseInt(strings.TrimSpace(*def), 10, 64)
			if err != nil {
				return safejson.Null(), invalidDefault(typ, *def)
			}
			d = n
		}
		return safejson.Int(src.i64(d)), nil

	case "float":
		d := defaults.Float
		if def != nil {
			f, err := strconv.ParseFloat(strings.TrimSpace(*def), 64)
			if err != nil {
				return safejson.Null(), invalidDefault(typ, *def)
			}
			d = f
		}
		return safejson.Float(src.f64(d)), nil

	case "bool":
		d := defaults.Bool
		if def != nil {
			b, err := strconv.ParseBool(strings.TrimSpace(*def))
			if err != nil {
				return safejson.Null(), invalidDefault(typ, *def)
			}
			d = b
		}
		return safejson.Bool(src.b(d)), nil

	case "object":
		var d *safejson.Object
		if def != nil {
			v, _ := safejson.ParseValue(*def)
			o, ok := v.AsObject()
			if !ok {
				return safejson.Null(), invalidDefault(typ, *def)
			}
			d = o
		}
		return safejson.ObjectValue(src.obj(d)), nil

	case "array":
		var d *safejson.Array
		if def != nil {
			v, _ := safejson.ParseValue(*def)
			a, ok := v.AsArray()
			if !ok {
				return safejson.Null(), invalidDefault(typ, *def)
			}
			d = a
		}
		return safejson.ArrayValue(src.arr(d)), nil

	default:
		return safejson.Null(), errors.NewReadError(fmt.Sprintf("unknown field type '%s'", typ), errors.ErrUnknownType)
	}
}

func invalidDefault(typ, def string) error {
	return errors.NewReadError(fmt.Sprintf("default '%s' is not a valid %s", def, typ), errors.ErrInvalidDefault)
}
