package safejson

// The getters below never panic and never fail: a missing key, an explicit
// null or a value that does not project to the requested type all return
// the supplied default.

// project applies as to v when found, falling back to def.
func project[T any](v Value, found bool, as func(Value) (T, bool), def T) T {
	if !found {
		return def
	}
	if out, ok := as(v); ok {
		return out
	}
	return def
}

// GetString returns the string under key, or def.
func (o *Object) GetString(key, def string) string {
	v, ok := o.Get(key)
	return project(v, ok, Value.AsString, def)
}

// GetInt returns the 32-bit integer under key, or def.
func (o *Object) GetInt(key string, def int32) int32 {
	v, ok := o.Get(key)
	return project(v, ok, Value.AsInt32, def)
}

// GetInt64 returns the 64-bit integer under key, or def.
func (o *Object) GetInt64(key string, def int64) int64 {
	v, ok := o.Get(key)
	return project(v, ok, Value.AsInt64, def)
}

// GetFloat64 returns the float under key, or def.
func (o *Object) GetFloat64(key string, def float64) float64 {
	v, ok := o.Get(key)
	return project(v, ok, Value.AsFloat64, def)
}

// GetBool returns the boolean under key, or def.
func (o *Object) GetBool(key string, def bool) bool {
	v, ok := o.Get(key)
	return project(v, ok, Value.AsBool, def)
}

// GetObject returns the object under key, or a new empty object.
func (o *Object) GetObject(key string) *Object {
	return o.GetObjectOr(key, NewObject())
}

// GetObjectOr returns the object under key, or def.
func (o *Object) GetObjectOr(key string, def *Object) *Object {
	v, ok := o.Get(key)
	return project(v, ok, Value.AsObject, def)
}

// GetArray returns the array under key, or a new empty array.
func (o *Object) GetArray(key string) *Array {
	return o.GetArrayOr(key, NewArray())
}

// GetArrayOr returns the array under key, or def.
func (o *Object) GetArrayOr(key string, def *Array) *Array {
	v, ok := o.Get(key)
	return project(v, ok, Value.AsArray, def)
}

// GetObjects returns the elements of the array under key, each read with
// GetObject. A missing or mistyped array gives an empty slice.
func (o *Object) GetObjects(key string) []*Object {
	return o.GetArray(key).Objects()
}
