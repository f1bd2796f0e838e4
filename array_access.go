package safejson

// GetString returns the string at index, or def.
func (a *Array) GetString(index int, def string) string {
	v, ok := a.Get(index)
	return project(v, ok, Value.AsString, def)
}

// GetInt returns the 32-bit integer at index, or def.
func (a *Array) GetInt(index int, def int32) int32 {
	v, ok := a.Get(index)
	return project(v, ok, Value.AsInt32, def)
}

// GetInt64 returns the 64-bit integer at index, or def.
func (a *Array) GetInt64(index int, def int64) int64 {
	v, ok := a.Get(index)
	return project(v, ok, Value.AsInt64, def)
}

// GetFloat64 returns the float at index, or def.
func (a *Array) GetFloat64(index int, def float64) float64 {
	v, ok := a.Get(index)
	return project(v, ok, Value.AsFloat64, def)
}

// GetBool returns the boolean at index, or def.
func (a *Array) GetBool(index int, def bool) bool {
	v, ok := a.Get(index)
	return project(v, ok, Value.AsBool, def)
}

// GetObject returns the object at index, or a new empty object.
func (a *Array) GetObject(index int) *Object {
	return a.GetObjectOr(index, NewObject())
}

// GetObjectOr returns the object at index, or def.
func (a *Array) GetObjectOr(index int, def *Object) *Object {
	v, ok := a.Get(index)
	return project(v, ok, Value.AsObject, def)
}

// GetArray returns the array at index, or a new empty array.
func (a *Array) GetArray(index int) *Array {
	return a.GetArrayOr(index, NewArray())
}

// GetArrayOr returns the array at index, or def.
func (a *Array) GetArrayOr(index int, def *Array) *Array {
	v, ok := a.Get(index)
	return project(v, ok, Value.AsArray, def)
}

// Objects returns every element read with GetObject, so elements that are
// not objects come back as empty objects.
func (a *Array) Objects() []*Object {
	out := make([]*Object, a.Len())
	for i := range out {
		out[i] = a.GetObject(i)
	}
	return out
}

// last returns the index of the final element.
func (a *Array) last() int { return a.Len() - 1 }

// FirstString returns the string at index 0, or def when a is empty.
func (a *Array) FirstString(def string) string {
	if a.IsEmpty() {
		return def
	}
	return a.GetString(0, def)
}

// FirstInt returns the 32-bit integer at index 0, or def when a is empty.
func (a *Array) FirstInt(def int32) int32 {
	if a.IsEmpty() {
		return def
	}
	return a.GetInt(0, def)
}

// FirstInt64 returns the 64-bit integer at index 0, or def when a is empty.
func (a *Array) FirstInt64(def int64) int64 {
	if a.IsEmpty() {
		return def
	}
	return a.GetInt64(0, def)
}

// FirstFloat64 returns the float at index 0, or def when a is empty.
func (a *Array) FirstFloat64(def float64) float64 {
	if a.IsEmpty() {
		return def
	}
	return a.GetFloat64(0, def)
}

// FirstBool returns the boolean at index 0, or def when a is empty.
func (a *Array) FirstBool(def bool) bool {
	if a.IsEmpty() {
		return def
	}
	return a.GetBool(0, def)
}

// FirstObject returns def when a is empty and GetObject(0) otherwise.
func (a *Array) FirstObject(def *Object) *Object {
	if a.IsEmpty() {
		return def
	}
	return a.GetObject(0)
}

// LastString returns the string at the final index, or def when a is empty.
func (a *Array) LastString(def string) string {
	if a.IsEmpty() {
		return def
	}
	return a.GetString(a.last(), def)
}

// LastInt returns the 32-bit integer at the final index, or def when a is empty.
func (a *Array) LastInt(def int32) int32 {
	if a.IsEmpty() {
		return def
	}
	return a.GetInt(a.last(), def)
}

// LastInt64 returns the 64-bit integer at the final index, or def when a is empty.
func (a *Array) LastInt64(def int64) int64 {
	if a.IsEmpty() {
		return def
	}
	return a.GetInt64(a.last(), def)
}

// LastFloat64 returns the float at the final index, or def when a is empty.
func (a *Array) LastFloat64(def float64) float64 {
	if a.IsEmpty() {
		return def
	}
	return a.GetFloat64(a.last(), def)
}

// LastBool returns the boolean at the final index, or def when a is empty.
func (a *Array) LastBool(def bool) bool {
	if a.IsEmpty() {
		return def
	}
	return a.GetBool(a.last(), def)
}

// LastObject returns def when a is empty and GetObject at the final index otherwise.
func (a *Array) LastObject(def *Object) *Object {
	if a.IsEmpty() {
		return def
	}
	return a.GetObject(a.last())
}
