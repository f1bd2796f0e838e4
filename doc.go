// Package safejson reads loosely structured JSON without failing.
//
// Every getter takes a default and returns it when the requested entry is
// missing, explicitly null, of another type, or when the input text was
// malformed in the first place:
//
//	obj := safejson.Parse(`{"name":"gopher","age":"13","tags":null}`)
//	obj.GetString("name", "")      // "gopher"
//	obj.GetInt("age", 0)           // 13, numeric strings are accepted
//	obj.GetArray("tags").Len()     // 0, null becomes a fresh empty array
//	obj.GetBool("missing", true)   // true
//
// Objects keep their keys in document order. A nil *Object or *Array is the
// JSON null value and is safe to read from.
//
// Navigator walks nested documents one step at a time and decides at each
// step whether a child is better read as an object or as an array:
//
//	nav := safejson.NewNavigator(`{"a":{"b":[1,2]}}`)
//	nav.Next("a").Next("b").Array().LastInt(0) // 2
//
// Data problems never surface as errors or panics. The only panics come from
// Navigator misuse, such as calling Next while it holds an array.
package safejson
