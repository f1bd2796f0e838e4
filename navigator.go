package safejson

import (
	"errors"
	"fmt"
	"strings"
)

// ErrWrongState is matched by the panic value raised when a Navigator is
// stepped or read in a state that does not support the operation.
var ErrWrongState = errors.New("safejson: navigator in wrong state")

// State is the kind of container a Navigator currently holds.
type State int

const (
	StateObject State = iota
	StateArray
)

// String returns "object" or "array".
func (s State) String() string {
	if s == StateArray {
		return "array"
	}
	return "object"
}

// StateError describes a Navigator misuse. It is raised with panic because
// it signals a caller bug rather than bad data.
type StateError struct {
	Op    string
	State State
}

// Error implements error interface
func (e *StateError) Error() string {
	return fmt.Sprintf("safejson: %s called while navigator holds an %s", e.Op, e.State)
}

// Unwrap returns ErrWrongState.
func (e *StateError) Unwrap() error { return ErrWrongState }

// cursor is either an objectCursor or an arrayCursor.
type cursor interface {
	state() State
}

type objectCursor struct{ obj *Object }

func (objectCursor) state() State { return StateObject }

type arrayCursor struct{ arr *Array }

func (arrayCursor) state() State { return StateArray }

// Navigator descends into nested JSON one key or index at a time. At each
// step it decides whether the child is better read as an object or as an
// array, so callers do not need to know which shape a key holds.
//
// The zero Navigator holds an empty object.
type Navigator struct {
	cur cursor
}

// NewNavigator parses text and starts at its root: text whose first
// non-space character is '{' is parsed as an object, anything else as an array.
func NewNavigator(text string) *Navigator {
	if strings.HasPrefix(strings.TrimSpace(text), "{") {
		return NavigateObject(Parse(text))
	}
	return NavigateArray(ParseArray(text))
}

// NavigateObject starts a Navigator at o. A nil object is replaced by an empty one.
func NavigateObject(o *Object) *Navigator {
	if o == nil {
		o = NewObject()
	}
	return &Navigator{cur: objectCursor{obj: o}}
}

// NavigateArray starts a Navigator at a. A nil array is replaced by an empty one.
func NavigateArray(a *Array) *Navigator {
	if a == nil {
		a = NewArray()
	}
	return &Navigator{cur: arrayCursor{arr: a}}
}

func (n *Navigator) current() cursor {
	if n.cur == nil {
		n.cur = objectCursor{obj: NewObject()}
	}
	return n.cur
}

// State reports which container the navigator holds.
func (n *Navigator) State() State { return n.current().state() }

// IsObject reports whether the navigator holds an object.
func (n *Navigator) IsObject() bool { return n.State() == StateObject }

// IsArray reports whether the navigator holds an array.
func (n *Navigator) IsArray() bool { return n.State() == StateArray }

// Next moves to the child under key. If that child is not a non-empty
// object, the navigator switches to the child read as an array (empty when
// the key holds neither). Next panics with a *StateError when the navigator
// holds an array.
func (n *Navigator) Next(key string) *Navigator {
	c, ok := n.current().(objectCursor)
	if !ok {
		panic(&StateError{Op: "Next", State: n.State()})
	}
	if child := c.obj.GetObject(key); !IsEmptyObject(child) {
		n.cur = objectCursor{obj: child}
	} else {
		n.cur = arrayCursor{arr: c.obj.GetArray(key)}
	}
	return n
}

// NextIndex moves to the element at index. If that element is not a
// non-empty array, the navigator switches to the element read as an object
// (empty when it holds neither). NextIndex panics with a *StateError when
// the navigator holds an object.
func (n *Navigator) NextIndex(index int) *Navigator {
	c, ok := n.current().(arrayCursor)
	if !ok {
		panic(&StateError{Op: "NextIndex", State: n.State()})
	}
	if child := c.arr.GetArray(index); !IsEmptyArray(child) {
		n.cur = arrayCursor{arr: child}
	} else {
		n.cur = objectCursor{obj: c.arr.GetObject(index)}
	}
	return n
}

// Object returns the current object. It panics with a *StateError when the
// navigator holds an array.
func (n *Navigator) Object() *Object {
	obj, ok := n.LookupObject()
	if !ok {
		panic(&StateError{Op: "Object", State: n.State()})
	}
	return obj
}

// Array returns the current array. It panics with a *StateError when the
// navigator holds an object.
func (n *Navigator) Array() *Array {
	arr, ok := n.LookupArray()
	if !ok {
		panic(&StateError{Op: "Array", State: n.State()})
	}
	return arr
}

// LookupObject returns the current object and true, or nil and false when
// the navigator holds an array.
func (n *Navigator) LookupObject() (*Object, bool) {
	c, ok := n.current().(objectCursor)
	if !ok {
		return nil, false
	}
	return c.obj, true
}

// LookupArray returns the current array and true, or nil and false when
// the navigator holds an object.
func (n *Navigator) LookupArray() (*Array, bool) {
	c, ok := n.current().(arrayCursor)
	if !ok {
		return nil, false
	}
	return c.arr, true
}

// Value returns the current container as a Value.
func (n *Navigator) Value() Value {
	switch c := n.current().(type) {
	case arrayCursor:
		return ArrayValue(c.arr)
	case objectCursor:
		return ObjectValue(c.obj)
	}
	return Null()
}
