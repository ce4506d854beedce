package vm

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies which payload a Value carries.
type Kind uint8

const (
	KindNil Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindList
	KindObject
	KindFunction
)

var kindNames = [...]string{
	KindNil:      "nil",
	KindBoolean:  "boolean",
	KindNumber:   "number",
	KindString:   "string",
	KindList:     "list",
	KindObject:   "object",
	KindFunction: "function",
}

// String returns the linx type name for the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is the tagged representation of every linx datum.
//
// Fields are unexported so the kind tag always matches the payload; the zero
// Value is nil.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	list *List
	obj  *Object
	fn   *Function
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NilValue returns the nil value.
func NilValue() Value {
	return Value{}
}

// BoolValue creates a boolean value.
func BoolValue(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// NumberValue creates a number value.
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// StringValue creates a string value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// ListValue creates a list holding copies of elems.
func ListValue(elems ...Value) Value {
	return Value{kind: KindList, list: listOf(elems)}
}

// WrapList wraps an existing list. The list is taken over, not copied.
func WrapList(l *List) Value {
	if l == nil {
		l = NewList()
	}
	return Value{kind: KindList, list: l}
}

// ObjectValue creates an empty object.
func ObjectValue() Value {
	return Value{kind: KindObject, obj: NewObject()}
}

// WrapObject wraps an existing object. The object is taken over, not copied.
func WrapObject(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

// ObjectFrom builds an object from parallel key and value slices, the shape
// object literals compile to. Extra keys without a value map to nil; later
// duplicates overwrite earlier ones.
func ObjectFrom(keys, values []Value) Value {
	o := NewObject()
	for i, k := range keys {
		var v Value
		if i < len(values) {
			v = values[i]
		}
		o.Set(k, v)
	}
	return Value{kind: KindObject, obj: o}
}

// FunctionValue creates a closure over the given cells.
func FunctionValue(entry Entry, captured ...*Cell) Value {
	return Value{kind: KindFunction, fn: NewFunction(entry, captured...)}
}

// WrapFunction wraps an existing function record.
func WrapFunction(f *Function) Value {
	if f == nil {
		return Value{}
	}
	return Value{kind: KindFunction, fn: f}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Kind returns the value's kind tag.
func (v Value) Kind() Kind { return v.kind }

// IsNil returns true if the value is nil.
func (v Value) IsNil() bool { return v.kind == KindNil }

// AsBool returns the boolean payload, or false for other kinds.
func (v Value) AsBool() bool { return v.kind == KindBoolean && v.b }

// AsNumber returns the number payload, or 0 for other kinds.
func (v Value) AsNumber() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.num
}

// AsString returns the string payload, or "" for other kinds. Use String for
// the display form of any value.
func (v Value) AsString() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// AsList returns the list payload, or nil for other kinds.
func (v Value) AsList() *List {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// AsObject returns the object payload, or nil for other kinds.
func (v Value) AsObject() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// AsFunction returns the function payload, or nil for other kinds.
func (v Value) AsFunction() *Function {
	if v.kind != KindFunction {
		return nil
	}
	return v.fn
}

// TypeName returns one of "nil", "boolean", "number", "string", "list",
// "object" or "function".
func (v Value) TypeName() string { return v.kind.String() }

// ---------------------------------------------------------------------------
// Copy semantics
// ---------------------------------------------------------------------------

// Copy returns an independent duplicate of v. Lists and objects are copied
// recursively. A function gets a fresh record that shares the callable and
// its captured cells, so both observe the same captured state.
func (v Value) Copy() Value {
	switch v.kind {
	case KindList:
		return Value{kind: KindList, list: v.list.clone()}
	case KindObject:
		return Value{kind: KindObject, obj: v.obj.clone()}
	case KindFunction:
		return Value{kind: KindFunction, fn: v.fn.clone()}
	default:
		// Strings are immutable in Go, so sharing the bytes is a copy.
		return v
	}
}

// Copy overwrites the value bound to dst with a copy of src.
func Copy(dst *Cell, src Value) {
	dst.Set(src)
}

// ---------------------------------------------------------------------------
// Equality and truthiness
// ---------------------------------------------------------------------------

// Equals reports structural equality. Numbers follow IEEE rules, so NaN is
// unequal to itself. Objects are never equal to anything, themselves
// included; deep object equality is not implemented. Functions are equal
// only when they share the same underlying callable.
func Equals(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindBoolean:
		return a.b == b.b
	case KindNumber:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindList:
		if a.list.Len() != b.list.Len() {
			return false
		}
		for i := 0; i < a.list.Len(); i++ {
			if !Equals(a.list.elems[i], b.list.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return false
	case KindFunction:
		return a.fn.same(b.fn)
	}
	return false
}

// IsTruthy returns the value's truthiness: nil is false, numbers are true
// when nonzero, strings, lists and objects when non-empty, functions always.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindBoolean:
		return v.b
	case KindNumber:
		return v.num != 0
	case KindString:
		return v.str != ""
	case KindList:
		return v.list.Len() != 0
	case KindObject:
		return v.obj.Len() != 0
	case KindFunction:
		return true
	default:
		return false
	}
}

// ---------------------------------------------------------------------------
// Display
// ---------------------------------------------------------------------------

// String renders the value the way print shows it. Strings nested inside
// lists and objects are not quoted.
func (v Value) String() string {
	var sb strings.Builder
	v.display(&sb)
	return sb.String()
}

func (v Value) display(sb *strings.Builder) {
	switch v.kind {
	case KindNil:
		sb.WriteString("nil")
	case KindBoolean:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		sb.WriteString(FormatNumber(v.num))
	case KindString:
		sb.WriteString(v.str)
	case KindList:
		sb.WriteByte('[')
		for i, e := range v.list.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.display(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, k := range v.obj.keys.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			k.display(sb)
			sb.WriteString(": ")
			v.obj.values.elems[i].display(sb)
		}
		sb.WriteByte('}')
	case KindFunction:
		sb.WriteString("<function>")
	}
}

// FormatNumber formats f like C's %g: six significant digits, trailing
// zeros trimmed, exponent form for very large or small magnitudes.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}
