package vm

import "math"

// Builtin functions. Each has a plain Go form and an Entry form so generated
// code can call it like any other closure.

// Len returns the byte count of a string (not its rune count), the element
// count of a list or the key count of an object. Other kinds yield nil.
func Len(v Value) Value {
	switch v.kind {
	case KindString:
		return NumberValue(float64(len(v.str)))
	case KindList:
		return NumberValue(float64(v.list.Len()))
	case KindObject:
		return NumberValue(float64(v.obj.Len()))
	default:
		return NilValue()
	}
}

// TypeOf returns the value's type name as a string value.
func TypeOf(v Value) Value {
	return StringValue(v.TypeName())
}

// ToString returns the display form of v as a string value.
func ToString(v Value) Value {
	return StringValue(v.String())
}

// Keys returns a list of an object's keys in insertion order. Other kinds
// yield nil.
func Keys(v Value) Value {
	if v.kind != KindObject {
		return NilValue()
	}
	return WrapList(v.obj.Keys())
}

// Range enumerates start..end inclusive, stepping by step. The direction is
// chosen by comparing start and end, so step is a magnitude; a nil step
// means 1. Equal bounds give an empty list. Non-numeric or NaN bounds and a
// step that is not a positive finite number yield nil.
func Range(start, end, step Value) Value {
	if step.IsNil() {
		step = NumberValue(1)
	}
	if start.kind != KindNumber || end.kind != KindNumber || step.kind != KindNumber {
		return NilValue()
	}
	if !(step.num > 0) || math.IsInf(step.num, 0) || math.IsNaN(start.num) || math.IsNaN(end.num) {
		return NilValue()
	}

	result := NewList()
	if Equals(start, end) {
		return WrapList(result)
	}

	i := start
	if !greater(start, end) {
		for LessEqual(i, end).b {
			result.Append(i)
			next := Add(i, step)
			if Equals(next, i) {
				// step is below the precision of i
				break
			}
			i = next
		}
	} else {
		for GreaterEqual(i, end).b {
			result.Append(i)
			next := Subtract(i, step)
			if Equals(next, i) {
				break
			}
			i = next
		}
	}
	return WrapList(result)
}

// builtinEntries maps builtin names to their Entry forms. print is bound
// per Runtime because it writes to that runtime's output.
var builtinEntries = map[string]Entry{
	"len": func(_ Env, args []Value) Value {
		return Len(Arg(args, 0))
	},
	"type": func(_ Env, args []Value) Value {
		return TypeOf(Arg(args, 0))
	},
	"range": func(_ Env, args []Value) Value {
		return Range(Arg(args, 0), Arg(args, 1), Arg(args, 2))
	},
	"toString": func(_ Env, args []Value) Value {
		return ToString(Arg(args, 0))
	},
	"keys": func(_ Env, args []Value) Value {
		return Keys(Arg(args, 0))
	},
}
