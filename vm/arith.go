package vm

import (
	"math"
	"strings"
)

// Add implements +. If either operand is a string both are rendered with
// String and concatenated; two numbers are summed; anything else is nil.
func Add(lhs, rhs Value) Value {
	if lhs.kind == KindString || rhs.kind == KindString {
		return StringValue(lhs.String() + rhs.String())
	}
	if lhs.kind == KindNumber && rhs.kind == KindNumber {
		return NumberValue(lhs.num + rhs.num)
	}
	return NilValue()
}

// Subtract implements -.
func Subtract(lhs, rhs Value) Value {
	if lhs.kind == KindNumber && rhs.kind == KindNumber {
		return NumberValue(lhs.num - rhs.num)
	}
	return NilValue()
}

// Multiply implements *. Numbers multiply; a string times a positive number
// repeats the string trunc(n) times; anything else is nil.
func Multiply(lhs, rhs Value) Value {
	if lhs.kind == KindNumber && rhs.kind == KindNumber {
		return NumberValue(lhs.num * rhs.num)
	}
	if lhs.kind == KindString && rhs.kind == KindNumber && rhs.num > 0 {
		n := math.Trunc(rhs.num)
		if n >= math.MaxInt32 {
			// Repeat counts beyond int32 are rejected like any other
			// invalid operand.
			return NilValue()
		}
		return StringValue(strings.Repeat(lhs.str, int(n)))
	}
	return NilValue()
}

// Divide implements /. Division by zero follows IEEE rules.
func Divide(lhs, rhs Value) Value {
	if lhs.kind == KindNumber && rhs.kind == KindNumber {
		return NumberValue(lhs.num / rhs.num)
	}
	return NilValue()
}

// Mod implements % as integer modulo: both operands are truncated toward
// zero and the result takes the sign of the dividend. A zero divisor or a
// non-finite operand yields nil.
func Mod(lhs, rhs Value) Value {
	if lhs.kind != KindNumber || rhs.kind != KindNumber {
		return NilValue()
	}
	a, b := math.Trunc(lhs.num), math.Trunc(rhs.num)
	if b == 0 || math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return NilValue()
	}
	return NumberValue(math.Mod(a, b))
}

// Negate implements unary minus.
func Negate(v Value) Value {
	if v.kind == KindNumber {
		return NumberValue(-v.num)
	}
	return NilValue()
}
