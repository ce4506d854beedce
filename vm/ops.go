package vm

// Logical, equality and ordering operators. Every operator takes already
// evaluated operands; short-circuiting is the caller's concern.

// And returns whether both operands are truthy.
func And(lhs, rhs Value) Value {
	return BoolValue(lhs.IsTruthy() && rhs.IsTruthy())
}

// Or returns whether either operand is truthy.
func Or(lhs, rhs Value) Value {
	return BoolValue(lhs.IsTruthy() || rhs.IsTruthy())
}

// Not negates the operand's truthiness.
func Not(v Value) Value {
	return BoolValue(!v.IsTruthy())
}

// Equal implements ==.
func Equal(lhs, rhs Value) Value {
	return BoolValue(Equals(lhs, rhs))
}

// NotEqual implements !=.
func NotEqual(lhs, rhs Value) Value {
	return BoolValue(!Equals(lhs, rhs))
}

// less orders operands of the same kind. Booleans order false before true,
// numbers by IEEE <, strings by byte-wise lexicographic order, lists by
// length and objects by key count. Mixed kinds are never ordered.
func less(lhs, rhs Value) bool {
	if lhs.kind != rhs.kind {
		return false
	}
	switch lhs.kind {
	case KindBoolean:
		return !lhs.b && rhs.b
	case KindNumber:
		return lhs.num < rhs.num
	case KindString:
		return lhs.str < rhs.str
	case KindList:
		return lhs.list.Len() < rhs.list.Len()
	case KindObject:
		return lhs.obj.Len() < rhs.obj.Len()
	default:
		return false
	}
}

// greater is the negation of less for orderable kinds. Equal operands
// therefore compare greater; nil and functions are never greater.
func greater(lhs, rhs Value) bool {
	if lhs.kind != rhs.kind {
		return false
	}
	switch lhs.kind {
	case KindNil, KindFunction:
		return false
	default:
		return !less(lhs, rhs)
	}
}

// Less implements <.
func Less(lhs, rhs Value) Value {
	return BoolValue(less(lhs, rhs))
}

// Greater implements >.
func Greater(lhs, rhs Value) Value {
	return BoolValue(greater(lhs, rhs))
}

// LessEqual implements <= as < or ==.
func LessEqual(lhs, rhs Value) Value {
	return BoolValue(less(lhs, rhs) || Equals(lhs, rhs))
}

// GreaterEqual implements >= as > or ==.
func GreaterEqual(lhs, rhs Value) Value {
	return BoolValue(greater(lhs, rhs) || Equals(lhs, rhs))
}
