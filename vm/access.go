package vm

import "math"

// Assign implements =: dst receives a copy of v and the new value is
// returned.
func Assign(dst *Cell, v Value) Value {
	Copy(dst, v)
	return dst.Get()
}

// Dot implements obj.key. Non-objects yield nil.
func Dot(obj, key Value) Value {
	if obj.kind != KindObject {
		return NilValue()
	}
	return obj.obj.Get(key)
}

// Subscript implements recv[idx]. Objects take string keys; lists take
// integral, in-range numeric indices. Every other combination, negative
// and fractional indices included, yields nil.
func Subscript(recv, idx Value) Value {
	switch recv.kind {
	case KindObject:
		if idx.kind != KindString {
			return NilValue()
		}
		return Dot(recv, idx)
	case KindList:
		i, ok := listIndex(recv.list, idx)
		if !ok {
			return NilValue()
		}
		return recv.list.elems[i]
	default:
		return NilValue()
	}
}

// SetSubscript implements recv[idx] = v, writing into the container recv
// refers to. It follows Subscript's rules for valid receivers and indices;
// lists never grow through it. It returns the stored value, or nil when
// nothing was written.
func SetSubscript(recv, idx, v Value) Value {
	switch recv.kind {
	case KindObject:
		if idx.kind != KindString {
			return NilValue()
		}
		recv.obj.Set(idx, v)
		return recv.obj.Get(idx)
	case KindList:
		i, ok := listIndex(recv.list, idx)
		if !ok {
			return NilValue()
		}
		recv.list.Set(i, v)
		return recv.list.elems[i]
	default:
		return NilValue()
	}
}

func listIndex(l *List, idx Value) (int, bool) {
	if idx.kind != KindNumber {
		return 0, false
	}
	f := idx.num
	// NaN fails the Trunc comparison.
	if f < 0 || f != math.Trunc(f) || f >= float64(l.Len()) {
		return 0, false
	}
	return int(f), true
}

// Call implements fn(args...). Calling anything but a function is not an
// error: it yields nil.
func Call(fn Value, args ...Value) Value {
	if fn.kind != KindFunction {
		log.Debugf("call on non-function %s yields nil", fn.kind)
		return NilValue()
	}
	return fn.fn.Call(args)
}
