package vm

// Iterator walks a list, string or object for generated for-loops.
type Iterator struct {
	next  func(i int) Value
	count int
	pos   int
}

// Iterate returns an iterator over v. Lists yield their elements, strings
// yield one-byte strings and objects yield [key, value] lists. Other kinds
// yield an iterator that is never valid.
//
// The iterator works on a snapshot of v, so mutating v mid-loop does not
// change what is visited.
func Iterate(v Value) *Iterator {
	switch v.kind {
	case KindList:
		l := v.list.clone()
		return &Iterator{count: l.Len(), next: func(i int) Value { return l.elems[i] }}
	case KindString:
		s := v.str
		return &Iterator{count: len(s), next: func(i int) Value { return StringValue(s[i : i+1]) }}
	case KindObject:
		o := v.obj.clone()
		return &Iterator{count: o.Len(), next: func(i int) Value {
			return ListValue(o.keys.elems[i], o.values.elems[i])
		}}
	default:
		return &Iterator{}
	}
}

// Valid reports whether Next has another value to return.
func (it *Iterator) Valid() bool {
	return it != nil && it.pos < it.count
}

// Next returns the next value, or nil once the iterator is exhausted.
func (it *Iterator) Next() Value {
	if !it.Valid() {
		return NilValue()
	}
	v := it.next(it.pos)
	it.pos++
	return v
}
