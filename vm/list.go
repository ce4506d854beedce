package vm

// DefaultListCapacity is the capacity of a newly created empty list.
const DefaultListCapacity = 8

// List is a growable sequence of owned values. Every element is a copy made
// on insertion; nothing in a list aliases caller storage.
type List struct {
	elems []Value
}

// NewList creates an empty list with the default capacity.
func NewList() *List {
	return &List{elems: make([]Value, 0, DefaultListCapacity)}
}

// listOf builds a list sized exactly to elems, copying each one.
func listOf(elems []Value) *List {
	if len(elems) == 0 {
		return NewList()
	}
	l := &List{elems: make([]Value, len(elems))}
	for i, e := range elems {
		l.elems[i] = e.Copy()
	}
	return l
}

// Len returns the number of elements.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.elems)
}

// Cap returns the current capacity.
func (l *List) Cap() int {
	if l == nil {
		return 0
	}
	return cap(l.elems)
}

// grow doubles the capacity when there is no room for one more element.
func (l *List) grow() {
	if cap(l.elems) >= len(l.elems)+1 {
		return
	}
	newCap := cap(l.elems) * 2
	if newCap == 0 {
		newCap = DefaultListCapacity
	}
	elems := make([]Value, len(l.elems), newCap)
	copy(elems, l.elems)
	l.elems = elems
}

// Append stores a copy of v at the end of the list.
func (l *List) Append(v Value) {
	l.grow()
	l.elems = append(l.elems, v.Copy())
}

// Get returns the element at idx, or nil when idx is out of range.
func (l *List) Get(idx int) Value {
	if l == nil || idx < 0 || idx >= len(l.elems) {
		return NilValue()
	}
	return l.elems[idx]
}

// Set replaces the element at idx with a copy of v. It reports whether idx
// was in range; the list never grows through Set.
func (l *List) Set(idx int, v Value) bool {
	if l == nil || idx < 0 || idx >= len(l.elems) {
		return false
	}
	l.elems[idx] = v.Copy()
	return true
}

// Each calls fn for every element in order until fn returns false.
func (l *List) Each(fn func(i int, v Value) bool) {
	if l == nil {
		return
	}
	for i, e := range l.elems {
		if !fn(i, e) {
			return
		}
	}
}

// Values returns copies of the elements.
func (l *List) Values() []Value {
	out := make([]Value, l.Len())
	for i := range out {
		out[i] = l.elems[i].Copy()
	}
	return out
}

func (l *List) clone() *List {
	if l == nil {
		return NewList()
	}
	c := &List{elems: make([]Value, len(l.elems), cap(l.elems))}
	for i, e := range l.elems {
		c.elems[i] = e.Copy()
	}
	return c
}

// indexOf returns the position of the first element equal to v, or -1.
func (l *List) indexOf(v Value) int {
	if l == nil {
		return -1
	}
	for i, e := range l.elems {
		if Equals(e, v) {
			return i
		}
	}
	return -1
}
