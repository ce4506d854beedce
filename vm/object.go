package vm

// Object is an insertion-ordered association from keys to values, stored as
// two parallel lists. Lookup is a linear scan using Equals.
//
// A missing key and a key explicitly mapped to nil both read back as nil
// through Get; Has tells them apart.
type Object struct {
	keys   *List
	values *List
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{keys: NewList(), values: NewList()}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return o.keys.Len()
}

// Get returns the value stored under key, or nil if the key is absent.
func (o *Object) Get(key Value) Value {
	if o == nil {
		return NilValue()
	}
	if i := o.keys.indexOf(key); i >= 0 {
		return o.values.elems[i]
	}
	return NilValue()
}

// Has reports whether key is present.
func (o *Object) Has(key Value) bool {
	return o != nil && o.keys.indexOf(key) >= 0
}

// Set stores a copy of value under key. An existing key keeps its position
// and has its value overwritten; a new key is appended.
func (o *Object) Set(key, value Value) {
	if i := o.keys.indexOf(key); i >= 0 {
		o.values.elems[i] = value.Copy()
		return
	}
	o.keys.Append(key)
	o.values.Append(value)
}

// Keys returns a new list holding copies of the keys in insertion order.
func (o *Object) Keys() *List {
	if o == nil {
		return NewList()
	}
	return o.keys.clone()
}

// Each calls fn for every pair in insertion order until fn returns false.
func (o *Object) Each(fn func(key, value Value) bool) {
	if o == nil {
		return
	}
	for i, k := range o.keys.elems {
		if !fn(k, o.values.elems[i]) {
			return
		}
	}
}

func (o *Object) clone() *Object {
	if o == nil {
		return NewObject()
	}
	return &Object{keys: o.keys.clone(), values: o.values.clone()}
}
