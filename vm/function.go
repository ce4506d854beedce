package vm

// Cell is a variable slot that closures capture by reference. Every closure
// holding the same cell reads and writes the same storage; this is the only
// intentional aliasing in the runtime.
type Cell struct {
	v Value
}

// NewCell creates a cell holding a copy of v.
func NewCell(v Value) *Cell {
	return &Cell{v: v.Copy()}
}

// Get returns the current value. A nil cell reads as nil.
func (c *Cell) Get() Value {
	if c == nil {
		return NilValue()
	}
	return c.v
}

// Set overwrites the cell with a copy of v. Writes to a nil cell are dropped.
func (c *Cell) Set(v Value) {
	if c != nil {
		c.v = v.Copy()
	}
}

// Env is a closure's captured environment, in capture order.
type Env []*Cell

// At returns the i'th captured cell, or nil when out of range.
func (e Env) At(i int) *Cell {
	if i < 0 || i >= len(e) {
		return nil
	}
	return e[i]
}

// Entry is the native body of a compiled linx function. It receives the
// closure's environment and the call arguments and returns exactly one
// value. Arguments belong to the caller; an entry that wants to mutate one
// assigns it into a cell first.
type Entry func(env Env, args []Value) Value

// callable is the shared identity behind one or more Function records.
type callable struct {
	entry Entry
	env   Env
}

// Function is a closure record. Copying a Function produces a new record
// pointing at the same callable, so copies compare equal and share captured
// state.
type Function struct {
	c *callable
}

// NewFunction creates a closure. The cell references are copied once; the
// cells themselves are shared with the creating scope.
func NewFunction(entry Entry, captured ...*Cell) *Function {
	var env Env
	if len(captured) > 0 {
		env = make(Env, len(captured))
		copy(env, captured)
	}
	return &Function{c: &callable{entry: entry, env: env}}
}

// Env returns the captured environment.
func (f *Function) Env() Env {
	if f == nil || f.c == nil {
		return nil
	}
	return f.c.env
}

// Call invokes the function with args. A nil function or missing entry
// yields nil.
func (f *Function) Call(args []Value) Value {
	if f == nil || f.c == nil || f.c.entry == nil {
		return NilValue()
	}
	return f.c.entry(f.c.env, args)
}

func (f *Function) clone() *Function {
	if f == nil {
		return nil
	}
	return &Function{c: f.c}
}

func (f *Function) same(g *Function) bool {
	if f == nil || g == nil {
		return f == g
	}
	return f.c == g.c
}

// Arg returns args[i], or nil when the caller passed fewer arguments.
func Arg(args []Value, i int) Value {
	if i < 0 || i >= len(args) {
		return NilValue()
	}
	return args[i]
}
