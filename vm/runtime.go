package vm

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"
)

// Config holds runtime configuration.
type Config struct {
	Name   string    // Label used in logs; defaults to the runtime ID
	Stdout io.Writer // Destination for print (defaults to os.Stdout)
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Stdout: os.Stdout,
	}
}

// Runtime is one independent linx runtime instance. It owns the output
// stream, the builtin function values and the global variable cells that
// generated code binds against. Values themselves are not tied to a
// runtime and may be passed between instances.
//
// A Runtime is not safe for concurrent use; linx execution is
// single-threaded.
type Runtime struct {
	ID   string
	Name string

	out      io.Writer
	builtins map[string]Value
	globals  map[string]*Cell
	prints   int
}

// New creates a runtime with the given configuration.
func New(cfg *Config) *Runtime {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	r := &Runtime{
		ID:       uuid.New().String(),
		Name:     cfg.Name,
		out:      cfg.Stdout,
		builtins: make(map[string]Value, len(builtinEntries)+1),
		globals:  make(map[string]*Cell),
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if r.Name == "" {
		r.Name = r.ID
	}

	for name, entry := range builtinEntries {
		r.builtins[name] = FunctionValue(entry)
	}
	r.builtins["print"] = FunctionValue(func(_ Env, args []Value) Value {
		r.Print(Arg(args, 0))
		return NilValue()
	})

	log.Debugf("runtime %s created with %d builtins", r.Name, len(r.builtins))
	return r
}

// Print writes the display form of v and a newline to the runtime's output.
func (r *Runtime) Print(v Value) {
	r.prints++
	if _, err := fmt.Fprintln(r.out, v.String()); err != nil {
		log.Warningf("runtime %s: print: %s", r.Name, err)
	}
}

// Builtin returns the named builtin as a function value, or nil if there is
// no such builtin. Each call returns a copy of the runtime's one closure,
// so results compare equal to each other.
func (r *Runtime) Builtin(name string) Value {
	fn, ok := r.builtins[name]
	if !ok {
		return NilValue()
	}
	return fn.Copy()
}

// BuiltinNames returns the builtin names in sorted order.
func (r *Runtime) BuiltinNames() []string {
	names := make([]string, 0, len(r.builtins))
	for name := range r.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global returns the cell for a top-level variable, creating it holding nil
// on first use. Closures over top-level variables capture these cells.
func (r *Runtime) Global(name string) *Cell {
	c, ok := r.globals[name]
	if !ok {
		c = &Cell{}
		r.globals[name] = c
	}
	return c
}

// SetGlobal assigns a copy of v to the named global.
func (r *Runtime) SetGlobal(name string, v Value) {
	Copy(r.Global(name), v)
}

// LookupGlobal returns the named global and whether it has been defined.
func (r *Runtime) LookupGlobal(name string) (Value, bool) {
	c, ok := r.globals[name]
	if !ok {
		return NilValue(), false
	}
	return c.Get(), true
}

// GlobalNames returns the defined global names in sorted order.
func (r *Runtime) GlobalNames() []string {
	names := make([]string, 0, len(r.globals))
	for name := range r.globals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stats returns runtime statistics.
func (r *Runtime) Stats() RuntimeStats {
	return RuntimeStats{
		Builtins: len(r.builtins),
		Globals:  len(r.globals),
		Prints:   r.prints,
	}
}

// RuntimeStats contains runtime statistics.
type RuntimeStats struct {
	Builtins int
	Globals  int
	Prints   int
}
