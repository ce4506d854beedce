// Package vm implements the linx value runtime.
//
// Generated code calls into this package to build values, store them in
// lists and objects, create closures over shared variable cells, and
// evaluate operators. This package contains:
//   - Tagged value representation with deep-copy assignment
//   - Growable lists and insertion-ordered objects
//   - Closures over shared variable cells
//   - Total operator functions (invalid operands yield nil)
//   - Builtins and the per-instance Runtime context
//
// A Value is a handle. Go assignment of a Value shares its list, object and
// function payloads; linx assignment is Copy/Assign, which duplicates them.
package vm
