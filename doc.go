// Package tuple provides a collection of generic struct types
// that hold a fixed number of values, one independently typed
// value per slot.
//
// There is one type per arity, T0 to T8. Slots are numbered from
// zero and accessed through the fields V0, V1 and so on, so the
// slot index and its element type are resolved entirely at compile
// time: accessing a slot that doesn't exist, or comparing tuples
// with different element types, doesn't compile.
//
// A tuple can be built with its element types pinned explicitly:
//
//	t := tuple.T3[int, float64, byte]{42, 3.14, 'a'}
//
// or with the element types inferred from the arguments:
//
//	t := tuple.MkT3(42, 3.14, byte('a'))
//
// Inferred construction stores arguments by value, so the slot
// types are always plain value types.
//
// A slot can be read (t.V1), assigned (t.V1 = x) or moved out
// along with the others (t.Values()). Tuples with comparable
// element types compare with == field by field; the EqualTn
// functions provide the same comparison as a function value.
//
// See the tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents.
package tuple

//go:generate go run generate.go
