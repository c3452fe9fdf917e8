// Package tuplefunc provides functions that convert between multiple-argument
// and multiple-return functions and their tuple-ized equivalents.
// This makes it trivial to pass arbitrary functions to generic operations
// that are designed to operate on single-argument, single-return functions.
//
// The names of the functions in this package match the following regular
// expression:
//
//	(To|From)A?R?E?_[0-9]+_[0-9]+
//
// Each optional letter represents one aspect of the converted-to form:
//
//	A - the argument parameters are bundled into a tuple
//	R - the return parameters are bundled into a tuple
//	E - a trailing error return is kept separate
//
// The first number is the number of argument parameters; the second number
// is the number of return parameters (not including error for an E function).
// The A and R letters appear only when there are at least two parameters
// on that side, as bundling fewer converts nothing.
//
// So, for example:
//
//	ToARE_2_3
//
// converts from (for some types A0, A1, R0, R1 and R2)
//
//	func(A0, A1) (R0, R1, R2, error)
//
// to:
//
//	func(tuple.T2[A0, A1]) (tuple.T3[R0, R1, R2], error)
//
// and FromARE_2_3 converts back the other way.
package tuplefunc

//go:generate go run generate.go
