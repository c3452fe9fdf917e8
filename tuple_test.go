package tuple_test

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/tuple"
)

// All tuple types satisfy fmt.Stringer.
var _ fmt.Stringer = tuple.T0{}
var _ fmt.Stringer = tuple.T3[int, float64, byte]{}

func TestSlotAccess(t *testing.T) {
	c := qt.New(t)
	tup := tuple.T3[int, float64, rune]{42, 3.14, 'a'}
	c.Assert(tup.V0, qt.Equals, 42)
	c.Assert(tup.V1, qt.Equals, 3.14)
	c.Assert(tup.V2, qt.Equals, 'a')
}

func TestMkInfersElementTypes(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT3(42, 3.14, 'a')
	// The inferred type is the argument value types.
	var _ tuple.T3[int, float64, rune] = tup
	c.Assert(tup, qt.Equals, tuple.T3[int, float64, rune]{42, 3.14, 'a'})
}

func TestMkStoresByValue(t *testing.T) {
	c := qt.New(t)
	v := 10
	tup := tuple.MkT1(v)
	v = 20
	c.Assert(tup.V0, qt.Equals, 10)
}

func TestSlotAssignment(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT2(1, "a")
	tup.V1 = "b"
	c.Assert(tup.V1, qt.Equals, "b")
	c.Assert(tup.V0, qt.Equals, 1)
}

func TestValues(t *testing.T) {
	c := qt.New(t)
	v0, v1, v2 := tuple.MkT3(42, 3.14, 'a').Values()
	c.Assert(v0, qt.Equals, 42)
	c.Assert(v1, qt.Equals, 3.14)
	c.Assert(v2, qt.Equals, 'a')
}

func TestLen(t *testing.T) {
	c := qt.New(t)
	sizes := []interface{ Len() int }{
		tuple.T0{},
		tuple.MkT1(1),
		tuple.MkT2(1, "two"),
		tuple.MkT3(1, "two", 3.0),
		tuple.MkT4(1, "two", 3.0, 'x'),
		tuple.MkT5(1, "two", 3.0, 'x', true),
		tuple.MkT6(1, "two", 3.0, 'x', true, int8(6)),
		tuple.MkT7(1, "two", 3.0, 'x', true, int8(6), uint(7)),
		tuple.MkT8(1, "two", 3.0, 'x', true, int8(6), uint(7), "eight"),
	}
	for i, tup := range sizes {
		c.Assert(tup.Len(), qt.Equals, i)
	}
}

var equalTests = []struct {
	testName string
	x, y     tuple.T3[int, float64, byte]
	want     bool
}{{
	testName: "same-values",
	x:        tuple.T3[int, float64, byte]{42, 3.14, 'a'},
	y:        tuple.T3[int, float64, byte]{42, 3.14, 'a'},
	want:     true,
}, {
	testName: "all-slots-differ",
	x:        tuple.T3[int, float64, byte]{42, 3.14, 'a'},
	y:        tuple.T3[int, float64, byte]{10, 20.5, 'x'},
	want:     false,
}, {
	testName: "first-slot-differs",
	x:        tuple.T3[int, float64, byte]{42, 3.14, 'a'},
	y:        tuple.T3[int, float64, byte]{43, 3.14, 'a'},
	want:     false,
}, {
	testName: "middle-slot-differs",
	x:        tuple.T3[int, float64, byte]{42, 3.14, 'a'},
	y:        tuple.T3[int, float64, byte]{42, 3.15, 'a'},
	want:     false,
}, {
	testName: "last-slot-differs",
	x:        tuple.T3[int, float64, byte]{42, 3.14, 'a'},
	y:        tuple.T3[int, float64, byte]{42, 3.14, 'b'},
	want:     false,
}, {
	testName: "zero-values",
	x:        tuple.T3[int, float64, byte]{},
	y:        tuple.T3[int, float64, byte]{},
	want:     true,
}}

func TestEqual(t *testing.T) {
	c := qt.New(t)
	for _, test := range equalTests {
		c.Run(test.testName, func(c *qt.C) {
			c.Assert(tuple.EqualT3(test.x, test.y), qt.Equals, test.want)
			c.Assert(tuple.EqualT3(test.y, test.x), qt.Equals, test.want)
			// EqualT3 agrees with the native struct comparison.
			c.Assert(test.x == test.y, qt.Equals, test.want)
		})
	}
}

func TestEqualReflexive(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT4(1, "two", 3.0, 'x')
	c.Assert(tuple.EqualT4(tup, tup), qt.IsTrue)
}

func TestMkComparedWithExplicit(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT3(10, 20.5, byte('x'))
	c.Assert(tup == tuple.T3[int, float64, byte]{42, 3.14, 'a'}, qt.IsFalse)
	c.Assert(tup == tuple.T3[int, float64, byte]{10, 20.5, 'x'}, qt.IsTrue)
}

func TestEmptyTuple(t *testing.T) {
	c := qt.New(t)
	c.Assert(tuple.MkT0(), qt.Equals, tuple.T0{})
	c.Assert(tuple.T0{} == tuple.T0{}, qt.IsTrue)
	c.Assert(tuple.EqualT0(tuple.T0{}, tuple.T0{}), qt.IsTrue)
	c.Assert(tuple.T0{}.Len(), qt.Equals, 0)
}

func TestZeroValue(t *testing.T) {
	c := qt.New(t)
	var tup tuple.T3[int, string, bool]
	c.Assert(tup.V0, qt.Equals, 0)
	c.Assert(tup.V1, qt.Equals, "")
	c.Assert(tup.V2, qt.IsFalse)
}

func TestNonComparableElements(t *testing.T) {
	c := qt.New(t)
	// Tuples may hold non-comparable element types; only the
	// comparison operations require comparable elements.
	tup := tuple.MkT2("xs", []int{1, 2, 3})
	c.Assert(tup.V1, qt.DeepEquals, []int{1, 2, 3})
}

var stringTests = []struct {
	testName string
	tup      fmt.Stringer
	want     string
}{{
	testName: "empty",
	tup:      tuple.T0{},
	want:     "()",
}, {
	testName: "single",
	tup:      tuple.MkT1(42),
	want:     "(42)",
}, {
	testName: "pair",
	tup:      tuple.MkT2(1, "hi"),
	want:     "(1, hi)",
}, {
	testName: "triple",
	tup:      tuple.MkT3(42, 3.14, "a"),
	want:     "(42, 3.14, a)",
}}

func TestString(t *testing.T) {
	c := qt.New(t)
	for _, test := range stringTests {
		c.Run(test.testName, func(c *qt.C) {
			c.Assert(test.tup.String(), qt.Equals, test.want)
		})
	}
}
