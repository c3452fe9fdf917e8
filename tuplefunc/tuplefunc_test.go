package tuplefunc_test

import (
	"errors"
	"strconv"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/tuple"
	"github.com/rogpeppe/tuple/tuplefunc"
)

func TestToR(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToR_0_2(func() (int, string) {
		return 1, "a"
	})
	c.Assert(f(), qt.Equals, tuple.MkT2(1, "a"))
}

func TestFromR(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.FromR_1_2(func(s string) tuple.T2[string, int] {
		return tuple.MkT2(s, len(s))
	})
	s, n := f("hello")
	c.Assert(s, qt.Equals, "hello")
	c.Assert(n, qt.Equals, 5)
}

func TestToA(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToA_2_1(func(x, y int) int {
		return x + y
	})
	c.Assert(f(tuple.MkT2(3, 4)), qt.Equals, 7)
}

func TestToAWithoutResults(t *testing.T) {
	c := qt.New(t)
	sum := 0
	f := tuplefunc.ToA_3_0(func(x, y, z int) {
		sum = x + y + z
	})
	f(tuple.MkT3(1, 2, 3))
	c.Assert(sum, qt.Equals, 6)
}

func TestToAR(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToAR_2_2(func(x, y int) (int, int) {
		return x + y, x * y
	})
	c.Assert(f(tuple.MkT2(3, 4)), qt.Equals, tuple.MkT2(7, 12))
}

func TestFromARInvertsToAR(t *testing.T) {
	c := qt.New(t)
	f := func(x, y int) (int, int) {
		return x + y, x * y
	}
	g := tuplefunc.FromAR_2_2(tuplefunc.ToAR_2_2(f))
	sum, prod := g(3, 4)
	c.Assert(sum, qt.Equals, 7)
	c.Assert(prod, qt.Equals, 12)
}

func TestToAEPropagatesError(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToAE_2_1(func(x, y int) (int, error) {
		if y == 0 {
			return 0, errors.New("division by zero")
		}
		return x / y, nil
	})

	q, err := f(tuple.MkT2(6, 3))
	c.Assert(err, qt.IsNil)
	c.Assert(q, qt.Equals, 2)

	_, err = f(tuple.MkT2(6, 0))
	c.Assert(err, qt.ErrorMatches, "division by zero")
}

func TestToREPropagatesError(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToRE_1_2(func(s string) (int, bool, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false, err
		}
		return n, n >= 0, nil
	})

	r, err := f("42")
	c.Assert(err, qt.IsNil)
	c.Assert(r, qt.Equals, tuple.MkT2(42, true))

	_, err = f("bogus")
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestFromAREInvertsToARE(t *testing.T) {
	c := qt.New(t)
	f := func(x, y int) (int, int, error) {
		if y == 0 {
			return 0, 0, errors.New("division by zero")
		}
		return x / y, x % y, nil
	}
	g := tuplefunc.FromARE_2_2(tuplefunc.ToARE_2_2(f))

	q, rem, err := g(7, 2)
	c.Assert(err, qt.IsNil)
	c.Assert(q, qt.Equals, 3)
	c.Assert(rem, qt.Equals, 1)

	_, _, err = g(1, 0)
	c.Assert(err, qt.ErrorMatches, "division by zero")
}
