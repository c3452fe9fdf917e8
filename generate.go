//go:build ignore

// Generate tuple_gen.go, the per-arity tuple types.
// Run with go generate.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

const maxArity = 8

// typeParams holds the type parameter name used for each slot.
const typeParams = "ABCDEFGH"

func main() {
	var buf bytes.Buffer
	pr := func(f string, a ...any) {
		fmt.Fprintf(&buf, f, a...)
	}
	pr("// Code generated by generate.go; DO NOT EDIT.\n")
	pr("\n")
	pr("package tuple\n")
	pr("\n")
	pr("import \"fmt\"\n")
	for n := 0; n <= maxArity; n++ {
		genArity(pr, n)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated source: %v", err)
	}
	if err := os.WriteFile("tuple_gen.go", src, 0o666); err != nil {
		log.Fatal(err)
	}
}

func genArity(pr func(string, ...any), n int) {
	params := params(n)     // "A, B, C"
	ptype := ptype(n)       // "T3[A, B, C]"
	fields := fields(n)     // "t.V0, t.V1, t.V2"
	verbs := verbs(n)       // "%v, %v, %v"

	pr("\n")
	if n == 0 {
		pr("// T0 is the empty tuple.\n")
		pr("type T0 struct{}\n")
		pr("\n")
		pr("// MkT0 returns the empty tuple.\n")
		pr("func MkT0() T0 {\n")
		pr("\treturn T0{}\n")
		pr("}\n")
		pr("\n")
		pr("// Values returns all the values held in t, in slot order.\n")
		pr("func (T0) Values() {}\n")
	} else {
		if n == 1 {
			pr("// T1 holds a single value.\n")
		} else {
			pr("// T%d holds %d values.\n", n, n)
		}
		pr("type T%d[%s any] struct {\n", n, params)
		for i := 0; i < n; i++ {
			pr("\tV%d %c\n", i, typeParams[i])
		}
		pr("}\n")
		pr("\n")
		pr("// MkT%d returns a T%d holding the given values,\n", n, n)
		pr("// with the element types inferred from the arguments.\n")
		pr("func MkT%d[%s any](%s) %s {\n", n, params, args(n), ptype)
		pr("\treturn %s{%s}\n", ptype, argNames(n))
		pr("}\n")
		pr("\n")
		pr("// Values returns all the values held in t, in slot order.\n")
		if n == 1 {
			pr("func (t %s) Values() %s {\n", ptype, params)
		} else {
			pr("func (t %s) Values() (%s) {\n", ptype, params)
		}
		pr("\treturn %s\n", fields)
		pr("}\n")
	}
	pr("\n")
	pr("// Len returns the number of values held in the tuple.\n")
	if n == 0 {
		pr("func (T0) Len() int {\n")
	} else {
		pr("func (%s) Len() int {\n", ptype)
	}
	pr("\treturn %d\n", n)
	pr("}\n")
	pr("\n")
	pr("// String implements fmt.Stringer.\n")
	pr("func (t %s) String() string {\n", ptype)
	if n == 0 {
		pr("\treturn \"()\"\n")
	} else {
		pr("\treturn fmt.Sprintf(\"(%s)\", %s)\n", verbs, fields)
	}
	pr("}\n")
	pr("\n")
	if n == 0 {
		pr("// EqualT0 reports whether x and y are equal.\n")
		pr("// Empty tuples are always equal.\n")
		pr("func EqualT0(x, y T0) bool {\n")
		pr("\treturn true\n")
	} else {
		pr("// EqualT%d reports whether x and y hold equal values,\n", n)
		pr("// comparing slots in index order with each element\n")
		pr("// type's own equality.\n")
		pr("func EqualT%d[%s comparable](x, y %s) bool {\n", n, params, ptype)
		var conds []string
		for i := 0; i < n; i++ {
			conds = append(conds, fmt.Sprintf("x.V%d == y.V%d", i, i))
		}
		pr("\treturn %s\n", strings.Join(conds, " &&\n\t\t"))
	}
	pr("}\n")
}

// params returns the type parameter list for arity n ("A, B, C").
func params(n int) string {
	names := make([]string, n)
	for i := range names {
		names[i] = string(typeParams[i])
	}
	return strings.Join(names, ", ")
}

// ptype returns the parameterized type name for arity n ("T3[A, B, C]").
func ptype(n int) string {
	if n == 0 {
		return "T0"
	}
	return fmt.Sprintf("T%d[%s]", n, params(n))
}

// args returns the constructor argument list ("v0 A, v1 B, v2 C").
func args(n int) string {
	a := make([]string, n)
	for i := range a {
		a[i] = fmt.Sprintf("v%d %c", i, typeParams[i])
	}
	return strings.Join(a, ", ")
}

// argNames returns the constructor argument names ("v0, v1, v2").
func argNames(n int) string {
	a := make([]string, n)
	for i := range a {
		a[i] = fmt.Sprintf("v%d", i)
	}
	return strings.Join(a, ", ")
}

// fields returns the field access list ("t.V0, t.V1, t.V2").
func fields(n int) string {
	a := make([]string, n)
	for i := range a {
		a[i] = fmt.Sprintf("t.V%d", i)
	}
	return strings.Join(a, ", ")
}

// verbs returns the Sprintf verbs for arity n ("%v, %v, %v").
func verbs(n int) string {
	a := make([]string, n)
	for i := range a {
		a[i] = "%v"
	}
	return strings.Join(a, ", ")
}
