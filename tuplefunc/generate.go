//go:build ignore

// Generate tuplefunc_gen.go, the conversions between multiple-argument
// and multiple-return functions and their tuple-ized forms.
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

const (
	maxArgs = 3
	maxRets = 3
)

func main() {
	var buf bytes.Buffer
	pr := func(f string, a ...any) {
		fmt.Fprintf(&buf, f, a...)
	}
	pr("// Code generated by generate.go; DO NOT EDIT.\n")
	pr("\n")
	pr("package tuplefunc\n")
	pr("\n")
	pr("import \"github.com/rogpeppe/tuple\"\n")
	for a := 0; a <= maxArgs; a++ {
		for r := 0; r <= maxRets; r++ {
			if a < 2 && r < 2 {
				// Nothing to bundle on either side.
				continue
			}
			genPair(pr, a, r, false)
			genPair(pr, a, r, true)
		}
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated source: %v", err)
	}
	if err := os.WriteFile("tuplefunc_gen.go", src, 0o666); err != nil {
		log.Fatal(err)
	}
}

// genPair generates the To and From conversions for a function
// with a arguments and r results, with a trailing error if hasErr is true.
func genPair(pr func(string, ...any), a, r int, hasErr bool) {
	flags := ""
	if a >= 2 {
		flags += "A"
	}
	if r >= 2 {
		flags += "R"
	}
	if hasErr {
		flags += "E"
	}
	suffix := fmt.Sprintf("%s_%d_%d", flags, a, r)
	rtypes := seq("R", r)
	if hasErr {
		rtypes = append(rtypes, "error")
	}
	src := fmt.Sprintf("func(%s)%s", join(seq("A", a)), rets(rtypes))
	tgtArgs := join(seq("A", a))
	if a >= 2 {
		tgtArgs = tupType("A", a)
	}
	var tgtRets []string
	if r >= 2 {
		tgtRets = []string{tupType("R", r)}
	} else {
		tgtRets = seq("R", r)
	}
	if hasErr {
		tgtRets = append(tgtRets, "error")
	}
	tgt := fmt.Sprintf("func(%s)%s", tgtArgs, rets(tgtRets))

	// To: plain form to tupled form.
	pr("\n")
	genDoc(pr, "To"+suffix, src, tgt)
	pr("func To%s[%s any](f %s) %s {\n", suffix, join(typeParams(a, r)), src, tgt)
	var cparams, call string
	if a >= 2 {
		cparams = "a " + tupType("A", a)
		call = "f(a.Values())"
	} else {
		cparams = join(namedArgs(a))
		call = fmt.Sprintf("f(%s)", join(argNames(a)))
	}
	pr("\treturn func(%s)%s {\n", cparams, rets(tgtRets))
	switch {
	case !hasErr && r >= 2:
		pr("\t\treturn tuple.MkT%d(%s)\n", r, call)
	case hasErr && r >= 2:
		rnames := join(seq("r", r))
		pr("\t\t%s, err := %s\n", rnames, call)
		pr("\t\treturn tuple.MkT%d(%s), err\n", r, rnames)
	case r == 0 && !hasErr:
		pr("\t\t%s\n", call)
	default:
		pr("\t\treturn %s\n", call)
	}
	pr("\t}\n")
	pr("}\n")

	// From: tupled form back to plain form.
	pr("\n")
	genDoc(pr, "From"+suffix, tgt, src)
	pr("func From%s[%s any](f %s) %s {\n", suffix, join(typeParams(a, r)), tgt, src)
	if a >= 2 {
		call = fmt.Sprintf("f(tuple.MkT%d(%s))", a, join(argNames(a)))
	} else {
		call = fmt.Sprintf("f(%s)", join(argNames(a)))
	}
	pr("\treturn func(%s)%s {\n", join(namedArgs(a)), rets(rtypes))
	switch {
	case !hasErr && r >= 2:
		pr("\t\treturn %s.Values()\n", call)
	case hasErr && r >= 2:
		var fields []string
		for i := 0; i < r; i++ {
			fields = append(fields, fmt.Sprintf("r.V%d", i))
		}
		pr("\t\tr, err := %s\n", call)
		pr("\t\treturn %s, err\n", join(fields))
	case r == 0 && !hasErr:
		pr("\t\t%s\n", call)
	default:
		pr("\t\treturn %s\n", call)
	}
	pr("\t}\n")
	pr("}\n")
}

func genDoc(pr func(string, ...any), name, from, to string) {
	pr("// %s converts a function of the form\n", name)
	pr("//\n")
	pr("//\t%s\n", from)
	pr("//\n")
	pr("// to the form\n")
	pr("//\n")
	pr("//\t%s\n", to)
}

// seq returns the type parameter names for one side ("A0", "A1", ...).
func seq(prefix string, n int) []string {
	var s []string
	for i := 0; i < n; i++ {
		s = append(s, fmt.Sprintf("%s%d", prefix, i))
	}
	return s
}

func typeParams(a, r int) []string {
	return append(seq("A", a), seq("R", r)...)
}

func tupType(prefix string, n int) string {
	return fmt.Sprintf("tuple.T%d[%s]", n, join(seq(prefix, n)))
}

// namedArgs returns the closure parameter list ("a0 A0, a1 A1").
func namedArgs(n int) []string {
	var s []string
	for i := 0; i < n; i++ {
		s = append(s, fmt.Sprintf("a%d A%d", i, i))
	}
	return s
}

func argNames(n int) []string {
	var s []string
	for i := 0; i < n; i++ {
		s = append(s, fmt.Sprintf("a%d", i))
	}
	return s
}

// rets formats a result list: empty, a bare type, or a parenthesized list.
func rets(types []string) string {
	switch len(types) {
	case 0:
		return ""
	case 1:
		return " " + types[0]
	}
	return " (" + join(types) + ")"
}

func join(s []string) string {
	return strings.Join(s, ", ")
}
