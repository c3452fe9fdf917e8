// Tupledemo demonstrates the tuple package: one tuple built with its
// element types pinned explicitly, one built with inference, slot access
// by index and tuple equality.
package main

import (
	"fmt"

	"github.com/rogpeppe/tuple"
)

func main() {
	t := tuple.T3[int, float64, byte]{V0: 42, V1: 3.14, V2: 'a'}

	fmt.Println(t.V0)
	fmt.Println(t.V1)
	fmt.Printf("%c\n", t.V2)

	t2 := tuple.MkT3(10, 20.5, byte('x'))

	if t == t2 {
		fmt.Println("t and t2 are equal")
	} else {
		fmt.Println("t and t2 are not equal")
	}
}
