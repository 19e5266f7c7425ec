package nfa_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/regraph/nfa"
)

// ExampleNew recognizes signed integers.
func ExampleNew() {
	n := nfa.New("(-?[[:digit:]]+)")
	for _, s := range []string{"41", "-7", "4a", "-"} {
		fmt.Printf("%s: %t\n", s, n.Recognizes(s))
	}
	// Output:
	// 41: true
	// -7: true
	// 4a: false
	// -: false
}

// ExampleNFA_Corrected shows how quantifiers are rewritten.
func ExampleNFA_Corrected() {
	n := nfa.New("(x{1,3}y?)")
	fmt.Println(n.Corrected())
	fmt.Println(n.V(), n.E())
	// Output:
	// (x(|x|xx)(|y))
	// 15 12
}

// ExampleNFA_Match separates a rejected input from a plain non-match.
func ExampleNFA_Match() {
	n := nfa.New("((a-z)+)")

	ok, err := n.Match("go(")
	fmt.Println(ok, errors.Is(err, nfa.ErrSuspiciousInput))

	ok, err = n.Match("go")
	fmt.Println(ok, err)
	// Output:
	// false true
	// true <nil>
}
