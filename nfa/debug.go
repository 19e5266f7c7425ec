package nfa

import (
	"fmt"
	"strings"
)

// symbolString renders one corrected-pattern position.
func symbolString(s Symbol) string {
	switch {
	case s.IsClass():
		return className(s)
	case s.IsRange():
		return fmt.Sprintf("<%d>", s)
	}

	return string(rune(byte(s)))
}

// Corrected renders the corrected pattern, with classes in bracket form
// and user ranges as <id>.
func (n *NFA) Corrected() string {
	var sb strings.Builder
	for _, s := range n.corrected {
		sb.WriteString(symbolString(s))
	}

	return sb.String()
}

// String lists the epsilon edges, or the construction error.
func (n *NFA) String() string {
	if !n.ready {
		return fmt.Sprintf("nfa %q: %v", n.pattern, n.err)
	}

	return n.g.String()
}

// Listing prints one line per state: index, symbol and epsilon successors.
func (n *NFA) Listing() string {
	if !n.ready {
		return n.String()
	}
	var sb strings.Builder
	for v := range n.g.V() {
		sym := "M"
		if v < len(n.corrected) {
			sym = symbolString(n.corrected[v])
		}
		fmt.Fprintf(&sb, "%3d %-14s", v, sym)
		for _, w := range n.g.Adj(v) {
			fmt.Fprintf(&sb, " %d", w)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Status summarizes the instance: readiness, pattern, corrected pattern and
// range table.
func (n *NFA) Status() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pattern:   %s\n", n.pattern)
	if !n.ready {
		fmt.Fprintf(&sb, "ready:     false (%v)\n", n.err)
		return sb.String()
	}
	fmt.Fprintf(&sb, "ready:     true\n")
	fmt.Fprintf(&sb, "corrected: %s\n", n.Corrected())
	fmt.Fprintf(&sb, "states:    %d\nedges:     %d\n", n.V(), n.E())
	fmt.Fprintf(&sb, "sanitize:  %t\n", n.opts.Sanitize)
	for _, r := range n.ranges {
		fmt.Fprintf(&sb, "range %s\n", r)
	}

	return sb.String()
}
