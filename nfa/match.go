// File: match.go
// Role: Simulation loop. The current state set starts as the epsilon
//       closure of state 0; each byte advances every matching state and
//       the closure of the advanced set becomes the next current set.

package nfa

import "fmt"

// sanitize reports the first offset in [begin, end) where a byte other than
// '\' is followed by one of ( ) * ? ^ |, or -1 when the text is clean.
func sanitize(t Text, begin, end int) int {
	for i := begin; i+1 < end; i++ {
		if t.At(i) == Escape {
			continue
		}
		switch t.At(i + 1) {
		case '(', ')', '*', '?', '^', '|':
			return i + 1
		}
	}

	return -1
}

// step reports the state reached from v on byte b, or -1.
func (n *NFA) step(v int, b byte) int {
	s := n.corrected[v]
	switch n.kinds[v] {
	case kindLiteral:
		if byte(s) == b {
			return v + 1
		}
	case kindClass:
		if classMatch(s, b) {
			return v + 1
		}
	case kindRange:
		if rangeMatch(n.ranges, s, b) {
			return v + 1
		}
	case kindEscape:
		if b == Escape {
			return v + 1
		}
	case kindEscaped:
		if byte(s) == b {
			return v + 1
		}
	}

	return -1
}

// run matches t[begin:end] and reports whether the accepting state is
// reachable once every byte is consumed.
func (n *NFA) run(t Text, begin, end int) (bool, error) {
	if !n.ready {
		if n.err == nil {
			return false, ErrNotReady
		}
		return false, fmt.Errorf("%w: %w", ErrNotReady, n.err)
	}
	if begin < 0 || end > t.Len() || begin > end {
		return false, fmt.Errorf("nfa: bounds [%d,%d) outside text of length %d", begin, end, t.Len())
	}
	if n.opts.Sanitize {
		if at := sanitize(t, begin, end); at >= 0 {
			return false, fmt.Errorf("%w: operator %q at offset %d", ErrSuspiciousInput, t.At(at), at)
		}
	}

	m := len(n.corrected)
	current := n.initial
	accept := n.initAccept
	for i := begin; i < end; i++ {
		b := t.At(i)
		n.advance = n.advance[:0]
		for _, v := range current {
			if v == m {
				continue
			}
			if w := n.step(v, b); w >= 0 {
				n.advance = append(n.advance, w)
			}
		}
		if len(n.advance) == 0 {
			// nothing originates from an empty set
			return false, nil
		}
		n.reach.Run(n.advance...)
		current = n.reach.Members()
		accept = n.reach.Marked(m)
	}

	return accept, nil
}

// Match reports whether the whole of text is recognized. Unlike Recognizes
// it separates the reasons for a false result: ErrNotReady for a failed
// construction, ErrSuspiciousInput for a sanitization rejection, nil for a
// genuine non-match.
func (n *NFA) Match(text string) (bool, error) {
	return n.run(stringText(text), 0, len(text))
}

// Recognizes reports whether the whole of text is recognized. Not-ready
// instances and sanitization rejections report false.
func (n *NFA) Recognizes(text string) bool {
	ok, _ := n.run(stringText(text), 0, len(text))
	return ok
}

// RecognizesRange is Recognizes over text[begin:end]. Bounds outside the
// text report false.
func (n *NFA) RecognizesRange(text string, begin, end int) bool {
	ok, _ := n.run(stringText(text), begin, end)
	return ok
}

// RecognizesText is Recognizes over positions [begin, end) of t.
func (n *NFA) RecognizesText(t Text, begin, end int) bool {
	if t == nil {
		return false
	}
	ok, _ := n.run(t, begin, end)
	return ok
}
