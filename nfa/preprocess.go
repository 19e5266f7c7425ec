// File: preprocess.go
// Role: Structural check and rewrite of a user pattern into the corrected
//       alphabet: literals, escape pairs, the operators ( ) * | and
//       class/range sentinels.

package nfa

import (
	"strings"

	"github.com/katalvlaran/regraph/container"
)

// checkStructure verifies length, delimiter balance and outer parentheses.
// Escaped characters are skipped when counting.
func checkStructure(p string) error {
	if len(p) < MinPatternLen {
		return &SyntaxError{Pattern: p, Pos: -1, Err: ErrPatternTooShort}
	}

	var paren, square, brace int
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case Escape:
			i++
		case '(':
			paren++
		case ')':
			paren--
		case '[':
			square++
		case ']':
			square--
		case '{':
			brace++
		case '}':
			brace--
		}
	}
	if paren != 0 || square != 0 || brace != 0 {
		return &SyntaxError{Pattern: p, Pos: -1, Err: ErrUnbalanced}
	}
	if p[0] != '(' || p[len(p)-1] != ')' {
		return &SyntaxError{Pattern: p, Pos: -1, Err: ErrNotWrapped}
	}

	return nil
}

// preprocessor rewrites one pattern. out grows as the raw pattern is
// scanned; atom is the start in out of the most recent quantifiable atom,
// or -1 when the last thing emitted cannot take a quantifier.
type preprocessor struct {
	raw    string
	out    []Symbol
	ranges []Range
	nrange int
	groups *container.Stack[int] // out offsets of open '('
	atom   int
}

// preprocess returns the corrected pattern and its range table.
func preprocess(raw string) ([]Symbol, []Range, error) {
	pp := &preprocessor{
		raw:    raw,
		out:    make([]Symbol, 0, len(raw)),
		groups: container.NewStack[int](),
		atom:   -1,
	}
	defer pp.groups.Release()

	for i := 0; i < len(raw); {
		next, err := pp.step(i)
		if err != nil {
			return nil, nil, err
		}
		i = next
	}

	return pp.out, pp.ranges, nil
}

func (pp *preprocessor) fail(pos int, err error) error {
	return &SyntaxError{Pattern: pp.raw, Pos: pos, Err: err}
}

// step consumes the construct starting at raw[i] and returns the offset
// of the next one.
func (pp *preprocessor) step(i int) (int, error) {
	c := pp.raw[i]
	switch c {
	case Escape:
		if i+1 >= len(pp.raw) {
			return 0, pp.fail(i, ErrUnbalanced)
		}
		pp.atom = len(pp.out)
		pp.out = append(pp.out, Symbol(Escape), Symbol(pp.raw[i+1]))
		return i + 2, nil

	case '(':
		if n, ok, err := pp.userRange(i); ok || err != nil {
			return n, err
		}
		if err := pp.groups.Push(len(pp.out)); err != nil {
			return 0, pp.fail(i, err)
		}
		pp.out = append(pp.out, '(')
		pp.atom = -1
		return i + 1, nil

	case ')':
		lp, err := pp.groups.Pop()
		if err != nil {
			return 0, pp.fail(i, ErrUnbalanced)
		}
		pp.out = append(pp.out, ')')
		pp.atom = lp
		return i + 1, nil

	case '|':
		pp.out = append(pp.out, '|')
		pp.atom = -1
		return i + 1, nil

	case '[':
		return pp.class(i)

	case '*':
		if pp.atom < 0 {
			return 0, pp.fail(i, ErrDanglingQuantifier)
		}
		pp.out = append(pp.out, '*')
		pp.atom = -1
		return i + 1, nil

	case '+':
		a, err := pp.takeAtom(i)
		if err != nil {
			return 0, err
		}
		// A+ -> AA*
		pp.out = append(pp.out, a...)
		pp.out = append(pp.out, a...)
		pp.out = append(pp.out, '*')
		return i + 1, nil

	case '?':
		a, err := pp.takeAtom(i)
		if err != nil {
			return 0, err
		}
		// A? -> (|A)
		pp.out = append(pp.out, '(', '|')
		pp.out = append(pp.out, a...)
		pp.out = append(pp.out, ')')
		return i + 1, nil

	case '{':
		return pp.repeat(i)
	}

	pp.atom = len(pp.out)
	pp.out = append(pp.out, Symbol(c))

	return i + 1, nil
}

// takeAtom cuts the current atom off the end of out and returns a copy.
func (pp *preprocessor) takeAtom(pos int) ([]Symbol, error) {
	if pp.atom < 0 {
		return nil, pp.fail(pos, ErrDanglingQuantifier)
	}
	a := append([]Symbol(nil), pp.out[pp.atom:]...)
	pp.out = pp.out[:pp.atom]
	pp.atom = -1

	return a, nil
}

// userRange recognises exactly "(x-y)" or "(^x-y)" at raw[i]. ok is false
// when the text has a different shape and should be treated as a group.
func (pp *preprocessor) userRange(i int) (next int, ok bool, err error) {
	r := pp.raw[i+1:]
	complement := strings.HasPrefix(r, "^")
	if complement {
		r = r[1:]
	}
	if len(r) < 4 || r[1] != '-' || r[3] != ')' {
		return 0, false, nil
	}
	if pp.nrange >= MaxRanges {
		return 0, true, pp.fail(i, ErrTooManyRanges)
	}

	id := rangeBase + Symbol(pp.nrange)
	parts, err := splitRange(id, r[0], r[2], complement)
	if err != nil {
		return 0, true, pp.fail(i, err)
	}
	pp.nrange++
	pp.ranges = append(pp.ranges, parts...)

	pp.atom = len(pp.out)
	pp.out = append(pp.out, '(', id, ')')
	next = i + 5
	if complement {
		next++
	}

	return next, true, nil
}

// class replaces a [[:name:]] spelling with its sentinel.
func (pp *preprocessor) class(i int) (int, error) {
	rest := pp.raw[i:]
	if !strings.HasPrefix(rest, "[[") {
		// only "[[" opens a class
		pp.atom = len(pp.out)
		pp.out = append(pp.out, '[')
		return i + 1, nil
	}
	for _, cn := range classNames {
		if strings.HasPrefix(rest, cn.name) {
			pp.atom = len(pp.out)
			pp.out = append(pp.out, cn.sym)
			return i + len(cn.name), nil
		}
	}

	return 0, pp.fail(i, ErrUnknownClass)
}

// repeat expands A{n1,n2} into n1 copies of A followed by an alternation
// (|A|AA|...) holding n2-n1 non-empty branches. {n} means {n,n}.
func (pp *preprocessor) repeat(i int) (int, error) {
	n1, n2, next, err := pp.parseBounds(i)
	if err != nil {
		return 0, err
	}
	a, err := pp.takeAtom(i)
	if err != nil {
		return 0, err
	}

	for range n1 {
		pp.out = append(pp.out, a...)
	}
	if n2 > n1 {
		pp.out = append(pp.out, '(')
		for k := 1; k <= n2-n1; k++ {
			pp.out = append(pp.out, '|')
			for range k {
				pp.out = append(pp.out, a...)
			}
		}
		pp.out = append(pp.out, ')')
	}

	return next, nil
}

// parseBounds reads "{n1}" or "{n1 sep n2}" starting at the '{' at raw[i].
// Each bound is one or two digits; sep is any single non-digit byte.
func (pp *preprocessor) parseBounds(i int) (n1, n2, next int, err error) {
	j := i + 1
	n1, j, ok := pp.bound(j)
	if !ok {
		return 0, 0, 0, pp.fail(i, ErrInvalidRepeat)
	}
	n2 = n1
	if j < len(pp.raw) && pp.raw[j] != '}' {
		j++ // separator
		if n2, j, ok = pp.bound(j); !ok {
			return 0, 0, 0, pp.fail(i, ErrInvalidRepeat)
		}
	}
	if j >= len(pp.raw) || pp.raw[j] != '}' {
		return 0, 0, 0, pp.fail(i, ErrInvalidRepeat)
	}
	if n1 > n2 || n2 > MaxRepeat || (n1 == 0 && n2 == 0) {
		return 0, 0, 0, pp.fail(i, ErrInvalidRepeat)
	}

	return n1, n2, j + 1, nil
}

// bound reads one or two decimal digits at raw[j].
func (pp *preprocessor) bound(j int) (int, int, bool) {
	n, k := 0, j
	for k < len(pp.raw) && k-j < 2 && isDigit(pp.raw[k]) {
		n = n*10 + int(pp.raw[k]-'0')
		k++
	}
	if k == j || (k < len(pp.raw) && isDigit(pp.raw[k])) {
		return 0, j, false
	}

	return n, k, true
}
