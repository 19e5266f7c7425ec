package nfa

import "fmt"

// classNames maps the bracket spelling of each built-in class to its sentinel.
var classNames = []struct {
	name string
	sym  Symbol
}{
	{"[[:misc:]]", ClassMisc},
	{"[[:alpha:]]", ClassLower},
	{"[[:ALPHA:]]", ClassUpper},
	{"[[:ascii:]]", ClassASCII},
	{"[[:digit:]]", ClassDigit},
	{"[[:hex:]]", ClassHex},
	{"[[:alphanum:]]", ClassAlphaNum},
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isASCII(b byte) bool { return b >= ' ' && b <= '~' }

func isMisc(b byte) bool {
	return (b >= ' ' && b <= '/') || (b >= ':' && b <= '@') ||
		(b >= '[' && b <= '`') || (b >= '{' && b <= '~')
}

func isHex(b byte) bool {
	return isDigit(b) || (b >= 'A' && b <= 'F') || (b >= 'a' && b <= 'f')
}

func isAlphaNum(b byte) bool { return isDigit(b) || isUpper(b) || isLower(b) }

// classMatch tests b against a built-in class sentinel.
func classMatch(c Symbol, b byte) bool {
	switch c {
	case ClassMisc:
		return isMisc(b)
	case ClassLower:
		return isLower(b)
	case ClassUpper:
		return isUpper(b)
	case ClassASCII:
		return isASCII(b)
	case ClassDigit:
		return isDigit(b)
	case ClassHex:
		return isHex(b)
	case ClassAlphaNum:
		return isAlphaNum(b)
	}

	return false
}

// className returns the bracket spelling of c, or "" for a non-class.
func className(c Symbol) string {
	for _, cn := range classNames {
		if cn.sym == c {
			return cn.name
		}
	}

	return ""
}

// Range is one interval of a user range. A range spanning several blocks
// (digits, upper, lower) is stored as several Range records sharing an ID.
type Range struct {
	ID         Symbol
	Begin, End byte
	Complement bool
}

func (r Range) String() string {
	neg := ""
	if r.Complement {
		neg = "^"
	}

	return fmt.Sprintf("%d: %s%c-%c", r.ID, neg, r.Begin, r.End)
}

// block classifies an alphanumeric byte: 0 digit, 1 upper, 2 lower, -1 other.
func block(b byte) int {
	switch {
	case isDigit(b):
		return 0
	case isUpper(b):
		return 1
	case isLower(b):
		return 2
	}

	return -1
}

// blockBounds are the first and last byte of each block.
var blockBounds = [3][2]byte{{'0', '9'}, {'A', 'Z'}, {'a', 'z'}}

// splitRange breaks [begin, end] into per-block intervals.
func splitRange(id Symbol, begin, end byte, complement bool) ([]Range, error) {
	bb, eb := block(begin), block(end)
	if bb < 0 || eb < 0 || end < begin {
		return nil, fmt.Errorf("%w: %c-%c", ErrInvalidRange, begin, end)
	}
	out := make([]Range, 0, eb-bb+1)
	for k := bb; k <= eb; k++ {
		lo, hi := blockBounds[k][0], blockBounds[k][1]
		if k == bb {
			lo = begin
		}
		if k == eb {
			hi = end
		}
		out = append(out, Range{ID: id, Begin: lo, End: hi, Complement: complement})
	}

	return out, nil
}

// rangeMatch tests b against every interval registered under id. A
// complemented range matches bytes outside all of its intervals.
func rangeMatch(ranges []Range, id Symbol, b byte) bool {
	found, complement := false, false
	for _, r := range ranges {
		if r.ID != id {
			continue
		}
		found, complement = true, r.Complement
		if b >= r.Begin && b <= r.End {
			return !complement
		}
	}

	return found && complement
}
