package nfa_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regraph/nfa"
)

// bytesText is a minimal nfa.Text over a byte slice.
type bytesText []byte

func (b bytesText) Len() int      { return len(b) }
func (b bytesText) At(i int) byte { return b[i] }

// expect compiles pattern and checks every input against its verdict.
func expect(t *testing.T, pattern string, cases map[string]bool, opts ...nfa.Option) {
	t.Helper()
	n, err := nfa.Compile(pattern, opts...)
	require.NoError(t, err, pattern)
	for text, want := range cases {
		assert.Equal(t, want, n.Recognizes(text), "%s on %q", pattern, text)
	}
}

func TestNew_Readiness(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"ab", nfa.ErrPatternTooShort},
		{"(ab", nfa.ErrUnbalanced},
		{"(a\\)", nfa.ErrUnbalanced},
		{"([a)", nfa.ErrUnbalanced},
		{"abc", nfa.ErrNotWrapped},
		{"([[:foo:]])", nfa.ErrUnknownClass},
		{"(*a)", nfa.ErrDanglingQuantifier},
		{"(+a)", nfa.ErrDanglingQuantifier},
		{"(a|?)", nfa.ErrDanglingQuantifier},
		{"(a{0,0})", nfa.ErrInvalidRepeat},
		{"(a{3,2})", nfa.ErrInvalidRepeat},
		{"(a{100})", nfa.ErrInvalidRepeat},
		{"(a{x})", nfa.ErrInvalidRepeat},
		{"(a{1,})", nfa.ErrInvalidRepeat},
		{"((z-a))", nfa.ErrInvalidRange},
		{"((a-%))", nfa.ErrInvalidRange},
		{"(" + strings.Repeat("(a-b)", nfa.MaxRanges+1) + ")", nfa.ErrTooManyRanges},
	}
	for _, tc := range tests {
		n := nfa.New(tc.pattern)
		require.NotNil(t, n)
		assert.False(t, n.Ready(), tc.pattern)
		assert.ErrorIs(t, n.Err(), tc.want, tc.pattern)
		assert.False(t, n.Recognizes("a"), tc.pattern)
		assert.Zero(t, n.V())
		assert.Nil(t, n.Graph())

		_, err := nfa.Compile(tc.pattern)
		assert.ErrorIs(t, err, tc.want, tc.pattern)
	}

	for _, p := range []string{"(abc)", "(a*)", "(a|b)", "([[:digit:]]+)", "(a{2,3})",
		"(" + strings.Repeat("(a-b)", nfa.MaxRanges) + ")"} {
		n := nfa.New(p)
		assert.True(t, n.Ready(), p)
		assert.NoError(t, n.Err(), p)
		assert.Equal(t, n.M()+1, n.V(), p)
	}
}

func TestNew_SyntaxErrorPosition(t *testing.T) {
	_, err := nfa.Compile("(ab{x})")
	var se *nfa.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 3, se.Pos)
	assert.Equal(t, "(ab{x})", se.Pattern)
	assert.Contains(t, err.Error(), "offset 3")

	_, err = nfa.Compile("xy")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, -1, se.Pos)
}

func TestNew_LogsRejection(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	n := nfa.New("(a{9,1})", nfa.WithLogger(l))
	assert.False(t, n.Ready())
	out := buf.String()
	assert.Contains(t, out, "nfa: pattern rejected")
	assert.Contains(t, out, "pattern=")
	assert.Contains(t, out, "pos=2")
	assert.Contains(t, out, "reason=")
}

func TestRecognizes_Core(t *testing.T) {
	expect(t, "(abc)", map[string]bool{"abc": true, "abd": false, "ab": false, "abcc": false, "": false})
	expect(t, "(a*)", map[string]bool{"": true, "a": true, "aaaa": true, "aaab": false})
	expect(t, "(a|b)", map[string]bool{"a": true, "b": true, "c": false, "ab": false})
	expect(t, "([[:digit:]]+)", map[string]bool{"41": true, "7": true, "4a": false, "": false})
	expect(t, "(a{2,3})", map[string]bool{"a": false, "aa": true, "aaa": true, "aaaa": false})
	expect(t, "(|a)", map[string]bool{"": true, "a": true, "aa": false})
}

func TestRecognizes_Quantifiers(t *testing.T) {
	expect(t, "(ab?c)", map[string]bool{"ac": true, "abc": true, "abbc": false})
	expect(t, "(xa{0,2})", map[string]bool{"x": true, "xa": true, "xaa": true, "xaaa": false})
	expect(t, "(a{3})", map[string]bool{"aa": false, "aaa": true, "aaaa": false})
	expect(t, "(a{1-2})", map[string]bool{"": false, "a": true, "aa": true, "aaa": false})
	expect(t, "((ab){2})", map[string]bool{"ab": false, "abab": true})
	expect(t, "((ab)+)", map[string]bool{"ab": true, "ababab": true, "aba": false, "": false})
	expect(t, "((a|b)*c)", map[string]bool{"c": true, "abbac": true, "abd": false})
	expect(t, "(a(b|c)*d)", map[string]bool{"ad": true, "abcbd": true, "abce": false})
}

func TestRecognizes_Classes(t *testing.T) {
	expect(t, "([[:hex:]]+)", map[string]bool{"dead42BEEF": true, "g": false})
	expect(t, "([[:ALPHA:]][[:alpha:]]*)", map[string]bool{"Hello": true, "hello": false, "HeLlo": false})
	expect(t, "([[:misc:]])", map[string]bool{"#": true, "~": true, "a": false, "5": false})
	expect(t, "([[:ascii:]]*)", map[string]bool{"any text, ok": true, "\x01": false})
	expect(t, "([[:alphanum:]]{2})", map[string]bool{"a1": true, "Z9": true, "a-": false})
}

func TestRecognizes_Ranges(t *testing.T) {
	expect(t, "((a-f)+)", map[string]bool{"cafe": true, "cafeg": false})
	expect(t, "((^0-9)*)", map[string]bool{"abc": true, "": true, "a1": false})
	expect(t, "((0-z)+)", map[string]bool{"A9z": true, "A_z": false})

	n := nfa.New("((0-z))")
	require.True(t, n.Ready())
	rs := n.Ranges()
	require.Len(t, rs, 3)
	assert.Equal(t, nfa.Range{ID: -80, Begin: '0', End: '9'}, rs[0])
	assert.Equal(t, nfa.Range{ID: -80, Begin: 'A', End: 'Z'}, rs[1])
	assert.Equal(t, nfa.Range{ID: -80, Begin: 'a', End: 'z'}, rs[2])
}

func TestRecognizes_Escapes(t *testing.T) {
	// the text spells an escaped operator with its backslash
	expect(t, "(\\(a\\))", map[string]bool{`\(a\)`: true, "(a)": false, "a": false})
	expect(t, "(a\\+)", map[string]bool{`a\+`: true, "a+": false, "aa": false})
	expect(t, "(\\**)", map[string]bool{"": true, `\*`: true, `\*\*\*`: true, "*": false, `\*a`: false},
		nfa.WithSanitize(false))
}

func TestMatch_EscapedOperatorsSanitized(t *testing.T) {
	tests := []struct {
		pattern, text string
		want          bool
	}{
		{"(a\\*)", `a\*`, true},
		{"(a\\*)", "a", false},
		{"(a\\*)", `a\`, false},
		{"(x\\|y)", `x\|y`, true},
		{"(x\\|y)", `x\y`, false},
		{"(\\?\\^)", `\?\^`, true},
	}
	for _, tc := range tests {
		n := nfa.New(tc.pattern)
		require.True(t, n.Ready(), tc.pattern)
		require.True(t, n.Sanitize())
		ok, err := n.Match(tc.text)
		assert.NoError(t, err, "%s on %q", tc.pattern, tc.text)
		assert.Equal(t, tc.want, ok, "%s on %q", tc.pattern, tc.text)
	}

	// the bare operator is still rejected
	for _, text := range []string{"a*", "x|y"} {
		_, err := nfa.New("(a\\*)").Match(text)
		assert.ErrorIs(t, err, nfa.ErrSuspiciousInput, text)
	}
}

func TestRecognizes_LiteralBracket(t *testing.T) {
	expect(t, "([ab])", map[string]bool{"[ab]": true, "a": false, "[a]": false})
	expect(t, "(x[y]+)", map[string]bool{"x[y]": true, "x[y]]]": true, "x[y": false})
	expect(t, "([[:digit:]][x])", map[string]bool{"4[x]": true, "4x": false})

	n := nfa.New("([x])")
	require.True(t, n.Ready())
	assert.Equal(t, "([x])", n.Corrected())
}

func TestMatch_Errors(t *testing.T) {
	n := nfa.New("(a*)")
	ok, err := n.Match("a|")
	assert.False(t, ok)
	assert.ErrorIs(t, err, nfa.ErrSuspiciousInput)
	assert.False(t, n.Recognizes("a|"))

	n.SetSanitize(false)
	assert.False(t, n.Sanitize())
	ok, err = n.Match("a|")
	assert.False(t, ok)
	assert.NoError(t, err)

	ok, err = n.Match("aa")
	assert.True(t, ok)
	assert.NoError(t, err)

	// escaped operators are not suspicious
	ok, err = nfa.New("(\\*)").Match("\\*")
	assert.NoError(t, err)
	assert.True(t, ok)

	bad := nfa.New("xy")
	_, err = bad.Match("xy")
	assert.ErrorIs(t, err, nfa.ErrNotReady)
	assert.ErrorIs(t, err, nfa.ErrPatternTooShort)

	var zero nfa.NFA
	_, err = zero.Match("")
	assert.ErrorIs(t, err, nfa.ErrNotReady)
}

func TestRecognizesRangeAndText(t *testing.T) {
	n := nfa.New("(abc)")
	assert.True(t, n.RecognizesRange("xxabcxx", 2, 5))
	assert.False(t, n.RecognizesRange("xxabcxx", 1, 5))
	assert.False(t, n.RecognizesRange("abc", 2, 9))
	assert.False(t, n.RecognizesRange("abc", -1, 3))

	assert.True(t, n.RecognizesText(bytesText("abc"), 0, 3))
	assert.True(t, n.RecognizesText(bytesText("--abc"), 2, 5))
	assert.False(t, n.RecognizesText(nil, 0, 0))
}

func TestBuild_Idempotent(t *testing.T) {
	for _, p := range []string{"(abc)", "((a|b)*c)", "(a{2,3})", "((0-z)+)", "(\\**)"} {
		a, b := nfa.New(p), nfa.New(p)
		require.True(t, a.Ready(), p)
		assert.Equal(t, a.Graph().String(), b.Graph().String(), p)
		assert.Equal(t, a.Corrected(), b.Corrected(), p)
	}

	n := nfa.New("(a*)")
	g := n.Graph()
	require.NoError(t, g.AddEdge(0, 0))
	assert.Equal(t, 5, n.E(), "Graph returns a copy")
}

func TestCorrected(t *testing.T) {
	tests := map[string]string{
		"(a+)":           "(aa*)",
		"(a?)":           "((|a))",
		"(a{2,3})":       "(aa(|a))",
		"(a{0,2})":       "((|a|aa))",
		"([[:digit:]]+)": "([[:digit:]][[:digit:]]*)",
		"((a-c))":        "((<-80>))",
		"((ab)+)":        "((ab)(ab)*)",
		"(\\(+)":         "(\\(\\(*)",
	}
	for p, want := range tests {
		n := nfa.New(p)
		require.True(t, n.Ready(), p)
		assert.Equal(t, want, n.Corrected(), p)
		assert.Len(t, n.Symbols(), n.M(), p)
	}
}

func TestDiagnostics(t *testing.T) {
	n := nfa.New("((a-c)*)")
	require.True(t, n.Ready())
	assert.Equal(t, "((a-c)*)", n.Pattern())

	st := n.Status()
	assert.Contains(t, st, "ready:     true")
	assert.Contains(t, st, "corrected: ((<-80>)*)")
	assert.Contains(t, st, "range -80: a-c")

	listing := n.Listing()
	assert.Equal(t, n.V(), strings.Count(listing, "\n"))
	assert.Contains(t, listing, "<-80>")

	assert.Contains(t, n.String(), "vertices")

	bad := nfa.New("xy")
	assert.Contains(t, bad.Status(), "ready:     false")
	assert.Contains(t, bad.String(), "too short")
	assert.True(t, errors.Is(bad.Err(), nfa.ErrPatternTooShort))
}
