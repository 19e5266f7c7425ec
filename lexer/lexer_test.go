package lexer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regraph/lexer"
	"github.com/katalvlaran/regraph/nfa"
)

// tokenize reads src and returns the type and text of every token.
func tokenize(t *testing.T, src string, opts ...lexer.Option) ([]lexer.TokenType, []string) {
	t.Helper()
	lines, err := lexer.ReadLines(strings.NewReader(src))
	require.NoError(t, err)
	tz := lexer.New(lines, opts...)
	require.True(t, tz.Ready())

	toks, err := tz.All()
	require.NoError(t, err)
	types := make([]lexer.TokenType, len(toks))
	texts := make([]string, len(toks))
	for i, tok := range toks {
		types[i], texts[i] = tok.Type, tok.Text
	}

	return types, texts
}

func TestTokenizer_Classification(t *testing.T) {
	lines, err := lexer.ReadLines(strings.NewReader("41 -1.5e-3 -> abc"))
	require.NoError(t, err)
	tz := lexer.New(lines)
	require.True(t, tz.Ready())

	want := []lexer.Token{
		{Type: lexer.INT, Text: "41", Int: 41, Line: 1, Col: 1},
		{Type: lexer.REAL, Text: "-1.5e-3", Real: -1.5e-3, Line: 1, Col: 4},
		{Type: lexer.OPERATOR, Text: "->", Line: 1, Col: 12},
		{Type: lexer.STRING, Text: "abc", Line: 1, Col: 15},
	}
	for _, w := range want {
		got, err := tz.Next()
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}

	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, lexer.EOF, tok.Type)
	tok, err = tz.Next()
	require.NoError(t, err)
	assert.Equal(t, lexer.EOF, tok.Type, "EOF is sticky")
}

func TestTokenizer_LinesAndPositions(t *testing.T) {
	lines, err := lexer.ReadLines(strings.NewReader("a\t1\n\n  2.5\r\n"))
	require.NoError(t, err)
	require.Len(t, lines, 3)

	toks, err := lexer.New(lines).All()
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, lexer.Token{Type: lexer.STRING, Text: "a", Line: 1, Col: 1}, toks[0])
	assert.Equal(t, lexer.Token{Type: lexer.INT, Text: "1", Int: 1, Line: 1, Col: 3}, toks[1])
	assert.Equal(t, lexer.Token{Type: lexer.REAL, Text: "2.5", Real: 2.5, Line: 3, Col: 3}, toks[2])
}

func TestTokenizer_Edges(t *testing.T) {
	tests := []struct {
		src   string
		types []lexer.TokenType
		texts []string
	}{
		{"1-2", []lexer.TokenType{lexer.INT, lexer.INT}, []string{"1", "-2"}},
		{"1->2", []lexer.TokenType{lexer.INT, lexer.OPERATOR, lexer.INT}, []string{"1", "->", "2"}},
		{"1e", []lexer.TokenType{lexer.STRING}, []string{"1e"}},
		{"-", []lexer.TokenType{lexer.STRING}, []string{"-"}},
		{"3. 7E10", []lexer.TokenType{lexer.REAL, lexer.REAL}, []string{"3.", "7E10"}},
		{"x->y", []lexer.TokenType{lexer.STRING}, []string{"x->y"}},
	}
	for _, tc := range tests {
		types, texts := tokenize(t, tc.src)
		assert.Equal(t, tc.types, types, tc.src)
		assert.Equal(t, tc.texts, texts, tc.src)
	}
}

func TestTokenizer_Options(t *testing.T) {
	types, texts := tokenize(t, "1,2, x", lexer.WithDelimiters(","))
	assert.Equal(t, []lexer.TokenType{lexer.INT, lexer.INT, lexer.STRING}, types)
	assert.Equal(t, []string{"1", "2", "x"}, texts)

	types, texts = tokenize(t, "a => b == c ->", lexer.WithOperators("=>", "==", ""))
	assert.Equal(t, []lexer.TokenType{
		lexer.STRING, lexer.OPERATOR, lexer.STRING, lexer.OPERATOR, lexer.STRING, lexer.OPERATOR,
	}, types)
	assert.Equal(t, []string{"a", "=>", "b", "==", "c", "->"}, texts)
}

func TestTokenizer_OperatorWithinToken(t *testing.T) {
	const words = 5000
	src := strings.Repeat("word ", words) + "== ->"
	types, texts := tokenize(t, src, lexer.WithOperators("=="))
	require.Len(t, types, words+2)
	assert.Equal(t, lexer.STRING, types[0])
	assert.Equal(t, lexer.STRING, types[words-1])
	assert.Equal(t, []lexer.TokenType{lexer.OPERATOR, lexer.OPERATOR}, types[words:])
	assert.Equal(t, []string{"==", "->"}, texts[words:])

	// an operator is never matched across a delimiter
	types, texts = tokenize(t, "x a b", lexer.WithOperators("a b"))
	assert.Equal(t, []lexer.TokenType{lexer.STRING, lexer.STRING, lexer.STRING}, types)
	assert.Equal(t, []string{"x", "a", "b"}, texts)

	types, texts = tokenize(t, "->x ==", lexer.WithOperators("=="))
	assert.Equal(t, []lexer.TokenType{lexer.OPERATOR, lexer.STRING, lexer.OPERATOR}, types)
	assert.Equal(t, []string{"->", "x", "=="}, texts)
}

func TestTokenizer_ConversionError(t *testing.T) {
	lines, err := lexer.ReadLines(strings.NewReader("99999999999999999999 1e999 7"))
	require.NoError(t, err)
	tz := lexer.New(lines)

	tok, err := tz.Next()
	assert.ErrorIs(t, err, lexer.ErrConversion)
	assert.Equal(t, lexer.INT, tok.Type)

	tok, err = tz.Next()
	assert.ErrorIs(t, err, lexer.ErrConversion)
	assert.Equal(t, lexer.REAL, tok.Type)

	tok, err = tz.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(7), tok.Int)
}

func TestTokenizer_ResetAndNotReady(t *testing.T) {
	lines, err := lexer.ReadLines(strings.NewReader("a b\nc"))
	require.NoError(t, err)
	tz := lexer.New(lines)

	first, err := tz.All()
	require.NoError(t, err)
	tz.Reset()
	second, err := tz.All()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)

	var zero lexer.Tokenizer
	assert.False(t, zero.Ready())
	_, err = zero.Next()
	assert.ErrorIs(t, err, lexer.ErrNotReady)
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 -> 1\n1 -> 2\n"), 0o600))

	tz, err := lexer.NewFromFile(path)
	require.NoError(t, err)
	toks, err := tz.All()
	require.NoError(t, err)
	assert.Len(t, toks, 6)
	assert.Equal(t, 2, toks[5].Line)

	_, err = lexer.NewFromFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLine(t *testing.T) {
	l, err := lexer.NewLine([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, byte('b'), l.At(1))
	assert.Equal(t, byte(0), l.At(3))

	require.NoError(t, l.Set(0, 'x'))
	assert.Equal(t, "xbc", l.String())
	assert.Equal(t, []byte("xbc"), l.Bytes())
	assert.Error(t, l.Set(5, 'y'))

	m, err := lexer.NewLine([]byte("xbd"))
	require.NoError(t, err)
	assert.Equal(t, -1, l.Compare(m))
	assert.Equal(t, 1, m.Compare(l))
	assert.Equal(t, 0, l.Compare(l))

	// a Line is matchable text
	n := nfa.New("(x(a-c)+)")
	assert.True(t, n.RecognizesText(l, 0, l.Len()))

	l.Release()
	m.Release()
}
